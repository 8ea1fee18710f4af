package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/notification"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectNotificationColumns = `
	id, user_id, type, message, data, read, created_at
`

func scanNotification(s scanner) (*notification.Notification, error) {
	var n notification.Notification

	var (
		kind string
		data []byte
	)

	if err := s.Scan(&n.ID, &n.UserID, &kind, &n.Message, &data, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}

	n.Kind = notification.Kind(kind)

	if err := json.Unmarshal(data, &n.Data); err != nil {
		return nil, fmt.Errorf("decoding notification data: %w", err)
	}

	return &n, nil
}

func (s *Store) CreateNotification(ctx context.Context, n *notification.Notification) error {
	data := n.Data
	if data == nil {
		data = map[string]any{}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding notification data: %w", err)
	}

	query := `
		INSERT INTO notifications (user_id, type, message, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, read, created_at
	`

	err = s.db.QueryRowContext(ctx, query, n.UserID, n.Kind, n.Message, encoded).
		Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}

	return nil
}

func (s *Store) ListForUser(ctx context.Context, userID uuid.UUID) ([]*notification.Notification, error) {
	query := `SELECT ` + selectNotificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var out []*notification.Notification

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}

		out = append(out, n)
	}

	return out, rows.Err()
}

func (s *Store) GetNotification(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	query := `SELECT ` + selectNotificationColumns + ` FROM notifications WHERE id = $1`

	n, err := scanNotification(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notification.ErrNotFound
		}

		return nil, fmt.Errorf("getting notification: %w", err)
	}

	return n, nil
}

func (s *Store) MarkRead(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}

	return nil
}

func (s *Store) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND NOT read`, userID)
	if err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}

	return nil
}

func (s *Store) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}

	return count, nil
}
