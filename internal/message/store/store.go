package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/message"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateMessage(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (business_id, sender_id, recipient_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, m.BusinessID, m.SenderID, m.RecipientID, m.Content).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating message: %w", err)
	}

	return nil
}

func (s *Store) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*message.Message, error) {
	query := `
		SELECT m.id, m.business_id, m.sender_id, m.recipient_id, m.content, m.created_at, u.name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.business_id = $1
		ORDER BY m.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []*message.Message

	for rows.Next() {
		var m message.Message
		if err := rows.Scan(
			&m.ID, &m.BusinessID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt, &m.SenderName,
		); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}

		msgs = append(msgs, &m)
	}

	return msgs, rows.Err()
}
