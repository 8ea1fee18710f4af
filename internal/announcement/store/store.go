package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/announcement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAnnouncement(ctx context.Context, a *announcement.Announcement) error {
	query := `
		INSERT INTO announcements (business_id, owner_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, a.BusinessID, a.OwnerID, a.Title, a.Content).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating announcement: %w", err)
	}

	return nil
}

func (s *Store) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*announcement.Announcement, error) {
	query := `
		SELECT id, business_id, owner_id, title, content, created_at
		FROM announcements
		WHERE business_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing announcements: %w", err)
	}
	defer rows.Close()

	var out []*announcement.Announcement

	for rows.Next() {
		var a announcement.Announcement

		if err := rows.Scan(&a.ID, &a.BusinessID, &a.OwnerID, &a.Title, &a.Content, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning announcement: %w", err)
		}

		out = append(out, &a)
	}

	return out, rows.Err()
}
