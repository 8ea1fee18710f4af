package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/watchlist"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertEntry(ctx context.Context, investorID, businessID uuid.UUID) (*watchlist.Entry, error) {
	query := `
		INSERT INTO watchlists (investor_id, business_id)
		VALUES ($1, $2)
		ON CONFLICT (investor_id, business_id) DO UPDATE SET investor_id = EXCLUDED.investor_id
		RETURNING id, investor_id, business_id, created_at
	`

	var e watchlist.Entry

	err := s.db.QueryRowContext(ctx, query, investorID, businessID).
		Scan(&e.ID, &e.InvestorID, &e.BusinessID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting watchlist entry: %w", err)
	}

	return &e, nil
}

func (s *Store) DeleteEntry(ctx context.Context, investorID, businessID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM watchlists WHERE investor_id = $1 AND business_id = $2`, investorID, businessID)
	if err != nil {
		return fmt.Errorf("deleting watchlist entry: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return watchlist.ErrNotFound
	}

	return nil
}

func (s *Store) ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*watchlist.Entry, error) {
	query := `
		SELECT w.id, w.investor_id, w.business_id, w.created_at, b.name, b.status
		FROM watchlists w
		JOIN businesses b ON b.id = w.business_id
		WHERE w.investor_id = $1
		ORDER BY w.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, investorID)
	if err != nil {
		return nil, fmt.Errorf("listing watchlist: %w", err)
	}
	defer rows.Close()

	var entries []*watchlist.Entry

	for rows.Next() {
		var e watchlist.Entry

		if err := rows.Scan(&e.ID, &e.InvestorID, &e.BusinessID, &e.CreatedAt, &e.BusinessName, &e.BusinessStatus); err != nil {
			return nil, fmt.Errorf("scanning watchlist entry: %w", err)
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
