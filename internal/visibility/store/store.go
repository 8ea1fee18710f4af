package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hfaria/ventura/internal/visibility"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateGrant(ctx context.Context, g *visibility.Grant) error {
	query := `
		INSERT INTO business_visibility (investor_id, business_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, g.InvestorID, g.BusinessID).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		// A concurrent grant for the same pair loses the race against
		// the unique index; report it as the duplicate it is.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return visibility.ErrDuplicate
		}

		return fmt.Errorf("creating grant: %w", err)
	}

	return nil
}

func (s *Store) FindGrant(ctx context.Context, investorID, businessID uuid.UUID) (*visibility.Grant, error) {
	query := `
		SELECT id, investor_id, business_id, created_at
		FROM business_visibility
		WHERE investor_id = $1 AND business_id = $2
	`

	var g visibility.Grant

	err := s.db.QueryRowContext(ctx, query, investorID, businessID).
		Scan(&g.ID, &g.InvestorID, &g.BusinessID, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("finding grant: %w", err)
	}

	return &g, nil
}

const selectGrantColumns = `
	v.id, v.investor_id, v.business_id, v.created_at,
	iu.name, iu.email, b.name, b.status
`

func (s *Store) ListGrants(ctx context.Context) ([]*visibility.Grant, error) {
	query := `SELECT ` + selectGrantColumns + `
		FROM business_visibility v
		JOIN users iu ON iu.id = v.investor_id
		JOIN businesses b ON b.id = v.business_id
		ORDER BY v.created_at DESC`

	return s.queryGrants(ctx, query)
}

func (s *Store) ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*visibility.Grant, error) {
	query := `SELECT ` + selectGrantColumns + `
		FROM business_visibility v
		JOIN users iu ON iu.id = v.investor_id
		JOIN businesses b ON b.id = v.business_id
		WHERE v.investor_id = $1
		ORDER BY v.created_at DESC`

	return s.queryGrants(ctx, query, investorID)
}

func (s *Store) InvestorsForBusiness(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT investor_id FROM business_visibility WHERE business_id = $1`

	rows, err := s.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing grant holders: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning grant holder: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *Store) queryGrants(ctx context.Context, query string, args ...any) ([]*visibility.Grant, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing grants: %w", err)
	}
	defer rows.Close()

	var grants []*visibility.Grant

	for rows.Next() {
		var g visibility.Grant
		if err := rows.Scan(
			&g.ID, &g.InvestorID, &g.BusinessID, &g.CreatedAt,
			&g.InvestorName, &g.InvestorEmail, &g.BusinessName, &g.BusinessStatus,
		); err != nil {
			return nil, fmt.Errorf("scanning grant: %w", err)
		}

		grants = append(grants, &g)
	}

	return grants, rows.Err()
}
