package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBusinessColumns = `
	b.id, b.owner_id, u.name AS owner_name, u.email AS owner_email,
	b.name, b.description, b.category, b.latitude, b.longitude, b.status,
	b.min_investment_amount, b.max_investment_amount, b.expected_return_percentage,
	b.monthly_revenue, b.profit_margin, b.growth_percentage, b.customer_count,
	b.created_at, b.updated_at
`

func scanBusiness(s scanner) (*business.Business, error) {
	var b business.Business

	var statusStr string

	var category sql.NullString

	if err := s.Scan(
		&b.ID, &b.OwnerID, &b.OwnerName, &b.OwnerEmail,
		&b.Name, &b.Description, &category, &b.Latitude, &b.Longitude, &statusStr,
		&b.MinInvestmentAmount, &b.MaxInvestmentAmount, &b.ExpectedReturnPercentage,
		&b.MonthlyRevenue, &b.ProfitMargin, &b.GrowthPercentage, &b.CustomerCount,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Status = business.Status(statusStr)
	b.Category = category.String

	return &b, nil
}

func (s *Store) CreateBusiness(ctx context.Context, b *business.Business) error {
	query := `
		INSERT INTO businesses (
			owner_id, name, description, category, latitude, longitude, status,
			min_investment_amount, max_investment_amount, expected_return_percentage
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.OwnerID, b.Name, b.Description, b.Category, b.Latitude, b.Longitude,
		b.Status, b.MinInvestmentAmount, b.MaxInvestmentAmount, b.ExpectedReturnPercentage,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating business: %w", err)
	}

	return nil
}

func (s *Store) GetBusiness(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	query := `SELECT ` + selectBusinessColumns + `
		FROM businesses b
		JOIN users u ON u.id = b.owner_id
		WHERE b.id = $1`

	b, err := scanBusiness(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, business.ErrNotFound
		}

		return nil, fmt.Errorf("getting business: %w", err)
	}

	return b, nil
}

func (s *Store) UpdateBusiness(ctx context.Context, b *business.Business) error {
	query := `
		UPDATE businesses
		SET name = $1, description = $2, category = NULLIF($3, ''), latitude = $4, longitude = $5,
			min_investment_amount = $6, max_investment_amount = $7, expected_return_percentage = $8,
			monthly_revenue = $9, profit_margin = $10, growth_percentage = $11, customer_count = $12,
			updated_at = NOW()
		WHERE id = $13
	`

	_, err := s.db.ExecContext(ctx, query,
		b.Name, b.Description, b.Category, b.Latitude, b.Longitude,
		b.MinInvestmentAmount, b.MaxInvestmentAmount, b.ExpectedReturnPercentage,
		b.MonthlyRevenue, b.ProfitMargin, b.GrowthPercentage, b.CustomerCount,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating business: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status business.Status) error {
	query := `UPDATE businesses SET status = $1, updated_at = NOW() WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*business.Business, error) {
	query := `SELECT ` + selectBusinessColumns + `
		FROM businesses b
		JOIN users u ON u.id = b.owner_id
		WHERE b.owner_id = $1
		ORDER BY b.created_at DESC`

	return s.queryBusinesses(ctx, query, ownerID)
}

func (s *Store) ListAll(ctx context.Context, filter business.ListFilter) ([]*business.Business, error) {
	query := `SELECT ` + selectBusinessColumns + `
		FROM businesses b
		JOIN users u ON u.id = b.owner_id`

	var args []any

	if filter.Status != nil {
		query += ` WHERE b.status = $1`

		args = append(args, *filter.Status)
	}

	query += ` ORDER BY b.created_at DESC`

	return s.queryBusinesses(ctx, query, args...)
}

func (s *Store) ListVisible(ctx context.Context, investorID uuid.UUID, filter business.CatalogFilter) ([]*business.Business, error) {
	query := `SELECT ` + selectBusinessColumns + `
		FROM businesses b
		JOIN users u ON u.id = b.owner_id
		JOIN business_visibility v ON v.business_id = b.id
		WHERE v.investor_id = $1`

	args := []any{investorID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND b.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Category != "" {
		query += fmt.Sprintf(" AND b.category = $%d", argIdx)

		args = append(args, filter.Category)
		argIdx++
	}

	if filter.Query != "" {
		query += fmt.Sprintf(" AND b.name ILIKE '%%' || $%d || '%%'", argIdx)

		args = append(args, filter.Query)
		argIdx++
	}

	if filter.MinAmount != nil {
		query += fmt.Sprintf(" AND b.min_investment_amount >= $%d", argIdx)

		args = append(args, *filter.MinAmount)
		argIdx++
	}

	if filter.MaxAmount != nil {
		query += fmt.Sprintf(" AND b.min_investment_amount <= $%d", argIdx)

		args = append(args, *filter.MaxAmount)
		argIdx++
	}

	query += ` ORDER BY b.created_at DESC`

	return s.queryBusinesses(ctx, query, args...)
}

func (s *Store) queryBusinesses(ctx context.Context, query string, args ...any) ([]*business.Business, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*business.Business

	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning business: %w", err)
		}

		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}

// BusinessExists implements the existence check consulted by the
// visibility service.
func (s *Store) BusinessExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM businesses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking business: %w", err)
	}

	return exists, nil
}
