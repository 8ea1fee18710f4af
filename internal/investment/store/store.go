package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/investment"
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

const selectInvestmentColumns = `
	i.id, i.investor_id, i.business_id, i.amount, i.status, i.created_at,
	b.name AS business_name, u.name AS investor_name, u.email AS investor_email
`

const investmentJoins = `
	FROM investments i
	JOIN businesses b ON b.id = i.business_id
	JOIN users u ON u.id = i.investor_id
`

func scanInvestment(s scanner) (*investment.Investment, error) {
	var inv investment.Investment

	var statusStr string

	if err := s.Scan(
		&inv.ID, &inv.InvestorID, &inv.BusinessID, &inv.Amount, &statusStr, &inv.CreatedAt,
		&inv.BusinessName, &inv.InvestorName, &inv.InvestorEmail,
	); err != nil {
		return nil, err
	}

	inv.Status = investment.Status(statusStr)

	return &inv, nil
}

func (s *Store) CreateInvestment(ctx context.Context, inv *investment.Investment) error {
	query := `
		INSERT INTO investments (investor_id, business_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.InvestorID, inv.BusinessID, inv.Amount, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating investment: %w", err)
	}

	return nil
}

func (s *Store) GetInvestment(ctx context.Context, id uuid.UUID) (*investment.Investment, error) {
	query := `SELECT ` + selectInvestmentColumns + investmentJoins + `WHERE i.id = $1`

	inv, err := scanInvestment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, investment.ErrNotFound
		}

		return nil, fmt.Errorf("getting investment: %w", err)
	}

	return inv, nil
}

func (s *Store) ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*investment.Investment, error) {
	query := `SELECT ` + selectInvestmentColumns + investmentJoins + `
		WHERE i.investor_id = $1
		ORDER BY i.created_at DESC`

	return s.queryInvestments(ctx, query, investorID)
}

func (s *Store) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*investment.Investment, error) {
	query := `SELECT ` + selectInvestmentColumns + investmentJoins + `
		WHERE b.owner_id = $1
		ORDER BY i.created_at DESC`

	return s.queryInvestments(ctx, query, ownerID)
}

func (s *Store) ListAll(ctx context.Context) ([]*investment.Investment, error) {
	query := `SELECT ` + selectInvestmentColumns + investmentJoins + `ORDER BY i.created_at DESC`

	return s.queryInvestments(ctx, query)
}

func (s *Store) queryInvestments(ctx context.Context, query string, args ...any) ([]*investment.Investment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}
	defer rows.Close()

	var investments []*investment.Investment

	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning investment: %w", err)
		}

		investments = append(investments, inv)
	}

	return investments, rows.Err()
}
