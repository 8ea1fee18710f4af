package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/stats"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Overview(ctx context.Context) (*stats.Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'business_owner'),
			(SELECT COUNT(*) FROM users WHERE role = 'investor'),
			(SELECT COUNT(*) FROM businesses),
			(SELECT COUNT(*) FROM businesses WHERE status = 'pending'),
			(SELECT COUNT(*) FROM investments WHERE status = 'confirmed'),
			(SELECT COALESCE(SUM(amount), 0) FROM investments WHERE status = 'confirmed')
	`

	var o stats.Overview

	err := s.db.QueryRowContext(ctx, query).Scan(
		&o.TotalUsers, &o.TotalOwners, &o.TotalInvestors,
		&o.TotalBusinesses, &o.PendingBusinesses,
		&o.TotalInvestments, &o.TotalInvested,
	)
	if err != nil {
		return nil, fmt.Errorf("loading overview: %w", err)
	}

	return &o, nil
}

func (s *Store) InvestmentTotals(ctx context.Context) (int, int64, error) {
	var (
		count  int
		amount int64
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM investments WHERE status = 'confirmed'`).
		Scan(&count, &amount)
	if err != nil {
		return 0, 0, fmt.Errorf("loading investment totals: %w", err)
	}

	return count, amount, nil
}

func (s *Store) MonthlyInvestments(ctx context.Context, months int) ([]stats.MonthlyPoint, error) {
	query := `
		SELECT date_trunc('month', created_at) AS month, COUNT(*), COALESCE(SUM(amount), 0)
		FROM investments
		WHERE status = 'confirmed'
		  AND created_at >= date_trunc('month', now()) - ($1 || ' months')::interval
		GROUP BY month
		ORDER BY month
	`

	rows, err := s.db.QueryContext(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("loading monthly investments: %w", err)
	}
	defer rows.Close()

	var points []stats.MonthlyPoint

	for rows.Next() {
		var p stats.MonthlyPoint
		if err := rows.Scan(&p.Month, &p.Count, &p.Amount); err != nil {
			return nil, fmt.Errorf("scanning monthly point: %w", err)
		}

		points = append(points, p)
	}

	return points, rows.Err()
}

func (s *Store) TopBusinesses(ctx context.Context, limit int) ([]stats.BusinessTotal, error) {
	query := `
		SELECT b.id, b.name, COUNT(i.id), COALESCE(SUM(i.amount), 0)
		FROM investments i
		JOIN businesses b ON b.id = i.business_id
		WHERE i.status = 'confirmed'
		GROUP BY b.id, b.name
		ORDER BY SUM(i.amount) DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("loading top businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinessTotals(rows)
}

func (s *Store) TopInvestors(ctx context.Context, limit int) ([]stats.InvestorTotal, error) {
	query := `
		SELECT u.id, u.name, COUNT(i.id), COALESCE(SUM(i.amount), 0)
		FROM investments i
		JOIN users u ON u.id = i.investor_id
		WHERE i.status = 'confirmed'
		GROUP BY u.id, u.name
		ORDER BY SUM(i.amount) DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("loading top investors: %w", err)
	}
	defer rows.Close()

	var totals []stats.InvestorTotal

	for rows.Next() {
		var t stats.InvestorTotal
		if err := rows.Scan(&t.InvestorID, &t.InvestorName, &t.Count, &t.Amount); err != nil {
			return nil, fmt.Errorf("scanning investor total: %w", err)
		}

		totals = append(totals, t)
	}

	return totals, rows.Err()
}

func (s *Store) OwnerTotals(ctx context.Context, ownerID uuid.UUID) (int, int64, error) {
	query := `
		SELECT COUNT(i.id), COALESCE(SUM(i.amount), 0)
		FROM investments i
		JOIN businesses b ON b.id = i.business_id
		WHERE b.owner_id = $1 AND i.status = 'confirmed'
	`

	var (
		count  int
		amount int64
	)

	if err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&count, &amount); err != nil {
		return 0, 0, fmt.Errorf("loading owner totals: %w", err)
	}

	return count, amount, nil
}

func (s *Store) OwnerPerBusiness(ctx context.Context, ownerID uuid.UUID) ([]stats.BusinessTotal, error) {
	query := `
		SELECT b.id, b.name, COUNT(i.id), COALESCE(SUM(i.amount), 0)
		FROM businesses b
		LEFT JOIN investments i ON i.business_id = b.id AND i.status = 'confirmed'
		WHERE b.owner_id = $1
		GROUP BY b.id, b.name
		ORDER BY b.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading owner businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinessTotals(rows)
}

func (s *Store) OwnerDaily(ctx context.Context, ownerID uuid.UUID, days int) ([]stats.DailyPoint, error) {
	query := `
		SELECT date_trunc('day', i.created_at) AS day, COUNT(*), COALESCE(SUM(i.amount), 0)
		FROM investments i
		JOIN businesses b ON b.id = i.business_id
		WHERE b.owner_id = $1
		  AND i.status = 'confirmed'
		  AND i.created_at >= date_trunc('day', now()) - ($2 || ' days')::interval
		GROUP BY day
		ORDER BY day
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, days)
	if err != nil {
		return nil, fmt.Errorf("loading owner daily series: %w", err)
	}
	defer rows.Close()

	var points []stats.DailyPoint

	for rows.Next() {
		var p stats.DailyPoint
		if err := rows.Scan(&p.Day, &p.Count, &p.Amount); err != nil {
			return nil, fmt.Errorf("scanning daily point: %w", err)
		}

		points = append(points, p)
	}

	return points, rows.Err()
}

func scanBusinessTotals(rows *sql.Rows) ([]stats.BusinessTotal, error) {
	var totals []stats.BusinessTotal

	for rows.Next() {
		var t stats.BusinessTotal
		if err := rows.Scan(&t.BusinessID, &t.BusinessName, &t.Count, &t.Amount); err != nil {
			return nil, fmt.Errorf("scanning business total: %w", err)
		}

		totals = append(totals, t)
	}

	return totals, rows.Err()
}
