package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/user"
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

const selectUserColumns = `
	id, name, email, password_hash, role, is_active, created_at, updated_at
`

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var roleStr string

	if err := s.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &roleStr, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.Role = auth.Role(roleStr)

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Role, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE lower(email) = lower($1)`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("finding user by email: %w", err)
	}

	return u, nil
}

// AccountByEmail implements auth.AccountSource.
func (s *Store) AccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, err
	}

	return &auth.Account{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
	}, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Store) UpdateUser(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, role = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query, u.Name, u.Email, u.Role, u.IsActive, u.ID)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (s *Store) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, hash, id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

// UserRole implements visibility.RoleLookup. An empty role means the
// user does not exist.
func (s *Store) UserRole(ctx context.Context, id uuid.UUID) (auth.Role, error) {
	var roleStr string

	err := s.db.QueryRowContext(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&roleStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("resolving role: %w", err)
	}

	return auth.Role(roleStr), nil
}
