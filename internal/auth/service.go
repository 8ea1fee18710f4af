package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is deactivated")
)

// Account is the credential view of a user record.
type Account struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	IsActive     bool
}

//go:generate mockgen -source=service.go -destination=accounts_mock.go -package=auth
type AccountSource interface {
	// AccountByEmail looks up an account by lowercased email.
	// Returns nil when no account matches.
	AccountByEmail(ctx context.Context, email string) (*Account, error)
}

type Service struct {
	accounts AccountSource
	issuer   *TokenIssuer
}

func NewService(accounts AccountSource, issuer *TokenIssuer) *Service {
	return &Service{accounts: accounts, issuer: issuer}
}

// Login authenticates credentials and issues a session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*SessionUser, string, error) {
	account, err := s.accounts.AccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("looking up account: %w", err)
	}

	if account == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, "", ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	user := SessionUser{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return &user, token, nil
}
