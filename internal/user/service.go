package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hfaria/ventura/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	Email    string
	Password string
	Role     auth.Role
}

var ErrValidation = errors.New("invalid user fields")

const minPasswordLength = 6

func (s *Service) Create(ctx context.Context, params CreateParams) (*User, error) {
	params.Email = strings.ToLower(strings.TrimSpace(params.Email))

	if params.Name == "" || !validEmail(params.Email) {
		return nil, ErrValidation
	}

	if len(params.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	if _, err := auth.ParseRole(string(params.Role)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.repo.FindByEmail(ctx, params.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: string(hash),
		Role:         params.Role,
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch UpdatePatch) (*User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, ErrValidation
		}

		u.Name = *patch.Name
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if !validEmail(email) {
			return nil, ErrValidation
		}

		if email != u.Email {
			existing, err := s.repo.FindByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("checking email: %w", err)
			}

			if existing != nil {
				return nil, ErrEmailTaken
			}
		}

		u.Email = email
	}

	if patch.Role != nil {
		if _, err := auth.ParseRole(string(*patch.Role)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		u.Role = *patch.Role
	}

	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	if _, err := s.repo.GetUser(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.repo.UpdatePasswordHash(ctx, id, string(hash))
}
