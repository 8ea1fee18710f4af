package watchlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=watchlist
type Repository interface {
	UpsertEntry(ctx context.Context, investorID, businessID uuid.UUID) (*Entry, error)
	DeleteEntry(ctx context.Context, investorID, businessID uuid.UUID) error
	ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*Entry, error)
}

// GrantChecker answers whether an investor holds a visibility grant.
type GrantChecker interface {
	Has(ctx context.Context, investorID, businessID uuid.UUID) (bool, error)
}

type BusinessChecker interface {
	BusinessExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo       Repository
	grants     GrantChecker
	businesses BusinessChecker
}

func NewService(repo Repository, grants GrantChecker, businesses BusinessChecker) *Service {
	return &Service{repo: repo, grants: grants, businesses: businesses}
}

// Add bookmarks a business. Adding an already-bookmarked business is a
// no-op and returns the existing entry.
func (s *Service) Add(ctx context.Context, investorID, businessID uuid.UUID) (*Entry, error) {
	exists, err := s.businesses.BusinessExists(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("checking business: %w", err)
	}

	if !exists {
		return nil, business.ErrNotFound
	}

	ok, err := s.grants.Has(ctx, investorID, businessID)
	if err != nil {
		return nil, fmt.Errorf("checking grant: %w", err)
	}

	if !ok {
		return nil, business.ErrForbidden
	}

	return s.repo.UpsertEntry(ctx, investorID, businessID)
}

func (s *Service) Remove(ctx context.Context, investorID, businessID uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, investorID, businessID)
}

func (s *Service) List(ctx context.Context, investorID uuid.UUID) ([]*Entry, error) {
	return s.repo.ListForInvestor(ctx, investorID)
}
