package visibility

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=visibility
type Repository interface {
	CreateGrant(ctx context.Context, g *Grant) error
	FindGrant(ctx context.Context, investorID, businessID uuid.UUID) (*Grant, error)
	ListGrants(ctx context.Context) ([]*Grant, error)
	ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*Grant, error)
	InvestorsForBusiness(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error)
}

// RoleLookup resolves the role of a user. An empty role means the user
// does not exist.
type RoleLookup interface {
	UserRole(ctx context.Context, id uuid.UUID) (auth.Role, error)
}

// BusinessChecker reports whether a business exists.
type BusinessChecker interface {
	BusinessExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, message string, data map[string]any) error
}

type Auditor interface {
	Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, metadata map[string]any) error
}

type Service struct {
	repo       Repository
	roles      RoleLookup
	businesses BusinessChecker
	notifier   Notifier
	auditor    Auditor
}

func NewService(repo Repository, roles RoleLookup, businesses BusinessChecker, notifier Notifier, auditor Auditor) *Service {
	return &Service{repo: repo, roles: roles, businesses: businesses, notifier: notifier, auditor: auditor}
}

// Grant assigns a business to an investor. One grant per pair.
func (s *Service) Grant(ctx context.Context, actorID, investorID, businessID uuid.UUID) (*Grant, error) {
	role, err := s.roles.UserRole(ctx, investorID)
	if err != nil {
		return nil, fmt.Errorf("resolving investor: %w", err)
	}

	if role != auth.RoleInvestor {
		return nil, ErrInvalidInvestor
	}

	exists, err := s.businesses.BusinessExists(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("checking business: %w", err)
	}

	if !exists {
		return nil, ErrNotFound
	}

	existing, err := s.repo.FindGrant(ctx, investorID, businessID)
	if err != nil {
		return nil, fmt.Errorf("checking existing grant: %w", err)
	}

	if existing != nil {
		return nil, ErrDuplicate
	}

	g := &Grant{InvestorID: investorID, BusinessID: businessID}
	if err := s.repo.CreateGrant(ctx, g); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, investorID, "business_assigned",
		"A new business has been assigned to you",
		map[string]any{"businessId": businessID.String()}); err != nil {
		slog.Warn("grant notification failed", "grant_id", g.ID, "error", err)
	}

	if err := s.auditor.Record(ctx, actorID, "assign_visibility", "BusinessVisibility", g.ID,
		map[string]any{"investorId": investorID.String(), "businessId": businessID.String()}); err != nil {
		slog.Warn("grant audit failed", "grant_id", g.ID, "error", err)
	}

	return g, nil
}

// Has implements the grant lookup consulted by investor-facing reads and
// by investment creation.
func (s *Service) Has(ctx context.Context, investorID, businessID uuid.UUID) (bool, error) {
	g, err := s.repo.FindGrant(ctx, investorID, businessID)
	if err != nil {
		return false, err
	}

	return g != nil, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*Grant, error) {
	return s.repo.ListGrants(ctx)
}

func (s *Service) ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*Grant, error) {
	return s.repo.ListForInvestor(ctx, investorID)
}

// InvestorsForBusiness returns the investors holding a grant on the
// business, for announcement fan-out.
func (s *Service) InvestorsForBusiness(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.InvestorsForBusiness(ctx, businessID)
}
