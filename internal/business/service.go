package business

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
)

// ListFilter narrows admin listings.
type ListFilter struct {
	Status *Status
}

// CatalogFilter narrows the investor-facing catalogue. Status defaults
// to approved when unset.
type CatalogFilter struct {
	Query     string
	Category  string
	Status    *Status
	MinAmount *int64
	MaxAmount *int64
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=business
type Repository interface {
	CreateBusiness(ctx context.Context, b *Business) error
	GetBusiness(ctx context.Context, id uuid.UUID) (*Business, error)
	UpdateBusiness(ctx context.Context, b *Business) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Business, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Business, error)
	ListVisible(ctx context.Context, investorID uuid.UUID, filter CatalogFilter) ([]*Business, error)
}

// GrantChecker answers whether an investor holds a visibility grant.
type GrantChecker interface {
	Has(ctx context.Context, investorID, businessID uuid.UUID) (bool, error)
}

// Notifier delivers a best-effort notification. Errors are logged by the
// caller and never fail the primary operation.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, message string, data map[string]any) error
}

// Auditor records a best-effort audit entry.
type Auditor interface {
	Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, metadata map[string]any) error
}

type Service struct {
	repo     Repository
	grants   GrantChecker
	notifier Notifier
	auditor  Auditor
}

func NewService(repo Repository, grants GrantChecker, notifier Notifier, auditor Auditor) *Service {
	return &Service{repo: repo, grants: grants, notifier: notifier, auditor: auditor}
}

type CreateParams struct {
	Name                     string
	Description              string
	Category                 string
	Latitude                 float64
	Longitude                float64
	MinInvestmentAmount      int64
	MaxInvestmentAmount      int64
	ExpectedReturnPercentage *float64
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Business, error) {
	if params.Name == "" || params.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrValidation)
	}

	if !validCoordinates(params.Latitude, params.Longitude) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}

	if params.MinInvestmentAmount <= 0 || params.MinInvestmentAmount > params.MaxInvestmentAmount {
		return nil, fmt.Errorf("%w: invalid investment amounts", ErrValidation)
	}

	b := &Business{
		OwnerID:                  ownerID,
		Name:                     params.Name,
		Description:              params.Description,
		Category:                 params.Category,
		Latitude:                 params.Latitude,
		Longitude:                params.Longitude,
		Status:                   StatusPending,
		MinInvestmentAmount:      params.MinInvestmentAmount,
		MaxInvestmentAmount:      params.MaxInvestmentAmount,
		ExpectedReturnPercentage: params.ExpectedReturnPercentage,
	}
	if err := s.repo.CreateBusiness(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// Get applies the per-role access rule: owners see their own listings,
// investors see approved listings they hold a grant on, admins see all.
func (s *Service) Get(ctx context.Context, viewer *auth.SessionUser, id uuid.UUID) (*Business, error) {
	b, err := s.repo.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}

	switch viewer.Role {
	case auth.RoleAdmin:
		return b, nil
	case auth.RoleBusinessOwner:
		if !auth.IsOwner(viewer.ID, b.OwnerID) {
			return nil, ErrForbidden
		}

		return b, nil
	case auth.RoleInvestor:
		if b.Status != StatusApproved {
			return nil, ErrForbidden
		}

		ok, err := s.grants.Has(ctx, viewer.ID, id)
		if err != nil {
			return nil, fmt.Errorf("checking grant: %w", err)
		}

		if !ok {
			return nil, ErrForbidden
		}

		return b, nil
	}

	return nil, ErrForbidden
}

func (s *Service) Update(ctx context.Context, actorID, id uuid.UUID, patch UpdatePatch) (*Business, error) {
	b, err := s.repo.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.IsOwner(actorID, b.OwnerID) {
		return nil, ErrForbidden
	}

	if !b.Status.Editable() {
		return nil, ErrLocked
	}

	applyPatch(b, patch)

	if b.Name == "" || b.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrValidation)
	}

	if !validCoordinates(b.Latitude, b.Longitude) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}

	if b.MinInvestmentAmount <= 0 || b.MinInvestmentAmount > b.MaxInvestmentAmount {
		return nil, fmt.Errorf("%w: invalid investment amounts", ErrValidation)
	}

	if err := s.repo.UpdateBusiness(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func applyPatch(b *Business, patch UpdatePatch) {
	if patch.Name != nil {
		b.Name = *patch.Name
	}

	if patch.Description != nil {
		b.Description = *patch.Description
	}

	if patch.Category != nil {
		b.Category = *patch.Category
	}

	if patch.Latitude != nil {
		b.Latitude = *patch.Latitude
	}

	if patch.Longitude != nil {
		b.Longitude = *patch.Longitude
	}

	if patch.MinInvestmentAmount != nil {
		b.MinInvestmentAmount = *patch.MinInvestmentAmount
	}

	if patch.MaxInvestmentAmount != nil {
		b.MaxInvestmentAmount = *patch.MaxInvestmentAmount
	}

	if patch.ExpectedReturnPercentage != nil {
		b.ExpectedReturnPercentage = patch.ExpectedReturnPercentage
	}

	if patch.MonthlyRevenue != nil {
		b.MonthlyRevenue = patch.MonthlyRevenue
	}

	if patch.ProfitMargin != nil {
		b.ProfitMargin = patch.ProfitMargin
	}

	if patch.GrowthPercentage != nil {
		b.GrowthPercentage = patch.GrowthPercentage
	}

	if patch.CustomerCount != nil {
		b.CustomerCount = patch.CustomerCount
	}
}

// UpdateStatus applies a status transition on behalf of an admin and
// emits one owner notification plus one audit entry per call. The role
// check lives at the HTTP layer; actorID identifies the admin for the
// audit trail.
func (s *Service) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, status Status) (*Business, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	b, err := s.repo.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b.Status = status

	kind := "business_status"
	switch status {
	case StatusApproved:
		kind = "business_approved"
	case StatusRejected:
		kind = "business_rejected"
	}

	message := fmt.Sprintf("Your business %q status changed to %s", b.Name, status)
	if err := s.notifier.Notify(ctx, b.OwnerID, kind, message, map[string]any{"businessId": id.String(), "status": string(status)}); err != nil {
		slog.Warn("status notification failed", "business_id", id, "error", err)
	}

	if err := s.auditor.Record(ctx, actorID, "update_business_status", "Business", id, map[string]any{"status": string(status)}); err != nil {
		slog.Warn("status audit failed", "business_id", id, "error", err)
	}

	return b, nil
}

func (s *Service) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Business, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) ListAll(ctx context.Context, filter ListFilter) ([]*Business, error) {
	return s.repo.ListAll(ctx, filter)
}

// ListVisibleForInvestor returns the granted businesses, filtered to
// approved unless the filter says otherwise.
func (s *Service) ListVisibleForInvestor(ctx context.Context, investorID uuid.UUID, filter CatalogFilter) ([]*Business, error) {
	if filter.Status == nil {
		filter.Status = new(StatusApproved)
	}

	return s.repo.ListVisible(ctx, investorID, filter)
}
