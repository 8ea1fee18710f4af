package investment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=investment
type Repository interface {
	CreateInvestment(ctx context.Context, inv *Investment) error
	GetInvestment(ctx context.Context, id uuid.UUID) (*Investment, error)
	ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*Investment, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Investment, error)
	ListAll(ctx context.Context) ([]*Investment, error)
}

// BusinessSource resolves the business an investment targets.
type BusinessSource interface {
	GetBusiness(ctx context.Context, id uuid.UUID) (*business.Business, error)
}

// GrantChecker answers whether an investor holds a visibility grant.
type GrantChecker interface {
	Has(ctx context.Context, investorID, businessID uuid.UUID) (bool, error)
}

// AgreementRecorder files the agreement document generated for a
// confirmed investment.
type AgreementRecorder interface {
	RecordAgreement(ctx context.Context, businessID, investmentID, investorID uuid.UUID) error
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, message string, data map[string]any) error
}

type Auditor interface {
	Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, metadata map[string]any) error
}

type Service struct {
	repo       Repository
	businesses BusinessSource
	grants     GrantChecker
	agreements AgreementRecorder
	notifier   Notifier
	auditor    Auditor
}

func NewService(repo Repository, businesses BusinessSource, grants GrantChecker, agreements AgreementRecorder, notifier Notifier, auditor Auditor) *Service {
	return &Service{
		repo:       repo,
		businesses: businesses,
		grants:     grants,
		agreements: agreements,
		notifier:   notifier,
		auditor:    auditor,
	}
}

// Create validates and records an investment. The checks run in order:
// business exists, business is approved, the investor holds a grant,
// the amount is positive and within the business bounds. Two concurrent
// in-bounds investments both succeed; there is no aggregate raise cap.
func (s *Service) Create(ctx context.Context, investorID, businessID uuid.UUID, amount int64) (*Investment, error) {
	b, err := s.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if b.Status != business.StatusApproved {
		return nil, ErrNotInvestable
	}

	granted, err := s.grants.Has(ctx, investorID, businessID)
	if err != nil {
		return nil, fmt.Errorf("checking grant: %w", err)
	}

	if !granted {
		return nil, ErrNoAccess
	}

	if amount <= 0 || amount < b.MinInvestmentAmount || amount > b.MaxInvestmentAmount {
		return nil, fmt.Errorf("%w: must be between %d and %d",
			ErrInvalidAmount, b.MinInvestmentAmount, b.MaxInvestmentAmount)
	}

	inv := &Investment{
		InvestorID: investorID,
		BusinessID: businessID,
		Amount:     amount,
		Status:     StatusConfirmed,
	}
	if err := s.repo.CreateInvestment(ctx, inv); err != nil {
		return nil, err
	}

	// Agreement, notification and audit are best-effort: a confirmed
	// investment stands even if the side records fail.
	if err := s.agreements.RecordAgreement(ctx, businessID, inv.ID, investorID); err != nil {
		slog.Warn("agreement record failed", "investment_id", inv.ID, "error", err)
	}

	message := fmt.Sprintf("New investment of %d in %s", amount, b.Name)
	if err := s.notifier.Notify(ctx, b.OwnerID, "investment_created", message,
		map[string]any{"investmentId": inv.ID.String(), "businessId": businessID.String()}); err != nil {
		slog.Warn("investment notification failed", "investment_id", inv.ID, "error", err)
	}

	if err := s.auditor.Record(ctx, investorID, "create_investment", "Investment", inv.ID,
		map[string]any{"amount": amount, "businessId": businessID.String()}); err != nil {
		slog.Warn("investment audit failed", "investment_id", inv.ID, "error", err)
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Investment, error) {
	return s.repo.GetInvestment(ctx, id)
}

func (s *Service) ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]*Investment, error) {
	return s.repo.ListForInvestor(ctx, investorID)
}

func (s *Service) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Investment, error) {
	return s.repo.ListForOwner(ctx, ownerID)
}

func (s *Service) ListAll(ctx context.Context) ([]*Investment, error) {
	return s.repo.ListAll(ctx)
}
