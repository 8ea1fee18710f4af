package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=announcement
type Repository interface {
	CreateAnnouncement(ctx context.Context, a *Announcement) error
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*Announcement, error)
}

// BusinessSource resolves the business an announcement belongs to.
type BusinessSource interface {
	GetBusiness(ctx context.Context, id uuid.UUID) (*business.Business, error)
}

// GrantAudience lists the investors an announcement should reach.
type GrantAudience interface {
	InvestorsForBusiness(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error)
	Has(ctx context.Context, investorID, businessID uuid.UUID) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, message string, data map[string]any) error
}

type Service struct {
	repo       Repository
	businesses BusinessSource
	grants     GrantAudience
	notifier   Notifier
}

func NewService(repo Repository, businesses BusinessSource, grants GrantAudience, notifier Notifier) *Service {
	return &Service{repo: repo, businesses: businesses, grants: grants, notifier: notifier}
}

// Publish creates an announcement on a business the actor owns and
// notifies every investor holding a grant on it.
func (s *Service) Publish(ctx context.Context, actor *auth.SessionUser, businessID uuid.UUID, title, content string) (*Announcement, error) {
	b, err := s.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if actor.Role != auth.RoleBusinessOwner || !auth.IsOwner(actor.ID, b.OwnerID) {
		return nil, business.ErrForbidden
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}

	a := &Announcement{
		BusinessID: businessID,
		OwnerID:    actor.ID,
		Title:      title,
		Content:    content,
	}
	if err := s.repo.CreateAnnouncement(ctx, a); err != nil {
		return nil, err
	}

	investors, err := s.grants.InvestorsForBusiness(ctx, businessID)
	if err != nil {
		slog.Warn("announcement audience lookup failed", "announcement_id", a.ID, "error", err)
		return a, nil
	}

	for _, investorID := range investors {
		err := s.notifier.Notify(ctx, investorID, "announcement",
			fmt.Sprintf("%s posted an update: %s", b.Name, title),
			map[string]any{"businessId": businessID.String(), "announcementId": a.ID.String()})
		if err != nil {
			slog.Warn("announcement notification failed", "announcement_id", a.ID, "investor_id", investorID, "error", err)
		}
	}

	return a, nil
}

// List returns a business's announcements. Owner, admin, or an
// investor holding a grant.
func (s *Service) List(ctx context.Context, viewer *auth.SessionUser, businessID uuid.UUID) ([]*Announcement, error) {
	b, err := s.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	switch viewer.Role {
	case auth.RoleAdmin:
	case auth.RoleBusinessOwner:
		if !auth.IsOwner(viewer.ID, b.OwnerID) {
			return nil, business.ErrForbidden
		}
	case auth.RoleInvestor:
		ok, err := s.grants.Has(ctx, viewer.ID, businessID)
		if err != nil {
			return nil, fmt.Errorf("checking grant: %w", err)
		}

		if !ok {
			return nil, business.ErrForbidden
		}
	default:
		return nil, business.ErrForbidden
	}

	return s.repo.ListByBusiness(ctx, businessID)
}
