package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=message
type Repository interface {
	CreateMessage(ctx context.Context, msg *Message) error
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*Message, error)
}

// BusinessSource resolves the business a conversation belongs to.
type BusinessSource interface {
	GetBusiness(ctx context.Context, id uuid.UUID) (*business.Business, error)
}

type GrantChecker interface {
	Has(ctx context.Context, investorID, businessID uuid.UUID) (bool, error)
}

type Service struct {
	repo       Repository
	businesses BusinessSource
	grants     GrantChecker
}

func NewService(repo Repository, businesses BusinessSource, grants GrantChecker) *Service {
	return &Service{repo: repo, businesses: businesses, grants: grants}
}

// Send records a message on a business's conversation. The owner can
// write to any of their investors, an investor with a grant can write
// to the owner; an investor leaving the recipient blank gets the owner
// by default.
func (s *Service) Send(ctx context.Context, sender *auth.SessionUser, businessID uuid.UUID, recipientID *uuid.UUID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	b, err := s.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	m := &Message{
		BusinessID: businessID,
		SenderID:   sender.ID,
		Content:    content,
	}

	switch sender.Role {
	case auth.RoleBusinessOwner:
		if !auth.IsOwner(sender.ID, b.OwnerID) {
			return nil, business.ErrForbidden
		}

		if recipientID == nil {
			return nil, fmt.Errorf("%w: recipient is required", ErrValidation)
		}

		m.RecipientID = *recipientID
	case auth.RoleInvestor:
		ok, err := s.grants.Has(ctx, sender.ID, businessID)
		if err != nil {
			return nil, fmt.Errorf("checking grant: %w", err)
		}

		if !ok {
			return nil, business.ErrForbidden
		}

		m.RecipientID = b.OwnerID
		if recipientID != nil {
			m.RecipientID = *recipientID
		}
	default:
		return nil, business.ErrForbidden
	}

	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	m.SenderName = sender.Name

	return m, nil
}

// List returns a business's conversation oldest first. Owner, admin,
// or an investor holding a grant.
func (s *Service) List(ctx context.Context, viewer *auth.SessionUser, businessID uuid.UUID) ([]*Message, error) {
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
