package notification

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=notification
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error)
	GetNotification(ctx context.Context, id uuid.UUID) (*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Notify records a notification for a user. Callers treat failures as
// best-effort and must not abort the triggering operation.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, kind, message string, data map[string]any) error {
	n := &Notification{
		UserID:  userID,
		Kind:    Kind(kind),
		Message: message,
		Data:    data,
	}

	return s.repo.CreateNotification(ctx, n)
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *Service) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead marks one notification read. Users may only touch their own.
func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	n, err := s.repo.GetNotification(ctx, id)
	if err != nil {
		return err
	}

	if n.UserID != userID {
		return ErrNotFound
	}

	return s.repo.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}
