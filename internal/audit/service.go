package audit

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=audit
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*Entry, error)
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends an audit entry. Callers treat failures as best-effort.
func (s *Service) Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, metadata map[string]any) error {
	e := &Entry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
	}

	return s.repo.CreateEntry(ctx, e)
}

func (s *Service) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*Entry, error) {
	return s.repo.ListByEntity(ctx, entityType, entityID)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return s.repo.ListRecent(ctx, limit)
}
