package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an immutable record of an administrative or money-moving
// action.
type Entry struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Metadata   map[string]any
	CreatedAt  time.Time
}
