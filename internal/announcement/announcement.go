package announcement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("announcement not found")
	ErrValidation = errors.New("invalid announcement")
)

// Announcement is an update a business owner publishes to the
// investors who can see the business.
type Announcement struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	OwnerID    uuid.UUID
	Title      string
	Content    string
	CreatedAt  time.Time
}
