package message

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("invalid message fields")

// Message is one line of the per-business conversation between the
// owner and an investor.
type Message struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Content     string
	CreatedAt   time.Time

	// Populated by joined listings.
	SenderName string
}
