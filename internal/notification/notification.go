package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes what triggered a notification.
type Kind string

const (
	KindBusinessApproved  Kind = "business_approved"
	KindBusinessRejected  Kind = "business_rejected"
	KindBusinessStatus    Kind = "business_status"
	KindBusinessAssigned  Kind = "business_assigned"
	KindInvestmentCreated Kind = "investment_created"
	KindAnnouncement      Kind = "announcement"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      Kind
	Message   string
	Data      map[string]any
	Read      bool
	CreatedAt time.Time
}
