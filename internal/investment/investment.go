package investment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an investment. Investments
// are recorded as confirmed directly; there is no pending-confirmation
// step and no cancel path.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrNotFound      = errors.New("investment not found")
	ErrNotInvestable = errors.New("business is not approved for investments")
	ErrNoAccess      = errors.New("no access to this business")
	ErrInvalidAmount = errors.New("invalid investment amount")
)

// Investment is an append-only record of money placed into a business.
type Investment struct {
	ID         uuid.UUID
	InvestorID uuid.UUID
	BusinessID uuid.UUID
	Amount     int64
	Status     Status
	CreatedAt  time.Time

	// Populated by joined listings.
	BusinessName  string
	InvestorName  string
	InvestorEmail string
}
