package visibility

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("business not found")
	ErrDuplicate       = errors.New("business already assigned to this investor")
	ErrInvalidInvestor = errors.New("target user is not an investor")
)

// Grant permits one investor to view and invest in one business. Grants
// are created by admins and never updated; there is no revoke path.
type Grant struct {
	ID         uuid.UUID
	InvestorID uuid.UUID
	BusinessID uuid.UUID
	CreatedAt  time.Time

	// Populated by joined listings for the admin screen.
	InvestorName   string
	InvestorEmail  string
	BusinessName   string
	BusinessStatus string
}
