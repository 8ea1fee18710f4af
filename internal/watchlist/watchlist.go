package watchlist

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("watchlist entry not found")

// Entry bookmarks a business for an investor.
type Entry struct {
	ID         uuid.UUID
	InvestorID uuid.UUID
	BusinessID uuid.UUID
	CreatedAt  time.Time

	BusinessName   string
	BusinessStatus string
}
