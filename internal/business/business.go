package business

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a business listing.
type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusVerified    Status = "verified"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// ParseStatus validates a status literal. Any parsed status is a legal
// transition target: admins hold manual-override authority over the
// pending -> under_review -> verified -> approved/rejected progression.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusUnderReview, StatusVerified, StatusApproved, StatusRejected:
		return Status(s), nil
	}

	return "", fmt.Errorf("invalid status %q", s)
}

// Editable reports whether the owner may still mutate the listing.
// Approved listings are locked; rejected ones stay editable so the owner
// can fix and implicitly resubmit.
func (s Status) Editable() bool {
	return s != StatusApproved
}

var (
	ErrNotFound   = errors.New("business not found")
	ErrForbidden  = errors.New("not allowed to access this business")
	ErrLocked     = errors.New("cannot edit approved businesses")
	ErrValidation = errors.New("invalid business fields")
)

// Business is an investment opportunity listed by a business owner.
type Business struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	OwnerName   string
	OwnerEmail  string
	Name        string
	Description string
	Category    string
	Latitude    float64
	Longitude   float64
	Status      Status

	MinInvestmentAmount      int64
	MaxInvestmentAmount      int64
	ExpectedReturnPercentage *float64

	MonthlyRevenue   *int64
	ProfitMargin     *float64
	GrowthPercentage *float64
	CustomerCount    *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdatePatch is the whitelisted set of owner-editable fields.
type UpdatePatch struct {
	Name                     *string
	Description              *string
	Category                 *string
	Latitude                 *float64
	Longitude                *float64
	MinInvestmentAmount      *int64
	MaxInvestmentAmount      *int64
	ExpectedReturnPercentage *float64
	MonthlyRevenue           *int64
	ProfitMargin             *float64
	GrowthPercentage         *float64
	CustomerCount            *int64
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
