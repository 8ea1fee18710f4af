package document

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type classifies an uploaded document.
type Type string

const (
	TypeRegistration Type = "registration"
	TypeLicense      Type = "license"
	TypeFinancials   Type = "financials"
	TypeImage        Type = "image"
	TypeProof        Type = "proof"
	TypeAgreement    Type = "agreement"
	TypeOther        Type = "other"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRegistration, TypeLicense, TypeFinancials, TypeImage, TypeProof, TypeAgreement, TypeOther:
		return Type(s), nil
	}

	return "", fmt.Errorf("invalid document type %q", s)
}

var (
	ErrNotFound  = errors.New("document not found")
	ErrForbidden = errors.New("not allowed to access this document")
)

// Document is a file attached to a business listing.
type Document struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	FileName     string
	FileURL      string
	DocumentType Type
	Verified     bool
	VerifiedBy   *uuid.UUID
	VerifiedAt   *time.Time
	CreatedAt    time.Time
}
