package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBusinessOwner Role = "business_owner"
	RoleInvestor      Role = "investor"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleBusinessOwner, RoleInvestor:
		return Role(s), nil
	}

	return "", fmt.Errorf("invalid role %q", s)
}

// SessionUser is the authenticated identity attached to a request.
type SessionUser struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  Role
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Authorize decides whether the session user may act in one of the
// required roles. A nil user means no session at all.
func Authorize(user *SessionUser, roles ...Role) error {
	if user == nil {
		return ErrUnauthenticated
	}

	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}

	return ErrForbidden
}

// IsOwner reports whether the actor owns the resource.
func IsOwner(actorID, ownerID uuid.UUID) bool {
	return actorID == ownerID
}
