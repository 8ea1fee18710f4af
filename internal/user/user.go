package user

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("user with this email already exists")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// User represents a platform account. PasswordHash never leaves the
// service layer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         auth.Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UpdatePatch is the whitelisted set of admin-editable user fields.
type UpdatePatch struct {
	Name     *string
	Email    *string
	Role     *auth.Role
	IsActive *bool
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
