package domain

import (
	"errors"
	"time"
)

const (
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already taken")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")

// ValidRole reports whether r names a known privilege tier.
func ValidRole(r string) bool {
	return r == RoleEmployee || r == RoleAdmin
}

// User is a registered identity. PasswordHash never leaves the process:
// it is excluded from JSON and therefore from every API response.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FullName     string    `json:"full_name" bson:"full_name"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
