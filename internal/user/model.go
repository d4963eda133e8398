package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
)

// User represents a user in the system.
type User struct {
	ID            string // UUID
	Email         string
	PasswordHash  string
	DisplayName   *string
	CreatedAt     time.Time
	LastLoginAt   *time.Time
	IsActive      bool
	IsSystemAdmin bool
	Clubs         []ClubBrief
}

// ClubBrief holds minimal club-membership info for list views.
type ClubBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Filter defines filter options for listing users.
type Filter struct {
	Email       string
	DisplayName string
	IsActive    *bool // pointer to distinguish between false and nil (not set)

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// UpdateRequest defines the fields an admin may change on a user. Pointers
// distinguish "field not sent" from "field sent as false/empty".
type UpdateRequest struct {
	DisplayName   *string
	IsActive      *bool
	IsSystemAdmin *bool
}
