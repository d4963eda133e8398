package club

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("club not found")
	ErrNameRequired      = errors.New("club name is required")
	ErrInvalidRole       = errors.New("invalid member role")
	ErrUserAlreadyMember = errors.New("user is already a member of this club")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotMember         = errors.New("user is not a member of this club")
	ErrLastOwner         = errors.New("cannot remove the last owner of a club")
)

// Membership roles, matching the database enum. The role doubles as the
// pricing role: court price schedules may carry role-specific prices keyed by
// these values.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
	RoleMember  = "member"
)

// ValidRoles lists every assignable membership role.
var ValidRoles = []string{RoleOwner, RoleAdmin, RoleTrainer, RoleMember}

// Club is a tenant: a tennis or padel club with its own courts, members,
// wallets, and content.
type Club struct {
	ID        string
	Name      string
	Currency  string // ISO 4217 code used by the presentation layer
	IsActive  bool
	CreatedAt time.Time
}

// Member joins membership and user data for list views.
type Member struct {
	UserID      string
	Email       string
	DisplayName *string
	Role        string
	JoinedAt    time.Time
}

// Filter defines parameters for listing clubs.
type Filter struct {
	Page     int
	PageSize int
}

// MemberFilter defines parameters for listing club members.
type MemberFilter struct {
	Role     string
	Page     int
	PageSize int
}

// IsManagerRole reports whether the role can administer the club.
func IsManagerRole(role string) bool {
	return role == RoleOwner || role == RoleAdmin
}
