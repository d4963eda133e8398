package wallet

import (
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("wallet not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// Wallet is a member's prepaid balance within one club. A negative balance up
// to NegativeBalanceLimit is permitted when AllowNegativeBalance is set.
type Wallet struct {
	ID                   string
	ClubID               string
	UserID               string
	Balance              float64
	NegativeBalanceLimit float64
	AllowNegativeBalance bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Policy defines the negative-balance settings a club manager can change.
type Policy struct {
	NegativeBalanceLimit *float64
	AllowNegativeBalance *bool
}
