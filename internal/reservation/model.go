package reservation

import (
	"errors"
	"time"

	"github.com/courtside/club-backend/internal/pkg/validation"
)

var (
	ErrNotFound         = errors.New("reservation not found")
	ErrSlotTaken        = errors.New("slot is already reserved")
	ErrSlotNotInGrid    = errors.New("time is not a valid slot for this court")
	ErrSlotInPast       = errors.New("slot is in the past")
	ErrNoSlots          = errors.New("at least one slot is required")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrNotMember        = errors.New("user is not a member of this club")
	ErrForbidden        = errors.New("permission denied")
)

// Reservation statuses. Cancelled reservations never block availability and
// are excluded from occupancy counts.
const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Kind is the reservation's type, computed once at ingestion from the
// booking flags. Display and reporting code must use Kind instead of
// re-checking the flags.
type Kind string

const (
	KindNormal    Kind = "normal"
	KindTraining  Kind = "training"
	KindLesson    Kind = "lesson"
	KindChallenge Kind = "challenge"
	KindGift      Kind = "gift"
)

// KindOf maps the booking flags to a Kind. The priority order matters when
// several flags are set: training and lesson beat challenge, which beats
// gift; unflagged reservations are normal.
func KindOf(isTraining, isLesson, isChallenge, isGift bool) Kind {
	switch {
	case isTraining:
		return KindTraining
	case isLesson:
		return KindLesson
	case isChallenge:
		return KindChallenge
	case isGift:
		return KindGift
	default:
		return KindNormal
	}
}

// Reservation is one occupied slot. At most one non-cancelled reservation
// exists per (court_id, date, time); the database enforces this with a
// partial unique index.
type Reservation struct {
	ID       string
	ClubID   string
	CourtID  string
	UserID   string
	Date     string // ISO "YYYY-MM-DD", canonicalized at ingestion
	Time     string // "HH:MM" slot start
	EndTime  string // "HH:MM"
	Duration int    // minutes
	Status   string
	Kind     Kind

	Heater             bool
	Light              bool
	IsGuestReservation bool

	AmountPaid           float64
	OriginalPrice        float64
	DiscountPercentage   float64
	DiscountApplied      bool
	CouponApplied        bool
	CouponCode           string
	CouponDiscountAmount float64
	JointPayment         bool
	JointAmount          float64
	PaidWithWallet       bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

const (
	isoDateLayout    = "2006-01-02"
	dottedDateLayout = "02.01.2006"
)

// ParseDate canonicalizes a calendar date to ISO "YYYY-MM-DD". Records from
// the old store carry dates in either ISO or "DD.MM.YYYY" form; both are
// accepted here, at the read boundary, and nowhere else.
func ParseDate(field, s string) (string, error) {
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return t.Format(isoDateLayout), nil
	}
	if t, err := time.Parse(dottedDateLayout, s); err == nil {
		return t.Format(isoDateLayout), nil
	}
	return "", validation.Errorf(field, "invalid date %q: want YYYY-MM-DD or DD.MM.YYYY", s)
}
