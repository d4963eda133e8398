package court

import (
	"errors"
	"time"

	"github.com/courtside/club-backend/internal/pkg/validation"
	"github.com/courtside/club-backend/internal/pricing"
	"github.com/courtside/club-backend/internal/schedule"
)

var (
	ErrNotFound        = errors.New("court not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidClub     = errors.New("invalid club_id")
	ErrInvalidWindow   = errors.New("available_from must be before available_until")
	ErrInvalidInterval = errors.New("time_slot_interval must be positive")
	ErrInvalidRate     = errors.New("hourly_rate cannot be negative")
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
)

// Court is a bookable resource within a club. Operating window, interval, and
// pricing configuration drive the slot grid and the price calculator.
type Court struct {
	ID               string
	ClubID           string
	Name             string
	Surface          string // e.g. clay, hard, artificial grass
	AvailableFrom    string // "HH:MM"
	AvailableUntil   string // "HH:MM"
	TimeSlotInterval int    // minutes
	HourlyRate       float64
	PriceSchedules   []pricing.Schedule
	Discounts        []pricing.DiscountRule
	HeatingCost      float64
	LightingCost     float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	ClubID   string
	Page     int
	PageSize int
}

// Normalize fills absent operating-window fields with the documented
// defaults. Missing optional configuration never fails a computation.
func (c *Court) Normalize() {
	if c.AvailableFrom == "" {
		c.AvailableFrom = schedule.DefaultOpenTime
	}
	if c.AvailableUntil == "" {
		c.AvailableUntil = schedule.DefaultCloseTime
	}
	if c.TimeSlotInterval <= 0 {
		c.TimeSlotInterval = schedule.DefaultInterval
	}
}

// Validate checks the court configuration. A court record without an ID makes
// every downstream computation impossible, so that is reported as a typed
// validation error; configuration mistakes get their own sentinels.
func (c *Court) Validate() error {
	if c.ID == "" {
		return validation.Errorf("id", "court id is required")
	}
	return c.validateConfig()
}

// validateConfig checks the fields a manager can set, without requiring an ID
// (used on create before the ID is generated).
func (c *Court) validateConfig() error {
	from, err := schedule.ParseClock("available_from", c.AvailableFrom)
	if err != nil {
		return err
	}
	until, err := schedule.ParseClock("available_until", c.AvailableUntil)
	if err != nil {
		return err
	}
	if from >= until {
		return ErrInvalidWindow
	}
	if c.TimeSlotInterval <= 0 {
		return ErrInvalidInterval
	}
	if c.HourlyRate < 0 {
		return ErrInvalidRate
	}
	for _, d := range c.Discounts {
		if d.Percentage < 0 || d.Percentage > 100 {
			return ErrInvalidDiscount
		}
	}
	return nil
}

// Tariff assembles the court's pricing configuration.
func (c *Court) Tariff() pricing.Tariff {
	return pricing.Tariff{
		HourlyRate:   c.HourlyRate,
		Schedules:    c.PriceSchedules,
		Discounts:    c.Discounts,
		HeatingCost:  c.HeatingCost,
		LightingCost: c.LightingCost,
	}
}

// Slots generates the court's slot grid for one day.
func (c *Court) Slots() ([]string, error) {
	return schedule.Slots(c.AvailableFrom, c.AvailableUntil, c.TimeSlotInterval)
}
