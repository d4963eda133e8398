package http

import (
	"time"

	"github.com/courtside/club-backend/internal/court"
	"github.com/courtside/club-backend/internal/pricing"
)

// CourtTag holds minimal court info for embedding in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CourtResponse struct {
	ID               string                 `json:"id"`
	ClubID           string                 `json:"club_id"`
	Name             string                 `json:"name"`
	Surface          string                 `json:"surface,omitempty"`
	AvailableFrom    string                 `json:"available_from"`
	AvailableUntil   string                 `json:"available_until"`
	TimeSlotInterval int                    `json:"time_slot_interval"`
	HourlyRate       float64                `json:"hourly_rate"`
	PriceSchedules   []pricing.Schedule     `json:"price_schedules"`
	Discounts        []pricing.DiscountRule `json:"discounts"`
	HeatingCost      float64                `json:"heating_cost"`
	LightingCost     float64                `json:"lighting_cost"`
	CreatedAt        time.Time              `json:"created_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	schedules := c.PriceSchedules
	if schedules == nil {
		schedules = []pricing.Schedule{}
	}
	discounts := c.Discounts
	if discounts == nil {
		discounts = []pricing.DiscountRule{}
	}

	return CourtResponse{
		ID:               c.ID,
		ClubID:           c.ClubID,
		Name:             c.Name,
		Surface:          c.Surface,
		AvailableFrom:    c.AvailableFrom,
		AvailableUntil:   c.AvailableUntil,
		TimeSlotInterval: c.TimeSlotInterval,
		HourlyRate:       c.HourlyRate,
		PriceSchedules:   schedules,
		Discounts:        discounts,
		HeatingCost:      c.HeatingCost,
		LightingCost:     c.LightingCost,
		CreatedAt:        c.CreatedAt,
	}
}

type CreateCourtRequest struct {
	Name             string                 `json:"name" binding:"required"`
	Surface          string                 `json:"surface"`
	AvailableFrom    string                 `json:"available_from"`
	AvailableUntil   string                 `json:"available_until"`
	TimeSlotInterval int                    `json:"time_slot_interval" binding:"omitempty,gt=0"`
	HourlyRate       float64                `json:"hourly_rate" binding:"gte=0"`
	PriceSchedules   []pricing.Schedule     `json:"price_schedules"`
	Discounts        []pricing.DiscountRule `json:"discounts"`
	HeatingCost      float64                `json:"heating_cost" binding:"gte=0"`
	LightingCost     float64                `json:"lighting_cost" binding:"gte=0"`
}

type UpdateCourtRequest struct {
	Name             *string                `json:"name"`
	Surface          *string                `json:"surface"`
	AvailableFrom    *string                `json:"available_from"`
	AvailableUntil   *string                `json:"available_until"`
	TimeSlotInterval *int                   `json:"time_slot_interval" binding:"omitempty,gt=0"`
	HourlyRate       *float64               `json:"hourly_rate" binding:"omitempty,gte=0"`
	PriceSchedules   []pricing.Schedule     `json:"price_schedules"`
	Discounts        []pricing.DiscountRule `json:"discounts"`
	HeatingCost      *float64               `json:"heating_cost" binding:"omitempty,gte=0"`
	LightingCost     *float64               `json:"lighting_cost" binding:"omitempty,gte=0"`
}
