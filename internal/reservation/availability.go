package reservation

import (
	"time"

	"github.com/courtside/club-backend/internal/pricing"
	"github.com/courtside/club-backend/internal/schedule"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPast      SlotStatus = "past"
	SlotReserved  SlotStatus = "reserved"
)

// Slot is one classified entry of a court's daily grid.
type Slot struct {
	Time        string             `json:"time"`
	EndTime     string             `json:"end_time"`
	Status      SlotStatus         `json:"status"`
	Reservation *Reservation       `json:"-"`
	Cancelled   bool               `json:"cancelled,omitempty"`
	Price       *pricing.PriceInfo `json:"price,omitempty"`
}

// ClassifySlot decides whether one grid slot is reserved, past, or available.
// A non-cancelled reservation on the slot always wins, even for past slots,
// so history views show who held the court. Cancelled reservations never
// block the slot; they only set the Cancelled marker for audit display.
func ClassifySlot(courtID, date, slotTime string, reservations []*Reservation, now time.Time) (Slot, error) {
	startMin, err := schedule.ParseClock("time", slotTime)
	if err != nil {
		return Slot{}, err
	}

	slot := Slot{Time: slotTime, Status: SlotAvailable}

	for _, r := range reservations {
		if r.CourtID != courtID || r.Date != date {
			continue
		}
		resMin, err := schedule.ParseClock("time", r.Time)
		if err != nil {
			return Slot{}, err
		}
		if resMin != startMin {
			continue
		}
		if r.Status == StatusCancelled {
			slot.Cancelled = true
			continue
		}
		slot.Status = SlotReserved
		slot.Reservation = r
		return slot, nil
	}

	today := now.Format(isoDateLayout)
	nowMin := now.Hour()*60 + now.Minute()
	if date < today || (date == today && startMin < nowMin) {
		slot.Status = SlotPast
	}
	return slot, nil
}

// Occupancy summarizes one court's grid for one date.
type Occupancy struct {
	TotalSlots     int  `json:"total_slots"`
	ReservedCount  int  `json:"reserved_count"`
	AvailableCount int  `json:"available_count"`
	Inconsistent   bool `json:"inconsistent,omitempty"`
}

// ComputeOccupancy counts non-cancelled reservations against the grid size.
// Reservations placed outside the generated grid can push the available
// count below zero; that is clamped to 0 and flagged instead of failing.
func ComputeOccupancy(totalSlots int, reservations []*Reservation) Occupancy {
	occ := Occupancy{TotalSlots: totalSlots}
	for _, r := range reservations {
		if r.Status != StatusCancelled {
			occ.ReservedCount++
		}
	}
	occ.AvailableCount = totalSlots - occ.ReservedCount
	if occ.AvailableCount < 0 {
		occ.AvailableCount = 0
		occ.Inconsistent = true
	}
	return occ
}
