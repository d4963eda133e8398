package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySlot(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("free future slot is available", func(t *testing.T) {
		slot, err := ClassifySlot("c1", "2026-03-16", "09:00", nil, now)
		require.NoError(t, err)
		assert.Equal(t, SlotAvailable, slot.Status)
	})

	t.Run("earlier date is past", func(t *testing.T) {
		slot, err := ClassifySlot("c1", "2026-03-14", "09:00", nil, now)
		require.NoError(t, err)
		assert.Equal(t, SlotPast, slot.Status)
	})

	t.Run("today before now is past, at or after now is not", func(t *testing.T) {
		slot, err := ClassifySlot("c1", "2026-03-15", "11:00", nil, now)
		require.NoError(t, err)
		assert.Equal(t, SlotPast, slot.Status)

		slot, err = ClassifySlot("c1", "2026-03-15", "12:00", nil, now)
		require.NoError(t, err)
		assert.Equal(t, SlotAvailable, slot.Status)
	})

	t.Run("matching active reservation marks slot reserved", func(t *testing.T) {
		res := &Reservation{ID: "r1", CourtID: "c1", Date: "2026-03-16", Time: "09:00", Status: StatusActive}
		slot, err := ClassifySlot("c1", "2026-03-16", "09:00", []*Reservation{res}, now)
		require.NoError(t, err)
		assert.Equal(t, SlotReserved, slot.Status)
		require.NotNil(t, slot.Reservation)
		assert.Equal(t, "r1", slot.Reservation.ID)
	})

	t.Run("pending reservation blocks the slot too", func(t *testing.T) {
		res := &Reservation{CourtID: "c1", Date: "2026-03-16", Time: "09:00", Status: StatusPending}
		slot, err := ClassifySlot("c1", "2026-03-16", "09:00", []*Reservation{res}, now)
		require.NoError(t, err)
		assert.Equal(t, SlotReserved, slot.Status)
	})

	t.Run("cancelled reservation does not block", func(t *testing.T) {
		res := &Reservation{CourtID: "c1", Date: "2026-03-16", Time: "09:00", Status: StatusCancelled}
		slot, err := ClassifySlot("c1", "2026-03-16", "09:00", []*Reservation{res}, now)
		require.NoError(t, err)
		assert.Equal(t, SlotAvailable, slot.Status)
		assert.True(t, slot.Cancelled)
	})

	t.Run("cancelled then active on same slot is reserved", func(t *testing.T) {
		cancelled := &Reservation{CourtID: "c1", Date: "2026-03-16", Time: "09:00", Status: StatusCancelled}
		active := &Reservation{CourtID: "c1", Date: "2026-03-16", Time: "09:00", Status: StatusActive}
		slot, err := ClassifySlot("c1", "2026-03-16", "09:00", []*Reservation{cancelled, active}, now)
		require.NoError(t, err)
		assert.Equal(t, SlotReserved, slot.Status)
		assert.True(t, slot.Cancelled)
	})

	t.Run("other court or date does not match", func(t *testing.T) {
		others := []*Reservation{
			{CourtID: "c2", Date: "2026-03-16", Time: "09:00", Status: StatusActive},
			{CourtID: "c1", Date: "2026-03-17", Time: "09:00", Status: StatusActive},
			{CourtID: "c1", Date: "2026-03-16", Time: "10:00", Status: StatusActive},
		}
		slot, err := ClassifySlot("c1", "2026-03-16", "09:00", others, now)
		require.NoError(t, err)
		assert.Equal(t, SlotAvailable, slot.Status)
	})

	t.Run("unparsable slot time is an error", func(t *testing.T) {
		_, err := ClassifySlot("c1", "2026-03-16", "nine", nil, now)
		assert.Error(t, err)
	})
}

func TestComputeOccupancy(t *testing.T) {
	t.Run("cancelled reservations are excluded", func(t *testing.T) {
		reservations := []*Reservation{
			{Status: StatusActive},
			{Status: StatusPending},
			{Status: StatusCancelled},
		}
		occ := ComputeOccupancy(10, reservations)
		assert.Equal(t, 10, occ.TotalSlots)
		assert.Equal(t, 2, occ.ReservedCount)
		assert.Equal(t, 8, occ.AvailableCount)
		assert.False(t, occ.Inconsistent)
	})

	t.Run("more reservations than slots clamps to zero and flags", func(t *testing.T) {
		reservations := []*Reservation{
			{Status: StatusActive},
			{Status: StatusActive},
			{Status: StatusActive},
		}
		occ := ComputeOccupancy(2, reservations)
		assert.Equal(t, 0, occ.AvailableCount)
		assert.True(t, occ.Inconsistent)
	})
}
