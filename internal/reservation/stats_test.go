package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	reservations := []*Reservation{
		{CourtID: "c1", Time: "09:00", Status: StatusActive, Kind: KindNormal, AmountPaid: 100, OriginalPrice: 120, DiscountApplied: true, Heater: true},
		{CourtID: "c1", Time: "09:00", Status: StatusActive, Kind: KindTraining, AmountPaid: 80, OriginalPrice: 80, Light: true},
		{CourtID: "c2", Time: "18:00", Status: StatusActive, Kind: KindNormal, AmountPaid: 60, OriginalPrice: 75, CouponApplied: true, CouponDiscountAmount: 15},
		{CourtID: "c2", Time: "10:00", Status: StatusPending, Kind: KindGift, AmountPaid: 0, OriginalPrice: 50},
		{CourtID: "c1", Time: "09:00", Status: StatusCancelled, Kind: KindNormal, AmountPaid: 40, OriginalPrice: 40},
	}

	report := BuildReport("2026-03", reservations)

	assert.Equal(t, "2026-03", report.Month)
	assert.Equal(t, 5, report.TotalReservations)
	assert.Equal(t, 3, report.ActiveReservations)
	assert.Equal(t, 1, report.CancelledReservations)

	// Revenue only counts active reservations; the cancelled one paid 40
	// but must not appear anywhere.
	assert.InDelta(t, 240.0, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 35.0, report.TotalDiscounts, 1e-9)
	assert.InDelta(t, 80.0, report.AverageRevenue, 1e-9)
	assert.InDelta(t, 180.0, report.RevenueByCourt["c1"], 1e-9)
	assert.InDelta(t, 60.0, report.RevenueByCourt["c2"], 1e-9)

	assert.Equal(t, 2, report.CountsByKind[KindNormal])
	assert.Equal(t, 1, report.CountsByKind[KindTraining])
	assert.Equal(t, 1, report.CountsByKind[KindGift])
	assert.Equal(t, 1, report.HeaterCount)
	assert.Equal(t, 1, report.LightCount)
	assert.Equal(t, 1, report.DiscountCount)
	assert.Equal(t, 1, report.CouponCount)
	assert.InDelta(t, 15.0, report.CouponSavings, 1e-9)
}

func TestBuildReportPeakHours(t *testing.T) {
	t.Run("ranks by count with stable ties", func(t *testing.T) {
		reservations := []*Reservation{
			{Time: "10:00", Status: StatusActive},
			{Time: "09:00", Status: StatusActive},
			{Time: "10:00", Status: StatusActive},
			{Time: "18:00", Status: StatusActive},
		}
		report := BuildReport("2026-03", reservations)

		// 10:00 has two; 09:00 and 18:00 tie at one and keep their
		// first-appearance order.
		assert.Equal(t, []PeakHour{
			{Hour: 10, Count: 2},
			{Hour: 9, Count: 1},
			{Hour: 18, Count: 1},
		}, report.PeakHours)
	})

	t.Run("limits to top five", func(t *testing.T) {
		times := []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00"}
		var reservations []*Reservation
		for _, tm := range times {
			reservations = append(reservations, &Reservation{Time: tm, Status: StatusActive})
		}
		report := BuildReport("2026-03", reservations)
		assert.Len(t, report.PeakHours, 5)
	})
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport("2026-03", nil)
	assert.Equal(t, 0, report.TotalReservations)
	assert.Zero(t, report.TotalRevenue)
	// No active reservations must not divide by zero.
	assert.Zero(t, report.AverageRevenue)
	assert.Empty(t, report.PeakHours)
	assert.NotNil(t, report.RevenueByCourt)
}
