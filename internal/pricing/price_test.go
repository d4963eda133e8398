package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSlotProration(t *testing.T) {
	tariff := Tariff{HourlyRate: 100}

	info, err := tariff.ForSlot("10:00", "", 30)
	require.NoError(t, err)

	assert.Equal(t, 50.0, info.BasePrice)
	assert.Equal(t, 50.0, info.DiscountedPrice)
	assert.Equal(t, 50.0, info.OriginalPrice)
	assert.Equal(t, 0.0, info.DiscountPercentage)
}

func TestForSlotScheduleResolution(t *testing.T) {
	tariff := Tariff{
		HourlyRate: 100,
		Schedules: []Schedule{
			{
				From:      "09:00",
				Until:     "12:00",
				BasePrice: 200,
				RolePrices: map[string]float64{
					"member": 150,
				},
			},
		},
	}

	tests := []struct {
		name   string
		start  string
		roleID string
		want   float64
	}{
		{"Role price inside window", "10:00", "member", 150},
		{"Base price for unknown role", "10:00", "trainer", 200},
		{"Half-past slot normalizes down to its hour", "11:30", "member", 150},
		{"Hourly rate outside window", "14:00", "member", 100},
		{"Until is exclusive", "12:00", "member", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tariff.ForSlot(tt.start, tt.roleID, 60)
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.BasePrice)
		})
	}
}

func TestForSlotDiscountApplied(t *testing.T) {
	tariff := Tariff{
		HourlyRate: 100,
		Discounts: []DiscountRule{
			{FromHour: 9, ToHour: 12, Percentage: 10},
		},
		HeatingCost:  40,
		LightingCost: 20,
	}

	info, err := tariff.ForSlot("09:30", "", 30)
	require.NoError(t, err)

	// OriginalPrice captures the pre-discount price, prorated.
	assert.Equal(t, 50.0, info.OriginalPrice)
	assert.Equal(t, 45.0, info.DiscountedPrice)
	assert.Equal(t, 10.0, info.DiscountPercentage)
	assert.Equal(t, 20.0, info.HeaterCost)
	assert.Equal(t, 10.0, info.LightCost)
}

func TestForSlotMalformedScheduleSkipped(t *testing.T) {
	tariff := Tariff{
		HourlyRate: 80,
		Schedules: []Schedule{
			{From: "bogus", Until: "12:00", BasePrice: 999},
			{From: "09:00", Until: "12:00", BasePrice: 120},
		},
	}

	info, err := tariff.ForSlot("10:00", "", 60)
	require.NoError(t, err)
	assert.Equal(t, 120.0, info.BasePrice)
}

func TestForSlotInvalidTime(t *testing.T) {
	tariff := Tariff{HourlyRate: 100}
	_, err := tariff.ForSlot("25:00", "", 60)
	assert.Error(t, err)
}

func TestForSlotIdempotent(t *testing.T) {
	tariff := Tariff{
		HourlyRate: 133.37,
		Schedules: []Schedule{
			{From: "08:00", Until: "23:00", BasePrice: 97.31, RolePrices: map[string]float64{"member": 81.19}},
		},
		Discounts: []DiscountRule{
			{FromHour: 9, ToHour: 17, Percentage: 12.5},
		},
		HeatingCost:  41.07,
		LightingCost: 13.99,
	}

	first, err := tariff.ForSlot("09:45", "member", 45)
	require.NoError(t, err)
	second, err := tariff.ForSlot("09:45", "member", 45)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTotal(t *testing.T) {
	tariff := Tariff{
		HourlyRate: 100,
		Discounts: []DiscountRule{
			{AllHours: true, Percentage: 20},
		},
		HeatingCost:  50,
		LightingCost: 30,
	}

	q, err := tariff.Total([]string{"10:00", "11:00"}, "", 60, true, false)
	require.NoError(t, err)

	assert.Equal(t, 160.0, q.CourtFee)
	assert.Equal(t, 40.0, q.DiscountAmount)
	// Heater fee is a flat whole-reservation charge, not per slot.
	assert.Equal(t, 50.0, q.HeaterFee)
	assert.Equal(t, 0.0, q.LightFee)
	assert.Equal(t, 210.0, q.Total)
}

func TestTotalNoSlots(t *testing.T) {
	tariff := Tariff{HourlyRate: 100, LightingCost: 30}

	q, err := tariff.Total(nil, "", 60, false, true)
	require.NoError(t, err)

	assert.Equal(t, 0.0, q.CourtFee)
	assert.Equal(t, 30.0, q.Total)
}
