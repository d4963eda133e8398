package court

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/club-backend/internal/pkg/validation"
	"github.com/courtside/club-backend/internal/pricing"
)

func TestNormalizeDefaults(t *testing.T) {
	c := Court{ID: "c1"}
	c.Normalize()

	assert.Equal(t, "08:00", c.AvailableFrom)
	assert.Equal(t, "22:00", c.AvailableUntil)
	assert.Equal(t, 60, c.TimeSlotInterval)

	slots, err := c.Slots()
	require.NoError(t, err)
	assert.Len(t, slots, 14)
}

func TestNormalizeKeepsConfiguredValues(t *testing.T) {
	c := Court{ID: "c1", AvailableFrom: "07:30", AvailableUntil: "23:00", TimeSlotInterval: 90}
	c.Normalize()

	assert.Equal(t, "07:30", c.AvailableFrom)
	assert.Equal(t, "23:00", c.AvailableUntil)
	assert.Equal(t, 90, c.TimeSlotInterval)
}

func TestValidate(t *testing.T) {
	base := func() Court {
		return Court{
			ID:               "c1",
			AvailableFrom:    "08:00",
			AvailableUntil:   "22:00",
			TimeSlotInterval: 60,
			HourlyRate:       100,
		}
	}

	t.Run("Valid court", func(t *testing.T) {
		c := base()
		assert.NoError(t, c.Validate())
	})

	t.Run("Missing ID is a validation error naming the field", func(t *testing.T) {
		c := base()
		c.ID = ""
		err := c.Validate()
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "id", vErr.Field)
	})

	t.Run("Inverted window", func(t *testing.T) {
		c := base()
		c.AvailableFrom = "22:00"
		c.AvailableUntil = "08:00"
		assert.ErrorIs(t, c.Validate(), ErrInvalidWindow)
	})

	t.Run("Negative rate", func(t *testing.T) {
		c := base()
		c.HourlyRate = -1
		assert.ErrorIs(t, c.Validate(), ErrInvalidRate)
	})

	t.Run("Discount out of range", func(t *testing.T) {
		c := base()
		c.Discounts = []pricing.DiscountRule{{AllHours: true, Percentage: 120}}
		assert.ErrorIs(t, c.Validate(), ErrInvalidDiscount)
	})
}

func TestTariff(t *testing.T) {
	c := Court{
		ID:         "c1",
		HourlyRate: 100,
		PriceSchedules: []pricing.Schedule{
			{From: "18:00", Until: "22:00", BasePrice: 150},
		},
		Discounts: []pricing.DiscountRule{
			{FromHour: 9, ToHour: 12, Percentage: 10},
		},
		HeatingCost:  40,
		LightingCost: 20,
	}

	tariff := c.Tariff()
	info, err := tariff.ForSlot("19:00", "", 60)
	require.NoError(t, err)
	assert.Equal(t, 150.0, info.BasePrice)
}
