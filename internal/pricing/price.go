package pricing

import (
	"github.com/courtside/club-backend/internal/schedule"
)

// ForSlot computes the price of a single slot starting at start ("HH:MM") and
// lasting interval minutes, for the given role.
//
// Resolution order:
//  1. Normalize start down to its containing hour and find the schedule whose
//     [From, Until) window contains that hour-start; use the role-specific
//     price when present, else the schedule's base price. No matching
//     schedule falls back to the hourly rate.
//  2. Resolve the discount for the slot's hour (first-match).
//  3. Prorate everything by interval/60.
func (t Tariff) ForSlot(start, roleID string, interval int) (PriceInfo, error) {
	startMin, err := schedule.ParseClock("time", start)
	if err != nil {
		return PriceInfo{}, err
	}
	if interval <= 0 {
		interval = schedule.DefaultInterval
	}

	hour := startMin / 60
	price := t.resolveHourly(hour*60, roleID)

	pct := ResolveDiscount(t.Discounts, hour)
	factor := float64(interval) / 60

	return PriceInfo{
		BasePrice:          price * factor,
		HeaterCost:         t.HeatingCost * factor,
		LightCost:          t.LightingCost * factor,
		DiscountPercentage: pct,
		DiscountedPrice:    price * (100 - pct) / 100 * factor,
		OriginalPrice:      price * factor,
	}, nil
}

// resolveHourly picks the hourly price for a slot whose containing hour
// starts at hourStart minutes. Schedules with malformed windows are skipped
// rather than failing the whole computation.
func (t Tariff) resolveHourly(hourStart int, roleID string) float64 {
	for _, sc := range t.Schedules {
		fromMin, err := schedule.ParseClock("from", sc.From)
		if err != nil {
			continue
		}
		untilMin, err := schedule.ParseClock("until", sc.Until)
		if err != nil {
			continue
		}
		if hourStart < fromMin || hourStart >= untilMin {
			continue
		}
		if rolePrice, ok := sc.RolePrices[roleID]; ok {
			return rolePrice
		}
		return sc.BasePrice
	}
	return t.HourlyRate
}

// Total sums the per-slot prices into a reservation quote. CourtFee is the
// sum of discounted slot prices, DiscountAmount the sum of what the discounts
// shaved off. Heater and light fees are flat whole-reservation charges,
// independent of how many slots are booked.
func (t Tariff) Total(slots []string, roleID string, interval int, heater, light bool) (Quote, error) {
	var q Quote

	for _, start := range slots {
		info, err := t.ForSlot(start, roleID, interval)
		if err != nil {
			return Quote{}, err
		}
		q.CourtFee += info.DiscountedPrice
		q.DiscountAmount += info.OriginalPrice - info.DiscountedPrice
	}

	if heater {
		q.HeaterFee = t.HeatingCost
	}
	if light {
		q.LightFee = t.LightingCost
	}

	q.Total = q.CourtFee + q.HeaterFee + q.LightFee
	return q, nil
}
