package pricing

// ResolveDiscount returns the discount percentage applicable at the given
// hour (0..23). Rules are checked in stored order and the first match wins,
// even when a later rule would discount more. ToHour is exclusive: a rule
// covering [9, 12) matches hours 9 through 11. No matching rule means 0%.
func ResolveDiscount(rules []DiscountRule, hour int) float64 {
	for _, r := range rules {
		if r.AllHours {
			return r.Percentage
		}
		if hour >= r.FromHour && hour < r.ToHour {
			return r.Percentage
		}
	}
	return 0
}
