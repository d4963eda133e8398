package pricing

// DiscountRule reduces a slot's price by a percentage, either for all hours
// or for the half-open integer-hour range [FromHour, ToHour).
type DiscountRule struct {
	AllHours   bool    `json:"all_hours"`
	FromHour   int     `json:"from_hour"`
	ToHour     int     `json:"to_hour"`
	Percentage float64 `json:"percentage"`
}

// Schedule is a time-windowed price rule. A slot whose containing hour falls
// inside [From, Until) is priced at BasePrice, or at the role-specific price
// when one exists for the booking user's role.
type Schedule struct {
	From       string             `json:"from"`
	Until      string             `json:"until"`
	BasePrice  float64            `json:"base_price"`
	RolePrices map[string]float64 `json:"role_prices,omitempty"`
}

// Tariff is the full pricing configuration of a court: the default hourly
// rate, time-windowed schedules, discount rules, and ancillary hourly costs.
type Tariff struct {
	HourlyRate   float64
	Schedules    []Schedule
	Discounts    []DiscountRule
	HeatingCost  float64
	LightingCost float64
}

// PriceInfo is the computed price of a single slot. All fields are prorated
// by the slot interval; OriginalPrice reflects the price after role/schedule
// resolution but before discount. No currency rounding is performed here.
type PriceInfo struct {
	BasePrice          float64 `json:"base_price"`
	HeaterCost         float64 `json:"heater_cost"`
	LightCost          float64 `json:"light_cost"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountedPrice    float64 `json:"discounted_price"`
	OriginalPrice      float64 `json:"original_price"`
}

// Quote is the total price of a reservation spanning one or more slots.
// Heater and light fees are whole-reservation add-ons charged once, not per
// slot.
type Quote struct {
	CourtFee       float64 `json:"court_fee"`
	DiscountAmount float64 `json:"discount_amount"`
	HeaterFee      float64 `json:"heater_fee"`
	LightFee       float64 `json:"light_fee"`
	Total          float64 `json:"total"`
}
