package reservation

import (
	"sort"

	"github.com/courtside/club-backend/internal/schedule"
)

// PeakHour is one entry of the peak-hour ranking.
type PeakHour struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Report aggregates one month of reservations for a club.
type Report struct {
	Month                 string             `json:"month"`
	TotalReservations     int                `json:"total_reservations"`
	ActiveReservations    int                `json:"active_reservations"`
	CancelledReservations int                `json:"cancelled_reservations"`
	TotalRevenue          float64            `json:"total_revenue"`
	TotalDiscounts        float64            `json:"total_discounts"`
	AverageRevenue        float64            `json:"average_revenue"`
	RevenueByCourt        map[string]float64 `json:"revenue_by_court"`
	CountsByKind          map[Kind]int       `json:"counts_by_kind"`
	HeaterCount           int                `json:"heater_count"`
	LightCount            int                `json:"light_count"`
	DiscountCount         int                `json:"discount_count"`
	CouponCount           int                `json:"coupon_count"`
	CouponSavings         float64            `json:"coupon_savings"`
	PeakHours             []PeakHour         `json:"peak_hours"`
}

const peakHourLimit = 5

// BuildReport computes the monthly report from the raw reservation list.
// Revenue figures only count active reservations; usage counters (kind,
// heater, light, coupons, peak hours) count everything that was not
// cancelled, since a pending booking still occupies its slot.
func BuildReport(month string, reservations []*Reservation) Report {
	report := Report{
		Month:          month,
		RevenueByCourt: map[string]float64{},
		CountsByKind:   map[Kind]int{},
		PeakHours:      []PeakHour{},
	}

	var originalSum float64
	hourCounts := map[int]int{}
	var hourOrder []int

	for _, r := range reservations {
		report.TotalReservations++

		switch r.Status {
		case StatusCancelled:
			report.CancelledReservations++
			continue
		case StatusActive:
			report.ActiveReservations++
			report.TotalRevenue += r.AmountPaid
			originalSum += r.OriginalPrice
			report.RevenueByCourt[r.CourtID] += r.AmountPaid
		}

		report.CountsByKind[r.Kind]++
		if r.Heater {
			report.HeaterCount++
		}
		if r.Light {
			report.LightCount++
		}
		if r.DiscountApplied {
			report.DiscountCount++
		}
		if r.CouponApplied {
			report.CouponCount++
			report.CouponSavings += r.CouponDiscountAmount
		}

		if min, err := schedule.ParseClock("time", r.Time); err == nil {
			hour := min / 60
			if _, seen := hourCounts[hour]; !seen {
				hourOrder = append(hourOrder, hour)
			}
			hourCounts[hour]++
		}
	}

	report.TotalDiscounts = originalSum - report.TotalRevenue
	if report.ActiveReservations > 0 {
		report.AverageRevenue = report.TotalRevenue / float64(report.ActiveReservations)
	}

	// Ties keep first-appearance order; SliceStable preserves hourOrder.
	sort.SliceStable(hourOrder, func(i, j int) bool {
		return hourCounts[hourOrder[i]] > hourCounts[hourOrder[j]]
	})
	for i, hour := range hourOrder {
		if i == peakHourLimit {
			break
		}
		report.PeakHours = append(report.PeakHours, PeakHour{Hour: hour, Count: hourCounts[hour]})
	}

	return report
}
