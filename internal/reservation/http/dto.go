package http

import (
	"time"

	"github.com/courtside/club-backend/internal/pricing"
	"github.com/courtside/club-backend/internal/reservation"
)

type ReservationResponse struct {
	ID       string `json:"id"`
	ClubID   string `json:"club_id"`
	CourtID  string `json:"court_id"`
	UserID   string `json:"user_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	EndTime  string `json:"end_time"`
	Duration int    `json:"duration"`
	Status   string `json:"status"`
	Kind     string `json:"kind"`

	Heater             bool `json:"heater"`
	Light              bool `json:"light"`
	IsGuestReservation bool `json:"is_guest_reservation"`

	AmountPaid           float64    `json:"amount_paid"`
	OriginalPrice        float64    `json:"original_price"`
	DiscountPercentage   float64    `json:"discount_percentage"`
	DiscountApplied      bool       `json:"discount_applied"`
	CouponApplied        bool       `json:"coupon_applied"`
	CouponCode           string     `json:"coupon_code,omitempty"`
	CouponDiscountAmount float64    `json:"coupon_discount_amount,omitempty"`
	JointPayment         bool       `json:"joint_payment"`
	JointAmount          float64    `json:"joint_amount,omitempty"`
	PaidWithWallet       bool       `json:"paid_with_wallet"`
	CreatedAt            time.Time  `json:"created_at"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                   r.ID,
		ClubID:               r.ClubID,
		CourtID:              r.CourtID,
		UserID:               r.UserID,
		Date:                 r.Date,
		Time:                 r.Time,
		EndTime:              r.EndTime,
		Duration:             r.Duration,
		Status:               r.Status,
		Kind:                 string(r.Kind),
		Heater:               r.Heater,
		Light:                r.Light,
		IsGuestReservation:   r.IsGuestReservation,
		AmountPaid:           r.AmountPaid,
		OriginalPrice:        r.OriginalPrice,
		DiscountPercentage:   r.DiscountPercentage,
		DiscountApplied:      r.DiscountApplied,
		CouponApplied:        r.CouponApplied,
		CouponCode:           r.CouponCode,
		CouponDiscountAmount: r.CouponDiscountAmount,
		JointPayment:         r.JointPayment,
		JointAmount:          r.JointAmount,
		PaidWithWallet:       r.PaidWithWallet,
		CreatedAt:            r.CreatedAt,
		CancelledAt:          r.CancelledAt,
	}
}

type CreateReservationRequest struct {
	CourtID string   `json:"court_id" binding:"required,uuid"`
	Date    string   `json:"date" binding:"required"`
	Times   []string `json:"times" binding:"required,min=1"`

	Heater             bool `json:"heater"`
	Light              bool `json:"light"`
	IsGuestReservation bool `json:"is_guest_reservation"`
	IsTraining         bool `json:"is_training"`
	IsLesson           bool `json:"is_lesson"`
	IsChallenge        bool `json:"is_challenge"`
	IsGift             bool `json:"is_gift"`

	CouponCode           string  `json:"coupon_code"`
	CouponDiscountAmount float64 `json:"coupon_discount_amount" binding:"gte=0"`
	JointPayment         bool    `json:"joint_payment"`
	JointAmount          float64 `json:"joint_amount" binding:"gte=0"`

	PayWithWallet bool `json:"pay_with_wallet"`
}

type BookingResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Quote        pricing.Quote         `json:"quote"`
	Charged      float64               `json:"charged"`
}

func NewBookingResponse(b *reservation.Booking) BookingResponse {
	items := make([]ReservationResponse, len(b.Reservations))
	for i, r := range b.Reservations {
		items[i] = NewReservationResponse(r)
	}
	return BookingResponse{Reservations: items, Quote: b.Quote, Charged: b.Charged}
}
