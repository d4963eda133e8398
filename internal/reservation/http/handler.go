package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/court"
	"github.com/courtside/club-backend/internal/pkg/response"
	"github.com/courtside/club-backend/internal/pkg/validation"
	"github.com/courtside/club-backend/internal/reservation"
	"github.com/courtside/club-backend/internal/wallet"
)

type Handler struct {
	service     reservation.Service
	clubService club.Service
}

func NewHandler(service reservation.Service, clubService club.Service) *Handler {
	return &Handler{
		service:     service,
		clubService: clubService,
	}
}

// writeServiceError maps booking errors onto HTTP statuses. Returns false if
// the error is not one it knows, leaving the caller to 500.
func writeServiceError(c *gin.Context, err error) bool {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, reservation.ErrNoSlots),
		errors.Is(err, reservation.ErrSlotNotInGrid),
		errors.Is(err, reservation.ErrSlotInPast),
		errors.Is(err, reservation.ErrAlreadyCancelled):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrNotMember), errors.Is(err, reservation.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
	case errors.Is(err, court.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
	case errors.Is(err, wallet.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	default:
		return false
	}
	return true
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		CourtID:              body.CourtID,
		UserID:               auth.GetUserID(c),
		Date:                 body.Date,
		Times:                body.Times,
		Heater:               body.Heater,
		Light:                body.Light,
		IsGuestReservation:   body.IsGuestReservation,
		IsTraining:           body.IsTraining,
		IsLesson:             body.IsLesson,
		IsChallenge:          body.IsChallenge,
		IsGift:               body.IsGift,
		CouponCode:           body.CouponCode,
		CouponDiscountAmount: body.CouponDiscountAmount,
		JointPayment:         body.JointPayment,
		JointAmount:          body.JointAmount,
		PayWithWallet:        body.PayWithWallet,
	})
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reservation"})
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(booking))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get reservation"})
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel reservation"})
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

// ListMine returns the caller's reservation history within a club.
func (h *Handler) ListMine(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	reservations, total, err := h.service.ListByUser(c.Request.Context(), clubID, auth.GetUserID(c), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reservations"})
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// CourtDay returns the classified slot grid of one court for one date.
func (h *Handler) CourtDay(c *gin.Context) {
	courtID := c.Param("id")
	if _, err := uuid.Parse(courtID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	day, err := h.service.CourtDay(c.Request.Context(), courtID, date, auth.GetUserID(c))
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		return
	}

	c.JSON(http.StatusOK, day)
}

// ClubDay returns the whole-club occupancy overview for one date.
func (h *Handler) ClubDay(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	overview, err := h.service.ClubDay(c.Request.Context(), clubID, date)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// MonthlyReport is manager-only.
func (h *Handler) MonthlyReport(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ok, err := h.clubService.IsManagerOrAbove(c.Request.Context(), clubID, auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check permission"})
		return
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	report, err := h.service.MonthlyReport(c.Request.Context(), clubID, month)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
