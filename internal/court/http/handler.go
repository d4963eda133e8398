package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/court"
	"github.com/courtside/club-backend/internal/pkg/response"
	"github.com/courtside/club-backend/internal/pkg/validation"
)

type Handler struct {
	service     court.Service
	clubService club.Service
}

func NewHandler(service court.Service, clubService club.Service) *Handler {
	return &Handler{
		service:     service,
		clubService: clubService,
	}
}

func (h *Handler) requireManager(c *gin.Context, clubID string) bool {
	userID := auth.GetUserID(c)
	ok, err := h.clubService.IsManagerOrAbove(c.Request.Context(), clubID, userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check permission"})
		return false
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return false
	}
	return true
}

// writeConfigError maps court configuration errors to 400 responses.
func writeConfigError(c *gin.Context, err error) bool {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, court.ErrEmptyName),
		errors.Is(err, court.ErrInvalidWindow),
		errors.Is(err, court.ErrInvalidInterval),
		errors.Is(err, court.ErrInvalidRate),
		errors.Is(err, court.ErrInvalidDiscount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		return false
	}
	return true
}

func (h *Handler) Create(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, clubID) {
		return
	}

	var body CreateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		ClubID:           clubID,
		Name:             body.Name,
		Surface:          body.Surface,
		AvailableFrom:    body.AvailableFrom,
		AvailableUntil:   body.AvailableUntil,
		TimeSlotInterval: body.TimeSlotInterval,
		HourlyRate:       body.HourlyRate,
		PriceSchedules:   body.PriceSchedules,
		Discounts:        body.Discounts,
		HeatingCost:      body.HeatingCost,
		LightingCost:     body.LightingCost,
	})
	if err != nil {
		if writeConfigError(c, err) {
			return
		}
		if errors.Is(err, court.ErrInvalidClub) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create court"})
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(created))
}

func (h *Handler) List(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	courts, total, err := h.service.ListByClub(c.Request.Context(), court.Filter{
		ClubID:   clubID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get court"})
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(found))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get court"})
		return
	}

	if !h.requireManager(c, existing.ClubID) {
		return
	}

	var body UpdateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:             body.Name,
		Surface:          body.Surface,
		AvailableFrom:    body.AvailableFrom,
		AvailableUntil:   body.AvailableUntil,
		TimeSlotInterval: body.TimeSlotInterval,
		HourlyRate:       body.HourlyRate,
		PriceSchedules:   body.PriceSchedules,
		Discounts:        body.Discounts,
		HeatingCost:      body.HeatingCost,
		LightingCost:     body.LightingCost,
	})
	if err != nil {
		if writeConfigError(c, err) {
			return
		}
		if errors.Is(err, court.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update court"})
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get court"})
		return
	}

	if !h.requireManager(c, existing.ClubID) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete court"})
		return
	}

	c.Status(http.StatusNoContent)
}
