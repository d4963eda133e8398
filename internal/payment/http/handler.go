package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/payment"
)

type Handler struct {
	service     payment.Service
	clubService club.Service
}

func NewHandler(service payment.Service, clubService club.Service) *Handler {
	return &Handler{
		service:     service,
		clubService: clubService,
	}
}

// Keys returns the club's publishable provider keys. Members only; secret
// keys never leave the server (the JSON codec drops them).
func (h *Handler) Keys(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if _, err := h.clubService.RoleOf(c.Request.Context(), clubID, auth.GetUserID(c)); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	keys, err := h.service.Keys(c.Request.Context(), clubID)
	if err != nil {
		if errors.Is(err, payment.ErrNoKeys) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payment keys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"keys": keys})
}
