package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/wallet"
)

type Handler struct {
	service     wallet.Service
	clubService club.Service
}

func NewHandler(service wallet.Service, clubService club.Service) *Handler {
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

// GetMine returns the caller's wallet for the club, creating it on first use.
func (h *Handler) GetMine(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)
	if _, err := h.clubService.GetMember(c.Request.Context(), clubID, userID); err != nil {
		if errors.Is(err, club.ErrNotMember) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this club"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check membership"})
		return
	}

	w, err := h.service.GetOrCreate(c.Request.Context(), clubID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get wallet"})
		return
	}

	c.JSON(http.StatusOK, NewWalletResponse(w))
}

// Adjust applies a manager credit or debit to a member's wallet.
func (h *Handler) Adjust(c *gin.Context) {
	clubID := c.Param("id")
	targetUserID := c.Param("userID")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(targetUserID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, clubID) {
		return
	}

	var body AdjustRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	w, err := h.service.Adjust(c.Request.Context(), clubID, targetUserID, body.Delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to adjust wallet"})
		return
	}

	log.Printf("wallet adjusted: club=%s user=%s delta=%.2f by=%s reason=%q",
		clubID, targetUserID, body.Delta, auth.GetUserID(c), body.Reason)

	c.JSON(http.StatusOK, NewWalletResponse(w))
}

// UpdatePolicy changes a member's negative-balance allowance.
func (h *Handler) UpdatePolicy(c *gin.Context) {
	clubID := c.Param("id")
	targetUserID := c.Param("userID")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(targetUserID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, clubID) {
		return
	}

	var body UpdatePolicyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	w, err := h.service.UpdatePolicy(c.Request.Context(), clubID, targetUserID, wallet.Policy{
		NegativeBalanceLimit: body.NegativeBalanceLimit,
		AllowNegativeBalance: body.AllowNegativeBalance,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wallet policy"})
		return
	}

	c.JSON(http.StatusOK, NewWalletResponse(w))
}
