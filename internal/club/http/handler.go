package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/pkg/response"
)

type Handler struct {
	service club.Service
}

func NewHandler(service club.Service) *Handler {
	return &Handler{service: service}
}

// requireManager aborts with 403 unless the caller is an owner or admin of
// the club. Returns false when the request was aborted.
func (h *Handler) requireManager(c *gin.Context, clubID string) bool {
	userID := auth.GetUserID(c)
	ok, err := h.service.IsManagerOrAbove(c.Request.Context(), clubID, userID)
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

func (h *Handler) Create(c *gin.Context) {
	var body CreateClubRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	created, err := h.service.Create(c.Request.Context(), body.Name, body.Currency, userID)
	if err != nil {
		if errors.Is(err, club.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create club"})
		return
	}

	c.JSON(http.StatusCreated, NewClubResponse(created))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, club.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get club"})
		return
	}

	c.JSON(http.StatusOK, NewClubResponse(found))
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	clubs, total, err := h.service.List(c.Request.Context(), club.Filter{Page: page, PageSize: pageSize})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clubs"})
		return
	}

	items := make([]ClubResponse, len(clubs))
	for i, cl := range clubs {
		items[i] = NewClubResponse(cl)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, id) {
		return
	}

	var body UpdateClubRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, club.UpdateRequest{
		Name:     body.Name,
		Currency: body.Currency,
		IsActive: body.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, club.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
		case errors.Is(err, club.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update club"})
		}
		return
	}

	c.JSON(http.StatusOK, NewClubResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, id) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, club.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete club"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMembers(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	filter := club.MemberFilter{
		Role:     c.Query("role"),
		Page:     page,
		PageSize: pageSize,
	}

	members, total, err := h.service.ListMembers(c.Request.Context(), clubID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}

	items := make([]MemberResponse, len(members))
	for i, m := range members {
		items[i] = NewMemberResponse(m)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) AddMember(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, clubID) {
		return
	}

	var body AddMemberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	err := h.service.AddMember(c.Request.Context(), clubID, body.UserID, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, club.ErrNotFound), errors.Is(err, club.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, club.ErrUserAlreadyMember):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, club.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) UpdateMember(c *gin.Context) {
	clubID := c.Param("id")
	userID := c.Param("userID")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, clubID) {
		return
	}

	var body UpdateMemberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	err := h.service.UpdateMemberRole(c.Request.Context(), clubID, userID, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, club.ErrNotMember):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, club.ErrInvalidRole), errors.Is(err, club.ErrLastOwner):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update member"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveMember(c *gin.Context) {
	clubID := c.Param("id")
	userID := c.Param("userID")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, clubID) {
		return
	}

	err := h.service.RemoveMember(c.Request.Context(), clubID, userID)
	if err != nil {
		switch {
		case errors.Is(err, club.ErrNotMember):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, club.ErrLastOwner):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove member"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
