package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/media"
)

type Handler struct {
	mediaService media.Service
	clubService  club.Service
}

func NewHandler(mediaService media.Service, clubService club.Service) *Handler {
	return &Handler{
		mediaService: mediaService,
		clubService:  clubService,
	}
}

func (h *Handler) requireManager(c *gin.Context, clubID string) bool {
	ok, err := h.clubService.IsManagerOrAbove(c.Request.Context(), clubID, auth.GetUserID(c))
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

// Upload stores a club image. Managers only.
func (h *Handler) Upload(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, clubID) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	m, err := h.mediaService.Upload(c.Request.Context(), fileHeader, clubID, auth.GetUserID(c))
	if err != nil {
		if errors.Is(err, media.ErrNotImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload media"})
		return
	}

	c.JSON(http.StatusCreated, NewMediaResponse(m))
}

func (h *Handler) List(c *gin.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	list, err := h.mediaService.ListByClub(c.Request.Context(), clubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list media"})
		return
	}

	items := make([]MediaResponse, len(list))
	for i, m := range list {
		items[i] = NewMediaResponse(m)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Serve streams the media content by ID.
func (h *Handler) Serve(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, m, err := h.mediaService.Download(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to serve media"})
		return
	}
	defer stream.Close()

	c.Header("Content-Type", m.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+m.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing sensible to send.
		return
	}
}

// ServeThumbnail streams the thumbnail by media ID. Thumbnails are always JPEG.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, m, err := h.mediaService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
		case errors.Is(err, media.ErrThumbnailMissing):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to serve thumbnail"})
		}
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+m.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	m, err := h.mediaService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get media"})
		return
	}

	if !h.requireManager(c, m.ClubID) {
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete media"})
		return
	}

	c.Status(http.StatusNoContent)
}
