package http

import (
	"time"

	"github.com/courtside/club-backend/internal/announcement"
	"github.com/courtside/club-backend/internal/pkg/request"
)

type AnnouncementResponse struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResponse(a *announcement.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		ClubID:    a.ClubID,
		AuthorID:  a.AuthorID,
		Title:     a.Title,
		Content:   a.Content,
		Pinned:    a.Pinned,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ListAnnouncementsRequest defines query parameters for listing announcements.
type ListAnnouncementsRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=title created_at"`
}

type CreateRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Pinned  bool   `json:"pinned"`
}

type UpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}
