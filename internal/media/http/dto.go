package http

import (
	"time"

	"github.com/courtside/club-backend/internal/media"
)

type MediaResponse struct {
	ID           string    `json:"id"`
	ClubID       string    `json:"club_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewMediaResponse(m *media.Media) MediaResponse {
	var thumbURL *string
	if m.ThumbnailPath != nil {
		t := media.ThumbnailURL(m.ID)
		thumbURL = &t
	}

	return MediaResponse{
		ID:           m.ID,
		ClubID:       m.ClubID,
		Filename:     m.Filename,
		ContentType:  m.ContentType,
		Size:         m.Size,
		URL:          media.URL(m.ID),
		ThumbnailURL: thumbURL,
		CreatedAt:    m.CreatedAt,
	}
}
