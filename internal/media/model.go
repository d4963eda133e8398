package media

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("media not found")
	ErrNotImage         = errors.New("only image uploads are supported")
	ErrThumbnailMissing = errors.New("thumbnail not available")
)

// Media represents an uploaded club image (court photos, news images).
type Media struct {
	ID            string    `json:"id"`
	ClubID        string    `json:"club_id"`
	UserID        string    `json:"user_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// URL returns the public URL for accessing a media object by its ID.
func URL(id string) string {
	return "/v1/media/" + id
}

// ThumbnailURL returns the public URL for a media object's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/media/" + id + "/thumbnail"
}
