package announcement

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("announcement not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

// Announcement represents a club news post or update.
type Announcement struct {
	ID        string
	ClubID    string
	AuthorID  string
	Title     string
	Content   string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing announcements.
type Filter struct {
	ClubID    string
	Keyword   string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
