package http

import (
	"time"

	"github.com/courtside/club-backend/internal/club"
)

// ClubTag holds minimal club info for embedding in other responses.
type ClubTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClubResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClubResponse(c *club.Club) ClubResponse {
	return ClubResponse{
		ID:        c.ID,
		Name:      c.Name,
		Currency:  c.Currency,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

type MemberResponse struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

func NewMemberResponse(m *club.Member) MemberResponse {
	return MemberResponse{
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt,
	}
}

type CreateClubRequest struct {
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

type UpdateClubRequest struct {
	Name     *string `json:"name"`
	Currency *string `json:"currency" binding:"omitempty,len=3"`
	IsActive *bool   `json:"is_active"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=owner admin trainer member"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=owner admin trainer member"`
}
