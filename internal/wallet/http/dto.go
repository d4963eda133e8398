package http

import (
	"time"

	"github.com/courtside/club-backend/internal/wallet"
)

type WalletResponse struct {
	ID                   string    `json:"id"`
	ClubID               string    `json:"club_id"`
	UserID               string    `json:"user_id"`
	Balance              float64   `json:"balance"`
	NegativeBalanceLimit float64   `json:"negative_balance_limit"`
	AllowNegativeBalance bool      `json:"allow_negative_balance"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewWalletResponse(w *wallet.Wallet) WalletResponse {
	return WalletResponse{
		ID:                   w.ID,
		ClubID:               w.ClubID,
		UserID:               w.UserID,
		Balance:              w.Balance,
		NegativeBalanceLimit: w.NegativeBalanceLimit,
		AllowNegativeBalance: w.AllowNegativeBalance,
		UpdatedAt:            w.UpdatedAt,
	}
}

type AdjustRequest struct {
	Delta  float64 `json:"delta" binding:"required"`
	Reason string  `json:"reason"`
}

type UpdatePolicyRequest struct {
	NegativeBalanceLimit *float64 `json:"negative_balance_limit" binding:"omitempty,gte=0"`
	AllowNegativeBalance *bool    `json:"allow_negative_balance"`
}
