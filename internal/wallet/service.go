package wallet

import (
	"context"
	"errors"
)

type Service interface {
	// GetOrCreate returns the member's wallet for the club, creating an empty
	// one on first use.
	GetOrCreate(ctx context.Context, clubID, userID string) (*Wallet, error)

	// Charge deducts amount from the wallet after re-checking affordability.
	// The check and the deduction are two steps; the slot-occupancy guard on
	// the reservation side is what prevents double-booking, not this charge.
	Charge(ctx context.Context, clubID, userID string, amount float64) (*Wallet, error)

	// Refund credits amount back to the wallet.
	Refund(ctx context.Context, clubID, userID string, amount float64) (*Wallet, error)

	// Adjust applies a manager-initiated credit (positive) or debit
	// (negative) to the wallet.
	Adjust(ctx context.Context, clubID, userID string, delta float64) (*Wallet, error)

	UpdatePolicy(ctx context.Context, clubID, userID string, policy Policy) (*Wallet, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOrCreate(ctx context.Context, clubID, userID string) (*Wallet, error) {
	w, err := s.repo.GetByClubAndUser(ctx, clubID, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	w = &Wallet{
		ClubID: clubID,
		UserID: userID,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) Charge(ctx context.Context, clubID, userID string, amount float64) (*Wallet, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	w, err := s.GetOrCreate(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}

	if !w.Affordability(amount).CanAfford {
		return nil, ErrInsufficientBalance
	}

	return s.repo.AddToBalance(ctx, w.ID, -amount)
}

func (s *service) Refund(ctx context.Context, clubID, userID string, amount float64) (*Wallet, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	w, err := s.repo.GetByClubAndUser(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.AddToBalance(ctx, w.ID, amount)
}

func (s *service) Adjust(ctx context.Context, clubID, userID string, delta float64) (*Wallet, error) {
	w, err := s.GetOrCreate(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.AddToBalance(ctx, w.ID, delta)
}

func (s *service) UpdatePolicy(ctx context.Context, clubID, userID string, policy Policy) (*Wallet, error) {
	w, err := s.GetOrCreate(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}

	if policy.NegativeBalanceLimit != nil {
		w.NegativeBalanceLimit = *policy.NegativeBalanceLimit
	}
	if policy.AllowNegativeBalance != nil {
		w.AllowNegativeBalance = *policy.AllowNegativeBalance
	}

	if err := s.repo.UpdatePolicy(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}
