package court

import (
	"context"
	"strings"

	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/pricing"
)

type CreateRequest struct {
	ClubID           string
	Name             string
	Surface          string
	AvailableFrom    string
	AvailableUntil   string
	TimeSlotInterval int
	HourlyRate       float64
	PriceSchedules   []pricing.Schedule
	Discounts        []pricing.DiscountRule
	HeatingCost      float64
	LightingCost     float64
}

type UpdateRequest struct {
	Name             *string
	Surface          *string
	AvailableFrom    *string
	AvailableUntil   *string
	TimeSlotInterval *int
	HourlyRate       *float64
	PriceSchedules   []pricing.Schedule
	Discounts        []pricing.DiscountRule
	HeatingCost      *float64
	LightingCost     *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	ListByClub(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Court, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	clubService club.Service
}

func NewService(repo Repository, clubService club.Service) Service {
	return &service{
		repo:        repo,
		clubService: clubService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.ClubID == "" {
		return nil, ErrInvalidClub
	}

	// Validation: Check if Club exists
	if _, err := s.clubService.GetByID(ctx, req.ClubID); err != nil {
		return nil, ErrInvalidClub
	}

	c := &Court{
		ClubID:           req.ClubID,
		Name:             req.Name,
		Surface:          req.Surface,
		AvailableFrom:    req.AvailableFrom,
		AvailableUntil:   req.AvailableUntil,
		TimeSlotInterval: req.TimeSlotInterval,
		HourlyRate:       req.HourlyRate,
		PriceSchedules:   req.PriceSchedules,
		Discounts:        req.Discounts,
		HeatingCost:      req.HeatingCost,
		LightingCost:     req.LightingCost,
	}
	c.Normalize()

	if err := c.validateConfig(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Normalize()
	return c, nil
}

func (s *service) ListByClub(ctx context.Context, filter Filter) ([]*Court, int, error) {
	courts, total, err := s.repo.ListByClub(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for _, c := range courts {
		c.Normalize()
	}
	return courts, total, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		c.Name = *req.Name
	}
	if req.Surface != nil {
		c.Surface = *req.Surface
	}
	if req.AvailableFrom != nil {
		c.AvailableFrom = *req.AvailableFrom
	}
	if req.AvailableUntil != nil {
		c.AvailableUntil = *req.AvailableUntil
	}
	if req.TimeSlotInterval != nil {
		c.TimeSlotInterval = *req.TimeSlotInterval
	}
	if req.HourlyRate != nil {
		c.HourlyRate = *req.HourlyRate
	}
	if req.PriceSchedules != nil {
		c.PriceSchedules = req.PriceSchedules
	}
	if req.Discounts != nil {
		c.Discounts = req.Discounts
	}
	if req.HeatingCost != nil {
		c.HeatingCost = *req.HeatingCost
	}
	if req.LightingCost != nil {
		c.LightingCost = *req.LightingCost
	}

	c.Normalize()
	if err := c.validateConfig(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
