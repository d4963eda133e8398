package club

import (
	"context"
	"errors"
	"strings"

	"github.com/courtside/club-backend/internal/user"
)

// UpdateRequest defines the club fields that can be updated.
type UpdateRequest struct {
	Name     *string
	Currency *string
	IsActive *bool
}

type Service interface {
	Create(ctx context.Context, name, currency, ownerUserID string) (*Club, error)
	GetByID(ctx context.Context, id string) (*Club, error)
	List(ctx context.Context, filter Filter) ([]*Club, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Club, error)
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, clubID, userID, role string) error
	GetMember(ctx context.Context, clubID, userID string) (*Member, error)
	RemoveMember(ctx context.Context, clubID, userID string) error
	UpdateMemberRole(ctx context.Context, clubID, userID, role string) error
	ListMembers(ctx context.Context, clubID string, filter MemberFilter) ([]*Member, int, error)

	// RoleOf returns the caller's membership role, used both for permission
	// checks and as the pricing role for role-specific price schedules.
	RoleOf(ctx context.Context, clubID, userID string) (string, error)
	IsManagerOrAbove(ctx context.Context, clubID, userID string) (bool, error)
}

type service struct {
	repo        Repository
	userService user.Service
}

func NewService(repo Repository, userService user.Service) Service {
	return &service{repo: repo, userService: userService}
}

func (s *service) Create(ctx context.Context, name, currency, ownerUserID string) (*Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if currency == "" {
		currency = "TRY"
	}

	c := &Club{
		Name:     name,
		Currency: strings.ToUpper(currency),
		IsActive: true,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	// The creator becomes the first owner.
	if err := s.repo.AddMember(ctx, c.ID, ownerUserID, RoleOwner); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Club, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Club, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Club, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		newName := strings.TrimSpace(*req.Name)
		if newName == "" {
			return nil, ErrNameRequired
		}
		c.Name = newName
	}
	if req.Currency != nil {
		c.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
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

func (s *service) AddMember(ctx context.Context, clubID, userID, role string) error {
	if !isValidRole(role) {
		return ErrInvalidRole
	}

	if _, err := s.repo.GetByID(ctx, clubID); err != nil {
		return err
	}

	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return ErrUserNotFound
		default:
			return err
		}
	}

	return s.repo.AddMember(ctx, clubID, userID, role)
}

func (s *service) GetMember(ctx context.Context, clubID, userID string) (*Member, error) {
	return s.repo.GetMember(ctx, clubID, userID)
}

func (s *service) RemoveMember(ctx context.Context, clubID, userID string) error {
	m, err := s.repo.GetMember(ctx, clubID, userID)
	if err != nil {
		return err
	}

	// A club must always keep at least one owner.
	if m.Role == RoleOwner {
		owners, err := s.repo.CountByRole(ctx, clubID, RoleOwner)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return ErrLastOwner
		}
	}

	return s.repo.RemoveMember(ctx, clubID, userID)
}

func (s *service) UpdateMemberRole(ctx context.Context, clubID, userID, role string) error {
	if !isValidRole(role) {
		return ErrInvalidRole
	}

	m, err := s.repo.GetMember(ctx, clubID, userID)
	if err != nil {
		return err
	}

	if m.Role == RoleOwner && role != RoleOwner {
		owners, err := s.repo.CountByRole(ctx, clubID, RoleOwner)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return ErrLastOwner
		}
	}

	return s.repo.UpdateMemberRole(ctx, clubID, userID, role)
}

func (s *service) ListMembers(ctx context.Context, clubID string, filter MemberFilter) ([]*Member, int, error) {
	return s.repo.ListMembers(ctx, clubID, filter)
}

func (s *service) RoleOf(ctx context.Context, clubID, userID string) (string, error) {
	m, err := s.repo.GetMember(ctx, clubID, userID)
	if err != nil {
		return "", err
	}
	return m.Role, nil
}

func (s *service) IsManagerOrAbove(ctx context.Context, clubID, userID string) (bool, error) {
	m, err := s.repo.GetMember(ctx, clubID, userID)
	if err != nil {
		if errors.Is(err, ErrNotMember) {
			return false, nil
		}
		return false, err
	}
	return IsManagerRole(m.Role), nil
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if role == r {
			return true
		}
	}
	return false
}
