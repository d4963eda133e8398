package club

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Club) error
	GetByID(ctx context.Context, id string) (*Club, error)
	List(ctx context.Context, filter Filter) ([]*Club, int, error)
	Update(ctx context.Context, c *Club) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, clubID, userID, role string) error
	GetMember(ctx context.Context, clubID, userID string) (*Member, error)
	RemoveMember(ctx context.Context, clubID, userID string) error
	UpdateMemberRole(ctx context.Context, clubID, userID, role string) error
	ListMembers(ctx context.Context, clubID string, filter MemberFilter) ([]*Member, int, error)
	CountByRole(ctx context.Context, clubID, role string) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Club) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.clubs").
		Columns("name", "currency", "is_active").
		Values(c.Name, c.Currency, c.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create club query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Club, error) {
	const query = `
		SELECT id, name, currency, is_active, created_at
		FROM public.clubs
		WHERE id = $1
	`
	var c Club
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Currency, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get club failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Club, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	const query = `
		SELECT id, name, currency, is_active, created_at, count(*) OVER() AS total_count
		FROM public.clubs
		WHERE is_active = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, filter.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list clubs failed: %w", err)
	}
	defer rows.Close()

	var clubs []*Club
	var total int
	for rows.Next() {
		var c Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Currency, &c.IsActive, &c.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan club failed: %w", err)
		}
		clubs = append(clubs, &c)
	}
	return clubs, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Club) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.clubs").
		Set("name", c.Name).
		Set("currency", c.Currency).
		Set("is_active", c.IsActive).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update club query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update club failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	// Soft delete: clubs are deactivated, never removed.
	const query = `UPDATE public.clubs SET is_active = false WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete club failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AddMember(ctx context.Context, clubID, userID, role string) error {
	const query = `
		INSERT INTO public.club_members (club_id, user_id, role)
		VALUES ($1, $2, $3)
	`
	if _, err := r.pool.Exec(ctx, query, clubID, userID, role); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrUserAlreadyMember
		}
		return fmt.Errorf("add member failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetMember(ctx context.Context, clubID, userID string) (*Member, error) {
	const query = `
		SELECT m.user_id, u.email, u.display_name, m.role, m.created_at
		FROM public.club_members m
		JOIN public.users u ON m.user_id = u.id
		WHERE m.club_id = $1 AND m.user_id = $2
	`
	var m Member
	err := r.pool.QueryRow(ctx, query, clubID, userID).
		Scan(&m.UserID, &m.Email, &m.DisplayName, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("get member failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) RemoveMember(ctx context.Context, clubID, userID string) error {
	const query = `DELETE FROM public.club_members WHERE club_id = $1 AND user_id = $2`
	ct, err := r.pool.Exec(ctx, query, clubID, userID)
	if err != nil {
		return fmt.Errorf("remove member failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotMember
	}
	return nil
}

func (r *pgxRepository) UpdateMemberRole(ctx context.Context, clubID, userID, role string) error {
	const query = `UPDATE public.club_members SET role = $1 WHERE club_id = $2 AND user_id = $3`
	ct, err := r.pool.Exec(ctx, query, role, clubID, userID)
	if err != nil {
		return fmt.Errorf("update member role failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotMember
	}
	return nil
}

func (r *pgxRepository) ListMembers(ctx context.Context, clubID string, filter MemberFilter) ([]*Member, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"m.user_id", "u.email", "u.display_name", "m.role", "m.created_at",
		"count(*) OVER() AS total_count",
	).
		From("public.club_members m").
		Join("public.users u ON m.user_id = u.id").
		Where(squirrel.Eq{"m.club_id": clubID})

	if filter.Role != "" {
		query = query.Where(squirrel.Eq{"m.role": filter.Role})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("m.created_at ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list members query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list members failed: %w", err)
	}
	defer rows.Close()

	var members []*Member
	var total int
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.Email, &m.DisplayName, &m.Role, &m.JoinedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan member failed: %w", err)
		}
		members = append(members, &m)
	}
	return members, total, nil
}

func (r *pgxRepository) CountByRole(ctx context.Context, clubID, role string) (int, error) {
	const query = `SELECT count(*) FROM public.club_members WHERE club_id = $1 AND role = $2`
	var count int
	if err := r.pool.QueryRow(ctx, query, clubID, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("count members failed: %w", err)
	}
	return count, nil
}
