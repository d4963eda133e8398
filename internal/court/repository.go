package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	ListByClub(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// Price schedules and discount rules are stored as JSONB documents; their
// stored order is the resolution order, so they are kept as arrays rather
// than normalized into rows.
func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	schedulesJSON, err := json.Marshal(c.PriceSchedules)
	if err != nil {
		return fmt.Errorf("marshal price schedules failed: %w", err)
	}
	discountsJSON, err := json.Marshal(c.Discounts)
	if err != nil {
		return fmt.Errorf("marshal discounts failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.courts").
		Columns(
			"club_id", "name", "surface", "available_from", "available_until",
			"time_slot_interval", "hourly_rate", "price_schedules", "discounts",
			"heating_cost", "lighting_cost",
		).
		Values(
			c.ClubID, c.Name, c.Surface, c.AvailableFrom, c.AvailableUntil,
			c.TimeSlotInterval, c.HourlyRate, schedulesJSON, discountsJSON,
			c.HeatingCost, c.LightingCost,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create court query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

const courtColumns = `
	id, club_id, name, surface, available_from, available_until,
	time_slot_interval, hourly_rate, price_schedules, discounts,
	heating_cost, lighting_cost, created_at, updated_at
`

func scanCourt(row pgx.Row, extra ...any) (*Court, error) {
	var c Court
	var schedulesJSON, discountsJSON []byte

	dest := []any{
		&c.ID, &c.ClubID, &c.Name, &c.Surface, &c.AvailableFrom, &c.AvailableUntil,
		&c.TimeSlotInterval, &c.HourlyRate, &schedulesJSON, &discountsJSON,
		&c.HeatingCost, &c.LightingCost, &c.CreatedAt, &c.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan court failed: %w", err)
	}

	if len(schedulesJSON) > 0 {
		if err := json.Unmarshal(schedulesJSON, &c.PriceSchedules); err != nil {
			return nil, fmt.Errorf("unmarshal price schedules failed: %w", err)
		}
	}
	if len(discountsJSON) > 0 {
		if err := json.Unmarshal(discountsJSON, &c.Discounts); err != nil {
			return nil, fmt.Errorf("unmarshal discounts failed: %w", err)
		}
	}

	return &c, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	query := "SELECT " + courtColumns + " FROM public.courts WHERE id = $1"
	return scanCourt(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) ListByClub(ctx context.Context, filter Filter) ([]*Court, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := "SELECT " + courtColumns + ", count(*) OVER() AS total_count" +
		" FROM public.courts WHERE club_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3"

	rows, err := r.pool.Query(ctx, query, filter.ClubID, filter.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	var total int
	for rows.Next() {
		c, err := scanCourt(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		courts = append(courts, c)
	}
	return courts, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	schedulesJSON, err := json.Marshal(c.PriceSchedules)
	if err != nil {
		return fmt.Errorf("marshal price schedules failed: %w", err)
	}
	discountsJSON, err := json.Marshal(c.Discounts)
	if err != nil {
		return fmt.Errorf("marshal discounts failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.courts").
		Set("name", c.Name).
		Set("surface", c.Surface).
		Set("available_from", c.AvailableFrom).
		Set("available_until", c.AvailableUntil).
		Set("time_slot_interval", c.TimeSlotInterval).
		Set("hourly_rate", c.HourlyRate).
		Set("price_schedules", schedulesJSON).
		Set("discounts", discountsJSON).
		Set("heating_cost", c.HeatingCost).
		Set("lighting_cost", c.LightingCost).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.courts WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
