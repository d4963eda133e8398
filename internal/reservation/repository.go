package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateBatch(ctx context.Context, reservations []*Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByCourtAndDate(ctx context.Context, courtID, date string) ([]*Reservation, error)
	ListByClubAndDate(ctx context.Context, clubID, date string) ([]*Reservation, error)
	ListByClubBetween(ctx context.Context, clubID, fromDate, toDate string) ([]*Reservation, error)
	ListByUser(ctx context.Context, clubID, userID string, page, pageSize int) ([]*Reservation, int, error)
	Cancel(ctx context.Context, id string, at time.Time) error
	ExpirePending(ctx context.Context, before time.Time) (int64, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// CreateBatch inserts all rows in one transaction. The partial unique index
// on (court_id, date, time) WHERE status <> 'cancelled' is the concurrency
// guard: two competing bookings of the same slot race on the insert, and the
// loser gets ErrSlotTaken with nothing committed.
func (r *pgxRepository) CreateBatch(ctx context.Context, reservations []*Reservation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create reservations failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	for _, res := range reservations {
		query, args, err := psql.Insert("public.reservations").
			Columns(
				"club_id", "court_id", "user_id", "date", "time", "end_time",
				"duration", "status", "kind", "heater", "light", "is_guest",
				"amount_paid", "original_price", "discount_percentage",
				"discount_applied", "coupon_applied", "coupon_code",
				"coupon_discount_amount", "joint_payment", "joint_amount",
				"paid_with_wallet",
			).
			Values(
				res.ClubID, res.CourtID, res.UserID, res.Date, res.Time, res.EndTime,
				res.Duration, res.Status, res.Kind, res.Heater, res.Light, res.IsGuestReservation,
				res.AmountPaid, res.OriginalPrice, res.DiscountPercentage,
				res.DiscountApplied, res.CouponApplied, res.CouponCode,
				res.CouponDiscountAmount, res.JointPayment, res.JointAmount,
				res.PaidWithWallet,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create reservation query failed: %w", err)
		}

		if err := tx.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrSlotTaken
			}
			return fmt.Errorf("create reservation failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create reservations failed: %w", err)
	}
	return nil
}

const reservationColumns = `
	id, club_id, court_id, user_id, date, time, end_time, duration, status,
	kind, heater, light, is_guest, amount_paid, original_price,
	discount_percentage, discount_applied, coupon_applied, coupon_code,
	coupon_discount_amount, joint_payment, joint_amount, paid_with_wallet,
	created_at, updated_at, cancelled_at
`

func scanReservation(row pgx.Row, extra ...any) (*Reservation, error) {
	var res Reservation
	dest := []any{
		&res.ID, &res.ClubID, &res.CourtID, &res.UserID, &res.Date, &res.Time,
		&res.EndTime, &res.Duration, &res.Status, &res.Kind, &res.Heater,
		&res.Light, &res.IsGuestReservation, &res.AmountPaid, &res.OriginalPrice,
		&res.DiscountPercentage, &res.DiscountApplied, &res.CouponApplied,
		&res.CouponCode, &res.CouponDiscountAmount, &res.JointPayment,
		&res.JointAmount, &res.PaidWithWallet, &res.CreatedAt, &res.UpdatedAt,
		&res.CancelledAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := "SELECT " + reservationColumns + " FROM public.reservations WHERE id = $1"
	return scanReservation(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) list(ctx context.Context, query string, args ...any) ([]*Reservation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (r *pgxRepository) ListByCourtAndDate(ctx context.Context, courtID, date string) ([]*Reservation, error) {
	query := "SELECT " + reservationColumns +
		` FROM public.reservations WHERE court_id = $1 AND date = $2 ORDER BY "time" ASC, created_at ASC`
	return r.list(ctx, query, courtID, date)
}

func (r *pgxRepository) ListByClubAndDate(ctx context.Context, clubID, date string) ([]*Reservation, error) {
	query := "SELECT " + reservationColumns +
		` FROM public.reservations WHERE club_id = $1 AND date = $2 ORDER BY court_id ASC, "time" ASC, created_at ASC`
	return r.list(ctx, query, clubID, date)
}

func (r *pgxRepository) ListByClubBetween(ctx context.Context, clubID, fromDate, toDate string) ([]*Reservation, error) {
	query := "SELECT " + reservationColumns +
		` FROM public.reservations WHERE club_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, "time" ASC, created_at ASC`
	return r.list(ctx, query, clubID, fromDate, toDate)
}

func (r *pgxRepository) ListByUser(ctx context.Context, clubID, userID string, page, pageSize int) ([]*Reservation, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	query := "SELECT " + reservationColumns + ", count(*) OVER() AS total_count" +
		` FROM public.reservations WHERE club_id = $1 AND user_id = $2
		 ORDER BY date DESC, "time" DESC LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, clubID, userID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list user reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int
	for rows.Next() {
		res, err := scanReservation(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, res)
	}
	return reservations, total, nil
}

func (r *pgxRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	const query = `
		UPDATE public.reservations
		SET status = $1, cancelled_at = $2, updated_at = now()
		WHERE id = $3 AND status <> $1`

	ct, err := r.pool.Exec(ctx, query, StatusCancelled, at, id)
	if err != nil {
		return fmt.Errorf("cancel reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpirePending cancels pending reservations that were never paid. Cancelling
// releases the slot because the unique index only covers non-cancelled rows.
func (r *pgxRepository) ExpirePending(ctx context.Context, before time.Time) (int64, error) {
	const query = `
		UPDATE public.reservations
		SET status = $1, cancelled_at = now(), updated_at = now()
		WHERE status = $2 AND created_at < $3`

	ct, err := r.pool.Exec(ctx, query, StatusCancelled, StatusPending, before)
	if err != nil {
		return 0, fmt.Errorf("expire pending reservations failed: %w", err)
	}
	return ct.RowsAffected(), nil
}
