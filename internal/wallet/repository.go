package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByClubAndUser(ctx context.Context, clubID, userID string) (*Wallet, error)
	Create(ctx context.Context, w *Wallet) error

	// AddToBalance atomically applies a delta to the wallet balance and
	// returns the updated wallet.
	AddToBalance(ctx context.Context, id string, delta float64) (*Wallet, error)

	UpdatePolicy(ctx context.Context, w *Wallet) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const walletColumns = "id, club_id, user_id, balance, negative_balance_limit, allow_negative_balance, created_at, updated_at"

func scanWallet(row pgx.Row) (*Wallet, error) {
	var w Wallet
	err := row.Scan(
		&w.ID, &w.ClubID, &w.UserID, &w.Balance,
		&w.NegativeBalanceLimit, &w.AllowNegativeBalance,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan wallet failed: %w", err)
	}
	return &w, nil
}

func (r *pgxRepository) GetByClubAndUser(ctx context.Context, clubID, userID string) (*Wallet, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM public.wallets
		WHERE club_id = $1 AND user_id = $2
	`, walletColumns)

	return scanWallet(r.pool.QueryRow(ctx, query, clubID, userID))
}

func (r *pgxRepository) Create(ctx context.Context, w *Wallet) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.wallets").
		Columns("club_id", "user_id", "balance", "negative_balance_limit", "allow_negative_balance").
		Values(w.ClubID, w.UserID, w.Balance, w.NegativeBalanceLimit, w.AllowNegativeBalance).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create wallet query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

func (r *pgxRepository) AddToBalance(ctx context.Context, id string, delta float64) (*Wallet, error) {
	query := fmt.Sprintf(`
		UPDATE public.wallets
		SET balance = balance + $1, updated_at = now()
		WHERE id = $2
		RETURNING %s
	`, walletColumns)

	return scanWallet(r.pool.QueryRow(ctx, query, delta, id))
}

func (r *pgxRepository) UpdatePolicy(ctx context.Context, w *Wallet) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.wallets").
		Set("negative_balance_limit", w.NegativeBalanceLimit).
		Set("allow_negative_balance", w.AllowNegativeBalance).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": w.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update wallet policy query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update wallet policy failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
