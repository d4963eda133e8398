package payment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Fetcher {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) FetchKeys(ctx context.Context, clubID string) ([]ProviderKeys, error) {
	const query = `
		SELECT provider, public_key, secret_key, updated_at
		FROM public.payment_keys
		WHERE club_id = $1
		ORDER BY provider ASC`

	rows, err := r.pool.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment keys failed: %w", err)
	}
	defer rows.Close()

	var keys []ProviderKeys
	for rows.Next() {
		var k ProviderKeys
		if err := rows.Scan(&k.Provider, &k.PublicKey, &k.SecretKey, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment keys failed: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
