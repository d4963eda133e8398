package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Media) error
	GetByID(ctx context.Context, id string) (*Media, error)
	ListByClub(ctx context.Context, clubID string) ([]*Media, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Media) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.media").
		Columns("id", "club_id", "user_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		Values(m.ID, m.ClubID, m.UserID, m.Filename, m.StoragePath, m.ThumbnailPath, m.ContentType, m.Size, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create media record: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Media, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "club_id", "user_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		From("public.media").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	m := &Media{}
	var thumbnailPath sql.NullString

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&m.ID,
		&m.ClubID,
		&m.UserID,
		&m.Filename,
		&m.StoragePath,
		&thumbnailPath,
		&m.ContentType,
		&m.Size,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}

	if thumbnailPath.Valid {
		m.ThumbnailPath = &thumbnailPath.String
	}

	return m, nil
}

func (r *repository) ListByClub(ctx context.Context, clubID string) ([]*Media, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "club_id", "user_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		From("public.media").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	defer rows.Close()

	var result []*Media
	for rows.Next() {
		m := &Media{}
		var thumbnailPath sql.NullString
		if err := rows.Scan(
			&m.ID,
			&m.ClubID,
			&m.UserID,
			&m.Filename,
			&m.StoragePath,
			&thumbnailPath,
			&m.ContentType,
			&m.Size,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan media: %w", err)
		}
		if thumbnailPath.Valid {
			m.ThumbnailPath = &thumbnailPath.String
		}
		result = append(result, m)
	}
	return result, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.media").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete media record: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
