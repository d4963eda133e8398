package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/club-backend/internal/pkg/storage"
)

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, clubID, userID string) (*Media, error)
	Get(ctx context.Context, id string) (*Media, error)
	ListByClub(ctx context.Context, clubID string) ([]*Media, error)
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string) (io.ReadCloser, *Media, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Media, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, clubID, userID string) (*Media, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content so it can be read twice: once for the original,
	// once for the thumbnail. Uploads are images, so this stays small.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mediaID := uuid.New().String()

	// Sharding path: media/<club>/ab/UUID.ext
	shard := mediaID[:2]
	storagePath := fmt.Sprintf("media/%s/%s/%s%s", clubID, shard, mediaID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save file to storage: %w", err)
	}

	// Thumbnail failure does not fail the upload.
	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 200, 200)
	if err == nil {
		tPath := fmt.Sprintf("media/%s/%s/%s_thumb.jpg", clubID, shard, mediaID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}

	m := &Media{
		ID:            mediaID,
		ClubID:        clubID,
		UserID:        userID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		// Cleanup storage if the db write fails.
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return m, nil
}

func (s *service) Get(ctx context.Context, id string) (*Media, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByClub(ctx context.Context, clubID string) ([]*Media, error) {
	return s.repo.ListByClub(ctx, clubID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort storage cleanup; the record is the source of truth.
	_ = s.storage.Delete(ctx, m.StoragePath)
	if m.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *m.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, m.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve file from storage: %w", err)
	}

	return stream, m, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if m.ThumbnailPath == nil {
		return nil, nil, ErrThumbnailMissing
	}

	stream, err := s.storage.Get(ctx, *m.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, m, nil
}
