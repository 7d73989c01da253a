package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawnecta/petsitting-backend/internal/pkg/storage"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

// maxImageDim bounds the stored copy of an upload; larger originals are
// downscaled before saving.
const maxImageDim = 1600

type Service interface {
	// Upload stores an image and its thumbnail and records the metadata.
	// Non-image content types are rejected.
	Upload(ctx context.Context, header *multipart.FileHeader, userID string) (*Media, error)

	Get(ctx context.Context, id string) (*Media, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Media, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Media, error)

	// Delete removes the record and both stored files. Only the uploader
	// may delete.
	Delete(ctx context.Context, id, userID string) error
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

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, userID string) (*Media, error) {
	if header.Size > maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffered so the bytes can be decoded twice (downscale + thumbnail).
	raw, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}
	if int64(len(raw)) > maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	normalized, err := s.imgProc.Downscale(bytes.NewReader(raw), maxImageDim)
	if err != nil {
		return nil, ErrNotAnImage
	}

	mediaID := uuid.New().String()
	shard := mediaID[:2]
	storagePath := fmt.Sprintf("media/%s/%s.jpg", shard, mediaID)

	if err := s.storage.Save(ctx, storagePath, normalized); err != nil {
		return nil, fmt.Errorf("save media failed: %w", err)
	}

	var thumbnailPath *string
	if thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(raw), 200, 200); err == nil {
		tPath := fmt.Sprintf("media/%s/%s_thumb.jpg", shard, mediaID)
		if err := s.storage.Save(ctx, tPath, thumb); err == nil {
			thumbnailPath = &tPath
		} else {
			log.Printf("save thumbnail for media %s failed: %v", mediaID, err)
		}
	} else {
		log.Printf("generate thumbnail for media %s failed: %v", mediaID, err)
	}

	m := &Media{
		ID:            mediaID,
		UserID:        userID,
		Filename:      filepath.Base(header.Filename),
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   "image/jpeg",
		Size:          header.Size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
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

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, m.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve media from storage failed: %w", err)
	}
	return stream, m, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if m.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *m.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail from storage failed: %w", err)
	}
	return stream, m, nil
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.UserID != userID {
		return ErrNotOwner
	}

	if err := s.storage.Delete(ctx, m.StoragePath); err != nil {
		log.Printf("delete stored media %s failed: %v", id, err)
	}
	if m.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *m.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
