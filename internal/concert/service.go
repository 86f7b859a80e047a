package concert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/storage"
	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

const (
	thumbnailMaxWidth  = 480
	thumbnailMaxHeight = 640
)

type CreateRequest struct {
	Title     string
	Venue     string
	Date      string // "YYYY-MM-DD"
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	SetList   []SetListItem
	CreatedBy string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Concert, error)
	GetByID(ctx context.Context, id string) (*Concert, error)
	List(ctx context.Context) ([]*Concert, error)
	Delete(ctx context.Context, id string) error

	// AttachPoster stores the uploaded poster plus a thumbnail and records
	// the poster path on the concert.
	AttachPoster(ctx context.Context, id string, content io.Reader) error

	// OpenPoster returns a reader over the stored poster image.
	OpenPoster(ctx context.Context, id string) (io.ReadCloser, error)
}

type service struct {
	repo      Repository
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage, processor *storage.ImageProcessor) Service {
	return &service{repo: repo, store: store, processor: processor}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Concert, error) {
	start, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	end, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	if start >= end {
		return nil, ErrInvalidTime
	}

	// Renumber the set list so the stored order is always 1..n regardless of
	// what the client sent.
	setList := make([]SetListItem, 0, len(req.SetList))
	for _, item := range req.SetList {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		setList = append(setList, SetListItem{
			Order: len(setList) + 1,
			Title: strings.TrimSpace(item.Title),
			Note:  strings.TrimSpace(item.Note),
		})
	}

	con := &Concert{
		Title:     strings.TrimSpace(req.Title),
		Venue:     strings.TrimSpace(req.Venue),
		Date:      req.Date,
		Start:     start,
		End:       end,
		SetList:   setList,
		CreatedBy: req.CreatedBy,
	}

	if err := s.repo.Create(ctx, con); err != nil {
		return nil, err
	}
	return con, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Concert, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Concert, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	con, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if con.PosterPath != nil {
		// Orphaned files are harmless; removal is best effort.
		_ = s.store.Delete(ctx, *con.PosterPath)
		_ = s.store.Delete(ctx, thumbnailPath(*con.PosterPath))
	}
	return nil
}

func (s *service) AttachPoster(ctx context.Context, id string, content io.Reader) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	// The image is read twice (original + thumbnail), so buffer it once.
	data, err := io.ReadAll(content)
	if err != nil {
		return fmt.Errorf("read poster upload failed: %w", err)
	}

	thumb, err := s.processor.GenerateThumbnail(bytes.NewReader(data), thumbnailMaxWidth, thumbnailMaxHeight)
	if err != nil {
		return ErrInvalidImage
	}

	path := posterPath(id)
	if err := s.store.Save(ctx, path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("save poster failed: %w", err)
	}
	if err := s.store.Save(ctx, thumbnailPath(path), thumb); err != nil {
		return fmt.Errorf("save poster thumbnail failed: %w", err)
	}

	return s.repo.UpdatePosterPath(ctx, id, path)
}

func (s *service) OpenPoster(ctx context.Context, id string) (io.ReadCloser, error) {
	con, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if con.PosterPath == nil {
		return nil, ErrNoPoster
	}
	return s.store.Get(ctx, *con.PosterPath)
}

func posterPath(id string) string {
	return "concerts/" + id + "/poster.jpg"
}

func thumbnailPath(posterPath string) string {
	return strings.TrimSuffix(posterPath, ".jpg") + "_thumb.jpg"
}
