package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"request-metrics/internal/models"
	"request-metrics/internal/shared/filestorages"
)

var (
	ErrWindowAlreadyArchived = errors.New("window already archived")
	ErrWindowNotArchived     = errors.New("window not archived")
)

//go:generate mockgen -source=window_archive_store.go -destination=./mocks/window_archive_store_mock.go -package=mocks
type WindowArchiveStore interface {
	// Put stores the window once; a second Put for the same window start fails with ErrWindowAlreadyArchived.
	Put(ctx context.Context, archived *models.ArchivedWindow) error
	Get(ctx context.Context, windowStart time.Time) (*models.ArchivedWindow, error)
	// List returns the archived windows starting in [from, to), oldest first. Windows that
	// were never archived are skipped.
	List(ctx context.Context, from, to time.Time) ([]*models.ArchivedWindow, error)
}

type windowArchiveStore struct {
	fileStorage filestorages.FileStorage
	span        models.BucketSpan
	dir         string
}

func NewWindowArchiveStore(fileStorage filestorages.FileStorage, span models.BucketSpan) WindowArchiveStore {
	return &windowArchiveStore{fileStorage: fileStorage, span: span, dir: "window-archive"}
}

func (s *windowArchiveStore) Put(ctx context.Context, archived *models.ArchivedWindow) error {
	jsonData, err := json.Marshal(archived)
	if err != nil {
		return fmt.Errorf("failed to marshal archived window: %w", err)
	}

	key := s.getKey(archived.WindowStart)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrWindowAlreadyArchived, key)
		}
		return fmt.Errorf("failed to put archived window: %w", err)
	}
	return nil
}

func (s *windowArchiveStore) Get(ctx context.Context, windowStart time.Time) (*models.ArchivedWindow, error) {
	key := s.getKey(windowStart)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrWindowNotArchived, key)
		}
		return nil, fmt.Errorf("failed to get archived window: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived window: %w", err)
	}
	var archived models.ArchivedWindow
	if err := json.Unmarshal(data, &archived); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archived window: %w", err)
	}
	return &archived, nil
}

func (s *windowArchiveStore) List(ctx context.Context, from, to time.Time) ([]*models.ArchivedWindow, error) {
	windows := make([]*models.ArchivedWindow, 0)
	step := s.span.Duration()
	for start := s.span.Align(from); start.Before(to); start = start.Add(step) {
		if start.Before(from) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		archived, err := s.Get(ctx, start)
		if err != nil {
			if errors.Is(err, ErrWindowNotArchived) {
				continue
			}
			return nil, err
		}
		windows = append(windows, archived)
	}
	return windows, nil
}

// getKey returns "window-archive/<YYYYMMDD>/<window start>.json".
func (s *windowArchiveStore) getKey(windowStart time.Time) string {
	day := windowStart.UTC().Format("20060102")
	return fmt.Sprintf("%s/%s/%s.json", s.dir, day, s.span.FormatWindowStart(windowStart))
}
