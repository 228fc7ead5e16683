package backup

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

const keyPrefix = "snapshots/"

// ObjectStore is a flat blob store addressed by key.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

// NewKey names a snapshot object. Zero-padded dates and a UUIDv7 make keys
// sort chronologically.
func NewKey(t time.Time) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("%s%04d/%02d/%02d/%s.json", keyPrefix, t.Year(), t.Month(), t.Day(), id)
}

// Service uploads and restores snapshots through an ObjectStore.
type Service struct {
	src     Snapshotter
	objects ObjectStore
	now     func() time.Time
}

// NewService returns a Service. objects may be nil when no object storage is
// configured; Backup and Restore then fail with ErrNotConfigured.
func NewService(src Snapshotter, objects ObjectStore) *Service {
	return &Service{src: src, objects: objects, now: time.Now}
}

// Backup uploads the current snapshot and returns its key.
func (s *Service) Backup(ctx context.Context) (string, error) {
	if s.objects == nil {
		return "", ErrNotConfigured
	}
	data, err := Encode(s.src.ExportSnapshot(ctx))
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	key := NewKey(s.now().UTC())
	if err := s.objects.Put(ctx, key, data); err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return key, nil
}

// Restore imports the snapshot stored at key, or the newest one when key is
// empty. It returns the key that was restored.
func (s *Service) Restore(ctx context.Context, key string) (string, error) {
	if s.objects == nil {
		return "", ErrNotConfigured
	}
	if key == "" {
		latest, err := s.Latest(ctx)
		if err != nil {
			return "", err
		}
		key = latest
	}

	data, err := s.objects.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("download snapshot: %w", err)
	}
	if !s.src.ImportSnapshot(ctx, data) {
		return "", ErrImportRejected
	}
	return key, nil
}

// Latest returns the key of the newest snapshot.
func (s *Service) Latest(ctx context.Context) (string, error) {
	if s.objects == nil {
		return "", ErrNotConfigured
	}
	keys, err := s.objects.List(ctx, keyPrefix)
	if err != nil {
		return "", fmt.Errorf("list snapshots: %w", err)
	}
	if len(keys) == 0 {
		return "", ErrNoBackups
	}
	return slices.Max(keys), nil
}
