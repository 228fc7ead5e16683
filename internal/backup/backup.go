// Package backup moves planner snapshots in and out of the store: to a local
// JSON file, or to S3-compatible object storage.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/studify/internal/filex"
	"github.com/dmitrijs2005/studify/internal/models"
)

var (
	ErrImportRejected = errors.New("snapshot rejected: not a valid export document")
	ErrNoBackups      = errors.New("no backups found")
	ErrNotConfigured  = errors.New("object storage is not configured")
)

// Snapshotter is the persistence store's snapshot surface.
type Snapshotter interface {
	ExportSnapshot(ctx context.Context) models.Snapshot
	ImportSnapshot(ctx context.Context, raw []byte) bool
}

// Encode renders a snapshot the way exports are written.
func Encode(s models.Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportFile writes the current snapshot to path atomically.
func ExportFile(ctx context.Context, src Snapshotter, path string) error {
	data, err := Encode(src.ExportSnapshot(ctx))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("prepare export dir: %w", err)
	}
	if err := filex.WriteFileAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ImportFile loads the snapshot at path into dst.
func ImportFile(ctx context.Context, dst Snapshotter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !dst.ImportSnapshot(ctx, data) {
		return ErrImportRejected
	}
	return nil
}
