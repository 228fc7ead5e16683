package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/dmitrijs2005/studify/internal/storage"
	"github.com/dmitrijs2005/studify/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	st := store.New(storage.NewMemoryBackend(0), logging.Nop())
	_, ok := st.AddSession(ctx, models.Session{Title: "Physics", Subject: "Science", Date: "2026-10-20T09:00", Time: "09:00", Duration: 50})
	require.True(t, ok)
	_, ok = st.SaveScore(ctx, models.Score{Score: 4, Total: 5, Percentage: 80})
	require.True(t, ok)
	return st
}

func TestFileExportImport(t *testing.T) {
	ctx := context.Background()
	src := seededStore(t)
	path := filepath.Join(t.TempDir(), "nested", "studify-export.json")

	require.NoError(t, ExportFile(ctx, src, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dst := store.New(storage.NewMemoryBackend(0), logging.Nop())
	require.NoError(t, ImportFile(ctx, dst, path))

	assert.Equal(t, src.ListSessions(ctx), dst.ListSessions(ctx))
	assert.Equal(t, src.ListScores(ctx), dst.ListScores(ctx))
}

func TestImportFile_Errors(t *testing.T) {
	ctx := context.Background()
	dst := store.New(storage.NewMemoryBackend(0), logging.Nop())
	dir := t.TempDir()

	err := ImportFile(ctx, dst, filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"sessions": 42}`), 0o600))
	assert.ErrorIs(t, ImportFile(ctx, dst, bad), ErrImportRejected)
}
