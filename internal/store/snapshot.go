package store

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/studify/internal/models"
)

// ExportSnapshot dumps sessions, scores and preferences with the export time.
func (s *Store) ExportSnapshot(ctx context.Context) models.Snapshot {
	return models.Snapshot{
		Sessions:    s.ListSessions(ctx),
		Scores:      s.ListScores(ctx),
		Preferences: s.Preferences(ctx),
		ExportedAt:  s.now().UTC(),
	}
}

// snapshotDoc is the structural view of an import document. Each field keeps
// its raw text so that records are written back untouched.
type snapshotDoc struct {
	Sessions    json.RawMessage `json:"sessions"`
	Scores      json.RawMessage `json:"scores"`
	Preferences json.RawMessage `json:"preferences"`
}

// ImportSnapshot overwrites sessions, scores and preferences with the keys
// present in raw. Absent or null keys are left alone. A document that is not
// a JSON object, or whose present keys have the wrong JSON kind, is rejected
// before anything is written. Individual records are not validated.
func (s *Store) ImportSnapshot(ctx context.Context, raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		s.logger.Error(ctx, "error importing data: document is not an object")
		return false
	}

	var doc snapshotDoc
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		s.logger.Error(ctx, "error importing data", "error", err)
		return false
	}

	writes := make(map[string][]byte, 3)
	for _, f := range []struct {
		key  string
		val  json.RawMessage
		kind byte
	}{
		{KeySessions, doc.Sessions, '['},
		{KeyScores, doc.Scores, '['},
		{KeyPreferences, doc.Preferences, '{'},
	} {
		if !present(f.val) {
			continue
		}
		if f.val[0] != f.kind {
			s.logger.Error(ctx, "error importing data: unexpected value kind", "key", f.key)
			return false
		}
		writes[f.key] = f.val
	}

	if len(writes) == 0 {
		return true
	}
	if err := s.backend.SetMany(ctx, writes); err != nil {
		s.logger.Error(ctx, "error importing data", "error", err)
		return false
	}
	return true
}

// present reports whether a raw field was supplied with a non-null value.
// The decoder hands out trimmed values, so the first byte is the kind.
func present(v json.RawMessage) bool {
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}
