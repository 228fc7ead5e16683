package store

import (
	"context"
	"encoding/json"
)

// loadRecords reads the JSON array at key as raw records. An absent key is an
// empty list. It reports false when the key cannot be read or does not hold
// an array; callers must not write the collection back in that case.
func (s *Store) loadRecords(ctx context.Context, key string) ([]json.RawMessage, bool) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Error(ctx, "error reading from storage", "key", key, "error", err)
		return nil, false
	}
	if raw == nil {
		return []json.RawMessage{}, true
	}

	var recs []json.RawMessage
	if err := json.Unmarshal(raw, &recs); err != nil {
		s.logger.Error(ctx, "stored collection is not an array, refusing to rewrite it", "key", key, "error", err)
		return nil, false
	}
	if recs == nil {
		recs = []json.RawMessage{}
	}
	return recs, true
}

// saveRecords writes recs back as one array.
func (s *Store) saveRecords(ctx context.Context, key string, recs []json.RawMessage) bool {
	if recs == nil {
		recs = []json.RawMessage{}
	}
	return s.Set(ctx, key, recs)
}

// appendRecord adds v to the end of the collection at key. Records already
// stored are written back unchanged, whatever their shape.
func (s *Store) appendRecord(ctx context.Context, key string, v any) bool {
	recs, ok := s.loadRecords(ctx, key)
	if !ok {
		return false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "error encoding value", "key", key, "error", err)
		return false
	}
	return s.saveRecords(ctx, key, append(recs, raw))
}

// listRecords decodes every well-formed record at key. Malformed records are
// skipped with a warning and stay in storage untouched.
func listRecords[T any](ctx context.Context, s *Store, key string) []T {
	recs, ok := s.loadRecords(ctx, key)
	out := make([]T, 0, len(recs))
	if !ok {
		return out
	}
	for i, r := range recs {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			s.logger.Warn(ctx, "skipping malformed record", "key", key, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// recordID extracts the string id of a raw record. Records without one, or
// with a non-string id, never match.
func recordID(r json.RawMessage) (string, bool) {
	var head struct {
		ID *string `json:"id"`
	}
	if err := json.Unmarshal(r, &head); err != nil || head.ID == nil {
		return "", false
	}
	return *head.ID, true
}

// indexOf returns the position of the record with the given id, or -1.
func indexOf(recs []json.RawMessage, id string) int {
	for i, r := range recs {
		if rid, ok := recordID(r); ok && rid == id {
			return i
		}
	}
	return -1
}
