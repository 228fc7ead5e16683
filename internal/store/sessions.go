package store

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/studify/internal/models"
)

// ListSessions returns the stored sessions in insertion order, or an empty
// slice. Records that do not decode are left out.
func (s *Store) ListSessions(ctx context.Context) []models.Session {
	return listRecords[models.Session](ctx, s, KeySessions)
}

// AddSession assigns a fresh id to session and appends it. Ids are not
// checked for collisions.
func (s *Store) AddSession(ctx context.Context, session models.Session) (models.Session, bool) {
	session.ID = s.newID()

	if !s.appendRecord(ctx, KeySessions, session) {
		return models.Session{}, false
	}
	return session, true
}

// GetSession looks a session up by id.
func (s *Store) GetSession(ctx context.Context, id string) (models.Session, bool) {
	for _, sess := range s.ListSessions(ctx) {
		if sess.ID == id {
			return sess, true
		}
	}
	return models.Session{}, false
}

// UpdateSession merges patch over the session with the given id. It returns
// false without writing when no session matches or the match is malformed.
func (s *Store) UpdateSession(ctx context.Context, id string, patch models.SessionPatch) bool {
	recs, ok := s.loadRecords(ctx, KeySessions)
	if !ok {
		return false
	}
	i := indexOf(recs, id)
	if i < 0 {
		return false
	}

	var sess models.Session
	if err := json.Unmarshal(recs[i], &sess); err != nil {
		s.logger.Warn(ctx, "cannot update malformed session", "id", id, "error", err)
		return false
	}
	raw, err := json.Marshal(patch.Apply(sess))
	if err != nil {
		s.logger.Error(ctx, "error encoding value", "key", KeySessions, "error", err)
		return false
	}
	recs[i] = raw
	return s.saveRecords(ctx, KeySessions, recs)
}

// DeleteSession removes the session with the given id. Deleting an id that
// is not stored is a no-op returning false.
func (s *Store) DeleteSession(ctx context.Context, id string) bool {
	recs, ok := s.loadRecords(ctx, KeySessions)
	if !ok {
		return false
	}
	i := indexOf(recs, id)
	if i < 0 {
		return false
	}
	return s.saveRecords(ctx, KeySessions, append(recs[:i], recs[i+1:]...))
}
