// Package store is the persistence store: typed accessors for the planner's
// logical collections multiplexed onto one flat storage.Backend, with JSON
// at the boundary.
//
// No operation returns an error. Failures are logged and surface as the zero
// value, an empty slice, or false, so callers never have to handle a fault
// coming out of persistence.
package store

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/storage"
	"github.com/google/uuid"
)

// Managed keys.
const (
	KeyUser           = "studify_user"
	KeySessions       = "studify_sessions"
	KeyScores         = "studify_scores"
	KeyPreferences    = "studify_preferences"
	KeyAuth           = "studify_auth"
	KeyUsers          = "studify_users"
	KeyDailyQuote     = "studify_daily_quote"
	KeyDailyQuoteDate = "studify_daily_quote_date"
)

// keyPrefix marks every key the planner owns.
const keyPrefix = "studify_"

// clearedKeys are removed by ClearAll even when the backend cannot list its
// keys. The account registry survives.
var clearedKeys = []string{
	KeyUser, KeySessions, KeyScores, KeyPreferences, KeyAuth,
	KeyDailyQuote, KeyDailyQuoteDate,
}

type Store struct {
	backend storage.Backend
	logger  logging.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*Store)

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source for new records.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(backend storage.Backend, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		newID:   newTimeOrderedID,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newTimeOrderedID returns a UUIDv7: time-derived like the millisecond ids
// browsers use, but unique within the same millisecond.
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Now exposes the store clock to collaborators that stamp their own data.
func (s *Store) Now() time.Time {
	return s.now()
}

// Get decodes the value at key into dst. It reports false when the key is
// absent, unreadable or not decodable into dst.
func (s *Store) Get(ctx context.Context, key string, dst any) bool {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Error(ctx, "error reading from storage", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn(ctx, "stored value is not decodable", "key", key, "error", err)
		return false
	}
	return true
}

// Set encodes v and writes it at key.
func (s *Store) Set(ctx context.Context, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "error encoding value", "key", key, "error", err)
		return false
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		s.logger.Error(ctx, "error writing to storage", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key; removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, "error removing from storage", "key", key, "error", err)
		return false
	}
	return true
}

// ClearAll removes every planner key except the account registry. It reports
// false if any removal failed; the remaining keys are still attempted.
func (s *Store) ClearAll(ctx context.Context) bool {
	ok := true
	for _, k := range s.plannerKeys(ctx) {
		if !s.Remove(ctx, k) {
			ok = false
		}
	}
	return ok
}

// plannerKeys lists the stored studify_ keys other than the registry, plus
// the fixed managed keys.
func (s *Store) plannerKeys(ctx context.Context) []string {
	keys := slices.Clone(clearedKeys)

	stored, err := s.backend.Keys(ctx)
	if err != nil {
		s.logger.Error(ctx, "error listing storage keys", "error", err)
		return keys
	}
	for _, k := range stored {
		if strings.HasPrefix(k, keyPrefix) && k != KeyUsers && !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return keys
}
