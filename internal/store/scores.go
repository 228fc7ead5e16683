package store

import (
	"context"

	"github.com/dmitrijs2005/studify/internal/models"
)

// ListScores returns the decodable part of the score log in append order.
func (s *Store) ListScores(ctx context.Context) []models.Score {
	return listRecords[models.Score](ctx, s, KeyScores)
}

// SaveScore stamps id and completion time and appends the record.
func (s *Store) SaveScore(ctx context.Context, score models.Score) (models.Score, bool) {
	score.ID = s.newID()
	score.Date = s.now().UTC()

	if !s.appendRecord(ctx, KeyScores, score) {
		return models.Score{}, false
	}
	return score, true
}

// Preferences never fails: defaults stand in for a missing record.
func (s *Store) Preferences(ctx context.Context) models.Preferences {
	var p models.Preferences
	if !s.Get(ctx, KeyPreferences, &p) {
		return models.DefaultPreferences()
	}
	return p
}

func (s *Store) SavePreferences(ctx context.Context, p models.Preferences) bool {
	return s.Set(ctx, KeyPreferences, p)
}
