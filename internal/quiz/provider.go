package quiz

import (
	"context"

	"github.com/dmitrijs2005/studify/internal/models"
)

// Query is one question request.
type Query struct {
	Amount     int
	Category   int    // 0 means any
	Difficulty string // "" means any
	Type       string // "", "multiple" or "boolean"
}

// QuestionProvider is the external trivia source.
type QuestionProvider interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
	FetchQuestions(ctx context.Context, q Query) ([]models.Question, error)
}

// ScoreRecorder persists the outcome of a completed run.
type ScoreRecorder interface {
	SaveScore(ctx context.Context, score models.Score) (models.Score, bool)
}
