package quiz

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/studify/internal/models"
)

type fakeProvider struct {
	mu         sync.Mutex
	categories []models.Category
	catErr     error
	questions  []models.Question
	err        error
	queries    []Query
	// block, when set, makes FetchQuestions wait for a value or ctx.
	block chan struct{}
}

func (f *fakeProvider) FetchCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, f.catErr
}

func (f *fakeProvider) FetchQuestions(ctx context.Context, q Query) ([]models.Question, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	block := f.block
	questions, err := f.questions, f.err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return questions, err
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeProvider) set(questions []models.Question, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions, f.err = questions, err
}

type fakeRecorder struct {
	saved []models.Score
	fail  bool
}

func (r *fakeRecorder) SaveScore(ctx context.Context, s models.Score) (models.Score, bool) {
	if r.fail {
		return models.Score{}, false
	}
	s.ID = "score-1"
	r.saved = append(r.saved, s)
	return s, true
}

func threeQuestions() []models.Question {
	return []models.Question{
		{Text: "2+2?", CorrectAnswer: "4", IncorrectAnswers: []string{"3", "5", "22"}, Category: "Science: Mathematics", Difficulty: "easy", Type: "multiple"},
		{Text: "Sky is green?", CorrectAnswer: "False", IncorrectAnswers: []string{"True"}, Category: "Science: Mathematics", Difficulty: "easy", Type: "boolean"},
		{Text: "Pi starts with?", CorrectAnswer: "3.14", IncorrectAnswers: []string{"2.71", "1.61", "1.41"}, Category: "Science: Mathematics", Difficulty: "easy", Type: "multiple"},
	}
}
