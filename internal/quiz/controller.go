package quiz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/models"
)

const (
	DefaultTimeout = 8 * time.Second
	MaxAmount      = 50
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in_progress"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Settings chooses what to ask the provider for.
type Settings struct {
	Amount     int    `json:"amount"`
	Category   int    `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Validate checks amount and difficulty.
func (s Settings) Validate() error {
	if s.Amount <= 0 || s.Amount > MaxAmount {
		return fmt.Errorf("%w: amount must be between 1 and %d", ErrInvalidSettings, MaxAmount)
	}
	switch s.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSettings, s.Difficulty)
	}
	return nil
}

// RunQuestion is a fetched question with its answer order fixed for the run.
type RunQuestion struct {
	models.Question
	ShuffledAnswers []string `json:"shuffledAnswers"`
}

// Progress describes the question currently awaiting an answer.
type Progress struct {
	Index    int         `json:"index"`
	Total    int         `json:"total"`
	Score    int         `json:"score"`
	Question RunQuestion `json:"question"`
}

// AnswerResult acknowledges one submitted answer.
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Done          bool   `json:"done"`
}

// Result is the final tally of a completed run.
type Result struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage int          `json:"percentage"`
	Settings   Settings     `json:"settings"`
	Record     models.Score `json:"record"`
	Saved      bool         `json:"saved"`
}

type run struct {
	questions []RunQuestion
	index     int
	score     int
	result    Result
}

// Controller owns the state of one quiz run. Its methods may be called from
// several goroutines; a load in flight does not hold the lock.
type Controller struct {
	provider QuestionProvider
	scores   ScoreRecorder
	logger   logging.Logger
	timeout  time.Duration
	intn     func(int) int

	mu       sync.Mutex
	state    State
	gen      uint64
	settings *Settings
	run      *run
}

type Option func(*Controller)

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithRandom replaces the shuffle source.
func WithRandom(intn func(int) int) Option {
	return func(c *Controller) { c.intn = intn }
}

func NewController(provider QuestionProvider, scores ScoreRecorder, logger logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		provider: provider,
		scores:   scores,
		logger:   logger,
		timeout:  DefaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Settings returns the settings of the last Start, if any.
func (c *Controller) Settings() (Settings, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.settings == nil {
		return Settings{}, false
	}
	return *c.settings, true
}

// Start fetches a new question set and begins a run. Any previous run is
// dropped. If a newer Start, Retry or Reset happens while the fetch is in
// flight, the fetched questions are discarded and ErrSuperseded is returned.
func (c *Controller) Start(ctx context.Context, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.settings = &s
	c.run = nil
	c.state = StateLoading
	c.mu.Unlock()

	c.logger.Info(ctx, "loading quiz", "amount", s.Amount, "category", s.Category, "difficulty", s.Difficulty)

	questions, err := c.fetch(ctx, s)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.logger.Debug(ctx, "discarding stale quiz response", "generation", gen)
		return ErrSuperseded
	}
	if err != nil {
		c.state = StateIdle
		c.logger.Warn(ctx, "quiz load failed", "error", err)
		return newLoadError(err)
	}

	rq := make([]RunQuestion, len(questions))
	for i, q := range questions {
		rq[i] = RunQuestion{
			Question:        q,
			ShuffledAnswers: ShuffleAnswers(q.CorrectAnswer, q.IncorrectAnswers, c.intn),
		}
	}
	c.run = &run{questions: rq}
	c.state = StateInProgress
	return nil
}

func (c *Controller) fetch(ctx context.Context, s Settings) ([]models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	questions, err := c.provider.FetchQuestions(ctx, Query{
		Amount:     s.Amount,
		Category:   s.Category,
		Difficulty: s.Difficulty,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrProviderTimeout) {
			err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
		}
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}
	return questions, nil
}

// Retry starts again with the settings of the last Start.
func (c *Controller) Retry(ctx context.Context) error {
	s, ok := c.Settings()
	if !ok {
		return ErrNothingToRetry
	}
	return c.Start(ctx, s)
}

// Reset returns to Idle. A fetch still in flight will be ignored. The last
// settings are kept for Retry.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.run = nil
	c.state = StateIdle
}

// Current returns the question awaiting an answer.
func (c *Controller) Current() (Progress, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInProgress {
		return Progress{}, ErrNotInProgress
	}
	r := c.run
	q := r.questions[r.index]
	q.ShuffledAnswers = slices.Clone(q.ShuffledAnswers)
	return Progress{Index: r.index, Total: len(r.questions), Score: r.score, Question: q}, nil
}

// SubmitAnswer grades choice against the current question by exact string
// match and advances. Answering the last question completes the run and
// records its score.
func (c *Controller) SubmitAnswer(ctx context.Context, choice string) (AnswerResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInProgress {
		return AnswerResult{}, ErrNotInProgress
	}

	r := c.run
	q := r.questions[r.index]
	res := AnswerResult{Correct: choice == q.CorrectAnswer, CorrectAnswer: q.CorrectAnswer}
	if res.Correct {
		r.score++
	}
	r.index++

	if r.index < len(r.questions) {
		return res, nil
	}

	res.Done = true
	c.complete(ctx)
	return res, nil
}

// complete is called with mu held.
func (c *Controller) complete(ctx context.Context) {
	r := c.run
	total := len(r.questions)
	s := *c.settings

	score := models.Score{
		Score:      r.score,
		Total:      total,
		Percentage: CalculatePercentage(r.score, total),
		Difficulty: s.Difficulty,
	}
	if s.Category != 0 {
		score.Category = r.questions[0].Category
	}

	r.result = Result{
		Score:      score.Score,
		Total:      total,
		Percentage: score.Percentage,
		Settings:   s,
		Record:     score,
	}
	if c.scores != nil {
		saved, ok := c.scores.SaveScore(ctx, score)
		r.result.Saved = ok
		if ok {
			r.result.Record = saved
		}
	}
	c.state = StateComplete

	c.logger.Info(ctx, "quiz complete", "score", score.Score, "total", total, "percentage", score.Percentage)
}

// Result returns the final tally once the run is complete.
func (c *Controller) Result() (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateComplete {
		return Result{}, ErrNotComplete
	}
	return c.run.result, nil
}
