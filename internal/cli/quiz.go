package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/studify/internal/quiz"
)

const defaultQuizAmount = 10

func (a *App) Categories(ctx context.Context, _ []string) error {
	ctx, cancel := context.WithTimeout(ctx, a.svc.Config.RequestTimeout)
	defer cancel()

	cats, fallback := quiz.LoadCategories(ctx, a.svc.Trivia)
	if fallback {
		a.println("(offline category list)")
	}
	for _, c := range cats {
		a.printf("%4d  %s\n", c.ID, c.Name)
	}
	return nil
}

// quizSettings reads settings from args (amount, category id, difficulty)
// or prompts for them when no arguments were given.
func (a *App) quizSettings(args []string) (quiz.Settings, error) {
	s := quiz.Settings{Amount: defaultQuizAmount}

	if len(args) == 0 {
		var err error
		if s.Amount, err = GetInt(a.reader, "Number of questions", defaultQuizAmount, a.out); err != nil {
			return s, err
		}
		if s.Category, err = GetInt(a.reader, "Category id (0 for any, see 'categories')", 0, a.out); err != nil {
			return s, err
		}
		d, err := GetTextDefault(a.reader, "Difficulty (easy, medium, hard, empty for any)", "", a.out)
		if err != nil {
			return s, err
		}
		s.Difficulty = strings.ToLower(d)
		return s, s.Validate()
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return s, fmt.Errorf("%w: amount must be a number", quiz.ErrInvalidSettings)
	}
	s.Amount = n
	if len(args) > 1 {
		if s.Category, err = strconv.Atoi(args[1]); err != nil {
			return s, fmt.Errorf("%w: category must be a number", quiz.ErrInvalidSettings)
		}
	}
	if len(args) > 2 {
		s.Difficulty = strings.ToLower(args[2])
	}
	return s, s.Validate()
}

// Quiz runs one quiz interactively: load, ask every question, then show the
// result. A failed load offers a retry with the same settings.
func (a *App) Quiz(ctx context.Context, args []string) error {
	settings, err := a.quizSettings(args)
	if err != nil {
		return err
	}

	a.println("Loading questions...")
	err = a.svc.Quiz.Start(ctx, settings)
	for err != nil {
		var le *quiz.LoadError
		if !errors.As(err, &le) || !le.Retryable() {
			return err
		}
		a.println(le.Reason)
		again, cerr := Confirm(a.reader, "Try again?", a.out)
		if cerr != nil || !again {
			a.svc.Quiz.Reset()
			return nil
		}
		err = a.svc.Quiz.Retry(ctx)
	}

	for {
		p, err := a.svc.Quiz.Current()
		if err != nil {
			return err
		}
		choice, quit, err := a.askQuestion(p)
		if err != nil {
			a.svc.Quiz.Reset()
			return err
		}
		if quit {
			a.svc.Quiz.Reset()
			a.println("Quiz abandoned")
			return nil
		}

		res, err := a.svc.Quiz.SubmitAnswer(ctx, choice)
		if err != nil {
			return err
		}
		if res.Correct {
			a.println("Correct!")
		} else {
			a.printf("Wrong. The correct answer was: %s\n", res.CorrectAnswer)
		}
		if res.Done {
			break
		}
	}

	r, err := a.svc.Quiz.Result()
	if err != nil {
		return err
	}
	a.printf("\nYou scored %d/%d (%d%%). %s\n", r.Score, r.Total, r.Percentage, resultMessage(r.Percentage))
	if !r.Saved {
		a.println("Note: the score could not be saved")
	}
	return nil
}

// askQuestion prints p and reads a 1-based answer number, or "q" to quit.
func (a *App) askQuestion(p quiz.Progress) (string, bool, error) {
	q := p.Question
	a.printf("\nQuestion %d/%d [%s, %s]  score %d\n%s\n", p.Index+1, p.Total, q.Category, q.Difficulty, p.Score, q.Text)
	for i, ans := range q.ShuffledAnswers {
		a.printf("  %d) %s\n", i+1, ans)
	}

	for {
		s, err := GetSimpleText(a.reader, "Your answer (number, q to quit)", a.out)
		if err != nil {
			return "", false, err
		}
		if s == "q" {
			return "", true, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 1 && n <= len(q.ShuffledAnswers) {
			return q.ShuffledAnswers[n-1], false, nil
		}
		a.printf("Please enter a number between 1 and %d\n", len(q.ShuffledAnswers))
	}
}

func resultMessage(pct int) string {
	switch {
	case pct == 100:
		return "Perfect score!"
	case pct >= 80:
		return "Excellent work!"
	case pct >= 60:
		return "Good job!"
	case pct >= 40:
		return "Not bad, keep practicing!"
	default:
		return "Keep studying, you'll get there!"
	}
}

// Scores lists recorded quiz results, newest first.
func (a *App) Scores(ctx context.Context, _ []string) error {
	scores := a.svc.Store.ListScores(ctx)
	if len(scores) == 0 {
		a.println("No quizzes taken yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSCORE\tPCT\tCATEGORY\tDIFFICULTY")
	for i := len(scores) - 1; i >= 0; i-- {
		s := scores[i]
		cat, diff := s.Category, s.Difficulty
		if cat == "" {
			cat = "any"
		}
		if diff == "" {
			diff = "any"
		}
		fmt.Fprintf(w, "%s\t%d/%d\t%d%%\t%s\t%s\n", s.Date.Local().Format("2006-01-02 15:04"), s.Score, s.Total, s.Percentage, cat, diff)
	}
	return w.Flush()
}
