package quiz

import "errors"

// Provider failure classes. Providers wrap one of these.
var (
	ErrProviderTimeout      = errors.New("provider timeout")
	ErrProviderError        = errors.New("provider error")
	ErrNoQuestionsAvailable = errors.New("no questions available")
)

var (
	ErrInvalidSettings = errors.New("invalid quiz settings")
	ErrNotInProgress   = errors.New("no quiz in progress")
	ErrNotComplete     = errors.New("quiz is not complete")
	ErrNothingToRetry  = errors.New("no previous quiz settings to retry")
	ErrSuperseded      = errors.New("quiz request superseded by a newer one")
)

// LoadError is what Start and Retry return when no run could be loaded.
// Reason is meant for display; Err keeps the provider failure for errors.Is.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string { return e.Reason }

func (e *LoadError) Unwrap() error { return e.Err }

// Retryable is always true: every load failure may be retried with the same
// settings.
func (e *LoadError) Retryable() bool { return true }

func newLoadError(err error) *LoadError {
	reason := "Failed to load quiz. Please check your connection and try again."
	switch {
	case errors.Is(err, ErrProviderTimeout):
		reason = "Request timeout - please try again"
	case errors.Is(err, ErrNoQuestionsAvailable):
		reason = "No questions available for these settings. Try a different category or difficulty."
	}
	return &LoadError{Reason: reason, Err: err}
}
