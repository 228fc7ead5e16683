package quotes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/dmitrijs2005/studify/internal/store"
)

const dateLayout = "2006-01-02"

// Cache is the slice of the persistence store the service uses.
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any) bool
	Now() time.Time
}

type Service struct {
	provider Provider
	cache    Cache
	logger   logging.Logger
	timeout  time.Duration
}

func NewService(provider Provider, cache Cache, logger logging.Logger, timeout time.Duration) *Service {
	return &Service{provider: provider, cache: cache, logger: logger, timeout: timeout}
}

// Daily returns today's quote. The first call of a calendar day fetches it
// (or picks a static one) and caches it; later calls that day reuse it.
func (s *Service) Daily(ctx context.Context) models.Quote {
	today := s.cache.Now().Format(dateLayout)

	var cachedDate string
	var cached models.Quote
	if s.cache.Get(ctx, store.KeyDailyQuoteDate, &cachedDate) && cachedDate == today &&
		s.cache.Get(ctx, store.KeyDailyQuote, &cached) && cached.Text != "" {
		return cached
	}

	ctx2, cancel := context.WithTimeout(ctx, s.timeout)
	q, err := s.provider.Daily(ctx2)
	cancel()
	if err != nil {
		s.logger.Warn(ctx, "error fetching daily quote", "error", err)
		q = randomFallbackOne()
	}

	if !s.cache.Set(ctx, store.KeyDailyQuote, q) || !s.cache.Set(ctx, store.KeyDailyQuoteDate, today) {
		s.logger.Warn(ctx, "daily quote not cached")
	}
	return q
}

// Random returns n quotes from the provider, or n static ones.
func (s *Service) Random(ctx context.Context, n int) []models.Quote {
	if n <= 0 {
		n = DefaultRandomCount
	}

	ctx2, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	qs, err := s.provider.Random(ctx2, n)
	if err != nil || len(qs) == 0 {
		s.logger.Info(ctx, "using fallback quotes", "error", err)
		return RandomFallback(n)
	}
	return qs
}
