// Package services assembles the storage backend, the persistence store and
// the domain services from a Config. Both binaries share it.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studify/internal/accounts"
	"github.com/dmitrijs2005/studify/internal/backup"
	"github.com/dmitrijs2005/studify/internal/config"
	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/quiz"
	"github.com/dmitrijs2005/studify/internal/quotes"
	"github.com/dmitrijs2005/studify/internal/storage"
	"github.com/dmitrijs2005/studify/internal/store"
	"github.com/dmitrijs2005/studify/internal/trivia"
)

var (
	openBackend = storage.Open

	newObjectStore = func(ctx context.Context, c backup.S3Config) (backup.ObjectStore, error) {
		s, err := backup.NewS3Store(ctx, c)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
)

type Services struct {
	Config   *config.Config
	Logger   logging.Logger
	Store    *store.Store
	Accounts *accounts.Service
	Trivia   *trivia.Client
	Quiz     *quiz.Controller
	Quotes   *quotes.Service
	Backup   *backup.Service

	backend storage.Backend
}

// New opens the configured backend and builds every service on top of it.
// Object storage is wired only when an S3 bucket is configured.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger, storeOpts ...store.Option) (*Services, error) {
	backend, err := openBackend(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}

	st := store.New(backend, logger.With("component", "store"), storeOpts...)
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	tc := trivia.New(cfg.TriviaBaseURL, httpClient)
	qc := quotes.NewClient(cfg.QuotesProxyURL, cfg.DailyQuoteURL, cfg.RandomQuotesURL, httpClient)

	var objects backup.ObjectStore
	if cfg.BackupEnabled() {
		objects, err = newObjectStore(ctx, backup.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("init object storage: %w", err)
		}
	}

	return &Services{
		Config:   cfg,
		Logger:   logger,
		Store:    st,
		Accounts: accounts.NewService(st, logger.With("component", "accounts")),
		Trivia:   tc,
		Quiz:     quiz.NewController(tc, st, logger.With("component", "quiz"), quiz.WithTimeout(cfg.RequestTimeout)),
		Quotes:   quotes.NewService(qc, st, logger.With("component", "quotes"), cfg.RequestTimeout),
		Backup:   backup.NewService(st, objects),
		backend:  backend,
	}, nil
}

func (s *Services) Close() error {
	return s.backend.Close()
}
