// Package server initializes and runs the Studify HTTP server.
// It opens the configured storage backend, builds the services, handles
// OS signals, and shuts the HTTP listener down gracefully.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studify/internal/config"
	"github.com/dmitrijs2005/studify/internal/httpapi"
	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	svc    *services.Services
}

var newServices = services.New

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel)

	if c.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc, err := newServices(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("services init error: %w", err)
	}

	return &App{config: c, logger: logger, svc: svc}, nil
}

// initSignalHandler cancels the app on SIGINT, SIGTERM or SIGQUIT. The
// returned channel is closed once the handler has stopped listening, which
// happens on a signal or when ctx is done.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) <-chan struct{} {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		defer signal.Stop(sigs)

		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
	return stopped
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.HTTPAddr, app.logger, app.svc, app.config.CORSOrigins, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives, ctx is cancelled, or the
// HTTP server fails, and then closes the storage backend.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	sigStopped := app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	cancelFunc()
	<-sigStopped

	if err := app.svc.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
