// Package httpapi exposes the Studify services over a JSON HTTP API built on
// gin. All state lives in the persistence store, so the API serves a single
// local user at a time, the same way the REPL does.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/services"
)

type Server struct {
	address         string
	svc             *services.Services
	logger          logging.Logger
	origins         []string
	shutdownTimeout time.Duration
}

func NewServer(address string, l logging.Logger, svc *services.Services, origins []string, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		svc:             svc,
		logger:          l.With("module", "http_server"),
		origins:         origins,
		shutdownTimeout: shutdownTimeout,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.Use(cors.New(s.corsConfig()))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	h := &handlers{svc: s.svc, logger: s.logger}
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.signup)
		api.POST("/auth/login", h.login)
		api.POST("/auth/logout", h.logout)
		api.GET("/auth/me", h.me)

		api.GET("/quotes/daily", h.dailyQuote)
		api.GET("/quotes/random", h.randomQuotes)
	}

	protected := api.Group("", s.requireAuth())
	{
		protected.GET("/sessions", h.listSessions)
		protected.POST("/sessions", h.createSession)
		protected.GET("/sessions/:id", h.getSession)
		protected.PUT("/sessions/:id", h.replaceSession)
		protected.PATCH("/sessions/:id", h.patchSession)
		protected.DELETE("/sessions/:id", h.deleteSession)

		protected.GET("/stats", h.stats)
		protected.GET("/scores", h.listScores)

		protected.GET("/preferences", h.getPreferences)
		protected.PUT("/preferences", h.putPreferences)

		protected.GET("/snapshot", h.exportSnapshot)
		protected.POST("/snapshot", h.importSnapshot)
		protected.DELETE("/data", h.clearData)
		protected.POST("/backups", h.createBackup)
		protected.POST("/backups/restore", h.restoreBackup)

		protected.GET("/categories", h.categories)
		protected.POST("/quiz", h.startQuiz)
		protected.GET("/quiz", h.currentQuiz)
		protected.POST("/quiz/answer", h.answerQuiz)
		protected.GET("/quiz/result", h.quizResult)
		protected.POST("/quiz/retry", h.retryQuiz)
		protected.POST("/quiz/reset", h.resetQuiz)
	}

	return r
}

// corsConfig allows the configured origins, or any origin without
// credentials when none are configured.
func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if len(s.origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = s.origins
	cfg.AllowCredentials = true
	return cfg
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.Router(), ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
