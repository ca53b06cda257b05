// Package server serves the proposal generator over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aretw0/proposal/pkg/core"
)

//go:embed templates/*.html
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Config holds the server dependencies.
type Config struct {
	Service       *core.Service
	Logger        *slog.Logger
	StaticDir     string   // served under /static when set
	FreshPatterns []string // doublestar patterns served with no-store
	AllowOrigins  []string // CORS origins, DefaultOrigins when empty
	Now           func() time.Time
}

// Server wires the HTTP surface to a core.Service.
type Server struct {
	svc    *core.Service
	logger *slog.Logger
	cache  *CachePolicy
	static string
	now    func() time.Time
	engine *gin.Engine
}

// New builds the router. It fails on invalid cache patterns.
func New(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		return nil, core.ErrNoSource
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cache, err := NewCachePolicy(cfg.FreshPatterns)
	if err != nil {
		return nil, err
	}

	s := &Server{
		svc:    cfg.Service,
		logger: cfg.Logger,
		cache:  cache,
		static: cfg.StaticDir,
		now:    cfg.Now,
	}
	s.engine = s.routes(cfg.AllowOrigins)
	return s, nil
}

func (s *Server) routes(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(s.logger), CORS(origins))

	router.GET("/healthcheck", HealthCheck)
	router.GET("/", s.Index)
	router.POST("/proposal/download", s.FormDownload)

	api := router.Group("/api")
	{
		api.GET("/tools", s.Tools)
		api.GET("/state", s.State)
		api.POST("/reload", s.Reload)
		api.POST("/proposal", s.Proposal)
		api.POST("/proposal/download", s.Download)
	}

	if s.static != "" {
		router.GET("/static/*filepath", s.Static)
	}
	return router
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
