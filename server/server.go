package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentscore/contentscore/analyzer"
	"github.com/contentscore/contentscore/config"
	"github.com/contentscore/contentscore/fetcher"
	"github.com/contentscore/contentscore/logging"
	"github.com/contentscore/contentscore/middleware"
	"github.com/contentscore/contentscore/stats"
)

// Server wires the analyzer, fetcher, result cache and usage storage
// behind a gin router.
type Server struct {
	cfg      *config.Config
	logger   *logging.Logger
	analyzer *analyzer.Analyzer
	fetcher  *fetcher.Fetcher
	cache    *resultCache
	usage    *stats.Storage
	engine   *gin.Engine
	httpSrv  *http.Server
}

// New creates a fully wired server from the configuration.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)

	usage, err := stats.NewStorage(cfg.Stats.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize usage storage: %w", err)
	}
	usage.Cleanup(cfg.Stats.RetainMonths)

	s := &Server{
		cfg:    cfg,
		logger: logger.WithComponent("server"),
		analyzer: analyzer.New(analyzer.Options{
			SiteDomain: cfg.Analysis.SiteDomain,
		}),
		fetcher: fetcher.New(fetcher.Options{
			Timeout:     cfg.Fetch.Timeout,
			UserAgent:   cfg.Fetch.UserAgent,
			MaxBodySize: cfg.Fetch.MaxBodySize,
			MaxRetries:  cfg.Fetch.MaxRetries,
		}),
		usage: usage,
	}

	if cfg.Cache.Enabled {
		s.cache = newResultCache(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	}

	s.engine = s.buildRouter()
	s.httpSrv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: s.engine,
	}

	return s, nil
}

// buildRouter assembles the middleware chain and API routes
func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()

	rateLimiter := middleware.NewRateLimiter(s.cfg.RateLimit.RequestsPerSecond, s.cfg.RateLimit.Burst)

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.ErrorHandler(s.logger))
	r.Use(middleware.CORS(s.cfg.Server.AllowedOrigin))
	r.Use(middleware.VisitorTracker(s.usage))
	r.Use(rateLimiter.RateLimit())

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/analyze/url", s.handleAnalyzeURL)
		api.POST("/statistics", s.handleStatistics)
		api.GET("/usage", s.handleUsage)
	}

	return r
}

// Router returns the underlying gin engine.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info().Int("port", s.cfg.Server.Port).Msg("server listening")

	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server and flushes usage counters to disk.
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		firstErr = err
	}

	if s.cache != nil {
		s.cache.close()
	}
	if err := s.usage.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
