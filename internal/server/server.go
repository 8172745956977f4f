// Package server wires the auction services together and runs the HTTP
// front end.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	appdraft "github.com/preston-bernstein/roto-auction-service/internal/app/draft"
	"github.com/preston-bernstein/roto-auction-service/internal/app/keepers"
	"github.com/preston-bernstein/roto-auction-service/internal/app/recommend"
	"github.com/preston-bernstein/roto-auction-service/internal/app/valuations"
	"github.com/preston-bernstein/roto-auction-service/internal/autosave"
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	httpserver "github.com/preston-bernstein/roto-auction-service/internal/http"
	"github.com/preston-bernstein/roto-auction-service/internal/http/handlers"
	"github.com/preston-bernstein/roto-auction-service/internal/http/middleware"
	"github.com/preston-bernstein/roto-auction-service/internal/logging"
	"github.com/preston-bernstein/roto-auction-service/internal/metrics"
	"github.com/preston-bernstein/roto-auction-service/internal/projections"
	"github.com/preston-bernstein/roto-auction-service/internal/providers"
	"github.com/preston-bernstein/roto-auction-service/internal/providers/mlbstats"
	"github.com/preston-bernstein/roto-auction-service/internal/snapshots"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	valuations    *valuations.Service
	keepers       *keepers.Service
	draft         *appdraft.Service
	recommend     *recommend.Service
	files         *projections.FileStore
	saver         *autosave.Saver
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore := store.NewMemoryStore()
	keeperSvc := keepers.NewService(cfg.League, memoryStore, logger)
	valSvc := valuations.NewService(memoryStore, cfg.League, keeperSvc, logger, recorder)
	keeperSvc.SetRevaluer(valSvc)

	writer := snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays)
	snapStore := snapshots.NewFSStore(cfg.Snapshots.Dir)
	draftSvc := appdraft.NewService(memoryStore, keeperSvc, valSvc, writer, snapStore, cfg.League, logger, recorder)
	recSvc := recommend.NewService(memoryStore, keeperSvc, cfg.League)
	files := projections.NewFileStore(cfg.ProjectionsDir)

	var saver *autosave.Saver
	var statusFn func() autosave.Status
	if cfg.Snapshots.AutosaveEnabled {
		saver = autosave.New(draftSvc, draftSvc, logger, recorder, cfg.Snapshots.AutosaveInterval)
		statusFn = saver.Status
	}

	var news providers.NewsProvider
	if cfg.News.Enabled {
		client := mlbstats.NewClient(mlbstats.Config{
			BaseURL:  cfg.News.BaseURL,
			CacheTTL: cfg.News.CacheTTL,
		})
		news = providers.NewRetryingNewsProvider(client, logger, 0, 0)
	}

	handler := handlers.NewHandler(valSvc, keeperSvc, draftSvc, recSvc, files, news, cfg.League, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		valuations:    valSvc,
		keepers:       keeperSvc,
		draft:         draftSvc,
		recommend:     recSvc,
		files:         files,
		saver:         saver,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the server, restores persisted state, and waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.restoreProjections()
	s.restoreDraft()

	s.startMetrics()
	s.startServer(stop)
	if s.saver != nil {
		s.saver.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// restoreProjections reloads the most recently saved CSV for each side so
// the pool survives restarts without a re-upload.
func (s *Server) restoreProjections() {
	saved, err := s.files.List()
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(s.logger, "could not list saved projections", "error", err)
		}
		return
	}
	latest := map[string]projections.SavedFile{}
	for _, f := range saved {
		latest[string(f.Side)] = f
	}
	for _, f := range latest {
		file, err := s.files.Open(f.Filename)
		if err != nil {
			logging.Warn(s.logger, "could not open saved projections", "error", err)
			continue
		}
		pool, report, err := projections.Parse(file, f.Side, s.cfg.League)
		file.Close()
		if err != nil {
			logging.Warn(s.logger, "could not parse saved projections", "error", err)
			continue
		}
		if err := s.valuations.ReplaceSide(f.Side, pool); err != nil {
			logging.Error(s.logger, "could not restore projections", err)
			continue
		}
		logging.Info(s.logger, "projections restored",
			slog.String("file", f.Filename), slog.Int(logging.FieldCount, report.Loaded))
	}
	if len(latest) > 0 {
		s.keepers.Link()
	}
}

// restoreDraft replays a persisted draft ledger, if one exists and the
// pool is loaded.
func (s *Server) restoreDraft() {
	if s.valuations.PoolSize() == 0 {
		return
	}
	if snapStore := snapshots.NewFSStore(s.cfg.Snapshots.Dir); !snapStore.HasDraft() {
		return
	}
	if _, err := s.draft.Load(); err != nil {
		logging.Warn(s.logger, "could not restore draft ledger", "error", err)
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.saver != nil {
		if err := s.saver.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("autosave shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
