// Package server wires configuration, catalog, loader, and HTTP surface
// into a runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"gamerstore-service/internal/catalog"
	"gamerstore-service/internal/config"
	"gamerstore-service/internal/domain/games"
	httpserver "gamerstore-service/internal/http"
	"gamerstore-service/internal/http/handlers"
	"gamerstore-service/internal/http/middleware"
	"gamerstore-service/internal/httpcache"
	"gamerstore-service/internal/loader"
	"gamerstore-service/internal/logging"
	"gamerstore-service/internal/mailer"
	"gamerstore-service/internal/metrics"
	"gamerstore-service/internal/providers"
	"gamerstore-service/internal/view"
)

var metricsSetup = metrics.Setup

// Server owns the storefront process: catalog store, loader, proxy cache,
// and the HTTP and metrics listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *catalog.Store
	loader        *loader.Loader
	live          *catalog.LiveFilter
	cache         *httpcache.Cache
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default fetcher wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithFetcher(cfg, logger, nil)
}

func newServerWithFetcher(cfg config.Config, logger *slog.Logger, fetcher providers.RawFetcher) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if fetcher == nil {
		fetcher = newFetcherFactory(logger, recorder).build(cfg)
	}

	store := catalog.NewStore()
	ldr := loader.New(fetcher, store, logger, recorder, cfg.SearchWindow)
	cache := httpcache.New(cfg.ProxyCacheTTL)
	live := catalog.NewLiveFilter(store, cfg.SearchWindow, func(records []games.Game) {
		logging.Info(logger, "search settled", slog.Int(logging.FieldCount, len(records)))
	})

	renderer, err := view.New(view.DefaultRegions())
	if err != nil {
		return nil, err
	}

	httpSrv := buildHTTPServer(cfg, store, renderer, fetcher, cache, ldr, live, recorder, logger)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         store,
		loader:        ldr,
		live:          live,
		cache:         cache,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildHTTPServer(cfg config.Config, store *catalog.Store, renderer *view.Renderer, fetcher providers.RawFetcher, cache *httpcache.Cache, ldr *loader.Loader, live *catalog.LiveFilter, recorder *metrics.Recorder, logger *slog.Logger) httpServer {
	pages := handlers.NewHandler(store, renderer, logger, ldr.Status)
	search := handlers.NewSearchHandler(store, live, logger)
	proxy := handlers.NewProxyHandler(fetcher, cache, recorder, logger)
	contact := handlers.NewContactHandler(mailer.New(mailer.Config{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		User:      cfg.Mail.User,
		Password:  cfg.Mail.Password,
		Recipient: cfg.Mail.Recipient,
	}), logger)
	admin := handlers.NewAdminHandler(ldr.RequestRefresh, cache, cfg.AdminToken, logger)

	router := httpserver.NewRouter(pages, search, proxy, contact, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", err)
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

// Run performs the initial catalog load, starts the listeners, then waits
// for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	if err := s.loader.Load(ctx); err != nil {
		logging.Warn(s.logger, "initial catalog load failed, serving without data", err)
	}

	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
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

	s.loader.Stop()
	if s.live != nil {
		s.live.Close()
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", err)
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
