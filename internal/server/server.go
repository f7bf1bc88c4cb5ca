package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"match-notify-service/internal/audit"
	"match-notify-service/internal/config"
	httpserver "match-notify-service/internal/http"
	"match-notify-service/internal/metrics"
	"match-notify-service/internal/notify"
	"match-notify-service/internal/notify/slack"
	"match-notify-service/internal/poller"
	"match-notify-service/internal/tracker"
)

var metricsSetup = metrics.Setup

// Server owns every long-lived component: the poll loop, the HTTP
// surface, telemetry and the audit log.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *tracker.Store
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	auditWriter   io.Closer
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	settings, err := config.LoadSettings(cfg.SettingsFile)
	if err != nil {
		return nil, err
	}

	recorder, metricsSrv, metricsStop := buildMetrics(cfg, logger)

	auditWriter := audit.NewWriter(cfg.AuditLog)
	var auditOut io.Writer
	if auditWriter != nil {
		auditOut = auditWriter
	}

	provider := newProviderFactory(logger, recorder).build(cfg, auditOut)

	store := tracker.NewStore()
	trk := tracker.New(store, logger)

	sink := buildSink(settings, logger, recorder)

	plr := poller.New(provider, trk, sink, logger, recorder, poller.Config{
		Interval:   cfg.PollInterval,
		Jitter:     cfg.PollJitter,
		HourOffset: settings.HoursToAdd,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         store,
		poller:        plr,
		httpServer:    buildHTTPServer(cfg, store, plr, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
		auditWriter:   auditWriter,
	}, nil
}

func buildSink(settings config.Settings, logger *slog.Logger, recorder *metrics.Recorder) notify.Sink {
	if len(settings.Destinations) == 0 {
		if logger != nil {
			logger.Warn("no destinations configured, notifications will be dropped")
		}
		return notify.Discard{}
	}
	return slack.New(slack.Config{
		Destinations: settings.Destinations,
		Payload: slack.Payload{
			Username:  settings.Payload.Username,
			IconEmoji: settings.Payload.IconEmoji,
		},
		MessagesPerSecond: settings.MessagesPerSecond,
		Logger:            logger,
		Metrics:           recorder,
	})
}

func buildHTTPServer(cfg config.Config, store *tracker.Store, plr *poller.Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := httpserver.NewHandler(store, statusFn, logger)
	router := httpserver.NewRouter(handler)
	wrapped := httpserver.LoggingMiddleware(logger, recorder, router)

	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
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
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

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

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.auditWriter != nil {
		if err := s.auditWriter.Close(); err != nil && s.logger != nil {
			s.logger.Warn("audit log close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
