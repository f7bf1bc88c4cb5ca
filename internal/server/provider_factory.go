package server

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"match-notify-service/internal/config"
	"match-notify-service/internal/metrics"
	"match-notify-service/internal/providers"
	"match-notify-service/internal/providers/fifa"
	"match-notify-service/internal/providers/fixture"
)

// Minimum spacing between upstream calls, regardless of retries.
const minFetchSpacing = 10 * time.Second

type providerFactory struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) *providerFactory {
	return &providerFactory{logger: logger, recorder: recorder}
}

// build assembles the provider stack for the configured upstream:
// client → rate limit → instrumentation → retries.
func (f *providerFactory) build(cfg config.Config, auditWriter io.Writer) providers.MatchProvider {
	var base providers.MatchProvider
	name := strings.ToLower(cfg.Provider)
	switch name {
	case "fifa":
		base = fifa.NewClient(fifa.Config{
			BaseURL: cfg.Feed.BaseURL,
			Logger:  f.logger,
			Audit:   auditWriter,
		})
	default:
		name = "fixture"
		base = fixture.New()
	}

	limiter := rate.NewLimiter(rate.Every(minFetchSpacing), 1)
	wrapped := providers.NewRateLimitedProvider(base, limiter, f.logger)
	wrapped = providers.NewInstrumentedProvider(wrapped, f.recorder, name)
	return providers.NewRetryingProvider(wrapped, f.logger, 0, 0)
}
