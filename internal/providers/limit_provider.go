package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"match-notify-service/internal/domain/matches"
)

// rateLimitedProvider wraps a MatchProvider and enforces a minimum spacing
// between upstream calls so overlapping callers cannot hammer the feed.
type rateLimitedProvider struct {
	next    MatchProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a MatchProvider that allows at most one
// upstream call per interval. Calls wait for the limiter rather than fail.
func NewRateLimitedProvider(next MatchProvider, limiter *rate.Limiter, logger *slog.Logger) MatchProvider {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: limiter,
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return nil, err
	}
	return p.next.FetchMatches(ctx)
}
