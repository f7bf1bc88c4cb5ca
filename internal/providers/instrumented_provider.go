package providers

import (
	"context"
	"time"

	"match-notify-service/internal/domain/matches"
	"match-notify-service/internal/metrics"
)

// instrumentedProvider records attempt/error/latency metrics for every
// fetch through the wrapped provider.
type instrumentedProvider struct {
	next     MatchProvider
	recorder *metrics.Recorder
	name     string
}

// NewInstrumentedProvider wraps a provider with metrics recording.
func NewInstrumentedProvider(next MatchProvider, recorder *metrics.Recorder, name string) MatchProvider {
	if recorder == nil {
		return next
	}
	return &instrumentedProvider{
		next:     next,
		recorder: recorder,
		name:     name,
	}
}

func (p *instrumentedProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	start := time.Now()
	records, err := p.next.FetchMatches(ctx)
	p.recorder.RecordProviderAttempt(p.name, time.Since(start), err)
	if rlErr, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(p.name, rlErr.RetryAfter)
	}
	return records, err
}
