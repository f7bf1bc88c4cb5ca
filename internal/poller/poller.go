package poller

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"match-notify-service/internal/logging"
	"match-notify-service/internal/metrics"
	"match-notify-service/internal/notify"
	"match-notify-service/internal/providers"
	"match-notify-service/internal/tracker"
)

const defaultInterval = 75 * time.Second

// Poller drives the poll cycle: fetch today's matches, diff them through
// the tracker, and dispatch the resulting notifications. Cycles run to
// completion before the next one is scheduled; only outbound dispatch is
// decoupled and never blocks the loop.
type Poller struct {
	provider   providers.MatchProvider
	tracker    *tracker.Tracker
	sink       notify.Sink
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	jitter     time.Duration
	hourOffset int
	now        func() time.Time

	timer    *time.Timer
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	previewSent bool

	statusMu sync.RWMutex
	status   Status
}

// Config bundles poller construction parameters.
type Config struct {
	Interval time.Duration
	// Jitter, when positive, spreads each cycle by a random offset in
	// [-Jitter, +Jitter] so many instances do not hit the feed in step.
	Jitter time.Duration
	// HourOffset shifts kickoff times in the daily preview message.
	HourOffset int
}

// Status describes the recent health of the poll loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.MatchProvider, trk *tracker.Tracker, sink notify.Sink, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	jitter := cfg.Jitter
	if jitter < 0 || jitter >= interval {
		jitter = 0
	}
	if sink == nil {
		sink = notify.Discard{}
	}
	return &Poller{
		provider:   provider,
		tracker:    trk,
		sink:       sink,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		jitter:     jitter,
		hourOffset: cfg.HourOffset,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.timer = time.NewTimer(p.nextDelay())

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial cycle to announce today's schedule on boot.
		p.runCycle(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTimer()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTimer()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.timer.C:
				p.runCycle(ctx)
				p.timer.Reset(p.nextDelay())
			}
		}
	}()
}

// Stop halts the polling loop. In-flight dispatches are abandoned; the
// tracker keeps its last-applied state.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTimer()
	})
	return nil
}

func (p *Poller) runCycle(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	records, err := p.provider.FetchMatches(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollCycle(time.Since(start), err)
	}
	if err != nil {
		// A failed fetch is an empty cycle: no state mutation, no messages.
		logging.Error(p.logger, "poll fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if !p.previewSent {
		if text := p.tracker.Preview(records, p.hourOffset); text != "" {
			p.dispatch(ctx, text)
		}
		p.previewSent = true
	}

	msgs := p.tracker.ProcessPoll(records)
	for _, msg := range msgs {
		p.dispatch(ctx, msg.Text)
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poll cycle complete",
		logging.FieldCount, len(records),
		"notifications", len(msgs),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// dispatch fires a notification without awaiting delivery.
func (p *Poller) dispatch(ctx context.Context, text string) {
	go p.sink.Broadcast(ctx, text)
}

func (p *Poller) nextDelay() time.Duration {
	if p.jitter <= 0 {
		return p.interval
	}
	offset := time.Duration(rand.Int63n(int64(2*p.jitter))) - p.jitter
	return p.interval + offset
}

func (p *Poller) stopTimer() {
	if p.timer != nil {
		p.timer.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.MatchProvider {
	return p.provider
}
