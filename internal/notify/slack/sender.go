// Package slack delivers messages to Slack incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"match-notify-service/internal/logging"
	"match-notify-service/internal/metrics"
	"match-notify-service/internal/notify"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	// Cap on in-flight webhook posts across all destinations.
	defaultMaxInFlight = 5
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Payload holds the static fields merged into every webhook post.
type Payload struct {
	Username  string `yaml:"username" json:"username,omitempty"`
	IconEmoji string `yaml:"icon_emoji" json:"icon_emoji,omitempty"`
}

// Config controls the sender.
type Config struct {
	Destinations []notify.Destination
	Payload      Payload
	HTTPClient   *http.Client
	// MessagesPerSecond throttles posts across all destinations to stay
	// under Slack's webhook limits. Zero disables throttling.
	MessagesPerSecond float64
	MaxInFlight       int64
	Logger            *slog.Logger
	Metrics           *metrics.Recorder
}

// Sender posts messages to a fixed set of Slack webhooks. Destinations
// are delivered concurrently; a slow or failing destination never blocks
// the others. Nothing is retried.
type Sender struct {
	destinations []notify.Destination
	payload      Payload
	httpClient   httpDoer
	limiter      *rate.Limiter
	sem          *semaphore.Weighted
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// New constructs a Sender.
func New(cfg Config) *Sender {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.MessagesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.MessagesPerSecond), 1)
	}
	maxInFlight := cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	var client httpDoer
	if cfg.HTTPClient != nil {
		client = cfg.HTTPClient
	} else {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Sender{
		destinations: cfg.Destinations,
		payload:      cfg.Payload,
		httpClient:   client,
		limiter:      limiter,
		sem:          semaphore.NewWeighted(maxInFlight),
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
	}
}

type webhookBody struct {
	Payload
	Text    string `json:"text"`
	Channel string `json:"channel,omitempty"`
}

// Broadcast delivers text to every destination. It blocks until all
// deliveries finish, so callers that must not wait launch it with go.
func (s *Sender) Broadcast(ctx context.Context, text string) {
	if s == nil || text == "" || len(s.destinations) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, dest := range s.destinations {
		wg.Add(1)
		go func(dest notify.Destination) {
			defer wg.Done()
			s.sendOne(ctx, dest, text)
		}(dest)
	}
	wg.Wait()
}

func (s *Sender) sendOne(ctx context.Context, dest notify.Destination, text string) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.recordFailure(ctx, dest, 0, err)
		return
	}
	defer s.sem.Release(1)

	if err := s.limiter.Wait(ctx); err != nil {
		s.recordFailure(ctx, dest, 0, err)
		return
	}

	start := time.Now()
	err := s.post(ctx, dest, text)
	if err != nil {
		s.recordFailure(ctx, dest, time.Since(start), err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordNotification(dest.Name, time.Since(start), nil)
	}
	if s.logger != nil {
		s.logger.Debug("notification delivered",
			slog.String(logging.FieldDestination, dest.Name),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	}
}

func (s *Sender) post(ctx context.Context, dest notify.Destination, text string) error {
	body := webhookBody{
		Payload: s.payload,
		Text:    text,
		Channel: dest.Channel,
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dest.Webhook, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}

func (s *Sender) recordFailure(ctx context.Context, dest notify.Destination, duration time.Duration, err error) {
	_ = ctx
	if s.metrics != nil {
		s.metrics.RecordNotification(dest.Name, duration, err)
	}
	logging.Warn(s.logger, "notification delivery failed",
		slog.String(logging.FieldDestination, dest.Name),
		slog.Any("err", err),
	)
}
