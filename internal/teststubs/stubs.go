package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"match-notify-service/internal/domain/matches"
)

// StubProvider is a test double for providers.MatchProvider.
type StubProvider struct {
	Matches []matches.Match
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchMatches returns configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Matches, s.Err
}

// StubSink is a test double for notify.Sink. It records every
// broadcast text in order.
type StubSink struct {
	mu    sync.Mutex
	texts []string
}

// Broadcast records the text.
func (s *StubSink) Broadcast(ctx context.Context, text string) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
}

// Texts returns a copy of everything broadcast so far.
func (s *StubSink) Texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.texts))
	copy(out, s.texts)
	return out
}
