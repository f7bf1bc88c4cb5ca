package tracker

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"match-notify-service/internal/domain/matches"
	"match-notify-service/internal/logging"
)

// Message is one match's notification text for one poll cycle.
type Message struct {
	Match matches.MatchID
	Text  string
}

// Tracker owns the diff cycle: it resolves tracked state for each polled
// record, computes what changed, applies the resulting mutations and
// collects the notification messages to dispatch.
type Tracker struct {
	store  *Store
	logger *slog.Logger
	now    func() time.Time
}

// New constructs a Tracker around a store.
func New(store *Store, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Store exposes the underlying state store for read-only surfaces.
func (t *Tracker) Store() *Store {
	return t.store
}

// ProcessPoll diffs one poll's records against tracked state and returns
// at most one message per match. A failure while processing one match
// never affects the others. Matches the store considers live but the feed
// no longer lists are force-ended with a final-score message.
func (t *Tracker) ProcessPoll(records []matches.Match) []Message {
	now := t.now()
	polled := make(map[matches.MatchID]bool, len(records))

	var out []Message
	for _, m := range records {
		polled[m.ID] = true
		text := t.processOne(m, now)
		if text != "" {
			out = append(out, Message{Match: m.ID, Text: text})
		}
	}

	for _, entry := range t.store.ListNonTerminal() {
		if polled[entry.ID] {
			continue
		}
		text, mut := expireMatch(entry)
		t.store.Apply(entry.ID, mut)
		logging.Info(t.logger, "match dropped from feed, forcing final",
			slog.String(logging.FieldMatch, string(entry.ID)))
		out = append(out, Message{Match: entry.ID, Text: text})
	}

	return out
}

func (t *Tracker) processOne(m matches.Match, now time.Time) (text string) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(t.logger, "match processing panicked",
				fmt.Errorf("%v", r),
				slog.String(logging.FieldMatch, string(m.ID)))
			text = ""
		}
	}()

	prev := t.store.Ensure(m)
	lines, mut := diffMatch(m, prev, now)
	t.store.Apply(m.ID, mut)
	return strings.Join(lines, "\n")
}
