package tracker

import (
	"sort"
	"sync"
	"time"

	"match-notify-service/internal/domain/matches"
)

// Status is the tracked lifecycle of a match. It only ever moves forward.
type Status int8

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusEnded:
		return "ended"
	default:
		return "not_started"
	}
}

// TrackedMatch is the accumulated state for one match. Values returned by
// the store are snapshots; mutation happens only through Apply.
type TrackedMatch struct {
	HomeCountry string
	HomeCode    string
	AwayCountry string
	AwayCode    string

	Status            Status
	ScoreSignature    int
	GoalsHome         int
	GoalsAway         int
	SeenEvents        map[int]struct{}
	HalfTimeAnnounced bool
	StartedAt         time.Time
}

// Mutation describes one cycle's worth of state changes for a match.
// Apply enforces the monotonic invariants, so a mutation computed from a
// stale or regressed feed record can never move state backwards.
type Mutation struct {
	Status            Status
	ScoreSignature    int
	GoalsHome         int
	GoalsAway         int
	EventIDs          []int
	HalfTimeAnnounced bool
	StartedAt         time.Time
}

// Entry pairs a match identifier with a state snapshot.
type Entry struct {
	ID    matches.MatchID
	State TrackedMatch
}

// Store keeps a thread-safe mapping from match identifier to tracked state.
type Store struct {
	mu      sync.RWMutex
	tracked map[matches.MatchID]*TrackedMatch
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		tracked: make(map[matches.MatchID]*TrackedMatch),
	}
}

// Get returns a snapshot of the tracked state for id.
func (s *Store) Get(id matches.MatchID) (TrackedMatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.tracked[id]
	if !ok {
		return TrackedMatch{}, false
	}
	return snapshot(state), true
}

// Ensure creates a fresh entry for the match on first sighting and returns
// a snapshot. Calling it again for a known id is a no-op lookup; the team
// labels recorded at creation are never overwritten.
func (s *Store) Ensure(m matches.Match) TrackedMatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tracked[m.ID]
	if !ok {
		state = &TrackedMatch{
			HomeCountry: m.Home.Country,
			HomeCode:    m.Home.Code,
			AwayCountry: m.Away.Country,
			AwayCode:    m.Away.Code,
			SeenEvents:  make(map[int]struct{}),
		}
		s.tracked[m.ID] = state
	}
	return snapshot(state)
}

// Apply merges a mutation into the tracked state. Status and goal counts
// never regress, the seen-event set only grows, the half-time flag and
// start time are set at most once.
func (s *Store) Apply(id matches.MatchID, mut Mutation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tracked[id]
	if !ok {
		return
	}

	if mut.Status > state.Status {
		state.Status = mut.Status
	}
	if mut.ScoreSignature > state.ScoreSignature {
		state.ScoreSignature = mut.ScoreSignature
	}
	if mut.GoalsHome > state.GoalsHome {
		state.GoalsHome = mut.GoalsHome
	}
	if mut.GoalsAway > state.GoalsAway {
		state.GoalsAway = mut.GoalsAway
	}
	for _, eventID := range mut.EventIDs {
		state.SeenEvents[eventID] = struct{}{}
	}
	if mut.HalfTimeAnnounced {
		state.HalfTimeAnnounced = true
	}
	if state.StartedAt.IsZero() && !mut.StartedAt.IsZero() {
		state.StartedAt = mut.StartedAt
	}
}

// ListNonTerminal returns snapshots of every match not yet ended, ordered
// by id for deterministic sweeps.
func (s *Store) ListNonTerminal() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.tracked))
	for id, state := range s.tracked {
		if state.Status == StatusEnded {
			continue
		}
		entries = append(entries, Entry{ID: id, State: snapshot(state)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// List returns snapshots of every tracked match, ordered by id.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.tracked))
	for id, state := range s.tracked {
		entries = append(entries, Entry{ID: id, State: snapshot(state)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

func snapshot(state *TrackedMatch) TrackedMatch {
	copied := *state
	copied.SeenEvents = make(map[int]struct{}, len(state.SeenEvents))
	for id := range state.SeenEvents {
		copied.SeenEvents[id] = struct{}{}
	}
	return copied
}
