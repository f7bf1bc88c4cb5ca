package matches

// MatchStatus mirrors the lifecycle states the upstream feed reports.
type MatchStatus string

const (
	StatusScheduled  MatchStatus = "SCHEDULED"
	StatusInProgress MatchStatus = "IN_PROGRESS"
	StatusCompleted  MatchStatus = "COMPLETED"
)

// EventType tags a discrete in-match occurrence.
type EventType string

const (
	EventGoal        EventType = "goal"
	EventOwnGoal     EventType = "goal-own"
	EventPenaltyGoal EventType = "goal-penalty"
	EventYellowCard  EventType = "yellow-card"
	EventRedCard     EventType = "red-card"
)

// MatchID is a stable key combining home and away team codes, in that order.
type MatchID string

// NewMatchID builds the canonical identifier for a fixture.
func NewMatchID(homeCode, awayCode string) MatchID {
	return MatchID(homeCode + awayCode)
}

// Event is a single timed occurrence within a match. IDs are issued by the
// feed in emission order and are stable across polls.
type Event struct {
	ID     int       `json:"id"`
	Type   EventType `json:"type"`
	Time   string    `json:"time"`
	Player string    `json:"player"`
}

// Team is one side of a match as reported by a single poll.
type Team struct {
	Country string  `json:"country"`
	Code    string  `json:"code"`
	Goals   int     `json:"goals"`
	Events  []Event `json:"events,omitempty"`
}

// Match is the canonical per-poll match record produced by a provider.
// It is ephemeral: a fresh value arrives each cycle and carries no memory
// of previous polls.
type Match struct {
	ID       MatchID     `json:"id"`
	Provider string      `json:"provider"`
	Home     Team        `json:"home"`
	Away     Team        `json:"away"`
	Status   MatchStatus `json:"status"`
	// Period is the feed's current period label, e.g. "half-time",
	// "full-time" or a minute marker. Kept raw; the tracker matches on
	// the known terminal/half-time labels only.
	Period string `json:"period,omitempty"`
	Winner string `json:"winner,omitempty"`
	Venue  string `json:"venue,omitempty"`
	// Kickoff is the scheduled start as an RFC3339 string when the feed
	// supplies one, used only for the daily preview message.
	Kickoff string `json:"kickoff,omitempty"`
}

// Terminal reports whether the feed considers this match over.
func (m Match) Terminal() bool {
	return m.Status == StatusCompleted || m.Winner != "" || m.Period == PeriodFullTime
}

// Feed period labels the tracker keys off.
const (
	PeriodHalfTime = "half-time"
	PeriodFullTime = "full-time"
)
