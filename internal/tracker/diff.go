package tracker

import (
	"fmt"
	"sort"
	"time"

	"match-notify-service/internal/domain/matches"
)

// maxMatchDuration is the ceiling after which an in-progress match is
// considered over even if the feed never says so. Covers extra time and
// penalty shootouts.
const maxMatchDuration = 150 * time.Minute

// diffMatch compares one freshly polled record against the previously
// tracked state and produces the notification lines for this cycle plus
// the single mutation to apply. It never touches the store itself.
func diffMatch(m matches.Match, prev TrackedMatch, now time.Time) ([]string, Mutation) {
	var lines []string
	mut := Mutation{
		Status:         prev.Status,
		ScoreSignature: prev.ScoreSignature,
		GoalsHome:      prev.GoalsHome,
		GoalsAway:      prev.GoalsAway,
	}

	// Kickoff.
	status := prev.Status
	if m.Status == matches.StatusInProgress && status == StatusNotStarted {
		lines = append(lines, fmt.Sprintf("%s vs %s just started!", m.Home.Country, m.Away.Country))
		status = StatusInProgress
		mut.Status = StatusInProgress
		mut.StartedAt = now
	}

	// Nothing is ever announced again once a match has ended.
	if prev.Status == StatusEnded {
		return nil, Mutation{Status: StatusEnded}
	}

	// Confirmed goal counts never regress, even when the feed briefly
	// reports a lower value than previously observed.
	goalsHome := maxInt(prev.GoalsHome, m.Home.Goals)
	goalsAway := maxInt(prev.GoalsAway, m.Away.Goals)
	mut.GoalsHome = goalsHome
	mut.GoalsAway = goalsAway

	// New events, merged across both sides. Feed event ids are issued in
	// emission order, so ascending id approximates chronological order.
	// This is an assumption about the feed, not a guarantee.
	events := tagEvents(m)
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	for _, e := range events {
		if _, seen := prev.SeenEvents[e.ID]; seen {
			continue
		}
		mut.EventIDs = append(mut.EventIDs, e.ID)
		if text := renderEvent(e); text != "" {
			lines = append(lines, text)
		}
	}

	// Half-time, announced once.
	if m.Period == matches.PeriodHalfTime && !prev.HalfTimeAnnounced {
		mut.HalfTimeAnnounced = true
		lines = append(lines, ":stopwatch: Half-time: "+scoreline(m.Home.Country, m.Home.Code, goalsHome, goalsAway, m.Away.Country, m.Away.Code))
	}

	// Score change. The signature only ever ratchets upward, so a
	// regressed feed value emits nothing.
	score := m.Home.Goals + m.Away.Goals
	if score > prev.ScoreSignature {
		mut.ScoreSignature = score
		lines = append(lines, ":recycle: Score update: "+scoreline(m.Home.Country, m.Home.Code, goalsHome, goalsAway, m.Away.Country, m.Away.Code))
	}

	// Explicit termination from the feed.
	if m.Terminal() {
		lines = append(lines, ":checkered_flag: Match ended! Final score:\n"+scoreline(m.Home.Country, m.Home.Code, goalsHome, goalsAway, m.Away.Country, m.Away.Code))
		mut.Status = StatusEnded
		return lines, mut
	}

	// Timeout termination: the feed sometimes stops updating a match's
	// status field entirely.
	startedAt := prev.StartedAt
	if startedAt.IsZero() {
		startedAt = mut.StartedAt
	}
	if status == StatusInProgress && !startedAt.IsZero() && now.Sub(startedAt) > maxMatchDuration {
		lines = append(lines, ":checkered_flag: Match (probably) ended, it has been 2.5h since kickoff! Final score:\n"+scoreline(m.Home.Country, m.Home.Code, goalsHome, goalsAway, m.Away.Country, m.Away.Code))
		mut.Status = StatusEnded
	}

	return lines, mut
}

// expireMatch builds the forced final notification for a match the feed
// stopped listing while it was still non-terminal. The message uses the
// match's own confirmed score, never a value from another iteration.
func expireMatch(entry Entry) (string, Mutation) {
	text := ":checkered_flag: Match ended! Final score:\n" + scoreline(
		entry.State.HomeCountry, entry.State.HomeCode,
		entry.State.GoalsHome, entry.State.GoalsAway,
		entry.State.AwayCountry, entry.State.AwayCode,
	)
	return text, Mutation{Status: StatusEnded}
}

func tagEvents(m matches.Match) []taggedEvent {
	events := make([]taggedEvent, 0, len(m.Home.Events)+len(m.Away.Events))
	for _, e := range m.Home.Events {
		events = append(events, taggedEvent{Event: e, Country: m.Home.Country, Flag: matches.Flag(m.Home.Code)})
	}
	for _, e := range m.Away.Events {
		events = append(events, taggedEvent{Event: e, Country: m.Away.Country, Flag: matches.Flag(m.Away.Code)})
	}
	return events
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
