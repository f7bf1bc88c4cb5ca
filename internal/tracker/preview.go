package tracker

import (
	"fmt"
	"strings"

	"match-notify-service/internal/domain/matches"
	"match-notify-service/internal/timeutil"
)

// Preview builds the once-a-day schedule message and registers every
// listed match with the store so later polls diff against a known entry.
// Returns an empty string when the feed lists nothing.
func (t *Tracker) Preview(records []matches.Match, hourOffset int) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Today's matches:")
	for _, m := range records {
		t.store.Ensure(m)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(":timer_clock: %s: %s %s vs %s %s",
			timeutil.FormatKickoff(m.Kickoff, hourOffset),
			matches.Flag(m.Home.Code), m.Home.Country,
			matches.Flag(m.Away.Code), m.Away.Country,
		))
		if m.Venue != "" {
			b.WriteString(" @ " + m.Venue)
		}
	}
	return b.String()
}
