package tracker

import (
	"fmt"
	"strings"

	"match-notify-service/internal/domain/matches"
)

// eventTemplates maps event types to their announcement text. Unknown
// types render nothing but are still marked seen so they are evaluated
// only once.
var eventTemplates = map[matches.EventType]string{
	matches.EventGoal:        "[flag] [country]: [player] just scored a goooooooal! :soccer:",
	matches.EventOwnGoal:     "[flag] [country]: Oh no, [player] just scored a goal on the wrong side of the field! :face_palm:",
	matches.EventPenaltyGoal: "[flag] [country]: [player] gets a goal penalty :dart:",
	matches.EventYellowCard:  "[flag] [country]: [player] just received a yellow card :warning:",
	matches.EventRedCard:     "[flag] [country]: [player] just received a red card :rotating_light:",
}

// taggedEvent is an event annotated with the side it belongs to.
type taggedEvent struct {
	matches.Event
	Country string
	Flag    string
}

func renderEvent(e taggedEvent) string {
	tmpl, ok := eventTemplates[e.Type]
	if !ok {
		return ""
	}
	text := strings.ReplaceAll(tmpl, "[player]", e.Player)
	text = strings.ReplaceAll(text, "[country]", e.Country)
	text = strings.ReplaceAll(text, "[flag]", e.Flag)
	return ":stopwatch: " + e.Time + " " + text
}

// scoreline renders the canonical "flag country :n: vs :m: flag country" line.
func scoreline(homeCountry, homeCode string, goalsHome, goalsAway int, awayCountry, awayCode string) string {
	return fmt.Sprintf("%s %s %s vs %s %s %s",
		matches.Flag(homeCode), homeCountry, matches.ScoreWord(goalsHome),
		matches.ScoreWord(goalsAway), matches.Flag(awayCode), awayCountry,
	)
}
