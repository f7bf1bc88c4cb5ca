package fifa

import (
	"errors"
	"strings"

	"match-notify-service/internal/domain/matches"
)

var errMissingTeam = errors.New("fifa: record missing team code")

// mapMatch normalizes one raw feed record into the canonical match shape.
// Records without both team codes cannot be keyed and are rejected.
func mapMatch(raw matchResponse) (matches.Match, error) {
	if raw.HomeTeam.Code == "" || raw.AwayTeam.Code == "" {
		return matches.Match{}, errMissingTeam
	}

	venue := raw.Venue
	if raw.Location != "" {
		venue = raw.Location
		if raw.Venue != "" {
			venue += ", " + raw.Venue
		}
	}

	return matches.Match{
		ID:       matches.NewMatchID(raw.HomeTeam.Code, raw.AwayTeam.Code),
		Provider: providerName,
		Home:     mapTeam(raw.HomeTeam, raw.HomeTeamEvents),
		Away:     mapTeam(raw.AwayTeam, raw.AwayTeamEvents),
		Status:   mapStatus(raw.Status),
		Period:   strings.ToLower(strings.TrimSpace(raw.Time)),
		Winner:   raw.Winner,
		Venue:    venue,
		Kickoff:  raw.Datetime,
	}, nil
}

func mapTeam(t teamResponse, events []eventResponse) matches.Team {
	team := matches.Team{
		Country: t.Country,
		Code:    t.Code,
		Goals:   int(t.Goals),
	}
	for _, e := range events {
		team.Events = append(team.Events, matches.Event{
			ID:     e.ID,
			Type:   matches.EventType(strings.ToLower(strings.TrimSpace(e.TypeOfEvent))),
			Time:   e.Time,
			Player: e.Player,
		})
	}
	return team
}

func mapStatus(status string) matches.MatchStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "in progress", "live":
		return matches.StatusInProgress
	case "completed", "ended":
		return matches.StatusCompleted
	default:
		return matches.StatusScheduled
	}
}
