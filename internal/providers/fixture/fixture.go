package fixture

import (
	"context"
	"time"

	"match-notify-service/internal/domain/matches"
)

// Provider returns a static set of matches useful for local testing and
// bootstrapping without hitting the upstream feed.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchMatches returns a deterministic pair of example matches.
func (p *Provider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)

	return []matches.Match{
		{
			ID:       matches.NewMatchID("FRA", "CRO"),
			Provider: "fixture",
			Home:     matches.Team{Country: "France", Code: "FRA", Goals: 0},
			Away:     matches.Team{Country: "Croatia", Code: "CRO", Goals: 0},
			Status:   matches.StatusScheduled,
			Venue:    "Moscow, Luzhniki Stadium",
			Kickoff:  start.Add(2 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:       matches.NewMatchID("BEL", "ENG"),
			Provider: "fixture",
			Home:     matches.Team{Country: "Belgium", Code: "BEL", Goals: 0},
			Away:     matches.Team{Country: "England", Code: "ENG", Goals: 0},
			Status:   matches.StatusScheduled,
			Venue:    "Saint Petersburg, Saint Petersburg Stadium",
			Kickoff:  start.Add(4 * time.Hour).Format(time.RFC3339),
		},
	}, nil
}
