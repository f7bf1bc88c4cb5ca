package providers

import (
	"context"

	"match-notify-service/internal/domain/matches"
)

// MatchProvider defines how upstream match data is fetched and normalized.
// A single call returns every match the feed currently lists for today,
// already mapped to the canonical domain shape. Individual malformed
// records are dropped by the provider; only a wholesale fetch failure
// returns an error.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]matches.Match, error)
}
