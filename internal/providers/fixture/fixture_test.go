package fixture

import (
	"context"
	"testing"
	"time"

	"match-notify-service/internal/domain/matches"
)

func TestFetchMatches(t *testing.T) {
	p := New()
	p.now = func() time.Time {
		return time.Date(2026, 6, 14, 12, 30, 0, 0, time.UTC)
	}

	got, err := p.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("FetchMatches() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	if got[0].ID != matches.NewMatchID("FRA", "CRO") {
		t.Errorf("unexpected first id %q", got[0].ID)
	}
	if got[0].Status != matches.StatusScheduled {
		t.Errorf("unexpected status %q", got[0].Status)
	}
	if got[0].Kickoff != "2026-06-14T14:00:00Z" {
		t.Errorf("unexpected kickoff %q", got[0].Kickoff)
	}
	if got[1].Kickoff != "2026-06-14T16:00:00Z" {
		t.Errorf("unexpected kickoff %q", got[1].Kickoff)
	}
}
