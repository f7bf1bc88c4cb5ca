package fifa

import (
	"encoding/json"
	"testing"

	"match-notify-service/internal/domain/matches"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want matches.MatchStatus
	}{
		{"in progress", matches.StatusInProgress},
		{"In Progress", matches.StatusInProgress},
		{"live", matches.StatusInProgress},
		{"completed", matches.StatusCompleted},
		{"ended", matches.StatusCompleted},
		{"future", matches.StatusScheduled},
		{"", matches.StatusScheduled},
		{"pending correction", matches.StatusScheduled},
	}
	for _, tt := range tests {
		if got := mapStatus(tt.raw); got != tt.want {
			t.Errorf("mapStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestMapMatchMissingTeamCode(t *testing.T) {
	_, err := mapMatch(matchResponse{
		HomeTeam: teamResponse{Country: "France", Code: "FRA"},
		AwayTeam: teamResponse{Country: "TBD"},
	})
	if err == nil {
		t.Fatal("expected error for missing code")
	}
}

func TestMapMatchVenue(t *testing.T) {
	tests := []struct {
		name     string
		location string
		venue    string
		want     string
	}{
		{"both", "Moscow", "Luzhniki Stadium", "Moscow, Luzhniki Stadium"},
		{"location only", "Moscow", "", "Moscow"},
		{"venue only", "", "Luzhniki Stadium", "Luzhniki Stadium"},
		{"neither", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := mapMatch(matchResponse{
				HomeTeam: teamResponse{Code: "FRA"},
				AwayTeam: teamResponse{Code: "CRO"},
				Location: tt.location,
				Venue:    tt.venue,
			})
			if err != nil {
				t.Fatalf("mapMatch() error = %v", err)
			}
			if m.Venue != tt.want {
				t.Errorf("Venue = %q, want %q", m.Venue, tt.want)
			}
		})
	}
}

func TestMapMatchNormalizesPeriodAndEventTypes(t *testing.T) {
	m, err := mapMatch(matchResponse{
		HomeTeam:       teamResponse{Code: "FRA"},
		AwayTeam:       teamResponse{Code: "CRO"},
		Time:           " Half-Time ",
		HomeTeamEvents: []eventResponse{{ID: 1, TypeOfEvent: " Goal ", Player: "Pogba", Time: "59'"}},
	})
	if err != nil {
		t.Fatalf("mapMatch() error = %v", err)
	}
	if m.Period != "half-time" {
		t.Errorf("Period = %q", m.Period)
	}
	if m.Home.Events[0].Type != matches.EventGoal {
		t.Errorf("event type = %q", m.Home.Events[0].Type)
	}
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`3`, 3},
		{`"3"`, 3},
		{`null`, 0},
		{`""`, 0},
		{`"n/a"`, 0},
	}
	for _, tt := range tests {
		var f flexInt
		if err := json.Unmarshal([]byte(tt.raw), &f); err != nil {
			t.Fatalf("unmarshal %q: %v", tt.raw, err)
		}
		if int(f) != tt.want {
			t.Errorf("flexInt(%s) = %d, want %d", tt.raw, f, tt.want)
		}
	}
}
