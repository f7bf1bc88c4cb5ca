package tracker

import (
	"strings"
	"testing"
	"time"

	"match-notify-service/internal/domain/matches"
)

func fixtureMatch() matches.Match {
	return matches.Match{
		ID:       matches.NewMatchID("FRA", "CRO"),
		Provider: "fifa",
		Home:     matches.Team{Country: "France", Code: "FRA"},
		Away:     matches.Team{Country: "Croatia", Code: "CRO"},
		Status:   matches.StatusScheduled,
	}
}

func newTestTracker(t *testing.T, at time.Time) (*Tracker, *time.Time) {
	t.Helper()
	now := at
	trk := New(NewStore(), nil)
	trk.now = func() time.Time { return now }
	return trk, &now
}

func TestProcessPollLifecycle(t *testing.T) {
	trk, now := newTestTracker(t, time.Date(2026, 6, 14, 15, 0, 0, 0, time.UTC))

	// Scheduled match, nothing to say.
	msgs := trk.ProcessPoll([]matches.Match{fixtureMatch()})
	if len(msgs) != 0 {
		t.Fatalf("expected no messages for scheduled match, got %v", msgs)
	}

	// Kickoff.
	m := fixtureMatch()
	m.Status = matches.StatusInProgress
	msgs = trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 1 {
		t.Fatalf("expected one message at kickoff, got %d", len(msgs))
	}
	if msgs[0].Text != "France vs Croatia just started!" {
		t.Errorf("unexpected kickoff text: %q", msgs[0].Text)
	}

	// Goal plus score change in one cycle, one joined message.
	*now = now.Add(20 * time.Minute)
	m.Home.Goals = 1
	m.Home.Events = []matches.Event{{ID: 10, Type: matches.EventGoal, Time: "18'", Player: "Griezmann"}}
	msgs = trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 1 {
		t.Fatalf("expected one message for goal cycle, got %d", len(msgs))
	}
	wantEvent := ":stopwatch: 18' :flag-fr: France: Griezmann just scored a goooooooal! :soccer:"
	wantScore := ":recycle: Score update: :flag-fr: France :one: vs :zero: :flag-hr: Croatia"
	if msgs[0].Text != wantEvent+"\n"+wantScore {
		t.Errorf("unexpected goal message:\n%q", msgs[0].Text)
	}

	// Same feed again, everything already seen.
	msgs = trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 0 {
		t.Fatalf("expected silence on repeated feed, got %v", msgs)
	}

	// Half-time.
	*now = now.Add(25 * time.Minute)
	m.Period = matches.PeriodHalfTime
	msgs = trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 1 {
		t.Fatalf("expected half-time message, got %d", len(msgs))
	}
	if msgs[0].Text != ":stopwatch: Half-time: :flag-fr: France :one: vs :zero: :flag-hr: Croatia" {
		t.Errorf("unexpected half-time text: %q", msgs[0].Text)
	}

	// Half-time never announced twice.
	msgs = trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 0 {
		t.Fatalf("expected no repeat half-time, got %v", msgs)
	}

	// Full-time.
	*now = now.Add(60 * time.Minute)
	m.Period = ""
	m.Status = matches.StatusCompleted
	m.Away.Goals = 1
	m.Away.Events = []matches.Event{{ID: 22, Type: matches.EventGoal, Time: "77'", Player: "Perisic"}}
	msgs = trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 1 {
		t.Fatalf("expected final message, got %d", len(msgs))
	}
	if !strings.Contains(msgs[0].Text, ":checkered_flag: Match ended! Final score:\n:flag-fr: France :one: vs :one: :flag-hr: Croatia") {
		t.Errorf("unexpected final text:\n%q", msgs[0].Text)
	}

	// Ended match stays silent forever.
	m.Home.Goals = 5
	msgs = trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 0 {
		t.Fatalf("expected silence after full-time, got %v", msgs)
	}
}

func TestProcessPollGoalCountNeverRegresses(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())

	m := fixtureMatch()
	m.Status = matches.StatusInProgress
	m.Home.Goals = 2
	trk.ProcessPoll([]matches.Match{m})

	// Feed briefly reports a lower count; displayed score keeps the high.
	m.Home.Goals = 1
	msgs := trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 0 {
		t.Fatalf("expected no message for regressed score, got %v", msgs)
	}

	state, ok := trk.Store().Get(m.ID)
	if !ok {
		t.Fatal("match not tracked")
	}
	if state.GoalsHome != 2 {
		t.Errorf("GoalsHome regressed to %d", state.GoalsHome)
	}
}

func TestProcessPollStatusNeverRegresses(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())

	m := fixtureMatch()
	m.Status = matches.StatusInProgress
	trk.ProcessPoll([]matches.Match{m})

	// Feed flips back to scheduled; no second kickoff later.
	m.Status = matches.StatusScheduled
	trk.ProcessPoll([]matches.Match{m})
	m.Status = matches.StatusInProgress
	msgs := trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 0 {
		t.Fatalf("expected no repeated kickoff, got %v", msgs)
	}
}

func TestProcessPollMissingMatchForcedFinal(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())

	m := fixtureMatch()
	m.Status = matches.StatusInProgress
	m.Home.Goals = 1
	trk.ProcessPoll([]matches.Match{m})

	// Match vanishes from the feed while live.
	msgs := trk.ProcessPoll(nil)
	if len(msgs) != 1 {
		t.Fatalf("expected one forced-final message, got %d", len(msgs))
	}
	want := ":checkered_flag: Match ended! Final score:\n:flag-fr: France :one: vs :zero: :flag-hr: Croatia"
	if msgs[0].Text != want {
		t.Errorf("unexpected forced-final text:\n%q", msgs[0].Text)
	}

	// Forced exactly once.
	msgs = trk.ProcessPoll(nil)
	if len(msgs) != 0 {
		t.Fatalf("expected no second forced final, got %v", msgs)
	}
}

func TestProcessPollTimeoutTermination(t *testing.T) {
	start := time.Date(2026, 6, 14, 15, 0, 0, 0, time.UTC)
	trk, now := newTestTracker(t, start)

	m := fixtureMatch()
	m.Status = matches.StatusInProgress
	trk.ProcessPoll([]matches.Match{m})

	// Well past any plausible match length and the feed still says live.
	*now = start.Add(3 * time.Hour)
	msgs := trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 1 {
		t.Fatalf("expected timeout message, got %d", len(msgs))
	}
	if !strings.Contains(msgs[0].Text, "Match (probably) ended, it has been 2.5h since kickoff!") {
		t.Errorf("unexpected timeout text: %q", msgs[0].Text)
	}

	state, _ := trk.Store().Get(m.ID)
	if state.Status != StatusEnded {
		t.Errorf("expected StatusEnded after timeout, got %v", state.Status)
	}
}

func TestProcessPollUnknownEventTypeSilentButSeen(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())

	m := fixtureMatch()
	m.Status = matches.StatusInProgress
	trk.ProcessPoll([]matches.Match{m})

	m.Home.Events = []matches.Event{{ID: 7, Type: "substitution", Time: "60'", Player: "Giroud"}}
	msgs := trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 0 {
		t.Fatalf("expected no message for unknown event type, got %v", msgs)
	}

	state, _ := trk.Store().Get(m.ID)
	if _, seen := state.SeenEvents[7]; !seen {
		t.Error("unknown event was not marked seen")
	}
}

func TestProcessPollEventsSortedByID(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())

	m := fixtureMatch()
	m.Status = matches.StatusInProgress
	trk.ProcessPoll([]matches.Match{m})

	m.Away.Events = []matches.Event{{ID: 31, Type: matches.EventYellowCard, Time: "55'", Player: "Modric"}}
	m.Home.Events = []matches.Event{{ID: 12, Type: matches.EventYellowCard, Time: "30'", Player: "Kante"}}
	msgs := trk.ProcessPoll([]matches.Match{m})
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	lines := strings.Split(msgs[0].Text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d: %q", len(lines), msgs[0].Text)
	}
	if !strings.Contains(lines[0], "Kante") || !strings.Contains(lines[1], "Modric") {
		t.Errorf("events out of id order:\n%q", msgs[0].Text)
	}
}

func TestProcessPollPanicIsolation(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())

	// Corrupt one entry so applying its events panics; the other match in
	// the same poll must still go through.
	bad := fixtureMatch()
	bad.Status = matches.StatusInProgress
	bad.Home.Events = []matches.Event{{ID: 1, Type: matches.EventGoal, Time: "5'", Player: "Mbappe"}}
	trk.store.tracked[bad.ID] = &TrackedMatch{
		HomeCountry: "France", HomeCode: "FRA",
		AwayCountry: "Croatia", AwayCode: "CRO",
	}

	good := matches.Match{
		ID:     matches.NewMatchID("BEL", "ENG"),
		Home:   matches.Team{Country: "Belgium", Code: "BEL"},
		Away:   matches.Team{Country: "England", Code: "ENG"},
		Status: matches.StatusInProgress,
	}

	msgs := trk.ProcessPoll([]matches.Match{bad, good})
	if len(msgs) != 1 {
		t.Fatalf("expected only the healthy match to produce a message, got %d", len(msgs))
	}
	if msgs[0].Match != good.ID {
		t.Errorf("unexpected message source: %s", msgs[0].Match)
	}
}

func TestPreview(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())

	m1 := fixtureMatch()
	m1.Kickoff = "2026-06-14T15:00:00Z"
	m1.Venue = "Moscow, Luzhniki Stadium"
	m2 := matches.Match{
		ID:   matches.NewMatchID("BEL", "ENG"),
		Home: matches.Team{Country: "Belgium", Code: "BEL"},
		Away: matches.Team{Country: "England", Code: "ENG"},
	}

	text := trk.Preview([]matches.Match{m1, m2}, 2)
	want := "Today's matches:\n" +
		":timer_clock: 17:00: :flag-fr: France vs :flag-hr: Croatia @ Moscow, Luzhniki Stadium\n" +
		":timer_clock: : :flag-be: Belgium vs :flag-england: England"
	if text != want {
		t.Errorf("unexpected preview:\ngot  %q\nwant %q", text, want)
	}

	// Preview registers matches so later polls have entries.
	if _, ok := trk.Store().Get(m1.ID); !ok {
		t.Error("preview did not register match")
	}
}

func TestPreviewEmptyFeed(t *testing.T) {
	trk, _ := newTestTracker(t, time.Now())
	if text := trk.Preview(nil, 0); text != "" {
		t.Errorf("expected empty preview, got %q", text)
	}
}
