package matches

import "testing"

func TestNewMatchID(t *testing.T) {
	if got := NewMatchID("FRA", "CRO"); got != MatchID("FRACRO") {
		t.Errorf("NewMatchID() = %q", got)
	}
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		name  string
		match Match
		want  bool
	}{
		{"scheduled", Match{Status: StatusScheduled}, false},
		{"in progress", Match{Status: StatusInProgress}, false},
		{"completed", Match{Status: StatusCompleted}, true},
		{"winner set", Match{Status: StatusInProgress, Winner: "France"}, true},
		{"full-time period", Match{Status: StatusInProgress, Period: PeriodFullTime}, true},
		{"half-time period", Match{Status: StatusInProgress, Period: PeriodHalfTime}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.match.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlag(t *testing.T) {
	if got := Flag("FRA"); got != ":flag-fr:" {
		t.Errorf("Flag(FRA) = %q", got)
	}
	if got := Flag("ENG"); got != ":flag-england:" {
		t.Errorf("Flag(ENG) = %q", got)
	}
	// Unknown codes fall back to the code itself.
	if got := Flag("XYZ"); got != "XYZ" {
		t.Errorf("Flag(XYZ) = %q", got)
	}
}

func TestScoreWord(t *testing.T) {
	if got := ScoreWord(0); got != ":zero:" {
		t.Errorf("ScoreWord(0) = %q", got)
	}
	if got := ScoreWord(10); got != ":ten:" {
		t.Errorf("ScoreWord(10) = %q", got)
	}
	if got := ScoreWord(11); got != "11" {
		t.Errorf("ScoreWord(11) = %q", got)
	}
}
