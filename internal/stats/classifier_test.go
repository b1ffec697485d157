package stats

import (
	"testing"

	"github.com/pable/go-soccer-stats/internal/model"
)

func intp(v int) *int { return &v }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		home *int
		away *int
		want model.Result
	}{
		{"home win", intp(3), intp(1), model.ResultHomeWin},
		{"away win", intp(0), intp(2), model.ResultAwayWin},
		{"draw", intp(1), intp(1), model.ResultDraw},
		{"goalless draw", intp(0), intp(0), model.ResultDraw},
		{"missing home", nil, intp(2), model.ResultUnknown},
		{"missing away", intp(2), nil, model.ResultUnknown},
		{"missing both", nil, nil, model.ResultUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.home, tc.away); got != tc.want {
				t.Errorf("Classify(%v, %v) = %q, want %q", tc.home, tc.away, got, tc.want)
			}
		})
	}
}

func TestOutcomeFor(t *testing.T) {
	m := model.Match{
		HomeTeamName: "Alpha",
		AwayTeamName: "Beta",
		HomeGoals:    intp(2),
		AwayGoals:    intp(0),
	}
	if got := OutcomeFor(m, "Alpha"); got != OutcomeWin {
		t.Errorf("home winner: got %v, want OutcomeWin", got)
	}
	if got := OutcomeFor(m, "Beta"); got != OutcomeLoss {
		t.Errorf("away loser: got %v, want OutcomeLoss", got)
	}

	m.HomeGoals, m.AwayGoals = intp(1), intp(1)
	if got := OutcomeFor(m, "Alpha"); got != OutcomeDraw {
		t.Errorf("draw, home side: got %v, want OutcomeDraw", got)
	}
	if got := OutcomeFor(m, "Beta"); got != OutcomeDraw {
		t.Errorf("draw, away side: got %v, want OutcomeDraw", got)
	}

	m.HomeGoals = nil
	if got := OutcomeFor(m, "Alpha"); got != OutcomeUnknown {
		t.Errorf("missing goals: got %v, want OutcomeUnknown", got)
	}
}
