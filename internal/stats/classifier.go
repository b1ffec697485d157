package stats

import "github.com/pable/go-soccer-stats/internal/model"

// Classify derives the side-agnostic outcome of a match from its goal
// tallies. An absent count on either side makes the outcome unknown;
// otherwise the comparison is total.
func Classify(homeGoals, awayGoals *int) model.Result {
	if homeGoals == nil || awayGoals == nil {
		return model.ResultUnknown
	}
	switch {
	case *homeGoals > *awayGoals:
		return model.ResultHomeWin
	case *homeGoals < *awayGoals:
		return model.ResultAwayWin
	default:
		return model.ResultDraw
	}
}

// Outcome is a match result seen from one team's perspective.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeWin
	OutcomeDraw
	OutcomeLoss
)

// OutcomeFor remaps the classified result to the perspective of the named
// team: a draw is a draw for both sides, a home_win is a win only when the
// named team played at home, symmetrically for away_win. Kept separate
// from Classify so per-team attribution never re-derives the comparison.
func OutcomeFor(m model.Match, team string) Outcome {
	switch Classify(m.HomeGoals, m.AwayGoals) {
	case model.ResultDraw:
		return OutcomeDraw
	case model.ResultHomeWin:
		if m.HomeTeamName == team {
			return OutcomeWin
		}
		return OutcomeLoss
	case model.ResultAwayWin:
		if m.AwayTeamName == team {
			return OutcomeWin
		}
		return OutcomeLoss
	default:
		return OutcomeUnknown
	}
}
