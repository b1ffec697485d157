package stats

import (
	"fmt"

	"github.com/pable/go-soccer-stats/internal/model"
)

// HeadToHead tallies all meetings between two named teams, in either
// home/away arrangement. Argument order only controls output labeling.
// Matches with an unknown result are excluded from every column so that
// team1_wins + team2_wins + draws = total_matches.
func (e *Engine) HeadToHead(team1, team2 string) (*model.HeadToHeadRecord, error) {
	if team1 == "" || team2 == "" {
		return nil, fmt.Errorf("%w: both team names are required", ErrInvalidArgument)
	}
	matches, err := e.facts.FindMatches(MatchFilter{Team: team1, Opponent: team2})
	if err != nil {
		return nil, storeErr(err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no meetings between %q and %q", ErrNotFound, team1, team2)
	}

	rec := &model.HeadToHeadRecord{Team1: team1, Team2: team2}
	for _, m := range matches {
		switch OutcomeFor(m, team1) {
		case OutcomeWin:
			rec.Team1Wins++
		case OutcomeLoss:
			rec.Team2Wins++
		case OutcomeDraw:
			rec.Draws++
		default:
			continue
		}
		rec.TotalMatches++
	}
	return rec, nil
}
