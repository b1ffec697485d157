package stats

import (
	"fmt"

	"github.com/pable/go-soccer-stats/internal/model"
)

// TeamSeasonRecord computes one team's win/draw/loss/goals/points tally
// for one season. Returns ErrNotFound when the team played no matches in
// that season, so callers can tell "never played" from an all-zero record.
func (e *Engine) TeamSeasonRecord(team, season string) (*model.TeamSeasonRecord, error) {
	if team == "" || season == "" {
		return nil, fmt.Errorf("%w: team and season are required", ErrInvalidArgument)
	}
	matches, err := e.facts.FindMatches(MatchFilter{Team: team, Season: season})
	if err != nil {
		return nil, storeErr(err)
	}
	return buildSeasonRecord(team, season, matches)
}

// buildSeasonRecord tallies a record from the matches the team appeared
// in. Matches with an unknown result are not counted, which keeps
// matches_played = wins + draws + losses.
func buildSeasonRecord(team, season string, matches []model.Match) (*model.TeamSeasonRecord, error) {
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no matches for %q in season %q", ErrNotFound, team, season)
	}
	rec := &model.TeamSeasonRecord{Team: team, Season: season}
	for _, m := range matches {
		switch OutcomeFor(m, team) {
		case OutcomeWin:
			rec.Wins++
		case OutcomeDraw:
			rec.Draws++
		case OutcomeLoss:
			rec.Losses++
		default:
			continue
		}
		if m.HomeTeamName == team {
			rec.GoalsScored += *m.HomeGoals
			rec.GoalsConceded += *m.AwayGoals
		} else {
			rec.GoalsScored += *m.AwayGoals
			rec.GoalsConceded += *m.HomeGoals
		}
	}
	rec.MatchesPlayed = rec.Wins + rec.Draws + rec.Losses
	rec.GoalDifference = rec.GoalsScored - rec.GoalsConceded
	rec.Points = 3*rec.Wins + rec.Draws
	return rec, nil
}
