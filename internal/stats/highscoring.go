package stats

import (
	"fmt"

	"github.com/pable/go-soccer-stats/internal/model"
)

// HighScoringMatches lists the matches where the named team scored at
// least minGoals, most recent first. The store applies the threshold to
// whichever side the team occupied. No qualifying match yields an empty
// list, not an error.
func (e *Engine) HighScoringMatches(team string, minGoals int) ([]model.MatchProjection, error) {
	if team == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidArgument)
	}
	if minGoals < 0 {
		return nil, fmt.Errorf("%w: minimum goals must not be negative, got %d", ErrInvalidArgument, minGoals)
	}
	matches, err := e.facts.FindMatches(MatchFilter{
		Team:           team,
		MinTeamGoals:   minGoals,
		SortByDateDesc: true,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return Project(matches), nil
}

// RecentMatches lists a team's matches, most recent first, capped at limit.
func (e *Engine) RecentMatches(team string, limit int) ([]model.MatchProjection, error) {
	if team == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}
	matches, err := e.facts.FindMatches(MatchFilter{
		Team:           team,
		SortByDateDesc: true,
		Limit:          limit,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return Project(matches), nil
}

// Project flattens matches to the presentation shape.
func Project(matches []model.Match) []model.MatchProjection {
	out := make([]model.MatchProjection, 0, len(matches))
	for _, m := range matches {
		out = append(out, model.MatchProjection{
			Date:         m.Date,
			LeagueName:   m.LeagueName,
			Season:       m.Season,
			HomeTeamName: m.HomeTeamName,
			AwayTeamName: m.AwayTeamName,
			HomeGoals:    m.HomeGoals,
			AwayGoals:    m.AwayGoals,
			Scoreline:    m.Scoreline(),
		})
	}
	return out
}
