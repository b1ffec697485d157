package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pable/go-soccer-stats/internal/model"
)

// LeagueStandings builds the ranked table for one league-season. The team
// set is the union of home-side and away-side names, so a team that only
// ever appears away in the stored window is still ranked. A league-season
// with no matches yields an empty table, not an error.
func (e *Engine) LeagueStandings(league, season string) ([]model.TeamSeasonRecord, error) {
	if league == "" || season == "" {
		return nil, fmt.Errorf("%w: league and season are required", ErrInvalidArgument)
	}
	matches, err := e.facts.FindMatches(MatchFilter{League: league, Season: season})
	if err != nil {
		return nil, storeErr(err)
	}

	byTeam := make(map[string][]model.Match)
	for _, m := range matches {
		if m.HomeTeamName != "" {
			byTeam[m.HomeTeamName] = append(byTeam[m.HomeTeamName], m)
		}
		if m.AwayTeamName != "" {
			byTeam[m.AwayTeamName] = append(byTeam[m.AwayTeamName], m)
		}
	}

	table := make([]model.TeamSeasonRecord, 0, len(byTeam))
	for team, ms := range byTeam {
		rec, err := buildSeasonRecord(team, season, ms)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		table = append(table, *rec)
	}

	// Points, then goal difference, then goals scored, then name. The last
	// two keys make the ordering fully deterministic.
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsScored != b.GoalsScored {
			return a.GoalsScored > b.GoalsScored
		}
		return a.Team < b.Team
	})

	for i := range table {
		table[i].Position = i + 1
	}
	return table, nil
}
