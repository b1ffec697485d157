package stats

import (
	"sort"

	"github.com/pable/go-soccer-stats/internal/model"
)

// LeagueGoalAverages summarizes scoring volume per league across every
// stored season. Matches with an unknown score contribute nothing, not
// even to the match count, so the averages stay consistent with the goal
// totals. Leagues rank by goals per match, highest first.
func (e *Engine) LeagueGoalAverages() ([]model.LeagueGoalStats, error) {
	matches, err := e.facts.FindMatches(MatchFilter{})
	if err != nil {
		return nil, storeErr(err)
	}

	type agg struct{ matches, home, away int }
	byLeague := make(map[string]*agg)
	for _, m := range matches {
		if m.LeagueName == "" || m.HomeGoals == nil || m.AwayGoals == nil {
			continue
		}
		a := byLeague[m.LeagueName]
		if a == nil {
			a = &agg{}
			byLeague[m.LeagueName] = a
		}
		a.matches++
		a.home += *m.HomeGoals
		a.away += *m.AwayGoals
	}

	out := make([]model.LeagueGoalStats, 0, len(byLeague))
	for name, a := range byLeague {
		total := a.home + a.away
		n := float64(a.matches)
		out = append(out, model.LeagueGoalStats{
			LeagueName:       name,
			TotalMatches:     a.matches,
			TotalGoals:       total,
			AvgGoalsPerMatch: round2(float64(total) / n),
			AvgHomeGoals:     round2(float64(a.home) / n),
			AvgAwayGoals:     round2(float64(a.away) / n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgGoalsPerMatch != out[j].AvgGoalsPerMatch {
			return out[i].AvgGoalsPerMatch > out[j].AvgGoalsPerMatch
		}
		return out[i].LeagueName < out[j].LeagueName
	})
	return out, nil
}
