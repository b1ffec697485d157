package stats

import (
	"fmt"
	"sort"

	"github.com/pable/go-soccer-stats/internal/model"
)

// CommonScorelines ranks exact ordered goal pairs by occurrence across the
// whole fact set and truncates to limit. (2,1) and (1,2) are distinct
// tallies; ties rank by home goals then away goals ascending.
func (e *Engine) CommonScorelines(limit int) ([]model.ScorelineTally, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}
	tallies, err := e.AllScorelines()
	if err != nil {
		return nil, err
	}
	if len(tallies) > limit {
		tallies = tallies[:limit]
	}
	return tallies, nil
}

// AllScorelines returns the full, untruncated ranking. The sum of all
// occurrence counts equals the number of matches with a known score.
func (e *Engine) AllScorelines() ([]model.ScorelineTally, error) {
	matches, err := e.facts.FindMatches(MatchFilter{})
	if err != nil {
		return nil, storeErr(err)
	}

	type pair struct{ home, away int }
	counts := make(map[pair]int)
	for _, m := range matches {
		if m.HomeGoals == nil || m.AwayGoals == nil {
			continue
		}
		counts[pair{*m.HomeGoals, *m.AwayGoals}]++
	}

	out := make([]model.ScorelineTally, 0, len(counts))
	for p, n := range counts {
		out = append(out, model.ScorelineTally{
			Scoreline:   model.Scoreline(p.home, p.away),
			HomeGoals:   p.home,
			AwayGoals:   p.away,
			Occurrences: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Occurrences != b.Occurrences {
			return a.Occurrences > b.Occurrences
		}
		if a.HomeGoals != b.HomeGoals {
			return a.HomeGoals < b.HomeGoals
		}
		return a.AwayGoals < b.AwayGoals
	})
	return out, nil
}
