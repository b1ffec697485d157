package stats

import (
	"fmt"
	"sort"

	"github.com/pable/go-soccer-stats/internal/model"
)

// TeamRatingTrend tracks how a team's roster rated season over season.
// For each season the team played in, the eligible players are those who
// appeared in one of the team's lineups that season, and their snapshots
// count only when dated inside the season's first-to-last match window.
// Seasons with no rated snapshot in the window are omitted. Averages are
// rounded to one decimal.
func (e *Engine) TeamRatingTrend(team string) ([]model.TeamSeasonRating, error) {
	if team == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidArgument)
	}
	matches, err := e.facts.FindMatches(MatchFilter{Team: team})
	if err != nil {
		return nil, storeErr(err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no matches for team %q", ErrNotFound, team)
	}

	type window struct{ first, last string }
	bySeason := make(map[string]*window)
	for _, m := range matches {
		if m.Date == "" {
			continue
		}
		w := bySeason[m.Season]
		if w == nil {
			bySeason[m.Season] = &window{first: m.Date, last: m.Date}
			continue
		}
		if m.Date < w.first {
			w.first = m.Date
		}
		if m.Date > w.last {
			w.last = m.Date
		}
	}

	snaps, err := e.facts.FindSnapshots(SnapshotFilter{})
	if err != nil {
		return nil, storeErr(err)
	}
	snapsByPlayer := make(map[int64][]model.PlayerAttributeSnapshot)
	for _, s := range snaps {
		if s.Date == "" {
			continue
		}
		snapsByPlayer[s.PlayerID] = append(snapsByPlayer[s.PlayerID], s)
	}

	var trend []model.TeamSeasonRating
	for season, w := range bySeason {
		ids, err := e.facts.LineupPlayerIDs(MatchFilter{Team: team, Season: season})
		if err != nil {
			return nil, storeErr(err)
		}

		var ratingSum, ratingN, potSum, potN, players int
		for _, id := range ids {
			counted := false
			for _, s := range snapsByPlayer[id] {
				if s.Date < w.first || s.Date > w.last {
					continue
				}
				if s.OverallRating != nil {
					ratingSum += *s.OverallRating
					ratingN++
					counted = true
				}
				if s.Potential != nil {
					potSum += *s.Potential
					potN++
					counted = true
				}
			}
			if counted {
				players++
			}
		}
		if ratingN == 0 && potN == 0 {
			continue
		}

		point := model.TeamSeasonRating{Season: season, Players: players}
		if ratingN > 0 {
			point.AvgOverallRating = round1(float64(ratingSum) / float64(ratingN))
		}
		if potN > 0 {
			point.AvgPotential = round1(float64(potSum) / float64(potN))
		}
		trend = append(trend, point)
	}

	sort.Slice(trend, func(i, j int) bool { return trend[i].Season < trend[j].Season })
	return trend, nil
}
