package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/pable/go-soccer-stats/internal/model"
)

// TopPlayers ranks players by their mean overall rating across all rated
// snapshots, highest first, name ascending on ties. With a league set,
// only players who appeared in at least one lineup of that league are
// eligible. Players with no rated snapshot are omitted entirely.
func (e *Engine) TopPlayers(league string, limit int) ([]model.TopPlayerEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}

	var eligible map[int64]bool
	if league != "" {
		ids, err := e.facts.LineupPlayerIDs(MatchFilter{League: league})
		if err != nil {
			return nil, storeErr(err)
		}
		eligible = make(map[int64]bool, len(ids))
		for _, id := range ids {
			eligible[id] = true
		}
	}

	snaps, err := e.facts.FindSnapshots(SnapshotFilter{SortByDateAsc: true})
	if err != nil {
		return nil, storeErr(err)
	}

	type agg struct {
		sum, count, max int
		foot            string
	}
	byPlayer := make(map[int64]*agg)
	for _, s := range snaps {
		if eligible != nil && !eligible[s.PlayerID] {
			continue
		}
		if s.OverallRating == nil {
			continue
		}
		a := byPlayer[s.PlayerID]
		if a == nil {
			a = &agg{}
			byPlayer[s.PlayerID] = a
		}
		a.sum += *s.OverallRating
		a.count++
		if *s.OverallRating > a.max {
			a.max = *s.OverallRating
		}
		if a.foot == "" && s.PreferredFoot != "" {
			a.foot = s.PreferredFoot
		}
	}
	if len(byPlayer) == 0 {
		return []model.TopPlayerEntry{}, nil
	}

	players, err := e.facts.FindPlayers(PlayerFilter{})
	if err != nil {
		return nil, storeErr(err)
	}
	identity := make(map[int64]model.Player, len(players))
	for _, p := range players {
		identity[p.PlayerID] = p
	}

	out := make([]model.TopPlayerEntry, 0, len(byPlayer))
	for id, a := range byPlayer {
		p, ok := identity[id]
		if !ok {
			continue
		}
		out = append(out, model.TopPlayerEntry{
			PlayerName:    p.Name,
			AvgRating:     round1(float64(a.sum) / float64(a.count)),
			MaxRating:     a.max,
			Height:        p.Height,
			Weight:        p.Weight,
			PreferredFoot: a.foot,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
