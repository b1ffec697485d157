package stats

import (
	"fmt"

	"github.com/pable/go-soccer-stats/internal/model"
)

// RatingSeries returns one player's attribute snapshots in chronological
// order, projected to the trend fields. NotFound means the name resolved
// to no identity; a known player with no snapshots yields an empty
// series. Snapshots with a nil overall rating stay in the series;
// consumers decide how to render gaps.
func (e *Engine) RatingSeries(playerName string) ([]model.PlayerRatingPoint, error) {
	if playerName == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidArgument)
	}
	players, err := e.facts.FindPlayers(PlayerFilter{Name: playerName})
	if err != nil {
		return nil, storeErr(err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no player named %q", ErrNotFound, playerName)
	}
	p := players[0]

	snaps, err := e.facts.FindSnapshots(SnapshotFilter{PlayerID: p.PlayerID, SortByDateAsc: true})
	if err != nil {
		return nil, storeErr(err)
	}
	series := make([]model.PlayerRatingPoint, 0, len(snaps))
	for _, s := range snaps {
		series = append(series, model.PlayerRatingPoint{
			PlayerName:    p.Name,
			Date:          s.Date,
			OverallRating: s.OverallRating,
			Potential:     s.Potential,
			Finishing:     s.Finishing,
			ShortPassing:  s.ShortPassing,
			Dribbling:     s.Dribbling,
			SprintSpeed:   s.SprintSpeed,
			Stamina:       s.Stamina,
			Strength:      s.Strength,
		})
	}
	return series, nil
}
