package stats

import (
	"fmt"
	"sort"

	"github.com/pable/go-soccer-stats/internal/model"
)

const profileRecentMatches = 10

// TeamProfile summarizes a team across every stored season: how much it
// played, how much it scored, which seasons it appears in, and its latest
// matches.
func (e *Engine) TeamProfile(team string) (*model.TeamProfile, error) {
	if team == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidArgument)
	}
	matches, err := e.facts.FindMatches(MatchFilter{Team: team, SortByDateDesc: true})
	if err != nil {
		return nil, storeErr(err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no matches for team %q", ErrNotFound, team)
	}

	p := &model.TeamProfile{Team: team, TotalMatches: len(matches)}
	seasons := make(map[string]bool)
	for _, m := range matches {
		seasons[m.Season] = true
		if m.HomeTeamName == team && m.HomeGoals != nil {
			p.TotalGoals += *m.HomeGoals
		} else if m.AwayTeamName == team && m.AwayGoals != nil {
			p.TotalGoals += *m.AwayGoals
		}
	}
	for s := range seasons {
		p.Seasons = append(p.Seasons, s)
	}
	sort.Strings(p.Seasons)

	recent := matches
	if len(recent) > profileRecentMatches {
		recent = recent[:profileRecentMatches]
	}
	p.RecentMatches = Project(recent)
	return p, nil
}

// PlayerProfile resolves a player by name and attaches the newest
// attribute snapshot and the size of the snapshot history.
func (e *Engine) PlayerProfile(playerName string) (*model.PlayerProfile, error) {
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

	profile := &model.PlayerProfile{
		PlayerName:    p.Name,
		Birthday:      p.Birthday,
		Height:        p.Height,
		Weight:        p.Weight,
		SnapshotCount: len(snaps),
	}
	if len(snaps) > 0 {
		s := snaps[len(snaps)-1]
		profile.Latest = &model.PlayerRatingPoint{
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
		}
	}
	return profile, nil
}
