package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pable/go-soccer-stats/internal/model"
	"github.com/pable/go-soccer-stats/internal/stats"
)

// importBatchSize bounds how many rows accumulate before a bulk insert.
const importBatchSize = 1000

// ImportReport tallies how many rows of each kind a load produced.
type ImportReport struct {
	Leagues   int
	Teams     int
	Players   int
	Matches   int
	Lineups   int
	Snapshots int
}

// ImportDataset loads the European Soccer Dataset SQLite file at srcPath
// into the fact store. League and team names are denormalized onto each
// match, dates reduce to "2006-01-02" (unparsable dates become empty),
// and the stored result is derived from the goal counts. Reloading the
// same file replaces rows in place.
func (db *DB) ImportDataset(srcPath string) (*ImportReport, error) {
	src, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", srcPath))
	if err != nil {
		return nil, fmt.Errorf("open source dataset: %w", err)
	}
	defer src.Close()
	if err := src.Ping(); err != nil {
		return nil, fmt.Errorf("open source dataset: %w", err)
	}

	rep := &ImportReport{}
	if rep.Leagues, err = db.importLeagues(src); err != nil {
		return nil, fmt.Errorf("import leagues: %w", err)
	}
	if rep.Teams, err = db.importTeams(src); err != nil {
		return nil, fmt.Errorf("import teams: %w", err)
	}
	if rep.Players, err = db.importPlayers(src); err != nil {
		return nil, fmt.Errorf("import players: %w", err)
	}
	if rep.Matches, rep.Lineups, err = db.importMatches(src); err != nil {
		return nil, fmt.Errorf("import matches: %w", err)
	}
	if rep.Snapshots, err = db.importSnapshots(src); err != nil {
		return nil, fmt.Errorf("import player attributes: %w", err)
	}
	return rep, nil
}

// cleanDate reduces a source timestamp ("2008-08-17 00:00:00" or bare
// date) to "2006-01-02". Anything unparsable becomes the empty string.
func cleanDate(s string) string {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func (db *DB) importLeagues(src *sql.DB) (int, error) {
	rows, err := src.Query(`
		SELECT l.id, l.name, COALESCE(c.name, '')
		FROM League l
		LEFT JOIN Country c ON l.country_id = c.id`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var leagues []model.League
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.LeagueID, &l.Name, &l.CountryName); err != nil {
			return 0, err
		}
		leagues = append(leagues, l)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return len(leagues), db.InsertLeagues(leagues)
}

func (db *DB) importTeams(src *sql.DB) (int, error) {
	rows, err := src.Query(`
		SELECT team_api_id, COALESCE(team_long_name, ''), COALESCE(team_short_name, '')
		FROM Team WHERE team_api_id IS NOT NULL`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := 0
	var batch []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.TeamID, &t.LongName, &t.ShortName); err != nil {
			return total, err
		}
		batch = append(batch, t)
		if len(batch) >= importBatchSize {
			if err := db.InsertTeams(batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := rows.Err(); err != nil {
		return total, err
	}
	if err := db.InsertTeams(batch); err != nil {
		return total, err
	}
	return total + len(batch), nil
}

func (db *DB) importPlayers(src *sql.DB) (int, error) {
	rows, err := src.Query(`
		SELECT player_api_id, COALESCE(player_name, ''), COALESCE(birthday, ''),
		       COALESCE(height, 0), COALESCE(weight, 0)
		FROM Player WHERE player_api_id IS NOT NULL`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := 0
	var batch []model.Player
	for rows.Next() {
		var p model.Player
		var birthday string
		if err := rows.Scan(&p.PlayerID, &p.Name, &birthday, &p.Height, &p.Weight); err != nil {
			return total, err
		}
		p.Birthday = cleanDate(birthday)
		batch = append(batch, p)
		if len(batch) >= importBatchSize {
			if err := db.InsertPlayers(batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := rows.Err(); err != nil {
		return total, err
	}
	if err := db.InsertPlayers(batch); err != nil {
		return total, err
	}
	return total + len(batch), nil
}

func (db *DB) importMatches(src *sql.DB) (matches, lineups int, err error) {
	// 2x11 lineup slots per match; NULL slots are skipped.
	lineupCols := ""
	for i := 1; i <= 11; i++ {
		lineupCols += fmt.Sprintf(", m.home_player_%d", i)
	}
	for i := 1; i <= 11; i++ {
		lineupCols += fmt.Sprintf(", m.away_player_%d", i)
	}

	rows, err := src.Query(`
		SELECT m.id, m.league_id, COALESCE(l.name, ''),
		       COALESCE(m.season, ''), COALESCE(m.stage, 0), COALESCE(m.date, ''),
		       m.home_team_api_id, COALESCE(ht.team_long_name, ''),
		       m.away_team_api_id, COALESCE(at.team_long_name, ''),
		       m.home_team_goal, m.away_team_goal` + lineupCols + `
		FROM Match m
		LEFT JOIN League l ON m.league_id = l.id
		LEFT JOIN Team ht ON m.home_team_api_id = ht.team_api_id
		LEFT JOIN Team at ON m.away_team_api_id = at.team_api_id`)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	var matchBatch []model.Match
	var lineupBatch []Lineup
	flush := func() error {
		if err := db.InsertMatches(matchBatch); err != nil {
			return err
		}
		if err := db.InsertLineups(lineupBatch); err != nil {
			return err
		}
		matches += len(matchBatch)
		lineups += len(lineupBatch)
		matchBatch = matchBatch[:0]
		lineupBatch = lineupBatch[:0]
		return nil
	}

	for rows.Next() {
		var m model.Match
		var date string
		slots := make([]*int64, 22)
		dests := []interface{}{
			&m.MatchID, &m.LeagueID, &m.LeagueName,
			&m.Season, &m.Stage, &date,
			&m.HomeTeamID, &m.HomeTeamName,
			&m.AwayTeamID, &m.AwayTeamName,
			&m.HomeGoals, &m.AwayGoals,
		}
		for i := range slots {
			dests = append(dests, &slots[i])
		}
		if err := rows.Scan(dests...); err != nil {
			return matches, lineups, err
		}
		m.Date = cleanDate(date)
		m.Result = stats.Classify(m.HomeGoals, m.AwayGoals)
		matchBatch = append(matchBatch, m)

		for i, id := range slots {
			if id == nil {
				continue
			}
			side, slot := "home", i+1
			if i >= 11 {
				side, slot = "away", i-10
			}
			lineupBatch = append(lineupBatch, Lineup{
				MatchID: m.MatchID, PlayerID: *id, Side: side, Slot: slot,
			})
		}

		if len(matchBatch) >= importBatchSize {
			if err := flush(); err != nil {
				return matches, lineups, err
			}
		}
	}
	if err := rows.Err(); err != nil {
		return matches, lineups, err
	}
	return matches, lineups, flush()
}

func (db *DB) importSnapshots(src *sql.DB) (int, error) {
	rows, err := src.Query(`
		SELECT player_api_id, COALESCE(date, ''), overall_rating, potential,
		       COALESCE(preferred_foot, ''), COALESCE(attacking_work_rate, ''),
		       COALESCE(defensive_work_rate, ''),
		       crossing, finishing, heading_accuracy, short_passing, volleys,
		       dribbling, curve, free_kick_accuracy, long_passing, ball_control,
		       acceleration, sprint_speed, agility, reactions, balance,
		       shot_power, jumping, stamina, strength, long_shots, aggression,
		       interceptions, positioning, vision, penalties, marking,
		       standing_tackle, sliding_tackle,
		       gk_diving, gk_handling, gk_kicking, gk_positioning, gk_reflexes
		FROM Player_Attributes WHERE player_api_id IS NOT NULL`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := 0
	var batch []model.PlayerAttributeSnapshot
	for rows.Next() {
		var s model.PlayerAttributeSnapshot
		var date string
		if err := rows.Scan(&s.PlayerID, &date, &s.OverallRating, &s.Potential,
			&s.PreferredFoot, &s.AttackingWorkRate, &s.DefensiveWorkRate,
			&s.Crossing, &s.Finishing, &s.HeadingAccuracy, &s.ShortPassing, &s.Volleys,
			&s.Dribbling, &s.Curve, &s.FreeKickAccuracy, &s.LongPassing, &s.BallControl,
			&s.Acceleration, &s.SprintSpeed, &s.Agility, &s.Reactions, &s.Balance,
			&s.ShotPower, &s.Jumping, &s.Stamina, &s.Strength, &s.LongShots, &s.Aggression,
			&s.Interceptions, &s.Positioning, &s.Vision, &s.Penalties, &s.Marking,
			&s.StandingTackle, &s.SlidingTackle,
			&s.GKDiving, &s.GKHandling, &s.GKKicking, &s.GKPositioning, &s.GKReflexes); err != nil {
			return total, err
		}
		s.Date = cleanDate(date)
		batch = append(batch, s)
		if len(batch) >= importBatchSize {
			if err := db.InsertSnapshots(batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := rows.Err(); err != nil {
		return total, err
	}
	if err := db.InsertSnapshots(batch); err != nil {
		return total, err
	}
	return total + len(batch), nil
}
