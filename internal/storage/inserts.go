package storage

import (
	"fmt"

	"github.com/pable/go-soccer-stats/internal/model"
)

// InsertLeagues bulk-inserts league records in a transaction. Uses
// INSERT OR REPLACE so reloading the same dataset is idempotent.
func (db *DB) InsertLeagues(leagues []model.League) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR REPLACE INTO leagues(league_id, name, country_name) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range leagues {
		if _, err := stmt.Exec(l.LeagueID, l.Name, l.CountryName); err != nil {
			return fmt.Errorf("insert league %d: %w", l.LeagueID, err)
		}
	}
	return tx.Commit()
}

// InsertTeams bulk-inserts team records in a transaction.
func (db *DB) InsertTeams(teams []model.Team) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR REPLACE INTO teams(team_id, long_name, short_name) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range teams {
		if _, err := stmt.Exec(t.TeamID, t.LongName, t.ShortName); err != nil {
			return fmt.Errorf("insert team %d: %w", t.TeamID, err)
		}
	}
	return tx.Commit()
}

// InsertPlayers bulk-inserts player identity records in a transaction.
func (db *DB) InsertPlayers(players []model.Player) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR REPLACE INTO players(player_id, name, birthday, height, weight) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.PlayerID, p.Name, p.Birthday, p.Height, p.Weight); err != nil {
			return fmt.Errorf("insert player %d: %w", p.PlayerID, err)
		}
	}
	return tx.Commit()
}

// InsertMatches bulk-inserts match records in a transaction.
func (db *DB) InsertMatches(matches []model.Match) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(
			match_id, league_id, league_name, season, stage, match_date,
			home_team_id, home_team_name, away_team_id, away_team_name,
			home_goals, away_goals, result
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range matches {
		_, err := stmt.Exec(
			m.MatchID, m.LeagueID, m.LeagueName, m.Season, m.Stage, m.Date,
			m.HomeTeamID, m.HomeTeamName, m.AwayTeamID, m.AwayTeamName,
			m.HomeGoals, m.AwayGoals, string(m.Result),
		)
		if err != nil {
			return fmt.Errorf("insert match %d: %w", m.MatchID, err)
		}
	}
	return tx.Commit()
}

// Lineup is one player appearance in one match.
type Lineup struct {
	MatchID  int64
	PlayerID int64
	Side     string // "home" or "away"
	Slot     int    // 1..11
}

// InsertLineups bulk-inserts lineup appearances in a transaction.
func (db *DB) InsertLineups(lineups []Lineup) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR REPLACE INTO match_lineups(match_id, player_id, side, slot) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range lineups {
		if _, err := stmt.Exec(l.MatchID, l.PlayerID, l.Side, l.Slot); err != nil {
			return fmt.Errorf("insert lineup match %d slot %s/%d: %w", l.MatchID, l.Side, l.Slot, err)
		}
	}
	return tx.Commit()
}

// InsertSnapshots bulk-inserts player attribute snapshots in a transaction.
func (db *DB) InsertSnapshots(snaps []model.PlayerAttributeSnapshot) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_attributes(
			player_id, snapshot_date, overall_rating, potential,
			preferred_foot, attacking_work_rate, defensive_work_rate,
			crossing, finishing, heading_accuracy, short_passing, volleys,
			dribbling, curve, free_kick_accuracy, long_passing, ball_control,
			acceleration, sprint_speed, agility, reactions, balance,
			shot_power, jumping, stamina, strength, long_shots, aggression,
			interceptions, positioning, vision, penalties, marking,
			standing_tackle, sliding_tackle,
			gk_diving, gk_handling, gk_kicking, gk_positioning, gk_reflexes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range snaps {
		_, err := stmt.Exec(
			s.PlayerID, s.Date, s.OverallRating, s.Potential,
			s.PreferredFoot, s.AttackingWorkRate, s.DefensiveWorkRate,
			s.Crossing, s.Finishing, s.HeadingAccuracy, s.ShortPassing, s.Volleys,
			s.Dribbling, s.Curve, s.FreeKickAccuracy, s.LongPassing, s.BallControl,
			s.Acceleration, s.SprintSpeed, s.Agility, s.Reactions, s.Balance,
			s.ShotPower, s.Jumping, s.Stamina, s.Strength, s.LongShots, s.Aggression,
			s.Interceptions, s.Positioning, s.Vision, s.Penalties, s.Marking,
			s.StandingTackle, s.SlidingTackle,
			s.GKDiving, s.GKHandling, s.GKKicking, s.GKPositioning, s.GKReflexes,
		)
		if err != nil {
			return fmt.Errorf("insert snapshot player %d %s: %w", s.PlayerID, s.Date, err)
		}
	}
	return tx.Commit()
}
