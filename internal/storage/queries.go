package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pable/go-soccer-stats/internal/model"
	"github.com/pable/go-soccer-stats/internal/stats"
)

const matchColumns = `match_id, league_id, league_name, season, stage, match_date,
       home_team_id, home_team_name, away_team_id, away_team_name,
       home_goals, away_goals, result`

// FindMatches translates the engine's match filter to SQL. With Opponent
// set, Team and Opponent must occupy opposite sides in either arrangement;
// with MinTeamGoals set, the threshold applies to whichever side Team
// occupied.
func (db *DB) FindMatches(f stats.MatchFilter) ([]model.Match, error) {
	var conds []string
	var args []interface{}

	if f.League != "" {
		conds = append(conds, "league_name = ?")
		args = append(args, f.League)
	}
	if f.Season != "" {
		conds = append(conds, "season = ?")
		args = append(args, f.Season)
	}
	switch {
	case f.Team != "" && f.Opponent != "":
		conds = append(conds, `((home_team_name = ? AND away_team_name = ?) OR
		                        (home_team_name = ? AND away_team_name = ?))`)
		args = append(args, f.Team, f.Opponent, f.Opponent, f.Team)
	case f.Team != "":
		conds = append(conds, "(home_team_name = ? OR away_team_name = ?)")
		args = append(args, f.Team, f.Team)
	}
	if f.MinTeamGoals > 0 && f.Team != "" {
		conds = append(conds, `((home_team_name = ? AND home_goals >= ?) OR
		                        (away_team_name = ? AND away_goals >= ?))`)
		args = append(args, f.Team, f.MinTeamGoals, f.Team, f.MinTeamGoals)
	}

	query := "SELECT " + matchColumns + " FROM matches"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if f.SortByDateDesc {
		query += " ORDER BY match_date DESC, match_id DESC"
	} else {
		query += " ORDER BY match_date ASC, match_id ASC"
	}
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.MatchID, &m.LeagueID, &m.LeagueName, &m.Season, &m.Stage,
			&m.Date, &m.HomeTeamID, &m.HomeTeamName, &m.AwayTeamID, &m.AwayTeamName,
			&m.HomeGoals, &m.AwayGoals, &m.Result); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// FindSnapshots returns player attribute snapshots, optionally restricted
// to one player and ordered by snapshot date.
func (db *DB) FindSnapshots(f stats.SnapshotFilter) ([]model.PlayerAttributeSnapshot, error) {
	query := `SELECT player_id, snapshot_date, overall_rating, potential,
	       preferred_foot, attacking_work_rate, defensive_work_rate,
	       crossing, finishing, heading_accuracy, short_passing, volleys,
	       dribbling, curve, free_kick_accuracy, long_passing, ball_control,
	       acceleration, sprint_speed, agility, reactions, balance,
	       shot_power, jumping, stamina, strength, long_shots, aggression,
	       interceptions, positioning, vision, penalties, marking,
	       standing_tackle, sliding_tackle,
	       gk_diving, gk_handling, gk_kicking, gk_positioning, gk_reflexes
	FROM player_attributes`
	var args []interface{}
	if f.PlayerID != 0 {
		query += " WHERE player_id = ?"
		args = append(args, f.PlayerID)
	}
	if f.SortByDateAsc {
		query += " ORDER BY snapshot_date ASC"
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerAttributeSnapshot
	for rows.Next() {
		var s model.PlayerAttributeSnapshot
		if err := rows.Scan(&s.PlayerID, &s.Date, &s.OverallRating, &s.Potential,
			&s.PreferredFoot, &s.AttackingWorkRate, &s.DefensiveWorkRate,
			&s.Crossing, &s.Finishing, &s.HeadingAccuracy, &s.ShortPassing, &s.Volleys,
			&s.Dribbling, &s.Curve, &s.FreeKickAccuracy, &s.LongPassing, &s.BallControl,
			&s.Acceleration, &s.SprintSpeed, &s.Agility, &s.Reactions, &s.Balance,
			&s.ShotPower, &s.Jumping, &s.Stamina, &s.Strength, &s.LongShots, &s.Aggression,
			&s.Interceptions, &s.Positioning, &s.Vision, &s.Penalties, &s.Marking,
			&s.StandingTackle, &s.SlidingTackle,
			&s.GKDiving, &s.GKHandling, &s.GKKicking, &s.GKPositioning, &s.GKReflexes); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// FindPlayers returns player identities, optionally by exact name.
func (db *DB) FindPlayers(f stats.PlayerFilter) ([]model.Player, error) {
	query := "SELECT player_id, name, birthday, height, weight FROM players"
	var args []interface{}
	if f.Name != "" {
		query += " WHERE name = ?"
		args = append(args, f.Name)
	}
	query += " ORDER BY name ASC"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.PlayerID, &p.Name, &p.Birthday, &p.Height, &p.Weight); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// LineupPlayerIDs returns the distinct players who appeared in at least
// one match satisfying the filter.
func (db *DB) LineupPlayerIDs(f stats.MatchFilter) ([]int64, error) {
	var conds []string
	var args []interface{}
	if f.League != "" {
		conds = append(conds, "m.league_name = ?")
		args = append(args, f.League)
	}
	if f.Season != "" {
		conds = append(conds, "m.season = ?")
		args = append(args, f.Season)
	}
	if f.Team != "" {
		conds = append(conds, "(m.home_team_name = ? OR m.away_team_name = ?)")
		args = append(args, f.Team, f.Team)
	}

	query := `SELECT DISTINCT l.player_id
	FROM match_lineups l JOIN matches m ON m.match_id = l.match_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ListTeams returns all stored teams ordered by long name.
func (db *DB) ListTeams() ([]model.Team, error) {
	rows, err := db.conn.Query("SELECT team_id, long_name, short_name FROM teams ORDER BY long_name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.TeamID, &t.LongName, &t.ShortName); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListLeagues returns all stored leagues ordered by name.
func (db *DB) ListLeagues() ([]model.League, error) {
	rows, err := db.conn.Query("SELECT league_id, name, country_name FROM leagues ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.League
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.LeagueID, &l.Name, &l.CountryName); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetTeamByName finds a team by exact long name. Returns nil when absent.
func (db *DB) GetTeamByName(name string) (*model.Team, error) {
	var t model.Team
	err := db.conn.QueryRow(
		"SELECT team_id, long_name, short_name FROM teams WHERE long_name = ?", name).
		Scan(&t.TeamID, &t.LongName, &t.ShortName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Overview holds store-wide row counts for the summary command and the
// info endpoint.
type Overview struct {
	Leagues   int `json:"leagues"`
	Teams     int `json:"teams"`
	Players   int `json:"players"`
	Matches   int `json:"matches"`
	Snapshots int `json:"attribute_snapshots"`
}

// CountAll tallies the rows of every fact table.
func (db *DB) CountAll() (*Overview, error) {
	var o Overview
	for _, c := range []struct {
		table string
		dst   *int
	}{
		{"leagues", &o.Leagues},
		{"teams", &o.Teams},
		{"players", &o.Players},
		{"matches", &o.Matches},
		{"player_attributes", &o.Snapshots},
	} {
		if err := db.conn.QueryRow("SELECT COUNT(1) FROM " + c.table).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return &o, nil
}

// QueryRaw runs an arbitrary read-only SELECT and returns column names
// plus stringified rows. Backs the sql command.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	trimmed := strings.TrimSpace(strings.ToUpper(query))
	if !strings.HasPrefix(trimmed, "SELECT") && !strings.HasPrefix(trimmed, "WITH") {
		return nil, nil, fmt.Errorf("only SELECT queries are allowed")
	}

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
