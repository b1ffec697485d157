// Package report renders engine output as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pable/go-soccer-stats/internal/model"
	"github.com/pable/go-soccer-stats/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func intCell(v *int) string {
	if v == nil {
		return "—"
	}
	return strconv.Itoa(*v)
}

// PrintStandings renders a league table.
// Columns: POS | TEAM | MP | W | D | L | GF | GA | GD | PTS
func PrintStandings(w io.Writer, league, season string, table []model.TeamSeasonRecord) {
	fmt.Fprintf(w, "\n%s — %s\n\n", league, season)

	t := newTable(w)
	t.Header("POS", "TEAM", "MP", "W", "D", "L", "GF", "GA", "GD", "PTS")
	for _, r := range table {
		t.Append(
			strconv.Itoa(r.Position),
			r.Team,
			strconv.Itoa(r.MatchesPlayed),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.GoalsScored),
			strconv.Itoa(r.GoalsConceded),
			fmt.Sprintf("%+d", r.GoalDifference),
			strconv.Itoa(r.Points),
		)
	}
	t.Render()
}

// PrintSeasonRecord renders one team-season tally.
func PrintSeasonRecord(w io.Writer, r model.TeamSeasonRecord) {
	fmt.Fprintf(w, "\n%s — %s\n\n", r.Team, r.Season)

	t := newTable(w)
	t.Header("MP", "W", "D", "L", "GF", "GA", "GD", "PTS")
	t.Append(
		strconv.Itoa(r.MatchesPlayed),
		strconv.Itoa(r.Wins),
		strconv.Itoa(r.Draws),
		strconv.Itoa(r.Losses),
		strconv.Itoa(r.GoalsScored),
		strconv.Itoa(r.GoalsConceded),
		fmt.Sprintf("%+d", r.GoalDifference),
		strconv.Itoa(r.Points),
	)
	t.Render()
}

// PrintHeadToHead renders the all-time tally between two teams.
func PrintHeadToHead(w io.Writer, r model.HeadToHeadRecord) {
	fmt.Fprintf(w, "\n%s vs %s — %d meetings\n\n", r.Team1, r.Team2, r.TotalMatches)

	t := newTable(w)
	t.Header(r.Team1+" WINS", "DRAWS", r.Team2+" WINS")
	t.Append(
		strconv.Itoa(r.Team1Wins),
		strconv.Itoa(r.Draws),
		strconv.Itoa(r.Team2Wins),
	)
	t.Render()
}

// PrintScorelines renders the most common scorelines.
func PrintScorelines(w io.Writer, tallies []model.ScorelineTally) {
	t := newTable(w)
	t.Header("SCORE", "HOME", "AWAY", "COUNT")
	for _, s := range tallies {
		t.Append(
			s.Scoreline,
			strconv.Itoa(s.HomeGoals),
			strconv.Itoa(s.AwayGoals),
			strconv.Itoa(s.Occurrences),
		)
	}
	t.Render()
}

// PrintRatingSeries renders a player's attribute history, oldest first.
func PrintRatingSeries(w io.Writer, series []model.PlayerRatingPoint) {
	if len(series) > 0 {
		fmt.Fprintf(w, "\n%s — %d snapshots\n\n", series[0].PlayerName, len(series))
	}

	t := newTable(w)
	t.Header("DATE", "OVERALL", "POTENTIAL", "FINISH", "PASS", "DRIBBLE", "SPEED", "STAMINA", "STRENGTH")
	for _, p := range series {
		t.Append(
			p.Date,
			intCell(p.OverallRating),
			intCell(p.Potential),
			intCell(p.Finishing),
			intCell(p.ShortPassing),
			intCell(p.Dribbling),
			intCell(p.SprintSpeed),
			intCell(p.Stamina),
			intCell(p.Strength),
		)
	}
	t.Render()
}

// PrintTeamTrend renders a team's season-over-season roster ratings.
func PrintTeamTrend(w io.Writer, team string, trend []model.TeamSeasonRating) {
	fmt.Fprintf(w, "\n%s — roster rating by season\n\n", team)

	t := newTable(w)
	t.Header("SEASON", "AVG RATING", "AVG POTENTIAL", "PLAYERS")
	for _, p := range trend {
		t.Append(
			p.Season,
			fmt.Sprintf("%.1f", p.AvgOverallRating),
			fmt.Sprintf("%.1f", p.AvgPotential),
			strconv.Itoa(p.Players),
		)
	}
	t.Render()
}

// PrintTopPlayers renders the top-player ranking.
func PrintTopPlayers(w io.Writer, entries []model.TopPlayerEntry) {
	t := newTable(w)
	t.Header("#", "PLAYER", "AVG", "MAX", "HEIGHT", "WEIGHT", "FOOT")
	for i, e := range entries {
		t.Append(
			strconv.Itoa(i+1),
			e.PlayerName,
			fmt.Sprintf("%.1f", e.AvgRating),
			strconv.Itoa(e.MaxRating),
			fmt.Sprintf("%.0fcm", e.Height),
			strconv.Itoa(e.Weight),
			e.PreferredFoot,
		)
	}
	t.Render()
}

// PrintMatches renders a match list.
func PrintMatches(w io.Writer, matches []model.MatchProjection) {
	t := newTable(w)
	t.Header("DATE", "LEAGUE", "SEASON", "HOME", "SCORE", "AWAY")
	for _, m := range matches {
		t.Append(m.Date, m.LeagueName, m.Season, m.HomeTeamName, m.Scoreline, m.AwayTeamName)
	}
	t.Render()
}

// PrintLeagueStats renders per-league scoring averages.
func PrintLeagueStats(w io.Writer, leagues []model.LeagueGoalStats) {
	t := newTable(w)
	t.Header("LEAGUE", "MATCHES", "GOALS", "AVG/MATCH", "AVG HOME", "AVG AWAY")
	for _, l := range leagues {
		t.Append(
			l.LeagueName,
			strconv.Itoa(l.TotalMatches),
			strconv.Itoa(l.TotalGoals),
			fmt.Sprintf("%.2f", l.AvgGoalsPerMatch),
			fmt.Sprintf("%.2f", l.AvgHomeGoals),
			fmt.Sprintf("%.2f", l.AvgAwayGoals),
		)
	}
	t.Render()
}

// PrintTeams renders the team directory.
func PrintTeams(w io.Writer, teams []model.Team) {
	t := newTable(w)
	t.Header("ID", "TEAM", "SHORT")
	for _, team := range teams {
		t.Append(strconv.FormatInt(team.TeamID, 10), team.LongName, team.ShortName)
	}
	t.Render()
}

// PrintLeagues renders the league directory.
func PrintLeagues(w io.Writer, leagues []model.League) {
	t := newTable(w)
	t.Header("ID", "LEAGUE", "COUNTRY")
	for _, l := range leagues {
		t.Append(strconv.FormatInt(l.LeagueID, 10), l.Name, l.CountryName)
	}
	t.Render()
}

// PrintOverview renders store-wide row counts.
func PrintOverview(w io.Writer, o storage.Overview) {
	t := newTable(w)
	t.Header("LEAGUES", "TEAMS", "PLAYERS", "MATCHES", "SNAPSHOTS")
	t.Append(
		strconv.Itoa(o.Leagues),
		strconv.Itoa(o.Teams),
		strconv.Itoa(o.Players),
		strconv.Itoa(o.Matches),
		strconv.Itoa(o.Snapshots),
	)
	t.Render()
}

// PrintRaw renders an ad-hoc query result.
func PrintRaw(w io.Writer, cols []string, rows [][]string) {
	t := newTable(w)
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.Header(header...)
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		t.Append(cells...)
	}
	t.Render()
}
