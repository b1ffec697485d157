package storage

import (
	"testing"

	"github.com/pable/go-soccer-stats/internal/model"
	"github.com/pable/go-soccer-stats/internal/stats"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func intp(v int) *int { return &v }

func storedMatch(id int64, league, season, date, home, away string, hg, ag *int) model.Match {
	return model.Match{
		MatchID: id, LeagueID: 1, LeagueName: league, Season: season, Date: date,
		HomeTeamID: 10, HomeTeamName: home,
		AwayTeamID: 20, AwayTeamName: away,
		HomeGoals: hg, AwayGoals: ag,
		Result: stats.Classify(hg, ag),
	}
}

func TestFindMatchesFilters(t *testing.T) {
	db := openMemDB(t)
	err := db.InsertMatches([]model.Match{
		storedMatch(1, "Liga", "2015/2016", "2015-08-22", "FC Alpha", "FC Beta", intp(3), intp(1)),
		storedMatch(2, "Liga", "2015/2016", "2015-08-29", "FC Beta", "FC Alpha", intp(0), intp(0)),
		storedMatch(3, "Liga", "2016/2017", "2016-08-20", "FC Alpha", "FC Gamma", intp(4), intp(2)),
		storedMatch(4, "Cup", "2015/2016", "2015-09-05", "FC Alpha", "FC Beta", nil, nil),
	})
	if err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}

	bySeason, err := db.FindMatches(stats.MatchFilter{League: "Liga", Season: "2015/2016"})
	if err != nil {
		t.Fatalf("FindMatches league+season: %v", err)
	}
	if len(bySeason) != 2 {
		t.Errorf("league+season: got %d matches, want 2", len(bySeason))
	}

	byTeam, err := db.FindMatches(stats.MatchFilter{Team: "FC Alpha"})
	if err != nil {
		t.Fatalf("FindMatches team: %v", err)
	}
	if len(byTeam) != 4 {
		t.Errorf("team on either side: got %d matches, want 4", len(byTeam))
	}

	pairing, err := db.FindMatches(stats.MatchFilter{Team: "FC Alpha", Opponent: "FC Beta"})
	if err != nil {
		t.Fatalf("FindMatches pairing: %v", err)
	}
	if len(pairing) != 3 {
		t.Errorf("pairing in either arrangement: got %d matches, want 3", len(pairing))
	}

	// Threshold applies to whichever side the team occupied; the nil-goal
	// match never qualifies.
	scoring, err := db.FindMatches(stats.MatchFilter{Team: "FC Alpha", MinTeamGoals: 3})
	if err != nil {
		t.Fatalf("FindMatches min goals: %v", err)
	}
	if len(scoring) != 2 {
		t.Errorf("min goals: got %d matches, want 2", len(scoring))
	}

	recent, err := db.FindMatches(stats.MatchFilter{Team: "FC Alpha", SortByDateDesc: true, Limit: 2})
	if err != nil {
		t.Fatalf("FindMatches recent: %v", err)
	}
	if len(recent) != 2 || recent[0].Date != "2016-08-20" {
		t.Errorf("recent: got %+v, want newest two", recent)
	}
}

func TestFindMatchesNullGoalsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	if err := db.InsertMatches([]model.Match{
		storedMatch(1, "Liga", "2015/2016", "2015-08-22", "A", "B", nil, intp(2)),
	}); err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}

	out, err := db.FindMatches(stats.MatchFilter{})
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d matches, want 1", len(out))
	}
	if out[0].HomeGoals != nil {
		t.Errorf("home goals = %v, want nil", *out[0].HomeGoals)
	}
	if out[0].AwayGoals == nil || *out[0].AwayGoals != 2 {
		t.Errorf("away goals = %v, want 2", out[0].AwayGoals)
	}
	if out[0].Result != model.ResultUnknown {
		t.Errorf("result = %q, want unknown", out[0].Result)
	}
}

func TestSnapshotsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	err := db.InsertSnapshots([]model.PlayerAttributeSnapshot{
		{PlayerID: 7, Date: "2015-09-21", OverallRating: intp(94), PreferredFoot: "left", Finishing: intp(95)},
		{PlayerID: 7, Date: "2010-02-22", OverallRating: intp(90), PreferredFoot: "left"},
		{PlayerID: 8, Date: "2015-09-21", OverallRating: nil, PreferredFoot: "right"},
	})
	if err != nil {
		t.Fatalf("InsertSnapshots: %v", err)
	}

	snaps, err := db.FindSnapshots(stats.SnapshotFilter{PlayerID: 7, SortByDateAsc: true})
	if err != nil {
		t.Fatalf("FindSnapshots: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	if snaps[0].Date != "2010-02-22" {
		t.Errorf("not date ascending: %+v", snaps)
	}
	if snaps[1].Finishing == nil || *snaps[1].Finishing != 95 {
		t.Errorf("finishing = %v, want 95", snaps[1].Finishing)
	}

	all, err := db.FindSnapshots(stats.SnapshotFilter{})
	if err != nil {
		t.Fatalf("FindSnapshots all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d snapshots, want 3", len(all))
	}
}

func TestPlayersAndDirectory(t *testing.T) {
	db := openMemDB(t)
	if err := db.InsertPlayers([]model.Player{
		{PlayerID: 7, Name: "Lionel Messi", Birthday: "1987-06-24", Height: 170.18, Weight: 159},
		{PlayerID: 8, Name: "Arjen Robben", Birthday: "1984-01-23", Height: 180.34, Weight: 176},
	}); err != nil {
		t.Fatalf("InsertPlayers: %v", err)
	}
	if err := db.InsertTeams([]model.Team{
		{TeamID: 10, LongName: "FC Barcelona", ShortName: "BAR"},
		{TeamID: 20, LongName: "Ajax", ShortName: "AJA"},
	}); err != nil {
		t.Fatalf("InsertTeams: %v", err)
	}
	if err := db.InsertLeagues([]model.League{
		{LeagueID: 1, Name: "Spain LIGA BBVA", CountryName: "Spain"},
	}); err != nil {
		t.Fatalf("InsertLeagues: %v", err)
	}

	byName, err := db.FindPlayers(stats.PlayerFilter{Name: "Lionel Messi"})
	if err != nil {
		t.Fatalf("FindPlayers: %v", err)
	}
	if len(byName) != 1 || byName[0].PlayerID != 7 {
		t.Errorf("FindPlayers by name: %+v", byName)
	}

	teams, err := db.ListTeams()
	if err != nil {
		t.Fatalf("ListTeams: %v", err)
	}
	if len(teams) != 2 || teams[0].LongName != "Ajax" {
		t.Errorf("ListTeams not alphabetical: %+v", teams)
	}

	team, err := db.GetTeamByName("FC Barcelona")
	if err != nil {
		t.Fatalf("GetTeamByName: %v", err)
	}
	if team == nil || team.TeamID != 10 {
		t.Errorf("GetTeamByName: %+v", team)
	}
	missing, err := db.GetTeamByName("Nonexistent FC")
	if err != nil {
		t.Fatalf("GetTeamByName missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown team, got %+v", missing)
	}

	leagues, err := db.ListLeagues()
	if err != nil {
		t.Fatalf("ListLeagues: %v", err)
	}
	if len(leagues) != 1 || leagues[0].CountryName != "Spain" {
		t.Errorf("ListLeagues: %+v", leagues)
	}
}

func TestLineupPlayerIDs(t *testing.T) {
	db := openMemDB(t)
	if err := db.InsertMatches([]model.Match{
		storedMatch(1, "Liga", "2015/2016", "2015-08-22", "A", "B", intp(1), intp(0)),
		storedMatch(2, "Cup", "2015/2016", "2015-09-05", "A", "C", intp(2), intp(2)),
	}); err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}
	if err := db.InsertLineups([]Lineup{
		{MatchID: 1, PlayerID: 7, Side: "home", Slot: 1},
		{MatchID: 1, PlayerID: 8, Side: "away", Slot: 1},
		{MatchID: 2, PlayerID: 7, Side: "home", Slot: 1},
		{MatchID: 2, PlayerID: 9, Side: "away", Slot: 1},
	}); err != nil {
		t.Fatalf("InsertLineups: %v", err)
	}

	ids, err := db.LineupPlayerIDs(stats.MatchFilter{League: "Liga"})
	if err != nil {
		t.Fatalf("LineupPlayerIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("got %d player IDs for Liga, want 2", len(ids))
	}

	all, err := db.LineupPlayerIDs(stats.MatchFilter{})
	if err != nil {
		t.Fatalf("LineupPlayerIDs all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d distinct player IDs, want 3", len(all))
	}
}

func TestCountAllAndDrop(t *testing.T) {
	db := openMemDB(t)
	if err := db.InsertMatches([]model.Match{
		storedMatch(1, "Liga", "2015/2016", "2015-08-22", "A", "B", intp(1), intp(0)),
	}); err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}
	if err := db.InsertTeams([]model.Team{{TeamID: 10, LongName: "A"}}); err != nil {
		t.Fatalf("InsertTeams: %v", err)
	}

	o, err := db.CountAll()
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	if o.Matches != 1 || o.Teams != 1 {
		t.Errorf("overview = %+v", o)
	}

	if err := db.Drop(); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	o, err = db.CountAll()
	if err != nil {
		t.Fatalf("CountAll after drop: %v", err)
	}
	if o.Matches != 0 || o.Teams != 0 {
		t.Errorf("overview after drop = %+v", o)
	}
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	if err := db.InsertTeams([]model.Team{{TeamID: 10, LongName: "A", ShortName: "AAA"}}); err != nil {
		t.Fatalf("InsertTeams: %v", err)
	}

	cols, rows, err := db.QueryRaw("SELECT team_id, long_name FROM teams")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 2 || cols[0] != "team_id" {
		t.Errorf("columns = %v", cols)
	}
	if len(rows) != 1 || rows[0][1] != "A" {
		t.Errorf("rows = %v", rows)
	}

	if _, _, err := db.QueryRaw("DELETE FROM teams"); err == nil {
		t.Error("expected non-SELECT statement to be rejected")
	}
}
