package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pable/go-soccer-stats/internal/model"
	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

func intp(v int) *int { return &v }

// newTestServer seeds an in-memory store with a two-team league and one
// rated player.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mk := func(id int64, date, home, away string, hg, ag int) model.Match {
		return model.Match{
			MatchID: id, LeagueID: 1, LeagueName: "Liga", Season: "2015/2016", Date: date,
			HomeTeamID: 10, HomeTeamName: home, AwayTeamID: 20, AwayTeamName: away,
			HomeGoals: intp(hg), AwayGoals: intp(ag),
			Result:    stats.Classify(intp(hg), intp(ag)),
		}
	}
	if err := db.InsertMatches([]model.Match{
		mk(1, "2015-08-22", "FC Alpha", "FC Beta", 2, 0),
		mk(2, "2015-08-29", "FC Beta", "FC Alpha", 1, 1),
	}); err != nil {
		t.Fatalf("seed matches: %v", err)
	}
	if err := db.InsertTeams([]model.Team{
		{TeamID: 10, LongName: "FC Alpha", ShortName: "ALP"},
		{TeamID: 20, LongName: "FC Beta", ShortName: "BET"},
	}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}
	if err := db.InsertLeagues([]model.League{
		{LeagueID: 1, Name: "Liga", CountryName: "Spain"},
	}); err != nil {
		t.Fatalf("seed leagues: %v", err)
	}
	if err := db.InsertPlayers([]model.Player{
		{PlayerID: 7, Name: "Alice Aster", Height: 170, Weight: 150},
	}); err != nil {
		t.Fatalf("seed players: %v", err)
	}
	if err := db.InsertSnapshots([]model.PlayerAttributeSnapshot{
		{PlayerID: 7, Date: "2015-09-21", OverallRating: intp(90), PreferredFoot: "left"},
	}); err != nil {
		t.Fatalf("seed snapshots: %v", err)
	}
	if err := db.InsertLineups([]storage.Lineup{
		{MatchID: 1, PlayerID: 7, Side: "home", Slot: 1},
	}); err != nil {
		t.Fatalf("seed lineups: %v", err)
	}

	return NewServer(":0", db).routes()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestServer(t)

	if rr := get(t, h, "/api/health"); rr.Code != http.StatusOK {
		t.Errorf("health status = %d", rr.Code)
	}

	rr := get(t, h, "/api/info")
	if rr.Code != http.StatusOK {
		t.Fatalf("info status = %d", rr.Code)
	}
	var info struct {
		Overview struct {
			Matches int `json:"matches"`
		} `json:"overview"`
		Endpoints []string `json:"endpoints"`
	}
	decode(t, rr, &info)
	if info.Overview.Matches != 2 {
		t.Errorf("overview matches = %d, want 2", info.Overview.Matches)
	}
	if len(info.Endpoints) == 0 {
		t.Error("info lists no endpoints")
	}
}

func TestStandingsEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/league/Liga/standings?season=2015/2016")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Standings []model.TeamSeasonRecord `json:"standings"`
	}
	decode(t, rr, &resp)
	if len(resp.Standings) != 2 {
		t.Fatalf("got %d rows, want 2", len(resp.Standings))
	}
	if resp.Standings[0].Team != "FC Alpha" || resp.Standings[0].Points != 4 {
		t.Errorf("leader = %+v", resp.Standings[0])
	}

	// Missing season is a client error, mirroring the engine's taxonomy.
	if rr := get(t, h, "/api/league/Liga/standings"); rr.Code != http.StatusBadRequest {
		t.Errorf("missing season status = %d, want 400", rr.Code)
	}
}

func TestTeamSeasonEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/team/FC%20Alpha/season/2015/2016")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var rec model.TeamSeasonRecord
	decode(t, rr, &rec)
	if rec.Wins != 1 || rec.Draws != 1 || rec.Points != 4 {
		t.Errorf("record = %+v", rec)
	}

	if rr := get(t, h, "/api/team/Ghost%20FC/season/2015/2016"); rr.Code != http.StatusNotFound {
		t.Errorf("unknown team status = %d, want 404", rr.Code)
	}
}

func TestHeadToHeadEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/head-to-head?team1=FC%20Alpha&team2=FC%20Beta")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var rec model.HeadToHeadRecord
	decode(t, rr, &rec)
	if rec.TotalMatches != 2 || rec.Team1Wins != 1 || rec.Draws != 1 {
		t.Errorf("record = %+v", rec)
	}

	if rr := get(t, h, "/api/head-to-head?team1=FC%20Alpha"); rr.Code != http.StatusBadRequest {
		t.Errorf("missing team2 status = %d, want 400", rr.Code)
	}
}

func TestTopPlayersEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/players/top?league=Liga&limit=5")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Players []model.TopPlayerEntry `json:"players"`
	}
	decode(t, rr, &resp)
	if len(resp.Players) != 1 || resp.Players[0].PlayerName != "Alice Aster" {
		t.Errorf("players = %+v", resp.Players)
	}
}

func TestPlayerEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/player/Alice%20Aster")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var profile model.PlayerProfile
	decode(t, rr, &profile)
	if profile.SnapshotCount != 1 || profile.Latest == nil {
		t.Errorf("profile = %+v", profile)
	}

	if rr := get(t, h, "/api/player/Nobody"); rr.Code != http.StatusNotFound {
		t.Errorf("unknown player status = %d, want 404", rr.Code)
	}
}

func TestHighScoringEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/matches/high-scoring?team=FC%20Alpha&min_goals=2")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Count   int                     `json:"count"`
		Matches []model.MatchProjection `json:"matches"`
	}
	decode(t, rr, &resp)
	if resp.Count != 1 || resp.Matches[0].Scoreline != "2-0" {
		t.Errorf("resp = %+v", resp)
	}

	if rr := get(t, h, "/api/matches/high-scoring"); rr.Code != http.StatusBadRequest {
		t.Errorf("missing team status = %d, want 400", rr.Code)
	}
}

func TestListEndpoints(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/teams/list")
	if rr.Code != http.StatusOK {
		t.Fatalf("teams status = %d", rr.Code)
	}
	var teams struct {
		TotalTeams int      `json:"total_teams"`
		Teams      []string `json:"teams"`
	}
	decode(t, rr, &teams)
	if teams.TotalTeams != 2 || teams.Teams[0] != "FC Alpha" {
		t.Errorf("teams = %+v", teams)
	}

	rr = get(t, h, "/api/leagues/list")
	if rr.Code != http.StatusOK {
		t.Fatalf("leagues status = %d", rr.Code)
	}
	var leagues struct {
		TotalLeagues int `json:"total_leagues"`
	}
	decode(t, rr, &leagues)
	if leagues.TotalLeagues != 1 {
		t.Errorf("leagues = %+v", leagues)
	}
}

func TestScorelinesEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/scorelines/common?limit=1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Scorelines []model.ScorelineTally `json:"scorelines"`
	}
	decode(t, rr, &resp)
	if len(resp.Scorelines) != 1 {
		t.Errorf("scorelines = %+v", resp.Scorelines)
	}
}

func TestLeagueStatsEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := get(t, h, "/api/leagues/stats")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Leagues []model.LeagueGoalStats `json:"leagues"`
	}
	decode(t, rr, &resp)
	if len(resp.Leagues) != 1 || resp.Leagues[0].AvgGoalsPerMatch != 2.0 {
		t.Errorf("leagues = %+v", resp.Leagues)
	}
}
