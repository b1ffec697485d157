package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/pable/go-soccer-stats/internal/stats"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeError maps the engine's error taxonomy onto HTTP statuses:
// invalid argument 400, not found 404, store failure 502.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, stats.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, stats.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, stats.ErrStoreUnavailable):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// limitParam reads a positive limit query parameter, clamped to
// maxListLimit. A missing or malformed value falls back to the default.
func limitParam(r *http.Request, def int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	overview, err := s.store.CountAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":     "soccer stats API",
		"overview": overview,
		"endpoints": []string{
			"/api/health",
			"/api/info",
			"/api/team/{team}",
			"/api/team/{team}/season/{season}",
			"/api/league/{league}/standings?season=",
			"/api/league/{league}/top-teams?season=&limit=",
			"/api/matches/high-scoring?team=&min_goals=",
			"/api/players/top?league=&limit=",
			"/api/player/{player}",
			"/api/scorelines/common?limit=",
			"/api/leagues/stats",
			"/api/teams/list",
			"/api/leagues/list",
			"/api/head-to-head?team1=&team2=",
		},
	})
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.TeamProfile(mux.Vars(r)["team"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleTeamSeason(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rec, err := s.engine.TeamSeasonRecord(vars["team"], vars["season"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	league := mux.Vars(r)["league"]
	season := r.URL.Query().Get("season")
	table, err := s.engine.LeagueStandings(league, season)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"league":    league,
		"season":    season,
		"standings": table,
	})
}

func (s *Server) handleTopTeams(w http.ResponseWriter, r *http.Request) {
	league := mux.Vars(r)["league"]
	season := r.URL.Query().Get("season")
	table, err := s.engine.LeagueStandings(league, season)
	if err != nil {
		writeError(w, err)
		return
	}
	limit := limitParam(r, defaultListLimit)
	if len(table) > limit {
		table = table[:limit]
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"league": league,
		"season": season,
		"teams":  table,
	})
}

func (s *Server) handleHighScoring(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minGoals := 3
	if v, err := strconv.Atoi(q.Get("min_goals")); err == nil && v > 0 {
		minGoals = v
	}
	matches, err := s.engine.HighScoringMatches(q.Get("team"), minGoals)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"team":      q.Get("team"),
		"min_goals": minGoals,
		"count":     len(matches),
		"matches":   matches,
	})
}

func (s *Server) handleTopPlayers(w http.ResponseWriter, r *http.Request) {
	entries, err := s.engine.TopPlayers(r.URL.Query().Get("league"), limitParam(r, defaultListLimit))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"league":  r.URL.Query().Get("league"),
		"players": entries,
	})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.PlayerProfile(mux.Vars(r)["player"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleScorelines(w http.ResponseWriter, r *http.Request) {
	tallies, err := s.engine.CommonScorelines(limitParam(r, defaultListLimit))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scorelines": tallies})
}

func (s *Server) handleLeagueStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.engine.LeagueGoalAverages()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leagues": out})
}

func (s *Server) handleTeamsList(w http.ResponseWriter, r *http.Request) {
	teams, err := s.store.ListTeams()
	if err != nil {
		writeError(w, err)
		return
	}
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		names = append(names, t.LongName)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_teams": len(names),
		"teams":       names,
	})
}

func (s *Server) handleLeaguesList(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.store.ListLeagues()
	if err != nil {
		writeError(w, err)
		return
	}
	names := make([]string, 0, len(leagues))
	for _, l := range leagues {
		names = append(names, l.Name)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_leagues": len(names),
		"leagues":       names,
	})
}

func (s *Server) handleHeadToHead(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rec, err := s.engine.HeadToHead(q.Get("team1"), q.Get("team2"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
