// Package api serves the aggregation engine over HTTP.
package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/pable/go-soccer-stats/internal/stats"
	"github.com/pable/go-soccer-stats/internal/storage"
)

// Server exposes the engine and the store directory as a JSON API.
type Server struct {
	addr       string
	store      *storage.DB
	engine     *stats.Engine
	httpServer *http.Server
}

// NewServer wires the API on top of an open fact store.
func NewServer(addr string, store *storage.DB) *Server {
	return &Server{
		addr:   addr,
		store:  store,
		engine: stats.New(store),
	}
}

// routes builds the router. Split out so tests can hit handlers without
// binding a socket.
func (s *Server) routes() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/info", s.handleInfo).Methods("GET")
	api.HandleFunc("/team/{team}", s.handleTeam).Methods("GET")
	// Seasons carry a slash ("2015/2016"), so the variable spans segments.
	api.HandleFunc("/team/{team}/season/{season:.+}", s.handleTeamSeason).Methods("GET")
	api.HandleFunc("/league/{league}/standings", s.handleStandings).Methods("GET")
	api.HandleFunc("/league/{league}/top-teams", s.handleTopTeams).Methods("GET")
	api.HandleFunc("/matches/high-scoring", s.handleHighScoring).Methods("GET")
	api.HandleFunc("/players/top", s.handleTopPlayers).Methods("GET")
	api.HandleFunc("/player/{player}", s.handlePlayer).Methods("GET")
	api.HandleFunc("/scorelines/common", s.handleScorelines).Methods("GET")
	api.HandleFunc("/leagues/stats", s.handleLeagueStats).Methods("GET")
	api.HandleFunc("/teams/list", s.handleTeamsList).Methods("GET")
	api.HandleFunc("/leagues/list", s.handleLeaguesList).Methods("GET")
	api.HandleFunc("/head-to-head", s.handleHeadToHead).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

// Start binds the listener and serves until Stop or failure.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("listening on %s", s.addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down, letting in-flight requests finish.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
