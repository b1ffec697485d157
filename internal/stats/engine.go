// Package stats is the aggregation engine: deterministic, stateless
// computations that turn match and player-attribute facts into ranked,
// grouped, and joined summaries. All fact access goes through the
// FactAccessor interface so the engine stays store-agnostic.
package stats

import (
	"fmt"

	"github.com/pable/go-soccer-stats/internal/model"
)

// MatchFilter selects matches by equality/range predicates. Zero values
// mean "no constraint". Team matches either side; with Opponent set, the
// two must be opposite sides in either home/away arrangement; with
// MinTeamGoals set, the named team must have scored at least that many.
type MatchFilter struct {
	League         string
	Season         string
	Team           string
	Opponent       string
	MinTeamGoals   int
	SortByDateDesc bool
	Limit          int
}

// SnapshotFilter selects player attribute snapshots.
type SnapshotFilter struct {
	PlayerID      int64 // 0 = all players
	SortByDateAsc bool
}

// PlayerFilter selects player identity records by exact name.
type PlayerFilter struct {
	Name string // empty = all players
}

// FactAccessor is the engine's read-only view of the fact store.
// Implementations must support concurrent calls; the engine itself holds
// no state between calls.
type FactAccessor interface {
	FindMatches(f MatchFilter) ([]model.Match, error)
	FindSnapshots(f SnapshotFilter) ([]model.PlayerAttributeSnapshot, error)
	FindPlayers(f PlayerFilter) ([]model.Player, error)
	// LineupPlayerIDs returns the distinct IDs of players who appeared in
	// at least one match satisfying the filter.
	LineupPlayerIDs(f MatchFilter) ([]int64, error)
}

// Engine computes derived soccer statistics from a fact store.
type Engine struct {
	facts FactAccessor
}

// New returns an Engine reading from the given fact store.
func New(facts FactAccessor) *Engine {
	return &Engine{facts: facts}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
