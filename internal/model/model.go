package model

import "fmt"

// Result is the side-agnostic outcome of a match.
type Result string

const (
	ResultHomeWin Result = "home_win"
	ResultAwayWin Result = "away_win"
	ResultDraw    Result = "draw"
	ResultUnknown Result = "unknown"
)

// ---- Facts ----

// Match is one played fixture. Immutable once loaded; goal counts are nil
// when the source row carried none, in which case Result is "unknown".
type Match struct {
	MatchID      int64
	LeagueID     int64
	LeagueName   string
	Season       string // e.g. "2015/2016"
	Stage        int
	Date         string // "2006-01-02"; empty when the source date was unparsable
	HomeTeamID   int64
	HomeTeamName string
	AwayTeamID   int64
	AwayTeamName string
	HomeGoals    *int
	AwayGoals    *int
	Result       Result
}

// Scoreline renders the goal pair as "H-A", or "?" when either count is absent.
func (m Match) Scoreline() string {
	if m.HomeGoals == nil || m.AwayGoals == nil {
		return "?"
	}
	return Scoreline(*m.HomeGoals, *m.AwayGoals)
}

// Scoreline formats a goal pair as "H-A".
func Scoreline(home, away int) string {
	return fmt.Sprintf("%d-%d", home, away)
}

// Player is an identity record; skill observations live in
// PlayerAttributeSnapshot, keyed by PlayerID.
type Player struct {
	PlayerID int64
	Name     string
	Birthday string  // "2006-01-02"; empty when unknown
	Height   float64 // cm
	Weight   int     // lbs, as in the source dataset
}

// PlayerAttributeSnapshot is one date-stamped observation of a player's
// skill attributes. Multiple snapshots per player; nothing forces ratings
// to move monotonically between them.
type PlayerAttributeSnapshot struct {
	PlayerID int64
	Date     string

	OverallRating *int
	Potential     *int

	PreferredFoot     string
	AttackingWorkRate string
	DefensiveWorkRate string

	Crossing         *int
	Finishing        *int
	HeadingAccuracy  *int
	ShortPassing     *int
	Volleys          *int
	Dribbling        *int
	Curve            *int
	FreeKickAccuracy *int
	LongPassing      *int
	BallControl      *int
	Acceleration     *int
	SprintSpeed      *int
	Agility          *int
	Reactions        *int
	Balance          *int
	ShotPower        *int
	Jumping          *int
	Stamina          *int
	Strength         *int
	LongShots        *int
	Aggression       *int
	Interceptions    *int
	Positioning      *int
	Vision           *int
	Penalties        *int
	Marking          *int
	StandingTackle   *int
	SlidingTackle    *int
	GKDiving         *int
	GKHandling       *int
	GKKicking        *int
	GKPositioning    *int
	GKReflexes       *int
}

// Team and League are directory records used by the list endpoints.
type Team struct {
	TeamID    int64
	LongName  string
	ShortName string
}

type League struct {
	LeagueID    int64
	Name        string
	CountryName string
}

// ---- Derived records ----
//
// Computed on demand, never persisted. The JSON field names are the stable
// contract with the presentation layer.

// TeamSeasonRecord is one team's tally over a single season.
// Position is 0 until a standings builder ranks the record.
type TeamSeasonRecord struct {
	Team           string `json:"team"`
	Season         string `json:"season"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsScored    int    `json:"goals_scored"`
	GoalsConceded  int    `json:"goals_conceded"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Position       int    `json:"position,omitempty"`
}

// HeadToHeadRecord tallies all decided meetings between two named teams.
type HeadToHeadRecord struct {
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	TotalMatches int    `json:"total_matches"`
	Team1Wins    int    `json:"team1_wins"`
	Team2Wins    int    `json:"team2_wins"`
	Draws        int    `json:"draws"`
}

// ScorelineTally is the occurrence count of one exact ordered goal pair.
type ScorelineTally struct {
	Scoreline   string `json:"scoreline"`
	HomeGoals   int    `json:"home_goals"`
	AwayGoals   int    `json:"away_goals"`
	Occurrences int    `json:"occurrences"`
}

// PlayerRatingPoint is one step of a player's attribute trend.
type PlayerRatingPoint struct {
	PlayerName    string `json:"player_name"`
	Date          string `json:"date"`
	OverallRating *int   `json:"overall_rating"`
	Potential     *int   `json:"potential"`
	Finishing     *int   `json:"finishing"`
	ShortPassing  *int   `json:"short_passing"`
	Dribbling     *int   `json:"dribbling"`
	SprintSpeed   *int   `json:"sprint_speed"`
	Stamina       *int   `json:"stamina"`
	Strength      *int   `json:"strength"`
}

// TopPlayerEntry is one row of the top-players ranking.
type TopPlayerEntry struct {
	PlayerName    string  `json:"player_name"`
	AvgRating     float64 `json:"avg_rating"`
	MaxRating     int     `json:"max_rating"`
	Height        float64 `json:"height"`
	Weight        int     `json:"weight"`
	PreferredFoot string  `json:"preferred_foot"`
}

// MatchProjection is the flat match shape handed to the presentation layer.
type MatchProjection struct {
	Date         string `json:"date"`
	LeagueName   string `json:"league_name"`
	Season       string `json:"season"`
	HomeTeamName string `json:"home_team_name"`
	AwayTeamName string `json:"away_team_name"`
	HomeGoals    *int   `json:"home_team_goal"`
	AwayGoals    *int   `json:"away_team_goal"`
	Scoreline    string `json:"scoreline"`
}

// TeamSeasonRating is one step of a team's roster-rating trend: the mean
// rating of the players who appeared for the team that season, taken over
// the snapshots dated inside the season's match window.
type TeamSeasonRating struct {
	Season           string  `json:"season"`
	AvgOverallRating float64 `json:"avg_overall_rating"`
	AvgPotential     float64 `json:"avg_potential"`
	Players          int     `json:"players"`
}

// TeamProfile is the team landing view: identity plus a scoring summary
// and the latest matches.
type TeamProfile struct {
	Team          string            `json:"team"`
	TotalMatches  int               `json:"total_matches"`
	TotalGoals    int               `json:"total_goals"`
	Seasons       []string          `json:"seasons"`
	RecentMatches []MatchProjection `json:"recent_matches"`
}

// PlayerProfile is the player landing view: identity plus the newest
// attribute snapshot and the depth of the snapshot history.
type PlayerProfile struct {
	PlayerName    string             `json:"player_name"`
	Birthday      string             `json:"birthday"`
	Height        float64            `json:"height"`
	Weight        int                `json:"weight"`
	SnapshotCount int                `json:"snapshot_count"`
	Latest        *PlayerRatingPoint `json:"latest,omitempty"`
}

// LeagueGoalStats summarizes scoring volume for one league.
type LeagueGoalStats struct {
	LeagueName       string  `json:"league_name"`
	TotalMatches     int     `json:"total_matches"`
	TotalGoals       int     `json:"total_goals"`
	AvgGoalsPerMatch float64 `json:"avg_goals_per_match"`
	AvgHomeGoals     float64 `json:"avg_home_goals"`
	AvgAwayGoals     float64 `json:"avg_away_goals"`
}
