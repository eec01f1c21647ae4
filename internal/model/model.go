package model

import "time"

type PlayerRole string
type MatchStatus string
type TournamentFormat string
type MomentType string
type Theme string

const (
	RoleBatsman      PlayerRole = "Batsman"
	RoleBowler       PlayerRole = "Bowler"
	RoleAllRounder   PlayerRole = "All-rounder"
	RoleWicketKeeper PlayerRole = "WK-Batsman"

	MatchUpcoming  MatchStatus = "UPCOMING"
	MatchLive      MatchStatus = "LIVE"
	MatchCompleted MatchStatus = "COMPLETED"

	FormatLeague        TournamentFormat = "League"
	FormatKnockout      TournamentFormat = "Knockout"
	FormatGroupKnockout TournamentFormat = "Group + Knockout"

	MomentImage MomentType = "image"
	MomentVideo MomentType = "video"

	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type PlayerStats struct {
	Matches      int    `json:"matches"`
	Runs         int    `json:"runs"`
	Wickets      int    `json:"wickets"`
	HighestScore int    `json:"highestScore"`
	BestBowling  string `json:"bestBowling"`
}

// ZeroStats is the stats record every player starts with.
func ZeroStats() PlayerStats {
	return PlayerStats{BestBowling: "N/A"}
}

type Player struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Age       int         `json:"age"`
	Role      PlayerRole  `json:"role"`
	Stats     PlayerStats `json:"stats"`
	IsCaptain bool        `json:"isCaptain,omitempty"`
	BasePrice int         `json:"basePrice,omitempty"`
}

type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ShortName string   `json:"shortName"`
	LogoURL   string   `json:"logoUrl"`
	Players   []Player `json:"players"`
	Budget    int      `json:"budget"`
}

type Scorecard struct {
	TeamAScore   int     `json:"teamAScore"`
	TeamAWickets int     `json:"teamAWickets"`
	TeamAOvers   float64 `json:"teamAOvers"`
	TeamBScore   int     `json:"teamBScore"`
	TeamBWickets int     `json:"teamBWickets"`
	TeamBOvers   float64 `json:"teamBOvers"`
}

// Match is a fixture. TeamA and TeamB are value snapshots taken when the
// fixture is created, not references into the tournament's team list.
type Match struct {
	ID        string      `json:"id"`
	TeamA     Team        `json:"teamA"`
	TeamB     Team        `json:"teamB"`
	Venue     string      `json:"venue"`
	DateTime  time.Time   `json:"dateTime"`
	Status    MatchStatus `json:"status"`
	Scorecard *Scorecard  `json:"scorecard,omitempty"`
	Result    string      `json:"result,omitempty"`
}

func (m Match) Label() string {
	return m.TeamA.Name + " vs " + m.TeamB.Name
}

type PointsTableEntry struct {
	TeamID     string  `json:"teamId"`
	TeamName   string  `json:"teamName"`
	Matches    int     `json:"matches"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Tied       int     `json:"tied"`
	NoResult   int     `json:"noResult"`
	Points     int     `json:"points"`
	NetRunRate float64 `json:"netRunRate"`
}

type Tournament struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Format      TournamentFormat   `json:"format"`
	Location    string             `json:"location"`
	MatchOvers  int                `json:"matchOvers"`
	Teams       []Team             `json:"teams"`
	Fixtures    []Match            `json:"fixtures"`
	PointsTable []PointsTableEntry `json:"pointsTable"`
}

type CapturedMoment struct {
	ID         string     `json:"id"`
	MatchID    string     `json:"matchId"`
	MatchLabel string     `json:"matchLabel"`
	URL        string     `json:"url"`
	Type       MomentType `json:"type"`
	Size       int64      `json:"size"`
}

type AdminUser struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// AppState is the full persisted application state. The admin profile, camera
// preference and theme live under their own storage slots, not in here.
type AppState struct {
	Tournaments          []Tournament     `json:"tournaments"`
	SelectedTournamentID string           `json:"selectedTournamentId,omitempty"`
	UnassignedPlayers    []Player         `json:"unassignedPlayers"`
	UnsoldPlayers        []Player         `json:"unsoldPlayers"`
	CapturedMoments      []CapturedMoment `json:"capturedMoments"`
}
