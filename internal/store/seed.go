package store

import (
	"github.com/google/uuid"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

// DefaultState is the seed used when no saved state exists: one empty league
// tournament (already selected) and the default auction pool.
func DefaultState() model.AppState {
	tournament := model.Tournament{
		ID:          uuid.NewString(),
		Name:        "Mini IPL Championship 2024",
		Format:      model.FormatLeague,
		Location:    "India",
		MatchOvers:  20,
		Teams:       []model.Team{},
		Fixtures:    []model.Match{},
		PointsTable: []model.PointsTableEntry{},
	}
	return model.AppState{
		Tournaments:          []model.Tournament{tournament},
		SelectedTournamentID: tournament.ID,
		UnassignedPlayers:    seedAuctionPool(),
		UnsoldPlayers:        []model.Player{},
		CapturedMoments:      []model.CapturedMoment{},
	}
}

func seedAuctionPool() []model.Player {
	seed := []struct {
		name      string
		age       int
		role      model.PlayerRole
		basePrice int
	}{
		{"Chris Morris", 35, model.RoleAllRounder, 200},
		{"David Warner", 35, model.RoleBatsman, 200},
		{"Pat Cummins", 29, model.RoleBowler, 150},
		{"Ben Stokes", 31, model.RoleAllRounder, 200},
		{"Jonny Bairstow", 32, model.RoleWicketKeeper, 150},
		{"Rashid Khan", 23, model.RoleBowler, 200},
		{"Quinton de Kock", 29, model.RoleWicketKeeper, 150},
		{"Jason Holder", 30, model.RoleAllRounder, 100},
		{"Mitchell Starc", 32, model.RoleBowler, 200},
		{"Nicholas Pooran", 26, model.RoleWicketKeeper, 100},
	}
	players := make([]model.Player, 0, len(seed))
	for _, p := range seed {
		players = append(players, model.Player{
			ID:        uuid.NewString(),
			Name:      p.name,
			Age:       p.age,
			Role:      p.role,
			BasePrice: p.basePrice,
			Stats:     model.ZeroStats(),
		})
	}
	return players
}
