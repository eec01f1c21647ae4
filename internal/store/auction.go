package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

// Auction pool operations. A player sits in exactly one of the unassigned
// pool, the unsold pool or a team roster; every operation here is a transfer,
// never a copy.

func (s *TournamentStore) UnassignedPlayers() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, len(s.state.UnassignedPlayers))
	copy(out, s.state.UnassignedPlayers)
	return out
}

func (s *TournamentStore) UnsoldPlayers() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, len(s.state.UnsoldPlayers))
	copy(out, s.state.UnsoldPlayers)
	return out
}

// AddUnassignedPlayer puts a new player with zeroed stats into the auction
// pool, keeping the pool sorted by name.
func (s *TournamentStore) AddUnassignedPlayer(player model.Player) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	player.Stats = model.ZeroStats()
	s.state.UnassignedPlayers = append(s.state.UnassignedPlayers, player)
	sort.Slice(s.state.UnassignedPlayers, func(i, j int) bool {
		return s.state.UnassignedPlayers[i].Name < s.state.UnassignedPlayers[j].Name
	})
	s.persistLocked()
	return player, nil
}

func (s *TournamentStore) UpdateUnassignedPlayer(player model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.UnassignedPlayers {
		if s.state.UnassignedPlayers[i].ID == player.ID {
			s.state.UnassignedPlayers[i] = player
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPlayerNotFound, player.ID)
}

func (s *TournamentStore) DeleteUnassignedPlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.UnassignedPlayers {
		if s.state.UnassignedPlayers[i].ID == playerID {
			s.state.UnassignedPlayers = append(s.state.UnassignedPlayers[:i], s.state.UnassignedPlayers[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
}

// SellPlayer moves a player from the unassigned pool onto the winning team's
// roster with reset stats and debits the final bid from that team's budget.
// The pool removal and the roster addition happen as one transition: any
// failure leaves both the pool and the tournament untouched.
func (s *TournamentStore) SellPlayer(teamID, playerID string, finalBid int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SelectedTournamentID == "" {
		return ErrNoSelection
	}
	poolIdx := -1
	for i := range s.state.UnassignedPlayers {
		if s.state.UnassignedPlayers[i].ID == playerID {
			poolIdx = i
			break
		}
	}
	if poolIdx < 0 {
		return fmt.Errorf("%w: %s not in auction pool", ErrPlayerNotFound, playerID)
	}
	for i := range s.state.Tournaments {
		if s.state.Tournaments[i].ID != s.state.SelectedTournamentID {
			continue
		}
		working := s.state.Tournaments[i].Clone()
		teamIdx := -1
		for j := range working.Teams {
			if working.Teams[j].ID == teamID {
				teamIdx = j
				break
			}
		}
		if teamIdx < 0 {
			return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
		}
		sold := s.state.UnassignedPlayers[poolIdx]
		sold.Stats = model.ZeroStats()
		working.Teams[teamIdx].Players = append(working.Teams[teamIdx].Players, sold)
		working.Teams[teamIdx].Budget -= finalBid

		s.state.UnassignedPlayers = append(s.state.UnassignedPlayers[:poolIdx], s.state.UnassignedPlayers[poolIdx+1:]...)
		s.state.Tournaments[i] = working
		s.persistLocked()
		return nil
	}
	return fmt.Errorf("selected %w: %s", ErrTournamentNotFound, s.state.SelectedTournamentID)
}

// MarkUnsold moves a player from the unassigned pool to the unsold pool.
func (s *TournamentStore) MarkUnsold(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.UnassignedPlayers {
		if s.state.UnassignedPlayers[i].ID == playerID {
			player := s.state.UnassignedPlayers[i]
			s.state.UnassignedPlayers = append(s.state.UnassignedPlayers[:i], s.state.UnassignedPlayers[i+1:]...)
			s.state.UnsoldPlayers = append(s.state.UnsoldPlayers, player)
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
}

// RestartAuctionForUnsold moves the whole unsold pool back into the
// unassigned pool and empties the unsold pool.
func (s *TournamentStore) RestartAuctionForUnsold() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.UnassignedPlayers = append(s.state.UnassignedPlayers, s.state.UnsoldPlayers...)
	s.state.UnsoldPlayers = []model.Player{}
	s.persistLocked()
}
