package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

// Team and roster operations. All of them act on the selected tournament
// through the updateSelected primitive.

func (s *TournamentStore) AddTeam(team model.Team) (model.Team, error) {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	team.Players = []model.Player{}
	err := s.updateSelected(func(t *model.Tournament) error {
		t.Teams = append(t.Teams, team.Clone())
		return nil
	})
	if err != nil {
		return model.Team{}, err
	}
	return team, nil
}

func (s *TournamentStore) UpdateTeam(team model.Team) error {
	return s.updateSelected(func(t *model.Tournament) error {
		for i := range t.Teams {
			if t.Teams[i].ID == team.ID {
				t.Teams[i] = team.Clone()
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrTeamNotFound, team.ID)
	})
}

// DeleteTeam removes the team and with it every player on its roster.
func (s *TournamentStore) DeleteTeam(teamID string) error {
	return s.updateSelected(func(t *model.Tournament) error {
		for i := range t.Teams {
			if t.Teams[i].ID == teamID {
				t.Teams = append(t.Teams[:i], t.Teams[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	})
}

// AddPlayer appends a new player with zeroed stats to the named team.
func (s *TournamentStore) AddPlayer(teamID string, player model.Player) (model.Player, error) {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	player.Stats = model.ZeroStats()
	player.IsCaptain = false
	err := s.updateSelected(func(t *model.Tournament) error {
		for i := range t.Teams {
			if t.Teams[i].ID == teamID {
				t.Teams[i].Players = append(t.Teams[i].Players, player)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	})
	if err != nil {
		return model.Player{}, err
	}
	return player, nil
}

func (s *TournamentStore) UpdatePlayer(teamID string, player model.Player) error {
	return s.updateSelected(func(t *model.Tournament) error {
		for i := range t.Teams {
			if t.Teams[i].ID != teamID {
				continue
			}
			for j := range t.Teams[i].Players {
				if t.Teams[i].Players[j].ID == player.ID {
					t.Teams[i].Players[j] = player
					return nil
				}
			}
			return fmt.Errorf("%w: %s", ErrPlayerNotFound, player.ID)
		}
		return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	})
}

func (s *TournamentStore) DeletePlayer(teamID, playerID string) error {
	return s.updateSelected(func(t *model.Tournament) error {
		for i := range t.Teams {
			if t.Teams[i].ID != teamID {
				continue
			}
			for j := range t.Teams[i].Players {
				if t.Teams[i].Players[j].ID == playerID {
					t.Teams[i].Players = append(t.Teams[i].Players[:j], t.Teams[i].Players[j+1:]...)
					return nil
				}
			}
			return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
		}
		return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	})
}
