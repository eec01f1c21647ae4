package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMomentNotFound     = errors.New("captured moment not found")
	ErrNoSelection        = errors.New("no tournament selected")
	ErrSelectedTournament = errors.New("tournament is currently selected")
	ErrMatchCompleted     = errors.New("match already completed")
)

// TournamentStore owns the whole application state. Every mutation runs as a
// single critical section and, on success, hands a deep copy of the new state
// to the save hook. Readers only ever get deep-copied snapshots, so a partially
// applied transition is never observable.
type TournamentStore struct {
	mu    sync.RWMutex
	state model.AppState
	save  func(model.AppState)
}

// New builds a store around an already hydrated state. The save hook may be
// nil (tests); it is invoked after every successful mutation.
func New(initial model.AppState, save func(model.AppState)) *TournamentStore {
	return &TournamentStore{state: initial, save: save}
}

func (s *TournamentStore) persistLocked() {
	if s.save != nil {
		s.save(s.state.Clone())
	}
}

// State returns a deep copy of the full application state.
func (s *TournamentStore) State() model.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *TournamentStore) Tournaments() []model.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Tournament, 0, len(s.state.Tournaments))
	for _, t := range s.state.Tournaments {
		out = append(out, t.Clone())
	}
	return out
}

func (s *TournamentStore) SelectedTournamentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedTournamentID
}

func (s *TournamentStore) SelectedTournament() (model.Tournament, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.SelectedTournamentID == "" {
		return model.Tournament{}, false
	}
	for _, t := range s.state.Tournaments {
		if t.ID == s.state.SelectedTournamentID {
			return t.Clone(), true
		}
	}
	return model.Tournament{}, false
}

// updateSelected applies transform to a working copy of the selected
// tournament and swaps it in wholesale on success. An error from the
// transform leaves the store untouched.
func (s *TournamentStore) updateSelected(transform func(*model.Tournament) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SelectedTournamentID == "" {
		return ErrNoSelection
	}
	for i := range s.state.Tournaments {
		if s.state.Tournaments[i].ID != s.state.SelectedTournamentID {
			continue
		}
		working := s.state.Tournaments[i].Clone()
		if err := transform(&working); err != nil {
			return err
		}
		s.state.Tournaments[i] = working
		s.persistLocked()
		return nil
	}
	return fmt.Errorf("selected %w: %s", ErrTournamentNotFound, s.state.SelectedTournamentID)
}

// AddTournament registers a new tournament with empty teams, fixtures and
// points table, keeping whatever name/format/location/overs the caller set.
func (s *TournamentStore) AddTournament(t model.Tournament) (model.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Teams = []model.Team{}
	t.Fixtures = []model.Match{}
	t.PointsTable = []model.PointsTableEntry{}
	s.state.Tournaments = append(s.state.Tournaments, t)
	s.persistLocked()
	return t.Clone(), nil
}

func (s *TournamentStore) UpdateTournament(t model.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tournaments {
		if s.state.Tournaments[i].ID == t.ID {
			s.state.Tournaments[i] = t.Clone()
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTournamentNotFound, t.ID)
}

// CloneTournament deep-duplicates a tournament under a fresh top-level id.
// Nested team and player ids are reused; every player's stats are reset and
// the fixture list and points table start empty.
func (s *TournamentStore) CloneTournament(id string) (model.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.state.Tournaments {
		if t.ID != id {
			continue
		}
		clone := t.Clone()
		clone.ID = uuid.NewString()
		clone.Name = t.Name + " (Copy)"
		clone.Fixtures = []model.Match{}
		clone.PointsTable = []model.PointsTableEntry{}
		for i := range clone.Teams {
			for j := range clone.Teams[i].Players {
				clone.Teams[i].Players[j].Stats = model.ZeroStats()
			}
		}
		s.state.Tournaments = append(s.state.Tournaments, clone)
		s.persistLocked()
		return clone.Clone(), nil
	}
	return model.Tournament{}, fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
}

// DeleteTournament permanently removes a tournament. The currently selected
// tournament cannot be deleted.
func (s *TournamentStore) DeleteTournament(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.state.SelectedTournamentID {
		return ErrSelectedTournament
	}
	for i := range s.state.Tournaments {
		if s.state.Tournaments[i].ID == id {
			s.state.Tournaments = append(s.state.Tournaments[:i], s.state.Tournaments[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
}

func (s *TournamentStore) SelectTournament(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.state.Tournaments {
		if t.ID == id {
			s.state.SelectedTournamentID = id
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
}

// DeactivateTournament clears the selection.
func (s *TournamentStore) DeactivateTournament() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SelectedTournamentID = ""
	s.persistLocked()
}

// ResetAll discards everything and reseeds the defaults. The caller is
// expected to clear the persisted slot first.
func (s *TournamentStore) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = DefaultState()
	s.persistLocked()
}
