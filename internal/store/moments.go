package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

func (s *TournamentStore) CapturedMoments() []model.CapturedMoment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CapturedMoment, len(s.state.CapturedMoments))
	copy(out, s.state.CapturedMoments)
	return out
}

// AddCapturedMoment prepends a moment so the list stays newest-first.
func (s *TournamentStore) AddCapturedMoment(moment model.CapturedMoment) (model.CapturedMoment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if moment.ID == "" {
		moment.ID = uuid.NewString()
	}
	s.state.CapturedMoments = append([]model.CapturedMoment{moment}, s.state.CapturedMoments...)
	s.persistLocked()
	return moment, nil
}

func (s *TournamentStore) DeleteCapturedMoment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.CapturedMoments {
		if s.state.CapturedMoments[i].ID == id {
			s.state.CapturedMoments = append(s.state.CapturedMoments[:i], s.state.CapturedMoments[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMomentNotFound, id)
}
