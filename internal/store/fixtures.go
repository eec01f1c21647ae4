package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

// Fixture scheduling and the match lifecycle. Match status only ever moves
// forward: Upcoming -> Live -> Completed.

// CreateFixture schedules a match between two team snapshots and keeps the
// fixture list sorted ascending by date-time.
func (s *TournamentStore) CreateFixture(teamA, teamB model.Team, venue string, dateTime time.Time) (model.Match, error) {
	match := model.Match{
		ID:       uuid.NewString(),
		TeamA:    teamA.Clone(),
		TeamB:    teamB.Clone(),
		Venue:    venue,
		DateTime: dateTime,
		Status:   model.MatchUpcoming,
		Result:   "Upcoming",
	}
	err := s.updateSelected(func(t *model.Tournament) error {
		t.Fixtures = append(t.Fixtures, match.Clone())
		sort.Slice(t.Fixtures, func(i, j int) bool {
			return t.Fixtures[i].DateTime.Before(t.Fixtures[j].DateTime)
		})
		return nil
	})
	if err != nil {
		return model.Match{}, err
	}
	return match, nil
}

// StartMatch transitions a fixture to Live. A scorecard is initialized to
// all zeros only if the fixture has none yet, so re-entering a live match
// keeps its in-progress scorecard.
func (s *TournamentStore) StartMatch(matchID string) error {
	return s.updateSelected(func(t *model.Tournament) error {
		for i := range t.Fixtures {
			if t.Fixtures[i].ID != matchID {
				continue
			}
			if t.Fixtures[i].Status == model.MatchCompleted {
				return fmt.Errorf("%w: %s", ErrMatchCompleted, matchID)
			}
			t.Fixtures[i].Status = model.MatchLive
			if t.Fixtures[i].Scorecard == nil {
				t.Fixtures[i].Scorecard = &model.Scorecard{}
			}
			return nil
		}
		return fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	})
}

// EndMatch completes a fixture, replacing its scorecard and result wholesale,
// then recomputes the points table from the completed fixtures. Ending an
// already completed match overwrites the previous outcome.
func (s *TournamentStore) EndMatch(matchID string, finalScorecard model.Scorecard, result string) error {
	return s.updateSelected(func(t *model.Tournament) error {
		for i := range t.Fixtures {
			if t.Fixtures[i].ID != matchID {
				continue
			}
			sc := finalScorecard
			t.Fixtures[i].Status = model.MatchCompleted
			t.Fixtures[i].Scorecard = &sc
			t.Fixtures[i].Result = result
			t.PointsTable = buildPointsTable(t)
			return nil
		}
		return fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	})
}

// LiveMatch returns the fixture currently live in the selected tournament.
func (s *TournamentStore) LiveMatch() (model.Match, bool) {
	t, ok := s.SelectedTournament()
	if !ok {
		return model.Match{}, false
	}
	for _, m := range t.Fixtures {
		if m.Status == model.MatchLive {
			return m, true
		}
	}
	return model.Match{}, false
}
