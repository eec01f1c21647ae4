package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func storeWithTwoTeams(t *testing.T) (*TournamentStore, model.Team, model.Team) {
	t.Helper()
	s := newTestStore()
	teamA, err := s.AddTeam(model.Team{Name: "Eagles", Budget: 1000})
	require.NoError(t, err)
	teamB, err := s.AddTeam(model.Team{Name: "Hawks", Budget: 1000})
	require.NoError(t, err)
	return s, teamA, teamB
}

func TestCreateFixture_KeepsListSorted(t *testing.T) {
	s, teamA, teamB := storeWithTwoTeams(t)

	// Deliberately out of order.
	times := []string{
		"2024-05-10T18:00:00Z",
		"2024-05-01T14:00:00Z",
		"2024-05-20T10:00:00Z",
		"2024-05-05T19:30:00Z",
	}
	for _, ts := range times {
		_, err := s.CreateFixture(teamA, teamB, "Eden Gardens", mustTime(ts))
		require.NoError(t, err)
	}

	selected, _ := s.SelectedTournament()
	require.Len(t, selected.Fixtures, 4)
	for i := 1; i < len(selected.Fixtures); i++ {
		prev := selected.Fixtures[i-1].DateTime
		curr := selected.Fixtures[i].DateTime
		assert.False(t, curr.Before(prev), "fixtures must be sorted ascending by date-time")
	}
}

func TestCreateFixture_Defaults(t *testing.T) {
	s, teamA, teamB := storeWithTwoTeams(t)

	match, err := s.CreateFixture(teamA, teamB, "Wankhede", mustTime("2024-05-01T14:00:00Z"))
	require.NoError(t, err)
	assert.NotEmpty(t, match.ID)
	assert.Equal(t, model.MatchUpcoming, match.Status)
	assert.Equal(t, "Upcoming", match.Result)
	assert.Nil(t, match.Scorecard)
	assert.Equal(t, teamA.ID, match.TeamA.ID)
	assert.Equal(t, teamB.ID, match.TeamB.ID)
}

func TestStartMatch(t *testing.T) {
	s, teamA, teamB := storeWithTwoTeams(t)
	match, err := s.CreateFixture(teamA, teamB, "Eden Gardens", mustTime("2024-05-01T14:00:00Z"))
	require.NoError(t, err)

	t.Run("initializes zero scorecard and goes live", func(t *testing.T) {
		require.NoError(t, s.StartMatch(match.ID))
		selected, _ := s.SelectedTournament()
		fixture := selected.Fixtures[0]
		assert.Equal(t, model.MatchLive, fixture.Status)
		require.NotNil(t, fixture.Scorecard)
		assert.Equal(t, model.Scorecard{}, *fixture.Scorecard)
	})

	t.Run("re-entry preserves an in-progress scorecard", func(t *testing.T) {
		// Simulate live scoring having advanced the card.
		selected, _ := s.SelectedTournament()
		fixture := selected.Fixtures[0]
		fixture.Scorecard.TeamAScore = 58
		fixture.Scorecard.TeamAWickets = 2
		require.NoError(t, s.updateSelected(func(tm *model.Tournament) error {
			tm.Fixtures[0] = fixture
			return nil
		}))

		require.NoError(t, s.StartMatch(match.ID))
		selected, _ = s.SelectedTournament()
		assert.Equal(t, 58, selected.Fixtures[0].Scorecard.TeamAScore)
		assert.Equal(t, 2, selected.Fixtures[0].Scorecard.TeamAWickets)
	})

	t.Run("unknown match", func(t *testing.T) {
		require.ErrorIs(t, s.StartMatch("missing"), ErrMatchNotFound)
	})
}

func TestStartMatch_CompletedMatchCannotGoBack(t *testing.T) {
	s, teamA, teamB := storeWithTwoTeams(t)
	match, _ := s.CreateFixture(teamA, teamB, "Eden Gardens", mustTime("2024-05-01T14:00:00Z"))
	require.NoError(t, s.EndMatch(match.ID, model.Scorecard{TeamAScore: 160, TeamBScore: 150}, "Eagles won by 10 runs"))

	require.ErrorIs(t, s.StartMatch(match.ID), ErrMatchCompleted)
}

func TestEndMatch(t *testing.T) {
	s, teamA, teamB := storeWithTwoTeams(t)
	match, _ := s.CreateFixture(teamA, teamB, "Eden Gardens", mustTime("2024-05-01T14:00:00Z"))
	require.NoError(t, s.StartMatch(match.ID))

	final := model.Scorecard{
		TeamAScore: 182, TeamAWickets: 5, TeamAOvers: 20,
		TeamBScore: 150, TeamBWickets: 8, TeamBOvers: 20,
	}
	require.NoError(t, s.EndMatch(match.ID, final, "Eagles won by 32 runs"))

	selected, _ := s.SelectedTournament()
	fixture := selected.Fixtures[0]
	assert.Equal(t, model.MatchCompleted, fixture.Status)
	assert.Equal(t, final, *fixture.Scorecard)
	assert.Equal(t, "Eagles won by 32 runs", fixture.Result)
	assert.NotEmpty(t, selected.PointsTable, "completing a match recomputes the points table")

	t.Run("ending again overwrites", func(t *testing.T) {
		require.NoError(t, s.EndMatch(match.ID, model.Scorecard{TeamAScore: 10, TeamBScore: 20, TeamAOvers: 20, TeamBOvers: 20}, "Hawks won"))
		selected, _ := s.SelectedTournament()
		assert.Equal(t, 10, selected.Fixtures[0].Scorecard.TeamAScore)
		assert.Equal(t, "Hawks won", selected.Fixtures[0].Result)
	})

	t.Run("unknown match", func(t *testing.T) {
		require.ErrorIs(t, s.EndMatch("missing", final, ""), ErrMatchNotFound)
	})
}

func TestLiveMatch(t *testing.T) {
	s, teamA, teamB := storeWithTwoTeams(t)

	_, ok := s.LiveMatch()
	assert.False(t, ok)

	match, _ := s.CreateFixture(teamA, teamB, "Eden Gardens", mustTime("2024-05-01T14:00:00Z"))
	require.NoError(t, s.StartMatch(match.ID))

	live, ok := s.LiveMatch()
	require.True(t, ok)
	assert.Equal(t, match.ID, live.ID)
}
