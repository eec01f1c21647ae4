package store

import (
	"sort"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

// buildPointsTable derives the standings from the tournament's completed
// fixtures. A win is 2 points, a tie 1, a no-result 1. Net run rate is
// runs-per-over scored minus runs-per-over conceded across all completed
// matches.
func buildPointsTable(t *model.Tournament) []model.PointsTableEntry {
	index := make(map[string]*model.PointsTableEntry)
	type runRate struct {
		runsFor, runsAgainst   int
		oversFor, oversAgainst float64
	}
	rates := make(map[string]*runRate)
	for _, team := range t.Teams {
		index[team.ID] = &model.PointsTableEntry{TeamID: team.ID, TeamName: team.Name}
		rates[team.ID] = &runRate{}
	}

	for _, match := range t.Fixtures {
		if match.Status != model.MatchCompleted {
			continue
		}
		entryA := index[match.TeamA.ID]
		entryB := index[match.TeamB.ID]
		if entryA == nil || entryB == nil {
			continue
		}
		entryA.Matches++
		entryB.Matches++

		if match.Scorecard == nil {
			entryA.NoResult++
			entryB.NoResult++
			entryA.Points++
			entryB.Points++
			continue
		}
		sc := *match.Scorecard
		rateA := rates[match.TeamA.ID]
		rateB := rates[match.TeamB.ID]
		rateA.runsFor += sc.TeamAScore
		rateA.oversFor += sc.TeamAOvers
		rateA.runsAgainst += sc.TeamBScore
		rateA.oversAgainst += sc.TeamBOvers
		rateB.runsFor += sc.TeamBScore
		rateB.oversFor += sc.TeamBOvers
		rateB.runsAgainst += sc.TeamAScore
		rateB.oversAgainst += sc.TeamAOvers

		switch {
		case sc.TeamAScore > sc.TeamBScore:
			entryA.Won++
			entryA.Points += 2
			entryB.Lost++
		case sc.TeamBScore > sc.TeamAScore:
			entryB.Won++
			entryB.Points += 2
			entryA.Lost++
		default:
			entryA.Tied++
			entryB.Tied++
			entryA.Points++
			entryB.Points++
		}
	}

	table := make([]model.PointsTableEntry, 0, len(t.Teams))
	for _, team := range t.Teams {
		entry := index[team.ID]
		rate := rates[team.ID]
		if rate.oversFor > 0 {
			entry.NetRunRate = float64(rate.runsFor) / rate.oversFor
		}
		if rate.oversAgainst > 0 {
			entry.NetRunRate -= float64(rate.runsAgainst) / rate.oversAgainst
		}
		table = append(table, *entry)
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Points == table[j].Points {
			return table[i].NetRunRate > table[j].NetRunRate
		}
		return table[i].Points > table[j].Points
	})
	return table
}

// PointsTable returns the derived standings of the selected tournament.
func (s *TournamentStore) PointsTable() []model.PointsTableEntry {
	t, ok := s.SelectedTournament()
	if !ok {
		return nil
	}
	return t.PointsTable
}
