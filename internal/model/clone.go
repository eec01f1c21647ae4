package model

// Structural deep copies for the entity graph. Clones share nothing with
// their source, so a cloned tournament can be mutated freely.

func (p Player) Clone() Player {
	return p
}

func (t Team) Clone() Team {
	out := t
	out.Players = make([]Player, len(t.Players))
	copy(out.Players, t.Players)
	return out
}

func (m Match) Clone() Match {
	out := m
	out.TeamA = m.TeamA.Clone()
	out.TeamB = m.TeamB.Clone()
	if m.Scorecard != nil {
		sc := *m.Scorecard
		out.Scorecard = &sc
	}
	return out
}

func (t Tournament) Clone() Tournament {
	out := t
	out.Teams = make([]Team, len(t.Teams))
	for i, team := range t.Teams {
		out.Teams[i] = team.Clone()
	}
	out.Fixtures = make([]Match, len(t.Fixtures))
	for i, m := range t.Fixtures {
		out.Fixtures[i] = m.Clone()
	}
	out.PointsTable = make([]PointsTableEntry, len(t.PointsTable))
	copy(out.PointsTable, t.PointsTable)
	return out
}

func (s AppState) Clone() AppState {
	out := s
	out.Tournaments = make([]Tournament, len(s.Tournaments))
	for i, t := range s.Tournaments {
		out.Tournaments[i] = t.Clone()
	}
	out.UnassignedPlayers = make([]Player, len(s.UnassignedPlayers))
	copy(out.UnassignedPlayers, s.UnassignedPlayers)
	out.UnsoldPlayers = make([]Player, len(s.UnsoldPlayers))
	copy(out.UnsoldPlayers, s.UnsoldPlayers)
	out.CapturedMoments = make([]CapturedMoment, len(s.CapturedMoments))
	copy(out.CapturedMoments, s.CapturedMoments)
	return out
}
