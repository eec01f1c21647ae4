package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want View
	}{
		{"dashboard", "DASHBOARD", Dashboard},
		{"fixtures", "FIXTURES", Fixtures},
		{"teams", "TEAMS", Teams},
		{"player pool", "PLAYER_POOL", PlayerPool},
		{"points table", "POINTS_TABLE", PointsTable},
		{"live score", "LIVE_SCORE", LiveScore},
		{"stats", "STATS", Stats},
		{"mvp", "MVP", Mvp},
		{"storage", "STORAGE", Storage},
		{"settings", "SETTINGS", Settings},
		{"tournaments", "TOURNAMENTS", Tournaments},
		{"auction", "AUCTION", Auction},
		{"unknown falls back", "SCOREBOARD", Dashboard},
		{"empty falls back", "", Dashboard},
		{"lowercase is not recognized", "dashboard", Dashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, Dashboard, r.Active())

	r.Set(Auction)
	assert.Equal(t, Auction, r.Active())

	r.Set(View("BOGUS"))
	assert.Equal(t, Dashboard, r.Active(), "unknown views fall back to the dashboard")
}
