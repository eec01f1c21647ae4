package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

func sampleState() model.AppState {
	return model.AppState{
		Tournaments: []model.Tournament{
			{
				ID:         "t1",
				Name:       "Mini IPL Championship 2024",
				Format:     model.FormatLeague,
				Location:   "India",
				MatchOvers: 20,
				Teams: []model.Team{
					{
						ID:     "team-1",
						Name:   "Eagles",
						Budget: 1000,
						Players: []model.Player{
							{ID: "p1", Name: "A. Bee", Age: 24, Role: model.RoleBowler, Stats: model.ZeroStats()},
						},
					},
				},
				Fixtures:    []model.Match{},
				PointsTable: []model.PointsTableEntry{},
			},
		},
		SelectedTournamentID: "t1",
		UnassignedPlayers:    []model.Player{{ID: "p2", Name: "Pool Player", Role: model.RoleBatsman, Stats: model.ZeroStats()}},
		UnsoldPlayers:        []model.Player{},
		CapturedMoments:      []model.CapturedMoment{{ID: "c1", MatchID: "m1", MatchLabel: "Eagles vs Hawks", Type: model.MomentImage, Size: 2048}},
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", "v"))
	value, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_StateRoundTrip(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV())

	state := sampleState()
	adapter.SaveState(state)

	loaded, ok := adapter.LoadState()
	require.True(t, ok)
	assert.Equal(t, state, loaded)
}

func TestAdapter_LoadState_Absent(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV())
	_, ok := adapter.LoadState()
	assert.False(t, ok)
}

func TestAdapter_LoadState_CorruptBlob(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("CricManagerAppState", "{not valid json"))

	adapter := NewAdapter(kv)
	_, ok := adapter.LoadState()
	assert.False(t, ok, "corrupt blob must behave like no saved state")
}

func TestAdapter_ClearState(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV())
	adapter.SaveState(sampleState())
	adapter.ClearState()

	_, ok := adapter.LoadState()
	assert.False(t, ok)
}

func TestAdapter_TokenSlot(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV())

	_, ok := adapter.Token()
	assert.False(t, ok)

	require.NoError(t, adapter.SetToken("session-token"))
	token, ok := adapter.Token()
	assert.True(t, ok)
	assert.Equal(t, "session-token", token)

	require.NoError(t, adapter.ClearToken())
	_, ok = adapter.Token()
	assert.False(t, ok)
}

func TestAdapter_ThemeDefaultsToDark(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV())
	assert.Equal(t, model.ThemeDark, adapter.Theme())

	adapter.SetTheme(model.ThemeLight)
	assert.Equal(t, model.ThemeLight, adapter.Theme())
}

func TestAdapter_ThemeIgnoresGarbage(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("theme", "neon"))
	adapter := NewAdapter(kv)
	assert.Equal(t, model.ThemeDark, adapter.Theme())
}

func TestAdapter_CameraDefaultsToEnabled(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV())
	assert.True(t, adapter.CameraEnabled())

	adapter.SetCameraEnabled(false)
	assert.False(t, adapter.CameraEnabled())
}

func TestAdapter_AdminProfileSlot(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV())

	_, ok := adapter.AdminProfile()
	assert.False(t, ok)

	admin := model.AdminUser{Name: "League Admin", AvatarURL: "https://example.com/avatar.png"}
	adapter.SetAdminProfile(admin)

	loaded, ok := adapter.AdminProfile()
	require.True(t, ok)
	assert.Equal(t, admin, loaded)
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cricmanager.db")

	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set("k", "v1"))
	require.NoError(t, kv.Set("k", "v2"), "upsert must overwrite")

	value, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKV_EmptyPath(t *testing.T) {
	_, err := NewSQLiteKV("  ")
	require.Error(t, err)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cricmanager.db")

	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	adapter := NewAdapter(kv)
	state := sampleState()
	adapter.SaveState(state)
	require.NoError(t, kv.Close())

	kv, err = NewSQLiteKV(path)
	require.NoError(t, err)
	defer kv.Close()

	loaded, ok := NewAdapter(kv).LoadState()
	require.True(t, ok)
	assert.Equal(t, state, loaded)
}
