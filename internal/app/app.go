package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/auth"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/confirm"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/persist"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/store"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/view"
)

var defaultAdmin = model.AdminUser{
	Name:      "Admin",
	AvatarURL: "https://i.pravatar.cc/150?u=admin",
}

// App composes the auth gate, the tournament store, the confirmation gate and
// the view router. Destructive operations route through the confirmation gate
// and only touch the store when confirmed.
type App struct {
	adapter *persist.Adapter
	auth    *auth.Service
	gate    *confirm.Gate
	views   *view.Router
	store   *store.TournamentStore

	mu            sync.RWMutex
	admin         model.AdminUser
	theme         model.Theme
	cameraEnabled bool
}

func New(adapter *persist.Adapter, authSvc *auth.Service) *App {
	return &App{
		adapter: adapter,
		auth:    authSvc,
		gate:    confirm.NewGate(),
		views:   view.NewRouter(),
	}
}

// Bootstrap runs the startup sequence: verify any persisted session token,
// then hydrate the store from the saved state (or seed defaults). The store
// only starts saving once it exists, so the auth check can never clobber
// not-yet-hydrated state.
func (a *App) Bootstrap(ctx context.Context) error {
	if err := a.auth.VerifyToken(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Info("no valid session, login required")
	}

	state, ok := a.adapter.LoadState()
	if !ok {
		state = store.DefaultState()
	}
	a.store = store.New(state, a.adapter.SaveState)

	a.mu.Lock()
	a.theme = a.adapter.Theme()
	a.cameraEnabled = a.adapter.CameraEnabled()
	if admin, found := a.adapter.AdminProfile(); found {
		a.admin = admin
	} else {
		a.admin = defaultAdmin
	}
	a.mu.Unlock()
	return nil
}

func (a *App) Store() *store.TournamentStore { return a.store }
func (a *App) Auth() *auth.Service           { return a.auth }
func (a *App) Confirmations() *confirm.Gate  { return a.gate }
func (a *App) Views() *view.Router           { return a.views }

func (a *App) Login(ctx context.Context, username, password string) error {
	return a.auth.Login(ctx, username, password)
}

func (a *App) Register(ctx context.Context, username, email, password string) error {
	return a.auth.Register(ctx, username, email, password)
}

// Logout closes the session and resets to the default view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.views.Set(view.Dashboard)
	return nil
}

// StartMatch moves a fixture to Live and switches to the live-scoring view.
func (a *App) StartMatch(matchID string) error {
	if err := a.store.StartMatch(matchID); err != nil {
		return err
	}
	a.views.Set(view.LiveScore)
	return nil
}

// EndMatch completes a fixture and returns to the fixtures view.
func (a *App) EndMatch(matchID string, finalScorecard model.Scorecard, result string) error {
	if err := a.store.EndMatch(matchID, finalScorecard, result); err != nil {
		return err
	}
	a.views.Set(view.Fixtures)
	return nil
}

// DeleteTournament asks for confirmation before permanently removing a
// tournament. The selected tournament is rejected up front.
func (a *App) DeleteTournament(id string) error {
	if id == a.store.SelectedTournamentID() {
		return store.ErrSelectedTournament
	}
	var target *model.Tournament
	for _, t := range a.store.Tournaments() {
		if t.ID == id {
			tt := t
			target = &tt
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: %s", store.ErrTournamentNotFound, id)
	}
	a.gate.Request(
		"Delete Tournament: "+target.Name,
		"Are you sure you want to delete this tournament? This action is permanent and cannot be undone.",
		func() {
			if err := a.store.DeleteTournament(id); err != nil {
				slog.Error("delete tournament", "id", id, "error", err)
			}
		},
	)
	return nil
}

// DeleteTeam asks for confirmation; confirming removes the team and every
// player on its roster.
func (a *App) DeleteTeam(teamID string) error {
	team, err := a.findTeam(teamID)
	if err != nil {
		return err
	}
	a.gate.Request(
		"Delete Team: "+team.Name,
		"Are you sure you want to delete this team? This action cannot be undone and will remove all associated players.",
		func() {
			if err := a.store.DeleteTeam(teamID); err != nil {
				slog.Error("delete team", "id", teamID, "error", err)
			}
		},
	)
	return nil
}

func (a *App) DeletePlayer(teamID, playerID string) error {
	team, err := a.findTeam(teamID)
	if err != nil {
		return err
	}
	var player *model.Player
	for _, p := range team.Players {
		if p.ID == playerID {
			pp := p
			player = &pp
			break
		}
	}
	if player == nil {
		return fmt.Errorf("%w: %s", store.ErrPlayerNotFound, playerID)
	}
	a.gate.Request(
		"Delete Player: "+player.Name,
		fmt.Sprintf("Are you sure you want to remove %s from %s?", player.Name, team.Name),
		func() {
			if err := a.store.DeletePlayer(teamID, playerID); err != nil {
				slog.Error("delete player", "team", teamID, "player", playerID, "error", err)
			}
		},
	)
	return nil
}

func (a *App) DeleteUnassignedPlayer(playerID string) error {
	var player *model.Player
	for _, p := range a.store.UnassignedPlayers() {
		if p.ID == playerID {
			pp := p
			player = &pp
			break
		}
	}
	if player == nil {
		return fmt.Errorf("%w: %s", store.ErrPlayerNotFound, playerID)
	}
	a.gate.Request(
		"Delete Player: "+player.Name,
		fmt.Sprintf("Are you sure you want to remove %s from the auction pool? This action cannot be undone.", player.Name),
		func() {
			if err := a.store.DeleteUnassignedPlayer(playerID); err != nil {
				slog.Error("delete unassigned player", "player", playerID, "error", err)
			}
		},
	)
	return nil
}

func (a *App) DeleteCapturedMoment(id string) {
	a.gate.Request(
		"Delete Media",
		"Are you sure you want to permanently delete this captured moment?",
		func() {
			if err := a.store.DeleteCapturedMoment(id); err != nil {
				slog.Error("delete captured moment", "id", id, "error", err)
			}
		},
	)
}

// ResetAllData asks for confirmation, then wipes the persisted state slot and
// reseeds the store with defaults.
func (a *App) ResetAllData() {
	a.gate.Request(
		"Reset All Data",
		"Are you sure you want to reset all application data? This will delete all tournaments, teams, and players, and cannot be undone.",
		func() {
			a.adapter.ClearState()
			a.store.ResetAll()
		},
	)
}

func (a *App) findTeam(teamID string) (model.Team, error) {
	t, ok := a.store.SelectedTournament()
	if !ok {
		return model.Team{}, store.ErrNoSelection
	}
	for _, team := range t.Teams {
		if team.ID == teamID {
			return team, nil
		}
	}
	return model.Team{}, fmt.Errorf("%w: %s", store.ErrTeamNotFound, teamID)
}

func (a *App) AdminProfile() model.AdminUser {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.admin
}

func (a *App) UpdateAdminProfile(admin model.AdminUser) {
	a.mu.Lock()
	a.admin = admin
	a.mu.Unlock()
	a.adapter.SetAdminProfile(admin)
}

func (a *App) Theme() model.Theme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.theme
}

func (a *App) ToggleTheme() model.Theme {
	a.mu.Lock()
	if a.theme == model.ThemeDark {
		a.theme = model.ThemeLight
	} else {
		a.theme = model.ThemeDark
	}
	next := a.theme
	a.mu.Unlock()
	a.adapter.SetTheme(next)
	return next
}

func (a *App) CameraEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cameraEnabled
}

func (a *App) ToggleCamera() bool {
	a.mu.Lock()
	a.cameraEnabled = !a.cameraEnabled
	next := a.cameraEnabled
	a.mu.Unlock()
	a.adapter.SetCameraEnabled(next)
	return next
}

func (a *App) ResetCameraSettings() {
	a.mu.Lock()
	a.cameraEnabled = true
	a.mu.Unlock()
	a.adapter.SetCameraEnabled(true)
}
