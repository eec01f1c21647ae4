package persist

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

// Slot keys. keyAppState holds the full state blob; everything else has its
// own slot so wiping the app state leaves profile and preferences intact.
const (
	keyAppState     = "CricManagerAppState"
	keyAuthToken    = "authToken"
	keyTheme        = "theme"
	keyAdminProfile = "adminProfile"
	keyCamera       = "cameraEnabled"
)

// Adapter serializes application state in and out of a KV backend. State
// read/write failures are logged and swallowed: a corrupt or missing blob
// means "start from defaults", never a crash.
type Adapter struct {
	kv KV
}

func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// LoadState returns the saved state, or ok=false if nothing usable is stored.
func (a *Adapter) LoadState() (model.AppState, bool) {
	raw, ok, err := a.kv.Get(keyAppState)
	if err != nil {
		slog.Error("load app state", "error", err)
		return model.AppState{}, false
	}
	if !ok {
		return model.AppState{}, false
	}
	var state model.AppState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		slog.Error("parse saved app state, falling back to defaults", "error", err)
		return model.AppState{}, false
	}
	return state, true
}

func (a *Adapter) SaveState(state model.AppState) {
	raw, err := json.Marshal(state)
	if err != nil {
		slog.Error("encode app state", "error", err)
		return
	}
	if err := a.kv.Set(keyAppState, string(raw)); err != nil {
		slog.Error("save app state", "error", err)
	}
}

func (a *Adapter) ClearState() {
	if err := a.kv.Delete(keyAppState); err != nil {
		slog.Error("clear app state", "error", err)
	}
}

func (a *Adapter) Token() (string, bool) {
	token, ok, err := a.kv.Get(keyAuthToken)
	if err != nil {
		slog.Error("load auth token", "error", err)
		return "", false
	}
	return token, ok
}

func (a *Adapter) SetToken(token string) error {
	return a.kv.Set(keyAuthToken, token)
}

func (a *Adapter) ClearToken() error {
	return a.kv.Delete(keyAuthToken)
}

func (a *Adapter) Theme() model.Theme {
	raw, ok, err := a.kv.Get(keyTheme)
	if err != nil || !ok {
		return model.ThemeDark
	}
	switch model.Theme(raw) {
	case model.ThemeLight, model.ThemeDark:
		return model.Theme(raw)
	}
	return model.ThemeDark
}

func (a *Adapter) SetTheme(theme model.Theme) {
	if err := a.kv.Set(keyTheme, string(theme)); err != nil {
		slog.Error("save theme", "error", err)
	}
}

func (a *Adapter) AdminProfile() (model.AdminUser, bool) {
	raw, ok, err := a.kv.Get(keyAdminProfile)
	if err != nil || !ok {
		return model.AdminUser{}, false
	}
	var admin model.AdminUser
	if err := json.Unmarshal([]byte(raw), &admin); err != nil {
		slog.Error("parse admin profile", "error", err)
		return model.AdminUser{}, false
	}
	return admin, true
}

func (a *Adapter) SetAdminProfile(admin model.AdminUser) {
	raw, err := json.Marshal(admin)
	if err != nil {
		slog.Error("encode admin profile", "error", err)
		return
	}
	if err := a.kv.Set(keyAdminProfile, string(raw)); err != nil {
		slog.Error("save admin profile", "error", err)
	}
}

func (a *Adapter) CameraEnabled() bool {
	raw, ok, err := a.kv.Get(keyCamera)
	if err != nil || !ok {
		return true
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return enabled
}

func (a *Adapter) SetCameraEnabled(enabled bool) {
	if err := a.kv.Set(keyCamera, strconv.FormatBool(enabled)); err != nil {
		slog.Error("save camera preference", "error", err)
	}
}
