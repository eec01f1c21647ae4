package view

import "sync"

// View is the closed set of presentations the application can show.
type View string

const (
	Dashboard   View = "DASHBOARD"
	Fixtures    View = "FIXTURES"
	Teams       View = "TEAMS"
	PlayerPool  View = "PLAYER_POOL"
	PointsTable View = "POINTS_TABLE"
	LiveScore   View = "LIVE_SCORE"
	Stats       View = "STATS"
	Mvp         View = "MVP"
	Storage     View = "STORAGE"
	Settings    View = "SETTINGS"
	Tournaments View = "TOURNAMENTS"
	Auction     View = "AUCTION"
)

// Parse maps an identifier onto a known view, falling back to Dashboard for
// anything unrecognized.
func Parse(raw string) View {
	switch v := View(raw); v {
	case Dashboard, Fixtures, Teams, PlayerPool, PointsTable, LiveScore,
		Stats, Mvp, Storage, Settings, Tournaments, Auction:
		return v
	default:
		return Dashboard
	}
}

// Router tracks which view is active.
type Router struct {
	mu     sync.RWMutex
	active View
}

func NewRouter() *Router {
	return &Router{active: Dashboard}
}

func (r *Router) Active() View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *Router) Set(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = Parse(string(v))
}
