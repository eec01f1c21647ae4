package confirm

import "sync"

// Gate is the process-wide pending-confirmation slot. A destructive intent
// parks its action here instead of mutating state; the action only runs when
// the user confirms. One intent may be pending at a time and a new Request
// overwrites an unresolved one.
type Gate struct {
	mu      sync.Mutex
	pending *intent
}

type intent struct {
	title   string
	message string
	action  func()
}

// Request describes the pending intent shown to the user.
type Request struct {
	Title   string
	Message string
}

func NewGate() *Gate {
	return &Gate{}
}

func (g *Gate) Request(title, message string, action func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pending = &intent{title: title, message: message, action: action}
}

// Pending reports the request awaiting a decision, if any.
func (g *Gate) Pending() (Request, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil {
		return Request{}, false
	}
	return Request{Title: g.pending.title, Message: g.pending.message}, true
}

// Confirm runs and clears the pending action. It reports whether anything
// was pending. The action runs outside the gate's lock.
func (g *Gate) Confirm() bool {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	if pending == nil {
		return false
	}
	if pending.action != nil {
		pending.action()
	}
	return true
}

// Cancel discards the pending action without running it.
func (g *Gate) Cancel() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil {
		return false
	}
	g.pending = nil
	return true
}
