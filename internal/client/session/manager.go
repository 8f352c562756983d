package session

import "context"

// Listener receives the newly-current identity after a transition.
type Listener func(ctx context.Context, id Identity)

// Manager holds the current identity and fans out transitions to listeners.
// It fires on exactly three occasions: startup (Announce after session
// restore), login and logout (Set with a changed identity). Set with an
// unchanged identity is a no-op, so callers may invoke it on every
// observation tick without triggering redundant notifications.
//
// Manager is used from a single goroutine; it does no locking.
type Manager struct {
	current   Identity
	listeners []Listener
}

// NewManager returns a Manager starting out as guest with no listeners.
func NewManager() *Manager {
	return &Manager{current: Guest()}
}

// Current returns the identity as of the last Set.
func (m *Manager) Current() Identity {
	return m.current
}

// Subscribe registers a listener. Listeners are invoked in subscription
// order, synchronously, on the goroutine that triggered the transition.
func (m *Manager) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Set makes id the current identity and notifies listeners, but only when
// the (authenticated, userID) pair actually changed.
func (m *Manager) Set(ctx context.Context, id Identity) {
	if id == m.current {
		return
	}
	m.current = id
	m.notify(ctx)
}

// Announce re-notifies listeners with the current identity without requiring
// a change. Used once at startup, after the persisted session (if any) has
// been restored.
func (m *Manager) Announce(ctx context.Context) {
	m.notify(ctx)
}

func (m *Manager) notify(ctx context.Context) {
	for _, l := range m.listeners {
		l(ctx, m.current)
	}
}
