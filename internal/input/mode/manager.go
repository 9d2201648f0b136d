package mode

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the current and previous mode.
// It is owned by a single engine and is not safe for concurrent use.
type Manager struct {
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewManager creates a manager in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal, previous: Normal}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Previous returns the mode before the last transition.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Switch transitions to next. Switching to the current mode is a no-op.
// It reports whether a transition happened.
func (m *Manager) Switch(next Mode) bool {
	if next == m.current {
		return false
	}
	from := m.current
	m.previous = from
	m.current = next
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, next)
		}
	}
	return true
}

// Restore switches back to the previous mode.
func (m *Manager) Restore() bool {
	return m.Switch(m.previous)
}

// Is reports whether the current mode is any of modes.
func (m *Manager) Is(modes ...Mode) bool {
	for _, mode := range modes {
		if m.current == mode {
			return true
		}
	}
	return false
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
