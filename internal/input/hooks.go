package input

import (
	"sort"
	"sync"

	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/mode"
)

// Hook observes key handling.
type Hook interface {
	// PreKeyEvent runs before a key is resolved in mode m. The event may
	// be rewritten; returning true consumes it.
	PreKeyEvent(ev *key.Event, m mode.Mode) bool

	// PostKeyEvent runs after a key was resolved. a is nil when the key
	// produced no action.
	PostKeyEvent(ev key.Event, a *action.Action)
}

// HookFuncs adapts functions to Hook. Nil fields are skipped.
type HookFuncs struct {
	Pre  func(ev *key.Event, m mode.Mode) bool
	Post func(ev key.Event, a *action.Action)
}

// PreKeyEvent implements Hook.
func (h HookFuncs) PreKeyEvent(ev *key.Event, m mode.Mode) bool {
	return h.Pre != nil && h.Pre(ev, m)
}

// PostKeyEvent implements Hook.
func (h HookFuncs) PostKeyEvent(ev key.Event, a *action.Action) {
	if h.Post != nil {
		h.Post(ev, a)
	}
}

// HookPriority orders hooks; lower values run first.
type HookPriority int

const (
	HookPriorityHigh   HookPriority = -100
	HookPriorityNormal HookPriority = 0
	HookPriorityLow    HookPriority = 100
)

// HookID identifies a registered hook.
type HookID uint64

type hookEntry struct {
	id       HookID
	priority HookPriority
	hook     Hook
}

// HookManager runs hooks in priority order. Hooks with equal priority run
// in registration order.
type HookManager struct {
	mu      sync.RWMutex
	hooks   []hookEntry
	nextID  HookID
	enabled bool
}

// NewHookManager creates an empty, enabled hook manager.
func NewHookManager() *HookManager {
	return &HookManager{enabled: true}
}

// Register adds a hook with normal priority.
func (m *HookManager) Register(h Hook) HookID {
	return m.RegisterWithPriority(h, HookPriorityNormal)
}

// RegisterWithPriority adds a hook.
func (m *HookManager) RegisterWithPriority(h Hook, priority HookPriority) HookID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.hooks = append(m.hooks, hookEntry{id: m.nextID, priority: priority, hook: h})
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].priority < m.hooks[j].priority
	})
	return m.nextID
}

// Unregister removes a hook. It reports whether the hook was registered.
func (m *HookManager) Unregister(id HookID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, h := range m.hooks {
		if h.id == id {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// SetEnabled turns all hooks on or off.
func (m *HookManager) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

// Count returns the number of registered hooks.
func (m *HookManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hooks)
}

// active returns the hooks to run, copied so they may re-enter the manager.
func (m *HookManager) active() []Hook {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.enabled || len(m.hooks) == 0 {
		return nil
	}
	hooks := make([]Hook, len(m.hooks))
	for i, h := range m.hooks {
		hooks[i] = h.hook
	}
	return hooks
}

func (m *HookManager) runPre(ev *key.Event, current mode.Mode) bool {
	for _, h := range m.active() {
		if h.PreKeyEvent(ev, current) {
			return true
		}
	}
	return false
}

func (m *HookManager) runPost(ev key.Event, a *action.Action) {
	for _, h := range m.active() {
		h.PostKeyEvent(ev, a)
	}
}
