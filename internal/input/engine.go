package input

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/floatingskies/mark-mark/internal/config"
	"github.com/floatingskies/mark-mark/internal/engine/cursor"
	"github.com/floatingskies/mark-mark/internal/engine/search"
	"github.com/floatingskies/mark-mark/internal/engine/textobj"
	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/excmd"
	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/macro"
	"github.com/floatingskies/mark-mark/internal/input/mode"
	"github.com/floatingskies/mark-mark/internal/input/vim"
)

// Snapshot is the buffer state the host hands to the engine after applying
// an action.
type Snapshot struct {
	// Text is the whole buffer.
	Text string

	// Selections are the host's cursors and selections. An empty list
	// means a single cursor at offset 0.
	Selections []cursor.Selection

	// FilePath is stored in marks set while this snapshot is current.
	FilePath string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConfig sets the configuration.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithResolver sets the text object resolver, so custom objects registered
// by the host are visible to the engine.
func WithResolver(r *textobj.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithSearcher shares a pattern cache with the host.
func WithSearcher(s *search.Searcher) Option {
	return func(e *Engine) {
		if s != nil {
			e.searcher = s
		}
	}
}

// WithClock replaces time.Now for timeout bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine turns key events into actions. It owns the mode, the pending key
// state, registers, marks, macros and the last search.
//
// An Engine is not safe for concurrent use: key events must be handled one
// at a time, and the host must not feed live input during macro playback.
type Engine struct {
	cfg      config.Config
	session  uuid.UUID
	logger   *slog.Logger
	log      *slog.Logger
	now      func() time.Time
	lastKey  time.Time
	resolver *textobj.Resolver
	searcher *search.Searcher

	modes      *mode.Manager
	cmdline    *mode.CommandLine
	searchline *mode.CommandLine
	line       *mode.CommandLine
	dispatcher *excmd.Dispatcher

	normal *vim.Trie
	visual *vim.Trie

	pending     pending
	oneShot     bool
	inserted    strings.Builder
	promptCount int

	registers *vim.RegisterStore
	marks     *vim.MarkStore
	recorder  *macro.Recorder
	player    *macro.Player

	searchState search.State

	snap       Snapshot
	synced     bool
	selections *cursor.SelectionSet
	lastVisual []cursor.Selection

	hooks   *HookManager
	metrics *Metrics
}

// Shared tables; tries are read-only after construction.
var (
	normalTrie = vim.MustNewTrie(vim.NormalEntries())
	visualTrie = vim.MustNewTrie(vim.VisualEntries())
)

// New creates an engine in Normal mode.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:        config.Default(),
		session:    uuid.New(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
		resolver:   textobj.NewResolver(),
		modes:      mode.NewManager(),
		cmdline:    mode.NewCommandLine(),
		searchline: mode.NewCommandLine(),
		normal:     normalTrie,
		visual:     visualTrie,
		registers:  vim.NewRegisterStore(),
		marks:      vim.NewMarkStore(),
		recorder:   macro.NewRecorder(),
		selections: cursor.NewSelectionSet(),
		hooks:      NewHookManager(),
		metrics:    NewMetrics(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.searcher == nil {
		e.searcher = search.New()
	}
	e.line = e.cmdline
	e.player = macro.NewPlayer(e.recorder)
	e.dispatcher = excmd.NewDispatcher(e.searcher, e.cfg.SearchOptions())
	e.log = e.logger.With("session", e.session.String())
	e.modes.OnChange(func(from, to mode.Mode) {
		e.log.Debug("mode change", "from", from.String(), "to", to.String())
	})
	return e
}

// Session returns the id attached to this engine's log records.
func (e *Engine) Session() uuid.UUID {
	return e.session
}

// Config returns the configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// SetConfig replaces the configuration.
func (e *Engine) SetConfig(cfg config.Config) {
	e.cfg = cfg
	e.dispatcher.SetOptions(cfg.SearchOptions())
}

// Mode returns the current mode.
func (e *Engine) Mode() mode.Mode {
	return e.modes.Current()
}

// PreviousMode returns the mode before the last transition.
func (e *Engine) PreviousMode() mode.Mode {
	return e.modes.Previous()
}

// OnModeChange registers a callback for mode transitions.
func (e *Engine) OnModeChange(cb mode.ChangeCallback) func() {
	return e.modes.OnChange(cb)
}

// Pending returns the partially typed command.
func (e *Engine) Pending() Pending {
	return e.pending.snapshot()
}

// CommandLine returns the command line being edited in Command mode.
func (e *Engine) CommandLine() *mode.CommandLine {
	return e.line
}

// Registers returns the register store.
func (e *Engine) Registers() *vim.RegisterStore {
	return e.registers
}

// Marks returns the mark store.
func (e *Engine) Marks() *vim.MarkStore {
	return e.marks
}

// Macros returns the macro recorder.
func (e *Engine) Macros() *macro.Recorder {
	return e.recorder
}

// Resolver returns the text object resolver.
func (e *Engine) Resolver() *textobj.Resolver {
	return e.resolver
}

// Selections returns the engine's copy of the selections.
func (e *Engine) Selections() *cursor.SelectionSet {
	return e.selections
}

// Hooks returns the hook manager.
func (e *Engine) Hooks() *HookManager {
	return e.hooks
}

// Metrics returns the engine's counters.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// Search returns the last search.
func (e *Engine) Search() search.State {
	return e.searchState
}

// SetSearch sets the pattern repeated by n and N.
func (e *Engine) SetSearch(pattern string, dir search.Direction) {
	e.searchState = search.State{Pattern: pattern, Direction: dir}
	if pattern != "" {
		e.registers.SetLastSearch(pattern)
	}
}

// Sync hands the engine the buffer state after the host applied an action.
func (e *Engine) Sync(s Snapshot) {
	sels := make([]cursor.Selection, 0, len(s.Selections))
	for _, sel := range s.Selections {
		sels = append(sels, sel.Clamp(len(s.Text)))
	}
	if len(sels) == 0 {
		sels = append(sels, cursor.NewCursorSelection(0))
	}
	e.snap = s
	e.synced = true
	e.selections.Set(sels)
}

// Snapshot returns the last synced snapshot.
func (e *Engine) Snapshot() (Snapshot, bool) {
	return e.snap, e.synced
}

// cursorOffset returns the head of the primary selection.
func (e *Engine) cursorOffset() int {
	p, _ := e.selections.Primary()
	return p.Head
}

// Cancel drops any partially typed command. Hosts call it when the key
// sequence timeout expires.
func (e *Engine) Cancel() {
	if e.pending.active() {
		e.log.Debug("pending keys cancelled", "mode", e.Mode().String(), "keys", e.Pending().Keys)
		e.metrics.recordTimeout()
	}
	e.pending.clear()
}

// Expired reports whether a command is pending and no key arrived within
// the configured timeout. A zero timeout never expires.
func (e *Engine) Expired() bool {
	timeout := e.cfg.Timeout()
	if timeout <= 0 || !e.pending.active() {
		return false
	}
	return e.now().Sub(e.lastKey) >= timeout
}

// HandleKey processes one key event. It returns the resulting action, or
// nil when more input is needed or the key did nothing.
func (e *Engine) HandleKey(ev key.Event) *action.Action {
	current := e.Mode()
	if e.hooks.runPre(&ev, current) {
		return nil
	}
	start := e.now()
	e.lastKey = start
	recording := e.recorder.IsRecording()

	var a *action.Action
	switch current {
	case mode.Normal:
		a = e.handleNormal(ev)
	case mode.Insert:
		a = e.handleInsert(ev)
	case mode.Visual, mode.VisualLine, mode.VisualBlock:
		a = e.handleVisual(ev)
	case mode.Command:
		a = e.handleCommand(ev)
	case mode.Replace:
		a = e.handleReplace(ev)
	}

	// The q that ends a recording is not part of it, nor is the register
	// name that starts one.
	if recording && e.recorder.IsRecording() && !e.player.IsPlaying() {
		e.recorder.Record(ev)
	}

	e.metrics.recordKey(e.now().Sub(start), a)
	e.hooks.runPost(ev, a)
	return a
}

// HandleKeys parses spec as a key sequence ("3dd", "ci(", "<Esc>:w<CR>")
// and feeds every key, returning the actions produced in order.
func (e *Engine) HandleKeys(spec string) ([]action.Action, error) {
	events, err := key.ParseSequence(spec)
	if err != nil {
		return nil, err
	}
	var out []action.Action
	for _, ev := range events {
		if a := e.HandleKey(ev); a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

// switchMode changes mode and resets the pending state.
func (e *Engine) switchMode(m mode.Mode) {
	e.pending.clear()
	e.modes.Switch(m)
}

// openPrompt enters Command mode editing a line with the given prompt.
func (e *Engine) openPrompt(prompt rune) {
	if prompt == ':' {
		e.line = e.cmdline
	} else {
		e.line = e.searchline
	}
	e.line.Reset(prompt)
	e.switchMode(mode.Command)
}

// emit finalizes an action on its way to the host.
func (e *Engine) emit(a action.Action) *action.Action {
	if e.player.IsPlaying() && a.Source == action.SourceKeyboard {
		a.Source = action.SourceMacro
	}
	if p, ok := a.Problem(); ok && a.IsError() {
		e.log.Debug("command failed", "mode", e.Mode().String(), "kind", p.Kind.String(), "message", p.Message)
	}
	return &a
}

// discard drops the pending sequence after a key that matched nothing.
func (e *Engine) discard(ev key.Event) {
	e.log.Debug("discarded key sequence",
		"mode", e.Mode().String(),
		"keys", strings.Join(e.pending.typed, "")+ev.String())
	e.metrics.recordDropped()
	e.pending.clear()
}
