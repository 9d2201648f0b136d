package input

import (
	"strings"

	"github.com/floatingskies/mark-mark/internal/engine/search"
	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/excmd"
	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/mode"
	"github.com/floatingskies/mark-mark/internal/input/vim"
)

// insertSpecial maps special keys in Insert mode to actions.
var insertSpecial = map[key.Key]string{
	key.KeyEnter:     "insert_newline",
	key.KeyTab:       "insert_tab",
	key.KeyBackspace: "delete_char_before",
	key.KeyDelete:    "delete_char",
	key.KeyLeft:      "move_left",
	key.KeyRight:     "move_right",
	key.KeyUp:        "move_up",
	key.KeyDown:      "move_down",
	key.KeyHome:      "line_start",
	key.KeyEnd:       "line_end",
	key.KeyPageUp:    "page_up",
	key.KeyPageDown:  "page_down",
}

// handleInsert resolves one key in Insert mode.
func (e *Engine) handleInsert(ev key.Event) *action.Action {
	switch {
	case ev.IsCancel():
		e.registers.SetLastInserted(e.inserted.String())
		e.switchMode(mode.Normal)
		return e.emit(action.New("exit_insert_mode"))

	case ev.IsRune() && ev.HasCtrl():
		name, ok := vim.InsertCtrl(ev.Rune)
		if !ok {
			return nil
		}
		if name == "single_normal_command" {
			e.oneShot = true
			e.switchMode(mode.Normal)
		}
		return e.emit(action.New(name))

	case ev.IsRune():
		// Alt and Meta chords insert their character.
		e.inserted.WriteRune(ev.Rune)
		return e.emit(action.NewWith("insert_char", action.Char{Char: ev.Rune}))
	}

	name, ok := insertSpecial[ev.Key]
	if !ok || ev.IsModified() {
		return nil
	}
	switch ev.Key {
	case key.KeyEnter:
		e.inserted.WriteByte('\n')
	case key.KeyTab:
		e.inserted.WriteByte('\t')
	case key.KeyBackspace:
		s := []rune(e.inserted.String())
		if len(s) > 0 {
			e.inserted.Reset()
			e.inserted.WriteString(string(s[:len(s)-1]))
		}
	}
	return e.emit(action.New(name))
}

// handleReplace resolves one key in Replace mode.
func (e *Engine) handleReplace(ev key.Event) *action.Action {
	switch {
	case ev.IsCancel():
		e.switchMode(mode.Normal)
		return e.emit(action.New("exit_replace_mode"))
	case isPlain(ev):
		return e.emit(action.NewWith("replace_char", action.Char{Char: ev.Rune}))
	case ev.Key == key.KeyBackspace || ev.Key == key.KeyLeft:
		return e.emit(action.New("move_left"))
	case ev.Key == key.KeyRight:
		return e.emit(action.New("move_right"))
	case ev.Key == key.KeyEnter:
		return e.emit(action.New("insert_newline"))
	}
	return nil
}

// handleCommand edits the command line and runs it on Enter.
func (e *Engine) handleCommand(ev key.Event) *action.Action {
	cl := e.line
	switch {
	case ev.IsCancel():
		e.switchMode(mode.Normal)
	case ev.Key == key.KeyEnter:
		return e.executeLine()
	case ev.Key == key.KeyBackspace:
		if cl.Buffer() == "" {
			e.switchMode(mode.Normal)
			return nil
		}
		cl.Backspace()
	case ev.Key == key.KeyLeft:
		cl.Left()
	case ev.Key == key.KeyRight:
		cl.Right()
	case ev.Key == key.KeyUp:
		cl.HistoryUp()
	case ev.Key == key.KeyDown:
		cl.HistoryDown()
	case ev.Key == key.KeyTab && cl.Prompt() == ':':
		return e.complete()
	case ev.IsCtrlRune('u'):
		cl.SetBuffer("")
	case isPlain(ev):
		cl.Insert(ev.Rune)
	}
	return nil
}

// complete offers command names for the word being typed. A single
// candidate is filled in.
func (e *Engine) complete() *action.Action {
	cl := e.line
	input := cl.Buffer()
	candidates := excmd.Complete(input)
	if len(candidates) == 1 {
		cl.SetBuffer(candidates[0])
	}
	return e.emit(action.NewWith("command_complete", action.Completion{Input: input, Candidates: candidates}))
}

// executeLine runs the command line and returns to Normal mode.
func (e *Engine) executeLine() *action.Action {
	cl := e.line
	raw := strings.TrimSpace(cl.Buffer())
	prompt := cl.Prompt()
	cl.Push(raw)
	e.switchMode(mode.Normal)

	switch prompt {
	case '/':
		return e.emit(e.searchPrompt(raw, search.Forward))
	case '?':
		return e.emit(e.searchPrompt(raw, search.Backward))
	}
	return e.emit(e.runEx(raw))
}

// runEx dispatches an ex command against the current snapshot.
func (e *Engine) runEx(raw string) action.Action {
	if raw != "" {
		e.registers.SetLastCommand(raw)
	}
	a := e.dispatcher.Execute(raw, e.exSnapshot()).WithSource(action.SourceCommandLine)
	switch p := a.Payload.(type) {
	case action.Substitute:
		if p.Pattern != "" {
			e.SetSearch(p.Pattern, e.searchState.Direction)
		}
	case action.Global:
		if p.Pattern != "" {
			e.SetSearch(p.Pattern, e.searchState.Direction)
		}
	}
	return a
}

// exSnapshot returns the snapshot ex commands resolve ranges against, or
// nil before the first Sync.
func (e *Engine) exSnapshot() *excmd.Snapshot {
	if !e.synced {
		return nil
	}
	offset := e.cursorOffset()
	return &excmd.Snapshot{
		Text:        e.snap.Text,
		Line:        strings.Count(e.snap.Text[:min(offset, len(e.snap.Text))], "\n") + 1,
		LastPattern: e.searchState.Pattern,
	}
}

// Execute runs an ex command without going through the command line.
func (e *Engine) Execute(raw string) action.Action {
	return *e.emit(e.runEx(strings.TrimSpace(raw)))
}
