package input

import (
	"github.com/floatingskies/mark-mark/internal/engine/cursor"
	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/mode"
	"github.com/floatingskies/mark-mark/internal/input/vim"
)

// visualModes maps the visual mode switches to their mode.
var visualModes = map[string]mode.Mode{
	"enter_visual_mode":       mode.Visual,
	"enter_visual_line_mode":  mode.VisualLine,
	"enter_visual_block_mode": mode.VisualBlock,
}

// visualEdits end Visual mode once applied.
var visualEdits = map[string]bool{
	"delete_selection":       true,
	"yank_selection":         true,
	"replace_selection":      true,
	"join_selection_lines":   true,
	"selection_to_lowercase": true,
	"selection_to_uppercase": true,
	"selection_toggle_case":  true,
	"indent_selection":       true,
	"unindent_selection":     true,
	"auto_indent_selection":  true,
}

// handleVisual resolves one key in the visual modes.
func (e *Engine) handleVisual(ev key.Event) *action.Action {
	if ev.IsCancel() {
		return e.leaveVisual(mode.Normal, action.New("clear_selection"))
	}

	r, ok := e.feed(ev, e.visual, false)
	if !ok {
		return nil
	}
	a := r.base()
	if r.entry.Arg == vim.ArgChar {
		a = a.WithPayload(action.Char{Char: r.arg})
	}

	if r.entry.Object != 0 {
		return e.emit(e.selectObject(a, string(r.entry.Object), r.entry.Inner))
	}
	if target, ok := visualModes[a.Name]; ok {
		if e.Mode() == target {
			return e.leaveVisual(mode.Normal, action.New("clear_selection"))
		}
		e.switchMode(target)
		return e.emit(a)
	}
	if visualEdits[a.Name] {
		return e.leaveVisual(mode.Normal, a)
	}

	ss := e.selections
	text := e.snap.Text
	switch a.Name {
	case "change_selection":
		e.inserted.Reset()
		return e.leaveVisual(mode.Insert, a)
	case "enter_command_mode":
		e.rememberVisual()
		e.promptCount = a.Count
		e.openPrompt(':')
		return e.emit(a)
	case "move_to_other_end", "move_to_other_end_block":
		ss.Flip()
	case "reselect_last":
		if e.lastVisual == nil {
			return e.emit(action.NoMatch("No previous visual selection"))
		}
		ss.Set(e.lastVisual)
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	case "add_cursor_below":
		for i := 0; i < a.Count; i++ {
			ss.AddCursorBelow(text)
		}
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	case "add_cursor_above":
		for i := 0; i < a.Count; i++ {
			ss.AddCursorAbove(text)
		}
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	case "keep_primary_selection":
		p, _ := ss.Primary()
		ss.Set([]cursor.Selection{p})
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	case "select_all":
		ss.SelectAll(len(text))
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	case "split_selection_lines":
		ss.SplitByLine(text)
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	case "flip_selections":
		ss.Flip()
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	case "merge_selections":
		ss.MergeConsecutive()
		return e.emit(a.WithPayload(selectionsPayload(ss)))
	}
	return e.emit(a)
}

// leaveVisual records the selection for gv and the < and > marks, then
// switches to next and emits a.
func (e *Engine) leaveVisual(next mode.Mode, a action.Action) *action.Action {
	e.rememberVisual()
	e.switchMode(next)
	return e.emit(a)
}

func (e *Engine) rememberVisual() {
	e.lastVisual = e.selections.All()
	if !e.synced {
		return
	}
	p, _ := e.selections.Primary()
	text := e.snap.Text
	for name, offset := range map[rune]int{'<': p.Start(), '>': p.End()} {
		_ = e.marks.Set(name, vim.Mark{
			Line:     cursor.Line(text, offset),
			Column:   cursor.Column(text, offset),
			FilePath: e.snap.FilePath,
		})
	}
}

// selectObject replaces the selections with the object kind found at
// each cursor.
func (e *Engine) selectObject(a action.Action, kind string, inner bool) action.Action {
	f, ok := e.resolver.Lookup(kind)
	if !ok {
		return action.Errorf(action.KindUnknownCommand, kind, "Unknown text object: %s", kind)
	}
	if !e.synced {
		return a
	}
	if !e.selections.SelectTextObject(e.snap.Text, f, inner) {
		return action.NoMatch("No text object: " + kind)
	}
	return a.WithPayload(selectionsPayload(e.selections))
}

func selectionsPayload(ss *cursor.SelectionSet) action.Selections {
	all := ss.All()
	out := make([]action.Selection, len(all))
	for i, sel := range all {
		out[i] = action.Selection{Anchor: sel.Anchor, Head: sel.Head, Primary: sel.Primary}
	}
	return action.Selections{Selections: out}
}
