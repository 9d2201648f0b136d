package input

import (
	"fmt"
	"strings"

	"github.com/floatingskies/mark-mark/internal/engine/cursor"
	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/macro"
	"github.com/floatingskies/mark-mark/internal/input/mode"
	"github.com/floatingskies/mark-mark/internal/input/vim"
)

// Action names the engine reacts to itself.
const (
	nameSetMark       = "set_mark"
	nameRecordMacro   = "record_macro"
	nameStopRecording = "stop_recording"
	nameExecuteMacro  = "execute_macro"
)

// normalModes maps the actions that leave Normal mode to their target.
var normalModes = map[string]mode.Mode{
	"enter_insert_mode":           mode.Insert,
	"insert_line_start":           mode.Insert,
	"insert_after":                mode.Insert,
	"insert_line_end":             mode.Insert,
	"insert_line_below":           mode.Insert,
	"insert_line_above":           mode.Insert,
	"insert_line_above_and_enter": mode.Insert,
	"substitute_char":             mode.Insert,
	"substitute_line":             mode.Insert,
	"change_line":                 mode.Insert,
	"change_to_end":               mode.Insert,
	"goto_last_insert":            mode.Insert,
	"enter_visual_mode":           mode.Visual,
	"enter_visual_line_mode":      mode.VisualLine,
	"enter_visual_block_mode":     mode.VisualBlock,
	"select_mode":                 mode.Visual,
	"select_next_match":           mode.Visual,
	"select_prev_match":           mode.Visual,
	"enter_replace_mode":          mode.Replace,
}

// prompts maps the actions that open the command line to its prompt.
var prompts = map[string]rune{
	"enter_command_mode": ':',
	"search_forward":     '/',
	"search_backward":    '?',
}

// handleNormal resolves one key in Normal mode.
func (e *Engine) handleNormal(ev key.Event) *action.Action {
	p := &e.pending

	if ev.IsCancel() {
		p.clear()
		if e.oneShot {
			e.oneShot = false
			e.modes.Restore()
		}
		return nil
	}

	if p.arg == nil && !p.awaitRegister && ev.IsRune() && ev.HasCtrl() {
		name, ok := vim.NormalCtrl(ev.Rune)
		if !ok {
			e.discard(ev)
			return nil
		}
		a := action.New(name).WithCount(p.total()).WithOperator(p.operator).WithRegister(p.register)
		p.clear()
		return e.finishNormal(a)
	}

	if isPlain(ev) && ev.Rune == 'q' && !p.active() && e.recorder.IsRecording() {
		return e.stopRecording()
	}

	r, ok := e.feed(ev, e.normal, true)
	if !ok {
		return nil
	}

	a := r.base()
	switch r.entry.Arg {
	case vim.ArgChar:
		a = a.WithPayload(action.Char{Char: r.arg})
	case vim.ArgMark:
		a = e.markAction(a, r.arg)
	case vim.ArgRegister:
		a = e.registerAction(a, r.arg)
	}
	if r.entry.Object != 0 {
		a = a.WithPayload(e.objectPayload(r.entry.Object, r.entry.Inner))
	}
	return e.finishNormal(a)
}

// finishNormal applies the engine side of a Normal mode action.
func (e *Engine) finishNormal(a action.Action) *action.Action {
	if prompt, ok := prompts[a.Name]; ok {
		e.promptCount = a.Count
		e.oneShot = false
		e.openPrompt(prompt)
		return e.emit(a)
	}

	switch a.Name {
	case "search_next", "search_prev":
		a = e.repeatSearch(a)
	case "search_word_forward", "search_word_backward":
		a = e.searchWord(a)
	}

	next, leaves := normalModes[a.Name]
	if !leaves && (a.Operator == "c" || strings.HasPrefix(a.Name, "c_")) {
		next, leaves = mode.Insert, true
	}
	switch {
	case leaves:
		e.oneShot = false
		if next == mode.Insert {
			e.inserted.Reset()
		}
		e.switchMode(next)
	case e.oneShot:
		e.oneShot = false
		e.pending.clear()
		e.modes.Restore()
	}
	return e.emit(a)
}

// markAction sets or resolves a mark at the cursor.
func (e *Engine) markAction(a action.Action, name rune) action.Action {
	if !vim.IsValidMark(name) {
		return action.Errorf(action.KindParseError, string(name), "Invalid mark name: %c", name)
	}

	here := e.cursorMark()
	if a.Name == nameSetMark {
		if err := e.marks.Set(name, here); err != nil {
			return action.Error(action.KindParseError, err.Error(), string(name))
		}
		return a.WithPayload(markRef(name, here))
	}

	m, ok := e.marks.Get(name)
	if !ok {
		return action.NoMatch(fmt.Sprintf("Mark not set: %c", name))
	}
	if e.synced {
		// The jump itself becomes the ' mark, as in Vim.
		_ = e.marks.Set('\'', here)
	}
	return a.WithPayload(markRef(name, m))
}

func markRef(name rune, m vim.Mark) action.MarkRef {
	return action.MarkRef{
		Mark:     name,
		Resolved: true,
		Line:     m.Line,
		Column:   m.Column,
		FilePath: m.FilePath,
	}
}

// cursorMark returns the primary cursor as a mark.
func (e *Engine) cursorMark() vim.Mark {
	offset := e.cursorOffset()
	return vim.Mark{
		Line:     cursor.Line(e.snap.Text, offset),
		Column:   cursor.Column(e.snap.Text, offset),
		FilePath: e.snap.FilePath,
	}
}

// registerAction starts a recording or names a macro to play.
func (e *Engine) registerAction(a action.Action, name rune) action.Action {
	switch a.Name {
	case nameRecordMacro:
		if err := e.recorder.Start(name); err != nil {
			return action.Error(action.KindParseError, err.Error(), string(name))
		}
		e.log.Debug("macro recording started", "register", string(name))
	case nameExecuteMacro:
		if macro.Normalize(name) == 0 && name != '@' && name != ':' {
			return action.Errorf(action.KindParseError, string(name), "Invalid register name: %c", name)
		}
	}
	return a.WithPayload(action.RegisterRef{Name: name})
}

// stopRecording ends the current recording.
func (e *Engine) stopRecording() *action.Action {
	reg, events, err := e.recorder.Stop()
	if err != nil {
		return e.emit(action.Error(action.KindParseError, err.Error(), "q"))
	}
	e.log.Debug("macro recording stopped", "register", string(reg), "keys", len(events))
	return e.emit(action.NewWith(nameStopRecording, action.RegisterRef{Name: reg}))
}

// objectPayload describes a text object, resolved at the cursor when a
// snapshot is available.
func (e *Engine) objectPayload(trigger rune, inner bool) action.TextObject {
	obj := action.TextObject{Object: vim.ObjectNames[trigger], Inner: inner}
	if !e.synced {
		return obj
	}
	if r, ok := e.resolver.FindRune(e.snap.Text, e.cursorOffset(), trigger, inner); ok {
		obj.Found = true
		obj.Start = r.Start
		obj.End = r.End
	}
	return obj
}
