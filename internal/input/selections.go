package input

import (
	"cmp"
	"slices"

	"github.com/floatingskies/mark-mark/internal/engine/cursor"
	"github.com/floatingskies/mark-mark/internal/engine/surround"
	"github.com/floatingskies/mark-mark/internal/input/action"
)

// The operations below act on the synced snapshot and the engine's
// selections. Operations returning text do not update the snapshot; the
// host applies the text and calls Sync.

// SelectObject selects the text object kind at every cursor. kind is a
// built-in trigger character or a custom object name.
func (e *Engine) SelectObject(kind string, inner bool) action.Action {
	scope := "around"
	if inner {
		scope = "inner"
	}
	a := action.New("select_" + scope + "_" + kind)
	return *e.emit(e.selectObject(a, kind, inner))
}

// SplitSelections replaces each selection with one selection per match of
// pattern inside it.
func (e *Engine) SplitSelections(pattern string) action.Action {
	re, err := e.searcher.Compile(pattern, e.cfg.SearchOptions())
	if err != nil {
		return *e.emit(action.Error(action.KindParseError, err.Error(), pattern))
	}
	if !e.selections.SplitByRegex(e.snap.Text, re) {
		return *e.emit(action.NoMatch("Pattern not found: " + pattern))
	}
	return *e.emit(action.NewWith("split_selection", selectionsPayload(e.selections)))
}

// ExtendSelections moves every head to the next or previous word boundary.
func (e *Engine) ExtendSelections(forward bool) action.Action {
	e.selections.ExtendToWordBoundary(e.snap.Text, forward)
	name := "extend_word_backward"
	if forward {
		name = "extend_word_forward"
	}
	return *e.emit(action.NewWith(name, selectionsPayload(e.selections)))
}

// SelectionContents returns the text of every selection.
func (e *Engine) SelectionContents() []string {
	return e.selections.Contents(e.snap.Text)
}

// ApplyToSelections runs fn over every selection and returns the new text.
// The engine's selections are updated to span the replacements.
func (e *Engine) ApplyToSelections(fn cursor.Transform) string {
	return e.selections.Apply(e.snap.Text, fn)
}

// AddSurround wraps every selection in the pair for ch.
func (e *Engine) AddSurround(ch rune) string {
	return e.surroundEach(func(text string, sel cursor.Selection) (string, bool) {
		return surround.Add(text, sel, ch), true
	})
}

// DeleteSurround removes the ch pair around every selection. It reports
// whether any pair was found.
func (e *Engine) DeleteSurround(ch rune) (string, bool) {
	return e.surroundFind(func(text string, sel cursor.Selection) (string, bool) {
		return surround.Delete(text, sel, ch)
	})
}

// ChangeSurround replaces the oldCh pair around every selection with the
// newCh pair.
func (e *Engine) ChangeSurround(oldCh, newCh rune) (string, bool) {
	return e.surroundFind(func(text string, sel cursor.Selection) (string, bool) {
		return surround.Change(text, sel, oldCh, newCh)
	})
}

func (e *Engine) surroundEach(fn func(string, cursor.Selection) (string, bool)) string {
	text, _ := e.surroundFind(fn)
	return text
}

// surroundFind applies fn per selection, highest start first, so that
// earlier offsets stay valid.
func (e *Engine) surroundFind(fn func(string, cursor.Selection) (string, bool)) (string, bool) {
	text := e.snap.Text
	sels := e.selections.All()
	slices.SortStableFunc(sels, func(a, b cursor.Selection) int {
		return cmp.Compare(b.Start(), a.Start())
	})
	found := false
	for _, sel := range sels {
		if next, ok := fn(text, sel); ok {
			text = next
			found = true
		}
	}
	return text, found
}
