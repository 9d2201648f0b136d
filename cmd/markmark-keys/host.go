package main

import (
	"unicode/utf8"

	"github.com/floatingskies/mark-mark/internal/engine/cursor"
	"github.com/floatingskies/mark-mark/internal/input"
	"github.com/floatingskies/mark-mark/internal/input/action"
)

// host is a minimal editor around the engine. It applies the actions whose
// payload fully describes the result and hands the new state back.
type host struct {
	engine *input.Engine
	path   string
	text   string
	sels   []cursor.Selection
	quit   bool
}

func newHost(e *input.Engine, path, text string) *host {
	h := &host{
		engine: e,
		path:   path,
		text:   text,
		sels:   []cursor.Selection{cursor.NewCursorSelection(0)},
	}
	h.sync()
	return h
}

func (h *host) sync() {
	h.engine.Sync(input.Snapshot{Text: h.text, Selections: h.sels, FilePath: h.path})
}

// cursor returns the primary head.
func (h *host) cursor() int {
	for _, sel := range h.sels {
		if sel.Primary {
			return sel.Head
		}
	}
	return 0
}

func (h *host) setCursor(offset int) {
	h.sels = []cursor.Selection{cursor.NewCursorSelection(offset)}
}

// apply updates the host state for a and syncs the engine.
func (h *host) apply(a action.Action) {
	switch p := a.Payload.(type) {
	case action.Substitute:
		if p.Applied {
			h.text = p.NewText
			h.setCursor(min(h.cursor(), len(h.text)))
		}
	case action.Search:
		if p.Found {
			h.setCursor(p.Start)
		}
	case action.Selections:
		h.sels = h.sels[:0]
		for _, sel := range p.Selections {
			h.sels = append(h.sels, cursor.Selection{Anchor: sel.Anchor, Head: sel.Head, Primary: sel.Primary})
		}
	case action.MarkRef:
		if p.Resolved && a.Name != "set_mark" {
			h.setCursor(cursor.OffsetAt(h.text, p.Line, p.Column))
		}
	case action.Char:
		switch a.Name {
		case "insert_char":
			h.insert(string(p.Char))
		case "replace_char":
			h.replace(p.Char)
		}
	}

	switch a.Name {
	case "insert_newline":
		h.insert("\n")
	case "insert_tab":
		h.insert("\t")
	case "delete_char_before":
		h.deleteBefore()
	case "clear_selection":
		h.setCursor(h.cursor())
	case "quit", "force_quit", "quit_all", "force_quit_all", "save_and_quit":
		h.quit = true
	}
	h.sync()
}

func (h *host) insert(s string) {
	at := h.cursor()
	h.text = h.text[:at] + s + h.text[at:]
	h.setCursor(at + len(s))
}

func (h *host) replace(r rune) {
	at := h.cursor()
	if at >= len(h.text) || h.text[at] == '\n' {
		h.insert(string(r))
		return
	}
	_, size := utf8.DecodeRuneInString(h.text[at:])
	h.text = h.text[:at] + string(r) + h.text[at+size:]
	h.setCursor(at + len(string(r)))
}

func (h *host) deleteBefore() {
	at := h.cursor()
	if at == 0 {
		return
	}
	start := at - 1
	for start > 0 && !utf8.RuneStart(h.text[start]) {
		start--
	}
	h.text = h.text[:start] + h.text[at:]
	h.setCursor(start)
}
