package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Char is shorthand for an unmodified character event.
func Char(r rune) Event {
	return NewRuneEvent(r, ModNone)
}

// Ctrl is shorthand for Ctrl plus a character.
func Ctrl(r rune) Event {
	return NewRuneEvent(unicode.ToLower(r), ModCtrl)
}

// Special is shorthand for an unmodified special key.
func Special(k Key) Event {
	return NewSpecialEvent(k, ModNone)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// HasCtrl reports whether the Ctrl modifier is set.
func (e Event) HasCtrl() bool {
	return e.Modifiers.HasCtrl()
}

// IsCtrlRune reports whether the event is Ctrl plus the given letter.
func (e Event) IsCtrlRune(r rune) bool {
	return e.IsRune() && e.HasCtrl() && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// IsEscape returns true for Escape, regardless of modifiers.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape
}

// IsCancel returns true for Escape or Ctrl-C.
func (e Event) IsCancel() bool {
	return e.IsEscape() || e.IsCtrlRune('c')
}

// Text returns the literal text the event would insert, or "" for
// special and modified keys.
func (e Event) Text() string {
	if !e.IsRune() || e.IsModified() {
		return ""
	}
	return string(e.Rune)
}

// String returns the Vim-style notation for the event.
// Examples: "a", "<Esc>", "<C-r>", "<CR>", "<Space>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "D")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var name string
	switch e.Key {
	case KeyRune:
		switch e.Rune {
		case ' ':
			name = "Space"
		case '<':
			name = "lt"
		default:
			name = string(e.Rune)
		}
	case KeyEscape:
		name = "Esc"
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return "<" + strings.Join(parts, "-") + ">"
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
