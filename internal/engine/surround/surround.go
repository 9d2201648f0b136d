// Package surround adds, deletes and changes the delimiters around a
// selection.
package surround

import (
	"unicode/utf8"

	"github.com/floatingskies/mark-mark/internal/engine/cursor"
	"github.com/floatingskies/mark-mark/internal/engine/textobj"
)

// DefaultTag is the element name used when wrapping with 't'.
const DefaultTag = "tag"

var pairs = map[rune][2]string{
	'(': {"(", ")"},
	')': {"(", ")"},
	'b': {"(", ")"},
	'[': {"[", "]"},
	']': {"[", "]"},
	'{': {"{", "}"},
	'}': {"{", "}"},
	'B': {"{", "}"},
	'<': {"<", ">"},
	'>': {"<", ">"},
	't': {"<" + DefaultTag + ">", "</" + DefaultTag + ">"},
}

// Pair returns the open and close delimiters for ch. Characters without a
// known pair are used on both sides.
func Pair(ch rune) (open, close string) {
	if p, ok := pairs[ch]; ok {
		return p[0], p[1]
	}
	return string(ch), string(ch)
}

// Tag returns the open and close tags for an element name.
func Tag(name string) (open, close string) {
	return "<" + name + ">", "</" + name + ">"
}

// finder returns the text object locating an existing ch surround.
func finder(ch rune) (textobj.Finder, bool) {
	if f, ok := textobj.Lookup(ch); ok {
		switch ch {
		case 'w', 'W', 's', 'p', 'l', 'k', 'i':
			return nil, false
		}
		return f, true
	}
	if ch < utf8.RuneSelf && ch > ' ' {
		return textobj.Symmetric(byte(ch)), true
	}
	return nil, false
}

// Add wraps the selection's content in the pair for ch.
func Add(text string, sel cursor.Selection, ch rune) string {
	open, close := Pair(ch)
	return Wrap(text, sel, open, close)
}

// Wrap surrounds the selection's content with open and close.
func Wrap(text string, sel cursor.Selection, open, close string) string {
	c := sel.Clamp(len(text))
	start, end := c.Start(), c.End()
	return text[:start] + open + text[start:end] + close + text[end:]
}

// bounds returns the around and inner ranges of the ch surround at the
// selection head.
func bounds(text string, sel cursor.Selection, ch rune) (around, inner textobj.Range, ok bool) {
	f, ok := finder(ch)
	if !ok {
		return around, inner, false
	}
	around, ok = f.Find(text, sel.Head, false)
	if !ok {
		return around, inner, false
	}
	inner, ok = f.Find(text, sel.Head, true)
	return around, inner, ok
}

// Delete removes the ch delimiters around the selection head, keeping the
// content. The text is returned unchanged with ok false when there is no
// such surround.
func Delete(text string, sel cursor.Selection, ch rune) (string, bool) {
	around, inner, ok := bounds(text, sel, ch)
	if !ok {
		return text, false
	}
	return text[:around.Start] + inner.Text(text) + text[around.End:], true
}

// Change replaces the oldCh delimiters around the selection head with the
// pair for newCh, keeping the content verbatim.
func Change(text string, sel cursor.Selection, oldCh, newCh rune) (string, bool) {
	around, inner, ok := bounds(text, sel, oldCh)
	if !ok {
		return text, false
	}
	open, close := Pair(newCh)
	return text[:around.Start] + open + inner.Text(text) + close + text[around.End:], true
}
