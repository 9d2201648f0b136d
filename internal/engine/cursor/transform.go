package cursor

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform is a pure function applied to the content of each selection.
type Transform func(string) string

// Identity returns s unchanged.
func Identity(s string) string {
	return s
}

// Upper maps s to upper case.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower maps s to lower case.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToggleCase swaps the case of each letter.
func ToggleCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// Edit replaces the bytes [Start, End) with NewText.
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Delta returns the change in text length caused by the edit.
func (e Edit) Delta() int {
	return len(e.NewText) - (e.End - e.Start)
}

// TransformOffset updates an offset after an edit.
//
// Transformation rules:
//   - If edit is entirely before offset: adjust offset by the edit's delta
//   - If edit starts at or after offset: offset unchanged
//   - If edit spans offset: move offset to end of new text
func TransformOffset(offset int, edit Edit) int {
	if edit.End <= offset {
		return offset + edit.Delta()
	}
	if edit.Start >= offset {
		return offset
	}
	return edit.Start + len(edit.NewText)
}

// TransformSelection updates a selection after an edit.
func TransformSelection(sel Selection, edit Edit) Selection {
	sel.Anchor = TransformOffset(sel.Anchor, edit)
	sel.Head = TransformOffset(sel.Head, edit)
	return sel
}
