package cursor

import "fmt"

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// Selection is a value type.
type Selection struct {
	Anchor  int
	Head    int
	Primary bool
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection with no extent.
func NewCursorSelection(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	return max(s.Anchor, s.Head)
}

// IsEmpty returns true if the selection is just a cursor.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the length of the selection in bytes.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// IsBackward returns true if the head is before the anchor.
func (s Selection) IsBackward() bool {
	return s.Head < s.Anchor
}

// Flip returns the selection with anchor and head swapped.
func (s Selection) Flip() Selection {
	s.Anchor, s.Head = s.Head, s.Anchor
	return s
}

// Touches returns true if selections overlap or are adjacent.
func (s Selection) Touches(other Selection) bool {
	return s.Start() <= other.End() && other.Start() <= s.End()
}

// Merge returns a forward selection covering both; primary if either was.
func (s Selection) Merge(other Selection) Selection {
	return Selection{
		Anchor:  min(s.Start(), other.Start()),
		Head:    max(s.End(), other.End()),
		Primary: s.Primary || other.Primary,
	}
}

// Clamp returns the selection limited to [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	s.Anchor = max(0, min(s.Anchor, maxOffset))
	s.Head = max(0, min(s.Head, maxOffset))
	return s
}

// Text returns the selected slice of text, clamped to its bounds.
func (s Selection) Text(text string) string {
	c := s.Clamp(len(text))
	return text[c.Start():c.End()]
}

// String returns a debug representation.
func (s Selection) String() string {
	mark := ""
	if s.Primary {
		mark = "*"
	}
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)%s", s.Head, mark)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)%s", s.Anchor, dir, s.Head, mark)
}

// SameRange returns true if two selections cover the same range,
// regardless of direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Start() == other.Start() && s.End() == other.End()
}
