package cursor

import (
	"regexp"
	"slices"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/floatingskies/mark-mark/internal/engine/textobj"
)

// SelectionSet manages multiple selections, exactly one of them primary.
// Unlike a sorted cursor set, order is insertion order so that the host
// can map results back to its own cursors.
type SelectionSet struct {
	selections []Selection
}

// NewSelectionSet creates a set holding a primary cursor at offset 0.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{selections: []Selection{{Primary: true}}}
}

// NewSelectionSetFrom creates a set from the given selections.
func NewSelectionSetFrom(sels []Selection) *SelectionSet {
	ss := &SelectionSet{}
	ss.Set(sels)
	return ss
}

// Set replaces all selections.
func (ss *SelectionSet) Set(sels []Selection) {
	ss.selections = slices.Clone(sels)
	ss.ensurePrimary()
}

// All returns a copy of all selections.
func (ss *SelectionSet) All() []Selection {
	return slices.Clone(ss.selections)
}

// Len returns the number of selections.
func (ss *SelectionSet) Len() int {
	return len(ss.selections)
}

// Get returns the selection at index.
func (ss *SelectionSet) Get(index int) (Selection, bool) {
	if index < 0 || index >= len(ss.selections) {
		return Selection{}, false
	}
	return ss.selections[index], true
}

// Primary returns the primary selection and its index.
// An empty set yields a cursor at 0 and index -1.
func (ss *SelectionSet) Primary() (Selection, int) {
	for i, sel := range ss.selections {
		if sel.Primary {
			return sel, i
		}
	}
	return Selection{Primary: true}, -1
}

// Cursors returns the head offset of every selection.
func (ss *SelectionSet) Cursors() []int {
	heads := make([]int, len(ss.selections))
	for i, sel := range ss.selections {
		heads[i] = sel.Head
	}
	return heads
}

// ensurePrimary leaves exactly one primary selection: the first flagged
// one, or index 0 when none is flagged.
func (ss *SelectionSet) ensurePrimary() {
	found := false
	for i := range ss.selections {
		if ss.selections[i].Primary && !found {
			found = true
			continue
		}
		ss.selections[i].Primary = false
	}
	if !found && len(ss.selections) > 0 {
		ss.selections[0].Primary = true
	}
}

// Add appends a selection. A primary selection takes the flag from the
// current primary.
func (ss *SelectionSet) Add(anchor, head int, primary bool) {
	if primary {
		for i := range ss.selections {
			ss.selections[i].Primary = false
		}
	}
	ss.selections = append(ss.selections, Selection{Anchor: anchor, Head: head, Primary: primary})
	ss.ensurePrimary()
}

// Remove deletes the selection at index. When the primary is removed the
// first remaining selection becomes primary.
func (ss *SelectionSet) Remove(index int) {
	if index < 0 || index >= len(ss.selections) {
		return
	}
	ss.selections = slices.Delete(ss.selections, index, index+1)
	ss.ensurePrimary()
}

// ClearToPrimaryCursor drops every selection but the primary, collapsed to
// its head.
func (ss *SelectionSet) ClearToPrimaryCursor() {
	p, _ := ss.Primary()
	ss.selections = []Selection{{Anchor: p.Head, Head: p.Head, Primary: true}}
}

// SelectAll replaces the set with one selection over the whole text.
func (ss *SelectionSet) SelectAll(length int) {
	ss.selections = []Selection{{Anchor: 0, Head: length, Primary: true}}
}

// replace swaps in sels when non-empty; the first becomes primary unless
// one is already flagged.
func (ss *SelectionSet) replace(sels []Selection) bool {
	if len(sels) == 0 {
		return false
	}
	ss.selections = sels
	ss.ensurePrimary()
	return true
}

// SplitByLine replaces the set with one selection per line intersecting
// any existing selection. The first line becomes primary.
func (ss *SelectionSet) SplitByLine(text string) bool {
	var out []Selection
	pos := 0
	for pos <= len(text) {
		end := len(text)
		if nl := indexByteFrom(text, '\n', pos); nl >= 0 {
			end = nl
		}
		for _, sel := range ss.selections {
			if sel.Start() <= end && sel.End() >= pos {
				out = append(out, Selection{Anchor: pos, Head: end, Primary: len(out) == 0})
				break
			}
		}
		pos = end + 1
	}
	return ss.replace(out)
}

func indexByteFrom(text string, b byte, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] == b {
			return i
		}
	}
	return -1
}

// SplitByRegex replaces the set with one selection per match of re within
// each existing selection's span. The set is unchanged when nothing matches.
func (ss *SelectionSet) SplitByRegex(text string, re *regexp.Regexp) bool {
	var out []Selection
	for _, sel := range ss.selections {
		c := sel.Clamp(len(text))
		for _, m := range re.FindAllStringIndex(text[c.Start():c.End()], -1) {
			out = append(out, Selection{
				Anchor:  c.Start() + m[0],
				Head:    c.Start() + m[1],
				Primary: len(out) == 0,
			})
		}
	}
	return ss.replace(out)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ExtendToWordBoundary moves every head past the rest of the current word
// and the gap after it (forward), or back over the gap and the previous
// word (backward).
func (ss *SelectionSet) ExtendToWordBoundary(text string, forward bool) {
	for i := range ss.selections {
		pos := max(0, min(ss.selections[i].Head, len(text)))
		if forward {
			pos = skipForward(text, pos, true)
			pos = skipForward(text, pos, false)
		} else {
			pos = skipBackward(text, pos, true)
			pos = skipBackward(text, pos, false)
		}
		ss.selections[i].Head = pos
	}
}

func skipForward(text string, pos int, word bool) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if isWordRune(r) != word {
			break
		}
		pos += size
	}
	return pos
}

func skipBackward(text string, pos int, word bool) int {
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:pos])
		if isWordRune(r) != word {
			break
		}
		pos -= size
	}
	return pos
}

// SelectTextObject replaces every selection with the object found at its
// head. Selections with no match are dropped; the set is unchanged when
// none match.
func (ss *SelectionSet) SelectTextObject(text string, obj textobj.Finder, inner bool) bool {
	var out []Selection
	for _, sel := range ss.selections {
		r, ok := obj.Find(text, sel.Head, inner)
		if !ok {
			continue
		}
		out = append(out, Selection{Anchor: r.Start, Head: r.End, Primary: sel.Primary})
	}
	return ss.replace(out)
}

// AddCursorBelow adds a cursor on the line below the primary head at the
// same grapheme column, clamped to the line's length.
func (ss *SelectionSet) AddCursorBelow(text string) bool {
	p, _ := ss.Primary()
	_, end := lineBounds(text, p.Head)
	if end >= len(text) {
		return false
	}
	nextStart, nextEnd := lineBounds(text, end+1)
	return ss.addCursor(offsetAtColumn(text, nextStart, nextEnd, Column(text, p.Head)))
}

// AddCursorAbove adds a cursor on the line above the primary head at the
// same grapheme column, clamped to the line's length.
func (ss *SelectionSet) AddCursorAbove(text string) bool {
	p, _ := ss.Primary()
	start, _ := lineBounds(text, p.Head)
	if start == 0 {
		return false
	}
	prevStart, prevEnd := lineBounds(text, start-1)
	return ss.addCursor(offsetAtColumn(text, prevStart, prevEnd, Column(text, p.Head)))
}

func (ss *SelectionSet) addCursor(offset int) bool {
	for _, sel := range ss.selections {
		if sel.IsEmpty() && sel.Head == offset {
			return false
		}
	}
	ss.Add(offset, offset, false)
	return true
}

// Flip swaps anchor and head of every selection.
func (ss *SelectionSet) Flip() {
	for i := range ss.selections {
		ss.selections[i] = ss.selections[i].Flip()
	}
}

// MergeConsecutive sorts selections by start and coalesces overlapping or
// touching ones. A merged selection is primary if any part was.
func (ss *SelectionSet) MergeConsecutive() {
	if len(ss.selections) < 2 {
		return
	}
	sorted := slices.Clone(ss.selections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start() < sorted[j].Start()
	})
	merged := sorted[:1]
	for _, sel := range sorted[1:] {
		last := &merged[len(merged)-1]
		if sel.Start() <= last.End() {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	ss.selections = merged
	ss.ensurePrimary()
}

// Contents returns the text of every selection.
func (ss *SelectionSet) Contents(text string) []string {
	out := make([]string, len(ss.selections))
	for i, sel := range ss.selections {
		out[i] = sel.Text(text)
	}
	return out
}

// Apply runs fn over the content of every selection and returns the new
// text. Overlapping selections are first merged into one, so every byte
// covered by a selection is transformed exactly once. Edits run from the
// highest start down and each selection then spans its replacement.
func (ss *SelectionSet) Apply(text string, fn Transform) string {
	if len(ss.selections) == 0 {
		return text
	}
	sorted := make([]Selection, len(ss.selections))
	for i, sel := range ss.selections {
		sorted[i] = sel.Clamp(len(text))
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start() != sorted[j].Start() {
			return sorted[i].Start() < sorted[j].Start()
		}
		return sorted[i].End() < sorted[j].End()
	})
	merged := sorted[:1]
	for _, sel := range sorted[1:] {
		last := &merged[len(merged)-1]
		if sel.Start() < last.End() {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}

	for i := len(merged) - 1; i >= 0; i-- {
		start, end := merged[i].Start(), merged[i].End()
		replacement := fn(text[start:end])
		edit := Edit{Start: start, End: end, NewText: replacement}
		text = text[:start] + replacement + text[end:]
		for j := i + 1; j < len(merged); j++ {
			merged[j] = TransformSelection(merged[j], edit)
		}
		merged[i] = Selection{Anchor: start, Head: start + len(replacement), Primary: merged[i].Primary}
	}
	ss.selections = merged
	ss.ensurePrimary()
	return text
}
