package textobj

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordFinder finds words (letters, digits, underscore) or WORDs (runs of
// non-whitespace).
type wordFinder struct {
	big bool
}

func (w wordFinder) match(r rune) bool {
	if w.big {
		return !unicode.IsSpace(r)
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Find expands from the cursor while the character class holds.
// Around also takes the whitespace after the word, or before it when
// there is none after.
func (w wordFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	if cursor < 0 || cursor >= len(text) {
		return Range{}, false
	}
	pos := cursor
	for pos > 0 && !utf8.RuneStart(text[pos]) {
		pos--
	}

	start := pos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !w.match(r) {
			break
		}
		start -= size
	}
	end := pos
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !w.match(r) {
			break
		}
		end += size
	}
	if start == end {
		return Range{}, false
	}
	if inner {
		return Range{Start: start, End: end}, true
	}

	around := end
	for around < len(text) && isBlank(text[around]) {
		around++
	}
	if around > end {
		return Range{Start: start, End: around}, true
	}
	before := start
	for before > 0 && isBlank(text[before-1]) {
		before--
	}
	return Range{Start: before, End: end}, true
}

// isBlank reports spaces and tabs; line breaks end a word's whitespace.
func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// sentenceBreaks returns the non-overlapping spans of terminal punctuation
// followed by whitespace, scanning left to right.
func sentenceBreaks(text string) []Range {
	var breaks []Range
	i := 0
	for i < len(text) {
		if !isSentenceEnd(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isSentenceEnd(text[j]) {
			j++
		}
		k := j
		for k < len(text) {
			r, size := utf8.DecodeRuneInString(text[k:])
			if !unicode.IsSpace(r) {
				break
			}
			k += size
		}
		if k > j {
			breaks = append(breaks, Range{Start: i, End: k})
			i = k
		} else {
			i = j
		}
	}
	return breaks
}

// sentenceFinder finds sentences bounded by [.!?]+ followed by whitespace.
type sentenceFinder struct{}

// Find returns from the end of the last break before the cursor to the
// end of the first break after it. Inner drops the trailing whitespace.
func (sentenceFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	pos := cursor
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}

	start := 0
	if breaks := sentenceBreaks(text[:pos]); len(breaks) > 0 {
		start = breaks[len(breaks)-1].End
	}
	end := len(text)
	if breaks := sentenceBreaks(text[pos:]); len(breaks) > 0 {
		end = pos + breaks[0].End
	}

	if inner {
		end = start + len(strings.TrimRightFunc(text[start:end], unicode.IsSpace))
	}
	if start >= end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// lineIndex returns the 0-based line containing byte offset pos.
func lineIndex(text string, pos int) int {
	return strings.Count(text[:pos], "\n")
}

// lineOffsets returns the byte offset of the start of each line.
func lineOffsets(lines []string) []int {
	offsets := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		offsets[i] = off
		off += len(l) + 1
	}
	return offsets
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// paragraphFinder finds runs of non-blank lines.
type paragraphFinder struct{}

// Find expands from the cursor line to the nearest blank line above and
// below. Inner stops before the final newline; around also takes the
// blank lines that follow.
func (paragraphFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	pos := cursor
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}

	lines := strings.Split(text, "\n")
	offsets := lineOffsets(lines)
	line := lineIndex(text, pos)

	first := line
	for first > 0 && !isBlankLine(lines[first-1]) {
		first--
	}
	last := line
	for last < len(lines)-1 && !isBlankLine(lines[last+1]) {
		last++
	}

	start := offsets[first]
	end := offsets[last] + len(lines[last])

	if !inner {
		next := last + 1
		for next < len(lines) && isBlankLine(lines[next]) {
			next++
		}
		if next > last+1 {
			if next < len(lines) {
				end = offsets[next]
			} else {
				end = len(text)
			}
		}
	}
	return Range{Start: start, End: end}, true
}

// indentFinder finds the block of lines indented at least as far as the
// cursor line.
type indentFinder struct{}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// Find takes the surrounding lines that are blank or indented at least as
// far as the cursor line. Around also takes the line above the block.
func (indentFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	if cursor < 0 || cursor > len(text) {
		return Range{}, false
	}
	lines := strings.Split(text, "\n")
	offsets := lineOffsets(lines)
	line := lineIndex(text, cursor)
	if isBlankLine(lines[line]) {
		return Range{}, false
	}
	width := indentWidth(lines[line])

	within := func(l string) bool {
		return isBlankLine(l) || indentWidth(l) >= width
	}

	first := line
	for first > 0 && within(lines[first-1]) {
		first--
	}
	last := line
	for last < len(lines)-1 && within(lines[last+1]) {
		last++
	}
	for first < line && isBlankLine(lines[first]) {
		first++
	}
	for last > line && isBlankLine(lines[last]) {
		last--
	}

	if !inner && first > 0 {
		first--
	}
	return Range{Start: offsets[first], End: offsets[last] + len(lines[last])}, true
}
