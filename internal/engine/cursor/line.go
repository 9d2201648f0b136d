package cursor

import (
	"strings"

	"github.com/rivo/uniseg"
)

// lineBounds returns the start and end (excluding the newline) of the line
// containing offset.
func lineBounds(text string, offset int) (start, end int) {
	offset = max(0, min(offset, len(text)))
	start = strings.LastIndexByte(text[:offset], '\n') + 1
	end = strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return start, len(text)
	}
	return start, offset + end
}

// Column returns the 0-based column of offset in grapheme clusters.
func Column(text string, offset int) int {
	offset = max(0, min(offset, len(text)))
	start, _ := lineBounds(text, offset)
	return uniseg.GraphemeClusterCount(text[start:offset])
}

// Line returns the 0-based line number of offset.
func Line(text string, offset int) int {
	offset = max(0, min(offset, len(text)))
	return strings.Count(text[:offset], "\n")
}

// offsetAtColumn returns the offset of the col-th grapheme cluster of the
// line [start, end), clamped to the end of the line.
func offsetAtColumn(text string, start, end, col int) int {
	pos := start
	state := -1
	for i := 0; i < col && pos < end; i++ {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(text[pos:end], state)
		pos += len(cluster)
	}
	return pos
}

// OffsetAt returns the offset of 0-based line and grapheme column, clamped
// to the text and to the length of the line.
func OffsetAt(text string, line, col int) int {
	start := 0
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			break
		}
		start += nl + 1
	}
	_, end := lineBounds(text, start)
	return offsetAtColumn(text, start, end, max(0, col))
}
