package textobj

// pairFinder finds balanced bracket pairs such as () [] {} <>.
type pairFinder struct {
	open  byte
	close byte
}

// Find scans backward for an unmatched open character, then forward from
// it for the close character that balances it.
func (p pairFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	pos, ok := clampCursor(text, cursor)
	if !ok {
		return Range{}, false
	}

	start := -1
	depth := 0
	for i := pos; i >= 0 && start < 0; i-- {
		switch text[i] {
		case p.close:
			// A close under the cursor belongs to the pair being searched for.
			if i != pos {
				depth++
			}
		case p.open:
			if depth == 0 {
				start = i
			} else {
				depth--
			}
		}
	}
	if start < 0 {
		return Range{}, false
	}

	end := -1
	depth = 0
	for i := start; i < len(text); i++ {
		if text[i] == p.open {
			depth++
		} else if text[i] == p.close {
			depth--
			if depth == 0 {
				end = i
				break
			}
		}
	}
	if end < 0 {
		return Range{}, false
	}

	if inner {
		return Range{Start: start + 1, End: end}, true
	}
	return Range{Start: start, End: end + 1}, true
}

// quoteFinder finds quoted strings. A quote preceded by a backslash is
// escaped and never a boundary.
type quoteFinder struct {
	quote byte
}

func (q quoteFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	pos, ok := clampCursor(text, cursor)
	if !ok {
		return Range{}, false
	}

	start := -1
	for i := pos; i >= 0; i-- {
		if text[i] != q.quote {
			continue
		}
		if i > 0 && text[i-1] == '\\' {
			continue
		}
		start = i
		break
	}
	if start < 0 {
		return Range{}, false
	}

	end := -1
	for i := start + 1; i < len(text); i++ {
		if text[i] == q.quote && text[i-1] != '\\' {
			end = i
			break
		}
	}
	if end < 0 {
		return Range{}, false
	}

	if inner {
		return Range{Start: start + 1, End: end}, true
	}
	return Range{Start: start, End: end + 1}, true
}

// Symmetric returns a finder for text enclosed by the same ASCII delimiter
// on both sides, with backslash escapes honoured.
func Symmetric(delim byte) Finder {
	return quoteFinder{quote: delim}
}
