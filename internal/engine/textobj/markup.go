package textobj

import "strings"

// tag is one parsed markup tag.
type tag struct {
	start   int
	end     int
	name    string
	closing bool
}

func isTagNameByte(b byte, first bool) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case first:
		return false
	case b >= '0' && b <= '9', b == '-', b == '_', b == ':', b == '.':
		return true
	}
	return false
}

// scanTags returns the open and close tags of text in order.
// Comments, declarations and self-closing tags are skipped.
func scanTags(text string) []tag {
	var tags []tag
	for i := 0; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		gt := strings.IndexByte(text[i+1:], '>')
		if gt < 0 {
			break
		}
		body := text[i+1 : i+1+gt]
		t := tag{start: i, end: i + gt + 2}
		if strings.HasPrefix(body, "/") {
			t.closing = true
			body = strings.TrimSpace(body[1:])
		}
		n := 0
		for n < len(body) && isTagNameByte(body[n], n == 0) {
			n++
		}
		if n == 0 {
			continue
		}
		if !t.closing && strings.HasSuffix(body, "/") {
			i = t.end - 1
			continue
		}
		t.name = body[:n]
		tags = append(tags, t)
		i = t.end - 1
	}
	return tags
}

// tagFinder finds markup elements <name ...>...</name>.
type tagFinder struct{}

// Find walks back from the cursor to the nearest open tag not closed
// before the cursor, then forward to its matching close tag.
func (tagFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	pos, ok := clampCursor(text, cursor)
	if !ok {
		return Range{}, false
	}
	tags := scanTags(text)

	open := -1
	depth := make(map[string]int)
	for i := len(tags) - 1; i >= 0 && open < 0; i-- {
		t := tags[i]
		if t.start > pos {
			continue
		}
		if t.closing {
			if pos < t.end {
				continue
			}
			depth[t.name]++
			continue
		}
		if depth[t.name] == 0 {
			open = i
		} else {
			depth[t.name]--
		}
	}
	if open < 0 {
		return Range{}, false
	}

	name := tags[open].name
	level := 0
	for i := open; i < len(tags); i++ {
		t := tags[i]
		if t.name != name {
			continue
		}
		if !t.closing {
			level++
			continue
		}
		level--
		if level == 0 {
			if inner {
				return Range{Start: tags[open].end, End: t.start}, true
			}
			return Range{Start: tags[open].start, End: t.end}, true
		}
	}
	return Range{}, false
}

// linkFinder finds markdown links [text](url).
type linkFinder struct{}

// Inner is the link text; around is the whole link.
func (linkFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	i := 0
	for i < len(text) {
		open := strings.IndexByte(text[i:], '[')
		if open < 0 {
			break
		}
		open += i
		label := open + 1
		closeText := label
		for closeText < len(text) && text[closeText] != ']' {
			closeText++
		}
		if closeText == label || closeText+1 >= len(text) || text[closeText+1] != '(' {
			i = open + 1
			continue
		}
		url := closeText + 2
		closeURL := url
		for closeURL < len(text) && text[closeURL] != ')' {
			closeURL++
		}
		if closeURL == url || closeURL >= len(text) {
			i = open + 1
			continue
		}
		end := closeURL + 1
		if open <= cursor && cursor <= end {
			if inner {
				return Range{Start: label, End: closeText}, true
			}
			return Range{Start: open, End: end}, true
		}
		i = end
	}
	return Range{}, false
}

const fence = "```"

// codeBlockFinder finds fenced code blocks.
type codeBlockFinder struct{}

// Inner runs from after the opening fence line to the closing fence;
// around covers both fences.
func (codeBlockFinder) Find(text string, cursor int, inner bool) (Range, bool) {
	i := 0
	for {
		open := strings.Index(text[i:], fence)
		if open < 0 {
			return Range{}, false
		}
		open += i
		nl := strings.IndexByte(text[open+len(fence):], '\n')
		if nl < 0 {
			return Range{}, false
		}
		nl += open + len(fence)
		closing := strings.Index(text[nl+1:], fence)
		if closing < 0 {
			return Range{}, false
		}
		closing += nl + 1
		end := closing + len(fence)
		if open <= cursor && cursor <= end {
			if inner {
				return Range{Start: nl + 1, End: closing}, true
			}
			return Range{Start: open, End: end}, true
		}
		i = end
	}
}
