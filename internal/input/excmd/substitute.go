package excmd

import (
	"regexp"
	"strings"

	"github.com/floatingskies/mark-mark/internal/engine/search"
	"github.com/floatingskies/mark-mark/internal/input/action"
)

// validDelimiter reports whether b can delimit a pattern.
func validDelimiter(b byte) bool {
	return !isLetter(b) && !isDigit(b) && b != '\\' && b != '"' && b != '|' && b != ' '
}

// nextField reads up to the first unescaped delim. An escaped delimiter
// becomes literal; other escapes are kept for the regular expression.
func nextField(s string, delim byte) (field, rest string, closed bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			if s[i+1] != delim {
				b.WriteByte('\\')
			}
			b.WriteByte(s[i+1])
			i++
		case s[i] == delim:
			return b.String(), s[i+1:], true
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), "", false
}

// SubstituteSpec is a parsed s<d>pattern<d>replacement<d>flags argument.
type SubstituteSpec struct {
	Pattern     string
	Replacement string
	Flags       string
}

// Global reports the g flag.
func (s SubstituteSpec) Global() bool {
	return strings.ContainsRune(s.Flags, 'g')
}

// ParseSubstitute parses the arguments of :s, starting at the delimiter.
func ParseSubstitute(args string) (SubstituteSpec, bool, string) {
	if args == "" || !validDelimiter(args[0]) {
		return SubstituteSpec{}, false, "Invalid substitute syntax"
	}
	delim := args[0]
	pattern, rest, ok := nextField(args[1:], delim)
	if !ok {
		return SubstituteSpec{}, false, "Invalid substitute syntax"
	}
	replacement, flags, _ := nextField(rest, delim)
	flags = strings.TrimSpace(flags)
	for _, f := range flags {
		if f != 'g' && f != 'i' && f != 'I' {
			return SubstituteSpec{}, false, "Invalid substitute flags: " + flags
		}
	}
	return SubstituteSpec{Pattern: pattern, Replacement: replacement, Flags: flags}, true, ""
}

// fold decides case folding: the options first, then i and I in order.
func (c *call) fold(pattern, flags string) bool {
	fold := search.FoldCase(pattern, c.d.opts)
	for _, f := range flags {
		switch f {
		case 'i':
			fold = true
		case 'I':
			fold = false
		}
	}
	return fold
}

func substitute(c *call) action.Action {
	spec, ok, msg := ParseSubstitute(c.cmd.Args)
	if !ok {
		return action.ParseError(msg)
	}
	r, problem := c.lineRange(".", "")
	if problem != nil {
		return *problem
	}
	payload := action.Substitute{Range: r, Pattern: spec.Pattern, Replacement: spec.Replacement, Flags: spec.Flags}

	pattern := spec.Pattern
	if pattern == "" && c.snap != nil {
		pattern = c.snap.LastPattern
		if pattern == "" {
			return action.ParseError("No previous regular expression")
		}
		payload.Pattern = pattern
	}
	if pattern == "" {
		return action.NewWith("substitute", payload)
	}
	re, err := c.d.searcher.CompileFold(pattern, c.fold(pattern, spec.Flags))
	if err != nil {
		return action.Error(action.KindParseError, err.Error(), pattern)
	}
	if c.snap == nil {
		return action.NewWith("substitute", payload)
	}

	text, n := Substitute(c.snap.Text, r.First, r.Last, re, spec.Replacement, spec.Global())
	if n == 0 {
		return action.NoMatch("Pattern not found: " + pattern)
	}
	payload.Applied = true
	payload.NewText = text
	payload.NumReplacements = n
	return action.NewWith("substitute", payload)
}

// Substitute replaces matches of re on the 1-based lines first..last of
// text. Without all only the first match of each line is replaced. It
// returns the new text and the number of replacements.
func Substitute(text string, first, last int, re *regexp.Regexp, replacement string, all bool) (string, int) {
	lines := splitLines(text)
	trailing := strings.HasSuffix(text, "\n")
	first = max(1, first)
	last = min(last, len(lines))

	count := 0
	for i := first - 1; i < last; i++ {
		limit := 1
		if all {
			limit = -1
		}
		matches := re.FindAllStringSubmatchIndex(lines[i], limit)
		if len(matches) == 0 {
			continue
		}
		line := lines[i]
		var b strings.Builder
		prev := 0
		for _, m := range matches {
			b.WriteString(line[prev:m[0]])
			b.WriteString(expand(replacement, line, m))
			prev = m[1]
		}
		b.WriteString(line[prev:])
		lines[i] = b.String()
		count += len(matches)
	}

	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out, count
}

// expand renders a replacement: & and \0 insert the match, \1..\9 a group,
// \n and \r a line break, \t a tab; any other escaped character is
// literal.
func expand(replacement, line string, m []int) string {
	group := func(k int) string {
		if 2*k+1 >= len(m) || m[2*k] < 0 {
			return ""
		}
		return line[m[2*k]:m[2*k+1]]
	}
	var b strings.Builder
	for i := 0; i < len(replacement); i++ {
		ch := replacement[i]
		switch {
		case ch == '&':
			b.WriteString(group(0))
		case ch == '\\' && i+1 < len(replacement):
			i++
			esc := replacement[i]
			switch {
			case isDigit(esc):
				b.WriteString(group(int(esc - '0')))
			case esc == 'n' || esc == 'r':
				b.WriteByte('\n')
			case esc == 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func global(inverse bool) handler {
	return func(c *call) action.Action {
		args := c.cmd.Args
		if args == "" || !validDelimiter(args[0]) {
			return action.ParseError("Invalid global syntax")
		}
		pattern, command, ok := nextField(args[1:], args[0])
		if !ok || pattern == "" {
			return action.ParseError("Invalid global syntax")
		}
		re, err := c.d.searcher.CompileFold(pattern, c.fold(pattern, ""))
		if err != nil {
			return action.Error(action.KindParseError, err.Error(), pattern)
		}
		r, problem := c.lineRange("1", "$")
		if problem != nil {
			return *problem
		}
		payload := action.Global{Range: r, Pattern: pattern, Command: strings.TrimSpace(command), Inverse: inverse}
		if c.snap == nil {
			return action.NewWith("global", payload)
		}

		lines := splitLines(c.snap.Text)
		payload.Lines = []int{}
		for i := r.First - 1; i < r.Last; i++ {
			if re.MatchString(lines[i]) != inverse {
				payload.Lines = append(payload.Lines, i+1)
			}
		}
		if len(payload.Lines) == 0 {
			if inverse {
				return action.NoMatch("Pattern found in every line: " + pattern)
			}
			return action.NoMatch("Pattern not found: " + pattern)
		}
		return action.NewWith("global", payload)
	}
}
