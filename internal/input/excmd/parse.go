package excmd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is returned for command lines that cannot be split into
// range, name and arguments.
var ErrSyntax = errors.New("invalid command syntax")

// Range is a line range as typed. Tokens are a line number, "." or "$";
// an empty Start means no range was given.
type Range struct {
	Start string
	End   string
}

// IsSet reports whether a range was typed.
func (r Range) IsSet() bool {
	return r.Start != "" || r.End != ""
}

// Command is a parsed command line.
type Command struct {
	Raw   string
	Range Range
	Name  string
	Args  string
}

// IsEmpty reports whether the command line was blank.
func (c Command) IsEmpty() bool {
	return c.Name == "" && !c.Range.IsSet()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// lineToken reads a line number, "." or "$" from the start of s.
func lineToken(s string) (tok, rest string) {
	if s == "" {
		return "", s
	}
	if s[0] == '.' || s[0] == '$' {
		return s[:1], s[1:]
	}
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return s[:n], s[n:]
}

// Parse splits a command line. A leading ':' is ignored.
func Parse(raw string) (Command, error) {
	cmd := Command{Raw: raw}
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, ":")
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return cmd, nil
	}

	if s[0] == '%' {
		cmd.Range = Range{Start: "1", End: "$"}
		s = s[1:]
	} else {
		cmd.Range.Start, s = lineToken(s)
		if strings.HasPrefix(s, ",") {
			cmd.Range.End, s = lineToken(s[1:])
			if cmd.Range.End == "" {
				return cmd, fmt.Errorf("%w: missing range end in %q", ErrSyntax, raw)
			}
			if cmd.Range.Start == "" {
				cmd.Range.Start = "."
			}
		}
	}
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return cmd, nil
	}

	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	if n == 0 {
		// Punctuation commands such as ! are a single character.
		n = 1
	} else if n < len(s) && s[n] == '!' {
		n++
	}
	cmd.Name = s[:n]
	cmd.Args = s[n:]
	return cmd, nil
}
