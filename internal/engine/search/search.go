// Package search compiles search patterns and finds the next match in a
// text snapshot.
package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	gocache "github.com/patrickmn/go-cache"
)

// Cache lifetimes for compiled patterns.
const (
	DefaultExpiration = 10 * time.Minute
	CleanupInterval   = 30 * time.Minute
)

// ErrInvalidPattern is returned for patterns that fail to compile.
var ErrInvalidPattern = errors.New("invalid search pattern")

// Direction is the direction of a search.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Options control pattern compilation and wrapping.
type Options struct {
	IgnoreCase bool
	SmartCase  bool
	WrapScan   bool
}

// Match is a located match.
type Match struct {
	Start   int
	End     int
	Wrapped bool
}

// Line returns the 1-based line of the match start.
func (m Match) Line(text string) int {
	return strings.Count(text[:min(m.Start, len(text))], "\n") + 1
}

// State is the last search, repeated by n and N.
type State struct {
	Pattern   string
	Direction Direction
}

// IsSet reports whether a search has been made.
func (s State) IsSet() bool {
	return s.Pattern != ""
}

// Repeat returns the direction for n (reverse false) or N (reverse true).
func (s State) Repeat(reverse bool) Direction {
	if reverse {
		return s.Direction.Reverse()
	}
	return s.Direction
}

// WordPattern returns a pattern matching word as a whole word.
func WordPattern(word string) string {
	return `\b` + regexp.QuoteMeta(word) + `\b`
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

// FoldCase reports whether a pattern is matched ignoring case: ignore case
// is on and smart case does not see an upper case letter.
func FoldCase(pattern string, opts Options) bool {
	return opts.IgnoreCase && !(opts.SmartCase && hasUpper(pattern))
}

// Searcher compiles and caches patterns.
type Searcher struct {
	cache *gocache.Cache
}

// New creates a searcher with an empty pattern cache.
func New() *Searcher {
	return &Searcher{cache: gocache.New(DefaultExpiration, CleanupInterval)}
}

// Compile compiles pattern in multi-line mode, folding case per opts.
func (s *Searcher) Compile(pattern string, opts Options) (*regexp.Regexp, error) {
	return s.CompileFold(pattern, FoldCase(pattern, opts))
}

// CompileFold compiles pattern in multi-line mode with explicit case folding.
func (s *Searcher) CompileFold(pattern string, fold bool) (*regexp.Regexp, error) {
	flags := "(?m)"
	if fold {
		flags = "(?mi)"
	}
	key := flags + pattern
	if v, ok := s.cache.Get(key); ok {
		if re, ok := v.(*regexp.Regexp); ok {
			return re, nil
		}
	}
	re, err := regexp.Compile(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	s.cache.SetDefault(key, re)
	return re, nil
}

// Cached returns the number of cached patterns.
func (s *Searcher) Cached() int {
	return s.cache.ItemCount()
}

// Flush empties the pattern cache.
func (s *Searcher) Flush() {
	s.cache.Flush()
}

// Next finds the first match starting strictly after from (forward) or
// strictly before it (backward), wrapping around the text when
// opts.WrapScan is set.
func (s *Searcher) Next(text string, from int, pattern string, dir Direction, opts Options) (Match, bool, error) {
	re, err := s.Compile(pattern, opts)
	if err != nil {
		return Match{}, false, err
	}
	m, ok := Find(re, text, from, dir, opts.WrapScan)
	return m, ok, nil
}

// Find runs a compiled pattern the way Next does.
func Find(re *regexp.Regexp, text string, from int, dir Direction, wrap bool) (Match, bool) {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return Match{}, false
	}

	if dir == Forward {
		for _, loc := range locs {
			if loc[0] > from {
				return Match{Start: loc[0], End: loc[1]}, true
			}
		}
		if !wrap {
			return Match{}, false
		}
		return Match{Start: locs[0][0], End: locs[0][1], Wrapped: true}, true
	}

	for i := len(locs) - 1; i >= 0; i-- {
		if locs[i][0] < from {
			return Match{Start: locs[i][0], End: locs[i][1]}, true
		}
	}
	if !wrap {
		return Match{}, false
	}
	last := locs[len(locs)-1]
	return Match{Start: last[0], End: last[1], Wrapped: true}, true
}
