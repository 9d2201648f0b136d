package input

import (
	"strings"

	"github.com/floatingskies/mark-mark/internal/engine/search"
	"github.com/floatingskies/mark-mark/internal/engine/textobj"
	"github.com/floatingskies/mark-mark/internal/input/action"
)

const noPreviousPattern = "No previous regular expression"

// runSearch looks for the a.Count-th match of pattern from the cursor and
// attaches the result to a. Without a snapshot the action carries only the
// pattern.
func (e *Engine) runSearch(a action.Action, pattern string, dir search.Direction) action.Action {
	payload := action.Search{Pattern: pattern, Forward: dir == search.Forward}
	if !e.synced {
		return a.WithPayload(payload)
	}

	text := e.snap.Text
	from := e.cursorOffset()
	var (
		m       search.Match
		found   bool
		wrapped bool
	)
	for i := 0; i < a.Count; i++ {
		next, ok, err := e.searcher.Next(text, from, pattern, dir, e.cfg.SearchOptions())
		if err != nil {
			return action.Error(action.KindParseError, err.Error(), pattern)
		}
		if !ok {
			break
		}
		m, found = next, true
		wrapped = wrapped || next.Wrapped
		from = next.Start
	}
	if !found {
		return action.NoMatch("Pattern not found: " + pattern)
	}

	payload.Found = true
	payload.Start = m.Start
	payload.End = m.End
	payload.Wrapped = wrapped
	payload.MatchLine = m.Line(text)
	return a.WithPayload(payload)
}

// repeatSearch handles n and N.
func (e *Engine) repeatSearch(a action.Action) action.Action {
	if !e.searchState.IsSet() {
		return action.ParseError(noPreviousPattern)
	}
	dir := e.searchState.Repeat(a.Name == "search_prev")
	return e.runSearch(a, e.searchState.Pattern, dir)
}

// searchWord handles * and #: search for the word under the cursor.
func (e *Engine) searchWord(a action.Action) action.Action {
	dir := search.Forward
	if a.Name == "search_word_backward" {
		dir = search.Backward
	}
	if !e.synced {
		return a
	}
	r, ok := textobj.Find(e.snap.Text, e.cursorOffset(), 'w', true)
	word := ""
	if ok {
		word = strings.TrimSpace(r.Text(e.snap.Text))
	}
	if word == "" {
		return action.NoMatch("No string under cursor")
	}
	pattern := search.WordPattern(word)
	e.SetSearch(pattern, dir)
	return e.runSearch(a, pattern, dir)
}

// searchPrompt runs a pattern typed after / or ?. An empty pattern repeats
// the last one in the new direction.
func (e *Engine) searchPrompt(pattern string, dir search.Direction) action.Action {
	if pattern == "" {
		if !e.searchState.IsSet() {
			return action.ParseError(noPreviousPattern)
		}
		pattern = e.searchState.Pattern
	}
	if _, err := e.searcher.Compile(pattern, e.cfg.SearchOptions()); err != nil {
		return action.Error(action.KindParseError, err.Error(), pattern)
	}
	e.SetSearch(pattern, dir)
	return e.runSearch(action.New("search").WithCount(e.promptCount), pattern, dir)
}
