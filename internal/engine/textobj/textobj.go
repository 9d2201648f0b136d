package textobj

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrInvalidName is returned when registering a custom object without a name.
var ErrInvalidName = errors.New("invalid text object name")

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Text returns the slice of text covered by the range.
func (r Range) Text(text string) string {
	return text[r.Start:r.End]
}

// String returns a debug representation.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Finder locates a text object around the cursor.
type Finder interface {
	// Find returns the bounds of the object containing cursor.
	// inner excludes delimiters; found is false if there is no object.
	Find(text string, cursor int, inner bool) (r Range, found bool)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(text string, cursor int, inner bool) (Range, bool)

// Find calls f.
func (f FinderFunc) Find(text string, cursor int, inner bool) (Range, bool) {
	return f(text, cursor, inner)
}

// builtins maps trigger characters to their finders.
// Open and close characters of a pair map to the same finder.
var builtins = map[rune]Finder{
	'(':  pairFinder{open: '(', close: ')'},
	')':  pairFinder{open: '(', close: ')'},
	'b':  pairFinder{open: '(', close: ')'},
	'[':  pairFinder{open: '[', close: ']'},
	']':  pairFinder{open: '[', close: ']'},
	'{':  pairFinder{open: '{', close: '}'},
	'}':  pairFinder{open: '{', close: '}'},
	'B':  pairFinder{open: '{', close: '}'},
	'<':  pairFinder{open: '<', close: '>'},
	'>':  pairFinder{open: '<', close: '>'},
	'"':  quoteFinder{quote: '"'},
	'\'': quoteFinder{quote: '\''},
	'`':  quoteFinder{quote: '`'},
	'w':  wordFinder{big: false},
	'W':  wordFinder{big: true},
	's':  sentenceFinder{},
	'p':  paragraphFinder{},
	't':  tagFinder{},
	'l':  linkFinder{},
	'k':  codeBlockFinder{},
	'i':  indentFinder{},
}

// Lookup returns the built-in finder for a trigger character.
func Lookup(trigger rune) (Finder, bool) {
	f, ok := builtins[trigger]
	return f, ok
}

// Find locates a built-in text object.
func Find(text string, cursor int, trigger rune, inner bool) (Range, bool) {
	f, ok := builtins[trigger]
	if !ok {
		return Range{}, false
	}
	return f.Find(text, cursor, inner)
}

// Resolver dispatches to built-in objects and to custom objects
// registered by name.
type Resolver struct {
	mu     sync.RWMutex
	custom map[string]Finder
}

// NewResolver creates a resolver with only the built-in objects.
func NewResolver() *Resolver {
	return &Resolver{custom: make(map[string]Finder)}
}

// Register adds a custom object. A name that is a single built-in trigger
// character cannot be overridden.
func (r *Resolver) Register(name string, f Finder) error {
	if name == "" || f == nil {
		return ErrInvalidName
	}
	if rs := []rune(name); len(rs) == 1 {
		if _, ok := builtins[rs[0]]; ok {
			return fmt.Errorf("%w: %q is built in", ErrInvalidName, name)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[name] = f
	return nil
}

// Unregister removes a custom object.
func (r *Resolver) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.custom, name)
}

// Names returns the registered custom object names, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.custom))
	for name := range r.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the finder for kind: a built-in trigger character or a
// custom object name.
func (r *Resolver) Lookup(kind string) (Finder, bool) {
	if rs := []rune(kind); len(rs) == 1 {
		if f, ok := builtins[rs[0]]; ok {
			return f, true
		}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.custom[kind]
	if !ok {
		return nil, false
	}
	return checked{f}, true
}

// checked drops custom results that fall outside the text.
type checked struct {
	Finder
}

func (c checked) Find(text string, cursor int, inner bool) (Range, bool) {
	rng, found := c.Finder.Find(text, cursor, inner)
	if !found || rng.Start < 0 || rng.End > len(text) || rng.Start > rng.End {
		return Range{}, false
	}
	return rng, true
}

// Find locates the object named kind: a built-in trigger character or a
// custom object name.
func (r *Resolver) Find(text string, cursor int, kind string, inner bool) (Range, bool) {
	f, ok := r.Lookup(kind)
	if !ok {
		return Range{}, false
	}
	return f.Find(text, cursor, inner)
}

// FindRune is Find for a trigger character.
func (r *Resolver) FindRune(text string, cursor int, trigger rune, inner bool) (Range, bool) {
	return r.Find(text, cursor, string(trigger), inner)
}

// clampCursor limits cursor to a valid byte index of text.
// Returns false for empty text.
func clampCursor(text string, cursor int) (int, bool) {
	if len(text) == 0 {
		return 0, false
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(text) {
		cursor = len(text) - 1
	}
	return cursor, true
}
