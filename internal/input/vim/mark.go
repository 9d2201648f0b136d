package vim

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrInvalidMark is returned for names that cannot hold a mark.
var ErrInvalidMark = errors.New("invalid mark")

// Mark is a named buffer position. Line and Column are 0-based.
type Mark struct {
	Line     int
	Column   int
	FilePath string
}

// MarkStore holds marks by name.
type MarkStore struct {
	mu    sync.RWMutex
	marks map[rune]Mark
}

// NewMarkStore creates an empty mark store.
func NewMarkStore() *MarkStore {
	return &MarkStore{marks: make(map[rune]Mark)}
}

// IsValidMark reports whether name can hold a mark: a-z, A-Z, 0-9 and
// the special marks ' ` . < > ^ [ ].
func IsValidMark(name rune) bool {
	switch {
	case name >= 'a' && name <= 'z':
		return true
	case name >= 'A' && name <= 'Z':
		return true
	case name >= '0' && name <= '9':
		return true
	}
	switch name {
	case '\'', '`', '.', '<', '>', '^', '[', ']':
		return true
	}
	return false
}

// Set stores a mark.
func (ms *MarkStore) Set(name rune, m Mark) error {
	if !IsValidMark(name) {
		return fmt.Errorf("%w: %q", ErrInvalidMark, name)
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.marks[name] = m
	return nil
}

// Get returns a mark and whether it is set.
func (ms *MarkStore) Get(name rune) (Mark, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	m, ok := ms.marks[name]
	return m, ok
}

// Delete removes a mark.
func (ms *MarkStore) Delete(name rune) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.marks, name)
}

// List returns the names of all set marks in sorted order.
func (ms *MarkStore) List() []rune {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	names := make([]rune, 0, len(ms.marks))
	for name := range ms.marks {
		names = append(names, name)
	}
	sortRunes(names)
	return names
}

func sortRunes(rs []rune) {
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
}
