package vim

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// ErrInvalidRegister is returned for names that are not registers.
var ErrInvalidRegister = errors.New("invalid register")

// Special register names.
const (
	UnnamedRegister   = '"'
	YankRegister      = '0'
	SmallDelete       = '-'
	BlackHoleRegister = '_'
	SearchRegister    = '/'
	CommandRegister   = ':'
	InsertedRegister  = '.'
)

// Register is the content of one register.
type Register struct {
	// Content holds the register's text content.
	Content string

	// Linewise indicates if the content is line-oriented.
	Linewise bool
}

// RegisterStore holds named, numbered and special registers.
//
// Writing any writable register also writes the unnamed register; that
// rule lives in set and nowhere else.
type RegisterStore struct {
	mu        sync.RWMutex
	registers map[rune]Register
}

// NewRegisterStore creates an empty register store.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{registers: make(map[rune]Register)}
}

// IsValidRegister returns true if the register name is valid.
func IsValidRegister(name rune) bool {
	switch {
	case name == UnnamedRegister:
		return true
	case name >= 'a' && name <= 'z':
		return true
	case name >= 'A' && name <= 'Z':
		return true
	case name >= '0' && name <= '9':
		return true
	case name == SmallDelete, name == BlackHoleRegister:
		return true
	case name == SearchRegister, name == CommandRegister, name == InsertedRegister:
		return true
	default:
		return false
	}
}

// IsReadOnly reports whether the register can only be written by the
// engine itself.
func IsReadOnly(name rune) bool {
	return name == SearchRegister || name == CommandRegister || name == InsertedRegister
}

// Get returns a register. Unknown or empty names read the unnamed register.
func (rs *RegisterStore) Get(name rune) Register {
	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
	}
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if name == 0 || !IsValidRegister(name) {
		name = UnnamedRegister
	}
	return rs.registers[name]
}

// Set stores content in a register. Uppercase names append to the
// lowercase register. The black-hole register discards.
func (rs *RegisterStore) Set(name rune, content string, linewise bool) error {
	if name == 0 {
		name = UnnamedRegister
	}
	if !IsValidRegister(name) {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, name)
	}
	if IsReadOnly(name) {
		return fmt.Errorf("%w: %q is read-only", ErrInvalidRegister, name)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.set(name, content, linewise)
	return nil
}

func (rs *RegisterStore) set(name rune, content string, linewise bool) {
	if name == BlackHoleRegister {
		return
	}

	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
		prev := rs.registers[name]
		switch {
		case prev.Content == "":
		case prev.Linewise || linewise:
			content = prev.Content + "\n" + content
			linewise = true
		default:
			content = prev.Content + content
		}
	}

	reg := Register{Content: content, Linewise: linewise}
	rs.registers[name] = reg
	if name != UnnamedRegister {
		rs.registers[UnnamedRegister] = reg
	}
}

// Yank records yanked text. Without an explicit register it goes to "0";
// with one it goes there instead.
func (rs *RegisterStore) Yank(name rune, content string, linewise bool) error {
	if name == 0 {
		name = YankRegister
	}
	return rs.Set(name, content, linewise)
}

// Delete records deleted text. Without an explicit register, multi-line
// deletes rotate through "1 to "9 and small deletes go to "-.
func (rs *RegisterStore) Delete(name rune, content string, linewise bool) error {
	if name != 0 {
		return rs.Set(name, content, linewise)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if !linewise && !strings.Contains(content, "\n") {
		rs.set(SmallDelete, content, false)
		return nil
	}
	for i := '9'; i > '1'; i-- {
		rs.registers[i] = rs.registers[i-1]
	}
	rs.set('1', content, linewise)
	return nil
}

// SetLastSearch updates the last search pattern register.
func (rs *RegisterStore) SetLastSearch(pattern string) {
	rs.setSpecial(SearchRegister, pattern)
}

// SetLastCommand updates the last command register.
func (rs *RegisterStore) SetLastCommand(cmd string) {
	rs.setSpecial(CommandRegister, cmd)
}

// SetLastInserted updates the last inserted text register.
func (rs *RegisterStore) SetLastInserted(text string) {
	rs.setSpecial(InsertedRegister, text)
}

func (rs *RegisterStore) setSpecial(name rune, content string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.registers[name] = Register{Content: content}
}

// Names returns the names of all non-empty registers.
func (rs *RegisterStore) Names() []rune {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	names := make([]rune, 0, len(rs.registers))
	for name, reg := range rs.registers {
		if reg.Content != "" {
			names = append(names, name)
		}
	}
	sortRunes(names)
	return names
}
