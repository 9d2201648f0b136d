package mode

import (
	"slices"

	"github.com/rivo/uniseg"
)

// MaxHistory is the number of command lines kept in history.
const MaxHistory = 100

// CommandLine is the state of the ':' (or '/', '?') line being edited.
// The cursor moves by grapheme cluster.
type CommandLine struct {
	prompt       rune
	buffer       string
	cursor       int // byte offset into buffer
	history      []string
	historyIndex int
}

// NewCommandLine creates an empty command line with a ':' prompt.
func NewCommandLine() *CommandLine {
	return &CommandLine{prompt: ':', historyIndex: -1}
}

// Reset clears the buffer and sets the prompt. History is kept.
func (c *CommandLine) Reset(prompt rune) {
	c.prompt = prompt
	c.buffer = ""
	c.cursor = 0
	c.historyIndex = -1
}

// Prompt returns the prompt character.
func (c *CommandLine) Prompt() rune {
	return c.prompt
}

// Buffer returns the text typed so far.
func (c *CommandLine) Buffer() string {
	return c.buffer
}

// Cursor returns the cursor position in grapheme clusters.
func (c *CommandLine) Cursor() int {
	return uniseg.GraphemeClusterCount(c.buffer[:c.cursor])
}

// Column returns the display column of the cursor.
func (c *CommandLine) Column() int {
	return uniseg.StringWidth(c.buffer[:c.cursor])
}

// HistoryIndex returns the history position; -1 is the live buffer.
func (c *CommandLine) HistoryIndex() int {
	return c.historyIndex
}

// Insert inserts r at the cursor.
func (c *CommandLine) Insert(r rune) {
	c.InsertString(string(r))
}

// InsertString inserts s at the cursor.
func (c *CommandLine) InsertString(s string) {
	c.buffer = c.buffer[:c.cursor] + s + c.buffer[c.cursor:]
	c.cursor += len(s)
}

// SetBuffer replaces the buffer and moves the cursor to its end.
func (c *CommandLine) SetBuffer(s string) {
	c.buffer = s
	c.cursor = len(s)
}

// Backspace deletes the grapheme left of the cursor. It reports true when
// the buffer was already empty, which ends command-line editing.
func (c *CommandLine) Backspace() bool {
	if c.cursor > 0 {
		start := c.prevBoundary()
		c.buffer = c.buffer[:start] + c.buffer[c.cursor:]
		c.cursor = start
		return false
	}
	return c.buffer == ""
}

// Left moves the cursor one grapheme left.
func (c *CommandLine) Left() bool {
	if c.cursor == 0 {
		return false
	}
	c.cursor = c.prevBoundary()
	return true
}

// Right moves the cursor one grapheme right.
func (c *CommandLine) Right() bool {
	if c.cursor >= len(c.buffer) {
		return false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(c.buffer[c.cursor:], -1)
	c.cursor += len(cluster)
	return true
}

// prevBoundary returns the byte offset of the grapheme before the cursor.
func (c *CommandLine) prevBoundary() int {
	start := 0
	g := uniseg.NewGraphemes(c.buffer[:c.cursor])
	for g.Next() {
		from, _ := g.Positions()
		start = from
	}
	return start
}

// Push records an executed command. The newest entry is first; an earlier
// copy of the same command is removed; empty commands are ignored.
func (c *CommandLine) Push(cmd string) {
	c.historyIndex = -1
	if cmd == "" {
		return
	}
	if i := slices.Index(c.history, cmd); i >= 0 {
		c.history = slices.Delete(c.history, i, i+1)
	}
	c.history = slices.Insert(c.history, 0, cmd)
	if len(c.history) > MaxHistory {
		c.history = c.history[:MaxHistory]
	}
}

// HistoryUp walks to the next older history entry.
func (c *CommandLine) HistoryUp() bool {
	if c.historyIndex >= len(c.history)-1 {
		return false
	}
	c.historyIndex++
	c.SetBuffer(c.history[c.historyIndex])
	return true
}

// HistoryDown walks back toward the live buffer. Leaving the newest entry
// clears the buffer.
func (c *CommandLine) HistoryDown() bool {
	switch {
	case c.historyIndex > 0:
		c.historyIndex--
		c.SetBuffer(c.history[c.historyIndex])
	case c.historyIndex == 0:
		c.historyIndex = -1
		c.SetBuffer("")
	default:
		return false
	}
	return true
}

// History returns a copy of the history, newest first.
func (c *CommandLine) History() []string {
	return slices.Clone(c.history)
}
