package mode

import "fmt"

// Mode is an editor mode.
type Mode uint8

const (
	// Normal is the command mode keys are interpreted in by default.
	Normal Mode = iota
	// Insert forwards characters to the buffer.
	Insert
	// Visual selects characters.
	Visual
	// VisualLine selects whole lines.
	VisualLine
	// VisualBlock selects a rectangular block.
	VisualBlock
	// Command edits a ':' command line.
	Command
	// Replace overwrites characters.
	Replace
)

// Standard mode names.
const (
	NameNormal      = "normal"
	NameInsert      = "insert"
	NameVisual      = "visual"
	NameVisualLine  = "visual-line"
	NameVisualBlock = "visual-block"
	NameCommand     = "command"
	NameReplace     = "replace"
)

var modeNames = [...]string{
	Normal:      NameNormal,
	Insert:      NameInsert,
	Visual:      NameVisual,
	VisualLine:  NameVisualLine,
	VisualBlock: NameVisualBlock,
	Command:     NameCommand,
	Replace:     NameReplace,
}

var displayNames = [...]string{
	Normal:      "NORMAL",
	Insert:      "INSERT",
	Visual:      "VISUAL",
	VisualLine:  "VISUAL LINE",
	VisualBlock: "VISUAL BLOCK",
	Command:     "COMMAND",
	Replace:     "REPLACE",
}

// String returns the mode identifier (e.g. "visual-line").
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// DisplayName returns the status line label (e.g. "VISUAL LINE").
func (m Mode) DisplayName() string {
	if int(m) < len(displayNames) {
		return displayNames[m]
	}
	return m.String()
}

// IsVisual reports whether m is one of the visual modes.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine || m == VisualBlock
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command:
		return CursorBar
	case Replace:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// Parse returns the mode with the given identifier.
func Parse(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return Normal, false
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
