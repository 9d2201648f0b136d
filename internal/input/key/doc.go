// Package key defines the normalized key events the modal engine consumes.
//
// Hosts translate whatever their toolkit delivers into Event values:
//
//   - Key: a special key (Escape, Enter, arrows, ...) or KeyRune for characters
//   - Modifier: Ctrl, Alt, Shift and Meta flags
//   - Event: one key press
//
// # Key Specifications
//
// Events can also be written as text, which is how tests, macros and
// mappings describe them:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+r", "Alt+F4"
//   - Vim-style: "<C-r>", "<Esc>", "<CR>", "<BS>", "<lt>"
//
// ParseSequence splits a run such as "3d<C-r>iw" into individual events.
// A terminal host can use FromTcell to normalize tcell key events.
package key
