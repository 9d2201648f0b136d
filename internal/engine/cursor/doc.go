// Package cursor provides the selection model for multi-cursor editing.
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection is a bare cursor. Offsets are byte
// offsets into a text snapshot supplied by the host.
//
// A SelectionSet holds one or more selections, exactly one of which is
// primary whenever the set is non-empty. Every structural operation
// re-establishes that invariant.
//
// Basic usage:
//
//	set := cursor.NewSelectionSet()
//	set.SelectAll(len(text))
//	set.SplitByLine(text)
//	text = set.Apply(text, cursor.Upper)
//
// SelectionSet is not thread-safe.
package cursor
