// Package input is the modal editing engine: it turns key events into
// actions for the host to apply.
//
// The Engine owns the current mode and the key state accumulated between
// actions (count, operator, register and the partial key sequence). Each
// key is resolved against the canonical tables in package vim:
//
//   - Normal: Ctrl tables, counts, "x register prefixes, exact table
//     matches, operator plus motion, and operator triggers.
//   - Insert and Replace: literal characters and a few special keys.
//   - Visual, VisualLine and VisualBlock: selection commands, text object
//     selection and multi-cursor commands.
//   - Command: editing of the ':' line, or the '/' and '?' search prompts.
//
// Unresolvable sequences are dropped without an action. Failures such as a
// malformed ex command are returned as error actions; the engine never
// panics on input.
//
// # Snapshots
//
// The engine never edits text. After applying an action the host calls
// Sync with the new text and selections; marks, searches, text objects and
// ex command ranges are resolved against the last snapshot.
//
// # Usage
//
//	e := input.New(input.WithConfig(cfg), input.WithLogger(logger))
//	e.Sync(input.Snapshot{Text: text})
//
//	for ev := range keyEvents {
//	    if a := e.HandleKey(ev); a != nil {
//	        apply(*a)
//	        e.Sync(current())
//	    }
//	}
package input
