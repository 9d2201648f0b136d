// Package excmd parses and dispatches ex commands (the text typed after
// ':' in command mode).
//
// Parsing splits a command line into an optional line range, a command
// name and its arguments:
//
//	:1,3d          range 1..3, name "d"
//	:%s/foo/bar/g  range 1..$, name "s", args "/foo/bar/g"
//	:q!            name "q!"
//
// Dispatch turns a parsed command into an action. When a buffer snapshot
// is supplied, line ranges are resolved and checked against it, and
// substitute and global commands are evaluated so that the host receives
// the resulting text or the selected lines.
//
// Failures are never returned as Go errors from Dispatch. They are error
// actions (parse_error, invalid_range, unknown_command) or the
// informational no_match action.
package excmd
