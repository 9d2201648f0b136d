// Package mode defines the editor modes and the state that belongs to them.
//
// Exactly one Mode is current at a time. The Manager tracks the current
// mode and the one before it (depth 1, used to return to Insert after a
// single Normal command) and notifies listeners on every transition so the
// engine can reset its accumulators.
//
// CommandLine holds the ':' line being edited: its buffer, cursor and the
// command history.
package mode
