package action

// Payload holds the fields specific to one family of actions.
// The set of implementations is closed; hosts type-switch over it.
type Payload interface {
	isPayload()
	encode(e *encoder)
}

// Char carries a literal character (insert_char, replace_char, find motions).
type Char struct {
	Char rune
}

// MarkRef names a mark. Resolved marks carry their position.
type MarkRef struct {
	Mark     rune
	Resolved bool
	Line     int
	Column   int
	FilePath string
}

// RegisterRef names a macro register (record_macro, execute_macro).
type RegisterRef struct {
	Name rune
}

// LineRange is an ex command line range. Start and End keep the tokens as
// typed; First and Last are the 1-based lines they resolve to, or 0 when
// no buffer snapshot was available.
type LineRange struct {
	Start string
	End   string
	First int
	Last  int
}

// Resolved reports whether the range was resolved against a snapshot.
func (r LineRange) Resolved() bool {
	return r.First > 0
}

// Substitute is a parsed :s command and, when a snapshot was available,
// its result.
type Substitute struct {
	Range           LineRange
	Pattern         string
	Replacement     string
	Flags           string
	Applied         bool
	NewText         string
	NumReplacements int
}

// Global is a parsed :g or :v command and the lines it selects.
type Global struct {
	Range   LineRange
	Pattern string
	Command string
	Inverse bool
	Lines   []int
}

// CopyMove is a :co or :m command.
type CopyMove struct {
	Range       LineRange
	Destination int
}

// Path carries a file or directory argument. Empty means the current one.
type Path struct {
	Path string
}

// Option is a :set argument.
type Option struct {
	Name     string
	Value    string
	HasValue bool
}

// Variable is a :let assignment.
type Variable struct {
	Name  string
	Value string
}

// Mapping is a :map family command.
type Mapping struct {
	Mode    string
	Key     string
	Command string
}

// Search describes a search and, when run against a snapshot, its match.
type Search struct {
	Pattern   string
	Forward   bool
	Found     bool
	Start     int
	End       int
	Wrapped   bool
	MatchLine int
}

// Command carries free-form arguments for commands the host interprets
// (shell commands, help topics, highlight groups, window sizes).
type Command struct {
	Args string
}

// TextObject identifies the object an operator applies to and, when
// resolved, its byte range.
type TextObject struct {
	Object string
	Inner  bool
	Found  bool
	Start  int
	End    int
}

// Range carries a resolved byte range for motion-like actions.
type Range struct {
	Start int
	End   int
}

// Problem describes an error or informational result.
type Problem struct {
	Kind    ErrorKind
	Message string
	Token   string
}

// Selection is one member of a Selections payload.
type Selection struct {
	Anchor  int
	Head    int
	Primary bool
}

// Selections is the engine's selection set after a multi-cursor command.
type Selections struct {
	Selections []Selection
}

// Completion lists the ex command names matching a partial command line.
type Completion struct {
	Input      string
	Candidates []string
}

func (Char) isPayload()        {}
func (MarkRef) isPayload()     {}
func (RegisterRef) isPayload() {}
func (LineRange) isPayload()   {}
func (Substitute) isPayload()  {}
func (Global) isPayload()      {}
func (CopyMove) isPayload()    {}
func (Path) isPayload()        {}
func (Option) isPayload()      {}
func (Variable) isPayload()    {}
func (Mapping) isPayload()     {}
func (Search) isPayload()      {}
func (Command) isPayload()     {}
func (TextObject) isPayload()  {}
func (Range) isPayload()       {}
func (Problem) isPayload()     {}
func (Selections) isPayload()  {}
func (Completion) isPayload()  {}
