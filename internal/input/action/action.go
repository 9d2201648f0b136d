package action

// Source indicates the origin of an action.
type Source uint8

const (
	// SourceKeyboard indicates the action was resolved from live key input.
	SourceKeyboard Source = iota
	// SourceMacro indicates the action was produced during macro playback.
	SourceMacro
	// SourceCommandLine indicates the action came from an ex command.
	SourceCommandLine
)

// String returns a string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMacro:
		return "macro"
	case SourceCommandLine:
		return "command"
	default:
		return "unknown"
	}
}

// Well-known action names produced outside the key tables.
const (
	NameError   = "error"
	NameNoMatch = "no_match"
	NameNoop    = "noop"
)

// Action is an editing or navigation intent for the host to apply.
// Actions are values; the With* helpers return modified copies.
type Action struct {
	// Name is the symbolic action tag (e.g. "delete_line").
	Name string

	// Count is the repeat count. Always at least 1.
	Count int

	// Operator is the pending operator that applied to a motion, or "".
	Operator string

	// Register is the register selected with a "x prefix, or 0.
	Register rune

	// Payload carries the fields specific to this action.
	Payload Payload

	// Source indicates where this action originated.
	Source Source
}

// New creates an action with count 1 and no payload.
func New(name string) Action {
	return Action{Name: name, Count: 1}
}

// NewWith creates an action with count 1 and the given payload.
func NewWith(name string, p Payload) Action {
	return Action{Name: name, Count: 1, Payload: p}
}

// WithCount returns a copy of the action with the specified count.
// Counts below 1 are raised to 1.
func (a Action) WithCount(count int) Action {
	if count < 1 {
		count = 1
	}
	a.Count = count
	return a
}

// WithOperator returns a copy of the action with the specified operator.
func (a Action) WithOperator(op string) Action {
	a.Operator = op
	return a
}

// WithRegister returns a copy of the action with the specified register.
func (a Action) WithRegister(register rune) Action {
	a.Register = register
	return a
}

// WithPayload returns a copy of the action with the specified payload.
func (a Action) WithPayload(p Payload) Action {
	a.Payload = p
	return a
}

// WithSource returns a copy of the action with the specified source.
func (a Action) WithSource(s Source) Action {
	a.Source = s
	return a
}

// IsError reports whether the action reports a failure.
func (a Action) IsError() bool {
	return a.Name == NameError
}

// IsNoMatch reports whether the action is the informational no-match result.
func (a Action) IsNoMatch() bool {
	return a.Name == NameNoMatch
}

// Problem returns the problem payload, if the action carries one.
func (a Action) Problem() (Problem, bool) {
	p, ok := a.Payload.(Problem)
	return p, ok
}

// String returns the JSON form of the action.
func (a Action) String() string {
	return a.JSON()
}
