package vim

// Operator is a command that acts on the range described by a following
// motion or text object.
type Operator struct {
	// Keys is the key sequence that triggers the operator.
	Keys string

	// Name is the operator identifier.
	Name string

	// ChangesText indicates if this operator modifies the buffer.
	ChangesText bool

	// EntersInsert indicates if this operator enters insert mode after.
	EntersInsert bool
}

// operators is the complete operator set, keyed by trigger sequence.
var operators = map[string]Operator{
	"c":  {Keys: "c", Name: "change", ChangesText: true, EntersInsert: true},
	"d":  {Keys: "d", Name: "delete", ChangesText: true},
	"y":  {Keys: "y", Name: "yank"},
	">":  {Keys: ">", Name: "indent", ChangesText: true},
	"<":  {Keys: "<", Name: "unindent", ChangesText: true},
	"=":  {Keys: "=", Name: "auto_indent", ChangesText: true},
	// The g operators also have exact Normal table entries, which resolve
	// first, so typed in Normal mode they emit the *_motion action and
	// never pend.
	"g~": {Keys: "g~", Name: "toggle_case", ChangesText: true},
	"gu": {Keys: "gu", Name: "lowercase", ChangesText: true},
	"gU": {Keys: "gU", Name: "uppercase", ChangesText: true},
	"gq": {Keys: "gq", Name: "format", ChangesText: true},
	"gw": {Keys: "gw", Name: "format_keep_cursor", ChangesText: true},
}

// LookupOperator returns the operator triggered by exactly keys.
func LookupOperator(keys string) (Operator, bool) {
	op, ok := operators[keys]
	return op, ok
}

// IsOperator reports whether keys is exactly an operator trigger.
func IsOperator(keys string) bool {
	_, ok := operators[keys]
	return ok
}

// Operators returns every operator in the table.
func Operators() []Operator {
	ops := make([]Operator, 0, len(operators))
	for _, op := range operators {
		ops = append(ops, op)
	}
	return ops
}
