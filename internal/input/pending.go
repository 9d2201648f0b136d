package input

import (
	"strings"

	"github.com/floatingskies/mark-mark/internal/input/vim"
)

// pending is the key state accumulated between actions.
type pending struct {
	// count is the count being typed: before an operator, or after it.
	count vim.Count

	// opCount is the count typed before the pending operator, 0 if none.
	opCount int

	// operator is the pending operator trigger ("d", "c", ">").
	operator string

	// opLen is how many tokens of keys belong to the operator.
	opLen int

	// register is the register selected with "x.
	register rune

	// awaitRegister is set after '"' until the register name arrives.
	awaitRegister bool

	// keys holds the sequence typed so far, in Event.String() notation.
	keys []string

	// arg is the entry waiting for its argument key, and argOp the
	// operator it applies to.
	arg   *vim.Entry
	argOp string

	// typed is every accepted key, for display.
	typed []string
}

// clear drops all pending state.
func (p *pending) clear() {
	*p = pending{}
}

// active reports whether anything is pending.
func (p *pending) active() bool {
	return len(p.typed) > 0
}

// setOperator records op as pending and moves the typed count before it.
func (p *pending) setOperator(op string) {
	p.operator = op
	p.opLen = len(p.keys)
	p.opCount = p.count.Value()
	p.count.Reset()
}

// motionKeys returns the keys typed after the pending operator.
func (p *pending) motionKeys() []string {
	return p.keys[p.opLen:]
}

// total returns the effective count of the next action.
func (p *pending) total() int {
	return vim.CombineCounts(p.opCount, p.count.Value())
}

// expectsCount reports whether a digit would extend the count: nothing
// but an operator has been typed since the last count digit.
func (p *pending) expectsCount() bool {
	return p.arg == nil && !p.awaitRegister && len(p.keys) == p.opLen
}

// Pending describes the partially typed command, for a status line.
type Pending struct {
	// Count is the effective count so far, 0 when none was typed.
	Count int

	// Operator is the pending operator, or "".
	Operator string

	// Register is the selected register, or 0.
	Register rune

	// Keys is the typed sequence in key notation.
	Keys string
}

// IsEmpty reports whether nothing is pending.
func (p Pending) IsEmpty() bool {
	return p.Count == 0 && p.Operator == "" && p.Register == 0 && p.Keys == ""
}

// String renders the pending input the way Vim's showcmd does.
func (p Pending) String() string {
	return p.Keys
}

func (p *pending) snapshot() Pending {
	count := 0
	if p.opCount > 0 || p.count.Active() {
		count = p.total()
	}
	return Pending{
		Count:    count,
		Operator: p.operator,
		Register: p.register,
		Keys:     strings.Join(p.typed, ""),
	}
}
