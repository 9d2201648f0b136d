package input

import (
	"strings"

	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/vim"
)

// resolved is a completed table match.
type resolved struct {
	entry    vim.Entry
	operator string
	count    int
	register rune
	arg      rune
}

// base builds the action for a match, without payload.
func (r resolved) base() action.Action {
	return action.New(r.entry.Action).
		WithCount(r.count).
		WithOperator(r.operator).
		WithRegister(r.register)
}

// isPlain reports whether ev is an unmodified character.
func isPlain(ev key.Event) bool {
	return ev.IsRune() && !ev.IsModified()
}

// literal joins trie tokens back into the characters typed.
func literal(tokens []string) string {
	return strings.ReplaceAll(strings.Join(tokens, ""), "<lt>", "<")
}

// feed runs one key through the sequence resolver against t. It reports a
// match, or false when the key was absorbed or discarded. Operators are
// only recognized when operators is set.
func (e *Engine) feed(ev key.Event, t *vim.Trie, operators bool) (resolved, bool) {
	p := &e.pending
	tok := ev.String()

	if p.arg != nil {
		if !isPlain(ev) {
			e.discard(ev)
			return resolved{}, false
		}
		r := e.match(*p.arg, p.argOp)
		r.arg = ev.Rune
		return r, true
	}

	if p.awaitRegister {
		if !isPlain(ev) || !vim.IsValidRegister(ev.Rune) {
			e.discard(ev)
			return resolved{}, false
		}
		p.awaitRegister = false
		p.register = ev.Rune
		p.typed = append(p.typed, tok)
		return resolved{}, false
	}

	if isPlain(ev) {
		if ev.Rune >= '0' && ev.Rune <= '9' && p.expectsCount() && p.count.Push(ev.Rune) {
			p.typed = append(p.typed, tok)
			return resolved{}, false
		}
		if ev.Rune == '"' && len(p.keys) == 0 {
			p.awaitRegister = true
			p.typed = append(p.typed, tok)
			return resolved{}, false
		}
	}

	p.keys = append(p.keys, tok)

	// Exact matches win, so fused entries like "dd" and "diw" resolve
	// whole and carry no operator.
	if entry, ok := t.Lookup(p.keys); ok {
		return e.accept(entry, "", tok)
	}

	if p.operator != "" {
		if rest := p.motionKeys(); len(rest) > 0 {
			if entry, ok := t.Lookup(rest); ok && entry.Motion {
				return e.accept(entry, p.operator, tok)
			}
			if t.HasLonger(rest) {
				p.typed = append(p.typed, tok)
				return resolved{}, false
			}
		}
	} else if operators && vim.IsOperator(literal(p.keys)) {
		p.setOperator(literal(p.keys))
		p.typed = append(p.typed, tok)
		return resolved{}, false
	}

	if t.HasLonger(p.keys) {
		p.typed = append(p.typed, tok)
		return resolved{}, false
	}

	p.keys = p.keys[:len(p.keys)-1]
	e.discard(ev)
	return resolved{}, false
}

// accept completes a match, or parks it when it takes an argument.
func (e *Engine) accept(entry vim.Entry, op, tok string) (resolved, bool) {
	p := &e.pending
	if entry.Arg != vim.ArgNone {
		p.arg = &entry
		p.argOp = op
		p.typed = append(p.typed, tok)
		return resolved{}, false
	}
	return e.match(entry, op), true
}

// match captures the pending count and register for entry and clears the
// pending state.
func (e *Engine) match(entry vim.Entry, op string) resolved {
	p := &e.pending
	r := resolved{
		entry:    entry,
		operator: op,
		count:    p.total(),
		register: p.register,
	}
	p.clear()
	return r
}
