package action

import (
	"github.com/tidwall/sjson"
)

// encoder accumulates a JSON object with sjson.
// The first error sticks; later writes become no-ops.
type encoder struct {
	doc string
	err error
}

func (e *encoder) set(path string, value any) {
	if e.err != nil {
		return
	}
	e.doc, e.err = sjson.Set(e.doc, path, value)
}

func (e *encoder) raw(path, value string) {
	if e.err != nil {
		return
	}
	e.doc, e.err = sjson.SetRaw(e.doc, path, value)
}

func (e *encoder) char(path string, r rune) {
	if r == 0 {
		return
	}
	e.set(path, string(r))
}

// JSON renders the action in its wire shape:
// {"action":…, "count":…, "operator":…|null, …payload fields}.
func (a Action) JSON() string {
	e := &encoder{doc: "{}"}
	e.set("action", a.Name)
	count := a.Count
	if count < 1 {
		count = 1
	}
	e.set("count", count)
	if a.Operator == "" {
		e.raw("operator", "null")
	} else {
		e.set("operator", a.Operator)
	}
	e.char("register", a.Register)
	if a.Payload != nil {
		a.Payload.encode(e)
	}
	if e.err != nil {
		// Paths are fixed identifiers, so this only guards against misuse.
		return `{"action":"error","count":1,"operator":null}`
	}
	return e.doc
}

func (p Char) encode(e *encoder) {
	e.set("char", string(p.Char))
}

func (p MarkRef) encode(e *encoder) {
	e.char("mark", p.Mark)
	if p.Resolved {
		e.set("line", p.Line)
		e.set("column", p.Column)
		if p.FilePath != "" {
			e.set("file_path", p.FilePath)
		}
	}
}

func (p RegisterRef) encode(e *encoder) {
	e.char("register", p.Name)
}

func (p LineRange) encode(e *encoder) {
	if p.Start != "" {
		e.set("start", p.Start)
	}
	if p.End != "" {
		e.set("end", p.End)
	}
	if p.Resolved() {
		e.set("first_line", p.First)
		e.set("last_line", p.Last)
	}
}

func (p Substitute) encode(e *encoder) {
	p.Range.encode(e)
	e.set("pattern", p.Pattern)
	e.set("replacement", p.Replacement)
	e.set("flags", p.Flags)
	if p.Applied {
		e.set("new_text", p.NewText)
		e.set("num_replacements", p.NumReplacements)
	}
}

func (p Global) encode(e *encoder) {
	p.Range.encode(e)
	e.set("pattern", p.Pattern)
	e.set("command", p.Command)
	e.set("inverse", p.Inverse)
	if p.Lines != nil {
		e.set("lines", p.Lines)
	}
}

func (p CopyMove) encode(e *encoder) {
	p.Range.encode(e)
	e.set("destination", p.Destination)
}

func (p Path) encode(e *encoder) {
	if p.Path != "" {
		e.set("path", p.Path)
	}
}

func (p Option) encode(e *encoder) {
	e.set("option", p.Name)
	if p.HasValue {
		e.set("value", p.Value)
	}
}

func (p Variable) encode(e *encoder) {
	e.set("name", p.Name)
	e.set("value", p.Value)
}

func (p Mapping) encode(e *encoder) {
	if p.Mode != "" {
		e.set("mode", p.Mode)
	}
	e.set("key", p.Key)
	if p.Command != "" {
		e.set("command", p.Command)
	}
}

func (p Search) encode(e *encoder) {
	e.set("pattern", p.Pattern)
	if p.Forward {
		e.set("direction", "forward")
	} else {
		e.set("direction", "backward")
	}
	if p.Found {
		e.set("start", p.Start)
		e.set("end", p.End)
		e.set("line", p.MatchLine)
		e.set("wrapped", p.Wrapped)
	}
}

func (p Command) encode(e *encoder) {
	if p.Args != "" {
		e.set("args", p.Args)
	}
}

func (p TextObject) encode(e *encoder) {
	e.set("object", p.Object)
	e.set("inner", p.Inner)
	if p.Found {
		e.set("start", p.Start)
		e.set("end", p.End)
	}
}

func (p Range) encode(e *encoder) {
	e.set("start", p.Start)
	e.set("end", p.End)
}

func (p Problem) encode(e *encoder) {
	e.set("kind", p.Kind.String())
	e.set("message", p.Message)
	if p.Token != "" {
		e.set("token", p.Token)
	}
}

type selectionJSON struct {
	Anchor  int  `json:"anchor"`
	Head    int  `json:"head"`
	Primary bool `json:"primary"`
}

func (p Selections) encode(e *encoder) {
	out := make([]selectionJSON, len(p.Selections))
	for i, sel := range p.Selections {
		out[i] = selectionJSON(sel)
	}
	e.set("selections", out)
}

func (p Completion) encode(e *encoder) {
	e.set("input", p.Input)
	candidates := p.Candidates
	if candidates == nil {
		candidates = []string{}
	}
	e.set("candidates", candidates)
}
