package excmd

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/floatingskies/mark-mark/internal/engine/search"
	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/vim"
)

// Snapshot is the buffer state commands are evaluated against.
type Snapshot struct {
	// Text is the whole buffer.
	Text string
	// Line is the 1-based cursor line; values below 1 mean line 1.
	Line int
	// LastPattern is used when a substitute pattern is empty.
	LastPattern string
}

// Dispatcher turns parsed commands into actions.
type Dispatcher struct {
	searcher *search.Searcher
	opts     search.Options
}

// NewDispatcher creates a dispatcher compiling patterns with searcher.
// A nil searcher gets a private one.
func NewDispatcher(searcher *search.Searcher, opts search.Options) *Dispatcher {
	if searcher == nil {
		searcher = search.New()
	}
	return &Dispatcher{searcher: searcher, opts: opts}
}

// SetOptions replaces the case and wrap options.
func (d *Dispatcher) SetOptions(opts search.Options) {
	d.opts = opts
}

// Execute parses and dispatches raw. snap may be nil.
func (d *Dispatcher) Execute(raw string, snap *Snapshot) action.Action {
	cmd, err := Parse(raw)
	if err != nil {
		return action.ParseError(err.Error())
	}
	return d.Dispatch(cmd, snap)
}

// Dispatch evaluates a parsed command. snap may be nil, in which case line
// ranges are passed through unresolved.
func (d *Dispatcher) Dispatch(cmd Command, snap *Snapshot) action.Action {
	if cmd.IsEmpty() {
		return action.New(action.NameNoop)
	}
	c := &call{d: d, cmd: cmd, snap: snap, args: strings.TrimSpace(cmd.Args)}
	if cmd.Name == "" {
		return gotoLine(c)
	}
	h, ok := commands[cmd.Name]
	if !ok {
		return action.UnknownCommand(cmd.Name)
	}
	return h(c)
}

// call is one command being dispatched.
type call struct {
	d    *Dispatcher
	cmd  Command
	snap *Snapshot
	args string
}

type handler func(c *call) action.Action

func simple(name string) handler {
	return func(*call) action.Action {
		return action.New(name)
	}
}

func withPath(name string) handler {
	return func(c *call) action.Action {
		return action.NewWith(name, action.Path{Path: c.args})
	}
}

func withArgs(name string) handler {
	return func(c *call) action.Action {
		return action.NewWith(name, action.Command{Args: c.args})
	}
}

var commands = map[string]handler{
	"w":           withPath("save_file"),
	"wq":          withPath("save_and_quit"),
	"q":           simple("quit"),
	"q!":          simple("force_quit"),
	"qa":          simple("quit_all"),
	"qa!":         simple("force_quit_all"),
	"e":           withPath("open_file"),
	"bn":          simple("next_buffer"),
	"bp":          simple("prev_buffer"),
	"bd":          simple("close_buffer"),
	"ls":          simple("list_buffers"),
	"s":           substitute,
	"g":           global(false),
	"g!":          global(true),
	"v":           global(true),
	"d":           lineCommand("delete_lines", true),
	"y":           lineCommand("yank_lines", true),
	"j":           join,
	"pu":          put,
	"co":          copyMove("copy_lines"),
	"t":           copyMove("copy_lines"),
	"m":           copyMove("move_lines"),
	"r":           withPath("read_file"),
	"!":           withArgs("shell_command"),
	"so":          withPath("source_config"),
	"set":         setOption,
	"let":         let,
	"map":         mapKey("normal"),
	"nmap":        mapKey("normal"),
	"imap":        mapKey("insert"),
	"vmap":        mapKey("visual"),
	"unmap":       unmap,
	"noh":         simple("clear_search_highlights"),
	"syn":         withArgs("syntax_command"),
	"hi":          withArgs("highlight_command"),
	"colorscheme": withArgs("set_colorscheme"),
	"tabnew":      withPath("new_tab"),
	"tabc":        simple("close_tab"),
	"tabn":        simple("next_tab"),
	"tabp":        simple("prev_tab"),
	"vsp":         withPath("vsplit"),
	"sp":          withPath("hsplit"),
	"clo":         simple("close_window"),
	"on":          simple("close_other_windows"),
	"res":         withArgs("resize_window"),
	"vert":        withArgs("vertical_resize"),
	"cd":          withPath("change_directory"),
	"pwd":         simple("show_directory"),
	"mkdir":       withPath("make_directory"),
	"help":        withArgs("show_help"),
	"version":     simple("show_version"),
}

// Names returns every recognized command name, sorted.
func Names() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsCommand reports whether name is a recognized command.
func IsCommand(name string) bool {
	_, ok := commands[name]
	return ok
}

var errRange = errors.New("invalid range")

// splitLines returns the lines of text. A final newline does not start
// another line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (c *call) currentLine() int {
	return max(1, c.snap.Line)
}

func (c *call) resolve(tok string, n int) (int, error) {
	switch tok {
	case "", ".":
		return c.currentLine(), nil
	case "$":
		return n, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errRange
	}
	return v, nil
}

// lineRange returns the command's range, or the given default tokens when
// none was typed, resolved against the snapshot when there is one.
func (c *call) lineRange(defStart, defEnd string) (action.LineRange, *action.Action) {
	r := action.LineRange{Start: c.cmd.Range.Start, End: c.cmd.Range.End}
	if !c.cmd.Range.IsSet() {
		r.Start, r.End = defStart, defEnd
	}
	if c.snap == nil {
		return r, nil
	}

	n := len(splitLines(c.snap.Text))
	first, err := c.resolve(r.Start, n)
	if err != nil {
		a := action.InvalidRange("Invalid range: " + r.Start)
		return r, &a
	}
	last := first
	if r.End != "" {
		if last, err = c.resolve(r.End, n); err != nil {
			a := action.InvalidRange("Invalid range: " + r.End)
			return r, &a
		}
	}
	switch {
	case first < 1 || last > n || first > n:
		a := action.Errorf(action.KindInvalidRange, "", "Invalid range: %d,%d (buffer has %d lines)", first, last, n)
		return r, &a
	case first > last:
		a := action.Errorf(action.KindInvalidRange, "", "Backwards range: %d,%d", first, last)
		return r, &a
	}
	r.First, r.Last = first, last
	return r, nil
}

// gotoLine handles a command that is only a range, such as :42 or :$.
// The target is clamped to the buffer.
func gotoLine(c *call) action.Action {
	tok := c.cmd.Range.End
	if tok == "" {
		tok = c.cmd.Range.Start
	}
	r := action.LineRange{Start: tok}
	if c.snap != nil {
		n := len(splitLines(c.snap.Text))
		line, err := c.resolve(tok, n)
		if err != nil {
			return action.InvalidRange("Invalid range: " + tok)
		}
		line = max(1, min(line, n))
		r.First, r.Last = line, line
	}
	return action.NewWith("goto_line", r)
}

// register parses an optional register argument.
func register(args string) (rune, bool) {
	if args == "" {
		return 0, true
	}
	rs := []rune(args)
	if len(rs) != 1 || !vim.IsValidRegister(rs[0]) {
		return 0, false
	}
	return rs[0], true
}

func lineCommand(name string, takesRegister bool) handler {
	return func(c *call) action.Action {
		r, problem := c.lineRange(".", "")
		if problem != nil {
			return *problem
		}
		a := action.NewWith(name, r)
		if takesRegister {
			reg, ok := register(c.args)
			if !ok {
				return action.ParseError("Invalid register: " + c.args)
			}
			a = a.WithRegister(reg)
		}
		return a
	}
}

// join defaults to the current and next line.
func join(c *call) action.Action {
	if !c.cmd.Range.IsSet() && c.snap != nil {
		n := len(splitLines(c.snap.Text))
		line := min(c.currentLine(), n)
		next := min(line+1, n)
		return action.NewWith("join_lines_range", action.LineRange{
			Start: ".", End: strconv.Itoa(next), First: line, Last: next,
		})
	}
	r, problem := c.lineRange(".", "")
	if problem != nil {
		return *problem
	}
	return action.NewWith("join_lines_range", r)
}

func put(c *call) action.Action {
	reg, ok := register(c.args)
	if !ok {
		return action.ParseError("Invalid register: " + c.args)
	}
	return action.New("put").WithRegister(reg)
}

func copyMove(name string) handler {
	return func(c *call) action.Action {
		r, problem := c.lineRange(".", "")
		if problem != nil {
			return *problem
		}
		dest := -1
		switch {
		case c.args == "":
		case c.args == "$" && c.snap != nil:
			dest = len(splitLines(c.snap.Text))
		case c.args == "." && c.snap != nil:
			dest = c.currentLine()
		default:
			if v, err := strconv.Atoi(c.args); err == nil && v >= 0 {
				dest = v
			}
		}
		if dest < 0 {
			return action.ParseError("Invalid destination: " + c.args)
		}
		if c.snap != nil && dest > len(splitLines(c.snap.Text)) {
			return action.Errorf(action.KindInvalidRange, "", "Invalid destination: %d", dest)
		}
		return action.NewWith(name, action.CopyMove{Range: r, Destination: dest})
	}
}

// setOption accepts "name", "name=value" and "name value".
func setOption(c *call) action.Action {
	if c.args == "" {
		return action.ParseError("Argument required")
	}
	if name, value, ok := strings.Cut(c.args, "="); ok {
		return action.NewWith("set_option", action.Option{
			Name: strings.TrimSpace(name), Value: strings.TrimSpace(value), HasValue: true,
		})
	}
	fields := strings.Fields(c.args)
	opt := action.Option{Name: fields[0]}
	if len(fields) > 1 {
		opt.Value = strings.TrimSpace(strings.TrimPrefix(c.args, fields[0]))
		opt.HasValue = true
	}
	return action.NewWith("set_option", opt)
}

func isVariableName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !isLetter(b) && !isDigit(b) && b != '_' && b != ':' {
			return false
		}
	}
	return true
}

func let(c *call) action.Action {
	name, value, ok := strings.Cut(c.args, "=")
	name = strings.TrimSpace(name)
	if !ok || !isVariableName(name) {
		return action.ParseError("Invalid let syntax")
	}
	return action.NewWith("set_variable", action.Variable{Name: name, Value: strings.TrimSpace(value)})
}

func mapKey(mode string) handler {
	return func(c *call) action.Action {
		fields := strings.Fields(c.args)
		if len(fields) < 2 {
			return action.ParseError("Invalid map syntax")
		}
		command := strings.TrimSpace(strings.TrimPrefix(c.args, fields[0]))
		return action.NewWith("map_key", action.Mapping{Mode: mode, Key: fields[0], Command: command})
	}
}

func unmap(c *call) action.Action {
	if c.args == "" {
		return action.ParseError("Argument required")
	}
	return action.NewWith("unmap_key", action.Mapping{Key: c.args})
}
