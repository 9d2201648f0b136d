package excmd

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/floatingskies/mark-mark/internal/engine/search"
	"github.com/floatingskies/mark-mark/internal/input/action"
)

var defaultOptions = search.Options{IgnoreCase: true, SmartCase: true, WrapScan: true}

func newDispatcher() *Dispatcher {
	return NewDispatcher(search.New(), defaultOptions)
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Command
	}{
		{"1,3d", Command{Range: Range{Start: "1", End: "3"}, Name: "d"}},
		{":%s/foo/bar/g", Command{Range: Range{Start: "1", End: "$"}, Name: "s", Args: "/foo/bar/g"}},
		{"q!", Command{Name: "q!"}},
		{"!ls -l", Command{Name: "!", Args: "ls -l"}},
		{",5y", Command{Range: Range{Start: ".", End: "5"}, Name: "y"}},
		{".,$j", Command{Range: Range{Start: ".", End: "$"}, Name: "j"}},
		{"42", Command{Range: Range{Start: "42"}}},
		{"co3", Command{Name: "co", Args: "3"}},
		{"set ts=4", Command{Name: "set", Args: " ts=4"}},
		{"g!/x/d", Command{Name: "g!", Args: "/x/d"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			tt.want.Raw = tt.raw
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmptyAndInvalid(t *testing.T) {
	cmd, err := Parse("  :  ")
	require.NoError(t, err)
	require.True(t, cmd.IsEmpty())

	_, err = Parse("1,d")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestDeleteRangeShape(t *testing.T) {
	a := newDispatcher().Execute(":1,3d", nil)
	require.Equal(t, "delete_lines", a.Name)

	doc := a.JSON()
	require.Equal(t, "delete_lines", gjson.Get(doc, "action").String())
	require.Equal(t, "1", gjson.Get(doc, "start").String())
	require.Equal(t, "3", gjson.Get(doc, "end").String())
	require.Equal(t, int64(1), gjson.Get(doc, "count").Int())
	require.Equal(t, gjson.Null, gjson.Get(doc, "operator").Type)
}

func TestSimpleCommands(t *testing.T) {
	d := newDispatcher()
	tests := []struct {
		raw  string
		name string
	}{
		{"", action.NameNoop},
		{"q", "quit"},
		{"q!", "force_quit"},
		{"qa", "quit_all"},
		{"qa!", "force_quit_all"},
		{"wq", "save_and_quit"},
		{"bn", "next_buffer"},
		{"bp", "prev_buffer"},
		{"bd", "close_buffer"},
		{"ls", "list_buffers"},
		{"noh", "clear_search_highlights"},
		{"tabc", "close_tab"},
		{"tabn", "next_tab"},
		{"tabp", "prev_tab"},
		{"clo", "close_window"},
		{"on", "close_other_windows"},
		{"pwd", "show_directory"},
		{"version", "show_version"},
		{"j", "join_lines_range"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.name, d.Execute(tt.raw, nil).Name)
		})
	}
}

func TestPathAndArgCommands(t *testing.T) {
	d := newDispatcher()
	tests := []struct {
		raw, name, field, value string
	}{
		{"w notes.md", "save_file", "path", "notes.md"},
		{"e todo.md", "open_file", "path", "todo.md"},
		{"r other.md", "read_file", "path", "other.md"},
		{"so init.vim", "source_config", "path", "init.vim"},
		{"tabnew x.md", "new_tab", "path", "x.md"},
		{"vsp a", "vsplit", "path", "a"},
		{"sp b", "hsplit", "path", "b"},
		{"cd /tmp", "change_directory", "path", "/tmp"},
		{"mkdir notes", "make_directory", "path", "notes"},
		{"!ls -l", "shell_command", "args", "ls -l"},
		{"syn on", "syntax_command", "args", "on"},
		{"hi Normal", "highlight_command", "args", "Normal"},
		{"colorscheme dark", "set_colorscheme", "args", "dark"},
		{"res 10", "resize_window", "args", "10"},
		{"vert 40", "vertical_resize", "args", "40"},
		{"help motions", "show_help", "args", "motions"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			doc := d.Execute(tt.raw, nil).JSON()
			require.Equal(t, tt.name, gjson.Get(doc, "action").String())
			require.Equal(t, tt.value, gjson.Get(doc, tt.field).String())
		})
	}

	doc := d.Execute("w", nil).JSON()
	require.False(t, gjson.Get(doc, "path").Exists())
}

func requireProblem(t *testing.T, a action.Action, kind action.ErrorKind) action.Problem {
	t.Helper()
	p, ok := a.Problem()
	require.True(t, ok, "expected a problem action, got %s", a.Name)
	require.Equal(t, kind, p.Kind)
	return p
}

func TestUnknownCommand(t *testing.T) {
	a := newDispatcher().Execute(":frob", nil)
	require.True(t, a.IsError())
	p := requireProblem(t, a, action.KindUnknownCommand)
	require.Equal(t, "frob", p.Token)
	require.Equal(t, "Unknown command: frob", p.Message)
}

func TestParseErrors(t *testing.T) {
	d := newDispatcher()
	for _, raw := range []string{
		"s", "s/a", "s/a/b/x", "s/(/x/", "g", "g/", "g/(/d",
		"set", "let", "let = 3", "map x", "nmap", "unmap",
		"co", "m foo", "y ab", "pu 12", "1,d",
	} {
		t.Run(raw, func(t *testing.T) {
			requireProblem(t, d.Execute(raw, nil), action.KindParseError)
		})
	}
}

func TestOptionsVariablesMappings(t *testing.T) {
	d := newDispatcher()

	doc := d.Execute("set number", nil).JSON()
	require.Equal(t, "number", gjson.Get(doc, "option").String())
	require.False(t, gjson.Get(doc, "value").Exists())

	doc = d.Execute("set ts=4", nil).JSON()
	require.Equal(t, "ts", gjson.Get(doc, "option").String())
	require.Equal(t, "4", gjson.Get(doc, "value").String())

	doc = d.Execute("set spelllang en us", nil).JSON()
	require.Equal(t, "en us", gjson.Get(doc, "value").String())

	doc = d.Execute("let g:x = 5", nil).JSON()
	require.Equal(t, "set_variable", gjson.Get(doc, "action").String())
	require.Equal(t, "g:x", gjson.Get(doc, "name").String())
	require.Equal(t, "5", gjson.Get(doc, "value").String())

	for raw, mode := range map[string]string{"map": "normal", "nmap": "normal", "imap": "insert", "vmap": "visual"} {
		doc = d.Execute(raw+" jj <Esc>:w", nil).JSON()
		require.Equal(t, "map_key", gjson.Get(doc, "action").String())
		require.Equal(t, mode, gjson.Get(doc, "mode").String())
		require.Equal(t, "jj", gjson.Get(doc, "key").String())
		require.Equal(t, "<Esc>:w", gjson.Get(doc, "command").String())
	}

	doc = d.Execute("unmap jj", nil).JSON()
	require.Equal(t, "unmap_key", gjson.Get(doc, "action").String())
	require.Equal(t, "jj", gjson.Get(doc, "key").String())
}

func TestRegistersAndDestinations(t *testing.T) {
	d := newDispatcher()

	a := d.Execute("y a", nil)
	require.Equal(t, "yank_lines", a.Name)
	require.Equal(t, 'a', a.Register)

	a = d.Execute("pu b", nil)
	require.Equal(t, "put", a.Name)
	require.Equal(t, 'b', a.Register)

	doc := d.Execute("2,3co 5", nil).JSON()
	require.Equal(t, "copy_lines", gjson.Get(doc, "action").String())
	require.Equal(t, int64(5), gjson.Get(doc, "destination").Int())

	doc = d.Execute("t0", nil).JSON()
	require.Equal(t, "copy_lines", gjson.Get(doc, "action").String())
	require.Equal(t, int64(0), gjson.Get(doc, "destination").Int())

	require.Equal(t, "move_lines", d.Execute("m 1", nil).Name)
}

func TestSubstituteAll(t *testing.T) {
	a := newDispatcher().Execute(":%s/foo/bar/g", &Snapshot{Text: "foo foo foo", Line: 1})
	require.Equal(t, "substitute", a.Name)

	doc := a.JSON()
	require.Equal(t, int64(3), gjson.Get(doc, "num_replacements").Int())
	require.Equal(t, "bar bar bar", gjson.Get(doc, "new_text").String())
	require.Equal(t, "1", gjson.Get(doc, "start").String())
	require.Equal(t, "$", gjson.Get(doc, "end").String())
	require.Equal(t, "g", gjson.Get(doc, "flags").String())
}

func TestSubstitute(t *testing.T) {
	d := newDispatcher()
	tests := []struct {
		name string
		raw  string
		text string
		line int
		want string
		n    int
	}{
		{"first only", "s/foo/bar/", "foo foo foo", 1, "bar foo foo", 1},
		{"range", "2,3s/a/b/", "a\na\na\n", 1, "a\nb\nb\n", 2},
		{"current line", "s/a/b/", "a\na", 2, "a\nb", 1},
		{"ignore case flag", "s/FOO/x/i", "foo", 1, "x", 1},
		{"groups", `s/(\w+) (\w+)/\2 \1/`, "hello world", 1, "world hello", 1},
		{"ampersand", "s/o/[&]/g", "hello world", 1, "hell[o] w[o]rld", 2},
		{"escaped delimiter", `s/a\/b/c/`, "a/b", 1, "c", 1},
		{"other delimiter", "s#/#-#g", "a/b/c", 1, "a-b-c", 2},
		{"newline", `s/,/\n/`, "a,b", 1, "a\nb", 1},
		{"no trailing delimiter", "s/a/b", "aa", 1, "ba", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := d.Execute(tt.raw, &Snapshot{Text: tt.text, Line: tt.line})
			require.Equal(t, "substitute", a.Name, "got %s", a.JSON())
			p, ok := a.Payload.(action.Substitute)
			require.True(t, ok)
			require.True(t, p.Applied)
			require.Equal(t, tt.want, p.NewText)
			require.Equal(t, tt.n, p.NumReplacements)
		})
	}
}

func TestSubstituteNoMatch(t *testing.T) {
	d := newDispatcher()
	a := d.Execute("s/x/y/", &Snapshot{Text: "abc", Line: 1})
	require.True(t, a.IsNoMatch())
	require.False(t, a.IsError())

	a = d.Execute("s/FOO/x/", &Snapshot{Text: "foo", Line: 1})
	require.True(t, a.IsNoMatch(), "smart case makes an upper case pattern exact")

	a = d.Execute("s/FOO/x/I", &Snapshot{Text: "FOO", Line: 1})
	require.Equal(t, "substitute", a.Name)
}

func TestSubstituteLastPattern(t *testing.T) {
	d := newDispatcher()
	a := d.Execute("s//x/", &Snapshot{Text: "a foo", Line: 1, LastPattern: "foo"})
	p, ok := a.Payload.(action.Substitute)
	require.True(t, ok)
	require.Equal(t, "a x", p.NewText)
	require.Equal(t, "foo", p.Pattern)

	requireProblem(t, d.Execute("s//x/", &Snapshot{Text: "a", Line: 1}), action.KindParseError)
}

func TestInvalidRanges(t *testing.T) {
	d := newDispatcher()
	snap := &Snapshot{Text: "a\nb\nc", Line: 1}
	for _, raw := range []string{"1,5d", "3,1d", "0d", "9y", "1,9s/a/b/", "co 9"} {
		t.Run(raw, func(t *testing.T) {
			requireProblem(t, d.Execute(raw, snap), action.KindInvalidRange)
		})
	}

	doc := d.Execute("2d", snap).JSON()
	require.Equal(t, int64(2), gjson.Get(doc, "first_line").Int())
	require.Equal(t, int64(2), gjson.Get(doc, "last_line").Int())

	doc = d.Execute(".,$y", &Snapshot{Text: "a\nb\nc\n", Line: 2}).JSON()
	require.Equal(t, int64(2), gjson.Get(doc, "first_line").Int())
	require.Equal(t, int64(3), gjson.Get(doc, "last_line").Int())
}

func TestGlobal(t *testing.T) {
	d := newDispatcher()
	snap := &Snapshot{Text: "foo\nbar\nfoo", Line: 1}

	a := d.Execute("g/foo/d", snap)
	p, ok := a.Payload.(action.Global)
	require.True(t, ok)
	require.Equal(t, []int{1, 3}, p.Lines)
	require.Equal(t, "d", p.Command)
	require.False(t, p.Inverse)

	for _, raw := range []string{"v/foo/d", "g!/foo/d"} {
		p, ok = d.Execute(raw, snap).Payload.(action.Global)
		require.True(t, ok)
		require.Equal(t, []int{2}, p.Lines)
		require.True(t, p.Inverse)
	}

	require.True(t, d.Execute("g/zzz/d", snap).IsNoMatch())
	require.True(t, d.Execute("v/./d", snap).IsNoMatch())

	doc := d.Execute("g/foo/s/o/0/g", nil).JSON()
	require.Equal(t, "s/o/0/g", gjson.Get(doc, "command").String())
	require.False(t, gjson.Get(doc, "lines").Exists())
}

func TestGotoAndJoin(t *testing.T) {
	d := newDispatcher()
	snap := &Snapshot{Text: "a\nb\nc", Line: 1}

	doc := d.Execute("5", snap).JSON()
	require.Equal(t, "goto_line", gjson.Get(doc, "action").String())
	require.Equal(t, int64(3), gjson.Get(doc, "first_line").Int())

	doc = d.Execute("$", snap).JSON()
	require.Equal(t, int64(3), gjson.Get(doc, "first_line").Int())

	doc = d.Execute("j", snap).JSON()
	require.Equal(t, int64(1), gjson.Get(doc, "first_line").Int())
	require.Equal(t, int64(2), gjson.Get(doc, "last_line").Int())

	doc = d.Execute("co $", snap).JSON()
	require.Equal(t, int64(3), gjson.Get(doc, "destination").Int())
}

func TestComplete(t *testing.T) {
	require.Equal(t, []string{"tabc", "tabn", "tabnew", "tabp"}, Complete("tab"))
	require.Equal(t, []string{"vsp", "version"}, Complete("vs"))
	require.Contains(t, Complete(""), "w")
	require.True(t, IsCommand("mkdir"))
	require.False(t, IsCommand("frob"))
	require.Len(t, Names(), 51)
}
