package vim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountPush(t *testing.T) {
	var c Count
	require.False(t, c.Push('0'), "leading zero is a motion")
	require.False(t, c.Active())

	require.True(t, c.Push('1'))
	require.True(t, c.Push('0'))
	require.Equal(t, 10, c.Value())
	require.Equal(t, "10", c.String())

	require.False(t, c.Push('x'))
	c.Reset()
	require.Equal(t, 1, c.Get())
	require.Empty(t, c.String())
}

func TestCountOverflowClamps(t *testing.T) {
	var c Count
	for i := 0; i < 30; i++ {
		c.Push('9')
	}
	require.Equal(t, math.MaxInt32, c.Value())
}

func TestCombineCounts(t *testing.T) {
	require.Equal(t, 6, CombineCounts(2, 3))
	require.Equal(t, 3, CombineCounts(0, 3))
	require.Equal(t, 1, CombineCounts(0, 0))
	require.Equal(t, math.MaxInt32, CombineCounts(math.MaxInt32, 2))
	require.Equal(t, 12, ParseCount("12"))
	require.Equal(t, 1, ParseCount(""))
}

func TestOperators(t *testing.T) {
	for _, keys := range []string{"c", "d", "y", ">", "<", "=", "g~", "gu", "gU", "gq", "gw"} {
		require.True(t, IsOperator(keys), keys)
	}
	for _, keys := range []string{"g", "u", "~", "x", "dd", "g!", "?"} {
		require.False(t, IsOperator(keys), keys)
	}
	op, ok := LookupOperator("c")
	require.True(t, ok)
	require.True(t, op.EntersInsert)
	require.Len(t, Operators(), 11)
}

func tokens(t *testing.T, keys string) []string {
	t.Helper()
	toks, err := Tokens(keys)
	require.NoError(t, err)
	return toks
}

func TestTrieLookup(t *testing.T) {
	trie := MustNewTrie([]Entry{
		{Keys: "dd", Action: "delete_line"},
		{Keys: "diw", Action: "d_inner_word"},
		{Keys: "<C-r>", Action: "redo"},
		{Keys: "<<", Action: "unindent_line"},
	})
	require.Equal(t, 4, trie.Len())

	e, ok := trie.Lookup(tokens(t, "dd"))
	require.True(t, ok)
	require.Equal(t, "delete_line", e.Action)

	_, ok = trie.Lookup(tokens(t, "d"))
	require.False(t, ok)
	require.True(t, trie.HasLonger(tokens(t, "d")))
	require.True(t, trie.HasLonger(tokens(t, "di")))
	require.False(t, trie.HasLonger(tokens(t, "diw")))
	require.False(t, trie.HasLonger(tokens(t, "x")))
	require.True(t, trie.HasPath(tokens(t, "di")))
	require.False(t, trie.HasPath(tokens(t, "dx")))

	e, ok = trie.Lookup(tokens(t, "<C-r>"))
	require.True(t, ok)
	require.Equal(t, "redo", e.Action)

	e, ok = trie.Lookup(tokens(t, "<<"))
	require.True(t, ok)
	require.Equal(t, "unindent_line", e.Action)
}

func TestTrieLaterEntryWins(t *testing.T) {
	trie := MustNewTrie([]Entry{
		{Keys: "zz", Action: "first"},
		{Keys: "zz", Action: "center_view"},
	})
	require.Equal(t, 1, trie.Len())
	e, _ := trie.Lookup(tokens(t, "zz"))
	require.Equal(t, "center_view", e.Action)
}

func TestNormalTable(t *testing.T) {
	trie := MustNewTrie(NormalEntries())

	tests := []struct {
		keys   string
		action string
	}{
		{"i", "enter_insert_mode"},
		{"dd", "delete_line"},
		{"gg", "goto_first_line"},
		{"g8", "show_utf8"},
		{"zz", "center_view"},
		{"])", "next_close_paren"},
		{"G", "goto_file_end"},
		{"0", "line_start"},
		{"dw", "d_motion_word"},
		{"c$", "c_motion_line_end"},
		{"y^", "y_motion_first_non_whitespace"},
		{"d0", "d_motion_line_start"},
		{`ci"`, "c_inner_double_quote"},
		{"da(", "d_around_parentheses"},
		{"yi<lt>", "y_inner_angle_brackets"},
		{"diw", "d_inner_word"},
		{"caW", "c_around_WORD"},
		{"dit", "d_inner_tag"},
		{"dib", "d_inner_block"},
		{"gu", "make_lowercase_motion"},
		{"<<", "unindent_line"},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			e, ok := trie.Lookup(tokens(t, tt.keys))
			require.True(t, ok)
			require.Equal(t, tt.action, e.Action)
		})
	}

	for _, prefix := range []string{"g", "z", "d", "c", "y", "di", "ca", "[", "]"} {
		require.True(t, trie.HasLonger(tokens(t, prefix)), prefix)
	}
	require.False(t, trie.HasPath(tokens(t, "Q")))
}

func TestNormalTableObjectEntries(t *testing.T) {
	trie := MustNewTrie(NormalEntries())
	e, ok := trie.Lookup(tokens(t, "ci'"))
	require.True(t, ok)
	require.Equal(t, '\'', e.Object)
	require.True(t, e.Inner)
	require.Equal(t, "c", e.Operator)

	e, ok = trie.Lookup(tokens(t, "f"))
	require.True(t, ok)
	require.Equal(t, ArgChar, e.Arg)
	require.True(t, e.Motion)
}

func TestCtrlTables(t *testing.T) {
	name, ok := NormalCtrl('r')
	require.True(t, ok)
	require.Equal(t, "redo", name)
	_, ok = NormalCtrl('z')
	require.False(t, ok)

	name, ok = InsertCtrl('w')
	require.True(t, ok)
	require.Equal(t, "delete_word_before", name)
}

func TestVisualTable(t *testing.T) {
	trie := MustNewTrie(VisualEntries())
	for keys, action := range map[string]string{
		"h":     "extend_left",
		"x":     "delete_selection",
		"gv":    "reselect_last",
		"<lt>":  "unindent_selection",
		"iw":    "select_inner_word",
		`a"`:    "select_around_double_quote",
		"<C-v>": "enter_visual_block_mode",
		"<A-s>": "split_selection_lines",
	} {
		e, ok := trie.Lookup(tokens(t, keys))
		require.True(t, ok, keys)
		require.Equal(t, action, e.Action, keys)
	}
}

func TestRegisterAliasing(t *testing.T) {
	rs := NewRegisterStore()
	require.NoError(t, rs.Set('a', "hello", false))
	require.Equal(t, "hello", rs.Get('a').Content)
	require.Equal(t, "hello", rs.Get('"').Content)

	require.NoError(t, rs.Set('A', " world", false))
	require.Equal(t, "hello world", rs.Get('a').Content)
	require.Equal(t, "hello world", rs.Get('"').Content)

	require.NoError(t, rs.Set('_', "gone", false))
	require.Equal(t, "hello world", rs.Get('"').Content)

	require.Equal(t, "hello world", rs.Get('?').Content, "unknown names read the unnamed register")
	require.ErrorIs(t, rs.Set('?', "x", false), ErrInvalidRegister)
	require.ErrorIs(t, rs.Set('/', "x", false), ErrInvalidRegister)
}

func TestRegisterLinewiseAppend(t *testing.T) {
	rs := NewRegisterStore()
	require.NoError(t, rs.Set('b', "one", true))
	require.NoError(t, rs.Set('B', "two", false))
	reg := rs.Get('b')
	require.Equal(t, "one\ntwo", reg.Content)
	require.True(t, reg.Linewise)
}

func TestRegisterYankAndDelete(t *testing.T) {
	rs := NewRegisterStore()
	require.NoError(t, rs.Yank(0, "yanked", false))
	require.Equal(t, "yanked", rs.Get('0').Content)
	require.Equal(t, "yanked", rs.Get('"').Content)

	require.NoError(t, rs.Delete(0, "line one\n", true))
	require.NoError(t, rs.Delete(0, "line two\n", true))
	require.Equal(t, "line two\n", rs.Get('1').Content)
	require.Equal(t, "line one\n", rs.Get('2').Content)
	require.Equal(t, "yanked", rs.Get('0').Content)

	require.NoError(t, rs.Delete(0, "w", false))
	require.Equal(t, "w", rs.Get('-').Content)
	require.Equal(t, "w", rs.Get('"').Content)
	require.Equal(t, "line two\n", rs.Get('1').Content)

	require.NoError(t, rs.Delete(0, "a\nb", false))
	require.Equal(t, "a\nb", rs.Get('1').Content)
	require.Equal(t, "line two\n", rs.Get('2').Content)
	require.Equal(t, "w", rs.Get('-').Content)

	rs.SetLastSearch("foo")
	require.Equal(t, "foo", rs.Get('/').Content)
	require.Contains(t, rs.Names(), '/')
}

func TestMarks(t *testing.T) {
	ms := NewMarkStore()
	require.NoError(t, ms.Set('a', Mark{Line: 3, Column: 1}))
	require.NoError(t, ms.Set('<', Mark{Line: 0}))
	require.ErrorIs(t, ms.Set('!', Mark{}), ErrInvalidMark)

	m, ok := ms.Get('a')
	require.True(t, ok)
	require.Equal(t, 3, m.Line)
	require.Equal(t, []rune{'<', 'a'}, ms.List())

	ms.Delete('a')
	_, ok = ms.Get('a')
	require.False(t, ok)
}
