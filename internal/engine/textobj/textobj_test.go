package textobj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cursor  int
		trigger rune
		inner   bool
		want    string
		found   bool
	}{
		{"paren inner", "(hello)", 3, '(', true, "hello", true},
		{"paren around", "(hello)", 3, '(', false, "(hello)", true},
		{"paren by close trigger", "(hello)", 3, ')', true, "hello", true},
		{"paren b alias", "(hello)", 3, 'b', true, "hello", true},
		{"paren unclosed", "(hello", 3, '(', true, "", false},
		{"nested inner pair", "(a (b) c)", 4, '(', true, "b", true},
		{"nested outer pair", "(a (b) c)", 7, '(', true, "a (b) c", true},
		{"cursor on close", "(a (b) c)", 5, '(', true, "b", true},
		{"brackets", "x[1, 2]", 3, '[', true, "1, 2", true},
		{"braces B", "{ k }", 2, 'B', false, "{ k }", true},
		{"angle", "a <b> c", 3, '<', true, "b", true},
		{"quote inner", `say "hello" now`, 6, '"', true, "hello", true},
		{"quote around", `say "hello" now`, 6, '"', false, `"hello"`, true},
		{"quote escaped", `"a\"b"`, 4, '"', true, `a\"b`, true},
		{"single quote", "it's 'x'", 6, '\'', true, "x", true},
		{"backtick", "run `ls` now", 5, '`', true, "ls", true},
		{"no quote", "plain", 2, '"', true, "", false},
		{"word", "foo bar_baz qux", 6, 'w', true, "bar_baz", true},
		{"word around trailing", "foo bar_baz qux", 6, 'w', false, "bar_baz ", true},
		{"word around leading", "foo bar_baz qux", 13, 'w', false, " qux", true},
		{"word stops at punctuation", "a foo.bar b", 4, 'w', true, "foo", true},
		{"WORD", "a foo.bar b", 4, 'W', true, "foo.bar", true},
		{"word on space", "a b", 1, 'w', true, "", false},
		{"word past end", "ab", 2, 'w', true, "", false},
		{"word unicode", "héllo wörld", 1, 'w', true, "héllo", true},
		{"sentence around", "One. Two three. Four", 6, 's', false, "Two three. ", true},
		{"sentence inner", "One. Two three. Four", 6, 's', true, "Two three.", true},
		{"sentence last", "One. Two", 6, 's', true, "Two", true},
		{"paragraph inner", "a\nb\n\nc", 0, 'p', true, "a\nb", true},
		{"paragraph around", "a\nb\n\nc", 0, 'p', false, "a\nb\n\n", true},
		{"paragraph last", "a\nb\n\nc", 5, 'p', false, "c", true},
		{"tag inner", "<div><b>x</b></div>", 8, 't', true, "x", true},
		{"tag around", "<div><b>x</b></div>", 8, 't', false, "<b>x</b>", true},
		{"tag cursor in open tag", "<div><b>x</b></div>", 3, 't', true, "<b>x</b>", true},
		{"tag cursor in close tag", "<div><b>x</b></div>", 14, 't', true, "<b>x</b>", true},
		{"tag attributes", `<a href="x">link</a>`, 13, 't', true, "link", true},
		{"tag unclosed", "<p>text", 4, 't', true, "", false},
		{"link inner", "see [docs](http://x) now", 6, 'l', true, "docs", true},
		{"link around", "see [docs](http://x) now", 6, 'l', false, "[docs](http://x)", true},
		{"link outside", "see [docs](http://x) now", 0, 'l', true, "", false},
		{"code inner", "a\n```go\nx := 1\n```\nb", 9, 'k', true, "x := 1\n", true},
		{"code around", "a\n```go\nx := 1\n```\nb", 9, 'k', false, "```go\nx := 1\n```", true},
		{"code outside", "a\n```go\nx := 1\n```\nb", 19, 'k', true, "", false},
		{"indent inner", "def f():\n    a\n    b\nc", 13, 'i', true, "    a\n    b", true},
		{"indent around", "def f():\n    a\n    b\nc", 13, 'i', false, "def f():\n    a\n    b", true},
		{"empty text", "", 0, '(', true, "", false},
		{"unknown trigger", "abc", 1, '#', true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, found := Find(tt.text, tt.cursor, tt.trigger, tt.inner)
			require.Equal(t, tt.found, found)
			if found {
				require.Equal(t, tt.want, r.Text(tt.text))
			}
		})
	}
}

func TestFindParenOffsets(t *testing.T) {
	r, ok := Find("(hello)", 3, '(', true)
	require.True(t, ok)
	require.Equal(t, Range{Start: 1, End: 6}, r)

	r, ok = Find("(hello)", 3, '(', false)
	require.True(t, ok)
	require.Equal(t, Range{Start: 0, End: 7}, r)
	require.Equal(t, 7, r.Len())
	require.Equal(t, "[0,7)", r.String())
}

func TestCursorClamped(t *testing.T) {
	r, ok := Find("(x)", 50, '(', true)
	require.True(t, ok)
	require.Equal(t, "x", r.Text("(x)"))

	r, ok = Find("(x)", -4, '(', false)
	require.True(t, ok)
	require.Equal(t, "(x)", r.Text("(x)"))
}

func TestLookup(t *testing.T) {
	_, ok := Lookup('w')
	require.True(t, ok)
	_, ok = Lookup('z')
	require.False(t, ok)
}

func TestResolverCustom(t *testing.T) {
	r := NewResolver()
	line := FinderFunc(func(text string, cursor int, inner bool) (Range, bool) {
		start := strings.LastIndexByte(text[:cursor], '\n') + 1
		end := strings.IndexByte(text[cursor:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += cursor
		}
		return Range{Start: start, End: end}, true
	})
	require.NoError(t, r.Register("line", line))
	require.Equal(t, []string{"line"}, r.Names())

	got, ok := r.Find("one\ntwo\nthree", 5, "line", true)
	require.True(t, ok)
	require.Equal(t, "two", got.Text("one\ntwo\nthree"))

	got, ok = r.FindRune("(a)", 1, '(', true)
	require.True(t, ok)
	require.Equal(t, Range{Start: 1, End: 2}, got)

	r.Unregister("line")
	_, ok = r.Find("one", 0, "line", true)
	require.False(t, ok)
}

func TestResolverRejects(t *testing.T) {
	r := NewResolver()
	require.ErrorIs(t, r.Register("", FinderFunc(nil)), ErrInvalidName)
	require.ErrorIs(t, r.Register("x", nil), ErrInvalidName)
	require.ErrorIs(t, r.Register("w", FinderFunc(func(string, int, bool) (Range, bool) {
		return Range{}, false
	})), ErrInvalidName)

	bad := FinderFunc(func(text string, _ int, _ bool) (Range, bool) {
		return Range{Start: 0, End: len(text) + 5}, true
	})
	require.NoError(t, r.Register("bad", bad))
	_, ok := r.Find("abc", 1, "bad", true)
	require.False(t, ok, "out of range results are dropped")
}

func balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func TestPairProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOfN(rapid.SampledFrom([]rune("(ab) ")), 0, 40, -1).Draw(t, "text")
		cursor := rapid.IntRange(0, len(text)).Draw(t, "cursor")

		in, ok := Find(text, cursor, '(', true)
		around, okAround := Find(text, cursor, '(', false)
		if ok != okAround {
			t.Fatalf("inner found=%v around found=%v", ok, okAround)
		}
		if !ok {
			return
		}
		if text[in.Start-1] != '(' || text[in.End] != ')' {
			t.Fatalf("inner %v not delimited in %q", in, text)
		}
		if around.Start != in.Start-1 || around.End != in.End+1 {
			t.Fatalf("around %v does not wrap inner %v", around, in)
		}
		if !balanced(in.Text(text)) {
			t.Fatalf("inner %q is not balanced", in.Text(text))
		}
	})
}
