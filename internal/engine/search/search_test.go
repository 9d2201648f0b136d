package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var defaults = Options{IgnoreCase: true, SmartCase: true, WrapScan: true}

func TestFoldCase(t *testing.T) {
	require.True(t, FoldCase("foo", defaults))
	require.False(t, FoldCase("Foo", defaults))
	require.True(t, FoldCase("Foo", Options{IgnoreCase: true}))
	require.False(t, FoldCase("foo", Options{}))
}

func TestNextForward(t *testing.T) {
	s := New()
	text := "foo bar Foo baz foo"

	m, ok, err := s.Next(text, 0, "foo", Forward, defaults)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Match{Start: 8, End: 11}, m)

	m, ok, err = s.Next(text, 0, "Foo", Forward, defaults)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8, m.Start)

	m, ok, err = s.Next(text, 16, "foo", Forward, defaults)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Match{Start: 0, End: 3, Wrapped: true}, m)

	_, ok, err = s.Next(text, 16, "foo", Forward, Options{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNextBackward(t *testing.T) {
	s := New()
	text := "ab ab ab"

	m, ok, err := s.Next(text, 6, "ab", Backward, defaults)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, m.Start)

	m, ok, err = s.Next(text, 0, "ab", Backward, defaults)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Match{Start: 6, End: 8, Wrapped: true}, m)

	_, ok, err = s.Next(text, 0, "ab", Backward, Options{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLineAnchors(t *testing.T) {
	s := New()
	text := "one\ntwo\nthree"
	m, ok, err := s.Next(text, 0, "^t", Forward, defaults)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, m.Start)
	require.Equal(t, 2, m.Line(text))
}

func TestInvalidPattern(t *testing.T) {
	s := New()
	_, _, err := s.Next("abc", 0, "(", Forward, defaults)
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestCache(t *testing.T) {
	s := New()
	a, err := s.Compile("x+", defaults)
	require.NoError(t, err)
	b, err := s.Compile("x+", defaults)
	require.NoError(t, err)
	require.Same(t, a, b)

	_, err = s.CompileFold("x+", false)
	require.NoError(t, err)
	require.Equal(t, 2, s.Cached())

	s.Flush()
	require.Equal(t, 0, s.Cached())
}

func TestWordPattern(t *testing.T) {
	s := New()
	m, ok, err := s.Next("a.b ab a.b", 0, WordPattern("a.b"), Forward, defaults)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, m.Start)
}

func TestState(t *testing.T) {
	var st State
	require.False(t, st.IsSet())
	st = State{Pattern: "x", Direction: Backward}
	require.True(t, st.IsSet())
	require.Equal(t, Backward, st.Repeat(false))
	require.Equal(t, Forward, st.Repeat(true))
	require.Equal(t, "backward", Backward.String())
	require.Equal(t, "forward", Forward.String())
}
