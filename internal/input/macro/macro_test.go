package macro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/floatingskies/mark-mark/internal/input/key"
)

func TestRecordAndStop(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Start('a'))
	require.True(t, r.IsRecording())
	require.Equal(t, 'a', r.Register())

	r.Record(key.Char('d'))
	r.Record(key.Char('d'))

	reg, events, err := r.Stop()
	require.NoError(t, err)
	require.Equal(t, 'a', reg)
	require.Len(t, events, 2)
	require.False(t, r.IsRecording())
	require.Equal(t, key.MustParseSequence("dd"), r.Get('a'))
}

func TestRecorderErrors(t *testing.T) {
	r := NewRecorder()
	require.ErrorIs(t, r.Start('!'), ErrInvalidRegister)

	_, _, err := r.Stop()
	require.ErrorIs(t, err, ErrNotRecording)

	require.NoError(t, r.Start('b'))
	require.ErrorIs(t, r.Start('c'), ErrAlreadyRecording)
}

func TestRecordIgnoredWhenIdle(t *testing.T) {
	r := NewRecorder()
	r.Record(key.Char('x'))
	require.Empty(t, r.Registers())
}

func TestUppercaseAppends(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Set('a', key.MustParseSequence("x")))

	require.NoError(t, r.Start('A'))
	require.Equal(t, 'a', r.Register())
	r.Record(key.Char('j'))
	_, _, err := r.Stop()
	require.NoError(t, err)

	require.Equal(t, key.MustParseSequence("xj"), r.Get('a'))

	require.NoError(t, r.Set('A', key.MustParseSequence("k")))
	require.Equal(t, key.MustParseSequence("xjk"), r.Get('a'))
}

func TestGetReturnsCopy(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Set('q', key.MustParseSequence("ab")))
	got := r.Get('q')
	got[0] = key.Char('z')
	require.Equal(t, key.Char('a'), r.Get('q')[0])

	require.NoError(t, r.Set('q', nil))
	require.Empty(t, r.Get('q'))
	require.Empty(t, r.Registers())
}

func TestPlay(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Set('a', key.MustParseSequence("jx")))
	p := NewPlayer(r)

	var got []key.Event
	err := p.Play(context.Background(), 'a', 3, func(ev key.Event) {
		got = append(got, ev)
	})
	require.NoError(t, err)
	require.Len(t, got, 6)
	require.Equal(t, 'a', r.LastPlayed())
	require.False(t, p.IsPlaying())

	got = nil
	require.NoError(t, p.PlayLast(context.Background(), 1, func(ev key.Event) {
		got = append(got, ev)
	}))
	require.Len(t, got, 2)
}

func TestPlayErrors(t *testing.T) {
	r := NewRecorder()
	p := NewPlayer(r)
	noop := func(key.Event) {}

	require.ErrorIs(t, p.Play(context.Background(), 'a', 1, noop), ErrEmptyMacro)
	require.ErrorIs(t, p.Play(context.Background(), '#', 1, noop), ErrInvalidRegister)
	require.ErrorIs(t, p.PlayLast(context.Background(), 1, noop), ErrEmptyMacro)

	require.NoError(t, r.Set('a', key.MustParseSequence("x")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Play(ctx, 'a', 1, noop), context.Canceled)
}

func TestPlayRecursionLimit(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Set('a', key.MustParseSequence("@a")))
	p := NewPlayer(r)

	var deepest error
	var handler EventHandler
	handler = func(ev key.Event) {
		if ev.Rune == 'a' {
			if err := p.Play(context.Background(), 'a', 1, handler); err != nil && deepest == nil {
				deepest = err
			}
		}
	}
	require.NoError(t, p.Play(context.Background(), 'a', 1, handler))
	require.ErrorIs(t, deepest, ErrRecursionLimit)
	require.Equal(t, 0, p.Depth())
}
