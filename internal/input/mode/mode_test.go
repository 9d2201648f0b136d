package mode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		display string
		visual  bool
	}{
		{Normal, "normal", "NORMAL", false},
		{Insert, "insert", "INSERT", false},
		{Visual, "visual", "VISUAL", true},
		{VisualLine, "visual-line", "VISUAL LINE", true},
		{VisualBlock, "visual-block", "VISUAL BLOCK", true},
		{Command, "command", "COMMAND", false},
		{Replace, "replace", "REPLACE", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.mode.String())
			require.Equal(t, tt.display, tt.mode.DisplayName())
			require.Equal(t, tt.visual, tt.mode.IsVisual())
			parsed, ok := Parse(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.mode, parsed)
		})
	}
	require.Equal(t, "Mode(42)", Mode(42).String())
	require.Equal(t, CursorBar, Insert.CursorStyle())
	require.Equal(t, CursorBlock, Visual.CursorStyle())
}

func TestManagerSwitch(t *testing.T) {
	m := NewManager()
	require.Equal(t, Normal, m.Current())

	var seen []string
	unregister := m.OnChange(func(from, to Mode) {
		seen = append(seen, from.String()+">"+to.String())
	})

	require.True(t, m.Switch(Insert))
	require.False(t, m.Switch(Insert))
	require.Equal(t, Normal, m.Previous())
	require.True(t, m.Is(Insert, Replace))

	require.True(t, m.Restore())
	require.Equal(t, Normal, m.Current())
	require.Equal(t, Insert, m.Previous())

	unregister()
	m.Switch(Visual)
	require.Equal(t, []string{"normal>insert", "insert>normal"}, seen)
}

func TestCommandLineEditing(t *testing.T) {
	c := NewCommandLine()
	for _, r := range "wq" {
		c.Insert(r)
	}
	require.Equal(t, "wq", c.Buffer())
	require.Equal(t, 2, c.Cursor())

	require.True(t, c.Left())
	c.Insert('!')
	require.Equal(t, "w!q", c.Buffer())

	require.True(t, c.Right())
	require.False(t, c.Right())
	require.False(t, c.Backspace())
	require.Equal(t, "w!", c.Buffer())

	c.Reset(':')
	require.True(t, c.Backspace(), "backspace on an empty line exits")
}

func TestCommandLineGraphemes(t *testing.T) {
	c := NewCommandLine()
	c.InsertString("éx") // e + combining acute, then x
	require.Equal(t, 2, c.Cursor())

	require.True(t, c.Left())
	require.Equal(t, 1, c.Cursor())
	require.False(t, c.Backspace())
	require.Equal(t, "x", c.Buffer())

	c.SetBuffer("日本")
	require.Equal(t, 4, c.Column())
}

func TestCommandLineBackspaceAtStartKeepsText(t *testing.T) {
	c := NewCommandLine()
	c.SetBuffer("w")
	c.Left()
	require.False(t, c.Backspace())
	require.Equal(t, "w", c.Buffer())
}

func TestHistoryNewestFirstDeduplicated(t *testing.T) {
	c := NewCommandLine()
	c.Push("w")
	c.Push("q")
	c.Push("")
	c.Push("w")
	require.Equal(t, []string{"w", "q"}, c.History())
}

func TestHistoryCap(t *testing.T) {
	c := NewCommandLine()
	for i := 0; i < MaxHistory+20; i++ {
		c.Push(fmt.Sprintf("cmd%d", i))
	}
	h := c.History()
	require.Len(t, h, MaxHistory)
	require.Equal(t, fmt.Sprintf("cmd%d", MaxHistory+19), h[0])
}

func TestHistoryWalk(t *testing.T) {
	c := NewCommandLine()
	c.Push("first")
	c.Push("second")
	c.Reset(':')

	require.False(t, c.HistoryDown())
	require.True(t, c.HistoryUp())
	require.Equal(t, "second", c.Buffer())
	require.True(t, c.HistoryUp())
	require.Equal(t, "first", c.Buffer())
	require.False(t, c.HistoryUp())
	require.Equal(t, 1, c.HistoryIndex())

	require.True(t, c.HistoryDown())
	require.Equal(t, "second", c.Buffer())
	require.True(t, c.HistoryDown())
	require.Equal(t, -1, c.HistoryIndex())
	require.Empty(t, c.Buffer())
}
