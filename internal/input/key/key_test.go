package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.key.String())
	}
}

func TestKeyClassification(t *testing.T) {
	require.True(t, KeyUp.IsArrowKey())
	require.False(t, KeyHome.IsArrowKey())
	require.True(t, KeyF5.IsFunctionKey())
	require.False(t, KeyRune.IsSpecial())
	require.True(t, KeyTab.IsSpecial())
}

func TestModifier(t *testing.T) {
	m := ModCtrl.With(ModAlt)
	require.True(t, m.HasCtrl())
	require.True(t, m.HasAlt())
	require.False(t, m.HasShift())
	require.Equal(t, "Ctrl+Alt", m.String())
	require.Equal(t, ModAlt, m.Without(ModCtrl))
	require.Equal(t, ModCtrl, ModifierFromName(" Control "))
	require.Equal(t, ModNone, ModifierFromName("hyper"))
	require.Equal(t, ModMeta, ModifierFromName("D"))
	require.Empty(t, ModNone.String())
	require.Equal(t, "Ctrl+Shift+Meta", ModMeta.With(ModShift).With(ModCtrl).String())
}

func TestEventIsModified(t *testing.T) {
	require.False(t, NewRuneEvent('A', ModShift).IsModified())
	require.True(t, NewRuneEvent('a', ModCtrl).IsModified())
	require.True(t, NewSpecialEvent(KeyTab, ModShift).IsModified())
	require.False(t, Special(KeyEscape).IsModified())
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Char('a'), "a"},
		{Char(' '), "<Space>"},
		{Char('<'), "<lt>"},
		{Ctrl('r'), "<C-r>"},
		{Special(KeyEscape), "<Esc>"},
		{Special(KeyEnter), "<CR>"},
		{Special(KeyBackspace), "<BS>"},
		{NewSpecialEvent(KeyTab, ModShift), "<S-Tab>"},
		{NewRuneEvent('x', ModCtrl|ModAlt), "<C-A-x>"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.event.String())
		})
	}
}

func TestEventPredicates(t *testing.T) {
	require.True(t, Ctrl('C').IsCtrlRune('c'))
	require.True(t, Ctrl('c').IsCancel())
	require.True(t, Special(KeyEscape).IsCancel())
	require.False(t, Char('c').IsCancel())
	require.Equal(t, "x", Char('x').Text())
	require.Empty(t, Ctrl('x').Text())
	require.True(t, Char('q').Equals(NewRuneEvent('q', ModNone)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Char('a')},
		{"A", Char('A')},
		{" ", Char(' ')},
		{"+", Char('+')},
		{"Enter", Special(KeyEnter)},
		{"escape", Special(KeyEscape)},
		{"Space", Char(' ')},
		{"Ctrl+r", Ctrl('r')},
		{"Ctrl+R", Ctrl('r')},
		{"Alt+F4", NewSpecialEvent(KeyF4, ModAlt)},
		{"<C-r>", Ctrl('r')},
		{"<c-V>", Ctrl('v')},
		{"<Esc>", Special(KeyEscape)},
		{"<CR>", Special(KeyEnter)},
		{"<BS>", Special(KeyBackspace)},
		{"<lt>", Char('<')},
		{"<S-Tab>", NewSpecialEvent(KeyTab, ModShift)},
		{"<C-->", Ctrl('-')},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrEmptySpec)

	for _, spec := range []string{"<X-a>", "Hyper+a", "<Nope>", "Ctrl+Bogus"} {
		_, err := Parse(spec)
		require.ErrorIs(t, err, ErrInvalidSpec, spec)
	}
}

func TestParseSequence(t *testing.T) {
	events, err := ParseSequence("3d<C-r>iw")
	require.NoError(t, err)
	require.Equal(t, []Event{Char('3'), Char('d'), Ctrl('r'), Char('i'), Char('w')}, events)

	events, err = ParseSequence("<<")
	require.NoError(t, err)
	require.Equal(t, []Event{Char('<'), Char('<')}, events)

	events, err = ParseSequence(":s/<b>/x<CR>")
	require.NoError(t, err)
	require.Len(t, events, 9)
	require.Equal(t, Char('<'), events[3])
	require.Equal(t, Special(KeyEnter), events[8])

	events, err = ParseSequence("i<nope>")
	require.NoError(t, err)
	require.Len(t, events, 7)

	_, err = ParseSequence("")
	require.ErrorIs(t, err, ErrEmptySpec)
}

func TestFormatSequenceRoundTrip(t *testing.T) {
	spec := "3dd<Esc>:wq<CR>"
	require.Equal(t, spec, FormatSequence(MustParseSequence(spec)))
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Char('x')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Special(KeyEscape)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Special(KeyEnter)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Special(KeyBackspace)},
		{"f3", tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), Special(KeyF3)},
		{"ctrl-r", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), Ctrl('r')},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), NewRuneEvent('f', ModAlt)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FromTcell(tt.ev))
		})
	}
	require.Equal(t, Event{}, FromTcell(nil))
}

func TestToTcell(t *testing.T) {
	ev := ToTcell(Char('z'))
	require.NotNil(t, ev)
	require.Equal(t, tcell.KeyRune, ev.Key())
	require.Equal(t, 'z', ev.Rune())
	require.Equal(t, Special(KeyPageDown), FromTcell(ToTcell(Special(KeyPageDown))))
}
