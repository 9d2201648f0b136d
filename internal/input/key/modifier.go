package key

import "strings"

// Modifier is a bit set of the modifier keys held with a key press.
type Modifier uint8

// Modifier bits. Alt is Option on macOS; Meta is Cmd or the Windows key and
// is written D in key notation.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// modifierNames lists the modifiers in display order.
var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// modifierAliases maps the lowercase spellings accepted in <...> notation.
var modifierAliases = map[string]Modifier{
	"c": ModCtrl, "ctrl": ModCtrl, "control": ModCtrl,
	"a": ModAlt, "alt": ModAlt, "option": ModAlt,
	"s": ModShift, "shift": ModShift,
	"d": ModMeta, "m": ModMeta, "meta": ModMeta, "cmd": ModMeta,
}

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool  { return m.Has(ModMeta) }

func (m Modifier) With(mod Modifier) Modifier    { return m | mod }
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// String joins the held modifiers with '+', e.g. "Ctrl+Alt". It is empty
// for ModNone.
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// ModifierFromName resolves a modifier spelling, ignoring case and
// surrounding space. Unknown names give ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}
