package key

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a terminal key event into an Event.
// Control codes for Ctrl+letter become the lowercase letter with ModCtrl.
func FromTcell(ev *tcell.EventKey) Event {
	if ev == nil {
		return Event{}
	}
	mods := fromTcellMod(ev.Modifiers())
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods)
	case tcell.KeyEscape:
		return NewSpecialEvent(KeyEscape, mods)
	case tcell.KeyEnter:
		return NewSpecialEvent(KeyEnter, mods.Without(ModCtrl))
	case tcell.KeyTab:
		return NewSpecialEvent(KeyTab, mods.Without(ModCtrl))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewSpecialEvent(KeyBackspace, mods.Without(ModCtrl))
	case tcell.KeyDelete:
		return NewSpecialEvent(KeyDelete, mods)
	case tcell.KeyInsert:
		return NewSpecialEvent(KeyInsert, mods)
	case tcell.KeyHome:
		return NewSpecialEvent(KeyHome, mods)
	case tcell.KeyEnd:
		return NewSpecialEvent(KeyEnd, mods)
	case tcell.KeyPgUp:
		return NewSpecialEvent(KeyPageUp, mods)
	case tcell.KeyPgDn:
		return NewSpecialEvent(KeyPageDown, mods)
	case tcell.KeyUp:
		return NewSpecialEvent(KeyUp, mods)
	case tcell.KeyDown:
		return NewSpecialEvent(KeyDown, mods)
	case tcell.KeyLeft:
		return NewSpecialEvent(KeyLeft, mods)
	case tcell.KeyRight:
		return NewSpecialEvent(KeyRight, mods)
	case tcell.KeyCtrlSpace:
		return NewRuneEvent(' ', mods.With(ModCtrl))
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return NewSpecialEvent(KeyF1+Key(k-tcell.KeyF1), mods)
	}

	// Remaining control codes map back onto their letter.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(ModCtrl))
	}

	return Event{}
}

// ToTcell builds the terminal event corresponding to e.
func ToTcell(e Event) *tcell.EventKey {
	mods := toTcellMod(e.Modifiers)
	switch e.Key {
	case KeyRune:
		return tcell.NewEventKey(tcell.KeyRune, e.Rune, mods)
	case KeyEscape:
		return tcell.NewEventKey(tcell.KeyEscape, 0, mods)
	case KeyEnter:
		return tcell.NewEventKey(tcell.KeyEnter, 0, mods)
	case KeyTab:
		return tcell.NewEventKey(tcell.KeyTab, 0, mods)
	case KeyBackspace:
		return tcell.NewEventKey(tcell.KeyBackspace2, 0, mods)
	case KeyDelete:
		return tcell.NewEventKey(tcell.KeyDelete, 0, mods)
	case KeyInsert:
		return tcell.NewEventKey(tcell.KeyInsert, 0, mods)
	case KeyHome:
		return tcell.NewEventKey(tcell.KeyHome, 0, mods)
	case KeyEnd:
		return tcell.NewEventKey(tcell.KeyEnd, 0, mods)
	case KeyPageUp:
		return tcell.NewEventKey(tcell.KeyPgUp, 0, mods)
	case KeyPageDown:
		return tcell.NewEventKey(tcell.KeyPgDn, 0, mods)
	case KeyUp:
		return tcell.NewEventKey(tcell.KeyUp, 0, mods)
	case KeyDown:
		return tcell.NewEventKey(tcell.KeyDown, 0, mods)
	case KeyLeft:
		return tcell.NewEventKey(tcell.KeyLeft, 0, mods)
	case KeyRight:
		return tcell.NewEventKey(tcell.KeyRight, 0, mods)
	}
	if e.Key.IsFunctionKey() {
		return tcell.NewEventKey(tcell.KeyF1+tcell.Key(e.Key-KeyF1), 0, mods)
	}
	return nil
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}

func toTcellMod(m Modifier) tcell.ModMask {
	var mods tcell.ModMask
	if m.HasShift() {
		mods |= tcell.ModShift
	}
	if m.HasCtrl() {
		mods |= tcell.ModCtrl
	}
	if m.HasAlt() {
		mods |= tcell.ModAlt
	}
	if m.HasMeta() {
		mods |= tcell.ModMeta
	}
	return mods
}
