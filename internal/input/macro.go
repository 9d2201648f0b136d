package input

import (
	"context"
	"errors"
	"fmt"

	"github.com/floatingskies/mark-mark/internal/input/action"
	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/macro"
)

// ErrRecordingActive is returned when playback is requested while a macro
// is being recorded into the same register.
var ErrRecordingActive = errors.New("macro register is being recorded")

// PlayMacro replays register count times through HandleKey and returns the
// actions produced. Register '@' replays the last played macro and ':'
// repeats the last ex command. A replayed execute_macro plays the nested
// macro in place, up to macro.MaxDepth levels.
//
// Actions produced before a failure are returned with the error.
func (e *Engine) PlayMacro(ctx context.Context, register rune, count int) ([]action.Action, error) {
	if count < 1 {
		count = 1
	}
	if register == ':' {
		return e.repeatCommand(count)
	}
	if e.recorder.IsRecording() && e.recorder.Register() == macro.Normalize(register) {
		return nil, fmt.Errorf("%w: %c", ErrRecordingActive, register)
	}

	out, err := e.play(ctx, register, count)
	if err != nil {
		e.log.Debug("macro playback failed", "register", string(register), "error", err)
	}
	return out, err
}

// play replays one register, descending into nested execute_macro actions.
func (e *Engine) play(ctx context.Context, register rune, count int) ([]action.Action, error) {
	var out []action.Action
	var nestedErr error
	handler := func(ev key.Event) {
		a := e.HandleKey(ev)
		if a == nil {
			return
		}
		out = append(out, *a)
		if a.Name != nameExecuteMacro || nestedErr != nil {
			return
		}
		ref, ok := a.Payload.(action.RegisterRef)
		if !ok {
			return
		}
		var nested []action.Action
		if ref.Name == ':' {
			nested, nestedErr = e.repeatCommand(max(a.Count, 1))
		} else {
			nested, nestedErr = e.play(ctx, ref.Name, a.Count)
		}
		out = append(out, nested...)
	}
	var err error
	if register == '@' {
		err = e.player.PlayLast(ctx, count, handler)
	} else {
		err = e.player.Play(ctx, register, count, handler)
	}
	if err == nil {
		err = nestedErr
	}
	return out, err
}

// repeatCommand runs the last ex command count times (@:).
func (e *Engine) repeatCommand(count int) ([]action.Action, error) {
	raw := e.registers.Get(':').Content
	if raw == "" {
		return nil, fmt.Errorf("%w: :", macro.ErrEmptyMacro)
	}
	out := make([]action.Action, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, e.Execute(raw))
	}
	return out, nil
}
