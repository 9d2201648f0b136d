package macro

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/floatingskies/mark-mark/internal/input/key"
)

// MaxDepth bounds how deeply macros may invoke other macros.
const MaxDepth = 16

// ErrRecursionLimit is returned when nested playback exceeds MaxDepth.
var ErrRecursionLimit = errors.New("macro recursion limit reached")

// EventHandler processes one replayed key event.
type EventHandler func(event key.Event)

// Player replays recorded macros synchronously.
type Player struct {
	recorder *Recorder
	mu       sync.Mutex
	depth    int
}

// NewPlayer creates a new macro player that uses the given recorder for macro storage.
func NewPlayer(recorder *Recorder) *Player {
	return &Player{
		recorder: recorder,
	}
}

// Play replays the macro in register count times through handler.
// Playback may nest (a macro that runs another macro) up to MaxDepth.
// The context is checked between events.
func (p *Player) Play(ctx context.Context, register rune, count int, handler EventHandler) error {
	if handler == nil {
		return errors.New("macro handler cannot be nil")
	}
	if !IsValidRegister(register) {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}

	events := p.recorder.Get(register)
	if len(events) == 0 {
		return fmt.Errorf("%w: %c", ErrEmptyMacro, register)
	}

	if count < 1 {
		count = 1
	}

	p.mu.Lock()
	if p.depth >= MaxDepth {
		p.mu.Unlock()
		return ErrRecursionLimit
	}
	p.depth++
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.depth--
		p.mu.Unlock()
	}()

	for i := 0; i < count; i++ {
		for _, event := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			handler(event)
		}
	}

	p.recorder.SetLastPlayed(register)
	return nil
}

// PlayLast replays the last played macro (@@).
func (p *Player) PlayLast(ctx context.Context, count int, handler EventHandler) error {
	register := p.recorder.LastPlayed()
	if register == 0 {
		return fmt.Errorf("%w: no macro has been played", ErrEmptyMacro)
	}
	return p.Play(ctx, register, count, handler)
}

// IsPlaying returns true while a macro is being replayed.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.depth > 0
}

// Depth returns the current nesting depth.
func (p *Player) Depth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.depth
}
