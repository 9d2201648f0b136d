package macro

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/floatingskies/mark-mark/internal/input/key"
)

// Recorder errors.
var (
	ErrInvalidRegister  = errors.New("invalid macro register")
	ErrAlreadyRecording = errors.New("already recording")
	ErrNotRecording     = errors.New("not recording")
	ErrEmptyMacro       = errors.New("empty macro register")
)

// Recorder records key sequences for macro playback.
type Recorder struct {
	mu         sync.Mutex
	recording  bool
	appending  bool
	register   rune
	events     []key.Event
	registers  map[rune][]key.Event
	lastPlayed rune
}

// NewRecorder creates a new macro recorder with empty registers.
func NewRecorder() *Recorder {
	return &Recorder{
		registers: make(map[rune][]key.Event),
	}
}

// Start begins recording to the specified register.
func (r *Recorder) Start(register rune) error {
	target := Normalize(register)
	if target == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return fmt.Errorf("%w: register %c", ErrAlreadyRecording, r.register)
	}

	r.recording = true
	r.appending = IsAppendRegister(register)
	r.register = target
	r.events = nil
	return nil
}

// Stop ends the current recording and saves it to the register.
// It returns the register and the events recorded in this session.
func (r *Recorder) Stop() (rune, []key.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return 0, nil, ErrNotRecording
	}

	r.recording = false
	recorded := r.events
	r.events = nil

	saved := make([]key.Event, 0, len(recorded))
	if r.appending {
		saved = append(saved, r.registers[r.register]...)
	}
	saved = append(saved, recorded...)
	if len(saved) == 0 {
		delete(r.registers, r.register)
	} else {
		r.registers[r.register] = saved
	}
	return r.register, recorded, nil
}

// IsRecording returns true if currently recording.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Register returns the register being recorded to, or 0 if not recording.
func (r *Recorder) Register() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return r.register
	}
	return 0
}

// Record adds a key event to the current recording.
// Does nothing if not recording.
func (r *Recorder) Record(event key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.events = append(r.events, event)
	}
}

// Get returns a copy of the macro stored in a register.
func (r *Recorder) Get(register rune) []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := r.registers[Normalize(register)]
	result := make([]key.Event, len(events))
	copy(result, events)
	return result
}

// Set stores a macro in a register. Uppercase names append; an empty
// event list clears the register.
func (r *Recorder) Set(register rune, events []key.Event) error {
	target := Normalize(register)
	if target == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var saved []key.Event
	if IsAppendRegister(register) {
		saved = append(saved, r.registers[target]...)
	}
	saved = append(saved, events...)
	if len(saved) == 0 {
		delete(r.registers, target)
		return nil
	}
	r.registers[target] = saved
	return nil
}

// Registers returns the registers that hold macros, sorted.
func (r *Recorder) Registers() []rune {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]rune, 0, len(r.registers))
	for reg := range r.registers {
		result = append(result, reg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// SetLastPlayed sets the last played register (for @@).
func (r *Recorder) SetLastPlayed(register rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastPlayed = register
}

// LastPlayed returns the last played register, or 0 if none.
func (r *Recorder) LastPlayed() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastPlayed
}
