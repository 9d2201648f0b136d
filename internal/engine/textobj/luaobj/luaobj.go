// Package luaobj implements text objects scripted in Lua.
//
// A script defines a global function taking (text, cursor, inner) and
// returning the start and end byte offsets of the object, or nil when there
// is none. Offsets are 0-based and the end is exclusive, matching textobj.
//
//	function heading(text, cursor, inner)
//	  local s = cursor
//	  while s > 0 and text:sub(s, s) ~= "\n" do s = s - 1 end
//	  ...
//	  return s, e
//	end
package luaobj

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/floatingskies/mark-mark/internal/engine/textobj"
)

// DefaultTimeout bounds a single Find call.
const DefaultTimeout = 100 * time.Millisecond

// Errors returned by New.
var (
	ErrFunctionNotFound = errors.New("lua function not found")
	ErrClosed           = errors.New("lua object closed")
)

// Object is a textobj.Finder backed by a Lua function.
//
// gopher-lua states are not goroutine-safe; calls are serialized.
type Object struct {
	mu      sync.Mutex
	L       *lua.LState
	fn      *lua.LFunction
	name    string
	timeout time.Duration
	closed  bool
	lastErr error
}

// Option configures an Object.
type Option func(*Object)

// WithTimeout sets the per-call time limit.
func WithTimeout(d time.Duration) Option {
	return func(o *Object) {
		o.timeout = d
	}
}

// New loads source into a sandboxed state and binds the global function fn.
func New(source, fn string, opts ...Option) (*Object, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("load %s: %w", fn, err)
	}
	f, ok := L.GetGlobal(fn).(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, fn)
	}

	o := &Object{L: L, fn: f, name: fn, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// openSafeLibraries opens base, table, string and math only, and removes
// the base functions that load code.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Name returns the bound function name.
func (o *Object) Name() string {
	return o.name
}

// Find calls the Lua function. Script errors, timeouts and malformed
// results all report no object; the error is kept for Err.
func (o *Object) Find(text string, cursor int, inner bool) (textobj.Range, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		o.lastErr = ErrClosed
		return textobj.Range{}, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()
	o.L.SetContext(ctx)
	defer o.L.RemoveContext()

	o.lastErr = nil
	err := o.L.CallByParam(lua.P{Fn: o.fn, NRet: 2, Protect: true},
		lua.LString(text), lua.LNumber(cursor), lua.LBool(inner))
	if err != nil {
		o.lastErr = err
		return textobj.Range{}, false
	}
	endVal := o.L.Get(-1)
	startVal := o.L.Get(-2)
	o.L.Pop(2)

	start, ok1 := startVal.(lua.LNumber)
	end, ok2 := endVal.(lua.LNumber)
	if !ok1 || !ok2 {
		return textobj.Range{}, false
	}
	r := textobj.Range{Start: int(start), End: int(end)}
	if r.Start < 0 || r.End > len(text) || r.Start > r.End {
		o.lastErr = fmt.Errorf("%s returned out of range %v", o.name, r)
		return textobj.Range{}, false
	}
	return r, true
}

// Err returns the error from the last Find call, if any.
func (o *Object) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Close releases the Lua state.
func (o *Object) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	o.L.Close()
}

// Register loads source and registers fn under name on the resolver.
func Register(r *textobj.Resolver, name, source, fn string, opts ...Option) (*Object, error) {
	o, err := New(source, fn, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(name, o); err != nil {
		o.Close()
		return nil, err
	}
	return o, nil
}
