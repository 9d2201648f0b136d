package config

import (
	"errors"
	"time"

	"github.com/floatingskies/mark-mark/internal/engine/search"
)

// Default values.
const (
	DefaultTimeoutMS = 1000
	DefaultScrolloff = 5
)

// Config is the engine configuration.
type Config struct {
	// TimeoutMS is how long a pending key sequence may wait. The engine
	// does not run timers; hosts read Timeout and call Cancel. 0 disables.
	TimeoutMS int `toml:"timeout_ms" yaml:"timeout_ms"`

	// IgnoreCase folds case in search and substitute patterns.
	IgnoreCase bool `toml:"ignore_case" yaml:"ignore_case"`

	// SmartCase turns IgnoreCase off for patterns with upper case letters.
	SmartCase bool `toml:"smart_case" yaml:"smart_case"`

	// WrapScan lets searches wrap around the end of the buffer.
	WrapScan bool `toml:"wrap_scan" yaml:"wrap_scan"`

	// Scrolloff is the number of context lines the host keeps around the
	// cursor.
	Scrolloff int `toml:"scrolloff" yaml:"scrolloff"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		TimeoutMS:  DefaultTimeoutMS,
		IgnoreCase: true,
		SmartCase:  true,
		WrapScan:   true,
		Scrolloff:  DefaultScrolloff,
	}
}

// Validate checks value ranges. All problems are joined.
func (c Config) Validate() error {
	var errs []error
	if c.TimeoutMS < 0 {
		errs = append(errs, &ValidationError{Field: "timeout_ms", Value: c.TimeoutMS, Message: "must not be negative"})
	}
	if c.Scrolloff < 0 {
		errs = append(errs, &ValidationError{Field: "scrolloff", Value: c.Scrolloff, Message: "must not be negative"})
	}
	return errors.Join(errs...)
}

// Timeout returns TimeoutMS as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// SearchOptions returns the options used for search and substitute.
func (c Config) SearchOptions() search.Options {
	return search.Options{
		IgnoreCase: c.IgnoreCase,
		SmartCase:  c.SmartCase,
		WrapScan:   c.WrapScan,
	}
}
