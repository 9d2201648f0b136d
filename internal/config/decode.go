package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration document format.
type Format int

const (
	TOML Format = iota
	YAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf guesses the format from a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// document is the top level of a configuration file.
type document struct {
	Vim *Config `toml:"vim" yaml:"vim"`
}

// Decode reads the [vim] section of data over the defaults and validates
// the result. source names the input in errors.
func Decode(source string, data []byte, format Format) (Config, error) {
	cfg := Default()
	doc := document{Vim: &cfg}

	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			pe := &ParseError{Source: source, Message: err.Error(), Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return Config{}, pe
		}
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Config{}, &ParseError{Source: source, Message: err.Error(), Err: err}
		}
	default:
		return Config{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if doc.Vim != nil {
		cfg = *doc.Vim
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Encode renders cfg as a document with a vim section.
func Encode(cfg Config, format Format) ([]byte, error) {
	doc := document{Vim: &cfg}
	switch format {
	case TOML:
		return toml.Marshal(doc)
	case YAML:
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}
