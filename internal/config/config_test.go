package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1000, cfg.TimeoutMS)
	assert.True(t, cfg.IgnoreCase)
	assert.True(t, cfg.SmartCase)
	assert.True(t, cfg.WrapScan)
	assert.Equal(t, 5, cfg.Scrolloff)
	assert.Equal(t, time.Second, cfg.Timeout())
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.TimeoutMS = -1
	cfg.Scrolloff = -2

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "timeout_ms")
	assert.Contains(t, err.Error(), "scrolloff")
}

func TestDecodeTOML(t *testing.T) {
	data := []byte(`
[vim]
timeout_ms = 250
smart_case = false

[editor]
tab_width = 4
`)
	cfg, err := Decode("config.toml", data, TOML)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.TimeoutMS)
	assert.False(t, cfg.SmartCase)
	assert.True(t, cfg.IgnoreCase)
	assert.Equal(t, 5, cfg.Scrolloff)
}

func TestDecodeYAML(t *testing.T) {
	data := []byte("vim:\n  wrap_scan: false\n  scrolloff: 8\n")
	cfg, err := Decode("config.yaml", data, YAML)
	require.NoError(t, err)
	assert.False(t, cfg.WrapScan)
	assert.Equal(t, 8, cfg.Scrolloff)
	assert.Equal(t, 1000, cfg.TimeoutMS)
}

func TestDecodeMissingSection(t *testing.T) {
	cfg, err := Decode("empty.toml", []byte("title = \"x\"\n"), TOML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeParseError(t *testing.T) {
	_, err := Decode("bad.toml", []byte("[vim]\ntimeout_ms = = 3\n"), TOML)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "bad.toml", pe.Source)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Error(), "bad.toml")

	_, err = Decode("bad.yaml", []byte("vim: [\n"), YAML)
	require.True(t, errors.As(err, &pe))
}

func TestDecodeInvalidValue(t *testing.T) {
	_, err := Decode("neg.toml", []byte("[vim]\nscrolloff = -1\n"), TOML)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode("x", nil, Format(9))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("settings.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)

	f, err = FormatOf("settings.yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = FormatOf("settings.json")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.TimeoutMS = 42
	for _, f := range []Format{TOML, YAML} {
		data, err := Encode(cfg, f)
		require.NoError(t, err)
		got, err := Decode("rt", data, f)
		require.NoError(t, err)
		assert.Equal(t, cfg, got, f.String())
	}
}

func TestSearchOptions(t *testing.T) {
	cfg := Default()
	cfg.WrapScan = false
	opts := cfg.SearchOptions()
	assert.True(t, opts.IgnoreCase)
	assert.True(t, opts.SmartCase)
	assert.False(t, opts.WrapScan)
}
