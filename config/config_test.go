// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, BackendTerm, c.Display.Backend)
	assert.Equal(t, 3, c.Render.FixupLimit)
	assert.Len(t, c.ScreenOptions(), 2)
	assert.Len(t, c.TermOptions(), 2)
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
[display]
backend = "memory"
width = 800
height = 600
ink_timeout = "250ms"

[render]
stroke_width = 5
full_refresh_on_start = true

[log]
level = "debug"
format = "json"
`))
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, c.Display.Backend)
	assert.Equal(t, 800, c.Display.Width)
	assert.Equal(t, 600, c.Display.Height)
	assert.Equal(t, 4, c.Display.Scale)
	assert.Equal(t, 250*time.Millisecond, time.Duration(c.Display.InkTimeout))
	assert.Equal(t, 5, c.Render.StrokeWidth)
	assert.Equal(t, 3, c.Render.FixupLimit)
	assert.Len(t, c.ScreenOptions(), 3)

	level, err := c.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"unknown key", "[display]\ncolour = true\n", false},
		{"unknown section", "[audio]\n", false},
		{"syntax", "[display\n", false},
		{"bad duration", "[display]\nink_timeout = \"soon\"\n", false},
		{"backend", "[display]\nbackend = \"gpu\"\n", true},
		{"size", "[display]\nwidth = 0\n", true},
		{"fixup limit", "[render]\nfixup_limit = 0\n", true},
		{"fixup limit below minimum", "[render]\nfixup_limit = 2\n", true},
		{"stroke width", "[render]\nstroke_width = -1\n", true},
		{"level", "[log]\nlevel = \"loud\"\n", true},
		{"format", "[log]\nformat = \"xml\"\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalid))
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := Default()
	c.Display.Scale = 0
	c.Render.FixupLimit = 0
	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "display.scale")
	assert.Contains(t, err.Error(), "render.fixup_limit")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nfixup_limit = 5\n"), 0o600))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Render.FixupLimit)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeRoundTrips(t *testing.T) {
	c := Default()
	c.Display.InkTimeout = Duration(time.Second)
	data, err := c.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), "ink_timeout")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
