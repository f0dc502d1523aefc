// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads paper application settings from TOML.
//
// A configuration file only needs the keys it changes; everything else
// keeps its Default value. Unknown keys are rejected.
//
//	[display]
//	backend = "term"
//	scale = 4
//	ink_timeout = "600ms"
//
//	[render]
//	fixup_limit = 3
//	stroke_width = 3
//
//	[log]
//	level = "debug"
//	format = "json"
//	file = "paper.log"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/paper/display/term"
	"github.com/gogpu/paper/ui"
)

// ErrInvalid is wrapped by errors reporting out-of-range settings.
var ErrInvalid = errors.New("config: invalid")

// Backend names.
const (
	BackendTerm   = "term"
	BackendMemory = "memory"
)

// Config is the complete application configuration.
type Config struct {
	Display Display `toml:"display"`
	Render  Render  `toml:"render"`
	Log     Log     `toml:"log"`
}

// Display selects and sizes the display.
type Display struct {
	// Backend is "term" or "memory".
	Backend string `toml:"backend"`
	// Width and Height size the memory backend. The terminal backend
	// fills the terminal.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Scale is the number of pixels per half cell in the terminal.
	Scale      int      `toml:"scale"`
	InkTimeout Duration `toml:"ink_timeout"`
}

// Render tunes the renderer.
type Render struct {
	FixupLimit         int  `toml:"fixup_limit"`
	StrokeWidth        int  `toml:"stroke_width"`
	FullRefreshOnStart bool `toml:"full_refresh_on_start"`
}

// Log configures the application logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File is the log destination; empty means stderr.
	File string `toml:"file"`
}

// Duration is a time.Duration written as a Go duration string.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{
			Backend:    BackendTerm,
			Width:      1404,
			Height:     1872,
			Scale:      4,
			InkTimeout: Duration(term.DefaultInkTimeout),
		},
		Render: Render{
			FixupLimit:  ui.DefaultFixupLimit,
			StrokeWidth: ui.DefaultStrokeWidth,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	d := c.Display
	check(d.Backend == BackendTerm || d.Backend == BackendMemory,
		"display.backend %q is not %q or %q", d.Backend, BackendTerm, BackendMemory)
	check(d.Width > 0 && d.Height > 0, "display size %dx%d", d.Width, d.Height)
	check(d.Scale >= 1, "display.scale %d", d.Scale)
	check(d.InkTimeout > 0, "display.ink_timeout %v", time.Duration(d.InkTimeout))
	check(c.Render.FixupLimit >= ui.MinFixupLimit,
		"render.fixup_limit %d is below %d", c.Render.FixupLimit, ui.MinFixupLimit)
	check(c.Render.StrokeWidth >= 1, "render.stroke_width %d", c.Render.StrokeWidth)
	_, err := c.Log.SlogLevel()
	check(err == nil, "log.level %q", c.Log.Level)
	check(c.Log.Format == "text" || c.Log.Format == "json", "log.format %q", c.Log.Format)
	return errors.Join(errs...)
}

// SlogLevel returns the configured level.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}

// ScreenOptions returns the renderer options.
func (c Config) ScreenOptions() []ui.Option {
	opts := []ui.Option{
		ui.WithFixupLimit(c.Render.FixupLimit),
		ui.WithStrokeWidth(c.Render.StrokeWidth),
	}
	if c.Render.FullRefreshOnStart {
		opts = append(opts, ui.WithFullRefreshOnStart())
	}
	return opts
}

// TermOptions returns the terminal display options.
func (c Config) TermOptions() []term.Option {
	return []term.Option{
		term.WithScale(c.Display.Scale),
		term.WithInkTimeout(time.Duration(c.Display.InkTimeout)),
	}
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
