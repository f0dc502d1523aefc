// Command paperdemo runs a small paper application: a $P gesture
// matcher and a handwriting pad with background recognition.
//
// The terminal backend draws the framebuffer with half-block characters;
// the left mouse button is the pen and the right button a finger. Press
// q to quit. The memory backend renders one frame, which -snapshot can
// save as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/app"
	"github.com/gogpu/paper/config"
	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/display/term"
	"github.com/gogpu/paper/gesture"
	"github.com/gogpu/paper/ui"
	"github.com/gogpu/paper/widgets"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("paperdemo: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("paperdemo", flag.ContinueOnError)
	var (
		configPath = flags.String("config", "", "TOML configuration file")
		backend    = flags.String("backend", "", "display backend: term or memory (overrides the configuration)")
		snapshot   = flags.String("snapshot", "", "write the final framebuffer to this PNG file")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *backend != "" {
		cfg.Display.Backend = *backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var (
		d   display.Display
		src app.InputSource
	)
	switch cfg.Display.Backend {
	case config.BackendTerm:
		t, err := term.Open(cfg.TermOptions()...)
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		d, src = t, t
	default:
		d, src = display.NewMemory(cfg.Display.Width, cfg.Display.Height), noInput{}
	}
	defer func() { _ = d.Close() }()

	screen := ui.NewScreen(d, cfg.ScreenOptions()...)
	a := app.New[message](screen)
	root := newDemo(ctx, screen, a.Sender(), widgets.DefaultFont())
	defer root.Close()

	err = a.Run(ctx, src, root, root.update)
	switch {
	case errors.Is(err, term.ErrQuit), errors.Is(err, context.Canceled):
		err = nil
	case errors.Is(err, app.ErrInputClosed) && cfg.Display.Backend == config.BackendMemory:
		err = nil
	}
	if err != nil {
		return err
	}
	if *snapshot != "" {
		if err := screen.Framebuffer().SavePNG(*snapshot); err != nil {
			return err
		}
		paper.Logger().Info("paperdemo: snapshot saved", "path", *snapshot)
	}
	return nil
}

// setupLogging installs the configured logger. Without a log file the
// terminal backend logs nowhere, since stderr shares its screen.
func setupLogging(cfg config.Config) (func(), error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	case cfg.Display.Backend == config.BackendTerm:
		return closeFn, nil
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	paper.SetLogger(slog.New(h))
	return func() {
		paper.SetLogger(nil)
		closeFn()
	}, nil
}

// noInput is the memory backend's input source: it has no events.
type noInput struct{}

func (noInput) Listen(context.Context, func(gesture.Event)) error { return nil }
