// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term emulates an e-paper panel and its digitizer in a terminal.
//
// Every terminal cell shows two blocks of scale×scale framebuffer pixels
// using the upper half block character: the foreground is the average
// grey of the upper block, the background that of the lower one.
//
// The left mouse button acts as the stylus and the right button as a
// finger. Releasing the left button is followed, after the ink timeout,
// by the stylus leaving hover range, which completes the ink.
package term

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/gesture"
)

// ErrQuit is returned by Listen when the user asks to quit.
var ErrQuit = errors.New("term: quit requested")

const upperHalfBlock = '▀'

// DefaultInkTimeout is how long after the last pen lift the stylus is
// reported out of range.
const DefaultInkTimeout = 600 * time.Millisecond

// Option configures a Terminal.
type Option func(*Terminal)

// WithScale sets how many framebuffer pixels map to one half cell along
// each axis.
func WithScale(n int) Option {
	return func(t *Terminal) {
		if n >= 1 {
			t.scale = n
		}
	}
}

// WithInkTimeout sets the delay between the last pen lift and the stylus
// leaving range.
func WithInkTimeout(d time.Duration) Option {
	return func(t *Terminal) {
		if d > 0 {
			t.inkTimeout = d
		}
	}
}

// Terminal is a display.Display and input source backed by a tcell
// screen.
type Terminal struct {
	screen     tcell.Screen
	fb         *display.Framebuffer
	scale      int
	inkTimeout time.Duration

	mu       sync.Mutex
	closed   bool
	penNear  bool
	farTimer *time.Timer
	// penGen is bumped on every press so a late timer cannot report a
	// pen that is back on the surface as out of range.
	penGen int
}

// New initializes screen and returns a Terminal whose framebuffer fills
// it. The Terminal owns the screen and finalizes it on Close.
func New(screen tcell.Screen, opts ...Option) (*Terminal, error) {
	t := &Terminal{
		screen:     screen,
		scale:      4,
		inkTimeout: DefaultInkTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	t.fb = display.NewFramebuffer(cols*t.scale, rows*2*t.scale)
	paper.Logger().Info("term: display ready",
		"cols", cols, "rows", rows,
		"width", t.fb.Width(), "height", t.fb.Height())
	return t, nil
}

// Open creates a Terminal on the controlling terminal.
func Open(opts ...Option) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen, opts...)
}

// Size returns the framebuffer size in pixels.
func (t *Terminal) Size() geom.Point {
	return t.fb.Bounds().Size()
}

// Framebuffer returns the pixel memory.
func (t *Terminal) Framebuffer() *display.Framebuffer {
	return t.fb
}

// cells returns the cell range covering r.
func (t *Terminal) cells(r geom.Region) (x0, y0, x1, y1 int) {
	cw, ch := t.scale, 2*t.scale
	x0 = r.TopLeft.X / cw
	y0 = r.TopLeft.Y / ch
	x1 = (r.BottomRight.X + cw - 1) / cw
	y1 = (r.BottomRight.Y + ch - 1) / ch
	return
}

// level averages a scale×scale block of pixels.
func (t *Terminal) level(x, y int) uint8 {
	sum, n := 0, 0
	for dy := range t.scale {
		for dx := range t.scale {
			sum += int(t.fb.Pixel(x+dx, y+dy).Y)
			n++
		}
	}
	return uint8(sum / n)
}

func grey(v uint8, mode display.RefreshMode) tcell.Color {
	if mode == display.Quick {
		// Quick updates only drive pixels fully black or white.
		if v < 128 {
			v = 0
		} else {
			v = 255
		}
	}
	return tcell.NewRGBColor(int32(v), int32(v), int32(v))
}

// Refresh copies the framebuffer inside r to the terminal. A full
// refresh flashes the region black first, as the real panel does.
func (t *Terminal) Refresh(r geom.Region, mode display.RefreshMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return display.ErrClosed
	}
	clipped, ok := r.Intersect(t.fb.Bounds())
	if !ok {
		return nil
	}
	x0, y0, x1, y1 := t.cells(clipped)

	if mode == display.Full {
		black := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				t.screen.SetContent(x, y, ' ', nil, black)
			}
		}
		t.screen.Show()
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := x*t.scale, y*2*t.scale
			style := tcell.StyleDefault.
				Foreground(grey(t.level(px, py), mode)).
				Background(grey(t.level(px, py+t.scale), mode))
			t.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
	if mode == display.Full {
		t.screen.Sync()
	} else {
		t.screen.Show()
	}
	return nil
}

// Close restores the terminal. Close is idempotent.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	if t.farTimer != nil {
		t.farTimer.Stop()
	}
	t.screen.Fini()
	return nil
}

// pixel returns the framebuffer position at the centre of a cell.
func (t *Terminal) pixel(x, y int) gesture.Pos {
	return gesture.Pos{
		X: float32(x*t.scale) + float32(t.scale)/2,
		Y: float32(y*2*t.scale) + float32(t.scale),
	}
}

// Listen translates terminal input into pointer events until ctx is done,
// the user quits or the screen is closed. emit may be called from more
// than one goroutine but never concurrently, and never after Listen
// returns.
func (t *Terminal) Listen(ctx context.Context, emit func(gesture.Event)) error {
	var (
		emitMu   sync.Mutex
		returned bool
	)
	send := func(ev gesture.Event) {
		emitMu.Lock()
		defer emitMu.Unlock()
		if !returned {
			emit(ev)
		}
	}
	defer func() {
		t.mu.Lock()
		if t.farTimer != nil {
			t.farTimer.Stop()
			t.farTimer = nil
		}
		t.penGen++
		t.penNear = false
		t.mu.Unlock()

		emitMu.Lock()
		returned = true
		emitMu.Unlock()
	}()

	stop := context.AfterFunc(ctx, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	var prev tcell.ButtonMask
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return display.ErrClosed
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return ErrQuit
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			pos := t.pixel(x, y)
			buttons := ev.Buttons()
			t.onPen(prev&tcell.Button1 != 0, buttons&tcell.Button1 != 0, pos, ev.When(), send)
			t.onFinger(prev&tcell.Button2 != 0, buttons&tcell.Button2 != 0, pos, ev.When(), send)
			prev = buttons
		}
	}
}

func (t *Terminal) onPen(was, is bool, pos gesture.Pos, at time.Time, send func(gesture.Event)) {
	ev := gesture.Event{Tool: gesture.Pen, Pos: pos, At: at}
	switch {
	case !was && is:
		t.mu.Lock()
		if t.farTimer != nil {
			t.farTimer.Stop()
			t.farTimer = nil
		}
		near := t.penNear
		t.penNear = true
		t.penGen++
		t.mu.Unlock()
		if !near {
			ev.Phase = gesture.Near
			send(ev)
		}
		ev.Phase = gesture.Down
		send(ev)
	case was && is:
		ev.Phase = gesture.Move
		send(ev)
	case was && !is:
		ev.Phase = gesture.Up
		send(ev)
		t.mu.Lock()
		gen := t.penGen
		t.farTimer = time.AfterFunc(t.inkTimeout, func() {
			t.mu.Lock()
			if gen != t.penGen || !t.penNear || t.closed {
				t.mu.Unlock()
				return
			}
			t.penNear = false
			t.farTimer = nil
			t.mu.Unlock()
			send(gesture.Event{Tool: gesture.Pen, Phase: gesture.Far, Pos: pos, At: time.Now()})
		})
		t.mu.Unlock()
	}
}

func (t *Terminal) onFinger(was, is bool, pos gesture.Pos, at time.Time, send func(gesture.Event)) {
	ev := gesture.Event{Tool: gesture.Finger, Pos: pos, At: at}
	switch {
	case !was && is:
		ev.Phase = gesture.Down
	case was && is:
		ev.Phase = gesture.Move
	case was && !is:
		ev.Phase = gesture.Up
	default:
		return
	}
	send(ev)
}
