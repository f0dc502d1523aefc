// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app runs the event loop of an e-paper application.
//
// An App owns a ui.Screen and a root widget. It turns pointer events
// into gestures, draws live pen strokes with quick refreshes, dispatches
// taps and completed ink to the widget's handlers, applies messages,
// re-renders and pushes the changes to the panel.
//
// All widget state is touched from the loop goroutine only; background
// work reports back through a Sender.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/gesture"
	"github.com/gogpu/paper/ui"
)

// ErrInputClosed is returned by Run when the input source stops.
var ErrInputClosed = errors.New("app: input closed")

// InputSource produces pointer events. Listen calls emit for each event
// until ctx is done or the source fails, and must not return before
// its last emit call has returned.
type InputSource interface {
	Listen(ctx context.Context, emit func(gesture.Event)) error
}

// UpdateFunc applies a message to the application state. A non-nil error
// stops the loop.
type UpdateFunc[M any] func(msg M) error

// App is the event loop. The zero value is not usable; call New.
type App[M any] struct {
	screen   *ui.Screen
	messages *queue[M]
	events   chan gesture.Event
	handlers *ui.Handlers[M]
	gestures *gesture.State
}

// New returns an App drawing to screen.
func New[M any](screen *ui.Screen) *App[M] {
	return &App[M]{
		screen:   screen,
		messages: newQueue[M](),
		events:   make(chan gesture.Event, 256),
		handlers: ui.NewHandlers[M](),
		gestures: gesture.NewState(),
	}
}

// Screen returns the screen the App draws to.
func (a *App[M]) Screen() *ui.Screen {
	return a.screen
}

// Sender returns a handle for posting messages to the App.
func (a *App[M]) Sender() Sender[M] {
	return Sender[M]{q: a.messages}
}

func (a *App[M]) render(root ui.Widget[M]) error {
	a.handlers.Reset()
	report, err := a.screen.Render(func(f *ui.Frame) {
		ui.RenderPlaced(root, a.handlers, f, 0.5, 0.5)
	})
	if err != nil {
		return err
	}
	paper.Logger().Debug("app: rendered",
		"passes", report.Passes,
		"draws", report.Draws,
		"bindings", a.handlers.Len())
	return nil
}

// Run clears the screen, renders root and processes input until ctx is
// done, the input source stops, or update, rendering or the display
// fails. Messages posted through a Sender are applied only while no ink
// is in progress, so the screen does not change under the pen.
func (a *App[M]) Run(ctx context.Context, src InputSource, root ui.Widget[M], update UpdateFunc[M]) error {
	defer a.messages.close()

	if err := a.screen.Clear(); err != nil {
		return err
	}
	if err := a.render(root); err != nil {
		return err
	}
	if err := a.screen.RefreshChanges(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	listenDone := make(chan error, 1)
	go func() {
		listenDone <- src.Listen(ctx, func(ev gesture.Event) {
			select {
			case a.events <- ev:
			case <-ctx.Done():
			}
		})
	}()
	paper.Logger().Info("app: running")

	for {
		var (
			changed bool
			err     error
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case lerr := <-listenDone:
			if err := a.flush(root, update); err != nil {
				return err
			}
			if lerr == nil {
				return ErrInputClosed
			}
			return fmt.Errorf("%w: %w", ErrInputClosed, lerr)
		case ev := <-a.events:
			changed, err = a.handle(ev, root, update)
		case <-a.messages.wake:
		}
		if err != nil {
			return err
		}

		applied, err := a.applyMessages(update)
		if err != nil {
			return err
		}
		if changed || applied {
			if err := a.render(root); err != nil {
				return err
			}
		}
		if err := a.screen.RefreshChanges(); err != nil {
			return err
		}
	}
}

// applyMessages applies the queued messages unless ink is in progress.
func (a *App[M]) applyMessages(update UpdateFunc[M]) (bool, error) {
	if a.gestures.CurrentInk().Len() > 0 {
		return false, nil
	}
	msgs := a.messages.drain()
	for _, msg := range msgs {
		if err := update(msg); err != nil {
			return false, err
		}
	}
	return len(msgs) > 0, nil
}

// handle feeds one pointer event through gesture recognition and
// dispatches the resulting action. It reports whether state changed.
func (a *App[M]) handle(ev gesture.Event, root ui.Widget[M], update UpdateFunc[M]) (bool, error) {
	g, ok := a.gestures.OnEvent(ev)
	if !ok {
		return false, nil
	}

	var action ui.Action
	switch g.Kind {
	case gesture.Stroke:
		return false, a.screen.Stroke(g.From, g.To)
	case gesture.Inked:
		k := a.gestures.TakeInk()
		// Live strokes were drawn outside the content tree.
		if r, ok := a.screen.InkExtent(k); ok {
			a.screen.Invalidate(r)
		}
		action = ui.Inked{Ink: k}
	case gesture.Tap:
		action = ui.Tap{Touch: g.Touch}
	default:
		return false, nil
	}

	msg, ok := a.handlers.Query(action)
	if !ok {
		paper.Logger().Debug("app: unhandled action", "center", action.Center().String())
		// Invalidated ink still needs its strokes erased.
		return g.Kind == gesture.Inked, nil
	}
	if err := update(msg); err != nil {
		return false, err
	}
	return true, nil
}

// flush handles the events still queued after the input source stopped.
func (a *App[M]) flush(root ui.Widget[M], update UpdateFunc[M]) error {
	changed := false
	for len(a.events) > 0 {
		c, err := a.handle(<-a.events, root, update)
		if err != nil {
			return err
		}
		changed = changed || c
	}
	if changed {
		if err := a.render(root); err != nil {
			return err
		}
	}
	return a.screen.RefreshChanges()
}
