// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "github.com/gogpu/paper/geom"

// Widget is a piece of UI producing messages of type M.
type Widget[M any] interface {
	// Size returns the widget's preferred size.
	Size() geom.Point
	// Render draws the widget into f and registers its input bindings.
	// The caller ends f.
	Render(h *Handlers[M], f *Frame)
}

// RenderPlaced renders w in f at its preferred size, using the
// placement fractions to distribute leftover space (0 is left/top,
// 1 is right/bottom). It ends f.
func RenderPlaced[M any](w Widget[M], h *Handlers[M], f *Frame, horizontal, vertical float64) {
	size := w.Size()
	f.VerticalSpace(size.Y, vertical)
	f.HorizontalSpace(size.X, horizontal)
	w.Render(h, f)
	f.End()
}

// RenderSplit cuts a slice of the widget's preferred extent from one side
// of f and renders w there.
func RenderSplit[M any](w Widget[M], h *Handlers[M], f *Frame, side geom.Side, placement float64) {
	child := f.SplitOff(side, side.Extent(w.Size()))
	RenderPlaced(w, h, child, placement, placement)
}

type mapped[A, B any] struct {
	inner Widget[A]
	fn    func(A) B
}

// Map converts the messages of w with fn.
func Map[A, B any](w Widget[A], fn func(A) B) Widget[B] {
	return mapped[A, B]{inner: w, fn: fn}
}

func (m mapped[A, B]) Size() geom.Point { return m.inner.Size() }

func (m mapped[A, B]) Render(h *Handlers[B], f *Frame) {
	inner := NewHandlers[A]()
	m.inner.Render(inner, f)
	for _, b := range inner.bindings {
		handle := b.handle
		h.bindings = append(h.bindings, binding[B]{
			region: b.region,
			handle: func(a Action) (B, bool) {
				msg, ok := handle(a)
				if !ok {
					var zero B
					return zero, false
				}
				return m.fn(msg), true
			},
		})
	}
}

type voided[A, B any] struct {
	inner Widget[A]
}

// Void renders w but discards its bindings, for display-only widgets
// embedded in a UI with a different message type.
func Void[A, B any](w Widget[A]) Widget[B] {
	return voided[A, B]{inner: w}
}

func (v voided[A, B]) Size() geom.Point { return v.inner.Size() }

func (v voided[A, B]) Render(_ *Handlers[B], f *Frame) {
	v.inner.Render(NewHandlers[A](), f)
}

// Empty is a widget of a fixed size that draws nothing.
type Empty[M any] struct {
	Width, Height int
}

// Size returns the fixed size.
func (e Empty[M]) Size() geom.Point { return geom.Pt(e.Width, e.Height) }

// Render leaves the frame blank.
func (Empty[M]) Render(*Handlers[M], *Frame) {}
