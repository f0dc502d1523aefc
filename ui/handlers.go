// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
)

type binding[M any] struct {
	region geom.Region
	handle func(Action) (M, bool)
}

// Handlers collects the input bindings registered while rendering. A
// fresh set is built on every render, so bindings always match what is
// on screen.
//
// Bindings registered later are tried first. A container that binds its
// area before rendering its children gives them the first chance at the
// input; whatever they decline bubbles out to the container.
type Handlers[M any] struct {
	bindings []binding[M]
}

// NewHandlers returns an empty set of bindings.
func NewHandlers[M any]() *Handlers[M] {
	return &Handlers[M]{}
}

// Len returns the number of bindings.
func (h *Handlers[M]) Len() int {
	return len(h.bindings)
}

// Reset removes all bindings.
func (h *Handlers[M]) Reset() {
	clear(h.bindings)
	h.bindings = h.bindings[:0]
}

// OnAction binds fn to the frame's current area. fn receives actions in
// coordinates relative to that area and reports whether it accepted.
func (h *Handlers[M]) OnAction(f *Frame, fn func(Action) (M, bool)) {
	h.bindings = append(h.bindings, binding[M]{region: f.Bounds(), handle: fn})
}

// OnTap binds taps anywhere in the frame's area to msg.
func (h *Handlers[M]) OnTap(f *Frame, msg M) {
	h.OnAction(f, tapHandler(msg))
}

// OnTapIn binds taps in r, relative to the frame's area, to msg.
func (h *Handlers[M]) OnTapIn(f *Frame, r geom.Region, msg M) {
	abs, ok := r.Translate(f.Bounds().TopLeft).Intersect(f.Bounds())
	if !ok {
		return
	}
	h.bindings = append(h.bindings, binding[M]{region: abs, handle: tapHandler(msg)})
}

// OnInk binds completed ink landing in the frame's area to fn. The ink
// is relative to that area.
func (h *Handlers[M]) OnInk(f *Frame, fn func(*ink.Ink) M) {
	h.OnAction(f, func(a Action) (M, bool) {
		if i, ok := a.(Inked); ok {
			return fn(i.Ink), true
		}
		var zero M
		return zero, false
	})
}

func tapHandler[M any](msg M) func(Action) (M, bool) {
	return func(a Action) (M, bool) {
		if t, ok := a.(Tap); ok && t.Touch.IsTap() {
			return msg, true
		}
		var zero M
		return zero, false
	}
}

// Query dispatches an action. Bindings whose area contains the action's
// centre are tried from the most recently registered to the first; the
// first to accept wins.
func (h *Handlers[M]) Query(a Action) (M, bool) {
	var zero M
	if _, ok := a.(Wake); ok {
		return zero, false
	}
	center := a.Center()
	for i := len(h.bindings) - 1; i >= 0; i-- {
		b := h.bindings[i]
		if !b.region.Contains(center) {
			continue
		}
		if msg, ok := b.handle(a.Translate(b.region.TopLeft.Neg())); ok {
			return msg, true
		}
	}
	return zero, false
}
