// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ui"
)

// Stack lays widgets out top to bottom within fixed bounds.
type Stack[M any] struct {
	bounds  geom.Point
	offset  int
	widgets []ui.Widget[M]
}

// NewStack returns an empty stack of the given size.
func NewStack[M any](bounds geom.Point) *Stack[M] {
	return &Stack[M]{bounds: bounds}
}

// Elements returns the stacked widgets.
func (s *Stack[M]) Elements() []ui.Widget[M] {
	return s.widgets
}

// Len returns the number of stacked widgets.
func (s *Stack[M]) Len() int {
	return len(s.widgets)
}

// Remaining returns the space left below the last widget.
func (s *Stack[M]) Remaining() geom.Point {
	return geom.Pt(s.bounds.X, s.bounds.Y-s.offset)
}

// Push adds w below the existing widgets.
func (s *Stack[M]) Push(w ui.Widget[M]) {
	s.widgets = append(s.widgets, w)
	s.offset += w.Size().Y
}

// Clear removes all widgets.
func (s *Stack[M]) Clear() {
	s.widgets = nil
	s.offset = 0
}

// Size returns the stack's bounds.
func (s *Stack[M]) Size() geom.Point {
	return s.bounds
}

// Render renders each widget in a strip of its height, left aligned.
func (s *Stack[M]) Render(h *ui.Handlers[M], f *ui.Frame) {
	for _, w := range s.widgets {
		ui.RenderSplit(w, h, f, geom.Top, 0)
	}
}
