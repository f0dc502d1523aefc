// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
	"github.com/gogpu/paper/ui"
)

// InputArea is a ruled area that shows ink written into it.
type InputArea[M any] struct {
	size  geom.Point
	Ink   *ink.Ink
	onInk func(*ink.Ink) M
}

// NewInputArea returns an empty input area.
func NewInputArea[M any](size geom.Point) *InputArea[M] {
	return &InputArea[M]{size: size, Ink: ink.New()}
}

// OnInk makes ink written into the area produce fn's message.
func (a *InputArea[M]) OnInk(fn func(*ink.Ink) M) *InputArea[M] {
	a.onInk = fn
	return a
}

// Size returns the area size.
func (a *InputArea[M]) Size() geom.Point {
	return a.size
}

// Render draws the rule and the ink.
func (a *InputArea[M]) Render(h *ui.Handlers[M], f *ui.Frame) {
	if a.onInk != nil {
		h.OnInk(f, a.onInk)
	}
	// Ink is append-only, so its length identifies it.
	fp := ui.NewHasher("input-area").Int(a.size.X).Int(a.size.Y).Int(a.Ink.Len()).Sum()
	if c, ok := f.Canvas(fp); ok {
		Line{Y: a.size.Y * 2 / 3}.Draw(c)
		c.DrawInk(a.Ink)
	}
}
