// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"context"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/app"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
	"github.com/gogpu/paper/ui"
)

// Candidate is one recognition result.
type Candidate struct {
	Text  string
	Score float64
}

// Recognizer turns ink into ranked candidates. Recognize runs on a
// background goroutine and should return promptly once ctx is done.
type Recognizer interface {
	Recognize(ctx context.Context, k *ink.Ink) ([]Candidate, error)
}

// RecognizerFunc adapts a function to Recognizer.
type RecognizerFunc func(ctx context.Context, k *ink.Ink) ([]Candidate, error)

// Recognize calls fn.
func (fn RecognizerFunc) Recognize(ctx context.Context, k *ink.Ink) ([]Candidate, error) {
	return fn(ctx, k)
}

// strokeGap is the time inserted between ink batches appended to an
// InkArea, in seconds.
const strokeGap = 0.5

// InkArea collects ink written anywhere over a child widget and draws it
// as an annotation on top of the child. Attached to a recognizer, it
// re-recognizes the whole ink in the background after every addition.
type InkArea[M any] struct {
	child  ui.Widget[M]
	ink    *ink.Ink
	onInk  func(*ink.Ink) M
	worker *app.Worker[*ink.Ink, M]
}

// NewInkArea wraps child. Completed ink over it produces onInk's
// message; the update function typically passes the ink to Append.
func NewInkArea[M any](child ui.Widget[M], onInk func(*ink.Ink) M) *InkArea[M] {
	return &InkArea[M]{child: child, ink: ink.New(), onInk: onInk}
}

// Recognize attaches a recognizer. Results come back through sender as
// onResult's message. Close stops recognition.
func (a *InkArea[M]) Recognize(ctx context.Context, sender app.Sender[M], r Recognizer, onResult func([]Candidate, error) M) {
	if a.worker != nil {
		a.worker.Close()
	}
	a.worker = app.NewWorker(ctx, sender, func(ctx context.Context, k *ink.Ink) M {
		candidates, err := r.Recognize(ctx, k)
		if err != nil {
			paper.Logger().Warn("widgets: recognition failed", "err", err)
		}
		return onResult(candidates, err)
	})
}

// Ink returns the collected ink in the area's coordinates.
func (a *InkArea[M]) Ink() *ink.Ink {
	return a.ink
}

// Append adds k to the collected ink and starts recognition.
func (a *InkArea[M]) Append(k *ink.Ink) {
	a.ink.Append(k, strokeGap)
	if a.worker != nil {
		a.worker.Submit(a.ink.Clone())
	}
}

// Clear removes the collected ink.
func (a *InkArea[M]) Clear() {
	a.ink = ink.New()
}

// Close stops background recognition.
func (a *InkArea[M]) Close() {
	if a.worker != nil {
		a.worker.Close()
		a.worker = nil
	}
}

// Size returns the child's size.
func (a *InkArea[M]) Size() geom.Point {
	return a.child.Size()
}

// Render draws the child with the ink over it.
func (a *InkArea[M]) Render(h *ui.Handlers[M], f *ui.Frame) {
	h.OnInk(f, a.onInk)
	f.Annotate(a.ink)
	a.child.Render(h, f)
}
