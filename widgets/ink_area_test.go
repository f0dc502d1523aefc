// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paper/app"
	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/gesture"
	"github.com/gogpu/paper/ink"
	"github.com/gogpu/paper/ui"
)

func stroke(x0, y0, x1, y1 float32) *ink.Ink {
	k := ink.New()
	k.Push(x0, y0, 0)
	k.Push(x1, y1, 0.1)
	k.PenUp()
	return k
}

func TestInkAreaAnnotatesChild(t *testing.T) {
	area := NewInkArea[string](box{size: geom.Pt(100, 100), level: 0xc0}, func(*ink.Ink) string { return "ink" })
	assert.Equal(t, geom.Pt(100, 100), area.Size())

	screen := newTestScreen(t, 100, 100)
	h := ui.NewHandlers[string]()
	render := func() ui.Report {
		h.Reset()
		report, err := screen.Render(func(f *ui.Frame) { area.Render(h, f) })
		require.NoError(t, err)
		return report
	}
	render()
	assert.Equal(t, uint8(0xc0), screen.Framebuffer().Pixel(50, 50).Y)

	area.Append(stroke(10, 50, 90, 50))
	area.Append(stroke(50, 10, 50, 90))
	assert.Len(t, area.Ink().Strokes(), 2)
	render()
	fb := screen.Framebuffer()
	assert.Equal(t, display.Black, fb.Pixel(30, 50))
	assert.Equal(t, display.Black, fb.Pixel(50, 30))
	assert.Equal(t, uint8(0xc0), fb.Pixel(20, 20).Y)

	msg, ok := h.Query(ui.Inked{Ink: stroke(0, 0, 5, 5)})
	require.True(t, ok)
	assert.Equal(t, "ink", msg)

	area.Clear()
	report := render()
	assert.NotEmpty(t, report.Invalidated)
	assert.Equal(t, uint8(0xc0), screen.Framebuffer().Pixel(30, 50).Y)
}

func TestInkAreaSecondAppendConverges(t *testing.T) {
	area := NewInkArea[string](box{size: geom.Pt(100, 100), level: 0xc0}, func(*ink.Ink) string { return "ink" })
	screen := newTestScreen(t, 100, 100)
	h := ui.NewHandlers[string]()
	render := func() ui.Report {
		h.Reset()
		report, err := screen.Render(func(f *ui.Frame) { area.Render(h, f) })
		require.NoError(t, err)
		return report
	}
	render()

	area.Append(stroke(10, 50, 90, 50))
	render()

	// The live stroke is erased before the ink is handed over.
	second := stroke(50, 10, 50, 90)
	r, ok := screen.InkExtent(second)
	require.True(t, ok)
	screen.Invalidate(r)
	area.Append(second)

	report := render()
	assert.Equal(t, ui.DefaultFixupLimit, report.Passes)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 1, report.Redrawn)
	fb := screen.Framebuffer()
	assert.Equal(t, display.Black, fb.Pixel(30, 50))
	assert.Equal(t, display.Black, fb.Pixel(50, 30))
}

// idle is an input source that waits for cancellation.
type idle struct{}

func (idle) Listen(ctx context.Context, _ func(gesture.Event)) error {
	<-ctx.Done()
	return ctx.Err()
}

var errDone = errors.New("done")

func TestInkAreaRecognizesInBackground(t *testing.T) {
	screen := newTestScreen(t, 100, 100)
	a := app.New[string](screen)
	area := NewInkArea[string](box{size: geom.Pt(100, 100)}, func(*ink.Ink) string { return "ink" })
	defer area.Close()

	r := RecognizerFunc(func(_ context.Context, k *ink.Ink) ([]Candidate, error) {
		return []Candidate{{Text: "stroke", Score: float64(len(k.Strokes()))}}, nil
	})
	var got []Candidate
	area.Recognize(context.Background(), a.Sender(), r, func(c []Candidate, err error) string {
		assert.NoError(t, err)
		got = c
		return "result"
	})
	area.Append(stroke(10, 10, 90, 90))

	err := a.Run(context.Background(), idle{}, area, func(msg string) error {
		if msg == "result" {
			return errDone
		}
		return nil
	})
	require.ErrorIs(t, err, errDone)
	require.Len(t, got, 1)
	assert.Equal(t, "stroke", got[0].Text)
	assert.Equal(t, 1.0, got[0].Score)
}
