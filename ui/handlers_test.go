// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/gesture"
	"github.com/gogpu/paper/ink"
)

func tapAt(x, y float32) Tap {
	return Tap{Touch: gesture.Touch{Start: gesture.Pos{X: x, Y: y}, End: gesture.Pos{X: x, Y: y}}}
}

func inkAt(x, y float32) Inked {
	k := ink.New()
	k.Push(x-2, y-2, 0)
	k.Push(x+2, y+2, 0.05)
	k.PenUp()
	return Inked{Ink: k}
}

// render binds "outer" taps to the whole screen, then an ink area and a
// button in the top half.
func renderNested(t *testing.T) *Handlers[string] {
	t.Helper()
	s, _ := newTestScreen(t, 200, 200)
	h := NewHandlers[string]()
	_, err := s.Render(func(f *Frame) {
		h.Reset()
		h.OnTap(f, "outer")
		f.Split(geom.Top, 100, func(top *Frame) {
			h.OnInk(top, func(k *ink.Ink) string {
				return k.Bounds().String()
			})
			top.Split(geom.Left, 50, func(button *Frame) {
				h.OnTap(button, "button")
			})
		})
	})
	require.NoError(t, err)
	return h
}

func TestInnermostAcceptingBindingWins(t *testing.T) {
	h := renderNested(t)
	require.Equal(t, 3, h.Len())

	msg, ok := h.Query(tapAt(10, 10))
	require.True(t, ok)
	assert.Equal(t, "button", msg)

	msg, ok = h.Query(tapAt(150, 50))
	require.True(t, ok)
	assert.Equal(t, "outer", msg, "the ink area declines taps")

	msg, ok = h.Query(tapAt(150, 150))
	require.True(t, ok)
	assert.Equal(t, "outer", msg)
}

func TestInkIsTranslatedToBindingArea(t *testing.T) {
	h := renderNested(t)
	msg, ok := h.Query(inkAt(150, 50))
	require.True(t, ok)
	assert.Equal(t, "[148,48]-[152,52]", msg)

	_, ok = h.Query(inkAt(150, 150))
	assert.False(t, ok, "nothing takes ink in the bottom half")
}

func TestSwipesAreNotTaps(t *testing.T) {
	h := renderNested(t)
	swipe := Tap{Touch: gesture.Touch{Start: gesture.Pos{X: 10, Y: 10}, End: gesture.Pos{X: 10, Y: 190}}}
	_, ok := h.Query(swipe)
	assert.False(t, ok)
}

func TestWakeNeverMatches(t *testing.T) {
	h := renderNested(t)
	_, ok := h.Query(Wake{})
	assert.False(t, ok)
}

func TestOnTapInIsRelative(t *testing.T) {
	s, _ := newTestScreen(t, 200, 200)
	h := NewHandlers[int]()
	_, err := s.Render(func(f *Frame) {
		f.Split(geom.Top, 100, func(*Frame) {})
		h.OnTapIn(f, geom.Rect(0, 0, 20, 20), 7)
		h.OnTapIn(f, geom.Rect(-40, -40, -20, -20), 8)
	})
	require.NoError(t, err)
	require.Equal(t, 1, h.Len(), "bindings outside the frame are dropped")

	msg, ok := h.Query(tapAt(5, 105))
	require.True(t, ok)
	assert.Equal(t, 7, msg)
	_, ok = h.Query(tapAt(5, 5))
	assert.False(t, ok)
}

func TestActionCenters(t *testing.T) {
	assert.Equal(t, geom.Pt(150, 50), inkAt(150, 50).Center())
	tap := Tap{Touch: gesture.Touch{Start: gesture.Pos{X: 0, Y: 0}, End: gesture.Pos{X: 10, Y: 20}}}
	assert.Equal(t, geom.Pt(5, 10), tap.Center())
	assert.Equal(t, geom.Pt(0, 0), tap.Translate(geom.Pt(-5, -10)).Center())
}

func TestInkIsRoutedByCentroid(t *testing.T) {
	s, _ := newTestScreen(t, 200, 200)
	h := NewHandlers[string]()
	_, err := s.Render(func(f *Frame) {
		f.Split(geom.Top, 20, func(top *Frame) {
			h.OnInk(top, func(*ink.Ink) string { return "top" })
		})
		h.OnInk(f, func(*ink.Ink) string { return "rest" })
	})
	require.NoError(t, err)

	// Most samples run along the top edge; one stray sample pulls the
	// bounding box centre down to (50, 50).
	k := ink.New()
	for i := range 20 {
		k.Push(float32(i), 0, float32(i)*0.01)
	}
	k.Push(100, 100, 0.2)
	k.PenUp()
	action := Inked{Ink: k}
	assert.Equal(t, geom.Pt(13, 4), action.Center())

	msg, ok := h.Query(action)
	require.True(t, ok)
	assert.Equal(t, "top", msg)
}
