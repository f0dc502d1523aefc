// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paper/geom"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func pen(phase Phase, x, y float32, ms int) Event {
	return Event{Tool: Pen, Phase: phase, Pos: Pos{X: x, Y: y}, At: epoch.Add(time.Duration(ms) * time.Millisecond)}
}

func finger(phase Phase, id int, x, y float32) Event {
	return Event{Tool: Finger, Phase: phase, Finger: id, Pos: Pos{X: x, Y: y}, At: epoch}
}

func TestPenStrokeProducesSegmentsThenInk(t *testing.T) {
	s := NewState()

	_, ok := s.OnEvent(pen(Near, 0, 0, 0))
	assert.False(t, ok)
	_, ok = s.OnEvent(pen(Down, 10, 10, 0))
	assert.False(t, ok, "first point has no segment")

	g, ok := s.OnEvent(pen(Move, 20, 15, 10))
	require.True(t, ok)
	assert.Equal(t, Stroke, g.Kind)
	assert.Equal(t, geom.Pt(10, 10), g.From)
	assert.Equal(t, geom.Pt(20, 15), g.To)

	g, ok = s.OnEvent(pen(Move, 30, 15, 20))
	require.True(t, ok)
	assert.Equal(t, geom.Pt(20, 15), g.From)

	_, ok = s.OnEvent(pen(Up, 30, 15, 30))
	assert.False(t, ok)
	_, ok = s.OnEvent(pen(Move, 50, 50, 40))
	assert.False(t, ok, "hovering does not draw")

	g, ok = s.OnEvent(pen(Far, 0, 0, 50))
	require.True(t, ok)
	assert.Equal(t, Inked, g.Kind)

	k := s.TakeInk()
	assert.Equal(t, 3, k.Len())
	assert.Len(t, k.Strokes(), 1)
	assert.InDelta(t, 0.02, k.Points()[2].T, 1e-6)
	assert.Equal(t, 0, s.CurrentInk().Len())
}

func TestFarWithoutInkIsSilent(t *testing.T) {
	s := NewState()
	s.OnEvent(pen(Near, 0, 0, 0))
	_, ok := s.OnEvent(pen(Far, 0, 0, 0))
	assert.False(t, ok)
}

func TestFingerTap(t *testing.T) {
	s := NewState()
	_, ok := s.OnEvent(finger(Down, 1, 100, 100))
	assert.False(t, ok)
	g, ok := s.OnEvent(finger(Up, 1, 104, 102))
	require.True(t, ok)
	assert.Equal(t, Tap, g.Kind)
	assert.Equal(t, Pos{X: 102, Y: 101}, g.Touch.Midpoint())
	assert.True(t, g.Touch.IsTap())
}

func TestTouchIgnoredWhilePenNear(t *testing.T) {
	s := NewState()
	s.OnEvent(pen(Near, 0, 0, 0))
	s.OnEvent(finger(Down, 1, 100, 100))
	_, ok := s.OnEvent(finger(Up, 1, 100, 100))
	assert.False(t, ok)
	assert.True(t, s.PenActive())
}

func TestTapRightAfterInkIsDropped(t *testing.T) {
	s := NewState()
	s.OnEvent(pen(Near, 0, 0, 0))
	s.OnEvent(pen(Down, 10, 10, 0))
	s.OnEvent(pen(Move, 20, 10, 100))
	s.OnEvent(pen(Up, 20, 10, 100))
	s.OnEvent(pen(Far, 20, 10, 150))
	s.TakeInk()

	palm := func(ms int) (Gesture, bool) {
		at := epoch.Add(time.Duration(ms) * time.Millisecond)
		s.OnEvent(Event{Tool: Finger, Phase: Down, Pos: Pos{X: 300, Y: 300}, At: at})
		return s.OnEvent(Event{Tool: Finger, Phase: Up, Pos: Pos{X: 300, Y: 300}, At: at})
	}
	_, ok := palm(400)
	assert.False(t, ok, "within the palm guard of the last sample")
	g, ok := palm(100 + int(PalmGuard/time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, Tap, g.Kind)
}

func TestHoverFinishesInk(t *testing.T) {
	tests := []struct {
		name  string
		hover Event
		ok    bool
	}{
		{"nearby", Event{Tool: Pen, Phase: Move, Pos: Pos{X: 60, Y: 40}, Hover: 10}, false},
		{"lifted", Event{Tool: Pen, Phase: Move, Pos: Pos{X: 30, Y: 20}, Hover: 60}, true},
		{"next line", Event{Tool: Pen, Phase: Move, Pos: Pos{X: 10, Y: 120}, Hover: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.OnEvent(pen(Near, 0, 0, 0))
			s.OnEvent(pen(Down, 10, 20, 0))
			s.OnEvent(pen(Move, 30, 20, 10))
			s.OnEvent(pen(Up, 30, 20, 20))

			g, ok := s.OnEvent(tt.hover)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, Inked, g.Kind)
				assert.Equal(t, 2, s.TakeInk().Len())
			}
			assert.True(t, s.PenActive())
		})
	}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name  string
		touch Touch
		side  geom.Side
		ok    bool
	}{
		{"short", Touch{Pos{0, 0}, Pos{50, 0}}, 0, false},
		{"right", Touch{Pos{0, 0}, Pos{200, 10}}, geom.Right, true},
		{"left", Touch{Pos{300, 0}, Pos{0, 20}}, geom.Left, true},
		{"down", Touch{Pos{0, 0}, Pos{5, 200}}, geom.Bottom, true},
		{"up", Touch{Pos{0, 300}, Pos{5, 0}}, geom.Top, true},
		{"diagonal", Touch{Pos{0, 0}, Pos{200, 200}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, ok := tt.touch.Swipe()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.side, side)
			}
		})
	}
}

func TestTouchTranslate(t *testing.T) {
	touch := Touch{Start: Pos{10, 10}, End: Pos{20, 30}}.Translate(-10, -10)
	assert.Equal(t, Pos{0, 0}, touch.Start)
	assert.Equal(t, Pos{10, 20}, touch.End)
	assert.Equal(t, geom.Pt(10, 20), touch.End.Point())
}
