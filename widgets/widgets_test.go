// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"image/color"
	"testing"

	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/gesture"
	"github.com/gogpu/paper/ui"
)

func newTestScreen(t *testing.T, w, h int) *ui.Screen {
	t.Helper()
	return ui.NewScreen(display.NewMemory(w, h))
}

func tapAt(x, y float32) ui.Tap {
	p := gesture.Pos{X: x, Y: y}
	return ui.Tap{Touch: gesture.Touch{Start: p, End: p}}
}

// darkest returns the lowest grey level in r.
func darkest(fb *display.Framebuffer, r geom.Region) uint8 {
	level := uint8(0xff)
	for y := r.TopLeft.Y; y < r.BottomRight.Y; y++ {
		for x := r.TopLeft.X; x < r.BottomRight.X; x++ {
			level = min(level, fb.Pixel(x, y).Y)
		}
	}
	return level
}

// box is a solid widget of a fixed size.
type box struct {
	size  geom.Point
	level uint8
}

func (b box) Size() geom.Point { return b.size }

func (b box) Render(_ *ui.Handlers[string], f *ui.Frame) {
	fp := ui.NewHasher("box").Int(b.size.X).Int(b.size.Y).Int(int(b.level)).Sum()
	if c, ok := f.Canvas(fp); ok {
		c.Fill(geom.RegionOf(geom.Point{}, c.Size()), color.Gray{Y: b.level})
	}
}
