// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"fmt"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
)

type frameState uint8

const (
	frameLive frameState = iota
	// frameConsumed frames have drawn their content and may not cut or
	// draw again, but still own their area until ended.
	frameConsumed
	frameEnded
)

// Frame is a render cursor over a rectangular region of the screen.
//
// A frame walks its node of the content tree: every SplitOff carves a
// child frame from one side of the remaining area, and Canvas or Draw
// fill whatever is left. On each pass the frame compares what is drawn
// now with what was drawn last time and only touches pixels that
// changed.
//
// Only one frame in a chain may be used at a time. Calling any method on
// a frame ends its live child, and using an ended frame panics. End must
// be called once a frame is done; it blanks anything the frame left
// undrawn and forgets stale children. Frames are owned by a single
// Screen.Render pass and must not be retained across passes.
type Frame struct {
	screen  *Screen
	bounds  geom.Region
	node    *node
	index   int
	content Fingerprint
	child   *Frame
	state   frameState
}

func (f *Frame) check(op string) {
	switch f.state {
	case frameEnded:
		panic(fmt.Sprintf("ui: Frame.%s called on an ended frame", op))
	case frameConsumed:
		panic(fmt.Sprintf("ui: Frame.%s called after the frame was drawn", op))
	}
	f.endChild()
}

func (f *Frame) endChild() {
	if f.child != nil {
		f.child.End()
		f.child = nil
	}
}

// Bounds returns the absolute region the frame still owns.
func (f *Frame) Bounds() geom.Region {
	return f.bounds
}

// Size returns the size of the region the frame still owns.
func (f *Frame) Size() geom.Point {
	return f.bounds.Size()
}

// SplitOff carves a child frame of the given thickness from one side of
// the frame. The offset is clamped to the frame's size; a negative
// offset panics.
//
// If this cut differs from the one made at the same position on the
// previous pass, all later children of the node are discarded and the
// area they covered is blanked.
func (f *Frame) SplitOff(side geom.Side, offset int) *Frame {
	f.check("SplitOff")
	if offset < 0 {
		panic(fmt.Sprintf("ui: negative split offset %d", offset))
	}
	offset = min(offset, side.Extent(f.bounds.Size()))

	var value int
	switch side {
	case geom.Left:
		value = f.bounds.TopLeft.X + offset
	case geom.Right:
		value = f.bounds.BottomRight.X - offset
	case geom.Top:
		value = f.bounds.TopLeft.Y + offset
	default:
		value = f.bounds.BottomRight.Y - offset
	}

	n := f.node
	if f.index >= len(n.children) || n.children[f.index].side != side || n.children[f.index].value != value {
		f.truncate()
		n.children = append(n.children, cut{side: side, value: value, node: newNode()})
	}
	c := n.children[f.index]
	f.index++

	split, _ := f.bounds.Split(side, value)
	rest, _ := f.bounds.Split(side.Opposite(), value)
	f.bounds = rest

	child := &Frame{
		screen:  f.screen,
		bounds:  split,
		node:    c.node,
		content: NoContent,
	}
	f.child = child
	return child
}

// Split carves a child frame as SplitOff does, passes it to fn and ends
// it when fn returns.
func (f *Frame) Split(side geom.Side, offset int, fn func(*Frame)) {
	child := f.SplitOff(side, offset)
	defer child.End()
	fn(child)
}

// HorizontalSpace leaves width pixels of the frame's width in use and
// blanks the rest, distributing the extra space on the left and right
// according to placement: 0 pushes content left, 1 pushes it right.
func (f *Frame) HorizontalSpace(width int, placement float64) {
	f.space(geom.Left, geom.Right, f.Size().X-width, placement)
}

// VerticalSpace is HorizontalSpace for the vertical axis: 0 pushes
// content to the top, 1 to the bottom.
func (f *Frame) VerticalSpace(height int, placement float64) {
	f.space(geom.Top, geom.Bottom, f.Size().Y-height, placement)
}

func (f *Frame) space(near, far geom.Side, extra int, placement float64) {
	if extra <= 0 {
		return
	}
	placement = min(max(placement, 0), 1)
	before := int(float64(extra) * placement)
	f.SplitOff(near, before).End()
	f.SplitOff(far, extra-before).End()
}

// Canvas claims the rest of the frame for content with the given
// fingerprint. If the same content is already on screen it returns
// false and nothing needs to be drawn. Otherwise the area is blanked,
// remembered as holding fp, and a canvas to draw on is returned.
//
// Canvas consumes the frame: after it, only Annotate, Bounds, Size and
// End may be called.
func (f *Frame) Canvas(fp Fingerprint) (*Canvas, bool) {
	f.check("Canvas")
	f.state = frameConsumed
	f.content = fp

	n := f.node
	if fp == n.content && fp != InvalidContent && f.index == len(n.children) {
		return nil, false
	}
	n.children = n.children[:f.index]
	n.content = fp
	n.seq = f.screen.nextSeq()
	f.screen.fb.Fill(f.bounds, display.White)
	f.screen.markDirty(f.bounds)
	f.screen.draws++
	return &Canvas{fb: f.screen.fb, bounds: f.bounds, strokeWidth: f.screen.opts.strokeWidth}, true
}

// Fragment is a piece of drawable content that knows its own
// fingerprint.
type Fragment interface {
	Fingerprint() Fingerprint
	Draw(c *Canvas)
}

// Draw draws the fragment into the rest of the frame unless the same
// content is already there. It consumes the frame.
func (f *Frame) Draw(frag Fragment) {
	if c, ok := f.Canvas(frag.Fingerprint()); ok {
		frag.Draw(c)
	}
}

// LeaveRestBlank blanks the rest of the frame and consumes it.
func (f *Frame) LeaveRestBlank() {
	f.Canvas(NoContent)
}

// Annotate registers ink to be drawn over whatever content the frame
// covers. ink is in frame-local coordinates. Annotations are kept across
// passes while they are re-registered; once a pass omits one, the
// content under it is redrawn.
func (f *Frame) Annotate(k *ink.Ink) {
	if f.state == frameEnded {
		panic("ui: Frame.Annotate called on an ended frame")
	}
	f.endChild()
	if k.Len() == 0 {
		return
	}
	abs := k.Translate(float32(f.bounds.TopLeft.X), float32(f.bounds.TopLeft.Y))
	extent, ok := inkExtent(abs, f.screen.opts.strokeWidth)
	if !ok {
		return
	}
	region, ok := extent.Intersect(f.bounds)
	if !ok {
		return
	}
	f.screen.annotations.push(f.screen, region, abs)
}

// End finishes the frame. Any area left without content is blanked, and
// children beyond the last one used on this pass are forgotten. End is
// idempotent.
func (f *Frame) End() {
	if f.state == frameEnded {
		return
	}
	f.endChild()
	f.truncate()
	f.state = frameEnded
}

// truncate discards the node's children from the current position on and
// blanks the rest of the frame, unless the node already matches.
func (f *Frame) truncate() {
	n := f.node
	if f.index == len(n.children) && f.content == n.content {
		return
	}
	paper.Logger().Debug("ui: truncating",
		"bounds", f.bounds.String(),
		"dropped", len(n.children)-f.index)
	n.children = n.children[:f.index]
	n.content = NoContent
	f.content = NoContent
	n.seq = f.screen.nextSeq()
	f.screen.fb.Fill(f.bounds, display.White)
	f.screen.markDirty(f.bounds)
}
