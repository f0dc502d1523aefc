// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ink stores pen input as a sequence of timestamped points grouped
// into strokes.
package ink

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/paper/geom"
)

// ErrSyntax is returned by Parse for malformed ink literals.
var ErrSyntax = errors.New("ink: invalid literal")

// Point is a single pen sample. T is seconds since the ink started.
type Point struct {
	X, Y, T float32
}

// Range is the closed interval covered by a set of samples.
// The zero-length empty range has Min > Max.
type Range struct {
	Min, Max float32
}

func emptyRange() Range {
	return Range{Min: float32(math.Inf(1)), Max: float32(math.Inf(-1))}
}

// Size returns Max - Min.
func (r Range) Size() float32 {
	return r.Max - r.Min
}

func (r *Range) add(v float32) {
	r.Min = min(r.Min, v)
	r.Max = max(r.Max, v)
}

func (r *Range) merge(o Range) {
	r.Min = min(r.Min, o.Min)
	r.Max = max(r.Max, o.Max)
}

// Ink is a multi-stroke drawing. The zero value is not ready for use;
// call New.
type Ink struct {
	XRange Range
	YRange Range
	TRange Range

	points []Point
	// strokeEnds holds, in increasing order, the index one past the last
	// point of every completed stroke.
	strokeEnds []int
}

// New returns an empty ink.
func New() *Ink {
	return &Ink{
		XRange: emptyRange(),
		YRange: emptyRange(),
		TRange: emptyRange(),
	}
}

// Clone returns a deep copy of the ink.
func (k *Ink) Clone() *Ink {
	c := *k
	c.points = append([]Point(nil), k.points...)
	c.strokeEnds = append([]int(nil), k.strokeEnds...)
	return &c
}

// Len returns the number of points.
func (k *Ink) Len() int {
	return len(k.points)
}

// Points returns the underlying samples. The slice must not be modified.
func (k *Ink) Points() []Point {
	return k.points
}

// Push appends a sample to the current stroke.
func (k *Ink) Push(x, y, t float32) {
	k.XRange.add(x)
	k.YRange.add(y)
	k.TRange.add(t)
	k.points = append(k.points, Point{X: x, Y: y, T: t})
}

// PenUp ends the current stroke. It is a no-op if nothing was pushed
// since the last PenUp.
func (k *Ink) PenUp() {
	n := len(k.points)
	if n == 0 {
		return
	}
	if len(k.strokeEnds) > 0 && k.strokeEnds[len(k.strokeEnds)-1] == n {
		return
	}
	k.strokeEnds = append(k.strokeEnds, n)
}

// IsPenUp reports whether the point at index i ends a stroke.
func (k *Ink) IsPenUp(i int) bool {
	j := sort.SearchInts(k.strokeEnds, i+1)
	return j < len(k.strokeEnds) && k.strokeEnds[j] == i+1
}

// Append adds the strokes of other after the strokes of k, shifting the
// timestamps of other so that it starts timeOffset seconds after k ends.
func (k *Ink) Append(other *Ink, timeOffset float32) {
	switch {
	case other == nil || other.Len() == 0:
		return
	case k.Len() == 0:
		*k = *other.Clone()
		return
	}

	delta := k.TRange.Max - other.TRange.Min + timeOffset
	base := len(k.points)
	for _, p := range other.points {
		p.T += delta
		k.points = append(k.points, p)
		k.TRange.add(p.T)
	}
	k.XRange.merge(other.XRange)
	k.YRange.merge(other.YRange)
	for _, e := range other.strokeEnds {
		k.strokeEnds = append(k.strokeEnds, e+base)
	}
}

// Clear removes all points and strokes.
func (k *Ink) Clear() {
	*k = Ink{
		XRange:     emptyRange(),
		YRange:     emptyRange(),
		TRange:     emptyRange(),
		points:     k.points[:0],
		strokeEnds: k.strokeEnds[:0],
	}
}

// Strokes returns the completed strokes. Points pushed after the last
// PenUp are not included.
func (k *Ink) Strokes() [][]Point {
	strokes := make([][]Point, 0, len(k.strokeEnds))
	start := 0
	for _, end := range k.strokeEnds {
		strokes = append(strokes, k.points[start:end])
		start = end
	}
	return strokes
}

// Bounds returns the smallest integer region covering every point.
// An empty ink has empty bounds at the origin.
func (k *Ink) Bounds() geom.Region {
	if k.Len() == 0 {
		return geom.Region{}
	}
	return geom.Rect(
		int(math.Floor(float64(k.XRange.Min))),
		int(math.Floor(float64(k.YRange.Min))),
		int(math.Ceil(float64(k.XRange.Max))),
		int(math.Ceil(float64(k.YRange.Max))),
	)
}

// Centroid returns the mean of all sample positions.
func (k *Ink) Centroid() (x, y float32) {
	if k.Len() == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, p := range k.points {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(k.points))
	return float32(sx / n), float32(sy / n)
}

// Translate returns a copy of the ink moved by (dx, dy).
func (k *Ink) Translate(dx, dy float32) *Ink {
	c := k.Clone()
	c.XRange.Min += dx
	c.XRange.Max += dx
	c.YRange.Min += dy
	c.YRange.Max += dy
	for i := range c.points {
		c.points[i].X += dx
		c.points[i].Y += dy
	}
	return c
}

// Length returns the total 2D path length of all completed strokes.
func (k *Ink) Length() float32 {
	var total float64
	for _, stroke := range k.Strokes() {
		for i := 1; i < len(stroke); i++ {
			total += dist(stroke[i-1], stroke[i])
		}
	}
	return float32(total)
}

// Smooth averages every interior point of a stroke with its neighbours.
func (k *Ink) Smooth() {
	if k.Len() < 3 {
		return
	}
	orig := append([]Point(nil), k.points...)
	for i := 1; i < len(orig)-1; i++ {
		if k.IsPenUp(i) || k.IsPenUp(i-1) {
			continue
		}
		k.points[i].X = (orig[i-1].X + orig[i].X + orig[i+1].X) / 3
		k.points[i].Y = (orig[i-1].Y + orig[i].Y + orig[i+1].Y) / 3
	}
}

// Normalize scales the ink so it is targetHeight tall, moves its top-left
// corner to the origin and its first timestamp to zero.
func (k *Ink) Normalize(targetHeight float32) {
	h := k.YRange.Size()
	if k.Len() == 0 || h <= 0 {
		return
	}
	scale := targetHeight / h
	x0, y0, t0 := k.XRange.Min, k.YRange.Min, k.TRange.Min
	k.XRange, k.YRange, k.TRange = emptyRange(), emptyRange(), emptyRange()
	for i, p := range k.points {
		p = Point{X: (p.X - x0) * scale, Y: (p.Y - y0) * scale, T: p.T - t0}
		k.points[i] = p
		k.XRange.add(p.X)
		k.YRange.add(p.Y)
		k.TRange.add(p.T)
	}
}

// Resample returns a copy of the ink with points spaced distance apart
// along each stroke. Stroke endpoints are always kept.
func (k *Ink) Resample(distance float32) *Ink {
	out := New()
	for _, stroke := range k.Strokes() {
		last := stroke[0]
		out.Push(last.X, last.Y, last.T)
		offset := float64(distance)
		for _, target := range stroke[1:] {
			dx, dy, dt := target.X-last.X, target.Y-last.Y, target.T-last.T
			segment := dist(last, target)
			for offset < segment {
				f := float32(offset / segment)
				out.Push(last.X+dx*f, last.Y+dy*f, last.T+dt*f)
				offset += float64(distance)
			}
			last = target
			offset -= segment
		}
		out.Push(last.X, last.Y, last.T)
		out.PenUp()
	}
	return out
}

// String formats the ink as "x y t,x y t;x y t" with ';' ending strokes.
func (k *Ink) String() string {
	var b strings.Builder
	for i, p := range k.points {
		fmt.Fprintf(&b, "%.4f %.4f %.4f", p.X, p.Y, p.T)
		if i+1 == len(k.points) {
			break
		}
		if k.IsPenUp(i) {
			b.WriteByte(';')
		} else {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// Parse reads an ink literal in the format produced by String.
// Every stroke in the literal is completed with a pen-up.
func Parse(s string) (*Ink, error) {
	k := New()
	if strings.TrimSpace(s) == "" {
		return k, nil
	}
	for _, stroke := range strings.Split(s, ";") {
		for _, point := range strings.Split(stroke, ",") {
			fields := strings.Fields(point)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: point %q", ErrSyntax, point)
			}
			var v [3]float32
			for i, f := range fields {
				n, err := strconv.ParseFloat(f, 32)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
				}
				v[i] = float32(n)
			}
			k.Push(v[0], v[1], v[2])
		}
		k.PenUp()
	}
	return k, nil
}

func dist(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}
