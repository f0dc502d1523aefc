// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dollar matches ink against templates with the $P point-cloud
// recognizer: both are resampled to a fixed number of points, scaled to
// a unit box and centred, and compared by greedy point matching, so
// stroke order and direction do not matter.
package dollar

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/gogpu/paper/ink"
)

// N is the number of points in a cloud.
const N = 32

// ErrNoTemplates is returned by Match when nothing can be matched.
var ErrNoTemplates = errors.New("dollar: no templates")

// Point is a normalized sample.
type Point struct{ X, Y float64 }

// Cloud is normalized ink.
type Cloud [N]Point

// Normalize resamples, scales and centres k. Empty ink yields a cloud of
// points at the origin.
func Normalize(k *ink.Ink) Cloud {
	c := resample(k)
	c.scale()
	c.centre()
	return c
}

func resample(k *ink.Ink) Cloud {
	var c Cloud
	strokes := k.Strokes()
	if len(strokes) == 0 {
		return c
	}
	total := float64(k.Length())
	if total == 0 {
		p := strokes[0][0]
		for i := range c {
			c[i] = Point{float64(p.X), float64(p.Y)}
		}
		return c
	}

	stride := total / (N - 1)
	epsilon := stride / 100
	n, residual := 0, 0.0
	for _, stroke := range strokes {
		for i := 1; i < len(stroke); i++ {
			a := Point{float64(stroke[i-1].X), float64(stroke[i-1].Y)}
			b := Point{float64(stroke[i].X), float64(stroke[i].Y)}
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d > 0 {
				ux, uy := (b.X-a.X)/d, (b.Y-a.Y)/d
				for residual < d+epsilon && n < N {
					c[n] = Point{a.X + residual*ux, a.Y + residual*uy}
					n++
					residual += stride
				}
			}
			residual -= d
		}
	}
	// Rounding can leave the last slot unfilled.
	last := strokes[len(strokes)-1]
	end := Point{float64(last[len(last)-1].X), float64(last[len(last)-1].Y)}
	for ; n < N; n++ {
		c[n] = end
	}
	return c
}

func (c *Cloud) scale() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range c {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	s := math.Max(maxX-minX, maxY-minY)
	if s <= 0 {
		return
	}
	for i := range c {
		c[i] = Point{(c[i].X - minX) / s, (c[i].Y - minY) / s}
	}
}

func (c *Cloud) centre() {
	var cx, cy float64
	for _, p := range c {
		cx += p.X
		cy += p.Y
	}
	cx, cy = cx/N, cy/N
	for i := range c {
		c[i] = Point{c[i].X - cx, c[i].Y - cy}
	}
}

// distance matches every point of c, starting at start, with its nearest
// unmatched point of t, weighting early matches more.
func (c *Cloud) distance(t *Cloud, start int) float64 {
	var matched [N]bool
	sum := 0.0
	for k := range N {
		i := (k + start) % N
		best, index := math.Inf(1), 0
		for j := range N {
			if matched[j] {
				continue
			}
			if d := math.Hypot(c[i].X-t[j].X, c[i].Y-t[j].Y); d < best {
				best, index = d, j
			}
		}
		matched[index] = true
		sum += (1 - float64(k)/N) * best
	}
	return sum
}

// Distance returns the greedy cloud match distance between c and t.
// Lower is closer.
func (c *Cloud) Distance(t *Cloud) float64 {
	step := int(math.Sqrt(N))
	best := math.Inf(1)
	for start := 0; start < N; start += step {
		best = math.Min(best, math.Min(c.distance(t, start), t.distance(c, start)))
	}
	return best
}

// Template is a named reference cloud.
type Template struct {
	Name  string
	Cloud Cloud
}

// Templates is a set of reference gestures.
type Templates struct {
	list []Template
}

// Add normalizes k and stores it under name.
func (ts *Templates) Add(name string, k *ink.Ink) {
	ts.list = append(ts.list, Template{Name: name, Cloud: Normalize(k)})
}

// Len returns the number of templates.
func (ts *Templates) Len() int {
	return len(ts.list)
}

// Match returns the template closest to k and its distance.
func (ts *Templates) Match(k *ink.Ink) (Template, float64, error) {
	if len(ts.list) == 0 {
		return Template{}, 0, ErrNoTemplates
	}
	c := Normalize(k)
	best, score := 0, math.Inf(1)
	for i := range ts.list {
		if d := c.Distance(&ts.list[i].Cloud); d < score {
			best, score = i, d
		}
	}
	return ts.list[best], score, nil
}

// Rank returns every template ordered by distance to k, closest first.
func (ts *Templates) Rank(k *ink.Ink) []Scored {
	c := Normalize(k)
	out := make([]Scored, 0, len(ts.list))
	for i := range ts.list {
		out = append(out, Scored{Name: ts.list[i].Name, Distance: c.Distance(&ts.list[i].Cloud)})
	}
	slices.SortStableFunc(out, func(a, b Scored) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return out
}

// Scored is a template name with its distance.
type Scored struct {
	Name     string
	Distance float64
}
