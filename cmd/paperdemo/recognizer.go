package main

import (
	"context"
	"math"

	"github.com/gogpu/paper/dollar"
	"github.com/gogpu/paper/ink"
	"github.com/gogpu/paper/widgets"
)

// shapeRecognizer ranks ink against a few built-in shapes.
type shapeRecognizer struct {
	templates dollar.Templates
}

func newShapeRecognizer() *shapeRecognizer {
	r := &shapeRecognizer{}
	r.templates.Add("line", polyline([][2]float32{{0, 50}, {100, 50}}))
	r.templates.Add("caret", polyline([][2]float32{{0, 100}, {50, 0}, {100, 100}}))
	r.templates.Add("check", polyline([][2]float32{{0, 60}, {30, 100}, {100, 0}}))
	r.templates.Add("zigzag", polyline([][2]float32{{0, 0}, {30, 100}, {60, 0}, {90, 100}}))
	r.templates.Add("square", polyline([][2]float32{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}))
	r.templates.Add("circle", circle(50, 50, 50))
	x := polyline([][2]float32{{0, 0}, {100, 100}})
	x.Append(polyline([][2]float32{{100, 0}, {0, 100}}), 0.5)
	r.templates.Add("x", x)
	return r
}

// Recognize implements widgets.Recognizer. Scores lie in (0, 1].
func (r *shapeRecognizer) Recognize(ctx context.Context, k *ink.Ink) ([]widgets.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k.Len() == 0 {
		return nil, nil
	}
	ranked := r.templates.Rank(k)
	out := make([]widgets.Candidate, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, widgets.Candidate{Text: s.Name, Score: 1 / (1 + s.Distance)})
	}
	return out, nil
}

func polyline(points [][2]float32) *ink.Ink {
	k := ink.New()
	for i, p := range points {
		k.Push(p[0], p[1], float32(i)*0.1)
	}
	k.PenUp()
	return k
}

func circle(cx, cy, r float32) *ink.Ink {
	k := ink.New()
	for i := range 33 {
		a := 2 * math.Pi * float64(i) / 32
		k.Push(cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)), float32(i)*0.02)
	}
	k.PenUp()
	return k
}
