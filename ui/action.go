// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/gesture"
	"github.com/gogpu/paper/ink"
)

// Action is a user input routed to the widgets: Tap, Inked or Wake.
type Action interface {
	// Center returns the point used for hit testing.
	Center() geom.Point
	// Translate returns the action moved by v.
	Translate(v geom.Point) Action

	action()
}

// Tap is a finger touch. Swipes arrive as taps too; handlers decide.
type Tap struct {
	Touch gesture.Touch
}

// Center returns the touch midpoint.
func (t Tap) Center() geom.Point { return t.Touch.Midpoint().Point() }

// Translate returns the tap moved by v.
func (t Tap) Translate(v geom.Point) Action {
	return Tap{Touch: t.Touch.Translate(float32(v.X), float32(v.Y))}
}

func (Tap) action() {}

// Inked carries completed pen input.
type Inked struct {
	Ink *ink.Ink
}

// Center returns the ink's centroid, rounded down.
func (i Inked) Center() geom.Point {
	x, y := i.Ink.Centroid()
	return gesture.Pos{X: x, Y: y}.Point()
}

// Translate returns a copy of the ink moved by v.
func (i Inked) Translate(v geom.Point) Action {
	return Inked{Ink: i.Ink.Translate(float32(v.X), float32(v.Y))}
}

func (Inked) action() {}

// Wake is delivered when something outside the input stream asks the
// application to re-render. It has no position and never matches a
// handler.
type Wake struct{}

// Center returns the origin.
func (Wake) Center() geom.Point { return geom.Point{} }

// Translate returns the wake unchanged.
func (w Wake) Translate(geom.Point) Action { return w }

func (Wake) action() {}
