// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gesture turns raw pointer events from a pen digitizer and a
// touch panel into high-level gestures: live stroke segments, completed
// ink and taps.
package gesture

import (
	"math"
	"time"

	"github.com/gogpu/paper"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
)

// Tool identifies the input device behind an event.
type Tool uint8

const (
	// Pen is the stylus tip.
	Pen Tool = iota
	// Rubber is the stylus eraser end.
	Rubber
	// Finger is a contact on the touch panel.
	Finger
)

func (t Tool) String() string {
	switch t {
	case Pen:
		return "pen"
	case Rubber:
		return "rubber"
	case Finger:
		return "finger"
	default:
		return "tool(?)"
	}
}

// Phase is the kind of change an Event reports.
type Phase uint8

const (
	// Near reports a stylus entering hover range.
	Near Phase = iota
	// Far reports a stylus leaving hover range.
	Far
	// Down reports the stylus tip or a finger touching the surface.
	Down
	// Move reports a position change while touching.
	Move
	// Up reports the stylus tip or a finger lifting.
	Up
)

// Event is a raw pointer event.
type Event struct {
	Tool  Tool
	Phase Phase
	// Finger distinguishes simultaneous touch contacts.
	Finger int
	Pos    Pos
	// Hover is the stylus height above the surface on a Move while not
	// touching, in digitizer units. Zero when the source does not know.
	Hover int
	At    time.Time
}

// Kind is the kind of a recognized Gesture.
type Kind uint8

const (
	// Stroke is one live segment of a pen stroke, for immediate drawing.
	Stroke Kind = iota
	// Inked reports that the stylus left the surface area; the
	// accumulated ink is ready to take.
	Inked
	// Tap is a completed finger touch.
	Tap
)

// Gesture is a recognized input gesture.
type Gesture struct {
	Kind Kind
	Tool Tool
	// From and To are the endpoints of a Stroke segment.
	From, To geom.Point
	// Touch is set for Tap.
	Touch Touch
}

// Palm rejection and hover thresholds.
const (
	// PalmGuard is how long after the last ink sample finger taps are
	// dropped, to ignore the hand landing as the pen lifts.
	PalmGuard = 500 * time.Millisecond
	// liftHeight is the hover height past which ink is finished early.
	liftHeight = 50
	// verticalMove is the hover distance from the last ink sample, in
	// pixels, past which the writer has moved on to a new line.
	verticalMove = 80
)

type distance uint8

const (
	far distance = iota
	near
	down
)

// State is the disambiguation state machine. The zero value is not
// ready for use; call NewState.
type State struct {
	ink       *ink.Ink
	inkStart  time.Time
	tool      Tool
	distance  distance
	lastPoint *geom.Point
	fingers   map[int]Pos
	// lastInk and lastInkPos describe the most recent ink sample.
	lastInk    time.Time
	lastInkPos Pos
}

// NewState returns a state machine with the stylus out of range.
func NewState() *State {
	return &State{
		ink:     ink.New(),
		fingers: make(map[int]Pos),
	}
}

// CurrentInk returns the ink accumulated since the last TakeInk.
func (s *State) CurrentInk() *ink.Ink {
	return s.ink
}

// TakeInk returns the accumulated ink and starts a new one.
func (s *State) TakeInk() *ink.Ink {
	k := s.ink
	s.ink = ink.New()
	return k
}

// PenActive reports whether the stylus is in range.
func (s *State) PenActive() bool {
	return s.distance != far
}

// OnEvent feeds one raw event and returns the gesture it completes, if any.
func (s *State) OnEvent(ev Event) (Gesture, bool) {
	switch ev.Tool {
	case Pen, Rubber:
		return s.onStylus(ev)
	case Finger:
		return s.onFinger(ev)
	}
	return Gesture{}, false
}

func (s *State) onStylus(ev Event) (Gesture, bool) {
	switch ev.Phase {
	case Near:
		s.tool = ev.Tool
		if s.distance == far {
			s.distance = near
		}
	case Far:
		s.tool = ev.Tool
		s.distance = far
		s.lastPoint = nil
		s.ink.PenUp()
		if s.ink.Len() > 0 {
			return Gesture{Kind: Inked, Tool: ev.Tool}, true
		}
	case Down:
		s.tool = ev.Tool
		s.distance = down
		if s.ink.Len() == 0 {
			s.inkStart = ev.At
		}
		return s.draw(ev)
	case Move:
		if s.distance == down {
			return s.draw(ev)
		}
		return s.hover(ev)
	case Up:
		if s.distance == down {
			s.distance = near
		}
		s.lastPoint = nil
		s.ink.PenUp()
	}
	return Gesture{}, false
}

// hover finishes the ink before the stylus leaves range if it is lifted
// high or moved well away vertically.
func (s *State) hover(ev Event) (Gesture, bool) {
	if s.ink.Len() == 0 {
		return Gesture{}, false
	}
	lifted := ev.Hover > liftHeight
	moved := math.Abs(float64(ev.Pos.Y-s.lastInkPos.Y)) > verticalMove
	if !lifted && !moved {
		return Gesture{}, false
	}
	s.lastPoint = nil
	s.ink.PenUp()
	return Gesture{Kind: Inked, Tool: s.tool}, true
}

func (s *State) draw(ev Event) (Gesture, bool) {
	s.ink.Push(ev.Pos.X, ev.Pos.Y, float32(ev.At.Sub(s.inkStart).Seconds()))
	s.lastInk = ev.At
	s.lastInkPos = ev.Pos
	current := ev.Pos.Point()
	last := s.lastPoint
	s.lastPoint = &current
	if last == nil {
		return Gesture{}, false
	}
	return Gesture{Kind: Stroke, Tool: s.tool, From: *last, To: current}, true
}

func (s *State) onFinger(ev Event) (Gesture, bool) {
	switch ev.Phase {
	case Down:
		// Palms resting while writing produce spurious touches; only
		// accept fingers while the pen is out of range.
		if s.distance == far {
			s.fingers[ev.Finger] = ev.Pos
		}
	case Up:
		start, ok := s.fingers[ev.Finger]
		if !ok {
			return Gesture{}, false
		}
		delete(s.fingers, ev.Finger)
		if s.distance != far {
			paper.Logger().Debug("gesture: dropped touch while pen in range", "finger", ev.Finger)
			return Gesture{}, false
		}
		if !s.lastInk.IsZero() && ev.At.Sub(s.lastInk) < PalmGuard {
			paper.Logger().Debug("gesture: dropped touch after ink", "finger", ev.Finger)
			return Gesture{}, false
		}
		return Gesture{Kind: Tap, Tool: Finger, Touch: Touch{Start: start, End: ev.Pos}}, true
	}
	return Gesture{}, false
}
