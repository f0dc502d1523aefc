// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ui is the incremental renderer and input dispatcher.
//
// A Screen remembers what is drawn where as a tree of cuts. Each render
// pass walks that tree with a Frame cursor: widgets carve regions off
// the frame with SplitOff and fill what remains with Canvas or Draw.
// When a region's Fingerprint matches the previous pass, nothing is
// drawn. Changed pixels accumulate into a single damage region which
// RefreshChanges pushes to the panel as one partial refresh.
//
// Ink annotations are drawn over the content and reconciled with the
// tree after every pass: annotations that disappear get the content
// under them redrawn, and annotations overwritten by newer content get
// drawn again. Render repeats passes until the two agree.
//
// Input is dispatched through Handlers, the bindings widgets register
// while rendering. Later bindings take precedence, so containers see
// the input their children decline.
//
// Example:
//
//	screen := ui.NewScreen(display.NewMemory(1404, 1872))
//	handlers := ui.NewHandlers[Msg]()
//	_, err := screen.Render(func(f *ui.Frame) {
//		handlers.Reset()
//		root.Render(handlers, f)
//	})
//	...
//	err = screen.RefreshChanges()
package ui
