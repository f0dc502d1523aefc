// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display abstracts an e-paper panel: a greyscale framebuffer and
// the refresh waveforms that push framebuffer regions to the glass.
//
// Three refresh modes are supported:
//   - Full: slow whole-panel flash that removes ghosting
//   - Partial: greyscale region refresh
//   - Quick: fast monochrome refresh for pen strokes
//
// Memory is an in-memory Display for tests and headless rendering; the
// term sub-package emulates a panel in a terminal.
package display
