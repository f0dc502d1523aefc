// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// DefaultFixupLimit is the default bound on render passes per Render call.
const DefaultFixupLimit = 3

// MinFixupLimit is the smallest usable fixup limit. Appending to ink that
// overlaps pending content takes a pass to draw the content, one to find
// the annotation overwritten, and one to redraw it.
const MinFixupLimit = 3

// DefaultStrokeWidth is the default width of pen strokes, in pixels.
const DefaultStrokeWidth = 3

type options struct {
	fixupLimit     int
	strokeWidth    int
	fullRefreshNow bool
}

func defaultOptions() options {
	return options{
		fixupLimit:  DefaultFixupLimit,
		strokeWidth: DefaultStrokeWidth,
	}
}

// Option configures a Screen.
type Option func(*options)

// WithFixupLimit bounds the number of render passes a single Render call
// may take to settle annotations. Values below MinFixupLimit are ignored.
func WithFixupLimit(n int) Option {
	return func(o *options) {
		if n >= MinFixupLimit {
			o.fixupLimit = n
		}
	}
}

// WithStrokeWidth sets the width used for live pen strokes and ink
// annotations. Values below 1 are ignored.
func WithStrokeWidth(w int) Option {
	return func(o *options) {
		if w >= 1 {
			o.strokeWidth = w
		}
	}
}

// WithFullRefreshOnStart makes the first RefreshChanges a full refresh,
// clearing whatever the panel showed before.
func WithFullRefreshOnStart() Option {
	return func(o *options) {
		o.fullRefreshNow = true
	}
}
