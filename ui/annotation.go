// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/paper"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
)

// annotationKey identifies an annotation across passes. Widgets that
// annotate append-only ink get a new key whenever the ink grows.
type annotationKey struct {
	region      geom.Region
	fingerprint Fingerprint
}

func inkFingerprint(k *ink.Ink) Fingerprint {
	return NewHasher("ink").Int(k.Len()).Int(len(k.Strokes())).Sum()
}

type annotation struct {
	key annotationKey
	// ink is in absolute screen coordinates.
	ink *ink.Ink
	// seq is when the annotation was last drawn.
	seq Sequence
	// stale is set at the start of a pass and cleared when a widget
	// registers the annotation again.
	stale bool
	// redraw is set when content drawn after the annotation overlapped it.
	redraw bool
}

// annotations is the set of ink overlays drawn on top of the content
// tree. Ownership of overlapping pixels is not tracked, so the set is
// reconciled with the tree after every pass by fixup.
type annotations struct {
	records []*annotation
}

func (a *annotations) beginPass() {
	for _, r := range a.records {
		r.stale = true
	}
}

func (a *annotations) find(key annotationKey) *annotation {
	for _, r := range a.records {
		if r.key == key {
			return r
		}
	}
	return nil
}

// push registers an annotation for the current pass, drawing it if it
// is new or was overwritten.
func (a *annotations) push(s *Screen, region geom.Region, k *ink.Ink) {
	key := annotationKey{region: region, fingerprint: inkFingerprint(k)}
	rec := a.find(key)
	if rec == nil {
		rec = &annotation{key: key, ink: k, redraw: true}
		a.records = append(a.records, rec)
	}
	rec.stale = false
	if !rec.redraw {
		return
	}
	drawInk(s.fb.Sub(region), rec.ink, geom.Point{}, s.opts.strokeWidth)
	rec.seq = s.nextSeq()
	rec.redraw = false
	s.markDirty(region)
}

// fixup reconciles the annotations with the content tree after a pass
// and reports whether another pass is needed.
//
// An annotation that was not registered during the pass is dropped and
// the content under it invalidated. An annotation overlapped by content
// drawn after it is scheduled to be drawn again.
func (a *annotations) fixup(s *Screen, report *Report) bool {
	again := false
	kept := a.records[:0]
	for _, r := range a.records {
		switch {
		case r.stale:
			paper.Logger().Debug("ui: annotation removed", "region", r.key.region.String())
			s.tree.invalidate(r.key.region)
			report.Invalidated = append(report.Invalidated, r.key.region)
			report.Removed++
			again = true
			continue
		case s.tree.changedSince(r.key.region, r.seq):
			paper.Logger().Debug("ui: annotation overwritten", "region", r.key.region.String())
			r.redraw = true
			report.Redrawn++
			again = true
		}
		kept = append(kept, r)
	}
	clear(a.records[len(kept):])
	a.records = kept
	return again
}

func (a *annotations) reset() {
	a.records = nil
}

func (a *annotations) len() int {
	return len(a.records)
}
