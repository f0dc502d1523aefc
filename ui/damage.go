// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "github.com/gogpu/paper/geom"

// damage accumulates the union of regions whose framebuffer pixels
// changed and have not yet been pushed to the panel.
type damage struct {
	region geom.Region
	set    bool
}

// add grows the damage to include r. Empty regions are ignored.
func (d *damage) add(r geom.Region) {
	if r.Empty() {
		return
	}
	if !d.set {
		d.region, d.set = r, true
		return
	}
	d.region = d.region.Union(r)
}

// peek returns the pending damage without consuming it.
func (d *damage) peek() (geom.Region, bool) {
	return d.region, d.set
}

// take returns and resets the pending damage.
func (d *damage) take() (geom.Region, bool) {
	r, ok := d.region, d.set
	*d = damage{}
	return r, ok
}
