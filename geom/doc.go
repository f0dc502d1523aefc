// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom provides the integer geometry used for layout, damage
// tracking and hit-testing: points, regions and the four cut sides.
//
// Regions follow the device's native pixel grid: origin at top-left,
// y increasing downward, bottom-right corner exclusive.
package geom
