// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Sequence is a logical timestamp assigned whenever pixels of a region
// actually change. Comparison is modular, so ordering survives
// wraparound as long as compared values are less than 2^31 apart.
type Sequence uint32

// After reports whether s was issued after o.
func (s Sequence) After(o Sequence) bool {
	return int32(s-o) > 0
}
