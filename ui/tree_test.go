// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/paper/geom"
)

// sample builds a root with a 100px top strip and content in the rest,
// over a 200x300 area.
func sample() *node {
	top := &node{content: 7, seq: 1}
	root := &node{
		children: []cut{{side: geom.Top, value: 100, node: top}},
		content:  9,
		seq:      2,
	}
	return root
}

func TestInvalidateReachesOnlyOverlappingNodes(t *testing.T) {
	root := sample()
	root.invalidate(geom.Rect(10, 10, 20, 20))
	assert.Equal(t, InvalidContent, root.children[0].node.content)
	assert.Equal(t, Fingerprint(9), root.content, "damage stayed in the top strip")

	root = sample()
	root.invalidate(geom.Rect(10, 150, 20, 160))
	assert.Equal(t, Fingerprint(7), root.children[0].node.content)
	assert.Equal(t, InvalidContent, root.content)

	root = sample()
	root.invalidate(geom.Rect(10, 90, 20, 110))
	assert.Equal(t, InvalidContent, root.children[0].node.content)
	assert.Equal(t, InvalidContent, root.content)
}

func TestInvalidateEdgeTouchingDoesNotSpill(t *testing.T) {
	root := sample()
	root.invalidate(geom.Rect(0, 80, 200, 100))
	assert.Equal(t, Fingerprint(9), root.content)
}

func TestChangedSince(t *testing.T) {
	root := sample()
	area := geom.Rect(0, 0, 50, 50)
	assert.True(t, root.changedSince(area, 0))
	assert.False(t, root.changedSince(area, 1))

	lower := geom.Rect(0, 150, 50, 200)
	assert.True(t, root.changedSince(lower, 1))
	assert.False(t, root.changedSince(lower, 2))
}

func TestNodeSize(t *testing.T) {
	assert.Equal(t, 2, sample().size())
}
