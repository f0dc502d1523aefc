// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "github.com/gogpu/paper/geom"

// cut is one child of a node: the area on side of the line at value.
type cut struct {
	side  geom.Side
	value int
	node  *node
}

// node is the memory of what is drawn in one region of the screen.
//
// The shape of the tree is the history of cuts made by the render
// cursors: children are matched by position, so a widget must issue its
// cuts in the same order on every pass or its subtree is truncated and
// redrawn.
type node struct {
	// children are the cuts made, in order. Each cut removes its area
	// from what remains of the node.
	children []cut
	// content is the fingerprint of whatever is drawn in the area left
	// over after all children.
	content Fingerprint
	// seq is when the left-over area last changed on the framebuffer.
	seq Sequence
}

func newNode() *node {
	return &node{content: InvalidContent}
}

// invalidate forces a redraw of everything overlapping damaged.
// damaged must lie within the node's area.
func (n *node) invalidate(damaged geom.Region) {
	for _, c := range n.children {
		if part, ok := damaged.Split(c.side, c.value); ok && !part.Empty() {
			c.node.invalidate(part)
		}
		rest, ok := damaged.Split(c.side.Opposite(), c.value)
		if !ok || rest.Empty() {
			return
		}
		damaged = rest
	}
	// Damage reached the left-over area itself.
	n.content = InvalidContent
}

// changedSince reports whether any part of the tree overlapping area was
// redrawn after seq. area must lie within the node's area.
func (n *node) changedSince(area geom.Region, seq Sequence) bool {
	for _, c := range n.children {
		if part, ok := area.Split(c.side, c.value); ok && !part.Empty() {
			if c.node.changedSince(part, seq) {
				return true
			}
		}
		rest, ok := area.Split(c.side.Opposite(), c.value)
		if !ok || rest.Empty() {
			return false
		}
		area = rest
	}
	return n.seq.After(seq)
}

// size returns the number of nodes in the subtree.
func (n *node) size() int {
	total := 1
	for _, c := range n.children {
		total += c.node.size()
	}
	return total
}
