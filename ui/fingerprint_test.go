// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasherIsDeterministic(t *testing.T) {
	a := NewHasher("text").String("hello").Int(12).Sum()
	b := NewHasher("text").String("hello").Int(12).Sum()
	assert.Equal(t, a, b)
}

func TestHasherDistinguishesInputs(t *testing.T) {
	base := NewHasher("text").String("hello").Int(12).Sum()
	assert.NotEqual(t, base, NewHasher("text").String("hello").Int(13).Sum())
	assert.NotEqual(t, base, NewHasher("line").String("hello").Int(12).Sum())
	// Length prefixes keep concatenations apart.
	assert.NotEqual(t,
		NewHasher("t").String("ab").String("c").Sum(),
		NewHasher("t").String("a").String("bc").Sum())
	assert.NotEqual(t, NewHasher("b").Bool(true).Sum(), NewHasher("b").Bool(false).Sum())
	assert.NotEqual(t, NewHasher("f").Float(0.5).Sum(), NewHasher("f").Float(0.25).Sum())
}

func TestHasherAvoidsReservedValues(t *testing.T) {
	for i := range 1000 {
		fp := NewHasher("n").Int(i).Sum()
		assert.NotEqual(t, NoContent, fp)
		assert.NotEqual(t, InvalidContent, fp)
	}
}

func TestSequenceAfterWraps(t *testing.T) {
	assert.True(t, Sequence(2).After(1))
	assert.False(t, Sequence(1).After(2))
	assert.False(t, Sequence(5).After(5))
	assert.True(t, Sequence(3).After(^Sequence(0)), "3 is after the wrap")
}
