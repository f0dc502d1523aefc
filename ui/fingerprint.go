// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Fingerprint summarizes everything that affects the pixels of a drawn
// region. Two draws with equal fingerprints are assumed to produce
// identical pixels, so the second one is skipped.
//
// Fingerprints are only ever compared with the previous fingerprint of
// the same screen region, so a 64-bit hash keeps the odds of a collision
// at about 1 in 2^64 per comparison.
type Fingerprint uint64

const (
	// NoContent is the fingerprint of a blank (white) region.
	NoContent Fingerprint = 0
	// InvalidContent never matches a drawn fingerprint and forces a redraw.
	InvalidContent Fingerprint = math.MaxUint64
)

// Hasher builds a Fingerprint from a type tag and the values that affect
// a fragment's pixels. Methods return the receiver for chaining:
//
//	fp := ui.NewHasher("label").String(text).Int(size).Sum()
type Hasher struct {
	h   hash.Hash64
	buf [8]byte
}

// NewHasher starts a fingerprint for content of the given kind.
func NewHasher(tag string) *Hasher {
	h := &Hasher{h: fnv.New64a()}
	return h.String(tag)
}

// String mixes a string into the fingerprint.
func (h *Hasher) String(s string) *Hasher {
	h.Int(len(s))
	_, _ = h.h.Write([]byte(s)) // fnv.Write never returns an error
	return h
}

// Bytes mixes a byte slice into the fingerprint.
func (h *Hasher) Bytes(b []byte) *Hasher {
	h.Int(len(b))
	_, _ = h.h.Write(b)
	return h
}

// Uint64 mixes an unsigned integer into the fingerprint.
func (h *Hasher) Uint64(v uint64) *Hasher {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.h.Write(h.buf[:])
	return h
}

// Int mixes an integer into the fingerprint.
func (h *Hasher) Int(v int) *Hasher {
	return h.Uint64(uint64(v))
}

// Float mixes a floating point value into the fingerprint.
func (h *Hasher) Float(v float64) *Hasher {
	return h.Uint64(math.Float64bits(v))
}

// Bool mixes a boolean into the fingerprint.
func (h *Hasher) Bool(v bool) *Hasher {
	if v {
		return h.Uint64(1)
	}
	return h.Uint64(0)
}

// Sum returns the fingerprint. It never returns NoContent or
// InvalidContent.
func (h *Hasher) Sum() Fingerprint {
	fp := Fingerprint(h.h.Sum64())
	switch fp {
	case NoContent:
		return 1
	case InvalidContent:
		return InvalidContent - 1
	}
	return fp
}
