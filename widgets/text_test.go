// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ui"
)

func TestDefaultFont(t *testing.T) {
	f := DefaultFont()
	require.NotNil(t, f)
	assert.Same(t, f, DefaultFont())
	assert.Contains(t, f.Name(), "Go")
	a := f.Ascent(40)
	assert.Greater(t, a, 20.0)
	assert.Less(t, a, 40.0)
}

func TestParseFontRejectsGarbage(t *testing.T) {
	_, err := ParseFont([]byte("not a font"))
	assert.Error(t, err)
}

func TestLineTextSize(t *testing.T) {
	short := LineText[string](40, DefaultFont(), "hi")
	long := LineText[string](40, DefaultFont(), "hi there")
	assert.Equal(t, 40, short.Size().Y)
	assert.Positive(t, short.Size().X)
	assert.Greater(t, long.Size().X, short.Size().X)
	assert.NotEqual(t, short.Fingerprint(), long.Fingerprint())
}

func TestTextFingerprintIsStable(t *testing.T) {
	a := LineText[string](32, DefaultFont(), "same words")
	b := LineText[string](32, DefaultFont(), "same  words")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Size(), b.Size())

	c := LineText[string](33, DefaultFont(), "same words")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestGlyphFingerprintSeesSubPixelShift(t *testing.T) {
	g := glyph{font: DefaultFont(), size: 32, id: 7, x: 10.2, y: 24}
	shifted := g
	shifted.x = 10.7
	sum := func(g glyph) ui.Fingerprint {
		h := ui.NewHasher("text")
		g.mix(h)
		return h.Sum()
	}
	assert.Equal(t, sum(g), sum(g))
	assert.NotEqual(t, sum(g), sum(shifted))
}

func TestLiteralKeepsSpaces(t *testing.T) {
	words := LineText[string](32, DefaultFont(), "a b")
	literal := LiteralText[string](32, DefaultFont(), "a   b")
	assert.Greater(t, literal.Size().X, words.Size().X)
}

func TestSpaceIndentsAndSeparates(t *testing.T) {
	plain := NewTextBuilder[string](32, DefaultFont()).Words("a").Text()
	indented := NewTextBuilder[string](32, DefaultFont()).Space().Words("a").Text()
	assert.Greater(t, indented.Size().X, plain.Size().X)

	joined := NewTextBuilder[string](32, DefaultFont()).Literal(32, "a").Literal(32, "b").Text()
	spaced := NewTextBuilder[string](32, DefaultFont()).Literal(32, "a").Space().Literal(32, "b").Text()
	assert.Greater(t, spaced.Size().X, joined.Size().X)
}

func TestWrapRespectsWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 8)
	lines := WrapText[string](24, DefaultFont(), text, 300, false)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, l.Size().X, 300)
		assert.Equal(t, 24, l.Size().Y)
	}
}

func TestWrapLongWordGetsOwnLine(t *testing.T) {
	lines := WrapText[string](24, DefaultFont(), "a "+strings.Repeat("w", 40)+" b", 100, false)
	require.Len(t, lines, 3)
	assert.Greater(t, lines[1].Size().X, 100)
}

func TestWrapJustifyFillsAllButLastLine(t *testing.T) {
	text := strings.Repeat("one two three four ", 6)
	lines := WrapText[string](24, DefaultFont(), text, 320, true)
	require.Greater(t, len(lines), 2)
	for _, l := range lines[:len(lines)-1] {
		assert.InDelta(t, 320, l.Size().X, 1)
	}
	assert.Less(t, lines[len(lines)-1].Size().X, 320)
}

func TestWrapEmpty(t *testing.T) {
	lines := WrapText[string](24, DefaultFont(), "", 100, false)
	require.Len(t, lines, 1)
	assert.Equal(t, geom.Pt(0, 24), lines[0].Size())
}

func TestTextDrawsGlyphs(t *testing.T) {
	s := newTestScreen(t, 300, 60)
	text := LineText[string](40, DefaultFont(), "Ink")
	h := ui.NewHandlers[string]()
	_, err := s.Render(func(f *ui.Frame) {
		ui.RenderSplit[string](text, h, f, geom.Top, 0)
	})
	require.NoError(t, err)

	fb := s.Framebuffer()
	assert.Less(t, darkest(fb, geom.RegionOf(geom.Point{}, text.Size())), uint8(0x40))
	assert.Equal(t, display.White, fb.Pixel(299, 59))
}

func TestWordsOnBindsTapRange(t *testing.T) {
	s := newTestScreen(t, 600, 40)
	text := NewTextBuilder[string](32, DefaultFont()).
		Words("tap ").
		WordsOn("here", "hit").
		Words(" not here").
		Text()
	h := ui.NewHandlers[string]()
	_, err := s.Render(func(f *ui.Frame) {
		ui.RenderSplit[string](text, h, f, geom.Top, 0)
	})
	require.NoError(t, err)
	require.Equal(t, 1, h.Len())

	tap := LineText[string](32, DefaultFont(), "tap ")
	here := LineText[string](32, DefaultFont(), "here")
	x := float32(tap.Size().X + here.Size().X/2)

	msg, ok := h.Query(tapAt(x, 16))
	require.True(t, ok)
	assert.Equal(t, "hit", msg)

	_, ok = h.Query(tapAt(2, 16))
	assert.False(t, ok)
	_, ok = h.Query(tapAt(float32(text.Size().X-2), 16))
	assert.False(t, ok)
}

func TestWrapSplitsTapRanges(t *testing.T) {
	lines := NewTextBuilder[string](24, DefaultFont()).
		Words("plain words first and then").
		WordsOn("a tappable span that wraps across lines", "span").
		Wrap(200, false)
	require.Greater(t, len(lines), 1)
	tapped := 0
	for _, l := range lines {
		tapped += len(l.taps)
	}
	assert.GreaterOrEqual(t, tapped, 2)
	assert.Empty(t, lines[0].taps)
}

func TestShapingIsCached(t *testing.T) {
	f := DefaultFont()
	LineText[string](21, f, "cached words")
	before := f.shapes.Stats().Hits
	LineText[string](21, f, "cached words")
	assert.Greater(t, f.shapes.Stats().Hits, before)

	// Joined literals shift their glyphs; the cached runs must not move.
	a := NewTextBuilder[string](21, f).Literal(21, "ab").Literal(21, "cd").Text()
	b := NewTextBuilder[string](21, f).Literal(21, "ab").Literal(21, "cd").Text()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Size(), b.Size())
}
