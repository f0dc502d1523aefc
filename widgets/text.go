// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ui"
)

// word is a run of glyphs laid out from x = 0 on the baseline.
type word struct {
	glyphs []glyph
	width  float64
	// sticky words absorb the next literal; otherwise space is the gap
	// to the next word.
	sticky bool
	space  float64
}

// wordTap binds taps on words [from, to) to a message.
type wordTap[M any] struct {
	from, to int
	msg      M
}

// textTap binds taps on the pixel columns [from, to) to a message.
type textTap[M any] struct {
	from, to int
	msg      M
}

// Text is a single line of shaped text. Ranges of words can carry tap
// messages.
type Text[M any] struct {
	size   geom.Point
	glyphs []glyph
	fp     ui.Fingerprint
	taps   []textTap[M]
}

// LiteralText returns text laid out as one word, spaces included.
func LiteralText[M any](size int, f *Font, text string) *Text[M] {
	return NewTextBuilder[M](size, f).Literal(float64(size), text).Text()
}

// LineText returns text laid out as words on one line.
func LineText[M any](size int, f *Font, text string) *Text[M] {
	return NewTextBuilder[M](size, f).Words(text).Text()
}

// WrapText breaks text into lines no wider than width.
func WrapText[M any](size int, f *Font, text string, width int, justify bool) []*Text[M] {
	return NewTextBuilder[M](size, f).Words(text).Wrap(width, justify)
}

// Size returns the text's extent: its advance width and line height.
func (t *Text[M]) Size() geom.Point {
	return t.size
}

// Fingerprint identifies the glyphs and their positions.
func (t *Text[M]) Fingerprint() ui.Fingerprint {
	return t.fp
}

// Draw rasterizes the glyphs.
func (t *Text[M]) Draw(c *ui.Canvas) {
	dst := c.Image()
	origin := c.Bounds().TopLeft
	for _, g := range t.glyphs {
		g.draw(dst, float64(origin.X), float64(origin.Y))
	}
}

// Render binds the tap ranges and draws the text.
func (t *Text[M]) Render(h *ui.Handlers[M], f *ui.Frame) {
	for _, tap := range t.taps {
		h.OnTapIn(f, geom.Rect(tap.from, 0, tap.to, t.size.Y), tap.msg)
	}
	f.Draw(t)
}

// TextBuilder assembles a line of text from words, literals and spaces
// in possibly different fonts. Methods return the receiver for chaining.
type TextBuilder[M any] struct {
	height   int
	baseline float64
	indent   float64
	font     *Font
	size     float64
	words    []word
	taps     []wordTap[M]
}

// NewTextBuilder returns a builder for lines of the given height. The
// baseline is placed at the font's ascent.
func NewTextBuilder[M any](height int, f *Font) *TextBuilder[M] {
	return &TextBuilder[M]{
		height:   height,
		baseline: f.Ascent(float64(height)),
		font:     f,
		size:     float64(height),
	}
}

// Font switches the font and size used for following input.
func (b *TextBuilder[M]) Font(f *Font, size float64) *TextBuilder[M] {
	b.font = f
	b.size = size
	return b
}

// Space adds one space of the current font after the last word.
func (b *TextBuilder[M]) Space() *TextBuilder[M] {
	_, width := b.font.shape(" ", b.size)
	if len(b.words) == 0 {
		b.indent += width
		return b
	}
	last := &b.words[len(b.words)-1]
	if last.sticky {
		last.sticky = false
		last.space = width
	} else {
		last.space += width
	}
	return b
}

// Literal appends text as-is at the given size, joining the last word
// if nothing separated them.
func (b *TextBuilder[M]) Literal(size float64, text string) *TextBuilder[M] {
	glyphs, width := b.font.shape(norm.NFC.String(text), size)
	if n := len(b.words); n > 0 && b.words[n-1].sticky {
		last := &b.words[n-1]
		for i := range glyphs {
			glyphs[i].x += last.width
		}
		last.glyphs = append(last.glyphs, glyphs...)
		last.width += width
		return b
	}
	b.words = append(b.words, word{glyphs: glyphs, width: width, sticky: true})
	return b
}

// Words splits text on white space and appends each word.
func (b *TextBuilder[M]) Words(text string) *TextBuilder[M] {
	b.pushWords(text)
	return b
}

// WordsOn appends text like Words and binds taps on it to msg.
func (b *TextBuilder[M]) WordsOn(text string, msg M) *TextBuilder[M] {
	from := len(b.words)
	b.pushWords(text)
	if to := len(b.words); to > from {
		b.taps = append(b.taps, wordTap[M]{from: from, to: to, msg: msg})
	}
	return b
}

func (b *TextBuilder[M]) pushWords(text string) {
	text = norm.NFC.String(text)
	if strings.IndexFunc(text, unicode.IsSpace) == 0 {
		b.Space()
	}
	fields := strings.Fields(text)
	for i, w := range fields {
		glyphs, width := b.font.shape(w, b.size)
		b.words = append(b.words, word{glyphs: glyphs, width: width, sticky: true})
		if i < len(fields)-1 {
			b.Space()
		}
	}
	if last, _ := utf8.DecodeLastRuneInString(text); len(fields) > 0 && unicode.IsSpace(last) {
		b.Space()
	}
}

// mix adds the glyph to a text fingerprint. Positions are mixed
// unrounded since glyphs are drawn at sub-pixel offsets.
func (g glyph) mix(h *ui.Hasher) {
	h.String(g.font.name).Float(g.size).Int(int(g.id)).Float(g.x).Float(g.y)
}

// Text finishes the line.
func (b *TextBuilder[M]) Text() *Text[M] {
	h := ui.NewHasher("text").Int(b.height)
	x := b.indent
	gap := 0.0
	var glyphs []glyph
	ranges := make([][2]int, 0, len(b.words))
	for _, w := range b.words {
		x += gap
		for _, g := range w.glyphs {
			g.x += x
			g.y += b.baseline
			g.mix(h)
			glyphs = append(glyphs, g)
		}
		ranges = append(ranges, [2]int{int(x), int(math.Ceil(x + w.width))})
		x += w.width
		gap = w.space
		if w.sticky {
			gap = 0
		}
	}

	taps := make([]textTap[M], 0, len(b.taps))
	for _, t := range b.taps {
		taps = append(taps, textTap[M]{from: ranges[t.from][0], to: ranges[t.to-1][1], msg: t.msg})
	}
	return &Text[M]{
		size:   geom.Pt(int(math.Ceil(x)), b.height),
		glyphs: glyphs,
		fp:     h.Sum(),
		taps:   taps,
	}
}

// Wrap breaks the words greedily into lines no wider than width; a word
// wider than a line gets a line of its own. With justify, the spaces of
// every line but the last are stretched to fill the width.
func (b *TextBuilder[M]) Wrap(width int, justify bool) []*Text[M] {
	type line struct{ from, to int }
	var lines []line
	limit := float64(width) - b.indent
	start, used, gap := 0, 0.0, 0.0
	for i, w := range b.words {
		if i > start && used+gap+w.width > limit {
			lines = append(lines, line{start, i})
			start, used, limit = i, 0, float64(width)
		} else if i > start {
			used += gap
		}
		used += w.width
		gap = w.space
		if w.sticky {
			gap = 0
		}
	}
	if start < len(b.words) || len(lines) == 0 {
		lines = append(lines, line{start, len(b.words)})
	}

	texts := make([]*Text[M], 0, len(lines))
	for i, l := range lines {
		lb := &TextBuilder[M]{
			height:   b.height,
			baseline: b.baseline,
			font:     b.font,
			size:     b.size,
			words:    append([]word(nil), b.words[l.from:l.to]...),
		}
		if i == 0 {
			lb.indent = b.indent
		}
		for _, t := range b.taps {
			from, to := max(t.from, l.from), min(t.to, l.to)
			if from < to {
				lb.taps = append(lb.taps, wordTap[M]{from: from - l.from, to: to - l.from, msg: t.msg})
			}
		}
		if justify {
			minWidth := width
			if i == len(lines)-1 {
				minWidth = 0
			}
			lb.fit(minWidth, width)
		}
		texts = append(texts, lb.Text())
	}
	return texts
}

// fit scales the gaps between words so the line length lies within
// [lo, hi].
func (b *TextBuilder[M]) fit(lo, hi int) {
	var words, gaps float64
	for i, w := range b.words {
		words += w.width
		if i < len(b.words)-1 && !w.sticky {
			gaps += w.space
		}
	}
	total := words + gaps
	var target float64
	switch {
	case total < float64(lo):
		target = float64(lo)
	case total > float64(hi):
		target = float64(hi)
	default:
		return
	}
	if gaps == 0 {
		return
	}
	ratio := math.Max(target-words, 0) / gaps
	for i := range b.words {
		if !b.words[i].sticky {
			b.words[i].space *= ratio
		}
	}
}
