// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/paper/internal/lru"
)

// Cache sizes per font.
const (
	shapeCacheSize   = 1024
	outlineCacheSize = 512
)

// Font is a parsed OpenType font. Text is shaped with HarfBuzz and the
// resulting glyphs are rasterized from the font's outlines.
//
// Font is safe for concurrent use.
type Font struct {
	name    string
	outline *opentype.Font
	shaper  *gotext.Font

	mu  sync.Mutex
	buf sfnt.Buffer
	hb  shaping.HarfbuzzShaper

	shapes   *lru.Cache[shapeKey, shaped]
	outlines *lru.Cache[outlineKey, sfnt.Segments]
}

type shapeKey struct {
	text string
	size float64
}

// shaped is a cached run. Its glyphs are shared and must be copied
// before modification.
type shaped struct {
	glyphs []glyph
	width  float64
}

type outlineKey struct {
	id   sfnt.GlyphIndex
	size float64
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*Font, error) {
	outline, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("widgets: parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("widgets: parse font for shaping: %w", err)
	}
	name, err := outline.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = ""
	}
	return &Font{
		name:     name,
		outline:  outline,
		shaper:   face.Font,
		shapes:   lru.New[shapeKey, shaped](shapeCacheSize),
		outlines: lru.New[outlineKey, sfnt.Segments](outlineCacheSize),
	}, nil
}

var (
	defaultFont     *Font
	defaultFontOnce sync.Once
)

// DefaultFont returns Go Regular.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		f, err := ParseFont(goregular.TTF)
		if err != nil {
			panic(err) // embedded font
		}
		defaultFont = f
	})
	return defaultFont
}

// Name returns the font's full name.
func (f *Font) Name() string {
	return f.name
}

// Ascent returns the distance from the top of a line to the baseline at
// the given pixel size.
func (f *Font) Ascent(size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.outline.Metrics(&f.buf, fixed.Int26_6(size*64), font.HintingNone)
	if err != nil {
		return size * 0.8
	}
	return float64(m.Ascent) / 64
}

// glyph is a shaped glyph positioned relative to the start of its run,
// on the baseline.
type glyph struct {
	font *Font
	size float64
	id   sfnt.GlyphIndex
	x, y float64
}

// shape lays out a single run of text and returns its glyphs and total
// advance. The returned slice belongs to the caller.
func (f *Font) shape(text string, size float64) ([]glyph, float64) {
	s := f.shapes.GetOrCreate(shapeKey{text, size}, func() shaped {
		glyphs, width := f.shapeRun(text, size)
		return shaped{glyphs, width}
	})
	return append([]glyph(nil), s.glyphs...), s.width
}

func (f *Font) shapeRun(text string, size float64) ([]glyph, float64) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, 0
	}
	script := language.Latin
	for _, r := range runes {
		if r != ' ' {
			script = language.LookupScript(r)
			break
		}
	}

	f.mu.Lock()
	out := f.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.shaper),
		Size:      fixed.Int26_6(size * 64),
		Script:    script,
		Language:  language.NewLanguage("en"),
	})
	f.mu.Unlock()

	glyphs := make([]glyph, 0, len(out.Glyphs))
	var x float64
	for _, g := range out.Glyphs {
		glyphs = append(glyphs, glyph{
			font: f,
			size: size,
			id:   sfnt.GlyphIndex(g.GlyphID),
			x:    x + float64(g.XOffset)/64,
			y:    -float64(g.YOffset) / 64,
		})
		x += float64(g.Advance) / 64
	}
	return glyphs, x
}

// glyphOutline returns the glyph's outline scaled to size, or nil if it
// has none.
func (f *Font) glyphOutline(id sfnt.GlyphIndex, size float64) sfnt.Segments {
	return f.outlines.GetOrCreate(outlineKey{id, size}, func() sfnt.Segments {
		f.mu.Lock()
		defer f.mu.Unlock()
		segments, err := f.outline.LoadGlyph(&f.buf, id, fixed.Int26_6(size*64), nil)
		if err != nil {
			return nil
		}
		return append(sfnt.Segments(nil), segments...)
	})
}

// draw rasterizes the glyph in black with its origin at (ox, oy) in dst
// coordinates.
func (g glyph) draw(dst draw.Image, ox, oy float64) {
	segments := g.font.glyphOutline(g.id, g.size)
	if len(segments) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segments {
		n := 1
		switch s.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for _, p := range s.Args[:n] {
			x, y := float64(p.X)/64, float64(p.Y)/64
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	px, py := ox+g.x, oy+g.y
	r := image.Rect(
		int(math.Floor(px+minX)), int(math.Floor(py+minY)),
		int(math.Ceil(px+maxX)), int(math.Ceil(py+maxY)),
	)
	if r.Empty() {
		return
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	dx, dy := float32(px-float64(r.Min.X)), float32(py-float64(r.Min.Y))
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}
	for _, s := range segments {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(s.Args[0])
			x2, y2 := pt(s.Args[1])
			z.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(s.Args[0])
			x2, y2 := pt(s.Args[1])
			x3, y3 := pt(s.Args[2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}
	z.ClosePath()
	z.Draw(dst, r, image.Black, image.Point{})
}
