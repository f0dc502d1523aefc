// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widgets

import (
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ui"
)

// Paged shows one of several pages at a time.
type Paged[M any, W ui.Widget[M]] struct {
	current int
	pages   []W
	onTap   *M
}

// NewPaged returns a pager showing first.
func NewPaged[M any, W ui.Widget[M]](first W) *Paged[M, W] {
	return &Paged[M, W]{pages: []W{first}}
}

// OnTap makes taps anywhere on the page that no page widget takes
// produce msg.
func (p *Paged[M, W]) OnTap(msg M) {
	p.onTap = &msg
}

// ClearOnTap removes the tap message.
func (p *Paged[M, W]) ClearOnTap() {
	p.onTap = nil
}

// Push appends a page.
func (p *Paged[M, W]) Push(page W) {
	p.pages = append(p.pages, page)
}

// Pages returns all pages.
func (p *Paged[M, W]) Pages() []W {
	return p.pages
}

// PageRelative moves count pages forward, or backward if negative,
// stopping at the first and last page.
func (p *Paged[M, W]) PageRelative(count int) {
	p.current = min(max(p.current+count, 0), len(p.pages)-1)
}

// CurrentIndex returns the index of the page shown.
func (p *Paged[M, W]) CurrentIndex() int {
	return p.current
}

// Current returns the page shown.
func (p *Paged[M, W]) Current() W {
	return p.pages[p.current]
}

// Last returns the last page.
func (p *Paged[M, W]) Last() W {
	return p.pages[len(p.pages)-1]
}

// Size returns the size of the page shown.
func (p *Paged[M, W]) Size() geom.Point {
	return p.Current().Size()
}

// Render renders the page shown.
func (p *Paged[M, W]) Render(h *ui.Handlers[M], f *ui.Frame) {
	if p.onTap != nil {
		h.OnTap(f, *p.onTap)
	}
	p.Current().Render(h, f)
}

// PushStack adds w to the last page, starting a new page of the same
// size if it does not fit.
func PushStack[M any](p *Paged[M, *Stack[M]], w ui.Widget[M]) {
	last := p.Last()
	if w.Size().Y > last.Remaining().Y {
		p.Push(NewStack[M](last.Size()))
	}
	p.Last().Push(w)
}
