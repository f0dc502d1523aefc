package main

import (
	"context"
	"fmt"
	"image/color"
	"strconv"

	"github.com/gogpu/paper/app"
	"github.com/gogpu/paper/dollar"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/ink"
	"github.com/gogpu/paper/ui"
	"github.com/gogpu/paper/widgets"
)

// message is anything the demo's update function accepts.
type message any

type (
	tabMsg           struct{ tab tab }
	clearMsg         struct{}
	inkedMsg         struct{ ink *ink.Ink }
	templateInkedMsg struct {
		index int
		ink   *ink.Ink
	}
	clearTemplateMsg struct{ index int }
	recognizedMsg    struct {
		candidates []widgets.Candidate
		err        error
	}
	nextPageMsg struct{}
)

type tab int

const (
	gesturesTab tab = iota
	handwritingTab
)

// maxTemplates bounds the template grid.
const maxTemplates = 40

// demo is the root widget.
type demo struct {
	screen   *ui.Screen
	size     geom.Point
	margin   int
	font     *widgets.Font
	textSize int

	title       *widgets.Text[message]
	tabs        []*widgets.Text[message]
	current     tab
	gestures    *gestures
	handwriting *handwriting
}

func newDemo(ctx context.Context, screen *ui.Screen, sender app.Sender[message], font *widgets.Font) *demo {
	size := screen.Size()
	// Everything scales with the display so the terminal backend stays
	// usable.
	textSize := max(size.Y/48, 8)
	margin := size.X / 14
	d := &demo{
		screen:   screen,
		size:     size,
		margin:   margin,
		font:     font,
		textSize: textSize,
		title:    widgets.LiteralText[message](textSize*3/2, font, "paper demo"),
	}
	for _, t := range []struct {
		label string
		tab   tab
	}{{"gestures", gesturesTab}, {"handwriting", handwritingTab}} {
		tabText := widgets.NewTextBuilder[message](textSize, font).
			WordsOn(t.label, tabMsg{t.tab}).
			Text()
		d.tabs = append(d.tabs, tabText)
	}

	page := geom.Pt(size.X-2*margin, size.Y-d.headerHeight())
	d.gestures = newGestures(page, font, textSize)
	d.handwriting = newHandwriting(ctx, page, font, textSize, sender)
	return d
}

func (d *demo) headerHeight() int {
	return d.textSize * 4
}

// Close stops background recognition.
func (d *demo) Close() {
	d.handwriting.area.Close()
}

func (d *demo) Size() geom.Point {
	return d.size
}

func (d *demo) Render(h *ui.Handlers[message], f *ui.Frame) {
	f.SplitOff(geom.Left, d.margin).LeaveRestBlank()
	f.SplitOff(geom.Right, d.margin).LeaveRestBlank()
	f.Split(geom.Top, d.headerHeight(), func(header *ui.Frame) {
		ui.RenderSplit(ui.Void[message, message](d.title), h, header, geom.Left, 0.7)
		for _, t := range d.tabs {
			header.SplitOff(geom.Left, d.textSize).LeaveRestBlank()
			ui.RenderSplit[message](t, h, header, geom.Left, 0.7)
		}
		header.LeaveRestBlank()
	})
	switch d.current {
	case gesturesTab:
		d.gestures.Render(h, f)
	case handwritingTab:
		d.handwriting.Render(h, f)
	}
}

func (d *demo) update(msg message) error {
	switch msg := msg.(type) {
	case tabMsg:
		if msg.tab != d.current {
			d.current = msg.tab
			d.screen.RequestFullRefresh()
		}
	case clearMsg:
		switch d.current {
		case gesturesTab:
			d.gestures.query = newGestureBox(-1, d.gestures.boxSize)
			d.gestures.match()
		case handwritingTab:
			d.handwriting.area.Clear()
			d.handwriting.setResults(nil)
		}
	case inkedMsg:
		switch d.current {
		case gesturesTab:
			d.gestures.query.push(msg.ink)
			d.gestures.match()
		case handwritingTab:
			d.handwriting.area.Append(msg.ink)
		}
	case templateInkedMsg:
		d.gestures.templateInked(msg.index, msg.ink)
	case clearTemplateMsg:
		d.gestures.templates[msg.index] = newGestureBox(msg.index, d.gestures.boxSize)
		d.gestures.match()
	case recognizedMsg:
		if msg.err == nil {
			d.handwriting.setResults(msg.candidates)
		}
	case nextPageMsg:
		p := d.handwriting.results
		if p.CurrentIndex() == len(p.Pages())-1 {
			p.PageRelative(-p.CurrentIndex())
		} else {
			p.PageRelative(1)
		}
	default:
		return fmt.Errorf("unexpected message %T", msg)
	}
	return nil
}

// gestures is the $P tab: a query box and a grid of templates.
type gestures struct {
	size    geom.Point
	boxSize int
	font    *widgets.Font

	intro     []*widgets.Text[message]
	query     *gestureBox
	bestLabel *widgets.Text[message]
	best      int
	prompt    []*widgets.Text[message]
	templates []*gestureBox
}

func newGestures(size geom.Point, font *widgets.Font, textSize int) *gestures {
	g := &gestures{
		size:    size,
		boxSize: max(size.X/8, 16),
		font:    font,
		best:    -1,
	}
	g.intro = widgets.NewTextBuilder[message](textSize, font).
		Words("The dollar package implements the $P gesture recognizer: given template gestures and a query, it finds the template most similar to the query. For longer text, try the ").
		WordsOn("handwriting", tabMsg{handwritingTab}).
		Words(" tab.").
		Wrap(size.X, false)
	g.prompt = widgets.WrapText[message](textSize, font,
		"Draw templates into the squares below, then a gesture in the square above. Tap a square to clear it.",
		size.X, false)
	g.bestLabel = widgets.LiteralText[message](textSize, font, "Best match: ")
	g.query = newGestureBox(-1, g.boxSize)
	g.templates = []*gestureBox{newGestureBox(0, g.boxSize)}
	return g
}

func (g *gestures) templateInked(i int, k *ink.Ink) {
	g.templates[i].push(k)
	if i == len(g.templates)-1 && len(g.templates) < maxTemplates {
		g.templates = append(g.templates, newGestureBox(i+1, g.boxSize))
	}
	g.match()
}

func (g *gestures) match() {
	g.best = -1
	if g.query.ink.Len() == 0 {
		return
	}
	var ts dollar.Templates
	for i, t := range g.templates {
		if t.ink.Len() > 0 {
			ts.Add(strconv.Itoa(i), t.ink)
		}
	}
	best, _, err := ts.Match(g.query.ink)
	if err != nil {
		return
	}
	g.best, _ = strconv.Atoi(best.Name)
}

func (g *gestures) Size() geom.Point {
	return g.size
}

func (g *gestures) Render(h *ui.Handlers[message], f *ui.Frame) {
	for _, l := range g.intro {
		ui.RenderSplit[message](l, h, f, geom.Top, 0)
	}
	f.Split(geom.Top, g.boxSize, func(row *ui.Frame) {
		ui.RenderSplit[message](g.query, h, row, geom.Left, 0.5)
		if g.best >= 0 {
			ui.RenderSplit(ui.Void[message, message](g.bestLabel), h, row, geom.Left, 0.5)
			row.Annotate(g.templates[g.best].ink)
		}
		row.LeaveRestBlank()
	})
	for _, l := range g.prompt {
		ui.RenderSplit[message](l, h, f, geom.Top, 0)
	}
	perRow := max(g.size.X/g.boxSize, 1)
	for start := 0; start < len(g.templates); start += perRow {
		if f.Size().Y < g.boxSize {
			break
		}
		row := f.SplitOff(geom.Top, g.boxSize)
		for _, t := range g.templates[start:min(start+perRow, len(g.templates))] {
			ui.RenderSplit[message](t, h, row, geom.Left, 0)
		}
		row.LeaveRestBlank()
	}
	f.LeaveRestBlank()
}

// gestureBox collects one gesture and shows its normalized cloud. The
// query box has index -1.
type gestureBox struct {
	index int
	size  int
	ink   *ink.Ink
	cloud dollar.Cloud
}

func newGestureBox(index, size int) *gestureBox {
	return &gestureBox{index: index, size: size, ink: ink.New()}
}

func (b *gestureBox) push(k *ink.Ink) {
	b.ink.Append(k, 0.5)
	b.cloud = dollar.Normalize(b.ink)
}

func (b *gestureBox) Size() geom.Point {
	return geom.Pt(b.size, b.size)
}

func (b *gestureBox) Render(h *ui.Handlers[message], f *ui.Frame) {
	if b.index >= 0 {
		i := b.index
		h.OnInk(f, func(k *ink.Ink) message { return templateInkedMsg{i, k} })
		h.OnTap(f, clearTemplateMsg{i})
	} else {
		h.OnInk(f, func(k *ink.Ink) message { return inkedMsg{k} })
		h.OnTap(f, clearMsg{})
	}
	f.Annotate(b.ink)
	frag := cloudBox{box: b.size * 5 / 8}
	if b.ink.Len() > 0 {
		scale := float64(frag.box)
		for _, p := range b.cloud {
			frag.dots = append(frag.dots, geom.Pt(int(p.X*scale), int(p.Y*scale)))
		}
	}
	f.Draw(frag)
}

// cloudBox draws a square outline with dots relative to its centre.
type cloudBox struct {
	box  int
	dots []geom.Point
}

var (
	outlineLevel = color.Gray{Y: 60}
	dotLevel     = color.Gray{Y: 100}
)

func (c cloudBox) Fingerprint() ui.Fingerprint {
	h := ui.NewHasher("cloud-box").Int(c.box)
	for _, p := range c.dots {
		h.Int(p.X).Int(p.Y)
	}
	return h.Sum()
}

func (c cloudBox) Draw(canvas *ui.Canvas) {
	size := canvas.Size()
	centre := geom.Pt(size.X/2, size.Y/2)
	half := c.box / 2
	corners := []geom.Point{
		centre.Add(geom.Pt(-half, -half)),
		centre.Add(geom.Pt(half, -half)),
		centre.Add(geom.Pt(half, half)),
		centre.Add(geom.Pt(-half, half)),
	}
	for i, p := range corners {
		canvas.DrawLine(p, corners[(i+1)%len(corners)], 3, outlineLevel)
	}
	for _, d := range c.dots {
		p := centre.Add(d)
		canvas.Fill(geom.Rect(p.X-2, p.Y-2, p.X+3, p.Y+3), dotLevel)
	}
}

// handwriting is the recognition tab: an ink pad and ranked results.
type handwriting struct {
	size     geom.Point
	font     *widgets.Font
	textSize int

	prompt  *widgets.Text[message]
	area    *widgets.InkArea[message]
	results *widgets.Paged[message, *widgets.Stack[message]]
}

func newHandwriting(ctx context.Context, size geom.Point, font *widgets.Font, textSize int, sender app.Sender[message]) *handwriting {
	hw := &handwriting{
		size:     size,
		font:     font,
		textSize: textSize,
	}
	hw.prompt = widgets.NewTextBuilder[message](textSize, font).
		Words("Write below. ").
		WordsOn("Tap here to clear.", clearMsg{}).
		Text()
	pad := ruled{size: geom.Pt(size.X, textSize*5)}
	hw.area = widgets.NewInkArea[message](pad, func(k *ink.Ink) message { return inkedMsg{k} })
	hw.area.Recognize(ctx, sender, newShapeRecognizer(), func(c []widgets.Candidate, err error) message {
		return recognizedMsg{c, err}
	})
	hw.setResults(nil)
	return hw
}

func (hw *handwriting) resultsSize() geom.Point {
	used := hw.prompt.Size().Y + hw.area.Size().Y
	return geom.Pt(hw.size.X, max(hw.size.Y-used, 0))
}

func (hw *handwriting) setResults(candidates []widgets.Candidate) {
	hw.results = widgets.NewPaged[message](widgets.NewStack[message](hw.resultsSize()))
	hw.results.OnTap(nextPageMsg{})
	for _, c := range candidates {
		line := widgets.NewTextBuilder[message](hw.textSize, hw.font).
			Words(c.Text).
			Space().
			Words(fmt.Sprintf("%.1f%%", c.Score*100)).
			Text()
		widgets.PushStack(hw.results, ui.Widget[message](line))
	}
}

func (hw *handwriting) Size() geom.Point {
	return hw.size
}

func (hw *handwriting) Render(h *ui.Handlers[message], f *ui.Frame) {
	ui.RenderSplit[message](hw.prompt, h, f, geom.Top, 0)
	ui.RenderSplit[message](hw.area, h, f, geom.Top, 0)
	hw.results.Render(h, f)
}

// ruled is a blank pad with a writing line.
type ruled struct {
	size geom.Point
}

func (r ruled) Size() geom.Point {
	return r.size
}

func (r ruled) Render(_ *ui.Handlers[message], f *ui.Frame) {
	f.Draw(widgets.Line{Y: r.size.Y / 2})
}
