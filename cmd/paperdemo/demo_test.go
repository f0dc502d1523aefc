package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paper/app"
	"github.com/gogpu/paper/display"
	"github.com/gogpu/paper/geom"
	"github.com/gogpu/paper/gesture"
	"github.com/gogpu/paper/ink"
	"github.com/gogpu/paper/ui"
	"github.com/gogpu/paper/widgets"
)

func newTestDemo(t *testing.T) (*demo, *ui.Screen, *ui.Handlers[message]) {
	t.Helper()
	screen := ui.NewScreen(display.NewMemory(702, 936))
	a := app.New[message](screen)
	d := newDemo(context.Background(), screen, a.Sender(), widgets.DefaultFont())
	t.Cleanup(d.Close)
	return d, screen, ui.NewHandlers[message]()
}

func render(t *testing.T, s *ui.Screen, h *ui.Handlers[message], root ui.Widget[message]) {
	t.Helper()
	h.Reset()
	_, err := s.Render(func(f *ui.Frame) { root.Render(h, f) })
	require.NoError(t, err)
}

func tapAt(p geom.Point) ui.Tap {
	pos := gesture.Pos{X: float32(p.X), Y: float32(p.Y)}
	return ui.Tap{Touch: gesture.Touch{Start: pos, End: pos}}
}

func scaled(k *ink.Ink, s float32) *ink.Ink {
	out := ink.New()
	for _, stroke := range k.Strokes() {
		for _, p := range stroke {
			out.Push(p.X*s, p.Y*s, p.T)
		}
		out.PenUp()
	}
	return out
}

func TestGestureTemplatesMatchQuery(t *testing.T) {
	d, screen, h := newTestDemo(t)
	render(t, screen, h, d)

	size := float32(d.gestures.boxSize) / 100
	require.NoError(t, d.update(templateInkedMsg{0, scaled(polyline([][2]float32{{0, 50}, {100, 50}}), size)}))
	require.NoError(t, d.update(templateInkedMsg{1, scaled(circle(50, 50, 40), size)}))
	assert.Len(t, d.gestures.templates, 3)
	assert.Equal(t, -1, d.gestures.best)

	require.NoError(t, d.update(inkedMsg{scaled(circle(50, 50, 30), size)}))
	assert.Equal(t, 1, d.gestures.best)
	render(t, screen, h, d)

	require.NoError(t, d.update(clearTemplateMsg{1}))
	assert.Equal(t, 0, d.gestures.best)
	require.NoError(t, d.update(clearMsg{}))
	assert.Equal(t, -1, d.gestures.best)
	render(t, screen, h, d)
}

func TestTabsSwitchAndRequestFullRefresh(t *testing.T) {
	d, screen, h := newTestDemo(t)
	render(t, screen, h, d)

	var handwriting message
	for y := 0; y < d.headerHeight() && handwriting == nil; y += 2 {
		for x := 0; x < d.size.X && handwriting == nil; x += 4 {
			if msg, ok := h.Query(tapAt(geom.Pt(x, y))); ok {
				if m, ok := msg.(tabMsg); ok && m.tab == handwritingTab {
					handwriting = m
				}
			}
		}
	}
	require.NotNil(t, handwriting, "no handwriting tab in header")
	require.NoError(t, d.update(handwriting))
	assert.Equal(t, handwritingTab, d.current)
	render(t, screen, h, d)
	require.NoError(t, screen.RefreshChanges())
}

func TestRecognizedResultsArePaged(t *testing.T) {
	d, screen, h := newTestDemo(t)
	require.NoError(t, d.update(tabMsg{handwritingTab}))

	var candidates []widgets.Candidate
	for range 60 {
		candidates = append(candidates, widgets.Candidate{Text: "shape", Score: 0.5})
	}
	require.NoError(t, d.update(recognizedMsg{candidates: candidates}))
	pages := len(d.handwriting.results.Pages())
	require.Greater(t, pages, 1)
	render(t, screen, h, d)

	for range pages - 1 {
		require.NoError(t, d.update(nextPageMsg{}))
	}
	assert.Equal(t, pages-1, d.handwriting.results.CurrentIndex())
	require.NoError(t, d.update(nextPageMsg{}))
	assert.Zero(t, d.handwriting.results.CurrentIndex())

	require.NoError(t, d.update(clearMsg{}))
	assert.Len(t, d.handwriting.results.Pages(), 1)
	assert.Zero(t, d.handwriting.results.Last().Len())
}

func TestShapeRecognizer(t *testing.T) {
	r := newShapeRecognizer()
	got, err := r.Recognize(context.Background(), scaled(circle(50, 50, 50), 3))
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "circle", got[0].Text)
	assert.LessOrEqual(t, got[0].Score, 1.0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Recognize(ctx, ink.New())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMemoryBackendWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.png")
	require.NoError(t, run(context.Background(), []string{"-backend", "memory", "-snapshot", path}))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunRejectsUnknownBackend(t *testing.T) {
	assert.Error(t, run(context.Background(), []string{"-backend", "gpu"}))
}

func TestUnexpectedMessage(t *testing.T) {
	d, _, _ := newTestDemo(t)
	assert.Error(t, d.update(42))
}
