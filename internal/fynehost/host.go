// Package fynehost shows a voronoi.EventHandler in a fyne window.
//
// Pointer movement over the widget is forwarded as PointerMoved, layout
// changes as Resized. Fyne rebuilds a widget's objects as a whole, so every
// refresh paints the full surface rather than the returned dirty rect.
package fynehost

import (
	"github.com/b-grooters-byte/voronoi"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// Canvas is a widget that hosts an EventHandler
type Canvas struct {
	widget.BaseWidget
	handler voronoi.EventHandler
	minSize fyne.Size
}

var (
	_ fyne.Widget       = (*Canvas)(nil)
	_ desktop.Hoverable = (*Canvas)(nil)
)

// New returns a widget driving h
func New(h voronoi.EventHandler) *Canvas {
	c := &Canvas{handler: h, minSize: fyne.NewSize(300, 300)}
	c.ExtendBaseWidget(c)
	return c
}

// SetMinSize sets the smallest size the widget asks for
func (c *Canvas) SetMinSize(size fyne.Size) {
	c.minSize = size
	c.Refresh()
}

// MouseIn moves the sweep line to where the pointer entered
func (c *Canvas) MouseIn(e *desktop.MouseEvent) {
	c.pointer(e.Position)
}

// MouseMoved moves the sweep line to follow the pointer
func (c *Canvas) MouseMoved(e *desktop.MouseEvent) {
	c.pointer(e.Position)
}

// MouseOut leaves the sweep line where it was last seen
func (c *Canvas) MouseOut() {}

func (c *Canvas) pointer(p fyne.Position) {
	dirty := c.handler.PointerMoved(float64(p.X), float64(p.Y))
	if dirty.IsEmpty() {
		return
	}
	c.Refresh()
}

// CreateRenderer returns a renderer painting the handler into canvas objects
func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	return &renderer{canvas: c, surf: &objectSurface{}}
}

type renderer struct {
	canvas *Canvas
	surf   *objectSurface
	size   fyne.Size
}

// Layout tells the handler about the new size & repaints.
func (r *renderer) Layout(size fyne.Size) {
	if size != r.size {
		r.size = size
		r.canvas.handler.Resized(int(size.Width), int(size.Height))
	}
	r.paint()
}

func (r *renderer) MinSize() fyne.Size {
	return r.canvas.minSize
}

func (r *renderer) Refresh() {
	r.paint()
	canvas.Refresh(r.canvas)
}

func (r *renderer) Objects() []fyne.CanvasObject {
	return r.surf.Objects()
}

func (r *renderer) Destroy() {
	if rel, ok := r.canvas.handler.(interface{ Release() }); ok {
		rel.Release()
	}
}

func (r *renderer) paint() {
	r.surf.reset(r.size)
	full := r2.Rect{
		X: r1.Interval{Lo: 0, Hi: float64(r.size.Width)},
		Y: r1.Interval{Lo: 0, Hi: float64(r.size.Height)},
	}
	if err := r.canvas.handler.Paint(r.surf, full); err != nil {
		voronoi.Logger().Warn("paint failed", zap.Error(err))
	}
}

// Run opens a window showing h & blocks until it is closed.
func Run(title string, h voronoi.EventHandler, width, height float32) {
	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(width, height))
	w.SetContent(New(h))
	w.ShowAndRun()
}
