package fynehost

import (
	"image/color"

	"github.com/b-grooters-byte/voronoi"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

type brush struct {
	col color.Color
}

func (b *brush) Colour() color.Color { return b.col }
func (b *brush) Release()            {}

// stroke keeps dashes so callers can inspect them, fyne lines can't dash.
type stroke struct {
	dashes []float64
}

func (s *stroke) Dashes() []float64 { return s.dashes }
func (s *stroke) Release()          {}

// objectSurface turns drawing calls into fyne canvas objects.
type objectSurface struct {
	size    fyne.Size
	objects []fyne.CanvasObject
}

var _ voronoi.Surface = (*objectSurface)(nil)

func pos(p r2.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

// reset drops everything drawn & sets the surface size for the next frame
func (s *objectSurface) reset(size fyne.Size) {
	s.size = size
	s.objects = s.objects[:0]
}

// Objects returns a copy of what's been drawn since the last reset
func (s *objectSurface) Objects() []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, len(s.objects))
	copy(out, s.objects)
	return out
}

// Clear replaces everything drawn so far with a background rect.
func (s *objectSurface) Clear(c color.Color) {
	bg := canvas.NewRectangle(c)
	bg.Resize(s.size)
	s.objects = append(s.objects[:0], bg)
}

func (s *objectSurface) DrawLine(p0, p1 r2.Point, b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	ln := canvas.NewLine(b.Colour())
	ln.StrokeWidth = float32(width)
	ln.Position1 = pos(p0)
	ln.Position2 = pos(p1)
	s.objects = append(s.objects, ln)
}

// DrawEllipse adds a circle object spanning the ellipse's bounding box
func (s *objectSurface) DrawEllipse(centre r2.Point, rx, ry float64, b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	c := canvas.NewCircle(color.Transparent)
	c.StrokeColor = b.Colour()
	c.StrokeWidth = float32(width)
	c.Position1 = pos(r2.Point{X: centre.X - rx, Y: centre.Y - ry})
	c.Position2 = pos(r2.Point{X: centre.X + rx, Y: centre.Y + ry})
	s.objects = append(s.objects, c)
}

func (s *objectSurface) CreateSolidBrush(c color.Color) (voronoi.Brush, error) {
	if c == nil {
		return nil, errors.New("fynehost: create brush: nil colour")
	}
	return &brush{col: c}, nil
}

func (s *objectSurface) CreateStrokeStyle(dashes []float64) (voronoi.StrokeStyle, error) {
	cp := make([]float64, len(dashes))
	copy(cp, dashes)
	return &stroke{dashes: cp}, nil
}
