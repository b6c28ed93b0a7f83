package voronoi

import (
	"image/color"

	"github.com/golang/geo/r2"
)

// Resource is a device dependent drawing resource. Resources belong to the
// Surface that created them and must be released before that surface is
// torn down or recreated.
type Resource interface {
	Release()
}

// Brush paints with a single solid colour.
type Brush interface {
	Resource
	Colour() color.Color
}

// StrokeStyle describes how lines are stroked. A nil or empty dash pattern
// means a solid line.
type StrokeStyle interface {
	Resource
	Dashes() []float64
}

// Surface is the 2D drawing target the renderer draws through.
// Implementations decide how (and if) a drawing is presented; we only
// ever issue these primitives.
//
// A Scene tells surfaces apart by comparing them with ==, so implementations
// must be comparable: use a pointer type, not a struct value holding slices
// or maps.
type Surface interface {
	// Clear fills the whole surface with c
	Clear(c color.Color)

	// DrawLine strokes a straight line from p0 to p1
	DrawLine(p0, p1 r2.Point, b Brush, width float64, st StrokeStyle)

	// DrawEllipse strokes the outline of an axis aligned ellipse
	DrawEllipse(centre r2.Point, rx, ry float64, b Brush, width float64, st StrokeStyle)

	// CreateSolidBrush makes a brush for this surface. This can fail, eg. if
	// the underlying device has been lost.
	CreateSolidBrush(c color.Color) (Brush, error)

	// CreateStrokeStyle makes a stroke style with an optional dash pattern.
	CreateStrokeStyle(dashes []float64) (StrokeStyle, error)
}

// Framer is implemented by surfaces that batch drawing between
// BeginDraw and EndDraw. EndDraw reports presentation failures.
type Framer interface {
	BeginDraw()
	EndDraw() error
}

// EventHandler is what a host (window, test harness, offscreen renderer)
// calls into. Handlers are invoked one at a time from a single goroutine.
type EventHandler interface {
	// Resized is called when the drawing surface changes size.
	// Returns the region that needs repainting.
	Resized(width, height int) r2.Rect

	// PointerMoved is called whenever the pointer moves over the surface.
	// Returns the region that needs repainting.
	PointerMoved(x, y float64) r2.Rect

	// Paint draws everything intersecting clip on to s.
	Paint(s Surface, clip r2.Rect) error
}
