// Package raster implements a voronoi.Surface that draws into an in memory
// RGBA image, which can then be saved as a PNG.
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/b-grooters-byte/voronoi"
	"github.com/b-grooters-byte/voronoi/internal/encoding"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// brush is a reference counted solid colour, shared by everyone asking
// for the same colour.
type brush struct {
	parent *Surface
	key    uint32
	col    color.NRGBA
	refs   int
}

// Colour returns the brush colour
func (b *brush) Colour() color.Color {
	return b.col
}

// Release drops one reference, the last one evicts the brush from the cache.
func (b *brush) Release() {
	b.refs--
	if b.refs > 0 {
		return
	}
	if cached, ok := b.parent.brushes[b.key]; ok && cached == b {
		delete(b.parent.brushes, b.key)
	}
}

// stroke is a stroke style, gg takes dashes directly so there's nothing
// to hold on to.
type stroke struct {
	dashes []float64
}

func (s *stroke) Dashes() []float64 { return s.dashes }
func (s *stroke) Release()          {}

// Surface draws with a gg.Context.
type Surface struct {
	ctx     *gg.Context
	brushes map[uint32]*brush
	clips   []r2.Rect
	lost    bool
}

var (
	_ voronoi.Surface = (*Surface)(nil)
	_ voronoi.Framer  = (*Surface)(nil)
	_ voronoi.Clipper = (*Surface)(nil)
)

// New returns a transparent surface of the given size.
func New(width, height int) *Surface {
	ctx := gg.NewContextForRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
	ctx.SetRGBA(0, 0, 0, 0)
	ctx.Clear()

	return &Surface{
		ctx:     ctx,
		brushes: map[uint32]*brush{},
	}
}

// Size returns the surface dimensions
func (s *Surface) Size() (int, int) {
	return s.ctx.Width(), s.ctx.Height()
}

// Image returns what has been drawn so far
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// CachedBrushes returns how many distinct brushes are alive
func (s *Surface) CachedBrushes() int {
	return len(s.brushes)
}

// Clear fills the current clip rect (or everything if there isn't one)
// with c. gg's own Clear ignores clipping, so we fill instead.
func (s *Surface) Clear(c color.Color) {
	s.ctx.SetColor(c)
	if len(s.clips) == 0 {
		s.ctx.Clear()
		return
	}
	r := s.clips[len(s.clips)-1]
	s.ctx.DrawRectangle(r.X.Lo, r.Y.Lo, r.X.Length(), r.Y.Length())
	s.ctx.Fill()
}

// DrawLine strokes a line from p0 to p1
func (s *Surface) DrawLine(p0, p1 r2.Point, b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	s.setStroke(b, width, st)
	s.ctx.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	s.ctx.Stroke()
}

// DrawEllipse strokes an ellipse outline
func (s *Surface) DrawEllipse(centre r2.Point, rx, ry float64, b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	s.setStroke(b, width, st)
	s.ctx.DrawEllipse(centre.X, centre.Y, rx, ry)
	s.ctx.Stroke()
}

// setStroke prepares the context for stroking with the given settings
func (s *Surface) setStroke(b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	if b != nil {
		s.ctx.SetColor(b.Colour())
	}
	s.ctx.SetLineWidth(width)
	s.ctx.SetLineCapRound()
	if st != nil && len(st.Dashes()) > 0 {
		s.ctx.SetDash(st.Dashes()...)
	} else {
		s.ctx.SetDash()
	}
}

// CreateSolidBrush returns a (possibly shared) brush for c
func (s *Surface) CreateSolidBrush(c color.Color) (voronoi.Brush, error) {
	if s.lost {
		return nil, errors.Wrap(voronoi.ErrSurfaceLost, "raster: create brush")
	}
	if c == nil {
		return nil, errors.New("raster: create brush: nil colour")
	}

	key := encoding.PackRGBA(c)
	b, ok := s.brushes[key]
	if !ok {
		b = &brush{parent: s, key: key, col: encoding.UnpackRGBA(key)}
		s.brushes[key] = b
	}
	b.refs++
	return b, nil
}

// CreateStrokeStyle returns a stroke style with the given dash pattern
func (s *Surface) CreateStrokeStyle(dashes []float64) (voronoi.StrokeStyle, error) {
	if s.lost {
		return nil, errors.Wrap(voronoi.ErrSurfaceLost, "raster: create stroke style")
	}
	cp := make([]float64, len(dashes))
	copy(cp, dashes)
	return &stroke{dashes: cp}, nil
}

// PushClip restricts drawing to r until the matching PopClip.
func (s *Surface) PushClip(r r2.Rect) {
	s.ctx.Push()
	s.ctx.DrawRectangle(r.X.Lo, r.Y.Lo, r.X.Length(), r.Y.Length())
	s.ctx.Clip()
	s.clips = append(s.clips, r)
}

// PopClip undoes the last PushClip
func (s *Surface) PopClip() {
	if len(s.clips) == 0 {
		return
	}
	s.clips = s.clips[:len(s.clips)-1]
	s.ctx.Pop()
}

// BeginDraw is a no-op, we draw straight into the image
func (s *Surface) BeginDraw() {}

// EndDraw reports if the surface was closed while drawing
func (s *Surface) EndDraw() error {
	if s.lost {
		return errors.Wrap(voronoi.ErrSurfaceLost, "raster: end draw")
	}
	return nil
}

// Close marks the surface as gone, further resource creation fails.
func (s *Surface) Close() {
	voronoi.Logger().Debug("raster surface closed", zap.Int("cached_brushes", len(s.brushes)))
	s.lost = true
	s.brushes = map[uint32]*brush{}
}

// SavePNG writes the image to fpath
func (s *Surface) SavePNG(fpath string) error {
	return errors.Wrap(s.ctx.SavePNG(fpath), "raster: save png")
}

// EncodePNG writes the image to w
func (s *Surface) EncodePNG(w io.Writer) error {
	return errors.Wrap(s.ctx.EncodePNG(w), "raster: encode png")
}
