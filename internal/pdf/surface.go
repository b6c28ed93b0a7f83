// Package pdf implements a voronoi.Surface that draws vector output into a
// single page PDF sized to the scene.
package pdf

import (
	"image/color"
	"io"
	"os"

	"github.com/b-grooters-byte/voronoi"

	"github.com/golang/geo/r2"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type brush struct {
	col color.Color
}

func (b *brush) Colour() color.Color { return b.col }
func (b *brush) Release()            {}

type stroke struct {
	dashes []float64
}

func (s *stroke) Dashes() []float64 { return s.dashes }
func (s *stroke) Release()          {}

// Surface draws on to one PDF page, units are points so one scene pixel
// is one point.
type Surface struct {
	doc    *gofpdf.Fpdf
	width  float64
	height float64
	clips  int
	done   bool
}

var (
	_ voronoi.Surface = (*Surface)(nil)
	_ voronoi.Framer  = (*Surface)(nil)
	_ voronoi.Clipper = (*Surface)(nil)
)

// New returns a surface with a single page of width x height points.
func New(width, height int) *Surface {
	w, h := float64(width), float64(height)
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetLineCapStyle("round")
	doc.AddPage()

	return &Surface{doc: doc, width: w, height: h}
}

func rgb(c color.Color) (int, int, int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}

// Clear paints the whole page with c
func (s *Surface) Clear(c color.Color) {
	s.doc.SetFillColor(rgb(c))
	s.doc.Rect(0, 0, s.width, s.height, "F")
}

// DrawLine strokes a line from p0 to p1
func (s *Surface) DrawLine(p0, p1 r2.Point, b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	s.setStroke(b, width, st)
	s.doc.Line(p0.X, p0.Y, p1.X, p1.Y)
}

// DrawEllipse strokes an ellipse outline
func (s *Surface) DrawEllipse(centre r2.Point, rx, ry float64, b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	s.setStroke(b, width, st)
	s.doc.Ellipse(centre.X, centre.Y, rx, ry, 0, "D")
}

func (s *Surface) setStroke(b voronoi.Brush, width float64, st voronoi.StrokeStyle) {
	if b != nil {
		s.doc.SetDrawColor(rgb(b.Colour()))
	}
	s.doc.SetLineWidth(width)
	if st != nil && len(st.Dashes()) > 0 {
		s.doc.SetDashPattern(st.Dashes(), 0)
	} else {
		s.doc.SetDashPattern([]float64{}, 0)
	}
}

// CreateSolidBrush returns a brush for c
func (s *Surface) CreateSolidBrush(c color.Color) (voronoi.Brush, error) {
	if s.done {
		return nil, errors.Wrap(voronoi.ErrSurfaceLost, "pdf: create brush")
	}
	if c == nil {
		return nil, errors.New("pdf: create brush: nil colour")
	}
	return &brush{col: c}, nil
}

// CreateStrokeStyle returns a stroke style with the given dash pattern
func (s *Surface) CreateStrokeStyle(dashes []float64) (voronoi.StrokeStyle, error) {
	if s.done {
		return nil, errors.Wrap(voronoi.ErrSurfaceLost, "pdf: create stroke style")
	}
	cp := make([]float64, len(dashes))
	copy(cp, dashes)
	return &stroke{dashes: cp}, nil
}

// PushClip restricts drawing to r
func (s *Surface) PushClip(r r2.Rect) {
	s.doc.ClipRect(r.X.Lo, r.Y.Lo, r.X.Length(), r.Y.Length(), false)
	s.clips++
}

// PopClip undoes the last PushClip
func (s *Surface) PopClip() {
	if s.clips == 0 {
		return
	}
	s.clips--
	s.doc.ClipEnd()
}

// BeginDraw is a no-op
func (s *Surface) BeginDraw() {}

// EndDraw returns any error gofpdf has collected while drawing.
func (s *Surface) EndDraw() error {
	if s.done {
		return errors.Wrap(voronoi.ErrSurfaceLost, "pdf: end draw")
	}
	return errors.Wrap(s.doc.Error(), "pdf: end draw")
}

// Output closes the document & writes it to w. The surface can't be drawn
// on afterwards.
func (s *Surface) Output(w io.Writer) error {
	if s.done {
		return errors.Wrap(voronoi.ErrSurfaceLost, "pdf: output")
	}
	s.done = true
	return errors.Wrap(s.doc.Output(w), "pdf: output")
}

// Save writes the document to fpath, see Output.
func (s *Surface) Save(fpath string) error {
	f, err := os.Create(fpath)
	if err != nil {
		return errors.Wrap(err, "pdf: save")
	}
	defer f.Close()

	if err := s.Output(f); err != nil {
		return err
	}
	voronoi.Logger().Debug("pdf saved", zap.String("path", fpath))
	return errors.Wrap(f.Close(), "pdf: save")
}
