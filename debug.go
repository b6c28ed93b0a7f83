package voronoi

import (
	"image/color"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

func coord(p r2.Point) model2d.Coord {
	return model2d.Coord{X: p.X, Y: p.Y}
}

// DebugRender rasterises the raw arc geometry & site markers to a PNG at
// fpath, without going through a Surface. Handy for checking what
// BeachLines produced independent of any drawing backend.
func DebugRender(fpath string, bounds r2.Rect, sites []Site, arcs []Arc) error {
	if bounds.IsEmpty() || bounds.X.Length() == 0 || bounds.Y.Length() == 0 {
		return errors.New("debug render: empty bounds")
	}

	bg := model2d.NewRect(coord(bounds.Lo()), coord(bounds.Hi()))
	objects := []interface{}{bg}
	colours := []color.Color{color.Gray{Y: 0xff}}

	if len(sites) > 0 {
		radius := math.Max(2, math.Max(bounds.X.Length(), bounds.Y.Length())/200)
		points := model2d.JoinedSolid{}
		for _, s := range sites {
			points = append(points, &model2d.Circle{Center: coord(s.Point), Radius: radius})
		}
		objects = append(objects, model2d.IntersectedSolid{points.Optimize(), bg})
		colours = append(colours, color.RGBA{B: 0xff, A: 0xff})
	}

	segments := []*model2d.Segment{}
	for _, arc := range arcs {
		for _, seg := range arc.Segments {
			segments = append(segments, &model2d.Segment{coord(seg[0]), coord(seg[1])})
		}
	}
	if len(segments) > 0 {
		objects = append(objects, model2d.NewMeshSegments(segments))
		colours = append(colours, color.RGBA{R: 0xff, A: 0xff})
	}

	return errors.Wrap(model2d.RasterizeColor(fpath, objects, colours, 1.0), "debug render")
}

// DebugRender writes the current sites & arcs to fpath, see DebugRender.
func (s *Scene) DebugRender(fpath string) error {
	return DebugRender(fpath, s.Bounds(), s.sites.Sites, s.Arcs())
}
