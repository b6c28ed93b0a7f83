package voronoi

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// MaxSamples is the most samples BeachLines takes across a range, per site.
// Ranges needing more than this at the given step produce no arcs.
const MaxSamples = 1 << 20

// Segment is a straight line between two points.
type Segment [2]r2.Point

// Arc is the piecewise linear approximation of one site's parabola.
type Arc struct {
	Site     Site      `json:"site"`
	Segments []Segment `json:"segments"`
}

// Parabola returns the y value at x of the parabola with focus site and
// directrix y = sweepY. ok is false if there is no such parabola
// (the site sits on the sweep line) or the result isn't finite.
func Parabola(site r2.Point, sweepY, x float64) (float64, bool) {
	d := site.Y - sweepY
	if d == 0 {
		return 0, false
	}
	dx := x - site.X
	y := dx*dx/(2*d) + (site.Y+sweepY)/2
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return y, true
}

// SampleRange returns the horizontal range to sample for the given clip
// rect. We widen by one step either side so arcs don't stop short of
// the clip edge.
func SampleRange(clip r2.Rect, step float64) r1.Interval {
	if clip.IsEmpty() || !(step > 0) {
		return r1.EmptyInterval()
	}
	return clip.X.Expanded(step)
}

// BeachLines approximates the arc of every site the sweep line hasn't reached
// yet (site.Y < sweepY). Each arc is sampled every `step` across xr and
// contains the segments between consecutive samples that are on screen, that is:
//   - nothing is emitted until a sample lands within (0, sweepY)
//   - after that each sample adds a segment from the previous sample
//   - the first sample with y < 0 after that ends the arc
//
// Sites with no visible samples are omitted. Degenerate input (no sites,
// bad step, empty range, more than MaxSamples samples, site on the sweep
// line) produces nothing rather than non-finite points.
func BeachLines(sites []Site, sweepY float64, xr r1.Interval, step float64) []Arc {
	if !validSampling(sweepY, xr, step) {
		return nil
	}

	var arcs []Arc
	for _, site := range sites {
		if !(site.Y < sweepY) {
			continue
		}
		segs := sampleArc(site.Point, sweepY, xr, step)
		if len(segs) == 0 {
			continue
		}
		arcs = append(arcs, Arc{Site: site, Segments: segs})
	}
	return arcs
}

// validSampling rejects non-finite values & anything needing more than
// MaxSamples samples.
func validSampling(sweepY float64, xr r1.Interval, step float64) bool {
	for _, v := range []float64{sweepY, xr.Lo, xr.Hi, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if !(step > 0) || xr.IsEmpty() {
		return false
	}
	return xr.Length()/step < MaxSamples
}

// sampleArc does the sampling for a single site
func sampleArc(site r2.Point, sweepY float64, xr r1.Interval, step float64) []Segment {
	var (
		segs      []Segment
		prev      r2.Point
		rendering bool
	)

	// x from i, never accumulated
	for i := 0; ; i++ {
		x := xr.Lo + float64(i)*step
		if x > xr.Hi {
			break
		}

		y, ok := Parabola(site, sweepY, x)
		if !ok {
			break
		}
		cur := r2.Point{X: x, Y: y}

		if !rendering {
			if y > 0 && y < sweepY {
				rendering = true
				prev = cur
			}
			continue
		}

		if y < 0 {
			break
		}
		segs = append(segs, Segment{prev, cur})
		prev = cur
	}

	return segs
}

// DrawBeachLines issues one DrawLine per segment of every arc.
func DrawBeachLines(s Surface, arcs []Arc, b Brush, width float64, st StrokeStyle) {
	for _, arc := range arcs {
		for _, seg := range arc.Segments {
			s.DrawLine(seg[0], seg[1], b, width, st)
		}
	}
}
