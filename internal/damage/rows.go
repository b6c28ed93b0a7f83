// Package damage tracks which rows of a surface need repainting.
package damage

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Rows records damaged rows of a width x height surface, one bit per row.
// Row i covers y in [i, i+1).
type Rows struct {
	width  int
	height int
	bm     bitmap.Bitmap
}

// New returns a tracker with nothing damaged.
func New(width, height int) *Rows {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Rows{width: width, height: height, bm: bitmap.New(height)}
}

// Size returns the dimensions being tracked
func (r *Rows) Size() (int, int) {
	return r.width, r.height
}

// Mark damages every row rect touches. Anything outside of the surface
// is ignored.
func (r *Rows) Mark(rect r2.Rect) {
	if rect.IsEmpty() || r.height == 0 {
		return
	}
	lo := int(math.Floor(rect.Y.Lo))
	hi := int(math.Ceil(rect.Y.Hi))
	if hi == lo {
		hi = lo + 1
	}
	if lo < 0 {
		lo = 0
	}
	if hi > r.height {
		hi = r.height
	}
	for y := lo; y < hi; y++ {
		r.bm.Set(y, true)
	}
}

// MarkAll damages the whole surface.
func (r *Rows) MarkAll() {
	for y := 0; y < r.height; y++ {
		r.bm.Set(y, true)
	}
}

// Reset clears all damage.
func (r *Rows) Reset() {
	r.bm = bitmap.New(r.height)
}

// IsDirty returns if row y is damaged
func (r *Rows) IsDirty(y int) bool {
	if y < 0 || y >= r.height {
		return false
	}
	return r.bm.Get(y)
}

// Spans returns the damaged rows as contiguous [lo, hi) intervals, top to bottom.
func (r *Rows) Spans() []r1.Interval {
	spans := []r1.Interval{}
	start := -1
	for y := 0; y <= r.height; y++ {
		dirty := y < r.height && r.bm.Get(y)
		if dirty && start < 0 {
			start = y
		} else if !dirty && start >= 0 {
			spans = append(spans, r1.Interval{Lo: float64(start), Hi: float64(y)})
			start = -1
		}
	}
	return spans
}

// Bounds returns a single full width rect covering all damage, or an
// empty rect if nothing is damaged.
func (r *Rows) Bounds() r2.Rect {
	spans := r.Spans()
	if len(spans) == 0 {
		return r2.EmptyRect()
	}
	return r2.Rect{
		X: r1.Interval{Lo: 0, Hi: float64(r.width)},
		Y: r1.Interval{Lo: spans[0].Lo, Hi: spans[len(spans)-1].Hi},
	}
}
