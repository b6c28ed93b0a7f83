package damage

import (
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

func rect(x0, y0, x1, y1 float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: x0, Hi: x1}, Y: r1.Interval{Lo: y0, Hi: y1}}
}

func TestRowsMark(t *testing.T) {
	tests := []struct {
		name  string
		marks []r2.Rect
		want  []r1.Interval
	}{
		{
			name: "nothing marked",
			want: []r1.Interval{},
		},
		{
			name:  "single band",
			marks: []r2.Rect{rect(0, 2, 10, 5)},
			want:  []r1.Interval{{Lo: 2, Hi: 5}},
		},
		{
			name:  "fractional edges round outwards",
			marks: []r2.Rect{rect(0, 2.5, 10, 4.2)},
			want:  []r1.Interval{{Lo: 2, Hi: 5}},
		},
		{
			name:  "zero height marks one row",
			marks: []r2.Rect{rect(0, 7, 10, 7)},
			want:  []r1.Interval{{Lo: 7, Hi: 8}},
		},
		{
			name:  "overlapping marks coalesce",
			marks: []r2.Rect{rect(0, 1, 10, 4), rect(0, 3, 10, 6)},
			want:  []r1.Interval{{Lo: 1, Hi: 6}},
		},
		{
			name:  "disjoint marks stay apart",
			marks: []r2.Rect{rect(0, 0, 10, 2), rect(0, 8, 10, 9)},
			want:  []r1.Interval{{Lo: 0, Hi: 2}, {Lo: 8, Hi: 9}},
		},
		{
			name:  "clipped to surface",
			marks: []r2.Rect{rect(0, -5, 10, 3), rect(0, 15, 10, 40)},
			want:  []r1.Interval{{Lo: 0, Hi: 3}, {Lo: 15, Hi: 20}},
		},
		{
			name:  "empty rect ignored",
			marks: []r2.Rect{r2.EmptyRect()},
			want:  []r1.Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(10, 20)
			for _, m := range tt.marks {
				r.Mark(m)
			}
			got := r.Spans()
			if len(got) != len(tt.want) {
				t.Fatalf("Spans() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Spans()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRowsBoundsAndReset(t *testing.T) {
	r := New(40, 30)
	if !r.Bounds().IsEmpty() {
		t.Fatalf("fresh tracker should have empty bounds, got %v", r.Bounds())
	}

	r.Mark(rect(5, 3, 6, 4))
	r.Mark(rect(0, 10, 1, 12))
	b := r.Bounds()
	if b.X.Lo != 0 || b.X.Hi != 40 {
		t.Errorf("bounds should be full width, got %v", b.X)
	}
	if b.Y.Lo != 3 || b.Y.Hi != 12 {
		t.Errorf("bounds y = %v, want [3, 12]", b.Y)
	}
	if !r.IsDirty(3) || r.IsDirty(5) || !r.IsDirty(11) {
		t.Errorf("unexpected dirty rows")
	}

	r.Reset()
	if !r.Bounds().IsEmpty() {
		t.Errorf("bounds after Reset = %v, want empty", r.Bounds())
	}

	r.MarkAll()
	b = r.Bounds()
	if b.Y.Lo != 0 || b.Y.Hi != 30 {
		t.Errorf("MarkAll bounds = %v, want [0, 30]", b.Y)
	}
}

func TestRowsZeroSize(t *testing.T) {
	r := New(-1, 0)
	r.Mark(rect(0, 0, 5, 5))
	r.MarkAll()
	if len(r.Spans()) != 0 {
		t.Errorf("zero sized tracker should never be dirty")
	}
	if w, h := r.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %d,%d want 0,0", w, h)
	}
}
