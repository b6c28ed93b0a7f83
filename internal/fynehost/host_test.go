package fynehost

import (
	"image/color"
	"testing"

	"github.com/b-grooters-byte/voronoi"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/golang/geo/r2"
)

func newScene(t *testing.T) *voronoi.Scene {
	t.Helper()
	cfg := voronoi.DefaultConfig()
	cfg.Seed = 21
	cfg.Sites = 15
	s, err := voronoi.NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestObjectSurface(t *testing.T) {
	s := &objectSurface{}
	s.reset(fyne.NewSize(100, 50))

	b, err := s.CreateSolidBrush(color.White)
	if err != nil {
		t.Fatalf("CreateSolidBrush: %v", err)
	}
	st, _ := s.CreateStrokeStyle([]float64{2, 2})

	s.DrawLine(r2.Point{X: 1, Y: 2}, r2.Point{X: 3, Y: 4}, b, 2, st)
	s.Clear(color.Black)
	if n := len(s.Objects()); n != 1 {
		t.Fatalf("Clear left %d objects, want 1", n)
	}
	if bg, ok := s.Objects()[0].(*canvas.Rectangle); !ok || bg.Size() != fyne.NewSize(100, 50) {
		t.Errorf("background = %#v", s.Objects()[0])
	}

	s.DrawLine(r2.Point{X: 1, Y: 2}, r2.Point{X: 3, Y: 4}, b, 2, st)
	s.DrawEllipse(r2.Point{X: 10, Y: 10}, 3, 2, b, 1, st)

	objs := s.Objects()
	if len(objs) != 3 {
		t.Fatalf("got %d objects, want 3", len(objs))
	}
	ln := objs[1].(*canvas.Line)
	if ln.Position1 != fyne.NewPos(1, 2) || ln.Position2 != fyne.NewPos(3, 4) || ln.StrokeWidth != 2 {
		t.Errorf("line = %v -> %v width %v", ln.Position1, ln.Position2, ln.StrokeWidth)
	}
	c := objs[2].(*canvas.Circle)
	if c.Position1 != fyne.NewPos(7, 8) || c.Position2 != fyne.NewPos(13, 12) {
		t.Errorf("ellipse box = %v -> %v", c.Position1, c.Position2)
	}

	if _, err := s.CreateSolidBrush(nil); err == nil {
		t.Errorf("nil colour should fail")
	}
}

func TestCanvasDrivesHandler(t *testing.T) {
	test.NewTempApp(t)

	scene := newScene(t)
	w := New(scene)
	r := test.WidgetRenderer(w)

	r.Layout(fyne.NewSize(200, 120))
	if width, height := scene.Size(); width != 200 || height != 120 {
		t.Fatalf("scene size = %d,%d want 200,120", width, height)
	}
	if scene.State() != voronoi.Ready {
		t.Errorf("scene state = %v after layout, want ready", scene.State())
	}
	if len(r.Objects()) == 0 {
		t.Fatalf("nothing drawn")
	}

	w.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 80)}})
	if scene.Sweep() != 80 {
		t.Errorf("sweep = %v, want 80", scene.Sweep())
	}

	w.MouseOut()
	if scene.Sweep() != 80 {
		t.Errorf("sweep after MouseOut = %v, want 80", scene.Sweep())
	}
	w.MouseIn(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 90)}})
	if scene.Sweep() != 90 {
		t.Errorf("sweep after MouseIn = %v, want 90", scene.Sweep())
	}

	// background, one circle per site, the sweep line and at least one arc
	if got := len(r.Objects()); got < 2+scene.Sites().Len() {
		t.Errorf("got %d objects, want > %d", got, 1+scene.Sites().Len())
	}
}
