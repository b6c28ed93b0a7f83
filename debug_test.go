package voronoi

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDebugRender(t *testing.T) {
	s := newTestScene(t)
	s.Resized(120, 80)
	s.PointerMoved(0, 70)

	fpath := filepath.Join(t.TempDir(), "debug.png")
	if err := s.DebugRender(fpath); err != nil {
		t.Fatalf("DebugRender: %v", err)
	}

	f, err := os.Open(fpath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a png: %v", err)
	}
}

func TestDebugRenderEmptyBounds(t *testing.T) {
	s := newTestScene(t)
	if err := s.DebugRender(filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Errorf("DebugRender of an unsized scene should fail")
	}
}
