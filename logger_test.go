package voronoi

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
		if l.Core().Enabled(level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	s := newTestScene(t)
	s.Resized(50, 40)
	if err := s.Paint(&fakeSurface{}, s.Bounds()); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	s.Release()

	for _, want := range []string{"surface resized", "drawing resources created", "drawing resources released"} {
		if logs.FilterMessage(want).Len() != 1 {
			t.Errorf("expected one %q entry, got %d", want, logs.FilterMessage(want).Len())
		}
	}

	resized := logs.FilterMessage("surface resized").All()
	if len(resized) == 1 {
		fields := resized[0].ContextMap()
		if fields["width"] != int64(50) || fields["height"] != int64(40) {
			t.Errorf("resize fields = %v", fields)
		}
		if fields["site_set"] != s.Sites().ID {
			t.Errorf("site_set = %v, want %v", fields["site_set"], s.Sites().ID)
		}
	}

	SetLogger(nil)
	if Logger().Core().Enabled(zapcore.ErrorLevel) {
		t.Errorf("SetLogger(nil) should go quiet")
	}
}

func TestLoggerWarnsOnResourceFailure(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))

	s := newTestScene(t)
	s.Resized(50, 40)
	if err := s.Paint(&fakeSurface{failAfter: 1}, s.Bounds()); err == nil {
		t.Fatalf("Paint should fail")
	}

	entries := logs.FilterMessage("creating drawing resources failed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d warnings, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["resource"]; got != "sweep line brush" {
		t.Errorf("resource = %v, want sweep line brush", got)
	}
}
