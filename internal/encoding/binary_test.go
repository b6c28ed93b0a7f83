package encoding

import (
	"image/color"
	"testing"
)

func TestSplitMerge(t *testing.T) {
	a, b := Split32(0xDEADBEEF)
	if a != 0xDEAD || b != 0xBEEF {
		t.Errorf("Split32 = %x %x", a, b)
	}
	if got := Merge16(a, b); got != 0xDEADBEEF {
		t.Errorf("Merge16 = %x", got)
	}

	h, l := Split16(0xBEEF)
	if h != 0xBE || l != 0xEF {
		t.Errorf("Split16 = %x %x", h, l)
	}
	if got := Merge8(h, l); got != 0xBEEF {
		t.Errorf("Merge8 = %x", got)
	}
}

func TestPackRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want uint32
	}{
		{"opaque red", color.NRGBA{R: 255, A: 255}, 0xFF0000FF},
		{"transparent", color.NRGBA{}, 0x00000000},
		{"white", color.White, 0xFFFFFFFF},
		{"mixed", color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PackRGBA(tt.in)
			if got != tt.want {
				t.Fatalf("PackRGBA = %08x, want %08x", got, tt.want)
			}
			back := UnpackRGBA(got)
			if PackRGBA(back) != got {
				t.Errorf("UnpackRGBA(%08x) = %v does not pack back", got, back)
			}
		})
	}
}
