package encoding

import (
	"image/color"
)

// Split32 uint32 to two uint16
func Split32(in uint32) (uint16, uint16) {
	return uint16(in >> 16), uint16(in)
}

// Merge16 two uint16 to uint32
func Merge16(a, b uint16) uint32 {
	return (uint32(a) << 16) + uint32(b)
}

// Split16 uint16 to two uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}

// PackRGBA squashes a colour into 32 bits, 8 bits per (non premultiplied)
// channel, R in the most significant byte.
// Handy as a map key for caching per colour resources.
func PackRGBA(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Merge16(Merge8(n.R, n.G), Merge8(n.B, n.A))
}

// UnpackRGBA is the inverse of PackRGBA
func UnpackRGBA(in uint32) color.NRGBA {
	rg, ba := Split32(in)
	r, g := Split16(rg)
	b, a := Split16(ba)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
