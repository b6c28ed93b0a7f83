package voronoi

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// ColourScheme defines how the various parts of a scene should be coloured.
type ColourScheme struct {
	Background color.Color
	Sites      color.Color
	Sweep      color.Color
	BeachLine  color.Color
}

// DefaultScheme returns a reasonable default ColourScheme, light lines
// on black (as the surface is cleared to black).
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.Black,
		Sites:      colornames.White,
		Sweep:      colornames.Crimson,
		BeachLine:  colornames.Lightskyblue,
	}
}
