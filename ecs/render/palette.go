package render

import (
	"image/color"

	"github.com/milk9111/skyclimber/prefabs"
	"golang.org/x/image/colornames"
)

// Palette is an indexed color table in the style of fantasy consoles.
type Palette []color.RGBA

func NewPalette(colors []prefabs.YAMLColor) Palette {
	p := make(Palette, len(colors))
	for i, c := range colors {
		p[i] = c.RGBA
	}
	return p
}

// Color returns palette entry i, or black when i is out of range.
func (p Palette) Color(i int) color.RGBA {
	if i < 0 || i >= len(p) {
		return colornames.Black
	}
	return p[i]
}
