package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/skyclimber/prefabs"
)

func TestPaletteColor(t *testing.T) {
	spec := prefabs.DefaultGameSpec()
	p := NewPalette(spec.Palette)
	if len(p) != 16 {
		t.Fatalf("palette size = %d, want 16", len(p))
	}

	cases := []struct {
		name  string
		index int
		want  color.RGBA
	}{
		{"black", 0, color.RGBA{A: 0xff}},
		{"white", 7, color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}},
		{"negative", -1, color.RGBA{A: 0xff}},
		{"past_end", 99, color.RGBA{A: 0xff}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := p.Color(c.index); got != c.want {
				t.Fatalf("Color(%d) = %v, want %v", c.index, got, c.want)
			}
		})
	}
}

func TestAtlasRegions(t *testing.T) {
	spec := prefabs.DefaultGameSpec()
	a := NewAtlasRegions(&spec)
	if a.Image != nil {
		t.Fatalf("regions-only atlas should not hold an image")
	}
	if a.Platform != image.Rect(0, 16, 64, 19) {
		t.Fatalf("platform region = %v", a.Platform)
	}
	if a.Player.Dx() != 13 || a.Player.Dy() != 11 {
		t.Fatalf("player region = %v", a.Player)
	}
}

func TestCanvasToScreen(t *testing.T) {
	c := NewCanvas(nil, -121.5, -188, nil)
	x, y := c.ToScreen(0, -60)
	if x != 122 || y != 128 {
		t.Fatalf("ToScreen = (%v,%v), want (122,128)", x, y)
	}
}
