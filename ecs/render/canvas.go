package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var defaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Canvas is the per-frame render context: the target image, the camera
// offset and the palette. World coordinates passed to its methods are
// shifted by the camera.
type Canvas struct {
	Screen  *ebiten.Image
	CamX    float64
	CamY    float64
	Palette Palette
	Face    text.Face
}

func NewCanvas(screen *ebiten.Image, camX, camY float64, palette Palette) *Canvas {
	return &Canvas{
		Screen:  screen,
		CamX:    math.Floor(camX),
		CamY:    math.Floor(camY),
		Palette: palette,
		Face:    defaultFace,
	}
}

// ToScreen converts a world position to screen pixels.
func (c *Canvas) ToScreen(x, y float64) (float64, float64) {
	return x - c.CamX, y - c.CamY
}

// Clear fills the whole target.
func (c *Canvas) Clear(clr color.Color) {
	c.Screen.Fill(clr)
}

// Blit draws src of img at the world position, mirrored horizontally in
// place when mirror is set.
func (c *Canvas) Blit(img *ebiten.Image, src image.Rectangle, x, y float64, mirror bool) {
	if img == nil || src.Empty() {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	sx, sy := c.ToScreen(x, y)
	op := &ebiten.DrawImageOptions{}
	if mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	op.GeoM.Translate(sx, sy)
	c.Screen.DrawImage(sub, op)
}

// Rect fills a world-space rectangle.
func (c *Canvas) Rect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := c.ToScreen(x, y)
	vector.FillRect(c.Screen, float32(sx), float32(sy), float32(w), float32(h), clr, false)
}

// Line strokes a one pixel world-space line.
func (c *Canvas) Line(x0, y0, x1, y1 float64, clr color.Color) {
	sx0, sy0 := c.ToScreen(x0, y0)
	sx1, sy1 := c.ToScreen(x1, y1)
	vector.StrokeLine(c.Screen, float32(sx0), float32(sy0), float32(sx1), float32(sy1), 1, clr, false)
}

// Text draws s with its top-left corner at the world position.
func (c *Canvas) Text(x, y float64, s string, clr color.Color) {
	sx, sy := c.ToScreen(x, y)
	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.Screen, s, c.Face, op)
}
