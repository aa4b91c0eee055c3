package common

import (
	"image/color"
	"math"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpRGB blends two opaque colors channel by channel, truncating toward zero.
func LerpRGB(from, to color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(Lerp(float64(from.R), float64(to.R), t)),
		G: uint8(Lerp(float64(from.G), float64(to.G), t)),
		B: uint8(Lerp(float64(from.B), float64(to.B), t)),
		A: 0xff,
	}
}

// Round rounds half to even, so 0.5 -> 0 and 1.5 -> 2.
func Round(x float64) float64 {
	return math.RoundToEven(x)
}
