package component

import "github.com/jakecoffman/cp"

// FuelGauge is the jetpack resource. Level stays within [0,1].
type FuelGauge struct {
	Level  float64
	Width  float64
	Height float64
	// Palette indices for the frame and the fill.
	BorderColor int
	FillColor   int
}

var FuelGaugeComponent = NewComponent[FuelGauge]()

// Reduce drains x, never going below empty.
func (g *FuelGauge) Reduce(x float64) {
	g.Level = cp.Clamp01(g.Level - x)
}

// Augment adds x, never going above full.
func (g *FuelGauge) Augment(x float64) {
	g.Level = cp.Clamp01(g.Level + x)
}

// Empty reports whether no fuel is left.
func (g *FuelGauge) Empty() bool {
	return g.Level <= 0
}
