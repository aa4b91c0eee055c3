package component

import "image/color"

//go:generate go tool stringer -type=SessionState -trimprefix=Session

// SessionState is the lifecycle state of a run.
type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionDead
)

// Session is the per-run bookkeeping singleton.
type Session struct {
	State SessionState
	// AsteroidCount counts playing ticks; it gates asteroid cadence.
	AsteroidCount int
	// LastPlatform is the X of the rightmost platform.
	LastPlatform float64
	// PlatformCount starts at 1 and grows by one per spawned platform. It
	// widens the gap to the next platform.
	PlatformCount int
	// Platforms is the number of platforms placed this run.
	Platforms int
	// FuelChance is the probability that the next platform carries fuel.
	FuelChance float64
	// BestScore is the highest score of any finished run.
	BestScore int
}

var SessionComponent = NewComponent[Session]()

// Score is the number of platforms placed beyond the two starting ones.
func (s *Session) Score() int {
	return s.Platforms - 2
}

// Backdrop is the clear color of the frame.
type Backdrop struct {
	Color color.RGBA
}

var BackdropComponent = NewComponent[Backdrop]()
