package component

// Player holds the kinematic counters that shape gravity and jump impulse.
type Player struct {
	// FallCount counts ticks since the last landing or jump; it ramps gravity.
	FallCount int
	// FlyCount counts consecutive jump ticks since the jump key was released.
	FlyCount int
	// Direction is the last horizontal heading, +1 right or -1 left.
	Direction int
}

var PlayerComponent = NewComponent[Player]()
