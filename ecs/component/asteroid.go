package component

import "github.com/jakecoffman/cp"

// Asteroid drifts at a constant velocity and kills the player on contact.
type Asteroid struct {
	Velocity cp.Vector
}

var AsteroidComponent = NewComponent[Asteroid]()
