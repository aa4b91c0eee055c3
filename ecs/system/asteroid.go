package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/prefabs"
)

// AsteroidSystem advances the asteroid clock and moves every asteroid along
// its velocity. Asteroids a full view below the death line can never reach
// the player again and are dropped when eviction is on.
type AsteroidSystem struct {
	spec *prefabs.GameSpec
}

func NewAsteroidSystem(spec *prefabs.GameSpec) *AsteroidSystem {
	return &AsteroidSystem{spec: spec}
}

func (s *AsteroidSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if session, ok := lookupSession(w); ok {
		session.AsteroidCount++
	}

	limit := s.spec.Player.DeathY + float64(s.spec.Window.Height)
	ecs.ForEach2(w, component.AsteroidComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Asteroid, t *component.Transform) {
		pos := cp.Vector{X: t.X, Y: t.Y}.Add(a.Velocity)
		t.X, t.Y = pos.X, pos.Y
		if s.spec.Asteroid.Evict && t.Y > limit {
			ecs.DestroyEntity(w, e)
		}
	})
}
