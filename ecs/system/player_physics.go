package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/prefabs"
)

// PlayerPhysicsSystem applies gravity, resolves contact against the nearest
// platform and integrates the player's position in whole pixels.
type PlayerPhysicsSystem struct {
	spec *prefabs.GameSpec
}

func NewPlayerPhysicsSystem(spec *prefabs.GameSpec) *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{spec: spec}
}

func (s *PlayerPhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, ok := lookupPlayer(w)
	if !ok {
		return
	}

	if p.Input.JumpReleased {
		p.Player.FlyCount = 0
	}

	tps := float64(s.spec.Window.TPS)
	p.Velocity.Y += math.Min(1, (float64(p.Player.FallCount)/2/tps)*s.spec.Player.Gravity)
	p.Player.FallCount++

	if t, c, ok := nearestPlatform(w, p.Transform); ok {
		s.resolve(p, t, c)
	}

	p.Transform.Y += common.Round(p.Velocity.Y)
	p.Transform.X += common.Round(p.Velocity.X)
	p.Velocity.X = 0
}

// Only the nearest platform is tested. The player can pass through a
// platform while another one's corner is closer.
func (s *PlayerPhysicsSystem) resolve(p playerState, t *component.Transform, c *component.Collider) {
	if !p.yCollision(t, c) {
		return
	}
	if !p.xCollision(t, c) {
		p.Velocity.X = 0
		return
	}
	if p.Transform.Y+p.Collider.Height <= t.Y {
		// Landed on top.
		p.Transform.Y = t.Y - p.Collider.Height
		p.Velocity.Y = 0
		p.Player.FallCount = 0
		return
	}
	// Head hit the underside.
	p.Transform.Y = t.Y + c.Height
	p.Velocity.Y = 0
	p.Player.FlyCount = 0
}

// nearestPlatform compares top-left corners. Ties go to the lowest index.
func nearestPlatform(w *ecs.World, from *component.Transform) (*component.Transform, *component.Collider, bool) {
	origin := cp.Vector{X: from.X, Y: from.Y}
	var (
		bestT   *component.Transform
		bestC   *component.Collider
		bestIdx int
		bestD   = math.Inf(1)
	)
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, pl *component.Platform, t *component.Transform, c *component.Collider) {
			d := origin.Distance(cp.Vector{X: t.X, Y: t.Y})
			if d < bestD || (d == bestD && pl.Index < bestIdx) {
				bestT, bestC, bestIdx, bestD = t, c, pl.Index, d
			}
		})
	return bestT, bestC, bestT != nil
}
