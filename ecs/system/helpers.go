package system

import (
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
)

// playerState bundles the player's components. Lookups fail when any part is
// missing.
type playerState struct {
	Entity    ecs.Entity
	Player    *component.Player
	Transform *component.Transform
	Velocity  *component.Velocity
	Collider  *component.Collider
	Input     *component.Input
}

func lookupPlayer(w *ecs.World) (playerState, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return playerState{}, false
	}
	p := playerState{Entity: e}
	var okP, okT, okV, okC, okI bool
	p.Player, okP = ecs.Get(w, e, component.PlayerComponent.Kind())
	p.Transform, okT = ecs.Get(w, e, component.TransformComponent.Kind())
	p.Velocity, okV = ecs.Get(w, e, component.VelocityComponent.Kind())
	p.Collider, okC = ecs.Get(w, e, component.ColliderComponent.Kind())
	p.Input, okI = ecs.Get(w, e, component.InputComponent.Kind())
	return p, okP && okT && okV && okC && okI
}

func lookupSession(w *ecs.World) (*component.Session, bool) {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.SessionComponent.Kind())
}

func lookupGauge(w *ecs.World) (*component.FuelGauge, bool) {
	e, ok := ecs.First(w, component.FuelGaugeComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.FuelGaugeComponent.Kind())
}

// intersects is a strict AABB overlap test; touching edges do not count.
func intersects(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax+aw > bx && ax < bx+bw && ay+ah > by && ay < by+bh
}

// xCollision reports whether the player's horizontal span overlaps the
// object's once the player's current horizontal velocity is applied.
func (p playerState) xCollision(t *component.Transform, c *component.Collider) bool {
	return p.Transform.X+p.Collider.Width > t.X+p.Velocity.X &&
		p.Transform.X < t.X+c.Width+p.Velocity.X
}

// yCollision is the vertical counterpart of xCollision.
func (p playerState) yCollision(t *component.Transform, c *component.Collider) bool {
	return t.Y < p.Transform.Y+p.Collider.Height+p.Velocity.Y &&
		t.Y+c.Height > p.Transform.Y+p.Velocity.Y
}

func (p playerState) collides(t *component.Transform, c *component.Collider) bool {
	return p.xCollision(t, c) && p.yCollision(t, c)
}
