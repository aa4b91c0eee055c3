package system

import (
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
)

// PickupCollectSystem removes every pickup the player touches and applies
// its effect.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, ok := lookupPlayer(w)
	if !ok {
		return
	}
	gauge, ok := lookupGauge(w)
	if !ok {
		return
	}

	pt, pc := p.Transform, p.Collider
	ecs.ForEach3(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, pickup *component.Pickup, t *component.Transform, c *component.Collider) {
			if !intersects(pt.X, pt.Y, pc.Width, pc.Height, t.X, t.Y, c.Width, c.Height) {
				return
			}
			switch pickup.Kind {
			case component.PickupKindFuel:
				gauge.Augment(pickup.Amount)
			}
			w.Events().Push(ecs.Event{
				Kind:   ecs.EventFuelCollected,
				Entity: e,
				Data:   map[string]any{"x": t.X, "y": t.Y, "level": gauge.Level},
			})
			ecs.DestroyEntity(w, e)
		})
}
