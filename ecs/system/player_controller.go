package system

import (
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/prefabs"
)

// PlayerControllerSystem turns held keys into velocity and jetpack thrust.
type PlayerControllerSystem struct {
	spec *prefabs.GameSpec
}

func NewPlayerControllerSystem(spec *prefabs.GameSpec) *PlayerControllerSystem {
	return &PlayerControllerSystem{spec: spec}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
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

	// Right is applied last and wins when both are held.
	if p.Input.Left {
		p.Velocity.X = -s.spec.Player.Speed
		p.Player.Direction = -1
	}
	if p.Input.Right {
		p.Velocity.X = s.spec.Player.Speed
		p.Player.Direction = 1
	}

	if p.Input.Jump && !gauge.Empty() {
		gauge.Reduce(s.spec.Player.JumpCost)
		p.Velocity.Y = -s.spec.Player.Gravity * (s.spec.Player.JumpBase + float64(p.Player.FlyCount)*s.spec.Player.JumpStep)
		p.Player.FlyCount++
		p.Player.FallCount = 0
	}

	if p.Input.Refuel {
		gauge.Augment(1)
	}
}
