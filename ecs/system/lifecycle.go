package system

import (
	"fmt"

	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/entity"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// LifecycleSystem moves the session between playing and dead. It runs ahead
// of the gameplay systems and gates them through Step.
type LifecycleSystem struct {
	spec  *prefabs.GameSpec
	atlas *render.Atlas
	rng   common.Random
}

func NewLifecycleSystem(spec *prefabs.GameSpec, atlas *render.Atlas, rng common.Random) *LifecycleSystem {
	return &LifecycleSystem{spec: spec, atlas: atlas, rng: rng}
}

// Step reports whether the rest of the tick should simulate. It returns
// false while dead, on the tick the player dies and on the tick a restart
// rebuilds the world.
func (s *LifecycleSystem) Step(w *ecs.World) (bool, error) {
	if w == nil {
		return false, nil
	}
	session, ok := lookupSession(w)
	if !ok {
		return false, nil
	}
	p, ok := lookupPlayer(w)
	if !ok {
		return false, nil
	}

	if session.State == component.SessionDead {
		if p.Input.JumpPressed {
			return false, s.Restart(w)
		}
		return false, nil
	}

	if cause, dead := s.deathCause(w, p); dead {
		session.State = component.SessionDead
		session.BestScore = max(session.BestScore, session.Score())
		ecs.ForEach(w, component.BackdropComponent.Kind(), func(_ ecs.Entity, b *component.Backdrop) {
			b.Color = s.spec.Backdrop.Dead.RGBA
		})
		w.Events().Push(ecs.Event{
			Kind:   ecs.EventPlayerDied,
			Entity: p.Entity,
			Data: map[string]any{
				"cause": cause,
				"score": session.Score(),
				"best":  session.BestScore,
			},
		})
		return false, nil
	}
	return true, nil
}

// Restart rebuilds the opening layout, keeping the best score and the fuel
// chance.
func (s *LifecycleSystem) Restart(w *ecs.World) error {
	if _, err := entity.ResetSession(w, s.spec, s.atlas, s.rng); err != nil {
		return fmt.Errorf("lifecycle: restart: %w", err)
	}
	return nil
}

func (s *LifecycleSystem) deathCause(w *ecs.World, p playerState) (string, bool) {
	if p.Transform.Y > s.spec.Player.DeathY {
		return "fell", true
	}
	hit := false
	ecs.ForEach3(w, component.AsteroidComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, _ *component.Asteroid, t *component.Transform, c *component.Collider) {
			if !hit && p.collides(t, c) {
				hit = true
			}
		})
	if hit {
		return "asteroid", true
	}
	return "", false
}

// Dead reports whether the current session has ended.
func Dead(w *ecs.World) bool {
	session, ok := lookupSession(w)
	return ok && session.State == component.SessionDead
}

// Score returns the current score and the best score.
func Score(w *ecs.World) (int, int) {
	session, ok := lookupSession(w)
	if !ok {
		return 0, 0
	}
	return session.Score(), session.BestScore
}
