package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/entity"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// PlatformSpawnSystem places the next platform once the player passes the
// rightmost one, sometimes with a fuel canister on top.
type PlatformSpawnSystem struct {
	spec  *prefabs.GameSpec
	atlas *render.Atlas
	rng   common.Random
	rules DifficultyRules
}

func NewPlatformSpawnSystem(spec *prefabs.GameSpec, atlas *render.Atlas, rng common.Random, rules DifficultyRules) *PlatformSpawnSystem {
	return &PlatformSpawnSystem{spec: spec, atlas: atlas, rng: rng, rules: rules}
}

func (s *PlatformSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session, ok := lookupSession(w)
	if !ok {
		return
	}
	p, ok := lookupPlayer(w)
	if !ok || p.Transform.X <= session.LastPlatform {
		return
	}

	session.LastPlatform += s.rules.Gap(session.PlatformCount)
	platform, err := entity.NewPlatform(w, s.spec, s.atlas, s.rng, session.LastPlatform, session.Platforms)
	if err != nil {
		log.Error("spawn platform", "err", err)
		return
	}
	session.Platforms++

	t, _ := ecs.Get(w, platform, component.TransformComponent.Kind())
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventPlatformSpawned,
		Entity: platform,
		Data:   map[string]any{"x": t.X, "y": t.Y, "score": session.Score()},
	})

	if s.rng.Float(0, 1) < session.FuelChance {
		x := t.X + math.Floor(s.spec.Platform.Width/2)
		y := t.Y - s.spec.Fuel.Lift
		if fuel, err := entity.NewFuel(w, s.spec, s.atlas, x, y); err != nil {
			log.Error("spawn fuel", "err", err)
		} else {
			w.Events().Push(ecs.Event{
				Kind:   ecs.EventFuelSpawned,
				Entity: fuel,
				Data:   map[string]any{"x": x, "y": y, "chance": session.FuelChance},
			})
		}
		session.FuelChance = s.spec.Fuel.BaseChance
	} else {
		session.FuelChance += s.spec.Fuel.ChanceStep
	}

	session.PlatformCount++
}
