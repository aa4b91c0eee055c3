package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/entity"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// AsteroidSpawnSystem drops an asteroid above and behind the player whenever
// the asteroid clock hits a multiple of the current interval.
type AsteroidSpawnSystem struct {
	spec  *prefabs.GameSpec
	atlas *render.Atlas
	rng   common.Random
	rules DifficultyRules
}

func NewAsteroidSpawnSystem(spec *prefabs.GameSpec, atlas *render.Atlas, rng common.Random, rules DifficultyRules) *AsteroidSpawnSystem {
	return &AsteroidSpawnSystem{spec: spec, atlas: atlas, rng: rng, rules: rules}
}

func (s *AsteroidSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session, ok := lookupSession(w)
	if !ok {
		return
	}
	p, ok := lookupPlayer(w)
	if !ok {
		return
	}

	interval := s.rules.AsteroidInterval(session.Platforms)
	if interval <= 0 || math.Mod(float64(session.AsteroidCount), interval) != 0 {
		return
	}

	width := float64(s.spec.Window.Width)
	x := float64(s.rng.Int(int(common.Round(p.Transform.X-width)), int(common.Round(p.Transform.X))))
	y := p.Transform.Y - float64(s.spec.Window.Height)/2
	asteroid, err := entity.NewAsteroid(w, s.spec, s.atlas, x, y)
	if err != nil {
		log.Error("spawn asteroid", "err", err)
		return
	}
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventAsteroidSpawned,
		Entity: asteroid,
		Data:   map[string]any{"x": x, "y": y, "interval": interval},
	})
}
