package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// NewAsteroid spawns an asteroid drifting down and to the right.
func NewAsteroid(w *ecs.World, spec *prefabs.GameSpec, atlas *render.Atlas, x, y float64) (ecs.Entity, error) {
	asteroid := ecs.CreateEntity(w)
	if err := ecs.Add(w, asteroid, component.AsteroidComponent.Kind(), &component.Asteroid{
		Velocity: cp.Vector{X: spec.Asteroid.Speed, Y: spec.Asteroid.Speed},
	}); err != nil {
		return 0, fmt.Errorf("asteroid: add asteroid: %w", err)
	}
	if err := ecs.Add(w, asteroid, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("asteroid: add transform: %w", err)
	}
	if err := ecs.Add(w, asteroid, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Asteroid.Width,
		Height: spec.Asteroid.Height,
	}); err != nil {
		return 0, fmt.Errorf("asteroid: add collider: %w", err)
	}
	if err := addSprite(w, asteroid, atlas, component.LayerHazard, func(a *render.Atlas) *component.Sprite {
		return &component.Sprite{Image: a.Image, Source: a.Asteroid}
	}); err != nil {
		return 0, fmt.Errorf("asteroid: %w", err)
	}
	return asteroid, nil
}
