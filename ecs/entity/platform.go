package entity

import (
	"fmt"

	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// PlatformY draws a platform height for x. The mean rises linearly with x
// (slope is negative) and the draw spreads by jitter around it.
func PlatformY(spec *prefabs.PlatformSpec, rng common.Random, x float64) float64 {
	y := spec.Slope * x
	return common.Round(rng.Float(y*(1-spec.Jitter), y*(1+spec.Jitter)))
}

// NewPlatform places the index-th platform of the run at x.
func NewPlatform(w *ecs.World, spec *prefabs.GameSpec, atlas *render.Atlas, rng common.Random, x float64, index int) (ecs.Entity, error) {
	platform := ecs.CreateEntity(w)
	if err := ecs.Add(w, platform, component.PlatformComponent.Kind(), &component.Platform{Index: index}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	if err := ecs.Add(w, platform, component.TransformComponent.Kind(), &component.Transform{
		X: x,
		Y: PlatformY(&spec.Platform, rng, x),
	}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, platform, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Platform.Width,
		Height: spec.Platform.Height,
	}); err != nil {
		return 0, fmt.Errorf("platform: add collider: %w", err)
	}
	if err := addSprite(w, platform, atlas, component.LayerPlatform, func(a *render.Atlas) *component.Sprite {
		return &component.Sprite{Image: a.Image, Source: a.Platform}
	}); err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	return platform, nil
}
