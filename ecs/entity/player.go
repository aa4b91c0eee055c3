package entity

import (
	"fmt"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// NewPlayer spawns the climber at the spec's start position facing right.
func NewPlayer(w *ecs.World, spec *prefabs.GameSpec, atlas *render.Atlas) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{Direction: 1}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Player.StartX,
		Y: spec.Player.StartY,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, player, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Player.Width,
		Height: spec.Player.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := addSprite(w, player, atlas, component.LayerPlayer, func(a *render.Atlas) *component.Sprite {
		return &component.Sprite{Image: a.Image, Source: a.Player, Alt: a.PlayerFly}
	}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return player, nil
}

// addSprite attaches a render layer and, when the atlas carries an image, a
// sprite. Headless worlds pass a nil atlas.
func addSprite(w *ecs.World, e ecs.Entity, atlas *render.Atlas, layer int, sprite func(*render.Atlas) *component.Sprite) error {
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	if atlas == nil || atlas.Image == nil {
		return nil
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite(atlas)); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
