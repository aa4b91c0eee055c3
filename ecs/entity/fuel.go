package entity

import (
	"fmt"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// NewFuel drops a fuel canister with its top-left corner at (x, y).
func NewFuel(w *ecs.World, spec *prefabs.GameSpec, atlas *render.Atlas, x, y float64) (ecs.Entity, error) {
	fuel := ecs.CreateEntity(w)
	if err := ecs.Add(w, fuel, component.PickupComponent.Kind(), &component.Pickup{
		Kind:   component.PickupKindFuel,
		Amount: spec.Fuel.Amount,
	}); err != nil {
		return 0, fmt.Errorf("fuel: add pickup: %w", err)
	}
	if err := ecs.Add(w, fuel, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("fuel: add transform: %w", err)
	}
	if err := ecs.Add(w, fuel, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Fuel.Width,
		Height: spec.Fuel.Height,
	}); err != nil {
		return 0, fmt.Errorf("fuel: add collider: %w", err)
	}
	if err := addSprite(w, fuel, atlas, component.LayerPickup, func(a *render.Atlas) *component.Sprite {
		return &component.Sprite{Image: a.Image, Source: a.Fuel}
	}); err != nil {
		return 0, fmt.Errorf("fuel: %w", err)
	}
	return fuel, nil
}

// NewFuelGauge creates the jetpack gauge at its initial level.
func NewFuelGauge(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	gauge := ecs.CreateEntity(w)
	if err := ecs.Add(w, gauge, component.FuelGaugeComponent.Kind(), &component.FuelGauge{
		Level:       spec.Gauge.Initial,
		Width:       spec.Gauge.Width,
		Height:      spec.Gauge.Height,
		BorderColor: spec.Gauge.BorderColor,
		FillColor:   spec.Gauge.FillColor,
	}); err != nil {
		return 0, fmt.Errorf("fuel gauge: add gauge: %w", err)
	}
	return gauge, nil
}
