package entity

import (
	"fmt"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		ViewWidth:  float64(spec.Window.Width),
		ViewHeight: float64(spec.Window.Height),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	return camera, nil
}
