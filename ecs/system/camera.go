package system

import (
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
)

// CameraSystem keeps the player centred in the view.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, ok := lookupPlayer(w)
	if !ok {
		return
	}
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, t *component.Transform) {
		t.X, t.Y = cam.Focus(p.Transform.X, p.Transform.Y, p.Collider.Width, p.Collider.Height)
	})
}
