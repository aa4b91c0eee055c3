package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/prefabs"
)

// BackgroundSystem darkens the sky toward dusk as the score grows.
type BackgroundSystem struct {
	spec *prefabs.GameSpec
}

func NewBackgroundSystem(spec *prefabs.GameSpec) *BackgroundSystem {
	return &BackgroundSystem{spec: spec}
}

func (s *BackgroundSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session, ok := lookupSession(w)
	if !ok {
		return
	}
	t := cp.Clamp01(s.spec.Backdrop.Step * float64(session.Score()))
	clr := common.LerpRGB(s.spec.Backdrop.Sky.RGBA, s.spec.Backdrop.Dusk.RGBA, t)
	ecs.ForEach(w, component.BackdropComponent.Kind(), func(_ ecs.Entity, b *component.Backdrop) {
		b.Color = clr
	})
}
