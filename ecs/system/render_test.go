package system

import (
	"testing"

	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/entity"
)

func TestDrawOrder(t *testing.T) {
	w := ecs.NewWorld()
	for _, layer := range []int{component.LayerHazard, component.LayerPickup, component.LayerPlayer, component.LayerPlatform, component.LayerHazard} {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: float64(layer)})
		_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	}
	// No sprite, never drawn.
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})

	items := drawOrder(w)
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].layer > items[i].layer {
			t.Fatalf("items out of order at %d: %d > %d", i, items[i-1].layer, items[i].layer)
		}
	}
}

func TestLastTwoPlatforms(t *testing.T) {
	w, spec := newTestWorld(t)
	if _, err := entity.NewPlatform(w, spec, nil, stubRandom{}, 320, 2); err != nil {
		t.Fatalf("NewPlatform: %v", err)
	}

	prev, last, ok := lastTwoPlatforms(w)
	if !ok {
		t.Fatalf("expected two platforms")
	}
	if prev.index != 1 || prev.x+prev.w != 264 || last.index != 2 || last.x != 320 {
		t.Fatalf("unexpected platforms %+v %+v", prev, last)
	}

	if _, _, ok := lastTwoPlatforms(ecs.NewWorld()); ok {
		t.Fatalf("empty world has no platforms")
	}
}
