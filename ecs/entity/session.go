package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/skyclimber/common"
	"github.com/milk9111/skyclimber/ecs"
	"github.com/milk9111/skyclimber/ecs/component"
	"github.com/milk9111/skyclimber/ecs/render"
	"github.com/milk9111/skyclimber/prefabs"
)

// Carry is the state that outlives a single run.
type Carry struct {
	BestScore  int
	FuelChance float64
}

// NewCarry returns the carry of a fresh process.
func NewCarry(spec *prefabs.GameSpec) Carry {
	return Carry{FuelChance: spec.Fuel.BaseChance}
}

// NewSession creates the session singleton in the playing state.
func NewSession(w *ecs.World, spec *prefabs.GameSpec, carry Carry) (ecs.Entity, error) {
	session := ecs.CreateEntity(w)
	if err := ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{
		State:         component.SessionPlaying,
		LastPlatform:  spec.Platform.SecondX,
		PlatformCount: 1,
		Platforms:     2,
		FuelChance:    carry.FuelChance,
		BestScore:     carry.BestScore,
	}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}
	if err := ecs.Add(w, session, component.BackdropComponent.Kind(), &component.Backdrop{
		Color: spec.Backdrop.Sky.RGBA,
	}); err != nil {
		return 0, fmt.Errorf("session: add backdrop: %w", err)
	}
	return session, nil
}

// BuildSession populates an empty world with the opening layout: the player,
// two platforms, one fuel canister on the first platform, the gauge and the
// camera already focused on the player.
func BuildSession(w *ecs.World, spec *prefabs.GameSpec, atlas *render.Atlas, rng common.Random, carry Carry) (ecs.Entity, error) {
	session, err := NewSession(w, spec, carry)
	if err != nil {
		return 0, err
	}

	player, err := NewPlayer(w, spec, atlas)
	if err != nil {
		return 0, err
	}
	for i, x := range []float64{spec.Platform.FirstX, spec.Platform.SecondX} {
		if _, err := NewPlatform(w, spec, atlas, rng, x, i); err != nil {
			return 0, err
		}
	}
	fuelX := spec.Platform.FirstX + math.Floor(spec.Platform.Width/2)
	if _, err := NewFuel(w, spec, atlas, fuelX, spec.Fuel.StartY); err != nil {
		return 0, err
	}
	if _, err := NewFuelGauge(w, spec); err != nil {
		return 0, err
	}

	camera, err := NewCamera(w, spec)
	if err != nil {
		return 0, err
	}
	cam, _ := ecs.Get(w, camera, component.CameraComponent.Kind())
	camT, _ := ecs.Get(w, camera, component.TransformComponent.Kind())
	camT.X, camT.Y = cam.Focus(spec.Player.StartX, spec.Player.StartY, spec.Player.Width, spec.Player.Height)

	w.Events().Push(ecs.Event{
		Kind:   ecs.EventSessionStarted,
		Entity: player,
		Data: map[string]any{
			"best_score":  carry.BestScore,
			"fuel_chance": carry.FuelChance,
		},
	})
	return session, nil
}

// CarryFrom reads the surviving state from the world's session, falling back
// to a fresh carry when there is none.
func CarryFrom(w *ecs.World, spec *prefabs.GameSpec) Carry {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return NewCarry(spec)
	}
	s, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return Carry{
		BestScore:  max(s.BestScore, s.Score()),
		FuelChance: s.FuelChance,
	}
}

// ResetSession discards every entity and rebuilds the opening layout,
// keeping the best score and the fuel chance.
func ResetSession(w *ecs.World, spec *prefabs.GameSpec, atlas *render.Atlas, rng common.Random) (ecs.Entity, error) {
	carry := CarryFrom(w, spec)
	ecs.Clear(w)
	return BuildSession(w, spec, atlas, rng, carry)
}
