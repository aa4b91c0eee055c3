package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/milk9111/skyclimber/prefabs"
)

// DifficultyRules shapes how a run escalates.
type DifficultyRules interface {
	// Gap is the distance from the last platform to the next one.
	Gap(platformCount int) float64
	// AsteroidInterval is the number of ticks between asteroid spawns once
	// platforms have been placed. Zero or less disables spawning.
	AsteroidInterval(platforms int) float64
}

// StandardRules widens gaps linearly and shortens the asteroid interval as
// the run grows.
type StandardRules struct {
	BaseGap      float64
	GapStep      float64
	BaseInterval float64
}

func NewStandardRules(spec *prefabs.GameSpec) StandardRules {
	return StandardRules{
		BaseGap:      spec.Platform.BaseGap,
		GapStep:      spec.Platform.GapStep,
		BaseInterval: spec.Asteroid.BaseInterval,
	}
}

func (r StandardRules) Gap(platformCount int) float64 {
	return r.BaseGap + float64(platformCount)*r.GapStep
}

func (r StandardRules) AsteroidInterval(platforms int) float64 {
	if platforms <= 1 {
		return 0
	}
	return r.BaseInterval / float64(platforms-1)
}

// ScriptRules evaluates a tengo script that reads platform_count and
// platforms and assigns gap and interval. A failing script logs once and
// falls back to the standard rules.
type ScriptRules struct {
	name     string
	compiled *tengo.Compiled
	fallback StandardRules
	failed   bool
}

func NewScriptRules(name string, src []byte, fallback StandardRules) (*ScriptRules, error) {
	script := tengo.NewScript(src)
	_ = script.Add("platform_count", 1)
	_ = script.Add("platforms", 2)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("difficulty: compile %s: %w", name, err)
	}

	r := &ScriptRules{name: name, compiled: compiled, fallback: fallback}
	if _, _, err := r.eval(1, 2); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ScriptRules) eval(platformCount, platforms int) (float64, float64, error) {
	if err := r.compiled.Set("platform_count", platformCount); err != nil {
		return 0, 0, err
	}
	if err := r.compiled.Set("platforms", platforms); err != nil {
		return 0, 0, err
	}
	if err := r.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("difficulty: run %s: %w", r.name, err)
	}
	for _, name := range []string{"gap", "interval"} {
		if !r.compiled.IsDefined(name) {
			return 0, 0, fmt.Errorf("difficulty: %s does not define %q", r.name, name)
		}
	}
	gap, interval := r.compiled.Get("gap").Float(), r.compiled.Get("interval").Float()
	if gap <= 0 {
		return 0, 0, fmt.Errorf("difficulty: %s gap %v must be positive", r.name, gap)
	}
	return gap, interval, nil
}

func (r *ScriptRules) warn(err error) {
	if r.failed {
		return
	}
	r.failed = true
	log.Warn("difficulty script failed, using standard rules", "script", r.name, "err", err)
}

// Platforms always exceed platform_count by one within a run.
func (r *ScriptRules) Gap(platformCount int) float64 {
	gap, _, err := r.eval(platformCount, platformCount+1)
	if err != nil {
		r.warn(err)
		return r.fallback.Gap(platformCount)
	}
	return gap
}

func (r *ScriptRules) AsteroidInterval(platforms int) float64 {
	_, interval, err := r.eval(platforms-1, platforms)
	if err != nil {
		r.warn(err)
		return r.fallback.AsteroidInterval(platforms)
	}
	return interval
}

// LoadDifficultyRules returns the script named by the spec, or the standard
// rules when none is set.
func LoadDifficultyRules(spec *prefabs.GameSpec) (DifficultyRules, error) {
	standard := NewStandardRules(spec)
	if spec.DifficultyScript == "" {
		return standard, nil
	}
	src, err := prefabs.LoadScript(spec.DifficultyScript)
	if err != nil {
		return nil, fmt.Errorf("difficulty: load %s: %w", spec.DifficultyScript, err)
	}
	return NewScriptRules(spec.DifficultyScript, src, standard)
}
