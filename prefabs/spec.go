package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameSpecFile is the prefab holding every gameplay tuning value.
const GameSpecFile = "game.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type GameSpec struct {
	Window           WindowSpec   `yaml:"window"`
	Player           PlayerSpec   `yaml:"player"`
	Platform         PlatformSpec `yaml:"platform"`
	Fuel             FuelSpec     `yaml:"fuel"`
	Asteroid         AsteroidSpec `yaml:"asteroid"`
	Gauge            GaugeSpec    `yaml:"gauge"`
	Backdrop         BackdropSpec `yaml:"backdrop"`
	Palette          []YAMLColor  `yaml:"palette"`
	Atlas            string       `yaml:"atlas"`
	DifficultyScript string       `yaml:"difficulty_script"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type PlayerSpec struct {
	StartX     float64    `yaml:"start_x"`
	StartY     float64    `yaml:"start_y"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Speed      float64    `yaml:"speed"`
	Gravity    float64    `yaml:"gravity"`
	JumpBase   float64    `yaml:"jump_base"`
	JumpStep   float64    `yaml:"jump_step"`
	JumpCost   float64    `yaml:"jump_cost"`
	DeathY     float64    `yaml:"death_y"`
	Sprite     RegionSpec `yaml:"sprite"`
	FlySprite  RegionSpec `yaml:"fly_sprite"`
	TextColor  int        `yaml:"text_color"`
	LabelColor int        `yaml:"label_color"`
}

type PlatformSpec struct {
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	FirstX    float64    `yaml:"first_x"`
	SecondX   float64    `yaml:"second_x"`
	Slope     float64    `yaml:"slope"`
	Jitter    float64    `yaml:"jitter"`
	BaseGap   float64    `yaml:"base_gap"`
	GapStep   float64    `yaml:"gap_step"`
	LineColor int        `yaml:"line_color"`
	Sprite    RegionSpec `yaml:"sprite"`
}

type FuelSpec struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Amount     float64    `yaml:"amount"`
	StartY     float64    `yaml:"start_y"`
	Lift       float64    `yaml:"lift"`
	BaseChance float64    `yaml:"base_chance"`
	ChanceStep float64    `yaml:"chance_step"`
	Sprite     RegionSpec `yaml:"sprite"`
}

type AsteroidSpec struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Speed        float64    `yaml:"speed"`
	BaseInterval float64    `yaml:"base_interval"`
	Evict        bool       `yaml:"evict"`
	Sprite       RegionSpec `yaml:"sprite"`
}

type GaugeSpec struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Initial     float64 `yaml:"initial"`
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"`
	BorderColor int     `yaml:"border_color"`
	FillColor   int     `yaml:"fill_color"`
}

type BackdropSpec struct {
	Sky  YAMLColor `yaml:"sky"`
	Dusk YAMLColor `yaml:"dusk"`
	Dead YAMLColor `yaml:"dead"`
	// Step is the blend advance per point of score.
	Step float64 `yaml:"step"`
}

// RegionSpec is a rectangle inside the sprite atlas.
type RegionSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", value.Value, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	c.RGBA = color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

func hexColor(r, g, b uint8) YAMLColor {
	return YAMLColor{color.RGBA{R: r, G: g, B: b, A: 0xff}}
}

// DefaultGameSpec returns the built-in tuning. Fields missing from a YAML
// document keep these values.
func DefaultGameSpec() GameSpec {
	return GameSpec{
		Window: WindowSpec{Title: "skyclimber", Width: 256, Height: 256, TPS: 60},
		Player: PlayerSpec{
			StartX: 0, StartY: -60,
			Width: 13, Height: 11,
			Speed:    2,
			Gravity:  0.75,
			JumpBase: 2, JumpStep: 0.05, JumpCost: 0.005,
			DeathY:     20,
			Sprite:     RegionSpec{X: 0, Y: 0, W: 13, H: 11},
			FlySprite:  RegionSpec{X: 16, Y: 0, W: 13, H: 11},
			TextColor:  0,
			LabelColor: 7,
		},
		Platform: PlatformSpec{
			Width: 64, Height: 3,
			FirstX: 0, SecondX: 200,
			Slope: -0.3, Jitter: 0.5,
			BaseGap: 100, GapStep: 20,
			LineColor: 0,
			Sprite:    RegionSpec{X: 0, Y: 16, W: 64, H: 3},
		},
		Fuel: FuelSpec{
			Width: 9, Height: 12,
			Amount: 1,
			StartY: -10, Lift: 9,
			BaseChance: 0.5, ChanceStep: 0.2,
			Sprite: RegionSpec{X: 48, Y: 0, W: 9, H: 12},
		},
		Asteroid: AsteroidSpec{
			Width: 13, Height: 12,
			Speed:        2,
			BaseInterval: 200,
			Evict:        true,
			Sprite:       RegionSpec{X: 32, Y: 0, W: 13, H: 12},
		},
		Gauge: GaugeSpec{
			Width: 10, Height: 50,
			Initial: 0.7,
			OffsetX: -110, OffsetY: 40,
			BorderColor: 3, FillColor: 4,
		},
		Backdrop: BackdropSpec{
			Sky:  hexColor(135, 206, 235),
			Dusk: hexColor(19, 24, 98),
			Dead: hexColor(100, 100, 100),
			Step: 0.05,
		},
		Palette: []YAMLColor{
			hexColor(0x00, 0x00, 0x00), hexColor(0x2b, 0x33, 0x5f),
			hexColor(0x7e, 0x20, 0x72), hexColor(0x19, 0x95, 0x9c),
			hexColor(0x8b, 0x48, 0x52), hexColor(0x39, 0x5c, 0x98),
			hexColor(0xa9, 0xc1, 0xff), hexColor(0xee, 0xee, 0xee),
			hexColor(0xd4, 0x18, 0x6c), hexColor(0xd3, 0x84, 0x41),
			hexColor(0xe9, 0xc3, 0x5b), hexColor(0x70, 0xc6, 0xa9),
			hexColor(0x76, 0x96, 0xde), hexColor(0xa3, 0xa3, 0xa3),
			hexColor(0xff, 0x97, 0x98), hexColor(0x00, 0x00, 0x00),
		},
		Atlas: "atlas.png",
	}
}

// Validate rejects specs the simulation cannot run with.
func (s *GameSpec) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSpec, s.Window.Width, s.Window.Height)
	case s.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidSpec, s.Window.TPS)
	case s.Player.Width <= 0 || s.Player.Height <= 0:
		return fmt.Errorf("%w: player size", ErrInvalidSpec)
	case s.Platform.Width <= 0 || s.Platform.Height <= 0:
		return fmt.Errorf("%w: platform size", ErrInvalidSpec)
	case s.Fuel.Width <= 0 || s.Fuel.Height <= 0:
		return fmt.Errorf("%w: fuel size", ErrInvalidSpec)
	case s.Asteroid.Width <= 0 || s.Asteroid.Height <= 0:
		return fmt.Errorf("%w: asteroid size", ErrInvalidSpec)
	case s.Platform.SecondX <= s.Platform.FirstX:
		return fmt.Errorf("%w: second platform must be right of the first", ErrInvalidSpec)
	case s.Asteroid.BaseInterval <= 0:
		return fmt.Errorf("%w: asteroid base interval %v", ErrInvalidSpec, s.Asteroid.BaseInterval)
	case s.Gauge.Initial < 0 || s.Gauge.Initial > 1:
		return fmt.Errorf("%w: gauge initial %v outside [0,1]", ErrInvalidSpec, s.Gauge.Initial)
	case len(s.Palette) == 0:
		return fmt.Errorf("%w: empty palette", ErrInvalidSpec)
	}
	for _, idx := range []int{s.Player.TextColor, s.Player.LabelColor, s.Platform.LineColor, s.Gauge.BorderColor, s.Gauge.FillColor} {
		if idx < 0 || idx >= len(s.Palette) {
			return fmt.Errorf("%w: palette index %d out of range", ErrInvalidSpec, idx)
		}
	}
	return nil
}

// ParseGameSpec decodes data over the defaults and validates the result.
func ParseGameSpec(data []byte) (*GameSpec, error) {
	spec := DefaultGameSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal game spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadGameSpec reads the tuning from path when set, otherwise from the
// prefab directory on disk or the embedded copy.
func LoadGameSpec(path string) (*GameSpec, error) {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		path = GameSpecFile
		data, err = Load(GameSpecFile)
	}
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := ParseGameSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return spec, nil
}
