package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by specs that can check their own values after decoding.
type Validator interface {
	Validate() error
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	if v, ok := any(&spec).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, fmt.Errorf("prefabs: validate %s: %w", filename, err)
		}
	}

	return spec, nil
}

type PlayAreaSpec struct {
	TileSize    float64 `yaml:"tile_size"`
	WidthTiles  float64 `yaml:"width_tiles"`
	HeightTiles float64 `yaml:"height_tiles"`
}

type PhysicsSpec struct {
	GroundLevel         float64 `yaml:"ground_level"`
	Gravity             float64 `yaml:"gravity"`
	InitialJumpVelocity float64 `yaml:"initial_jump_velocity"`
}

type SpawnerSpec struct {
	GracePeriod float64 `yaml:"grace_period"`
	MinGap      float64 `yaml:"min_gap"`
	MaxGap      float64 `yaml:"max_gap"`
}

type PlacementSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
}

// WorldSpec is world.yaml: the tick rate, run length and every tuning constant shared by
// the systems.
type WorldSpec struct {
	Name     string        `yaml:"name"`
	TickRate int           `yaml:"tick_rate"`
	RunSecs  float64       `yaml:"run_seconds"`
	PlayArea PlayAreaSpec  `yaml:"play_area"`
	Physics  PhysicsSpec   `yaml:"physics"`
	Spawner  SpawnerSpec   `yaml:"spawner"`
	Player   PlacementSpec `yaml:"player"`
	Floor    PlacementSpec `yaml:"floor"`
	Cop      PlacementSpec `yaml:"cop"`
	Drone    PlacementSpec `yaml:"drone"`
}

func (s *WorldSpec) Validate() error {
	var errs []error
	if s.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", s.TickRate))
	}
	if s.RunSecs < 0 {
		errs = append(errs, fmt.Errorf("run_seconds must not be negative, got %v", s.RunSecs))
	}
	if s.PlayArea.TileSize <= 0 || s.PlayArea.WidthTiles <= 0 || s.PlayArea.HeightTiles <= 0 {
		errs = append(errs, errors.New("play_area sizes must be positive"))
	}
	if s.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must not be negative, got %v", s.Physics.Gravity))
	}
	if s.Physics.InitialJumpVelocity < 0 {
		errs = append(errs, fmt.Errorf("physics.initial_jump_velocity must not be negative, got %v", s.Physics.InitialJumpVelocity))
	}
	if s.Spawner.GracePeriod < 0 {
		errs = append(errs, fmt.Errorf("spawner.grace_period must not be negative, got %v", s.Spawner.GracePeriod))
	}
	if s.Spawner.MinGap <= 0 || s.Spawner.MaxGap < s.Spawner.MinGap {
		errs = append(errs, fmt.Errorf("spawner gaps need 0 < min_gap <= max_gap, got %v and %v", s.Spawner.MinGap, s.Spawner.MaxGap))
	}
	for name, p := range map[string]PlacementSpec{"player": s.Player, "floor": s.Floor, "cop": s.Cop, "drone": s.Drone} {
		if p.Prefab == "" {
			errs = append(errs, fmt.Errorf("%s.prefab is required", name))
		}
	}
	return errors.Join(errs...)
}

// TickSeconds is the length of one fixed tick.
func (s *WorldSpec) TickSeconds() float64 {
	return 1 / float64(s.TickRate)
}

// PlayWidth is the play area width in px.
func (s *WorldSpec) PlayWidth() float64 {
	return s.PlayArea.TileSize * s.PlayArea.WidthTiles
}

// PlayHeight is the play area height in px.
func (s *WorldSpec) PlayHeight() float64 {
	return s.PlayArea.TileSize * s.PlayArea.HeightTiles
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
