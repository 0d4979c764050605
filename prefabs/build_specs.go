package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is an entity prefab: a name plus raw component blocks keyed by
// component name. The entity package decodes each block with DecodeComponentSpec.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func (s *EntityBuildSpec) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Components) == 0 {
		return fmt.Errorf("%s: no components", s.Name)
	}
	return nil
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	if v, ok := any(&out).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (s *TransformComponentSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("transform size must be positive, got %vx%v", s.Width, s.Height)
	}
	return nil
}

type ColliderComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

func (s *ColliderComponentSpec) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("collider size must not be negative, got %vx%v", s.Width, s.Height)
	}
	return nil
}

// AnimationComponentSpec names the asset directory holding the frames and the state to
// start in.
type AnimationComponentSpec struct {
	Assets      string  `yaml:"assets"`
	Initial     string  `yaml:"initial"`
	FrameLength float64 `yaml:"frame_length"`
}

func (s *AnimationComponentSpec) Validate() error {
	if s.Assets == "" {
		return errors.New("animation.assets is required")
	}
	if s.Initial == "" {
		return errors.New("animation.initial is required")
	}
	if s.FrameLength < 0 {
		return fmt.Errorf("animation.frame_length must not be negative, got %v", s.FrameLength)
	}
	return nil
}

type PlayerComponentSpec struct {
	MoveSpeed         float64 `yaml:"move_speed"`
	JumpSpeed         float64 `yaml:"jump_speed"`
	HorizontalDamping float64 `yaml:"horizontal_damping"`
	Facing            string  `yaml:"facing"`
}

func (s *PlayerComponentSpec) Validate() error {
	if s.MoveSpeed < 0 || s.JumpSpeed < 0 {
		return fmt.Errorf("player speeds must not be negative")
	}
	if s.HorizontalDamping < 0 || s.HorizontalDamping > 1 {
		return fmt.Errorf("player.horizontal_damping must be in [0, 1], got %v", s.HorizontalDamping)
	}
	if s.Facing != "" && s.Facing != "left" && s.Facing != "right" {
		return fmt.Errorf("player.facing must be left or right, got %q", s.Facing)
	}
	return nil
}

type EnemyComponentSpec struct {
	Kind          string  `yaml:"kind"`
	BaseVelocityX float64 `yaml:"base_velocity_x"`
}

func (s *EnemyComponentSpec) Validate() error {
	if s.Kind != "cop" && s.Kind != "drone" {
		return fmt.Errorf("enemy.kind must be cop or drone, got %q", s.Kind)
	}
	if s.BaseVelocityX >= 0 {
		return fmt.Errorf("enemy.base_velocity_x must be negative, got %v", s.BaseVelocityX)
	}
	return nil
}
