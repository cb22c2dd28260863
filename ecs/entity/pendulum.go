package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
)

// PendulumConfig parameterizes the pendulum block. The joiner block that
// links it to the carriage is Length wide and twice Length tall.
type PendulumConfig struct {
	Length      float64
	Height      float64
	Tilt        float64
	Restitution float64
	Friction    float64
	Density     float64
}

func (cfg PendulumConfig) joinerHeight() float64 {
	return cfg.Length * 2
}

// Pendulum holds the entities of a mounted pendulum.
type Pendulum struct {
	Joiner   ecs.Entity
	Pendulum ecs.Entity
	Joints   []ecs.Entity
}

// PendulumPoses places the joiner so its bottom sits on the carriage
// center and the pendulum so its bottom sits on the joiner's top, rotated
// by the tilt about that pivot.
func PendulumPoses(carriage component.Transform, cfg PendulumConfig) (joiner, pendulum component.Transform) {
	jh := cfg.joinerHeight()
	joiner = component.Transform{X: carriage.X, Y: carriage.Y + jh/2}

	pivotX, pivotY := carriage.X, carriage.Y+jh
	half := cfg.Height / 2
	pendulum = component.Transform{
		X:        pivotX - math.Sin(cfg.Tilt)*half,
		Y:        pivotY + math.Cos(cfg.Tilt)*half,
		Rotation: cfg.Tilt,
	}
	return joiner, pendulum
}

// NewPendulum mounts a joiner on the carriage with a fixed joint and hangs
// the pendulum from the joiner with a revolute joint.
func NewPendulum(w *ecs.World, cfg PendulumConfig, carriage ecs.Entity) (*Pendulum, error) {
	carriageTransform, ok := ecs.Get(w, carriage, component.TransformComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("pendulum: carriage %s has no transform", carriage)
	}
	joinerPose, pendulumPose := PendulumPoses(*carriageTransform, cfg)
	jh := cfg.joinerHeight()

	joiner, err := NewBlock(w, BlockConfig{
		Length:      cfg.Length,
		Height:      jh,
		Transform:   joinerPose,
		Restitution: cfg.Restitution,
		Friction:    cfg.Friction,
		Density:     cfg.Density,
	})
	if err != nil {
		return nil, fmt.Errorf("pendulum: add joiner: %w", err)
	}
	if err := tag(w, joiner, component.JoinerTagComponent); err != nil {
		return nil, fmt.Errorf("pendulum: tag joiner: %w", err)
	}

	pendulum, err := NewBlock(w, BlockConfig{
		Length:      cfg.Length,
		Height:      cfg.Height,
		Transform:   pendulumPose,
		Restitution: cfg.Restitution,
		Friction:    cfg.Friction,
		Density:     cfg.Density,
	})
	if err != nil {
		return nil, fmt.Errorf("pendulum: add pendulum: %w", err)
	}
	if err := tag(w, pendulum, component.PendulumTagComponent); err != nil {
		return nil, fmt.Errorf("pendulum: tag pendulum: %w", err)
	}

	pin, err := NewJoint(w, component.JointFixed, carriage, joiner, cp.Vector{}, cp.Vector{X: 0, Y: -jh / 2})
	if err != nil {
		return nil, fmt.Errorf("pendulum: pin joiner: %w", err)
	}
	pivot, err := NewJoint(w, component.JointRevolute, joiner, pendulum, cp.Vector{X: 0, Y: jh / 2}, cp.Vector{X: 0, Y: -cfg.Height / 2})
	if err != nil {
		return nil, fmt.Errorf("pendulum: pivot pendulum: %w", err)
	}

	return &Pendulum{
		Joiner:   joiner,
		Pendulum: pendulum,
		Joints:   []ecs.Entity{pin, pivot},
	}, nil
}
