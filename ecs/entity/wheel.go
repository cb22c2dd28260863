package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"golang.org/x/image/colornames"
)

var WheelColor = colornames.Blue

type WheelConfig struct {
	Radius      float64
	Transform   component.Transform
	Restitution float64
	Friction    float64
	Density     float64
	Drive       component.WheelDrive
}

// NewWheel spawns a torque-driven wheel and hinges it to the carriage. The
// hinge sits on the carriage at the wheel's horizontal offset from the
// carriage center.
func NewWheel(w *ecs.World, cfg WheelConfig, carriage ecs.Entity) (wheel, joint ecs.Entity, err error) {
	carriageTransform, ok := ecs.Get(w, carriage, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, fmt.Errorf("wheel: carriage %s has no transform", carriage)
	}

	layer := component.CollisionLayer{
		Category: component.CollisionGroupWheel,
		Mask:     component.CollisionGroupGround,
	}
	body := component.PhysicsBody{
		Kind:       component.ShapeCircle,
		Radius:     cfg.Radius,
		Density:    cfg.Density,
		Friction:   cfg.Friction,
		Elasticity: cfg.Restitution,
	}
	render := component.ShapeRender{
		Kind:   component.ShapeCircle,
		Radius: cfg.Radius,
		Color:  WheelColor,
		Spoke:  true,
		Layer:  1,
	}

	wheel, err = newDynamicBody(w, cfg.Transform, body, layer, render)
	if err != nil {
		return 0, 0, fmt.Errorf("wheel: %w", err)
	}
	drive := cfg.Drive
	if err := ecs.Add(w, wheel, component.WheelDriveComponent.Kind(), &drive); err != nil {
		return 0, 0, fmt.Errorf("wheel: add drive: %w", err)
	}

	axis := cp.Vector{X: cfg.Transform.X - carriageTransform.X, Y: 0}
	joint, err = NewJoint(w, component.JointRevolute, carriage, wheel, axis, cp.Vector{})
	if err != nil {
		return 0, 0, fmt.Errorf("wheel: %w", err)
	}
	return wheel, joint, nil
}
