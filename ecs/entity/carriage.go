package entity

import (
	"fmt"

	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"github.com/milk9111/cartpole/prefabs"
)

// Carriage holds the entities of an assembled carriage.
type Carriage struct {
	Body     ecs.Entity
	Wheels   []ecs.Entity
	Joiner   ecs.Entity
	Pendulum ecs.Entity
	Joints   []ecs.Entity
}

// NewCarriage assembles the chassis, the pendulum and two wheels from a
// carriage spec. Physical quantities in the world spec are converted into
// pixel space here.
func NewCarriage(w *ecs.World, spec prefabs.CarriageSpec, world prefabs.WorldSpec) (*Carriage, error) {
	units := world.Units()
	density := units.Density(world.Density)

	body, err := NewBlock(w, BlockConfig{
		Length:      spec.Body.Length,
		Height:      spec.Body.Height,
		Transform:   component.Transform{X: spec.X, Y: spec.YZero},
		Restitution: spec.Body.Restitution,
		Friction:    spec.Body.Friction,
		Density:     density,
	})
	if err != nil {
		return nil, fmt.Errorf("carriage: add body: %w", err)
	}
	if err := tag(w, body, component.CarriageTagComponent); err != nil {
		return nil, fmt.Errorf("carriage: tag body: %w", err)
	}
	if err := tag(w, body, component.CameraTargetTagComponent); err != nil {
		return nil, fmt.Errorf("carriage: tag camera target: %w", err)
	}
	if err := ecs.Add(w, body, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return nil, fmt.Errorf("carriage: add input: %w", err)
	}

	c := &Carriage{Body: body}

	pendulum, err := NewPendulum(w, PendulumConfig{
		Length:      spec.Pendulum.Length,
		Height:      spec.Pendulum.Height,
		Tilt:        spec.Pendulum.InitialTilt,
		Restitution: spec.Pendulum.Restitution,
		Friction:    spec.Pendulum.Friction,
		Density:     density,
	}, body)
	if err != nil {
		return nil, fmt.Errorf("carriage: %w", err)
	}
	c.Joiner = pendulum.Joiner
	c.Pendulum = pendulum.Pendulum
	c.Joints = append(c.Joints, pendulum.Joints...)

	drive := component.WheelDrive{
		MaxTorque:          units.Torque(world.Control.MaxTorque),
		MaxAngularVelocity: world.Control.MaxAngularVelocity,
	}
	for _, offset := range []float64{-spec.WheelBase / 2, spec.WheelBase / 2} {
		wheel, joint, err := NewWheel(w, WheelConfig{
			Radius:      spec.Wheel.Radius,
			Transform:   component.Transform{X: spec.X + offset, Y: spec.YZero},
			Restitution: spec.Wheel.Restitution,
			Friction:    spec.Wheel.Friction,
			Density:     density,
			Drive:       drive,
		}, body)
		if err != nil {
			return nil, fmt.Errorf("carriage: %w", err)
		}
		c.Wheels = append(c.Wheels, wheel)
		c.Joints = append(c.Joints, joint)
	}

	return c, nil
}
