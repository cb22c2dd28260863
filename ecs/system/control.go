package system

import (
	"github.com/milk9111/cartpole/control"
	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
)

// WheelControlSystem turns the current input into a torque on every
// driven wheel for the next physics step.
type WheelControlSystem struct{}

func NewWheelControlSystem() *WheelControlSystem {
	return &WheelControlSystem{}
}

func (s *WheelControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var keys control.Keys
	if e, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			keys = input.Keys()
		}
	}

	ecs.ForEach3(w,
		component.WheelDriveComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ExternalForceComponent.Kind(),
		func(e ecs.Entity, drive *component.WheelDrive, vel *component.Velocity, force *component.ExternalForce) {
			force.Torque = control.Torque(vel.Angular, keys, drive.Limits())
		})
}
