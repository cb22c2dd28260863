package component

import "github.com/milk9111/cartpole/control"

// WheelDrive marks a torque-driven wheel and carries its limits.
type WheelDrive struct {
	MaxTorque          float64
	MaxAngularVelocity float64
}

func (d WheelDrive) Limits() control.Limits {
	return control.Limits{MaxTorque: d.MaxTorque, MaxAngularVelocity: d.MaxAngularVelocity}
}

var WheelDriveComponent = NewComponent[WheelDrive]()
