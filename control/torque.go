// Package control shapes keyboard commands into wheel torques.
package control

import (
	"math"

	"github.com/milk9111/cartpole/common"
)

// Keys is a snapshot of the direction keys for one tick.
type Keys struct {
	Left  bool
	Right bool
	Down  bool
}

// Any reports whether any direction key is held.
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Down
}

// Limits bounds the torque a wheel may receive and the spin it may reach
// under power.
type Limits struct {
	MaxTorque          float64
	MaxAngularVelocity float64
}

// Proportion normalizes an angular velocity into [-1, 1] against the
// maximum angular velocity.
func (l Limits) Proportion(angularVelocity float64) float64 {
	return common.Clamp(angularVelocity/l.MaxAngularVelocity, -1, 1)
}

// Torque returns the torque for the next physics step given the wheel's
// current angular velocity and the keys held this tick.
//
// Left accelerates toward positive (anticlockwise) spin and Right toward
// negative spin, both tapering to zero as the wheel approaches the
// maximum angular velocity in that direction. Down brakes proportionally
// toward zero spin. When several keys are held the later check wins, in
// the order Left, Right, Down.
func Torque(angularVelocity float64, keys Keys, limits Limits) float64 {
	if !keys.Any() {
		return 0
	}

	proportion := limits.Proportion(angularVelocity)
	positiveResidual := 1 - math.Max(proportion, 0)
	negativeResidual := 1 + math.Min(proportion, 0)

	torque := 0.0
	if keys.Left {
		torque = positiveResidual * limits.MaxTorque
	}
	if keys.Right {
		torque = -negativeResidual * limits.MaxTorque
	}
	if keys.Down {
		torque = -proportion * limits.MaxTorque
	}
	return torque
}
