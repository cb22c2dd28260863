package system

import (
	"log/slog"

	"github.com/milk9111/cartpole/ecs"
	"github.com/milk9111/cartpole/ecs/component"
	"github.com/milk9111/cartpole/telemetry"
)

// TelemetrySystem samples the carriage, pendulum and wheels once per tick.
type TelemetrySystem struct {
	recorder *telemetry.Recorder
	dt       float64
	tick     int
	logger   *slog.Logger
}

func NewTelemetrySystem(recorder *telemetry.Recorder, dt float64, logger *slog.Logger) *TelemetrySystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &TelemetrySystem{recorder: recorder, dt: dt, logger: logger}
}

func (ts *TelemetrySystem) Update(w *ecs.World) {
	if ts == nil || w == nil {
		return
	}

	sample := telemetry.Sample{
		Tick: ts.tick,
		Time: float64(ts.tick) * ts.dt,
	}
	ts.tick++

	if e, ok := ecs.First(w, component.CarriageTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			sample.CarriageX = t.X
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			sample.CarriageVelocity = v.X
		}
	}
	if e, ok := ecs.First(w, component.PendulumTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			sample.PendulumAngle = t.Rotation
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			sample.PendulumAngularVelocity = v.Angular
		}
	}

	wheel := 0
	ecs.ForEach3(w,
		component.WheelDriveComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ExternalForceComponent.Kind(),
		func(e ecs.Entity, _ *component.WheelDrive, vel *component.Velocity, force *component.ExternalForce) {
			switch wheel {
			case 0:
				sample.LeftWheelAngularVelocity = vel.Angular
				sample.LeftTorque = force.Torque
			case 1:
				sample.RightWheelAngularVelocity = vel.Angular
				sample.RightTorque = force.Torque
			}
			wheel++

			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				ts.logger.Debug("wheel altitude", "tick", sample.Tick, "wheel", e, "y", t.Y)
			}
		})

	if ts.recorder == nil {
		return
	}
	if err := ts.recorder.Record(sample); err != nil {
		ts.logger.Error("telemetry: record sample", "tick", sample.Tick, "error", err)
	}
}
