// Package telemetry records per-tick simulation samples, writes them as
// CSV and summarizes runs.
package telemetry

// Sample is the simulation state after one tick.
type Sample struct {
	Tick                      int     `csv:"tick"`
	Time                      float64 `csv:"time"`
	CarriageX                 float64 `csv:"carriage_x"`
	CarriageVelocity          float64 `csv:"carriage_vx"`
	PendulumAngle             float64 `csv:"pendulum_angle"`
	PendulumAngularVelocity   float64 `csv:"pendulum_angvel"`
	LeftWheelAngularVelocity  float64 `csv:"left_wheel_angvel"`
	RightWheelAngularVelocity float64 `csv:"right_wheel_angvel"`
	LeftTorque                float64 `csv:"left_torque"`
	RightTorque               float64 `csv:"right_torque"`
}

// Sink receives every recorded sample.
type Sink interface {
	Write(s Sample) error
}

// Recorder keeps recorded samples in memory and forwards them to an
// optional sink. A positive limit keeps only the most recent samples.
type Recorder struct {
	samples []Sample
	limit   int
	sink    Sink
}

func NewRecorder(limit int, sink Sink) *Recorder {
	return &Recorder{limit: limit, sink: sink}
}

func (r *Recorder) Record(s Sample) error {
	if r == nil {
		return nil
	}
	r.samples = append(r.samples, s)
	if r.limit > 0 && len(r.samples) > r.limit {
		r.samples = append(r.samples[:0], r.samples[len(r.samples)-r.limit:]...)
	}
	if r.sink == nil {
		return nil
	}
	return r.sink.Write(s)
}

// Samples returns the retained samples, oldest first.
func (r *Recorder) Samples() []Sample {
	if r == nil {
		return nil
	}
	return append([]Sample(nil), r.samples...)
}

// Last returns the most recent sample.
func (r *Recorder) Last() (Sample, bool) {
	if r == nil || len(r.samples) == 0 {
		return Sample{}, false
	}
	return r.samples[len(r.samples)-1], true
}
