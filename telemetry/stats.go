package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a recorded run.
type Summary struct {
	Ticks             int
	Duration          float64
	AngleMean         float64
	AngleStdDev       float64
	AngleMaxAbs       float64
	CarriageTravel    float64
	MeanAbsTorque     float64
	UprightFraction   float64
	FinalCarriageX    float64
	FinalPendulumTilt float64
}

// UprightLimit is the largest tilt, in radians, still counted as upright.
const UprightLimit = math.Pi / 6

// Summarize computes run statistics. An empty run yields a zero Summary.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	angles := Angles(samples)
	torques := make([]float64, len(samples))
	upright := 0
	for i, s := range samples {
		torques[i] = (math.Abs(s.LeftTorque) + math.Abs(s.RightTorque)) / 2
		if math.Abs(s.PendulumAngle) <= UprightLimit {
			upright++
		}
	}

	first, last := samples[0], samples[len(samples)-1]
	sum := Summary{
		Ticks:             len(samples),
		Duration:          last.Time - first.Time,
		AngleMaxAbs:       maxAbs(angles),
		CarriageTravel:    last.CarriageX - first.CarriageX,
		MeanAbsTorque:     stat.Mean(torques, nil),
		UprightFraction:   float64(upright) / float64(len(samples)),
		FinalCarriageX:    last.CarriageX,
		FinalPendulumTilt: last.PendulumAngle,
	}
	if len(angles) > 1 {
		sum.AngleMean, sum.AngleStdDev = stat.MeanStdDev(angles, nil)
	} else {
		sum.AngleMean = angles[0]
	}
	return sum
}

// Angles extracts the pendulum angle series.
func Angles(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.PendulumAngle
	}
	return out
}

func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
