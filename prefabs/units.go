package prefabs

// Units converts SI quantities into pixel-space quantities. Mass stays in
// kilograms and time in seconds; only length is rescaled.
type Units struct {
	PixelsPerMeter float64
}

// Length converts metres to pixels.
func (u Units) Length(m float64) float64 {
	return m * u.PixelsPerMeter
}

// Acceleration converts m/s² to px/s².
func (u Units) Acceleration(a float64) float64 {
	return a * u.PixelsPerMeter
}

// Density converts kg/m² to kg/px².
func (u Units) Density(d float64) float64 {
	return d / (u.PixelsPerMeter * u.PixelsPerMeter)
}

// Torque converts N·m to kg·px²/s².
func (u Units) Torque(t float64) float64 {
	return t * u.PixelsPerMeter * u.PixelsPerMeter
}
