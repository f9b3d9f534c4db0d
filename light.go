package driftspace

import "math"

// PulseLight drives the shading level of an anomaly zone. The level breathes
// on a fixed sine and climbs with the global intensity.
type PulseLight struct {
	base    float64
	gain    float64
	elapsed float64
	level   float64
}

func NewPulseLight(base, gain float64) *PulseLight {
	return &PulseLight{
		base:  base,
		gain:  gain,
		level: base,
	}
}

func (l *PulseLight) Update(elapsed, intensity float64) {
	l.elapsed += elapsed
	l.level = l.base + l.gain*intensity + 0.5*math.Sin(3*l.elapsed)
}

// Level is the shading multiplier fed into the painter.
func (l *PulseLight) Level() float64 {
	return l.level
}
