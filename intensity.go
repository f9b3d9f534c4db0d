package driftspace

// IntensityMeter derives the global intensity scalar. Only the frame loop
// writes it: base proximity term recomputed from scratch each frame, plus a
// pill boost that decays geometrically.
type IntensityMeter struct {
	boost float64
}

func NewIntensityMeter() *IntensityMeter {
	return &IntensityMeter{}
}

// BaseIntensity sums per-anomaly contributions: anomalies farther than
// anomalyRange contribute nothing, one at distance zero contributes
// anomalyGain. The sum is clamped to 1.
func BaseIntensity(camPos *Vector3, anomalies []*Vector3) float64 {
	total := 0.0
	for _, a := range anomalies {
		d := camPos.DistanceTo(a)
		if d >= anomalyRange {
			continue
		}
		total += (1 - d/anomalyRange) * anomalyGain
	}
	return clampF(total, 0, 1)
}

// Step decays the boost and returns this frame's total intensity.
func (m *IntensityMeter) Step(camPos *Vector3, anomalies []*Vector3) float64 {
	m.boost *= boostDecay
	if m.boost < boostFloor {
		m.boost = 0
	}
	total := BaseIntensity(camPos, anomalies) + m.boost
	return clampF(total, 0, 1)
}

// TriggerBoost resets the pill boost to full.
func (m *IntensityMeter) TriggerBoost() {
	m.boost = 1.0
}

func (m *IntensityMeter) Boost() float64 {
	return m.boost
}
