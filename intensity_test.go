package driftspace

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func TestBaseIntensitySingleAnomaly(t *testing.T) {
	anomaly := []*Vector3{NewVector3(0, 0, 0)}

	testCases := []struct {
		name     string
		camPos   *Vector3
		expected float64
	}{
		{
			name:     "at the anomaly",
			camPos:   NewVector3(0, 0, 0),
			expected: 0.33,
		},
		{
			name:     "half range away",
			camPos:   NewVector3(20, 0, 0),
			expected: 0.165,
		},
		{
			name:     "exactly at range",
			camPos:   NewVector3(40, 0, 0),
			expected: 0,
		},
		{
			name:     "beyond range",
			camPos:   NewVector3(0, 0, 500),
			expected: 0,
		},
		{
			name:     "diagonal inside range",
			camPos:   NewVector3(0, 30, 0),
			expected: (1 - 30.0/40.0) * 0.33,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BaseIntensity(tc.camPos, anomaly)
			if !almostEqual(got, tc.expected) {
				t.Errorf("BaseIntensity = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestBaseIntensityOverlapClamped(t *testing.T) {
	// five anomalies on top of the camera would sum to 1.65 unclamped
	var anomalies []*Vector3
	for i := 0; i < 5; i++ {
		anomalies = append(anomalies, NewVector3(0, 0, 0))
	}
	got := BaseIntensity(NewVector3(0, 0, 0), anomalies)
	if !almostEqual(got, 1.0) {
		t.Errorf("overlapping anomalies gave %v, want clamp to 1", got)
	}
}

func TestBoostDecayReachesFloor(t *testing.T) {
	m := NewIntensityMeter()
	m.TriggerBoost()
	if !almostEqual(m.Boost(), 1.0) {
		t.Fatalf("boost after trigger = %v, want 1", m.Boost())
	}

	camPos := NewVector3(0, 0, 0)
	frames := 0
	for m.Boost() > 0 {
		m.Step(camPos, nil)
		frames++
		if frames > 1000 {
			t.Fatal("boost never reached the floor")
		}
	}
	if frames != 459 {
		t.Errorf("boost reached 0 after %d frames, want 459", frames)
	}

	// idempotent once floored
	m.Step(camPos, nil)
	if m.Boost() != 0 {
		t.Errorf("boost left the floor: %v", m.Boost())
	}
}

func TestStepTotalIsClamped(t *testing.T) {
	m := NewIntensityMeter()
	m.TriggerBoost()
	anomalies := []*Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0)}

	total := m.Step(NewVector3(0, 0, 0), anomalies)
	if total < 0 || total > 1 {
		t.Errorf("total intensity %v outside [0,1]", total)
	}
	if !almostEqual(total, 1.0) {
		t.Errorf("boost plus overlap = %v, want 1", total)
	}
}

func TestStepWithoutBoost(t *testing.T) {
	m := NewIntensityMeter()
	anomalies := []*Vector3{NewVector3(0, 0, 20)}
	got := m.Step(NewVector3(0, 0, 0), anomalies)
	if !almostEqual(got, 0.165) {
		t.Errorf("Step = %v, want 0.165", got)
	}
}
