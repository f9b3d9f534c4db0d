package driftspace

import "testing"

func TestBackgroundVolume(t *testing.T) {
	testCases := []struct {
		name      string
		intensity float64
		expected  float64
	}{
		{"silent scene", 0, 0.3},
		{"half intensity", 0.5, 0.65},
		{"full intensity", 1, 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := backgroundVolume(tc.intensity); !almostEqual(got, tc.expected) {
				t.Errorf("backgroundVolume(%v) = %v, want %v", tc.intensity, got, tc.expected)
			}
		})
	}
}

func TestSpatialGain(t *testing.T) {
	testCases := []struct {
		name     string
		distance float64
		expected float64
	}{
		{"at the source", 0, 1.0},
		{"half range", positionalRange / 2, 0.5},
		{"at range", positionalRange, 0},
		{"far beyond range", positionalRange * 10, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := spatialGain(tc.distance); !almostEqual(got, tc.expected) {
				t.Errorf("spatialGain(%v) = %v, want %v", tc.distance, got, tc.expected)
			}
		})
	}
}

func TestMutedDirectorIsInert(t *testing.T) {
	d := NewAudioDirector(true, nil)
	if d.SourceCount() != 0 {
		t.Fatalf("muted director reports %d sources", d.SourceCount())
	}
	// must not panic with no players behind it
	d.Update(0.5, NewVector3(0, 0, 0))
	d.TriggerPill()
}

func TestUnreadySourceNeverTouched(t *testing.T) {
	src := &soundSource{path: "assets/nope.wav"}
	if src.isReady() {
		t.Fatal("source ready before any load")
	}
}
