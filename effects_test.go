package driftspace

import "testing"

func TestEffectMapEndpoints(t *testing.T) {
	testCases := []struct {
		name   string
		fn     func(float64) float64
		atZero float64
		atOne  float64
	}{
		{"bloom strength", bloomStrength, 0.8, 2.8},
		{"bloom radius", bloomRadius, 0.3, 1.0},
		{"chromatic magnitude", chromaMagnitude, 0.001, 0.013},
		{"grain magnitude", grainMagnitude, 0.2, 1.0},
		{"scanline magnitude", scanlineMagnitude, 0.3, 1.0},
		{"vignette offset", vignetteOffset, 0.9, 0.5},
		{"vignette darkness", vignetteDarkness, 1.0, 1.8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(0); !almostEqual(got, tc.atZero) {
				t.Errorf("f(0) = %v, want %v", got, tc.atZero)
			}
			if got := tc.fn(1); !almostEqual(got, tc.atOne) {
				t.Errorf("f(1) = %v, want %v", got, tc.atOne)
			}
		})
	}
}

func TestEffectMapsAreMonotonic(t *testing.T) {
	increasing := []func(float64) float64{
		bloomStrength, bloomRadius, chromaMagnitude,
		grainMagnitude, scanlineMagnitude, vignetteDarkness,
	}
	for _, fn := range increasing {
		prev := fn(0)
		for i := 1; i <= 10; i++ {
			cur := fn(float64(i) / 10)
			if cur <= prev {
				t.Fatalf("map not increasing at step %d: %v then %v", i, prev, cur)
			}
			prev = cur
		}
	}

	// vignette offset shrinks as the effect strengthens
	prev := vignetteOffset(0)
	for i := 1; i <= 10; i++ {
		cur := vignetteOffset(float64(i) / 10)
		if cur >= prev {
			t.Fatalf("vignette offset not decreasing at step %d", i)
		}
		prev = cur
	}
}

func TestComposerBuildsFullChain(t *testing.T) {
	c := NewComposer(64, 48, true)

	if c.PassCount() != 4 {
		t.Fatalf("PassCount = %d, want the 4-pass chain", c.PassCount())
	}
	if w, h := c.Size(); w != 64 || h != 48 {
		t.Errorf("Size = %dx%d, want 64x48", w, h)
	}
	// uniforms of every present pass follow the maps without panicking
	c.SetIntensity(0.5)
}

func TestComposerResizeClampsToOnePixel(t *testing.T) {
	c := NewComposer(100, 100, false)

	c.Resize(0, -5)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("Size after degenerate resize = %dx%d, want 1x1", w, h)
	}

	c.Resize(320, 200)
	if w, h := c.Size(); w != 320 || h != 200 {
		t.Errorf("Size = %dx%d, want 320x200", w, h)
	}
}

func TestEffectMapsAreLinear(t *testing.T) {
	maps := []func(float64) float64{
		bloomStrength, bloomRadius, chromaMagnitude, grainMagnitude,
		scanlineMagnitude, vignetteOffset, vignetteDarkness,
	}
	for _, fn := range maps {
		mid := (fn(0) + fn(1)) / 2
		if !almostEqual(fn(0.5), mid) {
			t.Errorf("f(0.5) = %v, want midpoint %v", fn(0.5), mid)
		}
	}
}
