package driftspace

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestPolygonBatcherTriangulation(t *testing.T) {
	testCases := []struct {
		name      string
		xp, yp    []float32
		triangles int
	}{
		{"triangle", []float32{0, 10, 5}, []float32{0, 0, 10}, 1},
		{"quad", []float32{0, 10, 10, 0}, []float32{0, 0, 10, 10}, 2},
		{"hexagon", []float32{0, 5, 10, 10, 5, 0}, []float32{0, -3, 0, 8, 11, 8}, 4},
		{"degenerate pair", []float32{0, 1}, []float32{0, 1}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewPolygonBatcher()
			b.AddPolygon(tc.xp, tc.yp, color.RGBA{255, 255, 255, 255})
			if got := b.TriangleCount(); got != tc.triangles {
				t.Errorf("TriangleCount = %d, want %d", got, tc.triangles)
			}
		})
	}
}

func TestPolygonBatcherReset(t *testing.T) {
	b := NewPolygonBatcher()
	b.AddPoint(5, 5, 2, color.RGBA{255, 255, 255, 255})
	if b.TriangleCount() == 0 {
		t.Fatal("AddPoint queued nothing")
	}
	b.Reset()
	if b.TriangleCount() != 0 {
		t.Errorf("TriangleCount after Reset = %d", b.TriangleCount())
	}
}

func TestStarfieldPaintsIntoBatcher(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	field := NewStarfield(rng, 500, starRadius, starSpinRate)
	cam := NewCamera(0, 0, 0, 0, 0, 0)

	b := NewPolygonBatcher()
	field.Paint(b, cam, ScreenWidth, ScreenHeight)
	if b.TriangleCount() == 0 {
		t.Fatal("no stars projected onto the screen")
	}
	// stars behind the camera or off screen must be culled
	if b.TriangleCount() >= 500*2 {
		t.Errorf("all %d stars drawn, culling never happened", 500)
	}
}

func TestModelPaintProducesTriangles(t *testing.T) {
	slab := NewSlab(20, 20, 20, color.RGBA{180, 40, 40, 255})
	cam := NewCamera(0, 0, -100, 0, 0, 0)

	slab.ApplyMatrixTemp(cam.GetMatrix().MultiplyBy(TransMatrix(0, 0, 0)))

	b := NewPolygonBatcher()
	slab.Paint(b, ScreenWidth/2, ScreenHeight/2, true, 1.0)
	if b.TriangleCount() == 0 {
		t.Fatal("slab in front of the camera drew nothing")
	}
}
