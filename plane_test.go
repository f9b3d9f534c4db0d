package driftspace

import (
	"image/color"
	"testing"
)

func quadFace(pts [][3]float64, col color.RGBA) *Face {
	f := NewFace(nil, col, nil)
	for _, p := range pts {
		f.AddPoint(p[0], p[1], p[2])
	}
	f.Finished(FACE_NORMAL)
	return f
}

func TestPointOnPlaneSides(t *testing.T) {
	// plane z = 10 facing +z
	plane := NewPlaneFromPoint(NewPoint3d(0, 0, 10), NewVector3(0, 0, 1))

	testCases := []struct {
		name string
		z    float64
		sign float64
	}{
		{"in front", 30, 1},
		{"behind", -30, -1},
		{"on the plane", 10, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := plane.PointOnPlane(0, 0, tc.z)
			switch {
			case tc.sign == 0 && got != 0:
				t.Errorf("PointOnPlane = %v, want 0", got)
			case tc.sign > 0 && got <= 0:
				t.Errorf("PointOnPlane = %v, want > 0", got)
			case tc.sign < 0 && got >= 0:
				t.Errorf("PointOnPlane = %v, want < 0", got)
			}
		})
	}
}

func TestSplitFaceAcrossPlane(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	straddling := quadFace([][3]float64{
		{-10, -10, 0}, {10, -10, 0}, {10, 10, 0}, {-10, 10, 0},
	}, red)

	// plane x = 0 facing +x
	plane := NewPlaneFromPoint(NewPoint3d(0, 0, 0), NewVector3(1, 0, 0))
	if !plane.FaceIntersect(straddling) {
		t.Fatal("plane should intersect the straddling quad")
	}

	halves := plane.SplitFace(straddling)
	if len(halves) != 2 {
		t.Fatalf("SplitFace returned %d faces, want 2", len(halves))
	}

	for i, half := range halves {
		if half == nil {
			t.Fatalf("half %d is nil", i)
		}
		if half.Cnum < 3 {
			t.Errorf("half %d has %d points, not a polygon", i, half.Cnum)
		}
	}

	// each half must sit wholly on one side, and the sides must differ
	sideOf := func(f *Face) float64 {
		side := 0.0
		for _, pt := range f.Points {
			v := plane.PointOnPlane(pt[0], pt[1], pt[2])
			if v > 0 && side < 0 || v < 0 && side > 0 {
				t.Fatalf("half straddles the plane: %v", f.Points)
			}
			if v != 0 {
				side = v
			}
		}
		return side
	}
	if sideOf(halves[0])*sideOf(halves[1]) >= 0 {
		t.Error("both halves ended up on the same side of the plane")
	}
}

func TestFaceIntersectFalseWhenApart(t *testing.T) {
	far := quadFace([][3]float64{
		{50, -10, 0}, {70, -10, 0}, {70, 10, 0}, {50, 10, 0},
	}, color.RGBA{})
	plane := NewPlaneFromPoint(NewPoint3d(0, 0, 0), NewVector3(1, 0, 0))
	if plane.FaceIntersect(far) {
		t.Error("plane reported an intersection with a face wholly in front")
	}
}
