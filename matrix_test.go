package driftspace

import (
	"math"
	"testing"
)

func TestRotationMatrixQuarterTurnY(t *testing.T) {
	rot := NewRotationMatrix(ROTY, math.Pi/2)
	v := rot.RotateVector3(NewVector3(0, 0, 1))

	if !almostEqual(v.X, 1) || !almostEqual(v.Y, 0) || !almostEqual(v.Z, 0) {
		t.Errorf("rotated vector = (%v, %v, %v)", v.X, v.Y, v.Z)
	}
}

func TestTransMatrixMovesPoints(t *testing.T) {
	trans := TransMatrix(10, -5, 3)

	src := NewMatrix()
	src.AddRow([]float64{1, 2, 3, 1})
	dest := NewMatrix()
	dest.AddRow([]float64{0, 0, 0, 0})

	trans.TransformObj(src, dest)

	got := dest.ThisMatrix[0]
	want := []float64{11, -3, 6}
	for i := 0; i < 3; i++ {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTransformNormalsIgnoresTranslation(t *testing.T) {
	trans := TransMatrix(100, 100, 100)

	src := NewMatrix()
	src.AddRow([]float64{0, 0, 1, 0})
	dest := NewMatrix()
	dest.AddRow([]float64{0, 0, 0, 0})

	trans.TransformNormals(src, dest)

	got := dest.ThisMatrix[0]
	if !almostEqual(got[0], 0) || !almostEqual(got[1], 0) || !almostEqual(got[2], 1) {
		t.Errorf("normal changed under pure translation: %v", got)
	}
}

func TestFromMGLMatchesRotationMatrix(t *testing.T) {
	angles := []float64{0, 0.3, math.Pi / 2, 2.1}
	for _, a := range angles {
		ours := NewRotationMatrix(ROTY, a)
		v1 := ours.RotateVector3(NewVector3(1, 2, 3))

		theirs := NewCamera(0, 0, 0, 0, -a, 0).GetRotationMatrix()
		v2 := theirs.RotateVector3(NewVector3(1, 2, 3))

		if !almostEqual(v1.X, v2.X) || !almostEqual(v1.Y, v2.Y) || !almostEqual(v1.Z, v2.Z) {
			t.Errorf("angle %v: (%v,%v,%v) vs (%v,%v,%v)", a, v1.X, v1.Y, v1.Z, v2.X, v2.Y, v2.Z)
		}
	}
}
