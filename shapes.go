package driftspace

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinDepth = 3
)

// NewUVSphere builds a banded sphere from segments x rings quads.
func NewUVSphere(radius float64, segments, rings int, colA, colB color.RGBA, bandSize int) *Model {
	obj := NewModel()

	pointAt := func(seg, ring int) (float64, float64, float64) {
		theta := float64(ring) * math.Pi / float64(rings)
		phi := float64(seg) * 2 * math.Pi / float64(segments)
		x := radius * math.Sin(theta) * math.Cos(phi)
		y := radius * math.Cos(theta)
		z := radius * math.Sin(theta) * math.Sin(phi)
		return x, y, z
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			col := colA
			if bandSize > 0 && (ring/bandSize)%2 == 1 {
				col = colB
			}

			face := NewFace(nil, col, nil)
			x0, y0, z0 := pointAt(seg, ring)
			x1, y1, z1 := pointAt(seg+1, ring)
			x2, y2, z2 := pointAt(seg+1, ring+1)
			x3, y3, z3 := pointAt(seg, ring+1)

			switch {
			case ring == 0:
				// top cap: both ring-0 points sit on the pole
				face.AddPoint(x0, y0, z0)
				face.AddPoint(x2, y2, z2)
				face.AddPoint(x3, y3, z3)
			case ring == rings-1:
				face.AddPoint(x0, y0, z0)
				face.AddPoint(x1, y1, z1)
				face.AddPoint(x2, y2, z2)
			default:
				face.AddPoint(x0, y0, z0)
				face.AddPoint(x1, y1, z1)
				face.AddPoint(x2, y2, z2)
				face.AddPoint(x3, y3, z3)
			}
			face.Finished(FACE_REVERSE)
			obj.AddFace(face)
		}
	}

	obj.Finished(true)
	return obj
}

// NewSlab builds an axis-aligned box centered on the origin.
func NewSlab(xSize, ySize, zSize float64, col color.RGBA) *Model {
	obj := NewModel()
	sx, sy, sz := xSize/2, ySize/2, zSize/2

	corners := [8][3]float64{
		{-sx, -sy, -sz}, {sx, -sy, -sz}, {sx, sy, -sz}, {-sx, sy, -sz},
		{-sx, -sy, sz}, {sx, -sy, sz}, {sx, sy, sz}, {-sx, sy, sz},
	}
	quads := [6][4]int{
		{4, 5, 6, 7}, // z+
		{1, 0, 3, 2}, // z-
		{5, 1, 2, 6}, // x+
		{0, 4, 7, 3}, // x-
		{3, 7, 6, 2}, // y+
		{0, 1, 5, 4}, // y-
	}

	for _, q := range quads {
		face := NewFace(nil, col, nil)
		for _, idx := range q {
			face.AddPoint(corners[idx][0], corners[idx][1], corners[idx][2])
		}
		face.Finished(FACE_NORMAL)
		obj.AddFace(face)
	}

	obj.Finished(false)
	return obj
}

// NewIslandModel builds a floating island: a perlin-displaced top disc with
// a rocky underside tapering to a single point.
func NewIslandModel(rng *rand.Rand, radius, height float64, topCol, rockCol color.RGBA) *Model {
	const spokes = 12
	const ringsOut = 3

	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, rng.Int63())
	obj := NewModel()

	surfaceY := func(x, z float64) float64 {
		return height * 0.3 * noise.Noise2D(x/radius+10, z/radius+10)
	}

	ringPoint := func(ring, spoke int) (float64, float64, float64) {
		r := radius * float64(ring) / float64(ringsOut)
		a := float64(spoke) * 2 * math.Pi / float64(spokes)
		x := r * math.Cos(a)
		z := r * math.Sin(a)
		return x, surfaceY(x, z), z
	}

	// top surface
	for ring := 0; ring < ringsOut; ring++ {
		for spoke := 0; spoke < spokes; spoke++ {
			face := NewFace(nil, topCol, nil)
			x0, y0, z0 := ringPoint(ring, spoke)
			x1, y1, z1 := ringPoint(ring+1, spoke)
			x2, y2, z2 := ringPoint(ring+1, spoke+1)
			face.AddPoint(x0, y0, z0)
			face.AddPoint(x1, y1, z1)
			face.AddPoint(x2, y2, z2)
			if ring > 0 {
				x3, y3, z3 := ringPoint(ring, spoke+1)
				face.AddPoint(x3, y3, z3)
			}
			face.Finished(FACE_REVERSE)
			obj.AddFace(face)
		}
	}

	// underside tapering to a point below the center
	tipY := -height
	for spoke := 0; spoke < spokes; spoke++ {
		face := NewFace(nil, rockCol, nil)
		x0, y0, z0 := ringPoint(ringsOut, spoke)
		x1, y1, z1 := ringPoint(ringsOut, spoke+1)
		face.AddPoint(x0, y0, z0)
		face.AddPoint(0, tipY, 0)
		face.AddPoint(x1, y1, z1)
		face.Finished(FACE_REVERSE)
		obj.AddFace(face)
	}

	obj.Finished(false)
	return obj
}

// NewRockModel builds a low-poly unit sphere with perlin-jittered vertices,
// then scales it out to the requested radius.
func NewRockModel(rng *rand.Rand, radius float64, col color.RGBA) *Model {
	const segments = 7
	const rings = 5

	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, rng.Int63())
	obj := NewModel()

	pointAt := func(seg, ring int) (float64, float64, float64) {
		theta := float64(ring) * math.Pi / float64(rings)
		phi := float64(seg%segments) * 2 * math.Pi / float64(segments)
		x := math.Sin(theta) * math.Cos(phi)
		y := math.Cos(theta)
		z := math.Sin(theta) * math.Sin(phi)
		bump := 1.0 + 0.45*noise.Noise3D(x+3, y+3, z+3)
		return x * bump, y * bump, z * bump
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			face := NewFace(nil, col, nil)
			x0, y0, z0 := pointAt(seg, ring)
			x1, y1, z1 := pointAt(seg+1, ring)
			x2, y2, z2 := pointAt(seg+1, ring+1)
			x3, y3, z3 := pointAt(seg, ring+1)

			if ring == 0 {
				face.AddPoint(x0, y0, z0)
				face.AddPoint(x2, y2, z2)
				face.AddPoint(x3, y3, z3)
			} else if ring == rings-1 {
				face.AddPoint(x0, y0, z0)
				face.AddPoint(x1, y1, z1)
				face.AddPoint(x2, y2, z2)
			} else {
				face.AddPoint(x0, y0, z0)
				face.AddPoint(x1, y1, z1)
				face.AddPoint(x2, y2, z2)
				face.AddPoint(x3, y3, z3)
			}
			face.Finished(FACE_REVERSE)
			obj.AddFace(face)
		}
	}

	obj.Finished(true)
	obj.ScaleAllPoints(radius)
	return obj
}

// NewTeleporterModel builds a vertical ring of slanted panels.
func NewTeleporterModel(radius, thickness float64, col color.RGBA) *Model {
	const panels = 10

	obj := NewModel()
	for i := 0; i < panels; i++ {
		a0 := float64(i) * 2 * math.Pi / float64(panels)
		a1 := float64(i+1) * 2 * math.Pi / float64(panels)

		inner, outer := radius-thickness, radius

		face := NewFace(nil, col, nil)
		face.AddPoint(outer*math.Cos(a0), outer*math.Sin(a0), 0)
		face.AddPoint(outer*math.Cos(a1), outer*math.Sin(a1), 0)
		face.AddPoint(inner*math.Cos(a1), inner*math.Sin(a1), 0)
		face.AddPoint(inner*math.Cos(a0), inner*math.Sin(a0), 0)
		face.Finished(FACE_NORMAL)
		obj.AddFace(face)

		// back side so the ring is visible from both directions
		back := NewFace(nil, col, nil)
		back.AddPoint(inner*math.Cos(a0), inner*math.Sin(a0), 0)
		back.AddPoint(inner*math.Cos(a1), inner*math.Sin(a1), 0)
		back.AddPoint(outer*math.Cos(a1), outer*math.Sin(a1), 0)
		back.AddPoint(outer*math.Cos(a0), outer*math.Sin(a0), 0)
		back.Finished(FACE_NORMAL)
		obj.AddFace(back)
	}

	obj.Finished(false)
	return obj
}
