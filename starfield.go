package driftspace

import (
	"image/color"
	"math/rand"
)

type star struct {
	dir  *Vector3 // unit direction from the origin
	size float32
	col  color.RGBA
}

// Starfield is a shell of distant stars. It ignores camera translation and
// drifts with its own slow rotation.
type Starfield struct {
	stars    []star
	radius   float64
	angle    float64
	rate     float64 // radians per second
	rotation *Matrix
}

func NewStarfield(rng *rand.Rand, count int, radius, rate float64) *Starfield {
	s := &Starfield{
		radius:   radius,
		rate:     rate,
		rotation: IdentMatrix(),
	}
	for i := 0; i < count; i++ {
		dir := NewVector3(
			rng.Float64()*2-1,
			rng.Float64()*2-1,
			rng.Float64()*2-1,
		)
		if dir.Length() < 0.001 {
			dir = NewVector3(0, 0, 1)
		}
		dir.Normalize()

		shade := uint8(120 + rng.Intn(136))
		s.stars = append(s.stars, star{
			dir:  dir,
			size: 1 + float32(rng.Intn(2)),
			col:  color.RGBA{shade, shade, uint8(clamp(int(shade)+20, 0, 255)), 255},
		})
	}
	return s
}

func (s *Starfield) Update(elapsed float64) {
	s.angle += s.rate * elapsed
	s.rotation = NewRotationMatrix(ROTY, s.angle)
}

func (s *Starfield) StarCount() int {
	return len(s.stars)
}

// Paint projects every star in front of the near plane through the camera
// rotation only, keeping the field anchored to the horizon.
func (s *Starfield) Paint(batcher *PolygonBatcher, cam *Camera, width, height int) {
	view := cam.GetRotationMatrix().MultiplyBy(s.rotation)
	cx, cy := float64(width)/2, float64(height)/2

	for _, st := range s.stars {
		p := view.RotateVector3(st.dir.Scale(s.radius))
		if p.Z < nearPlaneZ {
			continue
		}
		sx := conversionFactor * p.X / p.Z
		sy := conversionFactor * p.Y / p.Z
		x := cx + sx
		y := cy + sy
		if x < 0 || y < 0 || x > float64(width) || y > float64(height) {
			continue
		}
		batcher.AddPoint(float32(x), float32(y), st.size, st.col)
	}
}
