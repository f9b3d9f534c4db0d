package driftspace

type Point3d struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3d(x, y, z float64) *Point3d {
	return &Point3d{
		X: x,
		Y: y,
		Z: z,
	}
}

func (p *Point3d) ToVector3() *Vector3 {
	return NewVector3(p.X, p.Y, p.Z)
}
