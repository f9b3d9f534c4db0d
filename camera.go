package driftspace

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a free-flying camera. The view matrix maps world space into
// camera space with the camera looking down +Z.
type Camera struct {
	position *Vector3
	angle    *Vector3 // pitch, yaw, roll in radians

	camMatrixRev *Matrix
	rotOnlyRev   *Matrix
	dirty        bool
}

func NewCamera(xp, yp, zp, pitch, yaw, roll float64) *Camera {
	c := &Camera{
		position: NewVector3(xp, yp, zp),
		angle:    NewVector3(pitch, yaw, roll),
		dirty:    true,
	}
	c.rebuild()
	return c
}

func (c *Camera) rebuild() {
	rotX := mgl64.HomogRotate3DX(-c.angle.X)
	rotY := mgl64.HomogRotate3DY(-c.angle.Y)
	rotZ := mgl64.HomogRotate3DZ(-c.angle.Z)
	camRev := rotZ.Mul4(rotX).Mul4(rotY)

	c.rotOnlyRev = FromMGL(camRev)
	trans := TransMatrix(-c.position.X, -c.position.Y, -c.position.Z)
	c.camMatrixRev = c.rotOnlyRev.MultiplyBy(trans)
	c.dirty = false
}

func (c *Camera) GetMatrix() *Matrix {
	if c.dirty {
		c.rebuild()
	}
	return c.camMatrixRev
}

// GetRotationMatrix returns the view matrix without translation, used for
// objects at infinity.
func (c *Camera) GetRotationMatrix() *Matrix {
	if c.dirty {
		c.rebuild()
	}
	return c.rotOnlyRev
}

func (c *Camera) GetPosition() *Vector3 {
	return c.position.Copy()
}

func (c *Camera) SetPosition(x, y, z float64) {
	c.position = NewVector3(x, y, z)
	c.dirty = true
}

func (c *Camera) AddAngle(pitch, yaw, roll float64) {
	c.angle.Add(pitch, yaw, roll)
	c.dirty = true
}

func (c *Camera) GetAngle() *Vector3 {
	return c.angle.Copy()
}

// forwardRotation is the inverse of the view rotation: camera space to world.
func (c *Camera) forwardRotation() *Matrix {
	rotX := mgl64.HomogRotate3DX(c.angle.X)
	rotY := mgl64.HomogRotate3DY(c.angle.Y)
	rotZ := mgl64.HomogRotate3DZ(c.angle.Z)
	return FromMGL(rotY.Mul4(rotX).Mul4(rotZ))
}

// Forward returns the world-space direction the camera is looking along.
func (c *Camera) Forward() *Vector3 {
	return c.forwardRotation().RotateVector3(NewVector3(0, 0, 1))
}

func (c *Camera) Right() *Vector3 {
	return c.forwardRotation().RotateVector3(NewVector3(1, 0, 0))
}

func (c *Camera) Up() *Vector3 {
	return c.forwardRotation().RotateVector3(NewVector3(0, -1, 0))
}

// Move translates the camera along its own axes.
func (c *Camera) Move(forward, right, up float64) {
	f := c.Forward()
	r := c.Right()
	u := c.Up()
	c.position.Add(
		f.X*forward+r.X*right+u.X*up,
		f.Y*forward+r.Y*right+u.Y*up,
		f.Z*forward+r.Z*right+u.Z*up,
	)
	c.dirty = true
}
