// Package camera implements a simple pinhole camera built from a
// forward/right/up basis, generalized to support two ray-sampling
// conventions: sampling outward from the eye, and sampling toward the
// pinhole from the sensor plane.
package camera

import (
	"math"

	"github.com/TUS-OSK/go-bvhtrace/geom"
	"github.com/TUS-OSK/go-bvhtrace/types"
)

// Mode selects which of the two historically-observed ray-generation
// conventions SampleRay uses.
type Mode int

const (
	// ModeForward samples rays from the camera position outward; this is
	// the production form.
	ModeForward Mode = iota
	// ModeBackward places the sample point on the sensor plane through the
	// camera position and aims the ray toward a pinhole one unit behind it
	// (origin - forward), so the center ray points along -forward.
	ModeBackward
)

// Camera is an immutable pinhole camera: once built its basis vectors never
// change, so it may be read concurrently by any number of render workers.
type Camera struct {
	origin  types.Vec3
	forward types.Vec3
	right   types.Vec3
	up      types.Vec3
	mode    Mode
}

// New builds a camera at origin looking toward lookAt, with vfov in radians
// and the given aspect ratio (width / height).
func New(origin, lookAt, worldUp types.Vec3, vfov, aspect float32, mode Mode) *Camera {
	forward := lookAt.Sub(origin).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward).Normalize()

	halfHeight := float32(math.Tan(float64(vfov / 2)))
	halfWidth := halfHeight * aspect

	return &Camera{
		origin:  origin,
		forward: forward,
		right:   right.Mul(halfWidth),
		up:      up.Mul(halfHeight),
		mode:    mode,
	}
}

// SampleRay returns the ray through normalized screen coordinates (u, v),
// both in [-1, 1], where (0, 0) is the screen center.
func (c *Camera) SampleRay(u, v float32) *geom.Ray {
	switch c.mode {
	case ModeBackward:
		pinholePos := c.origin.Sub(c.forward)
		sensorPos := c.origin.Add(c.right.Mul(u)).Add(c.up.Mul(v))
		dir := pinholePos.Sub(sensorPos).Normalize()
		return geom.NewRay(sensorPos, dir)
	default:
		dir := c.forward.Add(c.right.Mul(u)).Add(c.up.Mul(v)).Normalize()
		return geom.NewRay(c.origin, dir)
	}
}
