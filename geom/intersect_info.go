package geom

import "github.com/TUS-OSK/go-bvhtrace/types"

// IntersectInfo is the hit record produced by a successful intersection.
// Its contents are unspecified after a failed call.
type IntersectInfo struct {
	T           float32
	HitPos      types.Vec3
	HitNormal   types.Vec3
	Barycentric [2]float32
	UV          [2]float32
	GeomID      int
	PrimID      int
}
