package geom

import (
	"math"

	"github.com/TUS-OSK/go-bvhtrace/types"
)

// Ray carries a tightening tmax: it is the working interval for a single
// closest-hit query and must not be shared across concurrent queries.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3

	// dirInv and dirInvSign are derived from Direction once at
	// construction so that BVH.Intersect and AABB.Intersect do not
	// recompute them per node.
	DirInv     types.Vec3
	DirInvSign [3]int

	Tmin float32
	Tmax float32
}

// defaultTmin matches the near-epsilon used throughout the corpus to avoid
// self-intersection at the ray origin.
const defaultTmin float32 = 1e-3

// NewRay builds a ray with the default [1e-3, +Inf) hit interval and
// precomputes the inverse direction and its per-axis sign, as required by
// the slab test and by BVH child-visit ordering.
func NewRay(origin, direction types.Vec3) *Ray {
	r := &Ray{
		Origin:    origin,
		Direction: direction,
		Tmin:      defaultTmin,
		Tmax:      float32(math.Inf(1)),
	}
	r.DirInv = direction.Reciprocal()
	for i := 0; i < 3; i++ {
		if r.DirInv[i] > 0 {
			r.DirInvSign[i] = 0
		} else {
			r.DirInvSign[i] = 1
		}
	}
	return r
}

// At evaluates the ray's position at parameter t.
func (r *Ray) At(t float32) types.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
