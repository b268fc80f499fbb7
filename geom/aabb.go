package geom

import (
	"math"

	"github.com/TUS-OSK/go-bvhtrace/types"
)

// AABB is an axis-aligned bounding box. The zero value is not empty; use
// EmptyAABB to get one that merges correctly with anything.
type AABB struct {
	PMin types.Vec3
	PMax types.Vec3
}

// EmptyAABB returns a box with pMin = +Inf and pMax = -Inf so that
// Merge(EmptyAABB(), x) == x for any box x.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		PMin: types.Vec3{inf, inf, inf},
		PMax: types.Vec3{-inf, -inf, -inf},
	}
}

// Merge returns the smallest AABB containing both a and b.
func Merge(a, b AABB) AABB {
	return AABB{
		PMin: types.MinVec3(a.PMin, b.PMin),
		PMax: types.MaxVec3(a.PMax, b.PMax),
	}
}

// MergePoint returns the smallest AABB containing a and p.
func MergePoint(a AABB, p types.Vec3) AABB {
	return AABB{
		PMin: types.MinVec3(a.PMin, p),
		PMax: types.MaxVec3(a.PMax, p),
	}
}

// Center returns the midpoint of the box.
func (a AABB) Center() types.Vec3 {
	return a.PMin.Add(a.PMax).Mul(0.5)
}

// LongestAxis returns the axis (0, 1 or 2) along which the box is widest.
// Ties are broken toward the lower index.
func (a AABB) LongestAxis() int {
	side := a.PMax.Sub(a.PMin)
	axis := 0
	if side[1] > side[axis] {
		axis = 1
	}
	if side[2] > side[axis] {
		axis = 2
	}
	return axis
}

// Intersect runs the sign-aware slab test against ray, using its
// precomputed inverse direction and sign bits. An empty box (pMin > pMax on
// every axis) never intersects.
func (a AABB) Intersect(ray *Ray) bool {
	bounds := [2]types.Vec3{a.PMin, a.PMax}

	tEnter, tExit := ray.Tmin, ray.Tmax
	for axis := 0; axis < 3; axis++ {
		near := (bounds[ray.DirInvSign[axis]][axis] - ray.Origin[axis]) * ray.DirInv[axis]
		far := (bounds[1-ray.DirInvSign[axis]][axis] - ray.Origin[axis]) * ray.DirInv[axis]

		if near > tEnter {
			tEnter = near
		}
		if far < tExit {
			tExit = far
		}
		if tEnter > tExit {
			return false
		}
	}

	return true
}
