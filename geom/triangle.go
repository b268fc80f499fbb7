package geom

import (
	"github.com/TUS-OSK/go-bvhtrace/mesh"
	"github.com/TUS-OSK/go-bvhtrace/types"
)

// triangleEpsilon is the minimum |det| below which a ray is considered
// parallel to the triangle's plane.
const triangleEpsilon float32 = 1e-8

// Triangle is a lightweight value: a face index into a borrowed Polygon
// view. It computes its own AABB and intersection on demand, never caching
// vertex data.
type Triangle struct {
	Polygon *mesh.Polygon
	FaceID  uint32
}

// NewTriangle binds a Triangle to face faceID of polygon.
func NewTriangle(polygon *mesh.Polygon, faceID uint32) Triangle {
	return Triangle{Polygon: polygon, FaceID: faceID}
}

func (t Triangle) vertices() (v1, v2, v3 types.Vec3) {
	idx := t.Polygon.Indices(t.FaceID)
	return t.Polygon.Vertex(idx[0]), t.Polygon.Vertex(idx[1]), t.Polygon.Vertex(idx[2])
}

// CalcAABB returns the bounding box of the triangle's three vertices.
func (t Triangle) CalcAABB() AABB {
	v1, v2, v3 := t.vertices()
	return AABB{
		PMin: types.MinVec3(types.MinVec3(v1, v2), v3),
		PMax: types.MaxVec3(types.MaxVec3(v1, v2), v3),
	}
}

// Center returns the centroid of the triangle's vertices. Used by the BVH
// builder to split on primitive centers rather than full AABBs.
func (t Triangle) Center() types.Vec3 {
	v1, v2, v3 := t.vertices()
	return v1.Add(v2).Add(v3).Mul(1.0 / 3.0)
}

// Intersect runs the Möller–Trumbore ray/triangle test. On a hit it fills
// info and tightens nothing itself — callers (BVH.Intersect) are
// responsible for narrowing ray.Tmax between successive leaf primitives.
func (t Triangle) Intersect(ray *Ray, info *IntersectInfo) bool {
	idx := t.Polygon.Indices(t.FaceID)
	v1, v2, v3 := t.vertices()

	e1 := v2.Sub(v1)
	e2 := v3.Sub(v1)

	pvec := ray.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(v1)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return false
	}

	qvec := tvec.Cross(e1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return false
	}

	tHit := e2.Dot(qvec) * invDet
	if tHit < ray.Tmin || tHit > ray.Tmax {
		return false
	}

	info.T = tHit
	info.HitPos = ray.At(tHit)
	info.Barycentric[0] = u
	info.Barycentric[1] = v
	info.PrimID = int(t.FaceID)

	w := 1 - u - v
	if t.Polygon.HasNormals() {
		n1, n2, n3 := t.Polygon.Normal(idx[0]), t.Polygon.Normal(idx[1]), t.Polygon.Normal(idx[2])
		info.HitNormal = n1.Mul(w).Add(n2.Mul(u)).Add(n3.Mul(v))
	} else {
		info.HitNormal = e1.Cross(e2).Normalize()
	}

	if t.Polygon.HasUVs() {
		uv1, uv2, uv3 := t.Polygon.UV(idx[0]), t.Polygon.UV(idx[1]), t.Polygon.UV(idx[2])
		info.UV[0] = w*uv1[0] + u*uv2[0] + v*uv3[0]
		info.UV[1] = w*uv1[1] + u*uv2[1] + v*uv3[1]
	} else {
		info.UV[0] = u
		info.UV[1] = v
	}

	return true
}
