package geom

import (
	"math"
	"testing"

	"github.com/TUS-OSK/go-bvhtrace/mesh"
	"github.com/TUS-OSK/go-bvhtrace/types"
)

func singleTrianglePolygon() *mesh.Polygon {
	vertices := []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	}
	indices := []uint32{0, 1, 2}
	return mesh.NewPolygon(3, 3, vertices, indices, nil, nil)
}

func approxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestTriangleIntersectHit(t *testing.T) {
	p := singleTrianglePolygon()
	tri := NewTriangle(p, 0)

	// Aim at the centroid (0, -1/3, 0), where the barycentrics are (1/3, 1/3).
	ray := NewRay(types.Vec3{0, -1.0 / 3.0, -1}, types.Vec3{0, 0, 1})
	var info IntersectInfo
	if !tri.Intersect(ray, &info) {
		t.Fatal("expected a hit")
	}

	if !approxEqual(info.T, 1, 1e-5) {
		t.Fatalf("expected t = 1, got %f", info.T)
	}
	if !approxEqual(info.Barycentric[0], 1.0/3.0, 1e-4) || !approxEqual(info.Barycentric[1], 1.0/3.0, 1e-4) {
		t.Fatalf("expected barycentric (1/3, 1/3), got %v", info.Barycentric)
	}
	wantHitPos := types.Vec3{0, -1.0 / 3.0, 0}
	for i := 0; i < 3; i++ {
		if !approxEqual(info.HitPos[i], wantHitPos[i], 1e-4) {
			t.Fatalf("expected hitPos %v, got %v", wantHitPos, info.HitPos)
		}
	}
}

func TestTriangleIntersectMiss(t *testing.T) {
	p := singleTrianglePolygon()
	tri := NewTriangle(p, 0)

	ray := NewRay(types.Vec3{5, 5, -1}, types.Vec3{0, 0, 1})
	var info IntersectInfo
	if tri.Intersect(ray, &info) {
		t.Fatal("expected a miss")
	}
}

func TestTriangleInterpolatedNormal(t *testing.T) {
	vertices := []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	}
	indices := []uint32{0, 1, 2}
	normals := []float32{
		0, 0, 1,
		0, 0, 1,
		1, 0, 0,
	}
	p := mesh.NewPolygon(3, 3, vertices, indices, normals, nil)
	tri := NewTriangle(p, 0)

	ray := NewRay(types.Vec3{0, 0, -1}, types.Vec3{0, 0, 1})
	var info IntersectInfo
	if !tri.Intersect(ray, &info) {
		t.Fatal("expected a hit")
	}

	u, v := info.Barycentric[0], info.Barycentric[1]
	w := 1 - u - v
	want := types.Vec3{w*0 + u*0 + v*1, 0, w*1 + u*1 + v*0}
	for i := 0; i < 3; i++ {
		if !approxEqual(info.HitNormal[i], want[i], 1e-4) {
			t.Fatalf("expected interpolated normal %v, got %v", want, info.HitNormal)
		}
	}

	// Regression guard against swapping HitNormal and HitPos: the
	// interpolated value must land in HitNormal, and HitPos must still be
	// the ray position, not a normal.
	if math.Abs(float64(info.HitPos[2])) > 1e-4 {
		t.Fatalf("HitPos appears to have been overwritten with a normal: %v", info.HitPos)
	}
}

func TestTriangleFaceNormalWhenMeshHasNone(t *testing.T) {
	p := singleTrianglePolygon()
	tri := NewTriangle(p, 0)

	ray := NewRay(types.Vec3{0, 0, -1}, types.Vec3{0, 0, 1})
	var info IntersectInfo
	if !tri.Intersect(ray, &info) {
		t.Fatal("expected a hit")
	}
	if !approxEqual(info.HitNormal[2], 1, 1e-4) {
		t.Fatalf("expected face normal pointing toward +z, got %v", info.HitNormal)
	}
}
