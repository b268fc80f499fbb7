package geom

import (
	"testing"

	"github.com/TUS-OSK/go-bvhtrace/types"
)

func TestEmptyAABBMergeIsIdentity(t *testing.T) {
	box := AABB{PMin: types.Vec3{-1, -2, -3}, PMax: types.Vec3{1, 2, 3}}
	merged := Merge(EmptyAABB(), box)
	if merged != box {
		t.Fatalf("expected merge(empty, box) == box; got %v", merged)
	}
}

func TestLongestAxisTiesBreakLow(t *testing.T) {
	box := AABB{PMin: types.Vec3{0, 0, 0}, PMax: types.Vec3{1, 1, 1}}
	if axis := box.LongestAxis(); axis != 0 {
		t.Fatalf("expected axis 0 on a tie, got %d", axis)
	}

	box = AABB{PMin: types.Vec3{0, 0, 0}, PMax: types.Vec3{1, 5, 1}}
	if axis := box.LongestAxis(); axis != 1 {
		t.Fatalf("expected axis 1, got %d", axis)
	}
}

func TestAABBIntersectSlab(t *testing.T) {
	box := AABB{PMin: types.Vec3{-1, -1, -1}, PMax: types.Vec3{1, 1, 1}}

	hit := NewRay(types.Vec3{0, 0, -5}, types.Vec3{0, 0, 1})
	if !box.Intersect(hit) {
		t.Fatal("expected ray through the box center to hit")
	}

	miss := NewRay(types.Vec3{5, 5, -5}, types.Vec3{0, 0, 1})
	if box.Intersect(miss) {
		t.Fatal("expected a parallel ray offset from the box to miss")
	}
}

func TestAABBIntersectHandlesZeroDirectionComponent(t *testing.T) {
	box := AABB{PMin: types.Vec3{-1, -1, -1}, PMax: types.Vec3{1, 1, 1}}

	// direction.X == 0 => dirInv.X == +Inf; origin.X is inside the slab
	// so this must not produce a NaN-driven false negative.
	ray := NewRay(types.Vec3{0, 0, -5}, types.Vec3{0, 0, 1})
	if !box.Intersect(ray) {
		t.Fatal("expected hit despite a zero direction component")
	}
}

func TestEmptyAABBNeverHits(t *testing.T) {
	box := EmptyAABB()
	ray := NewRay(types.Vec3{0, 0, -5}, types.Vec3{0, 0, 1})
	if box.Intersect(ray) {
		t.Fatal("expected an empty AABB to never report a hit")
	}
}
