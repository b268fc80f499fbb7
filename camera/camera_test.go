package camera

import (
	"math"
	"testing"

	"github.com/TUS-OSK/go-bvhtrace/types"
)

func approxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestForwardModeCenterRayPointsAlongForward(t *testing.T) {
	cam := New(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, types.Vec3{0, 1, 0}, math.Pi/2, 1, ModeForward)
	r := cam.SampleRay(0, 0)

	if !approxEqual(r.Direction.Len(), 1, 1e-4) {
		t.Fatalf("expected a unit-length direction, got len=%f", r.Direction.Len())
	}
	want := types.Vec3{0, 0, -1}
	for i := 0; i < 3; i++ {
		if !approxEqual(r.Direction[i], want[i], 1e-4) {
			t.Fatalf("expected center ray direction %v, got %v", want, r.Direction)
		}
	}
	for i := 0; i < 3; i++ {
		if r.Origin[i] != 0 {
			t.Fatalf("expected forward-mode origin at camera position, got %v", r.Origin)
		}
	}
}

func TestBackwardModeCenterRayPointsOppositeForward(t *testing.T) {
	cam := New(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, types.Vec3{0, 1, 0}, math.Pi/2, 1, ModeBackward)
	r := cam.SampleRay(0, 0)

	if !approxEqual(r.Direction.Len(), 1, 1e-4) {
		t.Fatalf("expected a unit-length direction, got len=%f", r.Direction.Len())
	}
	want := types.Vec3{0, 0, 1}
	for i := 0; i < 3; i++ {
		if !approxEqual(r.Direction[i], want[i], 1e-4) {
			t.Fatalf("expected backward-mode center ray direction %v (opposite of forward), got %v", want, r.Direction)
		}
	}
}

func TestOffCenterRaysDiverge(t *testing.T) {
	cam := New(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, types.Vec3{0, 1, 0}, math.Pi/2, 1, ModeForward)
	center := cam.SampleRay(0, 0)
	corner := cam.SampleRay(1, 1)

	if approxEqual(center.Direction[0], corner.Direction[0], 1e-4) &&
		approxEqual(center.Direction[1], corner.Direction[1], 1e-4) {
		t.Fatal("expected an off-center sample to produce a different direction")
	}
}
