package path

import (
	"math"
	"testing"

	"go-lane-defense/pkg/geom"
)

func testRoute(t *testing.T) *Route {
	t.Helper()
	r, err := NewRoute([]geom.Vec3{
		{X: 0, Z: 0},
		{X: 10, Z: 0},
		{X: 10, Z: 5},
		{X: -2, Z: 5},
	})
	if err != nil {
		t.Fatalf("NewRoute failed: %v", err)
	}
	return r
}

// TestRouteEndpoints verifies that progress 0 and 1 map exactly to the
// first and last waypoints.
func TestRouteEndpoints(t *testing.T) {
	r := testRoute(t)

	start, _ := r.PositionAt(0)
	if start.X != 0 || start.Z != 0 {
		t.Errorf("PositionAt(0) = %+v, want first waypoint", start)
	}

	end, _ := r.PositionAt(1)
	if math.Abs(end.X-(-2)) > 1e-9 || math.Abs(end.Z-5) > 1e-9 {
		t.Errorf("PositionAt(1) = %+v, want last waypoint", end)
	}
}

// TestRouteMonotonicArcLength verifies that arc length traveled never
// decreases as progress increases, and every sample lies on some segment.
func TestRouteMonotonicArcLength(t *testing.T) {
	r := testRoute(t)

	prevDist := -1.0
	prev, _ := r.PositionAt(0)
	traveled := 0.0
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		pos, _ := r.PositionAt(p)
		traveled += geom.Dist(prev, pos)
		prev = pos

		if traveled < prevDist-1e-9 {
			t.Fatalf("arc length decreased at progress %.3f", p)
		}
		prevDist = traveled

		// The sample must sit on the route: its distance to the polyline
		// is zero (samples are on ground level, so planar distance works).
		if d := r.DistanceTo(pos); d > 1e-9 {
			t.Fatalf("PositionAt(%.3f) is %.6f away from the route", p, d)
		}
	}

	// The chord sum cuts every polyline corner, so it undershoots the true
	// arc length by up to one sample step per corner, never overshoots.
	step := r.TotalLength() / 1000
	deficit := r.TotalLength() - traveled
	if deficit < -1e-9 || deficit > 3*step {
		t.Errorf("total traveled %.6f, want within %.6f of %.6f", traveled, 3*step, r.TotalLength())
	}
}

// TestRouteProgressClamped verifies out-of-range progress is clamped.
func TestRouteProgressClamped(t *testing.T) {
	r := testRoute(t)

	lo, _ := r.PositionAt(-0.5)
	hi, _ := r.PositionAt(1.5)
	start, _ := r.PositionAt(0)
	end, _ := r.PositionAt(1)
	if lo != start {
		t.Errorf("PositionAt(-0.5) = %+v, want %+v", lo, start)
	}
	if hi != end {
		t.Errorf("PositionAt(1.5) = %+v, want %+v", hi, end)
	}
}

func TestRouteHeading(t *testing.T) {
	r := testRoute(t)

	// Middle of the first segment points along +X.
	_, heading := r.PositionAt(0.1)
	if math.Abs(heading.X-1) > 1e-9 || math.Abs(heading.Z) > 1e-9 {
		t.Errorf("heading on first segment = %+v, want +X", heading)
	}
}

func TestRouteDistanceTo(t *testing.T) {
	r := testRoute(t)

	// Point 3 units off the middle of the first segment.
	if d := r.DistanceTo(geom.Vec3{X: 5, Z: -3}); math.Abs(d-3) > 1e-9 {
		t.Errorf("DistanceTo = %.6f, want 3", d)
	}
}

func TestRouteRejectsTooFewWaypoints(t *testing.T) {
	if _, err := NewRoute([]geom.Vec3{{X: 1}}); err == nil {
		t.Fatal("expected error for a single-waypoint route")
	}
}
