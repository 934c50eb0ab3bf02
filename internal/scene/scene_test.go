package scene

import (
	"testing"

	"wireframe/internal/camera"
	"wireframe/internal/geometry"
	"wireframe/internal/mathutil"
	"wireframe/internal/projection"
)

func opts() Options {
	return Options{
		Lens: projection.Params{
			FOV: 120, Aspect: 800.0 / 600.0, Near: 0.1, Far: 1000,
			ScreenWidth: 800, ScreenHeight: 600,
		},
		ObjectScale: 10,
	}
}

func TestSegmentsSkipsOutOfRange(t *testing.T) {
	pts := []mathutil.Vec2{{0, 0}, {1, 1}, {2, 2}}
	edges := geometry.EdgeList{{0, 1}, {1, 5}, {1, 2}, {7, 0}}
	segs, skipped := Segments(pts, edges)
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
	want := []Segment{{pts[0], pts[1]}, {pts[1], pts[2]}}
	if len(segs) != len(want) {
		t.Fatalf("len = %d, want %d", len(segs), len(want))
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Fatalf("segment %d = %v, want %v", i, segs[i], want[i])
		}
	}
}

func TestBuildFromStart(t *testing.T) {
	f := Build(camera.Start(), opts())
	if len(f.Points) != 16 {
		t.Fatalf("points = %d, want 16", len(f.Points))
	}
	if len(f.Segments) != 12 || f.Skipped != 0 {
		t.Fatalf("segments = %d skipped = %d, want 12 and 0", len(f.Segments), f.Skipped)
	}
	for i, s := range f.Segments {
		if !s[0].IsFinite() || !s[1].IsFinite() {
			t.Fatalf("segment %d not finite: %v", i, s)
		}
	}
}

func TestBuildUnscaledFarFaceIsCentered(t *testing.T) {
	o := opts()
	o.ObjectScale = 1
	f := Build(camera.Start(), o)

	// Far face (z = 100, camera z = 200) is symmetric about the screen center.
	var sum mathutil.Vec2
	for _, p := range f.Points[:4] {
		sum[0] += p[0]
		sum[1] += p[1]
	}
	cx, cy := sum[0]/4, sum[1]/4
	if cx < 399.999 || cx > 400.001 || cy < 299.999 || cy > 300.001 {
		t.Fatalf("far face center = (%v, %v), want (400, 300)", cx, cy)
	}
}

func TestBuildWithZeroNearDropsPointsAndSkipsEdges(t *testing.T) {
	o := opts()
	o.Lens.Near = 0
	o.ObjectScale = 1
	// Camera on the near face plane: the four z=0 vertices and the four
	// duplicated z=0 endpoints have w = 0.
	cam := camera.State{Pos: mathutil.Vec3{0, 0, 0}}
	f := Build(cam, o)
	if len(f.Points) != 8 {
		t.Fatalf("points = %d, want 8", len(f.Points))
	}
	if f.Skipped == 0 {
		t.Fatalf("skipped = 0, want edges skipped after points were dropped")
	}
	if len(f.Segments)+f.Skipped != len(geometry.CuboidEdges()) {
		t.Fatalf("segments+skipped = %d, want %d", len(f.Segments)+f.Skipped, len(geometry.CuboidEdges()))
	}
}
