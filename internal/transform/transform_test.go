package transform

import (
	"math"
	"testing"

	"wireframe/internal/mathutil"
)

const tol = 1e-9

func testMesh() Mesh {
	return Mesh{
		{-50, -50, 0},
		{50, -50, 0},
		{50, 50, 0},
		{-50, 50, 100},
		{12, 7, 33},
	}
}

func unitCube() Mesh {
	var m Mesh
	for _, x := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			for _, z := range []float64{-0.5, 0.5} {
				m = append(m, mathutil.Vec3{x, y, z})
			}
		}
	}
	return m
}

func meshEqual(t *testing.T, got, want Mesh, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !got[i].ApproxEqual(want[i], eps) {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCentroid(t *testing.T) {
	got := Centroid(Mesh{{0, 0, 0}, {2, 4, 6}})
	want := mathutil.Vec3{1, 2, 3}
	if !got.ApproxEqual(want, tol) {
		t.Fatalf("Centroid() = %v, want %v", got, want)
	}
}

func TestCentroidEmptyIsNaN(t *testing.T) {
	c := Centroid(nil)
	for k, v := range c {
		if !math.IsNaN(v) {
			t.Fatalf("Centroid(nil)[%d] = %v, want NaN", k, v)
		}
	}
}

func TestEmptyMeshTransforms(t *testing.T) {
	if got := Scale(nil, 2, 2, 2); len(got) != 0 {
		t.Fatalf("Scale(nil) len = %d, want 0", len(got))
	}
	if got := RotateXY(Mesh{}, 10, 10); len(got) != 0 {
		t.Fatalf("RotateXY(empty) len = %d, want 0", len(got))
	}
}

func TestRotatePreservesCentroid(t *testing.T) {
	m := testMesh()
	c := Centroid(m)
	for _, deg := range []float64{0, 13, 90, -45, 180, 725} {
		if got := Centroid(RotateX(m, deg)); !got.ApproxEqual(c, 1e-9) {
			t.Fatalf("Centroid(RotateX(%v)) = %v, want %v", deg, got, c)
		}
		if got := Centroid(RotateY(m, deg)); !got.ApproxEqual(c, 1e-9) {
			t.Fatalf("Centroid(RotateY(%v)) = %v, want %v", deg, got, c)
		}
	}
}

func TestTranslateMovesCentroid(t *testing.T) {
	m := testMesh()
	c := Centroid(m)
	got := Centroid(Translate(m, 3, -4, 5.5))
	want := c.Add(mathutil.Vec3{3, -4, 5.5})
	if !got.ApproxEqual(want, tol) {
		t.Fatalf("Centroid(Translate()) = %v, want %v", got, want)
	}
}

func TestIdentityTransforms(t *testing.T) {
	m := testMesh()
	meshEqual(t, RotateX(m, 0), m, tol)
	meshEqual(t, RotateY(m, 0), m, tol)
	meshEqual(t, Translate(m, 0, 0, 0), m, tol)
	meshEqual(t, Scale(m, 1, 1, 1), m, tol)
	meshEqual(t, RotateXY(m, 0, 0), m, tol)
}

func TestRotateRoundTrip(t *testing.T) {
	m := testMesh()
	for _, deg := range []float64{1, 37.5, 90, 359, -200} {
		meshEqual(t, RotateX(RotateX(m, deg), -deg), m, 1e-9)
		meshEqual(t, RotateY(RotateY(m, deg), -deg), m, 1e-9)
	}
}

func TestRotateXYPitchOnlyMatchesRotationX(t *testing.T) {
	m := unitCube()
	got := RotateXY(m, 90, 0)
	want := Apply(m, mathutil.RotationX(90), PivotOrigin)
	meshEqual(t, got, want, 1e-12)
}

func TestRotateXYOrder(t *testing.T) {
	m := testMesh()
	got := RotateXY(m, 30, 60)
	want := RotateY(RotateX(m, 30), 60)
	meshEqual(t, got, want, 1e-9)

	// Yaw-then-pitch gives a different result.
	other := RotateX(RotateY(m, 60), 30)
	same := true
	for i := range got {
		if !got[i].ApproxEqual(other[i], 1e-6) {
			same = false
		}
	}
	if same {
		t.Fatalf("RotateXY() matched yaw-first order, want pitch-first")
	}
}

func TestScaleAboutCentroid(t *testing.T) {
	m := Mesh{{0, 0, 0}, {2, 0, 0}}
	got := Scale(m, 3, 1, 1)
	meshEqual(t, got, Mesh{{-2, 0, 0}, {4, 0, 0}}, tol)

	flat := Scale(m, 0, 0, 0)
	meshEqual(t, flat, Mesh{{1, 0, 0}, {1, 0, 0}}, tol)
}

func TestCameraRotationPivotsAtOrigin(t *testing.T) {
	m := Mesh{{0, 0, 10}, {0, 0, 20}}

	cam := RotateRelativeToCameraY(m, 90)
	meshEqual(t, cam, Mesh{{10, 0, 0}, {20, 0, 0}}, 1e-9)

	obj := RotateY(m, 90)
	meshEqual(t, obj, Mesh{{-5, 0, 15}, {5, 0, 15}}, 1e-9)

	camX := RotateRelativeToCameraX(m, 90)
	meshEqual(t, camX, Mesh{{0, -10, 0}, {0, -20, 0}}, 1e-9)
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	m := testMesh()
	orig := append(Mesh(nil), m...)
	_ = Scale(m, 2, 2, 2)
	_ = RotateXY(m, 10, 20)
	_ = Translate(m, 1, 1, 1)
	meshEqual(t, m, orig, 0)
}
