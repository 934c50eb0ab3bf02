// Package scene builds the per-frame line list from the camera state.
package scene

import (
	"wireframe/internal/camera"
	"wireframe/internal/geometry"
	"wireframe/internal/mathutil"
	"wireframe/internal/projection"
	"wireframe/internal/transform"
)

// Segment is one screen-space line.
type Segment [2]mathutil.Vec2

// Frame is the output of one pipeline run.
type Frame struct {
	Points   []mathutil.Vec2
	Segments []Segment
	Skipped  int // edges whose endpoints were not in Points
}

// Options configures the pipeline.
type Options struct {
	Lens        projection.Params
	ObjectScale float64
}

// Build runs the cuboid through scale, view, and projection for camera s.
func Build(s camera.State, opts Options) Frame {
	mesh := geometry.Cuboid()
	if opts.ObjectScale != 0 && opts.ObjectScale != 1 {
		mesh = transform.Scale(mesh, opts.ObjectScale, opts.ObjectScale, opts.ObjectScale)
	}
	mesh = camera.View(mesh, s)

	pts := projection.Project(mesh, opts.Lens)
	segs, skipped := Segments(pts, geometry.CuboidEdges())
	return Frame{Points: pts, Segments: segs, Skipped: skipped}
}

// Segments resolves edges against projected points. Edges with an endpoint
// outside pts are skipped and counted; the rest are returned in edge order.
func Segments(pts []mathutil.Vec2, edges geometry.EdgeList) ([]Segment, int) {
	segs := make([]Segment, 0, len(edges))
	skipped := 0
	for _, e := range edges {
		if !e.InRange(len(pts)) {
			skipped++
			continue
		}
		segs = append(segs, Segment{pts[e[0]], pts[e[1]]})
	}
	return segs, skipped
}
