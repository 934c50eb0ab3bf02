package main

import (
	"flag"
	"fmt"
	"os"

	"wireframe/internal/camera"
	"wireframe/internal/config"
	"wireframe/internal/geometry"
	"wireframe/internal/mathutil"
	"wireframe/internal/projection"
	"wireframe/internal/scene"
	"wireframe/internal/transform"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	x := flag.Float64("x", 0, "Camera X")
	y := flag.Float64("y", 0, "Camera Y")
	z := flag.Float64("z", -100, "Camera Z")
	yaw := flag.Float64("yaw", 0, "Camera yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Camera pitch in degrees")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})

	cam := camera.State{Pos: mathutil.Vec3{*x, *y, *z}, Yaw: *yaw, Pitch: *pitch}
	opts := cfg.SceneOptions()

	mesh := geometry.Cuboid()
	if opts.ObjectScale != 1 {
		mesh = transform.Scale(mesh, opts.ObjectScale, opts.ObjectScale, opts.ObjectScale)
	}
	c := transform.Centroid(mesh)
	fmt.Printf("Mesh: %d verts, centroid (%.2f, %.2f, %.2f)\n", len(mesh), c[0], c[1], c[2])

	view := camera.View(mesh, cam)
	pts := projection.Project(view, opts.Lens)
	fmt.Printf("Lens: fov=%.1f aspect=%.3f near=%g far=%g screen=%dx%d\n",
		opts.Lens.FOV, opts.Lens.Aspect, opts.Lens.Near, opts.Lens.Far, cfg.Width, cfg.Height)

	for i, v := range view {
		clamped := ""
		if v[2] < opts.Lens.Near {
			clamped = " (near clamp)"
		}
		fmt.Printf("  [%2d] cam (%9.2f, %9.2f, %9.2f)%s\n", i, v[0], v[1], v[2], clamped)
	}

	fmt.Printf("Projected: %d/%d points\n", len(pts), len(view))
	for i, p := range pts {
		fmt.Printf("  [%2d] screen (%9.2f, %9.2f)\n", i, p[0], p[1])
	}

	f := scene.Build(cam, opts)
	fmt.Printf("Segments: %d, skipped edges: %d\n", len(f.Segments), f.Skipped)
	for _, s := range f.Segments {
		fmt.Printf("  (%.1f, %.1f) -> (%.1f, %.1f)\n", s[0][0], s[0][1], s[1][0], s[1][1])
	}
}
