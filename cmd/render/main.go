package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wireframe/internal/batch"
	"wireframe/internal/camera"
	"wireframe/internal/config"
	"wireframe/internal/logging"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 800)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 600)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 120)")
	verbose := flag.Bool("v", false, "Log progress to stderr")

	flag.Parse()

	if *verbose {
		logging.Enable(os.Stderr, slog.LevelDebug)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Frames:    *frames,
		Workers:   *workers,
		Width:     *width,
		Height:    *height,
		FOV:       *fov,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := camera.Input{Forward: cfg.Forward, MouseDX: cfg.YawStep / cfg.MouseSensitivity}
	states := batch.Plan(camera.Start(), cfg.Controls(), input, 1/float64(cfg.TPS), cfg.Frames)

	fmt.Printf("Wireframe flythrough → %s\n", cfg.Format)
	fmt.Printf("Frames: %d, Size: %dx%d (x%d), Workers: %d\n", len(states), cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Scene:       cfg.SceneOptions(),
		Style:       cfg.Style(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}

	results := batch.Run(batchCfg, states)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", batch.FileName(e.Frame, cfg.Format), e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, cfg.WebPQuality, results)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
