package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"wireframe/internal/camera"
	"wireframe/internal/logging"
	"wireframe/internal/postprocess"
	"wireframe/internal/raster"
	"wireframe/internal/scene"
)

// Config holds all shared settings for a flythrough render.
type Config struct {
	OutputDir   string
	Format      string // "webp" or "tga"
	Scene       scene.Options
	Style       raster.Style
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame    int
	File     string
	Camera   camera.State
	Segments int
	Skipped  int
	Success  bool
	Error    string
}

// Plan steps the camera frames times, feeding it the same input each tick.
// The first entry is start itself.
func Plan(start camera.State, ctl camera.Controls, in camera.Input, dt float64, frames int) []camera.State {
	if frames <= 0 {
		return nil
	}
	states := make([]camera.State, frames)
	states[0] = start
	for i := 1; i < frames; i++ {
		states[i] = ctl.Step(states[i-1], in, dt)
	}
	return states
}

// FileName returns the output name for frame i.
func FileName(i int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", i, format)
}

// Run renders every camera state using a worker pool.
func Run(cfg Config, states []camera.State) []Result {
	total := len(states)
	results := make([]Result, total)
	var processed atomic.Int64

	log := logging.Logger()
	start := time.Now()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Camera: states[i], Error: err.Error()}
		}
		return results
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "fps", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx, states[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range states {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	log.Debug("batch finished", "frames", total, "elapsed", time.Since(start))
	return results
}

func processFrame(cfg Config, idx int, cam camera.State) Result {
	name := FileName(idx, cfg.Format)
	res := Result{Frame: idx, File: name, Camera: cam}

	f := scene.Build(cam, cfg.Scene)
	res.Skipped = f.Skipped

	img, drawn := raster.RenderFrame(f, cfg.Width, cfg.Height, cfg.Supersample, cfg.Style)
	res.Segments = drawn
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	if f.Skipped > 0 {
		logging.Logger().Debug("edges skipped", "frame", idx, "skipped", f.Skipped, "points", len(f.Points))
	}

	out, err := os.Create(filepath.Join(cfg.OutputDir, name))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer out.Close()

	if err := Encode(out, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// Encode writes img in the given format.
func Encode(w io.Writer, img *image.NRGBA, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
