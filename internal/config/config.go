package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"wireframe/internal/camera"
	"wireframe/internal/projection"
	"wireframe/internal/raster"
	"wireframe/internal/scene"
)

// Config holds window, lens, movement and offline render settings.
type Config struct {
	// Window / surface
	Width  int `json:"width"`
	Height int `json:"height"`
	TPS    int `json:"tps"`

	// Lens
	FOV  float64 `json:"fov"`
	Near float64 `json:"near"`
	Far  float64 `json:"far"`

	// Scene and input
	ObjectScale      float64 `json:"object_scale"`
	MouseSensitivity float64 `json:"mouse_sensitivity"`
	LineWidth        float64 `json:"line_width"`

	// Offline flythrough
	OutputDir   string  `json:"output_dir"`
	Format      string  `json:"format"`
	Frames      int     `json:"frames"`
	Supersample int     `json:"supersample"`
	YawStep     float64 `json:"yaw_step"`
	Forward     bool    `json:"forward"`
	WebPQuality int     `json:"webp_quality"`
	Workers     int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Frames    int
	Workers   int
	Width     int
	Height    int
	FOV       float64
}

// Resolve applies flag overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.FOV <= 0 {
		c.FOV = 120
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= 0 {
		c.Far = 1000
	}
	if c.ObjectScale == 0 {
		c.ObjectScale = 10
	}
	if c.MouseSensitivity == 0 {
		c.MouseSensitivity = 1
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	c.OutputDir = filepath.Clean(c.OutputDir)
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.YawStep == 0 {
		c.YawStep = 3
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects settings the offline renderer cannot act on. Lens values
// are not checked; a degenerate lens renders as missing geometry.
func (c Config) Validate() error {
	switch c.Format {
	case "webp", "tga":
	default:
		return fmt.Errorf("config: unknown format %q (want webp or tga)", c.Format)
	}
	return nil
}

// Lens returns the projection parameters for a Width×Height surface.
func (c Config) Lens() projection.Params {
	return projection.Params{
		FOV:          c.FOV,
		Aspect:       float64(c.Width) / float64(c.Height),
		Near:         c.Near,
		Far:          c.Far,
		ScreenWidth:  float64(c.Width),
		ScreenHeight: float64(c.Height),
	}
}

// SceneOptions returns the frame pipeline options.
func (c Config) SceneOptions() scene.Options {
	return scene.Options{Lens: c.Lens(), ObjectScale: c.ObjectScale}
}

// Controls returns the movement tuning with the configured mouse sensitivity.
func (c Config) Controls() camera.Controls {
	ctl := camera.DefaultControls()
	ctl.Sensitivity = c.MouseSensitivity
	return ctl
}

// Style returns the offline line style.
func (c Config) Style() raster.Style {
	st := raster.DefaultStyle()
	st.LineWidth = c.LineWidth
	return st
}
