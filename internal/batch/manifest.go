package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes one rendered frame.
type ManifestEntry struct {
	Frame    int        `json:"frame"`
	Image    string     `json:"image"`
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	Segments int        `json:"segments"`
	Skipped  int        `json:"skipped_edges"`
	Error    string     `json:"error,omitempty"`
}

// Manifest is the top-level manifest.json document.
type Manifest struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Format      string          `json:"format"`
	WebPQuality int             `json:"webp_quality,omitempty"`
	Frames      []ManifestEntry `json:"frames"`
}

// NewManifest builds a manifest from batch results in frame order.
func NewManifest(cfg Config, quality int, results []Result) Manifest {
	m := Manifest{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: cfg.Format,
		Frames: make([]ManifestEntry, len(results)),
	}
	if cfg.Format == "webp" {
		m.WebPQuality = quality
	}
	for i, r := range results {
		e := ManifestEntry{
			Frame:    r.Frame,
			Position: r.Camera.Pos,
			Yaw:      r.Camera.Yaw,
			Pitch:    r.Camera.Pitch,
			Segments: r.Segments,
			Skipped:  r.Skipped,
			Error:    r.Error,
		}
		if r.Success {
			e.Image = r.File
		}
		m.Frames[i] = e
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
