package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"wireframe/internal/config"
	"wireframe/internal/logging"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Window width (default: 800)")
	height := flag.Int("height", 0, "Window height (default: 600)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 120)")
	verbose := flag.Bool("v", false, "Debug logging to stderr")
	flag.Parse()

	if *verbose {
		logging.Enable(os.Stderr, slog.LevelDebug)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, FOV: *fov})

	g := newGame(cfg)
	ebiten.SetWindowTitle("wireframe")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	g.setCaptured(true)

	logging.Logger().Info("window", "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS, "fov", cfg.FOV)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
