package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wireframe/internal/camera"
	"wireframe/internal/config"
	"wireframe/internal/logging"
	"wireframe/internal/scene"
)

type game struct {
	cfg  config.Config
	ctl  camera.Controls
	opts scene.Options
	dt   float64

	cam      camera.State
	captured bool

	lastX, lastY int
	havePrev     bool

	frame scene.Frame
}

func newGame(cfg config.Config) *game {
	return &game{
		cfg:  cfg,
		ctl:  cfg.Controls(),
		opts: cfg.SceneOptions(),
		dt:   1 / float64(cfg.TPS),
		cam:  camera.Start(),
	}
}

func (g *game) setCaptured(on bool) {
	g.captured = on
	g.havePrev = false
	if on {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	logging.Logger().Debug("cursor", "captured", on)
}

func (g *game) pollInput() camera.Input {
	in := camera.Input{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	x, y := ebiten.CursorPosition()
	if g.captured && g.havePrev {
		in.MouseDX = float64(x - g.lastX)
		in.MouseDY = float64(y - g.lastY)
	}
	g.lastX, g.lastY = x, y
	g.havePrev = true

	return in
}

func (g *game) Update() error {
	if g.captured && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setCaptured(false)
	} else if !g.captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.setCaptured(true)
	}

	g.cam = g.ctl.Step(g.cam, g.pollInput(), g.dt)
	g.frame = scene.Build(g.cam, g.opts)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w := float32(g.cfg.LineWidth)
	for _, s := range g.frame.Segments {
		if !s[0].IsFinite() || !s[1].IsFinite() {
			continue
		}
		vector.StrokeLine(screen,
			float32(s[0][0]), float32(s[0][1]),
			float32(s[1][0]), float32(s[1][1]),
			w, color.White, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
