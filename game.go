package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cartpole/ecs/render"
	"github.com/milk9111/cartpole/ecs/system"
	"github.com/milk9111/cartpole/prefabs"
	"github.com/milk9111/cartpole/sim"
	"github.com/milk9111/cartpole/telemetry"
)

// hudSamples bounds the telemetry kept in memory while the window is open.
const hudSamples = 600

var backgroundColor = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}

type Game struct {
	frames int
	debug  bool

	specs     *prefabs.Specs
	sim       *sim.Sim
	keys      ebitenKeys
	recorder  *telemetry.Recorder
	telemetry *system.TelemetrySystem
	renderer  *render.RenderSystem
	watcher   *prefabs.Watcher
	logger    *slog.Logger
}

func NewGame(logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}

	specs, err := prefabs.LoadSpecs()
	if err != nil {
		return nil, fmt.Errorf("game: load specs: %w", err)
	}

	g := &Game{
		debug:    specs.World.Debug,
		specs:    specs,
		renderer: render.NewRenderSystem(),
		logger:   logger,
	}
	if err := g.rebuild(); err != nil {
		return nil, err
	}

	dir := prefabs.Dir()
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		watcher, err := prefabs.NewWatcher(dir)
		if err != nil {
			logger.Warn("spec hot reload disabled", "dir", dir, "error", err)
		} else {
			g.watcher = watcher
			logger.Info("watching specs", "dir", dir)
		}
	} else if !errors.Is(err, fs.ErrNotExist) && err != nil {
		logger.Warn("spec directory unreadable", "dir", dir, "error", err)
	} else {
		logger.Debug("no spec directory on disk, using embedded specs", "dir", dir)
	}

	return g, nil
}

// rebuild replaces the running scene with a fresh one built from g.specs.
func (g *Game) rebuild() error {
	g.recorder = telemetry.NewRecorder(hudSamples, nil)
	g.telemetry = system.NewTelemetrySystem(g.recorder, g.specs.World.TimeStep(), g.logger)

	s, err := sim.New(g.specs, g.keys, g.telemetry)
	if err != nil {
		return fmt.Errorf("game: build scene: %w", err)
	}
	g.sim = s
	ebiten.SetTPS(g.specs.World.TicksPerSecond)
	return nil
}

func (g *Game) Close() error {
	if g == nil || g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	g.reloadSpecs()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.sim.Step()

	if g.sim.ResetRequested() {
		g.logger.Info("reset")
		if err := g.rebuild(); err != nil {
			return err
		}
	}
	return nil
}

// reloadSpecs drains pending watcher events without blocking and rebuilds
// the scene once if any spec changed. A bad spec keeps the running scene.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}

	changed := ""
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = filepath.Base(name)
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("spec watcher", "error", err)
			continue
		default:
		}
		break
	}
	if changed == "" {
		return
	}

	specs, err := prefabs.LoadSpecs()
	if err != nil {
		g.logger.Error("spec reload failed", "file", changed, "error", err)
		return
	}
	prev := g.specs
	g.specs = specs
	if err := g.rebuild(); err != nil {
		g.logger.Error("scene rebuild failed", "file", changed, "error", err)
		g.specs = prev
		return
	}
	g.logger.Info("specs reloaded", "file", changed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.renderer.Draw(g.sim.World, screen)
	if g.debug {
		render.DrawPhysicsDebug(g.sim.Physics.Space(), g.sim.World, screen)
	}

	hud := fmt.Sprintf("Frames: %d    TPS: %.1f    FPS: %.1f\nLeft/Right drive  Down brake  R reset  F1 colliders", g.frames, ebiten.ActualTPS(), ebiten.ActualFPS())
	if s, ok := g.recorder.Last(); ok {
		hud += fmt.Sprintf("\nx: %.1f  angle: %.1f deg  torque: %.0f / %.0f",
			s.CarriageX, s.PendulumAngle*180/math.Pi, s.LeftTorque, s.RightTorque)
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.specs.World.Screen.Width), float64(g.specs.World.Screen.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
