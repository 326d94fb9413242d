// Package game implements the main loop driving the tetherbox demo.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/glasswing/tetherbox/internal/engine/debug"
	"github.com/glasswing/tetherbox/internal/engine/input"
	"github.com/glasswing/tetherbox/internal/engine/renderer"
	"github.com/glasswing/tetherbox/internal/engine/scene"
	"github.com/glasswing/tetherbox/internal/engine/window"
)

// Config holds game configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// Substep caps the simulation step length in seconds; wall-clock
	// frames are split into substeps no longer than this.
	Substep float64

	Scene scene.Config
}

// Game wires the window, renderer, input and scene together.
type Game struct {
	config  Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	shots    *debug.ScreenshotCapture

	// simTime is the end of the last simulated substep.
	simTime float64
}

// New creates the window and GL context, builds the scene and uploads it.
func New(cfg Config) (*Game, error) {
	slog.Info("initializing game",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
	)

	if cfg.Substep <= 0 {
		cfg.Substep = 0.1
	}

	g := &Game{
		config:  cfg,
		running: false,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	sceneCfg := cfg.Scene
	w, h := g.window.Size()
	sceneCfg.Aspect = float64(w) / float64(h)
	g.scene = scene.New(sceneCfg)
	g.renderer.Upload(g.scene)

	g.input = input.New()
	g.shots = debug.NewScreenshotCapture("screenshots", "tetherbox")

	slog.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop. It returns when the window closes or escape
// is pressed.
func (g *Game) Run() error {
	g.running = true
	g.simTime = g.window.Time()

	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting game loop")

	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}

		// Any key releases the body; escape leaves the demo.
		for _, event := range g.input.Events() {
			if event.Type != input.EventKeyDown {
				continue
			}
			g.scene.Activate()
			if event.Key == sdl.SCANCODE_ESCAPE {
				g.running = false
			}
		}

		g.update(g.window.Time())

		g.renderer.RenderFrame(g.scene)
		if g.input.IsKeyPressed(sdl.SCANCODE_F12) {
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "sim_time", fmt.Sprintf("%.2fs", g.simTime))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// screenshot saves the frame just drawn, before the buffer swap.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		slog.Error("screenshot failed", "error", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}

// update advances the simulation from the last simulated instant to now,
// in substeps no longer than the configured cap.
func (g *Game) update(now float64) {
	for t := g.simTime; t < now; t += g.config.Substep {
		dt := math.Min(g.config.Substep, now-t)
		g.scene.Animate(t, t+dt)
	}
	g.simTime = now
}

// Close cleans up game resources.
func (g *Game) Close() {
	slog.Info("closing game")

	if g.renderer != nil {
		g.renderer.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
