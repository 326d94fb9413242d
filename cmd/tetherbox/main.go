// Package main is the entry point for the tetherbox demo.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/glasswing/tetherbox/internal/config"
	"github.com/glasswing/tetherbox/internal/engine/physics"
	"github.com/glasswing/tetherbox/internal/engine/scene"
	"github.com/glasswing/tetherbox/internal/game"
	"github.com/glasswing/tetherbox/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config write error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Tetherbox ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run game
	g, err := game.New(gameConfig(cfg))
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	// Run the game loop
	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}

// gameConfig maps the loaded file config onto the game's wiring config.
// Body parameters the file does not expose keep their defaults.
func gameConfig(cfg *config.Config) game.Config {
	body := physics.DefaultConfig()
	body.Mass = cfg.Simulation.Mass
	body.Gravity = vec3(cfg.Simulation.Gravity)
	body.InitialVelocity = vec3(cfg.Simulation.InitialVelocity)
	body.Drag = cfg.Simulation.Drag
	body.AngularDamping = cfg.Simulation.AngularDamping
	body.Spring.Anchor = vec3(cfg.Simulation.Anchor)
	body.Spring.Stiffness = cfg.Simulation.Stiffness
	body.Spring.RestLength = cfg.Simulation.RestLength

	return game.Config{
		Title:      "Tetherbox",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Substep:    cfg.Simulation.Substep,
		Scene: scene.Config{
			Rows: cfg.Scene.Rows,
			Cols: cfg.Scene.Cols,
			Seed: cfg.Scene.Seed,
			Body: body,
		},
	}
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
