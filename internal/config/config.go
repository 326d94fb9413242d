// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Scene      SceneConfig      `yaml:"scene"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds terrain generation settings.
type SceneConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	// Seed feeds the terrain noise phases; zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// SimulationConfig holds the body and tether parameters.
type SimulationConfig struct {
	// Substep caps the simulation step length in seconds.
	Substep float64 `yaml:"substep"`

	Mass            float64    `yaml:"mass"`
	Gravity         [3]float64 `yaml:"gravity"`
	InitialVelocity [3]float64 `yaml:"initial_velocity"`
	Drag            float64    `yaml:"drag"`
	AngularDamping  float64    `yaml:"angular_damping"`

	Stiffness  float64    `yaml:"stiffness"`
	RestLength float64    `yaml:"rest_length"`
	Anchor     [3]float64 `yaml:"anchor"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's original parameters.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      600,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Rows: 20,
			Cols: 20,
			Seed: 1,
		},
		Simulation: SimulationConfig{
			Substep:         0.1,
			Mass:            1,
			Gravity:         [3]float64{0, -5, 0},
			InitialVelocity: [3]float64{1, 0, 0},
			Drag:            0.3,
			AngularDamping:  0.3,
			Stiffness:       1,
			RestLength:      3,
			Anchor:          [3]float64{0, 5, 0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
