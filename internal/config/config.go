package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the path to the game config file, relative to the process working directory.
const ConfigPath = "config/game.yaml"

// Window holds the window and frame-rate settings used by graphics.Run.
type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int32  `yaml:"target_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Engine holds developer overlay preferences. They can be changed at runtime from the console.
type Engine struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	GridVisible  bool `yaml:"grid_visible"`
	ShowProbes   bool `yaml:"show_probes"`
}

// World holds the tuning of the simulation: spawning, thresholds, per-frame steps and the walk cycle.
// Distances are in world units, TurnStep in radians per frame, WalkFrequency in radians per millisecond.
// Seed 0 means a time-based seed.
type World struct {
	BoxCount           int     `yaml:"box_count"`
	SpawnExtent        float32 `yaml:"spawn_extent"`
	BoxSize            float32 `yaml:"box_size"`
	ActivationDistance float32 `yaml:"activation_distance"`
	BlockDistance      float32 `yaml:"block_distance"`
	SelfHitEpsilon     float32 `yaml:"self_hit_epsilon"`
	MoveStep           float32 `yaml:"move_step"`
	TurnStep           float32 `yaml:"turn_step"`
	ProbeHeight        float32 `yaml:"probe_height"`
	WalkFrequency      float32 `yaml:"walk_frequency"`
	WalkAmplitude      float32 `yaml:"walk_amplitude"`
	Seed               int64   `yaml:"seed"`
}

// Config is the whole game configuration. CameraOffset is the follow-camera offset in character space.
type Config struct {
	Window       Window     `yaml:"window"`
	Engine       Engine     `yaml:"engine"`
	World        World      `yaml:"world"`
	CameraOffset [3]float32 `yaml:"camera_offset"`
}

// Default returns the default configuration (ten boxes, FPS readout on, grid on, probes hidden).
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "magic boxes",
			TargetFPS: 60,
		},
		Engine: Engine{
			ShowFPS:     true,
			GridVisible: true,
		},
		World: World{
			BoxCount:           10,
			SpawnExtent:        15,
			BoxSize:            1,
			ActivationDistance: 2,
			BlockDistance:      1,
			SelfHitEpsilon:     0.0001,
			MoveStep:           0.1,
			TurnStep:           0.025,
			ProbeHeight:        0.5,
			WalkFrequency:      0.005,
			WalkAmplitude:      0.5,
		},
		CameraOffset: [3]float32{0, 3, 10},
	}
}

// Load reads the config from path. Keys missing from the file keep their Default() value.
// A missing file is not an error. An unreadable or invalid file returns Default() together with the error
// so the caller can log it and keep running.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings the simulation cannot run with.
func (c Config) Validate() error {
	w := c.World
	switch {
	case w.BoxCount < 0:
		return errors.New("box_count must not be negative")
	case w.SpawnExtent <= 0:
		return errors.New("spawn_extent must be positive")
	case w.BoxSize <= 0:
		return errors.New("box_size must be positive")
	case w.BlockDistance < w.SelfHitEpsilon:
		return errors.New("block_distance must not be below self_hit_epsilon")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	return nil
}

// Save writes the config to path as YAML, creating the parent directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
