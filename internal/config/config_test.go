package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := "world:\n  box_count: 3\n  move_step: 0.2\ncamera_offset: [1, 2, 3]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.World.BoxCount)
	assert.InDelta(t, 0.2, cfg.World.MoveStep, 1e-6)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.CameraOffset)
	assert.InDelta(t, 2, cfg.World.ActivationDistance, 1e-6)
	assert.InDelta(t, 0.025, cfg.World.TurnStep, 1e-6)
	assert.True(t, cfg.Engine.GridVisible)
	assert.Equal(t, int32(60), cfg.Window.TargetFPS)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: [unclosed"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  box_size: 0\n"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "box_size")
	assert.Equal(t, Default(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.yaml")
	cfg := Default()
	cfg.Engine.ShowProbes = true
	cfg.CameraOffset = [3]float32{-4, 5, 6}
	cfg.World.Seed = 42

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero boxes", func(c *Config) { c.World.BoxCount = 0 }, true},
		{"negative boxes", func(c *Config) { c.World.BoxCount = -1 }, false},
		{"no spawn area", func(c *Config) { c.World.SpawnExtent = 0 }, false},
		{"block below epsilon", func(c *Config) { c.World.BlockDistance = 0 }, false},
		{"zero window", func(c *Config) { c.Window.Width = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
