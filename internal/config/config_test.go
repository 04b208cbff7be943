package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseJump(DefaultYAML())
	require.NoError(t, err)

	def := DefaultJumpConfig()
	assert.Equal(t, def.World.Width, cfg.World.Width)
	assert.Equal(t, def.World.Height, cfg.World.Height)
	assert.Equal(t, def.World.MaxBlocks, cfg.World.MaxBlocks)
	assert.InDelta(t, def.World.CameraFraction, cfg.World.CameraFraction, 1e-5)
	assert.Equal(t, def.Physics, cfg.Physics)
	assert.Equal(t, def.Player, cfg.Player)
	assert.Equal(t, def.Platforms, cfg.Platforms)
	assert.Equal(t, def.Generator, cfg.Generator)
	assert.Equal(t, def.PowerUps, cfg.PowerUps)
	assert.Equal(t, def.Enemies, cfg.Enemies)
	assert.Equal(t, def.Modes, cfg.Modes)
	assert.Equal(t, def.Difficulty, cfg.Difficulty)
}

func TestLoadJumpCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jump.yaml")
	data := []byte("physics:\n  gravity: 0.7\nworld:\n  max_blocks: 4\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadJump(path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Physics.Gravity)
	assert.Equal(t, 4, cfg.World.MaxBlocks)
	// Untouched sections keep their defaults
	assert.Equal(t, DefaultJumpConfig().Platforms.Boost, cfg.Platforms.Boost)
}

func TestLoadJumpErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"malformed", "world: [unclosed"},
		{"positive boost", "platforms:\n  boost: 5\n"},
		{"zero gravity", "physics:\n  gravity: 0\n"},
		{"no blocks", "world:\n  max_blocks: 0\n"},
		{"reach above one", "generator:\n  reach_factor: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := LoadJump(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadJump(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyJumpPreset(t *testing.T) {
	base := DefaultJumpConfig()

	easy := DefaultJumpConfig()
	ApplyJumpPreset(&easy, DifficultyEasy)
	assert.True(t, easy.Difficulty.Enabled)
	assert.Equal(t, 0.0, easy.Difficulty.InitialLevel)
	assert.Less(t, easy.Enemies.Chance, base.Enemies.Chance)

	hard := DefaultJumpConfig()
	ApplyJumpPreset(&hard, DifficultyHard)
	assert.Equal(t, 0.7, hard.Difficulty.InitialLevel)
	assert.Equal(t, base.Generator.KindWeights.Breaking*2, hard.Generator.KindWeights.Breaking)

	fixed := DefaultJumpConfig()
	ApplyJumpPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Enabled)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"nightmare", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
