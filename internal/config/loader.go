package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJump loads the game configuration.
// Search order: customPath -> ~/.jump/configs/jump.yaml -> ./configs/jump.yaml -> embedded default
func LoadJump(customPath string) (JumpConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseJump(data)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("jump.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseJump(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/jump.yaml"); err == nil {
		if cfg, err := parseJump(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseJump(defaultJumpYAML)
	if err != nil {
		return DefaultJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseJump overlays YAML on top of the hardcoded defaults so partial files work.
func parseJump(data []byte) (JumpConfig, error) {
	cfg := DefaultJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumpConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return JumpConfig{}, err
	}
	return cfg, nil
}

// Validate reports configuration values that would make the world unplayable.
func (c JumpConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.MaxBlocks < 1 {
		errs = append(errs, fmt.Errorf("max_blocks must be at least 1, got %d", c.World.MaxBlocks))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Platforms.Boost >= 0 {
		errs = append(errs, fmt.Errorf("platform boost must be negative (up), got %v", c.Platforms.Boost))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Width >= c.World.Width {
		errs = append(errs, fmt.Errorf("platform width must be in (0, world width), got %v", c.Platforms.Width))
	}
	if c.Generator.MinPlatforms < 1 {
		errs = append(errs, fmt.Errorf("min_platforms must be at least 1, got %d", c.Generator.MinPlatforms))
	}
	if c.Generator.PlatformDivisor <= 0 {
		errs = append(errs, fmt.Errorf("platform_divisor must be positive, got %v", c.Generator.PlatformDivisor))
	}
	if c.Generator.ReachFactor <= 0 || c.Generator.ReachFactor > 1 {
		errs = append(errs, fmt.Errorf("reach_factor must be in (0, 1], got %v", c.Generator.ReachFactor))
	}
	if c.Player.Hitbox.Left >= c.Player.Hitbox.Right || c.Player.Hitbox.Top >= c.Player.Hitbox.Bottom {
		errs = append(errs, fmt.Errorf("player hitbox must have positive area, got %+v", c.Player.Hitbox))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jump", "configs", filename)
}

// ApplyJumpPreset modifies the config based on a difficulty preset.
func ApplyJumpPreset(cfg *JumpConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Chance /= 2
		cfg.PowerUps.Chance *= 1.5
	case DifficultyHard:
		cfg.Enemies.Chance *= 1.5
		cfg.Generator.KindWeights.Breaking *= 2
	}
}
