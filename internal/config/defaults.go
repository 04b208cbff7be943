package config

import (
	_ "embed"
)

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

// DefaultJumpConfig returns the hardcoded default configuration.
// It mirrors defaults/jump.yaml and is used when the embedded file cannot be parsed.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		World: WorldConfig{
			Width:          480,
			Height:         800,
			MaxBlocks:      3,
			CameraFraction: 3.0 / 7.0,
			ScoreScale:     0.25,
		},
		Physics: PhysicsConfig{
			Gravity:         0.5,
			LegsHeight:      0.8,
			MaxFallSpeed:    10,
			HorizontalAccel: 0.6,
			HorizontalDecel: 0.4,
			HorizontalLimit: 7,
			StompBoost:      -16,
			DeathMargin:     1.5,
		},
		Player: PlayerConfig{
			Width:  60,
			Height: 60,
			Hitbox: HitboxConfig{Left: 12, Top: 6, Right: 48, Bottom: 60},
		},
		Platforms: PlatformConfig{
			Width:         57,
			Height:        15,
			Boost:         -16,
			MoveStep:      2,
			VerticalRange: 0.2,
			BreakFrames:   3,
		},
		Generator: GeneratorConfig{
			MinPlatforms:       8,
			PlatformDivisor:    120,
			HeightDeviationMin: -0.8,
			HeightDeviationMax: 0.9,
			PlacementAttempts:  40,
			GridStep:           4,
			ReachFactor:        0.85,
			BlockWeights: BlockWeights{
				Standard:       6,
				NormalOnly:     2,
				HorizontalOnly: 1,
				VerticalOnly:   1,
			},
			KindWeights: KindWeights{
				Normal:     70,
				Horizontal: 12,
				Vertical:   6,
				Breaking:   12,
			},
		},
		PowerUps: PowerUpConfig{
			Chance: 0.06,
			Weights: PowerUpWeights{
				Spring:     55,
				Trampoline: 20,
				Propeller:  15,
				Jetpack:    10,
			},
			SpringScale:     1.6,
			TrampolineScale: 2.2,
			RetractFrames:   12,
			PropellerThrust: -8,
			PropellerFrames: 180,
			JetpackThrust:   -14,
			JetpackFrames:   150,
		},
		Enemies: EnemyConfig{
			Chance:     0.2,
			MinScore:   300,
			Width:      70,
			Height:     50,
			HoverStep:  1.5,
			HoverRatio: 0.5,
		},
		Modes: ModesConfig{
			Regular:    ModeConfig{GravityScale: 1.0, BoostScale: 1.0, SpeedLimitScale: 1.0},
			Space:      ModeConfig{GravityScale: 0.5, BoostScale: 1.0, SpeedLimitScale: 1.2},
			Underwater: ModeConfig{GravityScale: 0.3, BoostScale: 0.5, SpeedLimitScale: 0.6},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpecialBlockBonus: 6,
				PlatformReduction: 2,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumpYAML
}
