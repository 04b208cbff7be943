// Package config provides YAML-based game configuration loading and
// difficulty management for the jump platform.
package config

// JumpConfig contains all configuration for the vertical jumping game.
// Distances are in world pixels; speeds are per tick.
type JumpConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Generator  GeneratorConfig  `yaml:"generator"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Modes      ModesConfig      `yaml:"modes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the virtual screen and camera.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MaxBlocks      int     `yaml:"max_blocks"`
	CameraFraction float64 `yaml:"camera_fraction"` // Player kept this far from the top
	ScoreScale     float64 `yaml:"score_scale"`     // Points per pixel climbed
}

// PhysicsConfig defines gravity, landing and steering parameters.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	LegsHeight      float64 `yaml:"legs_height"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	HorizontalAccel float64 `yaml:"horizontal_accel"`
	HorizontalDecel float64 `yaml:"horizontal_decel"`
	HorizontalLimit float64 `yaml:"horizontal_limit"`
	StompBoost      float64 `yaml:"stomp_boost"`
	DeathMargin     float64 `yaml:"death_margin"` // Multiple of the hitbox bottom
}

// HitboxConfig holds hitbox offsets relative to an entity position.
type HitboxConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// PlayerConfig defines the player's sprite and hitbox.
type PlayerConfig struct {
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Hitbox HitboxConfig `yaml:"hitbox"`
}

// PlatformConfig defines platform size and variant behavior.
type PlatformConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Boost         float64 `yaml:"boost"`
	MoveStep      float64 `yaml:"move_step"`
	VerticalRange float64 `yaml:"vertical_range"` // Fraction of world height
	BreakFrames   int     `yaml:"break_frames"`
}

// BlockWeights are the relative frequencies of each block type.
type BlockWeights struct {
	Standard       int `yaml:"standard"`
	NormalOnly     int `yaml:"normal_only"`
	HorizontalOnly int `yaml:"horizontal_only"`
	VerticalOnly   int `yaml:"vertical_only"`
}

// KindWeights are the relative frequencies of platform kinds in a standard block.
type KindWeights struct {
	Normal     int `yaml:"normal"`
	Horizontal int `yaml:"horizontal"`
	Vertical   int `yaml:"vertical"`
	Breaking   int `yaml:"breaking"`
}

// GeneratorConfig defines procedural block generation.
type GeneratorConfig struct {
	MinPlatforms       int          `yaml:"min_platforms"`
	PlatformDivisor    float64      `yaml:"platform_divisor"` // max = (width+height)/divisor
	HeightDeviationMin float64      `yaml:"height_deviation_min"`
	HeightDeviationMax float64      `yaml:"height_deviation_max"`
	PlacementAttempts  int          `yaml:"placement_attempts"`
	GridStep           float64      `yaml:"grid_step"`
	ReachFactor        float64      `yaml:"reach_factor"` // Fraction of the theoretical jump height used
	BlockWeights       BlockWeights `yaml:"block_weights"`
	KindWeights        KindWeights  `yaml:"kind_weights"`
}

// PowerUpWeights are the relative frequencies of power-up types.
type PowerUpWeights struct {
	Spring     int `yaml:"spring"`
	Trampoline int `yaml:"trampoline"`
	Propeller  int `yaml:"propeller"`
	Jetpack    int `yaml:"jetpack"`
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	Chance          float64        `yaml:"chance"` // Per eligible platform
	Weights         PowerUpWeights `yaml:"weights"`
	SpringScale     float64        `yaml:"spring_scale"`
	TrampolineScale float64        `yaml:"trampoline_scale"`
	RetractFrames   int            `yaml:"retract_frames"`
	PropellerThrust float64        `yaml:"propeller_thrust"`
	PropellerFrames int            `yaml:"propeller_frames"`
	JetpackThrust   float64        `yaml:"jetpack_thrust"`
	JetpackFrames   int            `yaml:"jetpack_frames"`
}

// EnemyConfig defines enemy spawning.
type EnemyConfig struct {
	Chance     float64 `yaml:"chance"` // Per block
	MinScore   int     `yaml:"min_score"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	HoverStep  float64 `yaml:"hover_step"`
	HoverRatio float64 `yaml:"hover_ratio"` // Share of enemies that hover
}

// ModeConfig scales physics for one movement strategy.
type ModeConfig struct {
	GravityScale    float64 `yaml:"gravity_scale"`
	BoostScale      float64 `yaml:"boost_scale"`
	SpeedLimitScale float64 `yaml:"speed_limit_scale"`
}

// ModesConfig holds the multipliers of each movement strategy.
type ModesConfig struct {
	Regular    ModeConfig `yaml:"regular"`
	Space      ModeConfig `yaml:"space"`
	Underwater ModeConfig `yaml:"underwater"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpecialBlockBonus int `yaml:"special_block_bonus"` // Weight added to special blocks at max difficulty
	PlatformReduction int `yaml:"platform_reduction"`  // Platforms removed from the range at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
