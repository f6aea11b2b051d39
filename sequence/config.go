package sequence

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors
var (
	ErrBadResistance = errors.New("resistance must be strictly between 0 and 1")
	ErrBadDuration   = errors.New("duration must be positive")
	ErrBadDelay      = errors.New("initial delay must not be negative")
	ErrBadSharpness  = errors.New("sharpness must be positive")
	ErrBadFrequency  = errors.New("frequency must not be negative")
	ErrBadDamping    = errors.New("damping must not be negative")
)

// Config is the tuning surface of one break sequence
// Immutable after construction; validated once, never re-checked per tick
type Config struct {
	// TargetAngleX is the rotation offset applied around X, in degrees,
	// relative to the orientation captured at activation. Negative swings
	// the grate downward for a ceiling-mounted hinge
	TargetAngleX float64 `yaml:"target_angle_x"`

	// Duration is the animating phase length in seconds
	Duration float64 `yaml:"duration"`

	// InitialDelay is the silent hold before the creak, in seconds
	InitialDelay float64 `yaml:"initial_delay"`

	// Resistance is the fraction of Duration spent holding, (0, 1)
	// Both it and its complement divide the curve; validated strictly
	Resistance float64 `yaml:"resistance"`

	// Sharpness is the break-phase exponent; larger snaps harder
	Sharpness float64 `yaml:"sharpness"`

	// Frequency is the spring-back cycle count over the break phase
	Frequency float64 `yaml:"frequency"`

	// Damping is the spring-back decay rate
	Damping float64 `yaml:"damping"`
}

// DefaultConfig returns the reference tuning of the shipped vent
func DefaultConfig() Config {
	return Config{
		TargetAngleX: -75,
		Duration:     1.5,
		InitialDelay: 0.2,
		Resistance:   0.8,
		Sharpness:    8,
		Frequency:    5,
		Damping:      3,
	}
}

// Validate rejects misconfiguration instead of clamping: silently
// reshaping these values would mask authoring mistakes in the curve
func (c Config) Validate() error {
	if c.Resistance <= 0 || c.Resistance >= 1 {
		return fmt.Errorf("%w: got %v", ErrBadResistance, c.Resistance)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadDuration, c.Duration)
	}
	if c.InitialDelay < 0 {
		return fmt.Errorf("%w: got %v", ErrBadDelay, c.InitialDelay)
	}
	if c.Sharpness <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadSharpness, c.Sharpness)
	}
	if c.Frequency < 0 {
		return fmt.Errorf("%w: got %v", ErrBadFrequency, c.Frequency)
	}
	if c.Damping < 0 {
		return fmt.Errorf("%w: got %v", ErrBadDamping, c.Damping)
	}
	return nil
}

// LoadConfig reads a YAML tuning file, applying defaults for absent
// fields and validating the result
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
