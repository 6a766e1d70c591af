package knots

import (
	"errors"
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/knotedit/proximity"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable constants of an editing session.
type Config struct {
	Knots           []KnotConfig `yaml:"knots"`             // initial knots
	HitRadius       float64      `yaml:"hit_radius"`        // radius of a knot's hit-circle
	StrokeHalfWidth float64      `yaml:"stroke_half_width"` // insertion threshold around the curve
	SampleStep      float64      `yaml:"sample_step"`       // curve sampling step for proximity queries
}

// KnotConfig is a knot position in a configuration file.
type KnotConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pair returns the knot position.
func (k KnotConfig) Pair() knotedit.Pair {
	return knotedit.P(k.X, k.Y)
}

// Validate checks that the knot has finite coordinates.
func (k KnotConfig) Validate() error {
	if !k.Pair().IsFinite() {
		return fmt.Errorf("knot (%g,%g) is not finite", k.X, k.Y)
	}
	return nil
}

// NewDefaultConfig returns the reference configuration: four knots, hit
// radius 16 and a stroke of width 8.
func NewDefaultConfig() *Config {
	return &Config{
		Knots: []KnotConfig{
			{X: 60, Y: 60},
			{X: 220, Y: 300},
			{X: 420, Y: 300},
			{X: 700, Y: 240},
		},
		HitRadius:       16,
		StrokeHalfWidth: 4,
		SampleStep:      proximity.DefaultStep,
	}
}

// finite rejects NaN and ±Inf.
var finite = validation.By(func(value interface{}) error {
	if f, ok := value.(float64); ok && !knotedit.IsFinite(f) {
		return errors.New("must be a finite number")
	}
	return nil
})

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Knots, validation.Required, validation.Length(MinKnots, 0)),
		validation.Field(&c.HitRadius, validation.Required, finite, validation.Min(0.0)),
		validation.Field(&c.StrokeHalfWidth, validation.Required, finite, validation.Min(0.0)),
		validation.Field(&c.SampleStep, validation.Required, finite, validation.Min(0.0), validation.Max(1.0)),
	)
}

// InitialKnots returns the configured knots as pairs.
func (c *Config) InitialKnots() []knotedit.Pair {
	knots := make([]knotedit.Pair, len(c.Knots))
	for i, k := range c.Knots {
		knots[i] = k.Pair()
	}
	return knots
}

// ParseConfig reads a YAML configuration. Settings missing from the input
// keep their defaults. Environment variables in the input are expanded.
func ParseConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := NewDefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file. See ParseConfig.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", filename, err)
	}
	defer f.Close()
	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}
