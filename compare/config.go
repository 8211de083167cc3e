package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every validation failure of Config.
var ErrInvalidConfig = errors.New("compare: invalid config")

// EnvPrefix prefixes every environment variable read by NewViper.
const EnvPrefix = "TSPBENCH"

// Configuration keys, shared by flags, viper and TSPBENCH_* variables
// (dashes become underscores in the environment).
const (
	KeyCities      = "cities"
	KeyMaxDistance = "max-distance"
	KeySeed        = "seed"
	KeyExactLimit  = "exact-limit"
	KeyBound       = "bound"
	KeyMaxPasses   = "max-passes"
	KeyFormat      = "format"
	KeyMetrics     = "metrics"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config describes one harness run.
type Config struct {
	// Cities is the instance size.
	Cities int `json:"cities" yaml:"cities" validate:"min=1,max=64"`
	// MaxDistance is the inclusive upper bound of generated weights.
	MaxDistance int `json:"max_distance" yaml:"max_distance" validate:"min=1"`
	// Seed drives the generator.
	Seed int64 `json:"seed" yaml:"seed"`
	// ExactLimit is the largest instance the exhaustive search runs on.
	ExactLimit int `json:"exact_limit" yaml:"exact_limit" validate:"min=0,max=13"`
	// Bound enables lower-bound pruning in the exhaustive search.
	Bound bool `json:"bound" yaml:"bound"`
	// MaxPasses caps 2-opt passes; 0 means no cap.
	MaxPasses int `json:"max_passes" yaml:"max_passes" validate:"min=0"`

	Format    string `json:"format" yaml:"format" validate:"oneof=text json yaml"`
	Metrics   bool   `json:"metrics" yaml:"metrics"`
	LogLevel  string `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" yaml:"log_format" validate:"oneof=json console"`
}

// DefaultConfig returns the reference run: nine cities, weights up to 100.
func DefaultConfig() Config {
	return Config{
		Cities:      9,
		MaxDistance: 100,
		Seed:        1,
		ExactLimit:  11,
		Format:      FormatText,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

var configValidate = validator.New()

// Validate checks field ranges. The returned error matches ErrInvalidConfig
// and, through errors.As, validator.ValidationErrors.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("Config.Validate: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SetDefaults registers DefaultConfig values on v so that unset keys fall
// back to them.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyCities, d.Cities)
	v.SetDefault(KeyMaxDistance, d.MaxDistance)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyExactLimit, d.ExactLimit)
	v.SetDefault(KeyBound, d.Bound)
	v.SetDefault(KeyMaxPasses, d.MaxPasses)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyMetrics, d.Metrics)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
}

// NewViper returns a viper instance reading TSPBENCH_* variables, with
// DefaultConfig values registered. Callers bind their flags on top.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// LoadConfig reads a Config from v (flags, environment, defaults) and
// validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	c := Config{
		Cities:      v.GetInt(KeyCities),
		MaxDistance: v.GetInt(KeyMaxDistance),
		Seed:        v.GetInt64(KeySeed),
		ExactLimit:  v.GetInt(KeyExactLimit),
		Bound:       v.GetBool(KeyBound),
		MaxPasses:   v.GetInt(KeyMaxPasses),
		Format:      v.GetString(KeyFormat),
		Metrics:     v.GetBool(KeyMetrics),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
