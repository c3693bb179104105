package bench

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xover/crossover"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "XOVER_"

// ErrInvalidConfig wraps every configuration failure.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config drives one benchmark run.
type Config struct {
	Cities     int       `yaml:"cities" env:"CITIES" validate:"gte=1,lte=5000"`
	Population int       `yaml:"population" env:"POPULATION" validate:"gte=1,lte=10000"`
	Trials     int       `yaml:"trials" env:"TRIALS" validate:"gte=1"`
	Workers    int       `yaml:"workers" env:"WORKERS" validate:"gte=1,lte=256"`
	Seed       int64     `yaml:"seed" env:"SEED"`
	MaxGen     int       `yaml:"max_gen" env:"MAX_GEN" validate:"gte=0"`
	Modes      []string  `yaml:"modes" env:"MODES" envSeparator:"," validate:"min=1,dive,required"`
	Log        LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=text json"`
}

// DefaultConfig returns a small run over every mode.
func DefaultConfig() Config {
	modes := make([]string, 0)
	for _, m := range crossover.Modes() {
		modes = append(modes, m.String())
	}

	return Config{
		Cities:     50,
		Population: 32,
		Trials:     200,
		Workers:    4,
		Seed:       1,
		MaxGen:     100,
		Modes:      modes,
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

// Load merges DefaultConfig, the YAML file at path (skipped when path is
// empty) and the environment. environ overrides the process environment
// when non-nil. The result is not validated; call Validate after applying
// any further overrides.
func Load(path string, environ map[string]string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// The first error is the most readable one.
			err = aggErr.Errors[0]
		}
		return Config{}, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks field bounds and that every mode name is known.
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.ParsedModes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ParsedModes resolves Modes, keeping the configured order.
func (c Config) ParsedModes() ([]crossover.Mode, error) {
	out := make([]crossover.Mode, 0, len(c.Modes))
	for _, name := range c.Modes {
		m, err := crossover.ParseMode(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}
