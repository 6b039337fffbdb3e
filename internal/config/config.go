// SPDX-License-Identifier: MIT

// Package config loads the mlasolve batch description.
//
// Sources, later ones overriding earlier ones:
//  1. built-in defaults (DefaultConfig),
//  2. a YAML file: the explicit path, else $MLA_CONFIG_PATH, else the first
//     of DefaultConfigPaths that exists,
//  3. environment variables with the MLA_ prefix (MLA_LOG_LEVEL,
//     MLA_LOG_FORMAT, MLA_LOG_CALLER, MLA_WORKERS).
//
// Systems are only configurable from the file. Per-system zero values are
// filled from SystemDefaults before validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks the environment variables read by Load.
	EnvPrefix = "MLA_"
	// ConfigPathEnvVar names the config file when no explicit path is given.
	ConfigPathEnvVar = EnvPrefix + "CONFIG_PATH"
)

// DefaultConfigPaths are probed in order when neither an explicit path nor
// $MLA_CONFIG_PATH is set.
var DefaultConfigPaths = []string{
	"mlasolve.yaml",
	"mlasolve.yml",
}

// ErrNoConfigFile is returned when no YAML file could be located.
var ErrNoConfigFile = errors.New("config: no configuration file found")

// Config is the whole batch.
type Config struct {
	Log     LogConfig      `koanf:"log"`
	Workers int            `koanf:"workers" validate:"gte=1,lte=1024"`
	Systems []SystemConfig `koanf:"systems" validate:"required,min=1,dive"`
}

// LogConfig feeds logging.Init.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// SystemConfig describes one A·x = b to solve.
//   - Matrix: path of a Matrix Market coordinate file holding A.
//   - Format: storage format A is converted to before solving.
//   - Solver: cg, cholesky or lu (lu needs format ccs).
//   - Tolerance: CG stops once ‖r‖ < Tolerance.
//   - RHS: every component of b.
//   - Reorder: apply the degree-sort reordering before solving.
type SystemConfig struct {
	Name          string  `koanf:"name" validate:"required"`
	Matrix        string  `koanf:"matrix" validate:"required"`
	Format        string  `koanf:"format" validate:"oneof=dense crs ccs dok coo"`
	Solver        string  `koanf:"solver" validate:"oneof=cg cholesky lu"`
	Tolerance     float64 `koanf:"tolerance" validate:"gt=0"`
	MaxIterations int     `koanf:"max_iterations" validate:"gte=1"`
	RHS           float64 `koanf:"rhs"`
	Reorder       bool    `koanf:"reorder"`
}

// DefaultConfig returns the built-in top-level defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Workers: 4,
	}
}

// SystemDefaults fills the zero fields of s; lu defaults to ccs storage.
func SystemDefaults(s *SystemConfig) {
	if s.Solver == "" {
		s.Solver = "cg"
	}
	if s.Format == "" {
		s.Format = "crs"
		if s.Solver == "lu" {
			s.Format = "ccs"
		}
	}
	if s.Tolerance == 0 {
		s.Tolerance = 1e-8
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 1000
	}
	if s.RHS == 0 {
		s.RHS = 1
	}
}

// Load builds a Config from defaults, the YAML file and MLA_* variables.
// An empty path falls back to $MLA_CONFIG_PATH and DefaultConfigPaths.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return nil, ErrNoConfigFile
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	for i := range cfg.Systems {
		SystemDefaults(&cfg.Systems[i])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

var envKeys = map[string]string{
	"log_level":  "log.level",
	"log_format": "log.format",
	"log_caller": "log.caller",
	"workers":    "workers",
}

// envTransform maps MLA_LOG_LEVEL to log.level; unknown names are dropped.
func envTransform(key string) string {
	return envKeys[strings.ToLower(strings.TrimPrefix(key, EnvPrefix))]
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate checks struct tags, unique system names and solver/format pairs.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, len(fieldErrs))
			for i, fe := range fieldErrs {
				msgs[i] = fmt.Sprintf("%s failed %q (%s)", fe.Namespace(), fe.Tag(), fe.Param())
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Systems))
	for _, s := range c.Systems {
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("config: invalid: duplicate system name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Solver == "lu" && s.Format != "ccs" {
			return fmt.Errorf("config: invalid: system %q: solver lu needs format ccs, got %s", s.Name, s.Format)
		}
	}

	return nil
}
