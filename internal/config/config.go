// SPDX-License-Identifier: MIT

// Package config loads CLI settings from defaults, an optional YAML file,
// LVKNAP_* environment variables and command-line flags, in increasing
// precedence, and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvknap/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. LVKNAP_SOLVE_WORKERS.
const EnvPrefix = "LVKNAP"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full CLI configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
	Solve    SolveConfig    `mapstructure:"solve"`
}

// GenerateConfig drives the generate command.
type GenerateConfig struct {
	Class string  `mapstructure:"class" validate:"oneof=uncorrelated weakly-correlated strongly-correlated inverse-strongly-correlated subset-sum"`
	N     int     `mapstructure:"n"     validate:"gte=1"`
	Seed  int64   `mapstructure:"seed"`
	Range float64 `mapstructure:"range" validate:"gte=1,lte=9007199254740992"`
	Ratio float64 `mapstructure:"ratio" validate:"gt=0,lte=1"`
	Name  string  `mapstructure:"name"`
	Out   string  `mapstructure:"out"`
}

// SolveConfig drives the solve command. Zero limits mean unlimited.
type SolveConfig struct {
	Workers    int           `mapstructure:"workers"     validate:"gte=0"`
	NodeLimit  int           `mapstructure:"node_limit"  validate:"gte=0"`
	TimeLimit  time.Duration `mapstructure:"time_limit"  validate:"gte=0s"`
	Verify     bool          `mapstructure:"verify"`
	MetricsOut string        `mapstructure:"metrics_out"`
}

var defaults = map[string]interface{}{
	"log.level":       "info",
	"log.format":      "text",
	"log.file":        "",
	"log.max_size":    100,
	"log.max_backups": 3,
	"log.max_age":     28,
	"log.compress":    false,

	"generate.class": "uncorrelated",
	"generate.n":     20,
	"generate.seed":  int64(0),
	"generate.range": 1000.0,
	"generate.ratio": 0.5,
	"generate.name":  "",
	"generate.out":   "",

	"solve.workers":     1,
	"solve.node_limit":  0,
	"solve.time_limit":  time.Duration(0),
	"solve.verify":      false,
	"solve.metrics_out": "",
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlag makes flag f override key. A nil flag is an error.
func BindFlag(v *viper.Viper, key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("config: no flag for %q", key)
	}

	return v.BindPFlag(key, f)
}

// BindFlagSet binds every flag of fs under section, turning "node-limit"
// into "<section>.node_limit".
func BindFlagSet(v *viper.Viper, section string, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = BindFlag(v, section+"."+strings.ReplaceAll(f.Name, "-", "_"), f)
		}
	})

	return err
}

// Load reads the optional config file at path, unmarshals and validates.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags of cfg.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
