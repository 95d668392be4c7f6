// Package config provides configuration loading and validation for the whll
// binaries.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"whll.lopezb.com/internal/pds/hyperloglog"
)

// Sentinel validation errors.
var (
	ErrInvalidPrecision  = errors.New("sketch precision out of range")
	ErrInvalidEncoding   = errors.New("unknown sketch encoding")
	ErrInvalidEstimator  = errors.New("unknown sketch estimator")
	ErrInvalidHash       = errors.New("unknown sketch hash")
	ErrInvalidUpdateRule = errors.New("unknown weighted update rule")
	ErrInvalidLogLevel   = errors.New("unknown log level")
	ErrInvalidLogFormat  = errors.New("unknown log format")
)

// EnvPrefix is prepended to every environment override, e.g.
// WHLL_SKETCH_PRECISION.
const EnvPrefix = "WHLL"

// Config holds all configuration for the whll binaries.
type Config struct {
	Sketch  SketchConfig  `mapstructure:"sketch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SketchConfig holds the options every sketch built by a command starts from.
type SketchConfig struct {
	Encoding       string `mapstructure:"encoding"`
	Estimator      string `mapstructure:"estimator"`
	Hash           string `mapstructure:"hash"`
	UpdateRule     string `mapstructure:"update_rule"`
	Seed           uint64 `mapstructure:"seed"`
	Precision      int    `mapstructure:"precision"`
	BitPacking     bool   `mapstructure:"bit_packing"`
	BiasCorrection bool   `mapstructure:"bias_correction"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"precision":       "sketch.precision",
	"encoding":        "sketch.encoding",
	"estimator":       "sketch.estimator",
	"hash":            "sketch.hash",
	"seed":            "sketch.seed",
	"update-rule":     "sketch.update_rule",
	"bit-packing":     "sketch.bit_packing",
	"bias-correction": "sketch.bias_correction",
	"log-level":       "logging.level",
	"log-format":      "logging.format",
}

// LoadConfig loads configuration from defaults, an optional YAML file, the
// environment and finally the flags in fs that were set on the command line.
// fs may be nil.
func LoadConfig(configPath string, fs *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("whll")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/whll")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := viperCfg.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Sketch defaults.
	viperCfg.SetDefault("sketch.precision", hyperloglog.DefaultPrecision)
	viperCfg.SetDefault("sketch.encoding", hyperloglog.Sparse.String())
	viperCfg.SetDefault("sketch.bit_packing", true)
	viperCfg.SetDefault("sketch.bias_correction", true)
	viperCfg.SetDefault("sketch.estimator", hyperloglog.EstimatorHLLPlusPlus.String())
	viperCfg.SetDefault("sketch.hash", hyperloglog.XXHash.Name)
	viperCfg.SetDefault("sketch.seed", 0)
	viperCfg.SetDefault("sketch.update_rule", hyperloglog.RejectionSampling.String())

	// Logging defaults.
	viperCfg.SetDefault("logging.level", "warn")
	viperCfg.SetDefault("logging.format", "text")
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	s := config.Sketch

	if s.Precision < hyperloglog.MinPrecision || s.Precision > hyperloglog.MaxPrecision {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPrecision,
			s.Precision, hyperloglog.MinPrecision, hyperloglog.MaxPrecision)
	}

	if _, err := hyperloglog.ParseEncoding(s.Encoding); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, s.Encoding)
	}

	if _, err := hyperloglog.ParseEstimator(s.Estimator); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEstimator, s.Estimator)
	}

	if _, err := hyperloglog.HasherByName(s.Hash); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidHash, s.Hash)
	}

	if _, err := hyperloglog.ParseUpdateRule(s.UpdateRule); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUpdateRule, s.UpdateRule)
	}

	if _, err := parseLevel(config.Logging.Level); err != nil {
		return err
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
	return level, nil
}

// NewLogger builds the logger described by the logging section, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SketchOptions turns the sketch section into constructor options. A zero
// seed leaves the random source unseeded.
func (c *Config) SketchOptions(logger *slog.Logger) ([]hyperloglog.Option, error) {
	s := c.Sketch

	encoding, err := hyperloglog.ParseEncoding(s.Encoding)
	if err != nil {
		return nil, err
	}
	estimator, err := hyperloglog.ParseEstimator(s.Estimator)
	if err != nil {
		return nil, err
	}
	hasher, err := hyperloglog.HasherByName(s.Hash)
	if err != nil {
		return nil, err
	}
	rule, err := hyperloglog.ParseUpdateRule(s.UpdateRule)
	if err != nil {
		return nil, err
	}

	opts := []hyperloglog.Option{
		hyperloglog.WithPrecision(uint8(s.Precision)),
		hyperloglog.WithEncoding(encoding),
		hyperloglog.WithBitPacking(s.BitPacking),
		hyperloglog.WithBiasCorrection(s.BiasCorrection),
		hyperloglog.WithEstimator(estimator),
		hyperloglog.WithHasher(hasher),
		hyperloglog.WithUpdateRule(rule),
	}
	if s.Seed != 0 {
		opts = append(opts, hyperloglog.WithRandomSource(hyperloglog.NewRandomSource(s.Seed)))
	}
	if logger != nil {
		opts = append(opts, hyperloglog.WithLogger(logger))
	}
	return opts, nil
}
