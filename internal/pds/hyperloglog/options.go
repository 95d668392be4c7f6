package hyperloglog

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// MinPrecision is the smallest supported p (2^4 = 16 registers).
	MinPrecision = 4

	// MaxPrecision is the largest supported p (2^18 = 262144 registers).
	MaxPrecision = 18

	// DefaultPrecision gives a standard error of ~0.81%.
	DefaultPrecision = 14
)

// Encoding is the register representation currently used by a sketch.
type Encoding uint8

const (
	Dense  Encoding = 0
	Sparse Encoding = 1
)

func (e Encoding) String() string {
	switch e {
	case Dense:
		return "DENSE"
	case Sparse:
		return "SPARSE"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// ParseEncoding accepts "sparse" or "dense" in any case.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sparse":
		return Sparse, nil
	case "dense":
		return Dense, nil
	default:
		return 0, fmt.Errorf("%w: encoding %q", ErrInvalidOption, s)
	}
}

// Estimator selects how a dense register is turned into a cardinality.
type Estimator uint8

const (
	// EstimatorHLLPlusPlus is the raw harmonic mean with nearest-neighbour bias
	// correction and linear counting for small cardinalities.
	EstimatorHLLPlusPlus Estimator = iota

	// EstimatorErtl is the improved estimator from Ertl's "New cardinality
	// estimation algorithms for HyperLogLog sketches". It ignores the bias
	// correction setting.
	EstimatorErtl
)

func (e Estimator) String() string {
	switch e {
	case EstimatorHLLPlusPlus:
		return "hllpp"
	case EstimatorErtl:
		return "ertl"
	default:
		return fmt.Sprintf("Estimator(%d)", uint8(e))
	}
}

// ParseEstimator accepts "hllpp" or "ertl".
func ParseEstimator(s string) (Estimator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hllpp", "":
		return EstimatorHLLPlusPlus, nil
	case "ertl":
		return EstimatorErtl, nil
	default:
		return 0, fmt.Errorf("%w: estimator %q", ErrInvalidOption, s)
	}
}

// UpdateRule selects the weighted rank update.
type UpdateRule uint8

const (
	// RejectionSampling draws the tail extension i with acceptance probability
	// (1 - 2^-(lr+i))^(weight-1). This is the default rule.
	RejectionSampling UpdateRule = iota

	// InverseTransform is experimental: it maps the hash remainder to a
	// uniform value and inverts the weighted minimum distribution.
	InverseTransform

	// PowerTransform is experimental: it raises the normalised remainder to
	// 1/weight and counts trailing zeros of the result.
	PowerTransform
)

func (r UpdateRule) String() string {
	switch r {
	case RejectionSampling:
		return "rejection"
	case InverseTransform:
		return "inverse-transform"
	case PowerTransform:
		return "power-transform"
	default:
		return fmt.Sprintf("UpdateRule(%d)", uint8(r))
	}
}

// ParseUpdateRule accepts "rejection", "inverse-transform" or "power-transform".
func ParseUpdateRule(s string) (UpdateRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rejection", "":
		return RejectionSampling, nil
	case "inverse-transform":
		return InverseTransform, nil
	case "power-transform":
		return PowerTransform, nil
	default:
		return 0, fmt.Errorf("%w: update rule %q", ErrInvalidOption, s)
	}
}

// Config is the immutable configuration of a sketch. It is built from
// Options when the sketch is created and never changes afterwards.
type Config struct {
	Precision      uint8
	Encoding       Encoding
	BitPacking     bool
	BiasCorrection bool
	Estimator      Estimator
	UpdateRule     UpdateRule
	Hasher         Hasher
	Random         RandomSource
	Logger         *slog.Logger
}

// Option configures a sketch.
type Option func(*Config)

// WithPrecision sets the number of register index bits.
func WithPrecision(p uint8) Option {
	return func(c *Config) { c.Precision = p }
}

// WithEncoding sets the initial register encoding.
func WithEncoding(e Encoding) Option {
	return func(c *Config) { c.Encoding = e }
}

// WithBitPacking toggles bit packing of the serialized dense registers. It
// also changes the sparse to dense switch threshold.
func WithBitPacking(enabled bool) Option {
	return func(c *Config) { c.BitPacking = enabled }
}

// WithBiasCorrection toggles the lookup-table bias correction.
func WithBiasCorrection(enabled bool) Option {
	return func(c *Config) { c.BiasCorrection = enabled }
}

// WithEstimator selects the dense estimator.
func WithEstimator(e Estimator) Option {
	return func(c *Config) { c.Estimator = e }
}

// WithUpdateRule selects the weighted rank update. Unweighted sketches ignore it.
func WithUpdateRule(r UpdateRule) Option {
	return func(c *Config) { c.UpdateRule = r }
}

// WithHasher sets the 64-bit hash function applied to every value.
func WithHasher(h Hasher) Option {
	return func(c *Config) { c.Hasher = h }
}

// WithRandomSource injects the random stream used by weighted updates.
func WithRandomSource(r RandomSource) Option {
	return func(c *Config) { c.Random = r }
}

// WithLogger sets the logger used to report fallback paths.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{
		Precision:      DefaultPrecision,
		Encoding:       Sparse,
		BitPacking:     true,
		BiasCorrection: true,
		Estimator:      EstimatorHLLPlusPlus,
		UpdateRule:     RejectionSampling,
		Hasher:         XXHash,
	}
}

func newConfig(opts []Option) (Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Precision < MinPrecision || cfg.Precision > MaxPrecision {
		return Config{}, fmt.Errorf("%w: got %d", ErrPrecisionOutOfRange, cfg.Precision)
	}
	if cfg.Encoding > Sparse {
		return Config{}, fmt.Errorf("%w: encoding %d", ErrInvalidOption, cfg.Encoding)
	}
	if cfg.Estimator > EstimatorErtl {
		return Config{}, fmt.Errorf("%w: estimator %d", ErrInvalidOption, cfg.Estimator)
	}
	if cfg.UpdateRule > PowerTransform {
		return Config{}, fmt.Errorf("%w: update rule %d", ErrInvalidOption, cfg.UpdateRule)
	}
	if cfg.Hasher.Sum64 == nil {
		return Config{}, fmt.Errorf("%w: hasher %q has no function", ErrUnknownHasher, cfg.Hasher.Name)
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Random == nil {
		cfg.Random = newUnseededSource()
	}

	return cfg, nil
}
