// Package commands implements the whll subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"whll.lopezb.com/internal/config"
	"whll.lopezb.com/internal/pds/hyperloglog"
)

// app is the state shared by every subcommand once the configuration is
// loaded.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the whll command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "whll",
		Short: "Weighted HyperLogLog cardinality estimation",
		Long: `whll estimates the number of distinct values in a stream, or the sum of
their weights, with a fixed amount of memory.

Commands:
  count     Build a sketch from lines of text
  merge     Merge serialized sketches
  demo      Compare exact and estimated counts on a small random list`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to a YAML config file (default ./whll.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	pf.Int("precision", hyperloglog.DefaultPrecision, "Register index bits p, 4..18")
	pf.String("encoding", hyperloglog.Sparse.String(), "Initial encoding: sparse or dense")
	pf.String("estimator", hyperloglog.EstimatorHLLPlusPlus.String(), "Estimator: hllpp or ertl")
	pf.String("hash", hyperloglog.XXHash.Name, "Hash function: xxhash, murmur3 or metro")
	pf.Uint64("seed", 0, "Seed of the weighted update random source (0 = random)")
	pf.String("update-rule", hyperloglog.RejectionSampling.String(),
		"Weighted update rule: rejection, inverse-transform or power-transform")
	pf.Bool("bit-packing", true, "Bit-pack dense registers when serializing")
	pf.Bool("bias-correction", true, "Apply empirical bias correction")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.String("log-format", "text", "Log format: text or json")

	cmd.AddCommand(newCountCommand(a))
	cmd.AddCommand(newMergeCommand(a))
	cmd.AddCommand(newDemoCommand(a))

	return cmd
}

// load resolves the configuration for the command about to run.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	a.cfg = cfg
	a.logger = cfg.NewLogger(cmd.ErrOrStderr())
	return nil
}

// sketchOptions returns the configured sketch options followed by overrides.
func (a *app) sketchOptions(overrides ...hyperloglog.Option) ([]hyperloglog.Option, error) {
	opts, err := a.cfg.SketchOptions(a.logger)
	if err != nil {
		return nil, fmt.Errorf("sketch options: %w", err)
	}
	return append(opts, overrides...), nil
}
