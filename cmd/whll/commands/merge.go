package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whll.lopezb.com/internal/pds/hyperloglog"
)

var errMixedSketches = errors.New("cannot merge weighted and unweighted sketches")

// MergeCommand holds the flags of the merge subcommand.
type MergeCommand struct {
	app *app

	out    string
	format string
}

func newMergeCommand(a *app) *cobra.Command {
	mc := &MergeCommand{app: a}

	cmd := &cobra.Command{
		Use:   "merge file...",
		Short: "Merge serialized sketches",
		Long: `Merge sketches written by "whll count --out" into one and report its
estimate. All inputs must share precision and hash function, and be either all
weighted or all unweighted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: mc.run,
	}

	cmd.Flags().StringVarP(&mc.out, "out", "o", "", "Write the merged sketch to this file")
	cmd.Flags().StringVarP(&mc.format, "format", "f", FormatTable, "Output format: table, json or yaml")

	return cmd
}

func (mc *MergeCommand) run(cmd *cobra.Command, args []string) error {
	if err := validateFormat(mc.format); err != nil {
		return err
	}

	var (
		plain    *hyperloglog.HLL
		weighted *hyperloglog.WeightedHLL
	)
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read sketch: %w", err)
		}

		h, w, err := mc.decode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		mc.app.logger.Debug("merging sketch", "name", name, "weighted", w != nil)

		switch {
		case h != nil && weighted == nil:
			if plain == nil {
				plain = h
			} else if err := plain.Merge(h); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		case w != nil && plain == nil:
			if weighted == nil {
				weighted = w
			} else if err := weighted.Merge(w); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		default:
			return fmt.Errorf("%s: %w", name, errMixedSketches)
		}
	}

	var (
		r    report
		data []byte
		err  error
	)
	if weighted != nil {
		r, data, err = newReport(weighted, true)
	} else {
		r, data, err = newReport(plain, false)
	}
	if err != nil {
		return err
	}
	r.Inputs = len(args)

	if mc.out != "" {
		if err := os.WriteFile(mc.out, data, 0o644); err != nil {
			return fmt.Errorf("write sketch: %w", err)
		}
		mc.app.logger.Info("sketch written", "path", mc.out, "bytes", len(data))
	}

	return writeReport(cmd.OutOrStdout(), r, mc.format)
}

// decode returns exactly one of an unweighted or a weighted sketch.
func (mc *MergeCommand) decode(data []byte) (*hyperloglog.HLL, *hyperloglog.WeightedHLL, error) {
	opts, err := mc.app.sketchOptions()
	if err != nil {
		return nil, nil, err
	}

	h, err := hyperloglog.Unmarshal(data, opts...)
	if err == nil {
		return h, nil, nil
	}
	if !errors.Is(err, hyperloglog.ErrSketchTypeMismatch) {
		return nil, nil, err
	}

	w, err := hyperloglog.UnmarshalWeighted(data, opts...)
	if err != nil {
		return nil, nil, err
	}
	return nil, w, nil
}
