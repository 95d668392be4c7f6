package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"whll.lopezb.com/internal/pds/hyperloglog"
)

const maxLineSize = 1 << 20

var errUnsupportedCharset = errors.New("unsupported charset")

// CountCommand holds the flags of the count subcommand.
type CountCommand struct {
	app *app

	weighted bool
	exact    bool
	charset  string
	out      string
	format   string
}

func newCountCommand(a *app) *cobra.Command {
	cc := &CountCommand{app: a}

	cmd := &cobra.Command{
		Use:   "count [file...]",
		Short: "Build a sketch from lines of text",
		Long: `Read one value per line from the given files, or stdin when none or "-"
is given, and report the estimated cardinality.

With --weighted each line is "value<TAB>weight" and the estimate approximates
the sum of the weights of the distinct values. A line without a weight counts
with weight 1.`,
		RunE: cc.run,
	}

	cmd.Flags().BoolVarP(&cc.weighted, "weighted", "w", false, "Read value<TAB>weight lines into a weighted sketch")
	cmd.Flags().BoolVar(&cc.exact, "exact", false, "Also compute the exact answer in memory for comparison")
	cmd.Flags().StringVar(&cc.charset, "charset", "", "IANA charset values are encoded to before hashing (default UTF-8)")
	cmd.Flags().StringVarP(&cc.out, "out", "o", "", "Write the serialized sketch to this file")
	cmd.Flags().StringVarP(&cc.format, "format", "f", FormatTable, "Output format: table, json or yaml")

	return cmd
}

// lineSink receives one parsed input line.
type lineSink func(value string, weight float64) error

func (cc *CountCommand) run(cmd *cobra.Command, args []string) error {
	if err := validateFormat(cc.format); err != nil {
		return err
	}
	enc, err := lookupCharset(cc.charset)
	if err != nil {
		return err
	}
	opts, err := cc.app.sketchOptions()
	if err != nil {
		return err
	}

	var (
		sketch sketchView
		add    lineSink
	)
	if cc.weighted {
		w, err := hyperloglog.NewWeighted(opts...)
		if err != nil {
			return err
		}
		sketch = w
		add = func(v string, weight float64) error {
			_, err := w.AddStringEncoded(v, enc, weight)
			return err
		}
	} else {
		h, err := hyperloglog.New(opts...)
		if err != nil {
			return err
		}
		sketch = h
		add = func(v string, _ float64) error {
			_, err := h.AddStringEncoded(v, enc)
			return err
		}
	}

	// exactWeights keeps the largest weight seen per distinct value.
	var exactWeights map[string]float64
	if cc.exact {
		exactWeights = make(map[string]float64)
		inner := add
		add = func(v string, weight float64) error {
			if err := inner(v, weight); err != nil {
				return err
			}
			if weight > exactWeights[v] {
				exactWeights[v] = weight
			}
			return nil
		}
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	var items uint64
	for _, name := range args {
		n, err := cc.readInput(cmd, name, add)
		items += n
		if err != nil {
			return err
		}
	}

	r, data, err := newReport(sketch, cc.weighted)
	if err != nil {
		return err
	}
	r.Inputs = len(args)
	r.Items = items
	if cc.exact {
		var exact float64
		for _, w := range exactWeights {
			exact += w
		}
		r.Exact = &exact
	}

	if cc.out != "" {
		if err := os.WriteFile(cc.out, data, 0o644); err != nil {
			return fmt.Errorf("write sketch: %w", err)
		}
		cc.app.logger.Info("sketch written", "path", cc.out, "bytes", len(data))
	}

	return writeReport(cmd.OutOrStdout(), r, cc.format)
}

// readInput streams the lines of one input into add and returns how many
// lines it consumed.
func (cc *CountCommand) readInput(cmd *cobra.Command, name string, add lineSink) (uint64, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	cc.app.logger.Debug("reading input", "name", name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines uint64
	for scanner.Scan() {
		lines++
		value, weight, err := cc.parseLine(scanner.Text())
		if err == nil {
			err = add(value, weight)
		}
		if err != nil {
			return lines, fmt.Errorf("%s:%d: %w", name, lines, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}

func (cc *CountCommand) parseLine(line string) (string, float64, error) {
	if !cc.weighted {
		return line, 1, nil
	}

	i := strings.LastIndexByte(line, '\t')
	if i < 0 {
		return line, 1, nil
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(line[i+1:]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", hyperloglog.ErrInvalidWeight, line[i+1:])
	}
	return line[:i], weight, nil
}

// lookupCharset resolves an IANA charset name. An empty name keeps UTF-8.
func lookupCharset(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errUnsupportedCharset, name)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q has no encoder", errUnsupportedCharset, name)
	}
	return enc, nil
}
