package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"whll.lopezb.com/internal/pds/hyperloglog"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

// sketchView is the read surface shared by HLL and WeightedHLL.
type sketchView interface {
	Count() uint64
	Encoding() hyperloglog.Encoding
	Precision() uint8
	StandardError() float64
	Stats() hyperloglog.Stats
	Config() hyperloglog.Config
	MarshalBinary() ([]byte, error)
}

// report summarises one sketch.
type report struct {
	Kind          string   `json:"kind" yaml:"kind"`
	Encoding      string   `json:"encoding" yaml:"encoding"`
	Precision     uint8    `json:"precision" yaml:"precision"`
	Hash          string   `json:"hash" yaml:"hash"`
	Estimator     string   `json:"estimator" yaml:"estimator"`
	Inputs        int      `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Items         uint64   `json:"items,omitempty" yaml:"items,omitempty"`
	Estimate      uint64   `json:"estimate" yaml:"estimate"`
	Exact         *float64 `json:"exact,omitempty" yaml:"exact,omitempty"`
	StandardError float64  `json:"standard_error" yaml:"standard_error"`
	SizeBytes     int      `json:"size_bytes" yaml:"size_bytes"`

	Promotions           uint64 `json:"promotions" yaml:"promotions"`
	LinearCountFallbacks uint64 `json:"linear_count_fallbacks" yaml:"linear_count_fallbacks"`
	NonConvergedUpdates  uint64 `json:"non_converged_updates" yaml:"non_converged_updates"`
}

// newReport counts s and returns its summary along with its serialized form.
func newReport(s sketchView, weighted bool) (report, []byte, error) {
	estimate := s.Count()
	data, err := s.MarshalBinary()
	if err != nil {
		return report{}, nil, fmt.Errorf("marshal sketch: %w", err)
	}

	kind := "HLL"
	if weighted {
		kind = "WHLL"
	}
	cfg := s.Config()
	stats := s.Stats()

	return report{
		Kind:                 kind,
		Encoding:             s.Encoding().String(),
		Precision:            s.Precision(),
		Hash:                 cfg.Hasher.Name,
		Estimator:            cfg.Estimator.String(),
		Estimate:             estimate,
		StandardError:        s.StandardError(),
		SizeBytes:            len(data),
		Promotions:           stats.Promotions,
		LinearCountFallbacks: stats.LinearCountFallbacks,
		NonConvergedUpdates:  stats.NonConvergedUpdates,
	}, data, nil
}

func validateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (want table, json or yaml)", errUnknownFormat, format)
	}
}

// writeReport renders r to w in the given format.
func writeReport(w io.Writer, r report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(r)
	case FormatTable:
		_, err := fmt.Fprintln(w, renderReport(r))
		return err
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func renderReport(r report) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"Sketch", fmt.Sprintf("%s %s p=%d", r.Kind, r.Encoding, r.Precision)})
	tbl.AppendRow(table.Row{"Hash / estimator", r.Hash + " / " + r.Estimator})
	if r.Inputs > 0 {
		tbl.AppendRow(table.Row{"Inputs", humanize.Comma(int64(r.Inputs))})
	}
	if r.Items > 0 {
		tbl.AppendRow(table.Row{"Items read", humanize.Comma(int64(r.Items))})
	}
	tbl.AppendRow(table.Row{"Estimate", humanize.Comma(int64(r.Estimate))})
	if r.Exact != nil {
		tbl.AppendRow(table.Row{"Exact", humanize.CommafWithDigits(*r.Exact, 2)})
		if *r.Exact > 0 {
			relErr := (float64(r.Estimate) - *r.Exact) / *r.Exact
			tbl.AppendRow(table.Row{"Relative error", fmt.Sprintf("%+.2f%%", relErr*100)})
		}
	}
	tbl.AppendRow(table.Row{"Standard error", fmt.Sprintf("%.2f%%", r.StandardError*100)})
	tbl.AppendRow(table.Row{"Serialized size", humanize.Bytes(uint64(r.SizeBytes))})
	tbl.AppendFooter(table.Row{"Fallbacks", fmt.Sprintf("promotions=%d linear-count=%d non-converged=%d",
		r.Promotions, r.LinearCountFallbacks, r.NonConvergedUpdates)})

	return tbl.Render()
}
