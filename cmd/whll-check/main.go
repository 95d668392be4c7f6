// whll-check is a diagnostic tool for inspecting and validating serialized
// HyperLogLog sketches. It verifies the 16-byte header field by field, decodes
// the register payload and compares the cached cardinality with a fresh
// estimate.
//
// It can answer questions like:
//
//   - Is the sketch file truncated or corrupted?
//   - Which encoding, precision and hash function does it use?
//   - Is it a weighted sketch?
//   - Does the cached cardinality still match the registers?
//
// Usage Examples
// ==============
//
// Basic validation:
//
//	whll-check -file visitors.hll
//
// Verbose mode (prints the register summary):
//
//	whll-check -file visitors.hll -v
//
// Dump mode (prints every register):
//
//	whll-check -file visitors.hll -dump
//
// Exit Codes
// ==========
//
// 0: The file is valid.
// 1: The file is corrupted or unreadable, or the cached cardinality is wrong.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"whll.lopezb.com/internal/pds/hyperloglog"
)

const headerSize = 16

// Header flag bits, byte 6.
const (
	flagBitPacking     = 1 << 0
	flagBiasCorrection = 1 << 1
	flagWeighted       = 1 << 2
	flagErtl           = 1 << 3
)

const customHasherID = 255

// CountReader wraps an io.Reader to track the cumulative byte offset, so
// errors can point at the exact position of the corruption.
type CountReader struct {
	r     io.Reader
	count int64
}

// Read implements io.Reader, passing through to the underlying reader while
// accumulating the byte count.
func (cr *CountReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.count += int64(n)
	return n, err
}

type checkOptions struct {
	verbose bool
	dump    bool
}

// checkError carries the file offset at which validation failed.
type checkError struct {
	offset int64
	msg    string
	err    error
}

func (e *checkError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("[offset %d] Fatal: %s: %v", e.offset, e.msg, e.err)
	}
	return fmt.Sprintf("[offset %d] Fatal: %s", e.offset, e.msg)
}

func (e *checkError) Unwrap() error { return e.err }

func main() {
	filePath := flag.String("file", "sketch.hll", "Path to the serialized sketch")
	verbose := flag.Bool("v", false, "Verbose mode (print register summary)")
	dump := flag.Bool("dump", false, "Print every register value")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	f, err := os.Open(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[err] Cannot open file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	fmt.Printf("[offset 0] Checking sketch file %s\n", *filePath)

	if err := check(f, os.Stdout, checkOptions{verbose: *verbose, dump: *dump}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = f.Close()
		os.Exit(1)
	}
}

// check validates one serialized sketch read from r and writes the report to w.
func check(r io.Reader, w io.Writer, opts checkOptions) error {
	start := time.Now()
	counter := &CountReader{r: r}
	reader := bufio.NewReader(counter)

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return &checkError{offset: counter.count, msg: "Failed to read header", err: err}
	}
	if !hyperloglog.HasValidMagic(header) {
		return &checkError{offset: 0, msg: fmt.Sprintf("Invalid Magic Header: expected '%s', got '%s'", hyperloglog.Magic, header[:4])}
	}

	kind, details := identifySketch(header)
	fmt.Fprintf(w, "[offset %d] %s %s\n", headerSize, kind, details)

	payload, err := io.ReadAll(reader)
	if err != nil {
		return &checkError{offset: counter.count, msg: "Failed reading payload", err: err}
	}
	data := append(header, payload...)
	// Decode with the dirty bit set so Count recomputes from the registers.
	data[15] |= 0x80

	weighted := header[6]&flagWeighted != 0
	var decodeOpts []hyperloglog.Option
	if header[7] == customHasherID {
		// Registers can be decoded without the hash function that built them.
		decodeOpts = append(decodeOpts, hyperloglog.WithHasher(
			hyperloglog.NewHasher("custom", func([]byte) uint64 { return 0 })))
	}

	var sketch interface {
		Count() uint64
		Encoding() hyperloglog.Encoding
		StandardError() float64
		String() string
		ExtendedString() string
		SparseRegisterValues() []uint32
		DenseRegisterBytes() []byte
	}
	if weighted {
		sketch, err = hyperloglog.UnmarshalWeighted(data, decodeOpts...)
	} else {
		sketch, err = hyperloglog.Unmarshal(data, decodeOpts...)
	}
	if err != nil {
		return &checkError{offset: headerSize, msg: "Failed decoding registers", err: err}
	}
	fmt.Fprintf(w, "[offset %d] Registers decoded (%s payload)\n",
		counter.count, humanize.Bytes(uint64(len(payload))))

	if opts.verbose || opts.dump {
		fmt.Fprintf(w, "  %s\n", sketch.String())
	}
	if opts.dump {
		dumpRegisters(w, sketch.Encoding(), sketch.SparseRegisterValues(), sketch.DenseRegisterBytes())
	}

	cached, valid := hyperloglog.CachedCount(header)
	estimate := sketch.Count()
	if valid {
		if cached != estimate {
			fmt.Fprintf(w, "[offset %d] Cached cardinality %s\n", counter.count, color.RedString("MISMATCH"))
			fmt.Fprintf(w, "   File:       %d\n", cached)
			fmt.Fprintf(w, "   Calculated: %d\n", estimate)
			return &checkError{offset: 8, msg: "cached cardinality does not match registers"}
		}
		fmt.Fprintf(w, "[offset %d] Cached cardinality %s (%d)\n", counter.count, color.GreenString("OK"), cached)
	} else {
		fmt.Fprintf(w, "[offset %d] Cached cardinality is %s, skipped\n", counter.count, color.YellowString("dirty"))
	}
	fmt.Fprintf(w, "[offset %d] Sketch looks %s\n", counter.count, color.GreenString("OK"))

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  Process Time:   %v\n", time.Since(start))
	fmt.Fprintf(w, "  File Size:      %s\n", humanize.Bytes(uint64(counter.count)))
	fmt.Fprintf(w, "  Estimate:       %s\n", humanize.Comma(int64(estimate)))
	fmt.Fprintf(w, "  Standard Error: %.2f%%\n", sketch.StandardError()*100)
	return nil
}

// identifySketch describes a sketch from its raw header bytes.
func identifySketch(header []byte) (string, string) {
	if len(header) < headerSize || !hyperloglog.HasValidMagic(header) {
		return "Raw", ""
	}

	kind := "HLL"
	if header[6]&flagWeighted != 0 {
		kind = "WHLL"
	}
	switch hyperloglog.Encoding(header[4]) {
	case hyperloglog.Dense:
		kind += "-Dense"
	case hyperloglog.Sparse:
		kind += "-Sparse"
	default:
		kind += "-Unknown"
	}

	details := fmt.Sprintf("p:%d hash:%s", header[5], hasherName(header[7]))
	if header[6]&flagBitPacking != 0 {
		details += " packed"
	}
	if header[6]&flagErtl != 0 {
		details += " ertl"
	} else if header[6]&flagBiasCorrection != 0 {
		details += " bias-corrected"
	}

	// Bit 63 of the cardinality is the dirty flag.
	card := binary.LittleEndian.Uint64(header[8:16])
	if card&(uint64(1)<<63) != 0 {
		details += " Card:dirty"
	} else {
		details += fmt.Sprintf(" Card:~%d", card)
	}
	return kind, details
}

func hasherName(id byte) string {
	switch id {
	case 0:
		return hyperloglog.XXHash.Name
	case 1:
		return hyperloglog.Murmur3.Name
	case 2:
		return hyperloglog.Metro.Name
	case customHasherID:
		return "custom"
	default:
		return fmt.Sprintf("unknown(%d)", id)
	}
}

func dumpRegisters(w io.Writer, enc hyperloglog.Encoding, sparse []uint32, dense []byte) {
	if enc == hyperloglog.Sparse {
		for _, v := range sparse {
			fmt.Fprintf(w, "      key=%d rank=%d\n", v>>7, v&0x7f)
		}
		return
	}

	const perLine = 32
	for i := 0; i < len(dense); i += perLine {
		end := min(i+perLine, len(dense))
		fmt.Fprintf(w, "      %6d: %v\n", i, dense[i:end])
	}
}
