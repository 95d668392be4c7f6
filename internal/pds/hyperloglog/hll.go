// Package hyperloglog implements HyperLogLog cardinality estimation and its
// weighted generalization.
//
// A HyperLogLog sketch estimates the number of distinct elements of a stream
// in a fixed amount of memory. The weighted sketch additionally accepts a
// positive real weight per observation and approximates the effect of
// inserting the value weight times with a single O(1) update.
//
// This implementation is based on the following ideas:
//
//   - A 64-bit hash function as proposed in [1], so cardinalities far beyond
//     10^9 need no long range correction.
//   - A sparse representation with a 25-bit register index while the sketch is
//     small, promoted once to a dense array of 2^p one-byte registers.
//   - Empirical bias correction by k-nearest-neighbour lookup over simulated
//     raw estimates, with linear counting for small cardinalities [1].
//   - Optionally the table-free estimator from Ertl [3].
//
// [1] Heule, Nunkesser, Hall: HyperLogLog in Practice: Algorithmic
//
//	Engineering of a State of The Art Cardinality Estimation Algorithm.
//
// [2] P. Flajolet, Éric Fusy, O. Gandouet, and F. Meunier. Hyperloglog: The
//
//	analysis of a near-optimal cardinality estimation algorithm.
//
// [3] O. Ertl. New cardinality estimation algorithms for HyperLogLog sketches.
//
// The Algorithm
// =============
//
// Each value is hashed to 64 bits and the hash is split in two:
//
//  1. The lower p bits select one of m=2^p registers.
//  2. The remaining q=64-p bits give the "rank": the position of the least
//     significant 1-bit plus one. The maximum unweighted rank is q+1.
//
// Each register keeps the maximum rank it has observed. The estimate is the
// normalised harmonic mean of 2^-rank over all registers, with corrections
// for the small range.
//
// Weighted Updates
// ================
//
// For a weighted observation the written value is drawn by rejection
// sampling: starting from the base rank lr, trial i is accepted with
// probability (1 - 2^-(lr+i))^(weight-1), the probability that none of weight
// virtual draws would extend the tail beyond lr+i. A weight of exactly 1 never
// draws and writes lr. The random stream is injected with WithRandomSource.
//
// Data Representations
// ====================
//
//  1. SPARSE: a sorted list of (key, rank) entries where key is the lower 25
//     bits of the hash. Cardinality is estimated by linear counting over 2^25
//     virtual registers.
//
//  2. DENSE: one byte per register, 2^p bytes.
//
// The sketch starts sparse by default and is promoted to dense once the number
// of entries exceeds ((m*6)/8)/5 with bit packing, or m/3 without. Promotion
// replays every entry into the dense array, masking the key down to p bits.
// It is never reversed.
//
// Serialized Layout
// =================
//
//	+--------+---+---+---+---+----------+---------------------------+
//	| "HYLL" | E | P | F | H | Cardin.  | payload                   |
//	+--------+---+---+---+---+----------+---------------------------+
//
// "E" is the encoding, "P" the precision, "F" the flags (bit packing, bias
// correction, weighted, Ertl) and "H" the hasher id. "Cardin." is the
// little-endian cached cardinality whose MSB is the dirty flag.
//
// The sparse payload is a uvarint count followed by the packed entries
// (key << 7 | rank), delta encoded as uvarints. The dense payload is one byte
// of bit width followed by the registers packed at that width.
//
// Concurrency
// ===========
//
// Sketches are not safe for concurrent use. Shard by goroutine and Merge the
// results.
package hyperloglog

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/encoding"
)

// Stats counts the fallback paths a sketch has taken.
type Stats struct {
	// Promotions is the number of SPARSE to DENSE conversions (0 or 1).
	Promotions uint64

	// LinearCountFallbacks counts sparse estimates that had no empty virtual
	// register left and were computed on a dense projection instead.
	LinearCountFallbacks uint64

	// NonConvergedUpdates counts weighted updates whose rejection loop hit
	// its trial cap.
	NonConvergedUpdates uint64
}

// sketch is the state shared by HLL and WeightedHLL.
type sketch struct {
	cfg             Config
	est             estimator
	header          hllHeader
	sparse          *sparseRegister
	dense           *denseRegister
	switchThreshold int
	stats           Stats

	// ranker is nil for unweighted sketches.
	ranker *weightedRanker
}

// switchThreshold is the sparse entry count above which a sketch turns dense.
func switchThreshold(m int, bitPacking bool) int {
	//
	// DESIGN
	// ------
	//
	// Serialized sparse entries are delta encoded varints of up to 5 bytes.
	// With bit packing a dense register takes about 6 bits, so for p=14 the
	// dense form is ~12KB and the sparse form should stay under 12KB/5 ~= 2400
	// entries. Without bit packing the dense form is a full byte per register
	// and the threshold is looser.
	//
	if bitPacking {
		return ((m * 6) / 8) / 5
	}
	return m / 3
}

func configFlags(cfg Config, weighted bool) uint8 {
	var f uint8
	if cfg.BitPacking {
		f |= flagBitPacking
	}
	if cfg.BiasCorrection {
		f |= flagBiasCorrection
	}
	if weighted {
		f |= flagWeighted
	}
	if cfg.Estimator == EstimatorErtl {
		f |= flagErtl
	}
	return f
}

func newSketch(cfg Config, weighted bool) *sketch {
	s := &sketch{
		cfg: cfg,
		est: newEstimator(cfg),
		header: hllHeader{
			encoding:     cfg.Encoding,
			p:            cfg.Precision,
			flags:        configFlags(cfg, weighted),
			hasherID:     cfg.Hasher.id,
			cacheInvalid: true,
		},
		switchThreshold: switchThreshold(1<<cfg.Precision, cfg.BitPacking),
	}

	if cfg.Encoding == Sparse {
		s.sparse = newSparseRegister(cfg.Precision)
	} else {
		s.dense = newDenseRegister(cfg.Precision, cfg.BitPacking)
	}

	if weighted {
		s.ranker = newWeightedRanker(cfg, &s.stats)
	}
	return s
}

func (s *sketch) hash(data []byte) uint64 {
	return s.cfg.Hasher.Sum64(data)
}

// update routes a computed (index, rank) pair to the live register.
func (s *sketch) update(hash uint64, idx uint32, rank uint8) bool {
	if s.header.encoding == Sparse {
		return s.addSparse(sparseKey(hash), rank)
	}

	if !s.dense.set(idx, rank) {
		return false
	}
	s.header.cacheInvalid = true
	return true
}

func (s *sketch) addSparse(key uint32, rank uint8) bool {
	if !s.sparse.add(key, rank) {
		return false
	}

	s.header.cacheInvalid = true
	if s.sparse.size() > s.switchThreshold {
		s.promote()
	}
	return true
}

// promote converts the sketch from SPARSE to DENSE. It is a one-way operation.
func (s *sketch) promote() {
	if s.header.encoding == Dense {
		return
	}

	entries := s.sparse.size()
	s.dense = s.sparse.toDense(s.cfg.Precision, s.cfg.BitPacking)
	s.sparse = nil
	s.header.encoding = Dense
	s.header.cacheInvalid = true
	s.stats.Promotions++

	s.cfg.Logger.Debug("sketch promoted to dense encoding",
		"p", s.cfg.Precision,
		"entries", entries,
		"threshold", s.switchThreshold)
}

// denseView returns the dense register as seen by a merge: weighted sketches
// expose their weighted register.
func (s *sketch) denseView() register {
	if s.ranker != nil {
		return &weightedDenseRegister{denseRegister: s.dense, ranker: s.ranker}
	}
	return s.dense
}

// Count returns the estimated cardinality. The estimate is cached and only
// recomputed after a register changed.
func (s *sketch) Count() uint64 {
	if !s.header.cacheInvalid {
		return s.header.cachedCardinality
	}

	var card uint64
	if s.header.encoding == Sparse {
		card = s.countSparse(1 << pPrime)
	} else {
		card = s.est.dense(s.dense)
	}

	s.header.cachedCardinality = card &^ dirtyBit
	s.header.cacheInvalid = false
	return s.header.cachedCardinality
}

// countSparse runs linear counting over mPrime virtual registers. When none
// is left empty it falls back to the dense estimate of the projected
// registers.
func (s *sketch) countSparse(mPrime int) uint64 {
	card, ok := sparseLinearCount(mPrime, s.sparse.size())
	if ok {
		return card
	}

	s.stats.LinearCountFallbacks++
	s.cfg.Logger.Warn("sparse linear counting has no empty register, using dense estimate",
		"entries", s.sparse.size(),
		"registers", mPrime)
	return s.est.dense(s.sparse.toDense(s.cfg.Precision, s.cfg.BitPacking))
}

// merge folds other into s. other is never mutated.
func (s *sketch) merge(other *sketch) error {
	if s.cfg.Precision != other.cfg.Precision {
		return fmt.Errorf("%w: %d != %d", ErrPrecisionMismatch, s.cfg.Precision, other.cfg.Precision)
	}
	if !s.cfg.Hasher.sameAs(other.cfg.Hasher) {
		return fmt.Errorf("%w: %s != %s", ErrHasherMismatch, s.cfg.Hasher.Name, other.cfg.Hasher.Name)
	}

	//
	// DESIGN
	// ------
	//
	// Two sparse sketches merge their entry lists and may cross the switch
	// threshold. As soon as one side is dense the union is dense: a sparse
	// receiver is promoted, and a sparse operand is projected onto a
	// temporary dense register so it is left untouched.
	//
	switch {
	case s.header.encoding == Sparse && other.header.encoding == Sparse:
		if s.sparse.merge(other.sparse) {
			s.header.cacheInvalid = true
			if s.sparse.size() > s.switchThreshold {
				s.promote()
			}
		}
		return nil

	case other.header.encoding == Sparse:
		tmp := other.sparse.toDense(other.cfg.Precision, other.cfg.BitPacking)
		if err := s.dense.merge(tmp); err != nil {
			return err
		}

	default:
		s.promote()
		if err := s.dense.merge(other.denseView()); err != nil {
			return err
		}
	}

	s.header.cacheInvalid = true
	return nil
}

// StandardError is the relative standard error 1.04/sqrt(m).
func (s *sketch) StandardError() float64 {
	return 1.04 / math.Sqrt(float64(uint64(1)<<s.cfg.Precision))
}

// Precision returns p.
func (s *sketch) Precision() uint8 {
	return s.cfg.Precision
}

// Encoding returns the current register encoding.
func (s *sketch) Encoding() Encoding {
	return s.header.encoding
}

// Config returns the configuration the sketch was built with. Encoding is
// the initial encoding.
func (s *sketch) Config() Config {
	return s.cfg
}

// Stats returns a snapshot of the fallback counters.
func (s *sketch) Stats() Stats {
	return s.stats
}

func (s *sketch) equal(other *sketch) bool {
	if other == nil ||
		s.cfg.Precision != other.cfg.Precision ||
		s.header.encoding != other.header.encoding ||
		!s.cfg.Hasher.sameAs(other.cfg.Hasher) {
		return false
	}
	if s.header.encoding == Sparse {
		return s.sparse.equal(other.sparse)
	}
	return s.dense.equal(other.dense)
}

func (s *sketch) String() string {
	return fmt.Sprintf("Encoding: %s, p: %d, estimatedCardinality: %d",
		s.header.encoding, s.cfg.Precision, s.Count())
}

// ExtendedString is String followed by the raw register contents.
func (s *sketch) ExtendedString() string {
	var sb strings.Builder
	sb.WriteString(s.String())
	sb.WriteString(", ")
	if s.header.encoding == Sparse {
		sb.WriteString(s.sparse.extendedString())
	} else {
		sb.WriteString(s.dense.extendedString())
	}
	return sb.String()
}

// HLL is an unweighted HyperLogLog sketch. It is not safe for concurrent use.
type HLL struct {
	*sketch
}

// New creates an empty sketch.
func New(opts ...Option) (*HLL, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &HLL{sketch: newSketch(cfg, false)}, nil
}

// AddHash adds an already hashed value. It reports whether a register changed.
func (h *HLL) AddHash(hash uint64) bool {
	idx, rank := splitHash(hash, h.cfg.Precision)
	return h.update(hash, idx, rank)
}

func (h *HLL) AddBytes(v []byte) bool { return h.AddHash(h.hash(v)) }
func (h *HLL) AddBool(v bool) bool    { return h.AddBytes(boolBytes(v)) }
func (h *HLL) AddByte(v byte) bool    { return h.AddBytes([]byte{v}) }
func (h *HLL) AddInt16(v int16) bool  { return h.AddBytes(int16Bytes(v)) }
func (h *HLL) AddInt32(v int32) bool  { return h.AddBytes(int32Bytes(v)) }
func (h *HLL) AddInt64(v int64) bool  { return h.AddBytes(int64Bytes(v)) }

func (h *HLL) AddFloat32(v float32) bool { return h.AddBytes(float32Bytes(v)) }
func (h *HLL) AddFloat64(v float64) bool { return h.AddBytes(float64Bytes(v)) }

// AddString adds the UTF-8 bytes of v.
func (h *HLL) AddString(v string) bool { return h.AddBytes([]byte(v)) }

// AddStringEncoded adds v transcoded into enc, so the same text hashes the
// same way a producer using that charset would hash it.
func (h *HLL) AddStringEncoded(v string, enc encoding.Encoding) (bool, error) {
	b, err := encodeString(v, enc)
	if err != nil {
		return false, err
	}
	return h.AddBytes(b), nil
}

// Merge folds other into h. other is not modified.
func (h *HLL) Merge(other *HLL) error {
	return h.merge(other.sketch)
}

// Equal reports whether both sketches have the same configuration, encoding
// and register contents.
func (h *HLL) Equal(other *HLL) bool {
	return other != nil && h.equal(other.sketch)
}

// Clone returns a deep copy of h.
func (h *HLL) Clone() *HLL {
	return &HLL{sketch: h.clone()}
}

func (s *sketch) clone() *sketch {
	c := *s
	if s.sparse != nil {
		c.sparse = s.sparse.clone()
	}
	if s.dense != nil {
		c.dense = s.dense.clone()
	}
	if s.ranker != nil {
		r := *s.ranker
		r.stats = &c.stats
		c.ranker = &r
	}
	return &c
}

// WeightedHLL is a HyperLogLog sketch whose observations carry a positive
// real weight. It is not safe for concurrent use.
type WeightedHLL struct {
	*sketch
}

// NewWeighted creates an empty weighted sketch.
func NewWeighted(opts ...Option) (*WeightedHLL, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &WeightedHLL{sketch: newSketch(cfg, true)}, nil
}

// AddHash adds an already hashed value observed weight times. It fails with
// ErrInvalidWeight, leaving the sketch untouched, unless weight is a finite
// positive number.
func (w *WeightedHLL) AddHash(hash uint64, weight float64) (bool, error) {
	if err := validateWeight(weight); err != nil {
		return false, err
	}

	if w.header.encoding == Dense {
		reg := weightedDenseRegister{denseRegister: w.dense, ranker: w.ranker}
		changed, err := reg.add(hash, weight)
		if changed {
			w.header.cacheInvalid = true
		}
		return changed, err
	}

	idx, rank := w.ranker.rank(hash, weight)
	return w.update(hash, idx, rank), nil
}

func (w *WeightedHLL) AddBytes(v []byte, weight float64) (bool, error) {
	return w.AddHash(w.hash(v), weight)
}

func (w *WeightedHLL) AddBool(v bool, weight float64) (bool, error) {
	return w.AddBytes(boolBytes(v), weight)
}

func (w *WeightedHLL) AddByte(v byte, weight float64) (bool, error) {
	return w.AddBytes([]byte{v}, weight)
}

func (w *WeightedHLL) AddInt16(v int16, weight float64) (bool, error) {
	return w.AddBytes(int16Bytes(v), weight)
}

func (w *WeightedHLL) AddInt32(v int32, weight float64) (bool, error) {
	return w.AddBytes(int32Bytes(v), weight)
}

func (w *WeightedHLL) AddInt64(v int64, weight float64) (bool, error) {
	return w.AddBytes(int64Bytes(v), weight)
}

func (w *WeightedHLL) AddFloat32(v float32, weight float64) (bool, error) {
	return w.AddBytes(float32Bytes(v), weight)
}

func (w *WeightedHLL) AddFloat64(v float64, weight float64) (bool, error) {
	return w.AddBytes(float64Bytes(v), weight)
}

func (w *WeightedHLL) AddString(v string, weight float64) (bool, error) {
	return w.AddBytes([]byte(v), weight)
}

func (w *WeightedHLL) AddStringEncoded(v string, enc encoding.Encoding, weight float64) (bool, error) {
	b, err := encodeString(v, enc)
	if err != nil {
		return false, err
	}
	return w.AddBytes(b, weight)
}

// Merge folds other into w. other is not modified.
func (w *WeightedHLL) Merge(other *WeightedHLL) error {
	return w.merge(other.sketch)
}

func (w *WeightedHLL) Equal(other *WeightedHLL) bool {
	return other != nil && w.equal(other.sketch)
}

// Clone returns a deep copy of w. The copy shares the random source.
func (w *WeightedHLL) Clone() *WeightedHLL {
	return &WeightedHLL{sketch: w.clone()}
}
