package hyperloglog

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"
)

// maxWeightedTrials caps the rejection loop. Every rank it can produce
// still fits the seven sparse rank bits.
const maxWeightedTrials = 64

// maxWeightedRank is the largest value a weighted update may write.
const maxWeightedRank = qPrimeMask

// validateWeight rejects weights that do not describe a positive multiplicity.
func validateWeight(weight float64) error {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}
	return nil
}

// weightedRanker turns a hash code and a weight into the register index and
// the value to write there.
type weightedRanker struct {
	p      uint8
	rule   UpdateRule
	rng    RandomSource
	logger *slog.Logger
	stats  *Stats
}

func newWeightedRanker(cfg Config, stats *Stats) *weightedRanker {
	return &weightedRanker{
		p:      cfg.Precision,
		rule:   cfg.UpdateRule,
		rng:    cfg.Random,
		logger: cfg.Logger,
		stats:  stats,
	}
}

// rank computes the weighted register value for hash. weight must already
// be validated.
func (w *weightedRanker) rank(hash uint64, weight float64) (uint32, uint8) {
	idx, lr := splitHash(hash, w.p)
	if weight == 1 {
		return idx, lr
	}

	switch w.rule {
	case InverseTransform:
		return idx, inverseTransformRank(hash, w.p, weight)
	case PowerTransform:
		return idx, powerTransformRank(hash, w.p, weight)
	default:
		return idx, w.rejectionRank(lr, weight)
	}
}

// rejectionRank draws the tail extension of lr for an observation seen
// weight times.
func (w *weightedRanker) rejectionRank(lr uint8, weight float64) uint8 {
	//
	// DESIGN
	// ------
	//
	// Among weight unit draws that all landed on this register, the
	// probability that none pushes the tail past lr+i is
	//
	//     p_i = (1 - 2^-(lr+i))^(weight-1)
	//
	// Trial i accepts when a fresh uniform f satisfies f <= p_i, and lr+i is
	// written. p_i is computed as exp((weight-1) * log1p(-2^-(lr+i))) so it
	// does not round to 1 once 2^-(lr+i) drops below the float64 epsilon.
	//
	// The loop almost surely stops, but a huge weight can keep p_i at zero
	// for every trial. After maxWeightedTrials the update falls back to lr
	// and the event is counted in Stats.NonConvergedUpdates.
	//
	for i := range maxWeightedTrials {
		k := int(lr) + i
		p := math.Exp((weight - 1) * math.Log1p(-math.Ldexp(1, -k)))
		if w.rng.Float64() <= p {
			return uint8(k)
		}
	}

	w.stats.NonConvergedUpdates++
	w.logger.Warn("weighted rank update did not converge",
		"rank", lr,
		"weight", weight,
		"trials", maxWeightedTrials)
	return lr
}

// inverseTransformRank is an experimental closed form: the hash remainder is
// read as a uniform value, pushed through the inverse of the weighted
// minimum distribution and turned back into a rank.
func inverseTransformRank(hash uint64, p uint8, weight float64) uint8 {
	q := 64 - int(p)
	unif := math.Ldexp(float64(hash>>p)+1, -q)
	h2 := 1 - math.Pow(1-unif, 1/weight)
	if h2 <= 0 {
		return maxWeightedRank
	}

	v := math.Floor(-math.Log2(h2)) + 1
	return uint8(max(1, min(v, maxWeightedRank)))
}

// powerTransformRank is an experimental variant: the normalised remainder is
// raised to 1/weight, scaled back to q bits and ranked by trailing zeros.
func powerTransformRank(hash uint64, p uint8, weight float64) uint8 {
	q := 64 - int(p)
	unif := math.Ldexp(float64(hash>>p)+1, -q)
	scaled := math.Ldexp(math.Pow(unif, 1/weight), q)

	v := uint64(min(scaled, math.Ldexp(1, q)-1))
	v |= uint64(1) << q
	return min(uint8(bits.TrailingZeros64(v))+1, maxRank(p))
}

// weightedDenseRegister shares the slot array of a dense register and adds
// the weighted update.
type weightedDenseRegister struct {
	*denseRegister
	ranker *weightedRanker
}

// add writes the weighted rank for hash. It fails without touching the
// register when the weight is invalid.
func (r *weightedDenseRegister) add(hash uint64, weight float64) (bool, error) {
	if err := validateWeight(weight); err != nil {
		return false, err
	}
	idx, rank := r.ranker.rank(hash, weight)
	return r.set(idx, rank), nil
}
