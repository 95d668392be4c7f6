package hyperloglog

import (
	"math"
)

//go:generate go run whll.lopezb.com/tools/biasgen -out biasdata.go

const (
	// kNearestNeighbors is the number of bias table entries averaged for one
	// correction.
	kNearestNeighbors = 6

	// ertlAlpha is the asymptotic alpha constant, 0.5 / ln(2).
	ertlAlpha = 0.721347520444481703680

	// hashBits is the width of the hash codes fed into the sketch.
	hashBits = 64
)

// thresholdData[p-4] is the cardinality below which linear counting beats the
// bias corrected estimate, from Heule et al. "HyperLogLog in Practice".
var thresholdData = [...]float64{
	10, 20, 40, 80, 220, 400, 900, 1800, 3100, 6500, 11500, 20000, 50000, 120000, 350000,
}

// estimator turns register state into a cardinality. It is derived once from
// the sketch configuration.
type estimator struct {
	p              uint8
	m              int
	alphaMM        float64
	biasCorrection bool
	kind           Estimator
}

func newEstimator(cfg Config) estimator {
	m := 1 << cfg.Precision
	return estimator{
		p:              cfg.Precision,
		m:              m,
		alphaMM:        alphaMM(m),
		biasCorrection: cfg.BiasCorrection,
		kind:           cfg.Estimator,
	}
}

// alphaMM is alpha_m * m^2, the numerator of the raw estimate.
func alphaMM(m int) float64 {
	fm := float64(m)
	return 0.7213 / (1 + 1.079/fm) * fm * fm
}

// linearCount is m * ln(m / zeros). zeros must be positive.
func linearCount(m, zeros int) float64 {
	return float64(m) * math.Log(float64(m)/float64(zeros))
}

// sparseLinearCount estimates from the sparse entry count over mPrime virtual
// registers. It reports false when every virtual register is taken, in which
// case linear counting is undefined.
func sparseLinearCount(mPrime, entries int) (uint64, bool) {
	zeros := mPrime - entries
	if zeros <= 0 {
		return 0, false
	}
	return uint64(math.Round(linearCount(mPrime, zeros))), true
}

// dense estimates the cardinality of a dense register.
func (e estimator) dense(r *denseRegister) uint64 {
	if e.kind == EstimatorErtl {
		return ertlEstimate(r.histogram(), e.m, 64-int(e.p))
	}

	raw := e.alphaMM / r.sumInversePow2()
	zeros := r.numZeroes()

	var est float64
	if e.biasCorrection {
		est = e.correctBias(math.Floor(raw), zeros)
	} else {
		est = classicCorrection(math.Floor(raw), e.m, zeros, hashBits)
	}

	if est < 0 {
		return 0
	}
	return uint64(est)
}

// correctBias applies the HLL++ small range handling to a raw estimate.
func (e estimator) correctBias(raw float64, zeros int) float64 {
	//
	// DESIGN
	// ------
	//
	// Below 5m the raw harmonic mean overshoots. The overshoot is looked up in
	// the simulated (rawEstimate, bias) tables by averaging the k entries
	// whose raw estimate is closest to ours, then subtracted.
	//
	// Linear counting is still more accurate for genuinely small sets, so
	// when some registers are empty it is computed over the m registers and
	// wins whenever it falls under the per precision threshold.
	//
	est := raw
	if est <= 5*float64(e.m) {
		est -= estimateBias(est, rawEstimateData[e.p-MinPrecision], biasData[e.p-MinPrecision])
	}

	h := est
	if zeros != 0 {
		h = math.Round(linearCount(e.m, zeros))
	}
	if h < math.Floor(thresholdData[e.p-MinPrecision]+0.5) {
		est = h
	}
	return est
}

// estimateBias averages the bias of the k table entries nearest to est, by
// squared distance, and rounds the result. Ties go to the lower index.
func estimateBias(est float64, rawEstimates, biases []float64) float64 {
	k := min(kNearestNeighbors, len(rawEstimates))
	if k == 0 {
		return 0
	}

	var (
		idx  [kNearestNeighbors]int
		dist [kNearestNeighbors]float64
		n    int
	)
	for i, raw := range rawEstimates {
		d := (est - raw) * (est - raw)
		if n == k && d >= dist[n-1] {
			continue
		}

		// Insertion into the sorted top-k window.
		j := n
		if n < k {
			n++
		} else {
			j = k - 1
		}
		for j > 0 && dist[j-1] > d {
			dist[j], idx[j] = dist[j-1], idx[j-1]
			j--
		}
		dist[j], idx[j] = d, i
	}

	sum := 0.0
	for _, i := range idx[:n] {
		sum += biases[i]
	}
	return math.Floor(sum/float64(kNearestNeighbors) + 0.5)
}

// classicCorrection is the three regime correction from Flajolet et al.,
// used when bias correction is disabled.
func classicCorrection(raw float64, m, zeros int, bits uint) float64 {
	if raw <= 2.5*float64(m) {
		if zeros != 0 {
			return math.Round(linearCount(m, zeros))
		}
		return raw
	}

	if bits < 64 {
		pow := math.Ldexp(1, int(bits))
		if raw > pow/30 {
			return math.Floor(-pow * math.Log(1-raw/pow))
		}
	}
	return raw
}

// ertlEstimate is the improved estimator from Ertl's "New cardinality
// estimation algorithms for HyperLogLog sketches". It works on the register
// histogram and needs no tables. q is the number of rank bits, 64-p.
func ertlEstimate(histo []int, m, q int) uint64 {
	fm := float64(m)

	z := fm * hllTau(float64(m-histo[q+1])/fm)
	for j := q; j >= 1; j-- {
		z += float64(histo[j])
		z *= 0.5
	}
	z += fm * hllSigma(float64(histo[0])/fm)

	return uint64(math.Round(ertlAlpha * fm * fm / z))
}

// hllSigma is the sigma(x) helper from Ertl. It adds the contribution of
// registers that are equal to zero.
func hllSigma(x float64) float64 {
	if x == 1. {
		return math.Inf(1)
	}

	zPrime := 0.0
	y := 1.0
	z := x

	for {
		x *= x
		zPrime = z
		z += x * y
		y += y

		if zPrime == z {
			break
		}
	}

	return z
}

// hllTau is the tau(x) helper from Ertl. It corrects for registers that hold
// the maximum rank.
func hllTau(x float64) float64 {
	if x == 0. || x == 1. {
		return 0.
	}

	zPrime := 0.0
	y := 1.0
	z := 1 - x

	for {
		x = math.Sqrt(x)
		zPrime = z
		y *= 0.5
		z -= (1 - x) * (1 - x) * y

		if zPrime == z {
			break
		}
	}

	return z / 3
}
