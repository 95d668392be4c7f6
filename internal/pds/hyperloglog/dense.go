package hyperloglog

import (
	"fmt"
	"math"
	"strings"
)

// inversePow2Data[v] = 2^-v for every value a register byte can hold.
var inversePow2Data = func() (table [256]float64) {
	for i := range table {
		table[i] = math.Ldexp(1, -i)
	}
	return table
}()

// register is the behaviour shared by the dense slot array and its weighted
// variant. The sketch estimator only needs these operations.
type register interface {
	set(idx uint32, value uint8) bool
	merge(other register) error
	numZeroes() int
	sumInversePow2() float64
}

// denseRegister stores one byte per register, m = 2^p bytes in total.
type denseRegister struct {
	p                uint8
	bitPacking       bool
	registers        []byte
	maxRegisterValue uint8
}

func newDenseRegister(p uint8, bitPacking bool) *denseRegister {
	return &denseRegister{
		p:          p,
		bitPacking: bitPacking,
		registers:  make([]byte, 1<<p),
	}
}

// add applies the unweighted update for a hash code.
func (r *denseRegister) add(hash uint64) bool {
	idx, rank := splitHash(hash, r.p)
	return r.set(idx, rank)
}

// set writes value at idx only if it is strictly greater than the stored value.
// It is not thread-safe; the caller must serialize access.
func (r *denseRegister) set(idx uint32, value uint8) bool {
	if int(idx) >= len(r.registers) || value <= r.registers[idx] {
		return false
	}

	r.registers[idx] = value
	if value > r.maxRegisterValue {
		r.maxRegisterValue = value
	}
	return true
}

func (r *denseRegister) size() int {
	return len(r.registers)
}

// merge sets every slot to the max of both registers. The other register is
// only read.
func (r *denseRegister) merge(other register) error {
	var src *denseRegister
	switch o := other.(type) {
	case *denseRegister:
		src = o
	case *weightedDenseRegister:
		src = o.denseRegister
	default:
		return fmt.Errorf("%w: %T", ErrRegisterTypeMismatch, other)
	}

	if len(src.registers) != len(r.registers) {
		return fmt.Errorf("%w: %d != %d", ErrRegisterSizeMismatch, len(r.registers), len(src.registers))
	}

	dst := r.registers
	for i, v := range src.registers {
		if v > dst[i] {
			dst[i] = v
		}
	}

	if src.maxRegisterValue > r.maxRegisterValue {
		r.maxRegisterValue = src.maxRegisterValue
	}
	return nil
}

func (r *denseRegister) numZeroes() int {
	zeroes := 0
	for _, v := range r.registers {
		if v == 0 {
			zeroes++
		}
	}
	return zeroes
}

// sumInversePow2 returns the harmonic-mean denominator: the sum of 2^-v.
func (r *denseRegister) sumInversePow2() float64 {
	sum := 0.0
	for _, v := range r.registers {
		sum += inversePow2Data[v]
	}
	return sum
}

// histogram counts the occurrences of each rank for the Ertl estimator. Ranks
// beyond q+1, which only weighted updates produce, are folded into the last
// bucket.
func (r *denseRegister) histogram() []int {
	top := int(maxRank(r.p))
	histo := make([]int, top+1)
	for _, v := range r.registers {
		histo[min(int(v), top)]++
	}
	return histo
}

func (r *denseRegister) clone() *denseRegister {
	c := *r
	c.registers = make([]byte, len(r.registers))
	copy(c.registers, r.registers)
	return &c
}

// equal compares zero count, cached maximum and register contents.
func (r *denseRegister) equal(other *denseRegister) bool {
	if other == nil {
		return false
	}
	return r.numZeroes() == other.numZeroes() &&
		r.maxRegisterValue == other.maxRegisterValue &&
		string(r.registers) == string(other.registers)
}

func (r *denseRegister) String() string {
	return fmt.Sprintf("HLLDenseRegister - p: %d numZeroes: %d maxRegisterValue: %d",
		r.p, r.numZeroes(), r.maxRegisterValue)
}

func (r *denseRegister) extendedString() string {
	var sb strings.Builder
	sb.WriteString(r.String())
	sb.WriteString(" register: [")
	for i, v := range r.registers {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteString("]")
	return sb.String()
}
