package hyperloglog

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// pPrime is the register index width used while a sketch is sparse. Linear
	// counting over 2^25 virtual registers is far more accurate than over 2^p.
	pPrime = 25

	// qPrimeBits is the number of rank bits in a packed sparse value. Seven
	// bits hold every rank a weighted update can write.
	qPrimeBits = 7
	qPrimeMask = 1<<qPrimeBits - 1
)

type sparseEntry struct {
	key   uint32
	value uint8
}

// sparseRegister keeps the non-zero registers of a sketch as a slice of
// entries sorted by key.
type sparseRegister struct {
	p       uint8
	entries []sparseEntry
}

func newSparseRegister(p uint8) *sparseRegister {
	return &sparseRegister{
		p:       p,
		entries: make([]sparseEntry, 0, 8),
	}
}

// add stores rank under key if the key is absent or holds a smaller rank.
// It reports whether the register changed.
func (r *sparseRegister) add(key uint32, rank uint8) bool {
	if rank == 0 {
		return false
	}

	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].key >= key
	})

	if i < len(r.entries) && r.entries[i].key == key {
		if rank <= r.entries[i].value {
			return false
		}
		r.entries[i].value = rank
		return true
	}

	// Grow by one, shift the tail right and assign at the insertion point.
	r.entries = append(r.entries, sparseEntry{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = sparseEntry{key: key, value: rank}

	return true
}

func (r *sparseRegister) size() int {
	return len(r.entries)
}

// toDense replays every entry into a fresh dense register of 2^p slots. Keys
// are masked down to p bits, so several sparse keys may land in the same slot
// and the largest rank wins.
func (r *sparseRegister) toDense(p uint8, bitPacking bool) *denseRegister {
	d := newDenseRegister(p, bitPacking)
	mask := uint32(1)<<p - 1
	for _, e := range r.entries {
		d.set(e.key&mask, e.value)
	}
	return d
}

// merge folds other into r, keeping the larger rank for shared keys. Both
// entry lists are sorted, so this is a single merge-join pass.
func (r *sparseRegister) merge(other *sparseRegister) bool {
	if len(other.entries) == 0 {
		return false
	}

	merged := make([]sparseEntry, 0, len(r.entries)+len(other.entries))
	changed := false

	a, b := r.entries, other.entries
	for len(a) > 0 && len(b) > 0 {
		switch {
		case a[0].key < b[0].key:
			merged = append(merged, a[0])
			a = a[1:]
		case a[0].key > b[0].key:
			merged = append(merged, b[0])
			b = b[1:]
			changed = true
		default:
			e := a[0]
			if b[0].value > e.value {
				e.value = b[0].value
				changed = true
			}
			merged = append(merged, e)
			a, b = a[1:], b[1:]
		}
	}
	merged = append(merged, a...)
	if len(b) > 0 {
		merged = append(merged, b...)
		changed = true
	}

	r.entries = merged
	return changed
}

// packed returns the entries as (key << qPrimeBits) | rank, in key order.
func (r *sparseRegister) packed() []uint32 {
	out := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.key<<qPrimeBits | uint32(e.value&qPrimeMask)
	}
	return out
}

func unpackSparseValue(v uint32) (key uint32, rank uint8) {
	return v >> qPrimeBits, uint8(v & qPrimeMask)
}

func (r *sparseRegister) clone() *sparseRegister {
	c := &sparseRegister{p: r.p, entries: make([]sparseEntry, len(r.entries))}
	copy(c.entries, r.entries)
	return c
}

func (r *sparseRegister) equal(other *sparseRegister) bool {
	if other == nil || r.p != other.p || len(r.entries) != len(other.entries) {
		return false
	}
	for i := range r.entries {
		if r.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

func (r *sparseRegister) String() string {
	return fmt.Sprintf("HLLSparseRegister - p: %d pPrime: %d qPrime: %d size: %d",
		r.p, pPrime, qPrimeBits, len(r.entries))
}

func (r *sparseRegister) extendedString() string {
	var sb strings.Builder
	sb.WriteString(r.String())
	sb.WriteString(" register: [")
	for i, e := range r.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d=%d", e.key, e.value)
	}
	sb.WriteString("]")
	return sb.String()
}
