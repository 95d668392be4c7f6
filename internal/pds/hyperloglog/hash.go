package hyperloglog

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/cespare/xxhash/v2"
	metro "github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"
	"golang.org/x/text/encoding"
)

// Hasher ids stored in byte 7 of the serialized header.
const (
	hasherIDXXHash  uint8 = 0
	hasherIDMurmur3 uint8 = 1
	hasherIDMetro   uint8 = 2
	hasherIDCustom  uint8 = 255
)

// Hasher is the black-box hash function of a sketch: any input reduced to
// bytes becomes a 64-bit hash code. Sketches only merge when they share the
// same Hasher.
type Hasher struct {
	Name  string
	Sum64 func(data []byte) uint64
	id    uint8
}

var (
	// XXHash is the default hasher.
	XXHash = Hasher{Name: "xxhash", Sum64: xxhash.Sum64, id: hasherIDXXHash}

	// Murmur3 uses the first 64 bits of MurmurHash3 x64_128.
	Murmur3 = Hasher{Name: "murmur3", Sum64: murmur3.Sum64, id: hasherIDMurmur3}

	// Metro uses MetroHash64 with a zero seed.
	Metro = Hasher{Name: "metro", Sum64: func(data []byte) uint64 { return metro.Hash64(data, 0) }, id: hasherIDMetro}
)

// NewHasher wraps a custom hash function. Serialized sketches that use it
// can only be decoded by passing the same hasher back with WithHasher.
func NewHasher(name string, fn func(data []byte) uint64) Hasher {
	return Hasher{Name: name, Sum64: fn, id: hasherIDCustom}
}

// HasherByName resolves one of the built-in hashers.
func HasherByName(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", XXHash.Name:
		return XXHash, nil
	case Murmur3.Name:
		return Murmur3, nil
	case Metro.Name:
		return Metro, nil
	default:
		return Hasher{}, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
}

func hasherByID(id uint8) (Hasher, bool) {
	switch id {
	case hasherIDXXHash:
		return XXHash, true
	case hasherIDMurmur3:
		return Murmur3, true
	case hasherIDMetro:
		return Metro, true
	default:
		return Hasher{}, false
	}
}

func (h Hasher) sameAs(other Hasher) bool {
	return h.id == other.id && h.Name == other.Name
}

// splitHash computes the register index and rank for a hash code.
func splitHash(hash uint64, p uint8) (index uint32, rank uint8) {
	//
	// DESIGN
	// ------
	//
	// The p least significant bits select one of the m = 2^p registers. The
	// remaining q = 64-p bits give the rank: the position of the least
	// significant 1-bit, plus one.
	//
	// A guard bit is set at position q of the shifted remainder. It keeps the
	// value non-zero, so when all q bits are zero the rank saturates at q+1
	// instead of reporting 65.
	//
	index = uint32(hash & (uint64(1)<<p - 1))

	remainder := hash >> p
	remainder |= uint64(1) << (64 - p)
	rank = uint8(bits.TrailingZeros64(remainder)) + 1

	return index, rank
}

// maxRank is the largest rank splitHash can produce for p.
func maxRank(p uint8) uint8 {
	return 64 - p + 1
}

// sparseKey returns the high precision register index used while sparse.
func sparseKey(hash uint64) uint32 {
	return uint32(hash & (uint64(1)<<pPrime - 1))
}

func boolBytes(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func int16Bytes(v int16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}

func int32Bytes(v int32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

func int64Bytes(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func float32Bytes(v float32) []byte {
	return int32Bytes(int32(math.Float32bits(v)))
}

func float64Bytes(v float64) []byte {
	return int64Bytes(int64(math.Float64bits(v)))
}

// encodeString transcodes a UTF-8 Go string into enc. A nil encoding keeps UTF-8.
func encodeString(v string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		return []byte(v), nil
	}

	out, err := enc.NewEncoder().Bytes([]byte(v))
	if err != nil {
		return nil, fmt.Errorf("hll: encode string: %w", err)
	}
	return out, nil
}
