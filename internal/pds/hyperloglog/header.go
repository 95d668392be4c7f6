package hyperloglog

import (
	"encoding/binary"
	"fmt"
)

const (
	headerSize = 16
	Magic      = "HYLL"
)

const (
	flagBitPacking     uint8 = 1 << 0
	flagBiasCorrection uint8 = 1 << 1
	flagWeighted       uint8 = 1 << 2
	flagErtl           uint8 = 1 << 3

	dirtyBit = uint64(1) << 63
)

type hllHeader struct {
	encoding          Encoding
	p                 uint8
	flags             uint8
	hasherID          uint8
	cachedCardinality uint64
	cacheInvalid      bool
}

func (h hllHeader) has(flag uint8) bool {
	return h.flags&flag != 0
}

// serialize encodes the header into its 16-byte wire form.
func (h hllHeader) serialize() []byte {
	//
	// DESIGN
	// ------
	//
	// +------+----------+-----+-------------------------------+
	// | Bytes| Field    | Size| Notes                         |
	// +------+----------+-----+-------------------------------+
	// | 0-3  | Magic    | 4   | "HYLL"                        |
	// | 4    | Encoding | 1   | 0 for dense, 1 for sparse     |
	// | 5    | P        | 1   | register index bits           |
	// | 6    | Flags    | 1   | packing, bias, weighted, ertl |
	// | 7    | Hasher   | 1   | built-in hasher id, 255=custom|
	// | 8-15 | Card.    | 8   | Cached cardinality (uint64)   |
	// +------+----------+-----+-------------------------------+
	//
	// The cardinality is little-endian. Its most significant bit, the MSB of
	// byte 15, is the dirty flag: when set the cached value is stale.
	//

	buffer := make([]byte, headerSize)
	copy(buffer[0:4], Magic)
	buffer[4] = byte(h.encoding)
	buffer[5] = h.p
	buffer[6] = h.flags
	buffer[7] = h.hasherID

	card := h.cachedCardinality &^ dirtyBit
	if h.cacheInvalid {
		card |= dirtyBit
	}
	binary.LittleEndian.PutUint64(buffer[8:16], card)

	return buffer
}

// deserializeHeader validates and decodes the first 16 bytes of data.
func deserializeHeader(data []byte) (hllHeader, error) {
	if len(data) < headerSize {
		return hllHeader{}, fmt.Errorf("%w: slice is too short for header", ErrInvalidData)
	}
	if !HasValidMagic(data) {
		return hllHeader{}, fmt.Errorf("%w: magic string not found", ErrInvalidData)
	}

	h := hllHeader{
		encoding: Encoding(data[4]),
		p:        data[5],
		flags:    data[6],
		hasherID: data[7],
	}
	if h.encoding > Sparse {
		return hllHeader{}, fmt.Errorf("%w: unknown encoding value %d", ErrInvalidData, data[4])
	}
	if h.p < MinPrecision || h.p > MaxPrecision {
		return hllHeader{}, fmt.Errorf("%w: got %d", ErrPrecisionOutOfRange, h.p)
	}

	raw := binary.LittleEndian.Uint64(data[8:16])
	h.cacheInvalid = raw&dirtyBit != 0
	h.cachedCardinality = raw &^ dirtyBit

	return h, nil
}

// HasValidMagic checks if data starts with the HLL magic bytes without allocation.
func HasValidMagic(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 'H' && data[1] == 'Y' && data[2] == 'L' && data[3] == 'L'
}

// CachedCount peeks into a serialized sketch and returns the cached
// cardinality without decoding the registers. It reports false when the
// header is invalid or the cache is dirty.
func CachedCount(data []byte) (uint64, bool) {
	if len(data) < headerSize || !HasValidMagic(data) {
		return 0, false
	}
	if data[15]&0x80 != 0 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[8:16]) &^ dirtyBit, true
}
