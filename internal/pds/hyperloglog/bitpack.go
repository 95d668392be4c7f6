package hyperloglog

import (
	"fmt"
	"math/bits"
)

// bitWidth returns the number of bits needed to hold max, at least 1.
func bitWidth(max uint8) uint8 {
	w := bits.Len8(max)
	if w == 0 {
		return 1
	}
	return uint8(w)
}

// packedSize is the number of bytes packBits produces for n values.
func packedSize(n int, width uint8) int {
	return (n*int(width) + 7) / 8
}

// packBits writes each value's low width bits back to back, least
// significant bit first.
func packBits(values []byte, width uint8) []byte {
	out := make([]byte, 0, packedSize(len(values), width))
	mask := uint64(1)<<width - 1

	var acc uint64
	var nbits uint8
	for _, v := range values {
		acc |= (uint64(v) & mask) << nbits
		nbits += width
		for nbits >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			nbits -= 8
		}
	}
	if nbits > 0 {
		out = append(out, byte(acc))
	}
	return out
}

// unpackBits is the inverse of packBits for n values.
func unpackBits(data []byte, width uint8, n int) ([]byte, error) {
	if width == 0 || width > 8 {
		return nil, fmt.Errorf("%w: bit width %d", ErrInvalidData, width)
	}
	if len(data) < packedSize(n, width) {
		return nil, fmt.Errorf("%w: packed registers truncated", ErrInvalidData)
	}

	out := make([]byte, n)
	mask := uint64(1)<<width - 1

	var acc uint64
	var nbits uint8
	j := 0
	for i := range out {
		for nbits < width {
			acc |= uint64(data[j]) << nbits
			j++
			nbits += 8
		}
		out[i] = byte(acc & mask)
		acc >>= width
		nbits -= width
	}
	return out, nil
}
