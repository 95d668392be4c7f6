package hyperloglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeaderRoundTrip verifies that the header serialization and deserialization
// functions work correctly together.
func TestHeaderRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		header hllHeader
	}{
		{
			name: "Sparse encoding with invalid cache",
			header: hllHeader{
				encoding:     Sparse,
				p:            14,
				flags:        flagBitPacking | flagBiasCorrection,
				hasherID:     hasherIDXXHash,
				cacheInvalid: true,
			},
		},
		{
			name: "Dense weighted encoding with valid cache",
			header: hllHeader{
				encoding:          Dense,
				p:                 4,
				flags:             flagWeighted | flagErtl,
				hasherID:          hasherIDMurmur3,
				cachedCardinality: 12345,
			},
		},
		{
			name: "Custom hasher at max precision",
			header: hllHeader{
				encoding:          Dense,
				p:                 MaxPrecision,
				hasherID:          hasherIDCustom,
				cachedCardinality: 1 << 40,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			serialized := tc.header.serialize()
			require.Len(t, serialized, headerSize)
			assert.Equal(t, []byte(Magic), serialized[0:4])

			got, err := deserializeHeader(serialized)
			require.NoError(t, err)
			assert.Equal(t, tc.header, got)
		})
	}
}

// TestHeaderDirtyBit checks that the dirty flag lives in the MSB of byte 15
// and never leaks into the cardinality.
func TestHeaderDirtyBit(t *testing.T) {
	h := hllHeader{encoding: Dense, p: 14, cachedCardinality: 42, cacheInvalid: true}
	data := h.serialize()
	assert.Equal(t, byte(0x80), data[15]&0x80)

	h.cacheInvalid = false
	data = h.serialize()
	assert.Zero(t, data[15]&0x80)
}

// TestDeserializeHeaderErrors tests the error cases of the deserializer.
func TestDeserializeHeaderErrors(t *testing.T) {
	valid := hllHeader{encoding: Sparse, p: 14}.serialize()

	t.Run("Slice too short", func(t *testing.T) {
		_, err := deserializeHeader(make([]byte, 10))
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("Wrong magic string", func(t *testing.T) {
		_, err := deserializeHeader([]byte("NOT_HYLL_and_more_bytes"))
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("Unknown encoding", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[4] = 7
		_, err := deserializeHeader(data)
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("Precision out of range", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[5] = 3
		_, err := deserializeHeader(data)
		assert.ErrorIs(t, err, ErrPrecisionOutOfRange)
	})
}

func TestCachedCount(t *testing.T) {
	t.Run("dirty cache is not reported", func(t *testing.T) {
		data := hllHeader{encoding: Sparse, p: 14, cachedCardinality: 9, cacheInvalid: true}.serialize()
		_, ok := CachedCount(data)
		assert.False(t, ok)
	})

	t.Run("valid cache is reported", func(t *testing.T) {
		data := hllHeader{encoding: Dense, p: 14, cachedCardinality: 9}.serialize()
		got, ok := CachedCount(data)
		require.True(t, ok)
		assert.Equal(t, uint64(9), got)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, ok := CachedCount([]byte("HYLL"))
		assert.False(t, ok)
		_, ok = CachedCount([]byte("XXXXXXXXXXXXXXXXXXXX"))
		assert.False(t, ok)
	})
}
