package hyperloglog

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	metro "github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestSplitHash(t *testing.T) {
	testCases := []struct {
		name      string
		hash      uint64
		p         uint8
		wantIndex uint32
		wantRank  uint8
	}{
		{"all zero saturates at q+1", 0, 14, 0, 51},
		{"all zero at p=4", 0, 4, 0, 61},
		{"first remainder bit set", 1 << 14, 14, 0, 1},
		{"index and rank", 5 | 1<<(14+3), 14, 5, 4},
		{"highest index", 1<<14 - 1 | 1<<20, 14, 1<<14 - 1, 7},
		{"top bit only", 1 << 63, 14, 0, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idx, rank := splitHash(tc.hash, tc.p)
			assert.Equal(t, tc.wantIndex, idx)
			assert.Equal(t, tc.wantRank, rank)
		})
	}

	t.Run("rank never exceeds 65-p", func(t *testing.T) {
		nextHash := hashStream(7)
		for p := uint8(MinPrecision); p <= MaxPrecision; p++ {
			for range 1000 {
				hash := nextHash()
				idx, rank := splitHash(hash, p)
				require.Less(t, idx, uint32(1)<<p)
				require.GreaterOrEqual(t, rank, uint8(1))
				require.LessOrEqual(t, rank, maxRank(p))
			}
		}
	})
}

func TestSparseKey(t *testing.T) {
	assert.Equal(t, uint32(1<<pPrime-1), sparseKey(math.MaxUint64))
	assert.Equal(t, uint32(0), sparseKey(1<<pPrime))

	// The low p bits of the sparse key are the dense index.
	hash := uint64(0xDEADBEEFCAFEF00D)
	idx, _ := splitHash(hash, 14)
	assert.Equal(t, idx, sparseKey(hash)&(1<<14-1))
}

func TestHashers(t *testing.T) {
	data := []byte("weighted-hyperloglog")

	assert.Equal(t, xxhash.Sum64(data), XXHash.Sum64(data))
	assert.Equal(t, murmur3.Sum64(data), Murmur3.Sum64(data))
	assert.Equal(t, metro.Hash64(data, 0), Metro.Sum64(data))

	t.Run("by name", func(t *testing.T) {
		for _, h := range []Hasher{XXHash, Murmur3, Metro} {
			got, err := HasherByName(h.Name)
			require.NoError(t, err)
			assert.True(t, got.sameAs(h))

			byID, ok := hasherByID(h.id)
			require.True(t, ok)
			assert.True(t, byID.sameAs(h))
		}

		got, err := HasherByName(" MURMUR3 ")
		require.NoError(t, err)
		assert.Equal(t, "murmur3", got.Name)

		got, err = HasherByName("")
		require.NoError(t, err)
		assert.Equal(t, "xxhash", got.Name)

		_, err = HasherByName("sha1")
		assert.ErrorIs(t, err, ErrUnknownHasher)

		_, ok := hasherByID(hasherIDCustom)
		assert.False(t, ok)
	})

	t.Run("custom", func(t *testing.T) {
		h := NewHasher("constant", func([]byte) uint64 { return 42 })
		assert.Equal(t, uint64(42), h.Sum64(data))
		assert.False(t, h.sameAs(XXHash))
		assert.True(t, h.sameAs(NewHasher("constant", nil)))
	})
}

func TestValueEncoding(t *testing.T) {
	assert.Equal(t, []byte{1}, boolBytes(true))
	assert.Equal(t, []byte{0}, boolBytes(false))
	assert.Equal(t, []byte{0x00, 0x01}, int16Bytes(1))
	assert.Equal(t, []byte{0xFF, 0xFE}, int16Bytes(-2))
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, int32Bytes(256))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 7}, int64Bytes(7))
	assert.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, float32Bytes(1))
	assert.Equal(t, []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, float64Bytes(1))
}

func TestEncodeString(t *testing.T) {
	t.Run("nil keeps utf-8", func(t *testing.T) {
		got, err := encodeString("é", nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xC3, 0xA9}, got)
	})

	t.Run("latin-1", func(t *testing.T) {
		got, err := encodeString("é", charmap.ISO8859_1)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xE9}, got)
	})

	t.Run("utf-16 big endian", func(t *testing.T) {
		got, err := encodeString("A", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x41}, got)
	})

	t.Run("unencodable rune", func(t *testing.T) {
		_, err := encodeString("日本", charmap.ISO8859_1)
		assert.Error(t, err)
	})
}
