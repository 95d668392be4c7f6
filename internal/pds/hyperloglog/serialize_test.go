package hyperloglog

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	t.Run("sparse", func(t *testing.T) {
		h := mustNew(t)
		for i := range int64(500) {
			h.AddInt64(i)
		}
		require.Equal(t, Sparse, h.Encoding())

		data, err := h.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, byte(Sparse), data[4])

		got, err := Unmarshal(data)
		require.NoError(t, err)
		assert.True(t, h.Equal(got))
		assert.Equal(t, h.SparseRegisterValues(), got.SparseRegisterValues())
		assert.Equal(t, h.Count(), got.Count())
	})

	for _, bitPacking := range []bool{true, false} {
		t.Run("dense", func(t *testing.T) {
			h := mustNew(t, WithEncoding(Dense), WithPrecision(10), WithBitPacking(bitPacking))
			for i := range int64(5000) {
				h.AddInt64(i)
			}
			want := h.Count()

			data, err := h.MarshalBinary()
			require.NoError(t, err)

			width := uint8(8)
			if bitPacking {
				width = bitWidth(h.dense.maxRegisterValue)
			}
			assert.Equal(t, width, data[headerSize])
			assert.Len(t, data, headerSize+1+packedSize(1<<10, width))

			got, err := Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, h.Equal(got))
			assert.Equal(t, bitPacking, got.Config().BitPacking)

			got.header.cacheInvalid = true
			assert.Equal(t, want, got.Count(), "estimate must be recomputed from identical registers")
		})
	}

	t.Run("flags survive", func(t *testing.T) {
		h := mustNew(t,
			WithEncoding(Dense),
			WithBiasCorrection(false),
			WithEstimator(EstimatorErtl),
			WithHasher(Murmur3))
		h.AddString("flags")

		data, err := h.MarshalBinary()
		require.NoError(t, err)

		got, err := Unmarshal(data)
		require.NoError(t, err)
		cfg := got.Config()
		assert.False(t, cfg.BiasCorrection)
		assert.Equal(t, EstimatorErtl, cfg.Estimator)
		assert.True(t, cfg.Hasher.sameAs(Murmur3))
	})

	t.Run("weighted", func(t *testing.T) {
		w := mustNewWeighted(t, WithEncoding(Dense), WithRandomSource(NewRandomSource(3)))
		for i := range int64(2000) {
			_, err := w.AddInt64(i, 4)
			require.NoError(t, err)
		}

		data, err := w.MarshalBinary()
		require.NoError(t, err)

		got, err := UnmarshalWeighted(data)
		require.NoError(t, err)
		assert.True(t, w.Equal(got))

		_, err = Unmarshal(data)
		assert.ErrorIs(t, err, ErrSketchTypeMismatch)

		plain, err := mustNew(t).MarshalBinary()
		require.NoError(t, err)
		_, err = UnmarshalWeighted(plain)
		assert.ErrorIs(t, err, ErrSketchTypeMismatch)
	})

	t.Run("custom hasher must be supplied", func(t *testing.T) {
		salted := NewHasher("salted", func(b []byte) uint64 {
			return xxhash.Sum64String("salt:" + string(b))
		})
		h := mustNew(t, WithHasher(salted))
		h.AddString("x")

		data, err := h.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, byte(hasherIDCustom), data[7])

		_, err = Unmarshal(data)
		assert.ErrorIs(t, err, ErrUnknownHasher)

		got, err := Unmarshal(data, WithHasher(salted))
		require.NoError(t, err)
		assert.True(t, h.Equal(got))
	})
}

func TestUnmarshalErrors(t *testing.T) {
	dense := mustNew(t, WithEncoding(Dense), WithPrecision(8))
	for i := range int64(300) {
		dense.AddInt64(i)
	}
	denseData, err := dense.MarshalBinary()
	require.NoError(t, err)

	sparse := mustNew(t)
	for i := range int64(100) {
		sparse.AddInt64(i)
	}
	sparseData, err := sparse.MarshalBinary()
	require.NoError(t, err)

	testCases := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrInvalidData},
		{"short header", denseData[:10], ErrInvalidData},
		{"missing dense width", denseData[:headerSize], ErrInvalidData},
		{"truncated dense registers", denseData[:len(denseData)-10], ErrInvalidData},
		{"missing sparse count", sparseData[:headerSize], ErrInvalidData},
		{"truncated sparse entries", sparseData[:len(sparseData)-20], ErrInvalidData},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal(tc.data)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("unknown hasher id", func(t *testing.T) {
		data := append([]byte(nil), denseData...)
		data[7] = 200
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrUnknownHasher)
	})
}

func TestCachedCountAfterMarshal(t *testing.T) {
	h := mustNew(t)
	h.AddString("peek")

	data, err := h.MarshalBinary()
	require.NoError(t, err)
	_, ok := CachedCount(data)
	assert.False(t, ok, "a sketch that was never counted is dirty")

	want := h.Count()
	data, err = h.MarshalBinary()
	require.NoError(t, err)
	got, ok := CachedCount(data)
	require.True(t, ok)
	assert.Equal(t, want, got)

	restored, err := Unmarshal(data)
	require.NoError(t, err)
	assert.False(t, restored.header.cacheInvalid)
	assert.Equal(t, want, restored.Count())
}

func TestRegisterAccess(t *testing.T) {
	t.Run("dense bytes replay into a fresh sketch", func(t *testing.T) {
		src := mustNew(t, WithEncoding(Dense), WithPrecision(12))
		for i := range int64(3000) {
			src.AddInt64(i)
		}

		dst := mustNew(t, WithPrecision(12))
		require.NoError(t, dst.SetDenseRegister(src.DenseRegisterBytes()))
		assert.Equal(t, Dense, dst.Encoding())
		assert.True(t, src.Equal(dst))
		assert.Equal(t, src.Count(), dst.Count())
	})

	t.Run("dense bytes of the wrong size", func(t *testing.T) {
		h := mustNew(t, WithPrecision(12))
		err := h.SetDenseRegister(make([]byte, 1<<11))
		assert.ErrorIs(t, err, ErrRegisterSizeMismatch)
		assert.Equal(t, Sparse, h.Encoding())
	})

	t.Run("sparse values replay into a fresh sketch", func(t *testing.T) {
		src := mustNew(t)
		for i := range int64(800) {
			src.AddInt64(i)
		}

		dst := mustNew(t)
		dst.SetSparseRegister(src.SparseRegisterValues())
		assert.True(t, src.Equal(dst))
		assert.Nil(t, dst.DenseRegisterBytes())
	})

	t.Run("sparse values into a dense sketch project the keys", func(t *testing.T) {
		src := mustNew(t)
		for i := range int64(800) {
			src.AddInt64(i)
		}

		dst := mustNew(t, WithEncoding(Dense))
		dst.SetSparseRegister(src.SparseRegisterValues())

		want := src.sparse.toDense(DefaultPrecision, true)
		assert.True(t, want.equal(dst.dense))
		assert.Nil(t, dst.SparseRegisterValues())
	})
}
