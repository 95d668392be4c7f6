package hyperloglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := newConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, uint8(DefaultPrecision), cfg.Precision)
	assert.Equal(t, Sparse, cfg.Encoding)
	assert.True(t, cfg.BitPacking)
	assert.True(t, cfg.BiasCorrection)
	assert.Equal(t, EstimatorHLLPlusPlus, cfg.Estimator)
	assert.Equal(t, RejectionSampling, cfg.UpdateRule)
	assert.True(t, cfg.Hasher.sameAs(XXHash))
	assert.NotNil(t, cfg.Random)
	assert.NotNil(t, cfg.Logger)
}

func TestNewConfigValidation(t *testing.T) {
	testCases := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"precision below minimum", []Option{WithPrecision(3)}, ErrPrecisionOutOfRange},
		{"precision above maximum", []Option{WithPrecision(19)}, ErrPrecisionOutOfRange},
		{"unknown encoding", []Option{WithEncoding(Encoding(2))}, ErrInvalidOption},
		{"unknown estimator", []Option{WithEstimator(Estimator(9))}, ErrInvalidOption},
		{"unknown update rule", []Option{WithUpdateRule(UpdateRule(9))}, ErrInvalidOption},
		{"hasher without function", []Option{WithHasher(Hasher{Name: "none"})}, ErrUnknownHasher},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts...)
			assert.ErrorIs(t, err, tc.wantErr)

			_, err = NewWeighted(tc.opts...)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, p := range []uint8{MinPrecision, MaxPrecision} {
			h, err := New(WithPrecision(p))
			require.NoError(t, err)
			assert.Equal(t, p, h.Precision())
		}
	})
}

func TestParseEnums(t *testing.T) {
	t.Run("encoding", func(t *testing.T) {
		got, err := ParseEncoding("Dense")
		require.NoError(t, err)
		assert.Equal(t, Dense, got)
		assert.Equal(t, "DENSE", got.String())

		got, err = ParseEncoding("sparse")
		require.NoError(t, err)
		assert.Equal(t, "SPARSE", got.String())

		_, err = ParseEncoding("packed")
		assert.ErrorIs(t, err, ErrInvalidOption)
	})

	t.Run("estimator", func(t *testing.T) {
		for _, e := range []Estimator{EstimatorHLLPlusPlus, EstimatorErtl} {
			got, err := ParseEstimator(e.String())
			require.NoError(t, err)
			assert.Equal(t, e, got)
		}
		_, err := ParseEstimator("loglog")
		assert.ErrorIs(t, err, ErrInvalidOption)
	})

	t.Run("update rule", func(t *testing.T) {
		for _, r := range []UpdateRule{RejectionSampling, InverseTransform, PowerTransform} {
			got, err := ParseUpdateRule(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, got)
		}
		_, err := ParseUpdateRule("closed-form")
		assert.ErrorIs(t, err, ErrInvalidOption)
	})
}

func TestSwitchThreshold(t *testing.T) {
	assert.Equal(t, 2457, switchThreshold(1<<14, true))
	assert.Equal(t, 5461, switchThreshold(1<<14, false))
	assert.Equal(t, 2, switchThreshold(1<<4, true))
	assert.Equal(t, 5, switchThreshold(1<<4, false))
}
