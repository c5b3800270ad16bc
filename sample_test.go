package uf23_test

import (
	"testing"

	uf23 "github.com/MichaelUnger/GalacticMagneticFieldUF23"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertParamsEqual compares parameter vectors allowing for the ulp-level
// rounding of the natural-unit conversion in Parameters/SetParameters.
func assertParamsEqual(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if want[i] == 0 {
			assert.Zero(t, got[i], "parameter %s", uf23.Param(i))
			continue
		}
		assert.InEpsilon(t, want[i], got[i], 1e-12, "parameter %s", uf23.Param(i))
	}
}

func TestNewSamplerRequiresCovariance(t *testing.T) {
	f := newField(t, "twistX")
	_, err := uf23.NewSampler(f, 1)
	assert.Error(t, err)
}

func TestSamplerDrawPerturbs(t *testing.T) {
	f := newField(t, "base")
	nominal := f.Parameters()

	s, err := uf23.NewSampler(f, 123)
	require.NoError(t, err)

	require.NoError(t, s.Draw())
	drawn := f.Parameters()
	assert.NotEqual(t, nominal, drawn)

	// only parameters covered by the covariance move
	covered := make(map[uf23.Param]bool)
	for _, p := range s.Covariance().Indices() {
		covered[p] = true
	}
	for i := range nominal {
		if covered[uf23.Param(i)] {
			continue
		}
		if nominal[i] == 0 {
			assert.Zero(t, drawn[i], "uncovered parameter %s", uf23.Param(i))
		} else {
			assert.InEpsilon(t, nominal[i], drawn[i], 1e-12, "uncovered parameter %s", uf23.Param(i))
		}
	}
}

func TestSamplerReset(t *testing.T) {
	f := newField(t, "base")
	nominal := f.Parameters()

	s, err := uf23.NewSampler(f, 7)
	require.NoError(t, err)

	require.NoError(t, s.Draw())
	require.NoError(t, s.Reset())
	assertParamsEqual(t, nominal, f.Parameters())
}

func TestSamplerDeterministic(t *testing.T) {
	f1 := newField(t, "base")
	f2 := newField(t, "base")
	s1, err := uf23.NewSampler(f1, 42)
	require.NoError(t, err)
	s2, err := uf23.NewSampler(f2, 42)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s1.Draw())
		require.NoError(t, s2.Draw())
		assert.Equal(t, f1.Parameters(), f2.Parameters(), "draw %d", i)
	}
}

func TestSamplerSeedsDiffer(t *testing.T) {
	f1 := newField(t, "base")
	f2 := newField(t, "base")
	s1, err := uf23.NewSampler(f1, 1)
	require.NoError(t, err)
	s2, err := uf23.NewSampler(f2, 2)
	require.NoError(t, err)

	require.NoError(t, s1.Draw())
	require.NoError(t, s2.Draw())
	assert.NotEqual(t, f1.Parameters(), f2.Parameters())
}
