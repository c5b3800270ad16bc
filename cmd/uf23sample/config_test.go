package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
model: base
samples: 250
seed: 7
step_kpc: 0.05
sun_position: [-8.178, 0, 0]
directions:
  - {l: 0, b: 90}
  - {l: 120, b: 30}
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "base", cfg.Model)
	assert.Equal(t, 250, cfg.Samples)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.05, cfg.StepKpc)
	assert.Equal(t, 30.0, cfg.MaxRadiusKpc) // default kept
	assert.Equal(t, []Direction{{L: 0, B: 90}, {L: 120, B: 30}}, cfg.Directions)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
directions:
  - {l: 45, b: -10}
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "base", cfg.Model)
	assert.Equal(t, 1000, cfg.Samples)
	assert.Equal(t, 0.1, cfg.StepKpc)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no directions", "model: base\nsamples: 10\n"},
		{"bad samples", "samples: -1\ndirections: [{l: 0, b: 0}]\n"},
		{"bad step", "step_kpc: 0\ndirections: [{l: 0, b: 0}]\n"},
		{"bad sun position", "sun_position: [1, 2]\ndirections: [{l: 0, b: 0}]\n"},
		{"not yaml", "{{{"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStddev(t *testing.T) {
	assert.Zero(t, stddev(nil))
	assert.Zero(t, stddev([]float64{3}))
	assert.InDelta(t, 2, stddev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}
