package uf23

import "math/rand"

// Sampler draws random variations of a field's parameters distributed
// according to the fit covariance. Draws are deterministic per seed.
type Sampler struct {
	field   *Field
	cov     *Covariance
	nominal []float64
	rng     *rand.Rand
}

// NewSampler returns a Sampler around f. The field's current parameters
// become the nominal values that Draw perturbs and Reset restores.
// Fails if f's model has no covariance table.
func NewSampler(f *Field, seed int64) (*Sampler, error) {
	cov, err := NewCovariance(f.Model())
	if err != nil {
		return nil, err
	}
	return &Sampler{
		field:   f,
		cov:     cov,
		nominal: f.Parameters(),
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Covariance returns the covariance the sampler draws from.
func (s *Sampler) Covariance() *Covariance { return s.cov }

// Draw sets the field's parameters to the nominal values plus a random
// covariance-distributed offset.
func (s *Sampler) Draw() error {
	normal := make([]float64, s.cov.Dim())
	for i := range normal {
		normal[i] = s.rng.NormFloat64()
	}
	delta, err := s.cov.RandomDelta(normal)
	if err != nil {
		return err
	}
	par := append([]float64(nil), s.nominal...)
	for j, d := range delta {
		par[s.cov.indices[j]] += d
	}
	return s.field.SetParameters(par)
}

// Reset restores the field's nominal parameters.
func (s *Sampler) Reset() error {
	return s.field.SetParameters(s.nominal)
}
