// Package uf23 implements the UF23 coherent Galactic magnetic field models
// of Unger & Farrar, arXiv:2311.12120: a three-mode logarithmic spiral disk
// field plus toroidal and poloidal halo components, in eight named variants.
//
// Positions are galactocentric Cartesian coordinates in kpc, with the Galactic
// center at the origin, the x-axis pointing in the opposite direction of the
// Sun and the z-axis pointing towards Galactic North. Field values are in
// microgauss.
package uf23

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxRadius is the galactocentric cutoff radius in kpc beyond which
// the field is zero, unless overridden with MaxRadius.
const DefaultMaxRadius = 30.0

// Field evaluates one UF23 model variant.
//
// A Field is safe for concurrent evaluation; SetParameters must not be
// called concurrently with evaluations.
type Field struct {
	model Model
	maxR2 float64 // squared cutoff radius

	p [NumParams]float64 // internal units

	// derived from DiskPitch
	sinPitch, cosPitch, tanPitch float64
}

// Option configures a Field at construction time.
type Option func(*Field)

// MaxRadius sets the galactocentric radius in kpc beyond which B = 0.
func MaxRadius(rKpc float64) Option {
	return func(f *Field) { f.maxR2 = rKpc * kpc * rKpc * kpc }
}

// New returns a Field for the given model variant with its best-fit
// parameters.
func New(m Model, opts ...Option) (*Field, error) {
	if m < 0 || m >= numModels {
		return nil, fmt.Errorf("unknown field model %d", int(m))
	}
	f := &Field{
		model: m,
		maxR2: DefaultMaxRadius * kpc * DefaultMaxRadius * kpc,
		p:     bestFitParameters(m),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.derive()
	return f, nil
}

// NewFromName is New for a model selected by name, e.g. "base".
func NewFromName(name string, opts ...Option) (*Field, error) {
	m, err := ParseModel(name)
	if err != nil {
		return nil, err
	}
	return New(m, opts...)
}

// derive recomputes values that depend on the parameters.
func (f *Field) derive() {
	f.sinPitch = math.Sin(f.p[DiskPitch])
	f.cosPitch = math.Cos(f.p[DiskPitch])
	f.tanPitch = math.Tan(f.p[DiskPitch])
	if f.model == ModelExpX {
		f.p[PoloidalZ] = f.p[PoloidalA] * math.Tan(f.p[PoloidalXi])
	}
}

// Model returns the model variant.
func (f *Field) Model() Model { return f.model }

// MaxRadius returns the cutoff radius in kpc.
func (f *Field) MaxRadius() float64 { return math.Sqrt(f.maxR2) / kpc }

// At returns the coherent field in microgauss at a galactocentric position
// in kpc. Beyond the cutoff radius the field is zero.
func (f *Field) At(posInKpc Vec3) Vec3 {
	pos := posInKpc.Scale(kpc)
	if pos.SquaredLength() > f.maxR2 {
		return Vec3{}
	}
	return f.diskField(pos).Add(f.haloField(pos))
}

// atManyChunk is the number of points evaluated per batch goroutine.
const atManyChunk = 1024

// AtMany evaluates the field at every position in points. The returned
// slice is positionally aligned with points: out[i] = At(points[i]).
// Chunks are evaluated in parallel; the only error is ctx cancellation.
func (f *Field) AtMany(ctx context.Context, points []Vec3) ([]Vec3, error) {
	out := make([]Vec3, len(points))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(points); start += atManyChunk {
		start := start
		end := min(start+atManyChunk, len(points))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = f.At(points[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Parameters returns the current model parameters in natural units
// (microgauss, kpc, degree, megayear), indexed by Param.
func (f *Field) Parameters() []float64 {
	par := make([]float64, NumParams)
	for i := range par {
		par[i] = f.p[i] / unitConv[i]
	}
	return par
}

// SetParameters replaces all model parameters. Values are in natural units
// and indexed by Param; len(par) must be NumParams. On error the field is
// left unchanged.
func (f *Field) SetParameters(par []float64) error {
	if len(par) != int(NumParams) {
		return fmt.Errorf("parameter vector has length %d, want %d", len(par), NumParams)
	}
	for i := range f.p {
		f.p[i] = par[i] * unitConv[i]
	}
	f.derive()
	return nil
}

// sigmoid is the logistic transition 1 / (1 + exp(-(x-x0)/w)).
func sigmoid(x, x0, w float64) float64 {
	return 1 / (1 + math.Exp(-(x-x0)/w))
}

// deltaPhi is the angle between the unit vectors at azimuths phi0 and phi1.
func deltaPhi(phi0, phi1 float64) float64 {
	return math.Acos(math.Cos(phi1)*math.Cos(phi0) + math.Sin(phi1)*math.Sin(phi0))
}
