package uf23_test

import (
	"math"
	"testing"

	uf23 "github.com/MichaelUnger/GalacticMagneticFieldUF23"
	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	v := uf23.Vec3{X: 1, Y: 2, Z: 3}
	w := uf23.Vec3{X: -4, Y: 0.5, Z: 2}

	assert.Equal(t, uf23.Vec3{X: -3, Y: 2.5, Z: 5}, v.Add(w))
	assert.Equal(t, uf23.Vec3{X: 5, Y: 1.5, Z: 1}, v.Sub(w))
	assert.Equal(t, uf23.Vec3{X: 2, Y: 4, Z: 6}, v.Scale(2))
	assert.InDelta(t, -4+1+6, v.Dot(w), 1e-12)
	assert.InDelta(t, 14, v.SquaredLength(), 1e-12)
	assert.InDelta(t, math.Sqrt(14), v.Length(), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	x := uf23.Vec3{X: 1}
	y := uf23.Vec3{Y: 1}
	z := uf23.Vec3{Z: 1}

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))

	// antisymmetry and orthogonality
	v := uf23.Vec3{X: 1, Y: 2, Z: 3}
	w := uf23.Vec3{X: -4, Y: 0.5, Z: 2}
	c := v.Cross(w)
	assert.Equal(t, c.Scale(-1), w.Cross(v))
	assert.InDelta(t, 0, c.Dot(v), 1e-12)
	assert.InDelta(t, 0, c.Dot(w), 1e-12)
}

func TestVec3IsNaN(t *testing.T) {
	assert.False(t, uf23.Vec3{X: 1, Y: 2, Z: 3}.IsNaN())
	assert.True(t, uf23.Vec3{X: math.NaN()}.IsNaN())
	assert.True(t, uf23.Vec3{Z: math.NaN()}.IsNaN())
}
