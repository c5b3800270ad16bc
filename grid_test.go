package uf23_test

import (
	"context"
	"testing"

	uf23 "github.com/MichaelUnger/GalacticMagneticFieldUF23"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid() uf23.Grid {
	return uf23.Grid{
		Nx: 11, Ny: 11, Nz: 5,
		X0: -10, Y0: -10, Z0: -1,
		Dx: 2, Dy: 2, Dz: 0.5,
	}
}

func TestGridIndexPos(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 11*11*5, g.Len())
	assert.Equal(t, 0, g.Index(0, 0, 0))
	assert.Equal(t, g.Len()-1, g.Index(g.Nx-1, g.Ny-1, g.Nz-1))

	p := g.Pos(0, 0, 0)
	assert.Equal(t, uf23.Vec3{X: -10, Y: -10, Z: -1}, p)
	p = g.Pos(5, 5, 2)
	assert.Equal(t, uf23.Vec3{X: 0, Y: 0, Z: 0}, p)
}

func TestGridNearest(t *testing.T) {
	g := testGrid()
	i, j, k, ok := g.Nearest(uf23.Vec3{X: 0.4, Y: -0.7, Z: 0.2})
	require.True(t, ok)
	assert.Equal(t, [3]int{5, 5, 2}, [3]int{i, j, k}) // rounds to nearest node

	_, _, _, ok = g.Nearest(uf23.Vec3{X: 50})
	assert.False(t, ok)
	_, _, _, ok = g.Nearest(uf23.Vec3{Z: -5})
	assert.False(t, ok)
}

func TestEvaluateGridMatchesAt(t *testing.T) {
	f := newField(t, "base")
	g := testGrid()

	m, err := f.EvaluateGrid(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, m.Bx, g.Len())
	require.Len(t, m.By, g.Len())
	require.Len(t, m.Bz, g.Len())

	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				want := f.At(g.Pos(i, j, k))
				idx := g.Index(i, j, k)
				got := uf23.Vec3{X: m.Bx[idx], Y: m.By[idx], Z: m.Bz[idx]}
				assert.Equal(t, want, got, "node (%d,%d,%d)", i, j, k)
			}
		}
	}
}

func TestEvaluateGridInvalid(t *testing.T) {
	f := newField(t, "base")
	_, err := f.EvaluateGrid(context.Background(), uf23.Grid{})
	assert.Error(t, err)
	_, err = f.EvaluateGrid(context.Background(), uf23.Grid{Nx: 2, Ny: 2, Nz: 2, Dx: 1, Dy: -1, Dz: 1})
	assert.Error(t, err)
}

func TestEvaluateGridCancelled(t *testing.T) {
	f := newField(t, "base")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.EvaluateGrid(ctx, testGrid())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapLookup(t *testing.T) {
	f := newField(t, "base")
	g := testGrid()
	m, err := f.EvaluateGrid(context.Background(), g)
	require.NoError(t, err)

	// on a node: exact value
	node := g.Pos(3, 7, 1)
	assert.Equal(t, f.At(node), m.Lookup(node))

	// near a node: nearest neighbour
	assert.Equal(t, f.At(node), m.Lookup(node.Add(uf23.Vec3{X: 0.4, Y: -0.4, Z: 0.1})))

	// outside the grid: NaN vector
	assert.True(t, m.Lookup(uf23.Vec3{X: 100}).IsNaN())
}
