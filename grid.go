package uf23

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Grid is a regular 3D grid of galactocentric positions.
type Grid struct {
	Nx, Ny, Nz int     // node counts per axis
	X0, Y0, Z0 float64 // position of node (0,0,0), kpc
	Dx, Dy, Dz float64 // node spacing, kpc
}

// Len returns the number of grid nodes.
func (g Grid) Len() int { return g.Nx * g.Ny * g.Nz }

// Index returns the flat row-major index of node (i,j,k): k varies fastest.
func (g Grid) Index(i, j, k int) int { return (i*g.Ny+j)*g.Nz + k }

// Pos returns the position of node (i,j,k).
func (g Grid) Pos(i, j, k int) Vec3 {
	return Vec3{
		X: g.X0 + float64(i)*g.Dx,
		Y: g.Y0 + float64(j)*g.Dy,
		Z: g.Z0 + float64(k)*g.Dz,
	}
}

// Nearest maps a position to the nearest node indices.
// ok is false if the position falls outside the grid.
func (g Grid) Nearest(p Vec3) (i, j, k int, ok bool) {
	i = int(math.Round((p.X - g.X0) / g.Dx))
	j = int(math.Round((p.Y - g.Y0) / g.Dy))
	k = int(math.Round((p.Z - g.Z0) / g.Dz))
	ok = i >= 0 && i < g.Nx && j >= 0 && j < g.Ny && k >= 0 && k < g.Nz
	return
}

func (g Grid) validate() error {
	if g.Nx <= 0 || g.Ny <= 0 || g.Nz <= 0 {
		return fmt.Errorf("grid node counts must be positive (got %dx%dx%d)", g.Nx, g.Ny, g.Nz)
	}
	if g.Dx <= 0 || g.Dy <= 0 || g.Dz <= 0 {
		return fmt.Errorf("grid spacing must be positive (got %g, %g, %g)", g.Dx, g.Dy, g.Dz)
	}
	return nil
}

// Map is an evaluated field over a Grid: flat row-major component arrays,
// Bx[grid.Index(i,j,k)] etc.
type Map struct {
	Grid Grid
	Bx   []float64
	By   []float64
	Bz   []float64
}

// EvaluateGrid fills a Map with the field at every grid node. Slabs of
// constant i are evaluated in parallel; the only error beyond grid
// validation is ctx cancellation.
func (f *Field) EvaluateGrid(ctx context.Context, grid Grid) (*Map, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}
	m := &Map{
		Grid: grid,
		Bx:   make([]float64, grid.Len()),
		By:   make([]float64, grid.Len()),
		Bz:   make([]float64, grid.Len()),
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < grid.Nx; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j := 0; j < grid.Ny; j++ {
				for k := 0; k < grid.Nz; k++ {
					b := f.At(grid.Pos(i, j, k))
					idx := grid.Index(i, j, k)
					m.Bx[idx] = b.X
					m.By[idx] = b.Y
					m.Bz[idx] = b.Z
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// Lookup returns the nearest-neighbour field value at pos.
// Returns a NaN vector if pos falls outside the grid.
func (m *Map) Lookup(pos Vec3) Vec3 {
	i, j, k, ok := m.Grid.Nearest(pos)
	if !ok {
		nan := math.NaN()
		return Vec3{nan, nan, nan}
	}
	idx := m.Grid.Index(i, j, k)
	return Vec3{m.Bx[idx], m.By[idx], m.Bz[idx]}
}
