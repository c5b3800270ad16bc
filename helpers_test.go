package uf23

// Internal tests for the cylindrical basis rotation and transition helpers.

import (
	"math"
	"testing"
)

func TestCylCartRoundtrip(t *testing.T) {
	angles := []float64{0, 0.3, math.Pi / 2, 2, math.Pi, 4.5}
	for _, phi := range angles {
		cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
		v := Vec3{X: 1.25, Y: -0.75, Z: 2.5}
		got := cartToCyl(cylToCart(v.X, v.Y, v.Z, cosPhi, sinPhi), cosPhi, sinPhi)
		if math.Abs(got.X-v.X) > 1e-12 || math.Abs(got.Y-v.Y) > 1e-12 || got.Z != v.Z {
			t.Errorf("phi=%.2f: roundtrip = %+v, want %+v", phi, got, v)
		}
	}
}

func TestCylToCartAxes(t *testing.T) {
	// a purely radial unit vector at azimuth phi points along (cos phi, sin phi)
	got := cylToCart(1, 0, 0, 0, 1) // phi = pi/2
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("radial at phi=pi/2 = %+v, want (0,1,0)", got)
	}
	// a purely azimuthal unit vector at phi = 0 points along y
	got = cylToCart(0, 1, 0, 1, 0)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("azimuthal at phi=0 = %+v, want (0,1,0)", got)
	}
}

func TestSigmoid(t *testing.T) {
	tests := []struct {
		x, x0, w float64
		want     float64
		tol      float64
	}{
		{0, 0, 1, 0.5, 1e-12},     // midpoint
		{100, 0, 1, 1, 1e-9},      // far above
		{-100, 0, 1, 0, 1e-9},     // far below
		{5, 5, 0.1, 0.5, 1e-12},   // shifted midpoint
		{5.1, 5, 0.1, 0.731, 1e-3}, // one width above
	}
	for _, tc := range tests {
		got := sigmoid(tc.x, tc.x0, tc.w)
		if math.Abs(got-tc.want) > tc.tol {
			t.Errorf("sigmoid(%g, %g, %g) = %.6f, want %.6f", tc.x, tc.x0, tc.w, got, tc.want)
		}
	}
}

func TestDeltaPhi(t *testing.T) {
	tests := []struct {
		phi0, phi1 float64
		want       float64
	}{
		{0, 0, 0},
		{0, math.Pi / 2, math.Pi / 2},
		{0, math.Pi, math.Pi},
		{0.1, 2*math.Pi + 0.1, 0},    // wraps
		{-math.Pi / 4, math.Pi / 4, math.Pi / 2},
	}
	for _, tc := range tests {
		got := deltaPhi(tc.phi0, tc.phi1)
		if math.Abs(got-tc.want) > 1e-7 {
			t.Errorf("deltaPhi(%g, %g) = %.6f, want %.6f", tc.phi0, tc.phi1, got, tc.want)
		}
	}
}
