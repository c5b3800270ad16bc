package uf23

import "math"

// Vec3 is a 3-component Cartesian vector. Positions carry galactocentric
// coordinates in kpc, field values carry components in microgauss.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the vector product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// SquaredLength returns |v|².
func (v Vec3) SquaredLength() float64 { return v.Dot(v) }

// Length returns |v|.
func (v Vec3) Length() float64 { return math.Sqrt(v.SquaredLength()) }

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// cylToCart rotates a vector with cylindrical components (ρ, φ, z) taken at
// azimuth (cosPhi, sinPhi) into Cartesian components.
func cylToCart(rho, phi, z, cosPhi, sinPhi float64) Vec3 {
	return Vec3{
		rho*cosPhi - phi*sinPhi,
		rho*sinPhi + phi*cosPhi,
		z,
	}
}

// cartToCyl is the inverse rotation of cylToCart.
func cartToCyl(v Vec3, cosPhi, sinPhi float64) Vec3 {
	return Vec3{
		v.X*cosPhi + v.Y*sinPhi,
		-v.X*sinPhi + v.Y*cosPhi,
		v.Z,
	}
}
