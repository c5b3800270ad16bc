package uf23

import "math"

// SunPosition is the galactocentric position of the Sun in kpc
// (GRAVITY collaboration 2019 distance).
var SunPosition = Vec3{X: -8.178}

// GalacticDirection returns the unit vector pointing towards galactic
// longitude l and latitude b, both in degrees.
func GalacticDirection(lonDeg, latDeg float64) Vec3 {
	lon := lonDeg * degree
	lat := latDeg * degree
	rxy := math.Cos(lat)
	return Vec3{
		X: math.Cos(lon) * rxy,
		Y: math.Sin(lon) * rxy,
		Z: math.Sin(lat),
	}
}
