package uf23

import "math"

// diskField is the disk component of the model: the local spur for the
// spur variant, the three-mode logarithmic spiral otherwise.
func (f *Field) diskField(pos Vec3) Vec3 {
	if f.model == ModelSpur {
		return f.spurField(pos.X, pos.Y, pos.Z)
	}
	return f.spiralField(pos.X, pos.Y, pos.Z)
}

// spiralField is the three-mode logarithmic spiral disk field, Sec. 5.2.2.
func (f *Field) spiralField(x, y, z float64) Vec3 {
	// reference radius
	const rRef = 5 * kpc
	// inner boundary of spiral field
	const rInner = 5 * kpc
	const wInner = 0.5 * kpc
	// outer boundary of spiral field
	const rOuter = 20 * kpc
	const wOuter = 0.5 * kpc

	// cylindrical coordinates
	r2 := x*x + y*y
	if r2 == 0 {
		return Vec3{}
	}
	r := math.Sqrt(r2)
	phi := math.Atan2(y, x)

	// Eq.(13)
	hdz := 1 - sigmoid(math.Abs(z), f.p[DiskH], f.p[DiskW])

	// Eq.(14) times rRef divided by r
	rFacI := sigmoid(r, rInner, wInner)
	rFacO := 1 - sigmoid(r, rOuter, wOuter)
	// (using lim r--> 0 (1-exp(-r^2))/r --> r - r^3/2 + ...)
	rFac := r * (1 - r2/2)
	if r > 1e-5*parsec {
		rFac = (1 - math.Exp(-r*r)) / r
	}
	gdrTimesRrefByR := rRef * rFac * rFacO * rFacI

	// Eq. (12)
	phi0 := phi - math.Log(r/rRef)/f.tanPitch

	// Eq. (10)
	b := f.p[DiskB1]*math.Cos(1*(phi0-f.p[DiskPhase1])) +
		f.p[DiskB2]*math.Cos(2*(phi0-f.p[DiskPhase2])) +
		f.p[DiskB3]*math.Cos(3*(phi0-f.p[DiskPhase3]))

	// Eq. (11)
	fac := hdz * gdrTimesRrefByR
	return cylToCart(b*fac*f.sinPitch, b*fac*f.cosPitch, 0, x/r, y/r)
}

// spurField is the local spur disk field of the spur variant, Sec. 5.2.3.
func (f *Field) spurField(x, y, z float64) Vec3 {
	// reference approximately at solar radius
	const rRef = 8.2 * kpc

	// cylindrical coordinates
	r2 := x*x + y*y
	r := math.Sqrt(r2)
	if r < math.SmallestNonzeroFloat64 {
		return Vec3{}
	}

	phi := math.Atan2(y, x)
	if phi < 0 {
		phi += 2 * math.Pi
	}

	// select the spiral arm winding closest in radius
	phiRef := f.p[DiskPhase1]
	iBest := -2
	bestDist := -1.0
	for i := -1; i <= 1; i++ {
		pphi := phi - phiRef + float64(i)*2*math.Pi
		rr := rRef * math.Exp(pphi*f.tanPitch)
		if bestDist < 0 || math.Abs(r-rr) < bestDist {
			bestDist = math.Abs(r - rr)
			iBest = i
		}
	}
	if iBest != 0 {
		return Vec3{}
	}

	phi0 := phi - math.Log(r/rRef)/f.tanPitch

	// Eq. (16)
	deltaPhi0 := deltaPhi(phiRef, phi0)
	delta := deltaPhi0 / f.p[SpurWidth]
	b := f.p[DiskB1] * math.Exp(-0.5*delta*delta)

	// Eq. (18)
	const wS = 5 * degree
	deltaPhiC := deltaPhi(f.p[SpurCenter], phi)
	gS := 1 - sigmoid(math.Abs(deltaPhiC), f.p[SpurLength], wS)

	// Eq. (13)
	hd := 1 - sigmoid(math.Abs(z), f.p[DiskH], f.p[DiskW])

	// Eq. (17)
	bS := rRef / r * b * hd * gS
	return cylToCart(bS*f.sinPitch, bS*f.cosPitch, 0, x/r, y/r)
}
