package uf23

import "math"

// haloField is the halo component of the model: the twisted X-field for the
// twistX variant, the sum of toroidal and poloidal fields otherwise.
func (f *Field) haloField(pos Vec3) Vec3 {
	if f.model == ModelTwistX {
		return f.twistedHaloField(pos.X, pos.Y, pos.Z)
	}
	return f.toroidalHaloField(pos.X, pos.Y, pos.Z).
		Add(f.poloidalHaloField(pos.X, pos.Y, pos.Z))
}

// toroidalHaloField is the azimuthal halo field, Sec. 5.3.1.
func (f *Field) toroidalHaloField(x, y, z float64) Vec3 {
	r := math.Sqrt(x*x + y*y)
	absZ := math.Abs(z)

	b0 := f.p[ToroidalBN]
	if z < 0 {
		b0 = f.p[ToroidalBS]
	}
	sigmoidR := sigmoid(r, f.p[ToroidalR], f.p[ToroidalW])
	sigmoidZ := sigmoid(absZ, f.p[DiskH], f.p[DiskW])

	// Eq. (21)
	bPhi := b0 * (1 - sigmoidR) * sigmoidZ * math.Exp(-absZ/f.p[ToroidalZ])

	cosPhi, sinPhi := 1.0, 0.0
	if r > math.SmallestNonzeroFloat64 {
		cosPhi, sinPhi = x/r, y/r
	}
	return cylToCart(0, bPhi, 0, cosPhi, sinPhi)
}

// poloidalHaloField is the X-shaped poloidal halo field, Sec. 5.3.2.
func (f *Field) poloidalHaloField(x, y, z float64) Vec3 {
	r := math.Sqrt(x*x + y*y)

	pp := f.p[PoloidalP]
	c := math.Pow(f.p[PoloidalA]/f.p[PoloidalZ], pp)
	a0p := math.Pow(f.p[PoloidalA], pp)
	rp := math.Pow(r, pp)
	cabszp := c * math.Pow(math.Abs(z), pp)

	// sqrt(a²+b) - a is numerically unstable for b << a, so use
	// (sqrt(a²+b) - a) (sqrt(a²+b) + a)/(sqrt(a²+b) + a) = b/(sqrt(a²+b) + a)
	t0 := a0p + cabszp - rp
	t1 := math.Sqrt(t0*t0 + 4*a0p*rp)
	ap := 2 * a0p * rp / (t1 + t0)

	// ap < 0 only in the r --> 0 limit from rounding
	a := 0.0
	if ap > 0 {
		a = math.Pow(ap, 1/pp)
	}

	// Eq.(29) and Eq.(32)
	radialDependence := 1 - sigmoid(a, f.p[PoloidalR], f.p[PoloidalW])
	if f.model == ModelExpX {
		radialDependence = math.Exp(-a / f.p[PoloidalR])
	}

	// Eq.(28)
	bzz := f.p[PoloidalB] * radialDependence

	// (r/a)
	rOverA := 1 / math.Pow(2*a0p/(t1+t0), 1/pp)

	// Eq.(35) for p=n
	signZ := 1.0
	if z < 0 {
		signZ = -1
	}
	br := bzz * c * a / rOverA * signZ * math.Pow(math.Abs(z), pp-1) / t1

	// Eq.(36) for p=n
	bz := bzz * math.Pow(rOverA, pp-2) * (ap + a0p) / t1

	if r < math.SmallestNonzeroFloat64 {
		return Vec3{0, 0, bz}
	}
	return cylToCart(br, 0, bz, x/r, y/r)
}

// twistedHaloField is the twisted X-field of the twistX variant, Sec. 5.3.3:
// the poloidal field sheared by the differential rotation of the disk.
func (f *Field) twistedHaloField(x, y, z float64) Vec3 {
	r := math.Sqrt(x*x + y*y)
	cosPhi, sinPhi := 1.0, 0.0
	if r > math.SmallestNonzeroFloat64 {
		cosPhi, sinPhi = x/r, y/r
	}

	bXCyl := cartToCyl(f.poloidalHaloField(x, y, z), cosPhi, sinPhi)
	bR := bXCyl.X
	bZ := bXCyl.Z

	bPhi := 0.0
	if f.p[TwistingTime] != 0 && r != 0 {
		// radial rotation curve parameters (fit to Reid et al 2014)
		const v0 = -240 * kilometer / second
		const r0 = 1.6 * kpc
		// vertical gradient (Levine+08)
		const z0 = 10 * kpc

		// Eq.(43)
		fr := 1 - math.Exp(-r/r0)
		// Eq.(44); the exp below overflows for arg beyond ~709
		arg := 2 * math.Abs(z) / z0
		if arg < math.Log(math.MaxFloat64) {
			t0 := math.Exp(arg)
			gz := 2 / (1 + t0)

			signZ := 1.0
			if z < 0 {
				signZ = -1
			}
			// Eq. (46)
			deltaZ := -signZ * v0 * fr / z0 * t0 * gz * gz
			// Eq. (47)
			deltaR := v0 * ((1-fr)/r0 - fr/r) * gz

			// Eq.(45)
			bPhi = (bZ*deltaZ + bR*deltaR) * f.p[TwistingTime]
		}
	}
	return cylToCart(bR, bPhi, bZ, cosPhi, sinPhi)
}
