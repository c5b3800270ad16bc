package uf23

// LOSIntegral integrates the field along a line of sight, stepping from
// start (kpc) along the unit direction dir in steps of dL (kpc) until the
// position leaves the field's cutoff radius.
//
// It returns the integrals of the parallel field component B·dir and of the
// squared perpendicular component, in microgauss·kpc and microgauss²·kpc.
func LOSIntegral(f *Field, start, dir Vec3, dL float64) (parallel, perp2 float64) {
	rMax2 := f.maxR2 / (kpc * kpc)
	pos := start
	l := 0.0
	for pos.SquaredLength() < rMax2 {
		b := f.At(pos)
		bParallel := b.Dot(dir)
		bProj := dir.Cross(b.Cross(dir))
		parallel += bParallel
		perp2 += bProj.SquaredLength()
		l += dL
		pos = start.Add(dir.Scale(l))
	}
	return parallel * dL, perp2 * dL
}
