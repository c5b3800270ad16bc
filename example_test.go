package uf23_test

import (
	"context"
	"fmt"
	"log"

	uf23 "github.com/MichaelUnger/GalacticMagneticFieldUF23"
)

// Example reproduces the canonical usage: construct a named model variant,
// query the field at a single position, then at many positions in one call.
func Example() {
	gmf, err := uf23.NewFromName("base")
	if err != nil {
		log.Fatal(err)
	}

	// field at one position ...
	b := gmf.At(uf23.Vec3{X: 1, Y: 3, Z: 2})
	fmt.Printf("field at (1,3,2) is (%.4f, %.4f, %.4f) microgauss\n", b.X, b.Y, b.Z)

	// ... or at many
	points := []uf23.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 3, Z: 2},
		{X: -8.2, Y: 0, Z: 0},
	}
	fields, err := gmf.AtMany(context.Background(), points)
	if err != nil {
		log.Fatal(err)
	}
	for i, p := range points {
		fmt.Printf("field at (%g,%g,%g) is (%.4f, %.4f, %.4f)\n",
			p.X, p.Y, p.Z, fields[i].X, fields[i].Y, fields[i].Z)
	}
}
