// Command uf23 evaluates the UF23 coherent Galactic magnetic field.
//
// Usage:
//
//	uf23 [flags] <model> <x> <y> <z>
//	uf23 -points FILE <model>
//	uf23 -list
//
// Examples:
//
//	uf23 base 1 3 2
//	uf23 -json twistX -8.178 0 0
//	uf23 -maxr 25 base 1 3 2
//	uf23 -points positions.txt base
//	uf23 -list
//
// Coordinates are galactocentric in kpc (Earth at negative x, North at
// positive z); the field components are printed in microgauss.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	uf23 "github.com/MichaelUnger/GalacticMagneticFieldUF23"
)

// jsonPoint is one evaluated position in JSON output.
type jsonPoint struct {
	Position [3]float64 `json:"position_kpc"`
	Field    [3]float64 `json:"field_microgauss"`
}

// jsonOutput is the top-level JSON response.
type jsonOutput struct {
	Model  string      `json:"model"`
	Points []jsonPoint `json:"points"`
}

func main() {
	listModels := flag.Bool("list", false, "Print the available model names and exit")
	asJSON := flag.Bool("json", false, "Output results as JSON")
	pointsFile := flag.String("points", "", "Read positions (x y z per line, kpc) from FILE and batch-evaluate")
	maxR := flag.Float64("maxr", uf23.DefaultMaxRadius, "Cutoff radius in kpc beyond which B = 0")
	flag.Usage = usage
	flag.Parse()

	if *listModels {
		fmt.Println("Available UF23 model variants (see arXiv:2311.12120, Tab. 2):")
		for _, name := range uf23.Models() {
			fmt.Printf("  %s\n", name)
		}
		os.Exit(0)
	}

	wantArgs := 4
	if *pointsFile != "" {
		wantArgs = 1
	}
	if flag.NArg() != wantArgs {
		usage()
		os.Exit(2)
	}

	field, err := uf23.NewFromName(flag.Arg(0), uf23.MaxRadius(*maxR))
	if err != nil {
		fatalf("%v", err)
	}

	var points []uf23.Vec3
	if *pointsFile != "" {
		points, err = readPoints(*pointsFile)
		if err != nil {
			fatalf("%v", err)
		}
	} else {
		p, err := parsePoint(flag.Arg(1), flag.Arg(2), flag.Arg(3))
		if err != nil {
			usage()
			os.Exit(2)
		}
		points = []uf23.Vec3{p}
	}

	values, err := field.AtMany(context.Background(), points)
	if err != nil {
		fatalf("evaluating field: %v", err)
	}

	if *asJSON {
		out := jsonOutput{Model: field.Model().String()}
		for i, p := range points {
			out.Points = append(out.Points, jsonPoint{
				Position: [3]float64{p.X, p.Y, p.Z},
				Field:    [3]float64{values[i].X, values[i].Y, values[i].Z},
			})
		}
		emitJSON(out)
		return
	}

	for i, p := range points {
		fmt.Printf("(x,y,z)    = (%.4e, %.4e, %.4e) kpc\n", p.X, p.Y, p.Z)
		fmt.Printf("(bx,by,bz) = (%.4e, %.4e, %.4e) microgauss\n",
			values[i].X, values[i].Y, values[i].Z)
	}
}

// parsePoint parses three coordinate strings into a position.
func parsePoint(xs, ys, zs string) (uf23.Vec3, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return uf23.Vec3{}, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return uf23.Vec3{}, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	z, err := strconv.ParseFloat(zs, 64)
	if err != nil {
		return uf23.Vec3{}, fmt.Errorf("invalid z %q: %w", zs, err)
	}
	return uf23.Vec3{X: x, Y: y, Z: z}, nil
}

// readPoints reads whitespace-separated x y z rows, one position per line.
// Blank lines and lines starting with '#' are skipped.
func readPoints(path string) ([]uf23.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open points file: %w", err)
	}
	defer f.Close()

	var points []uf23.Vec3
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) != 3 {
			return nil, fmt.Errorf("%s:%d: want 3 columns, got %d", path, lineNo, len(cols))
		}
		p, err := parsePoint(cols[0], cols[1], cols[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read points file: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%s: no positions found", path)
	}
	return points, nil
}

// emitJSON writes out to stdout as indented JSON.
func emitJSON(out jsonOutput) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("json encode: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `uf23: evaluate the UF23 coherent Galactic magnetic field

Usage:
  uf23 [flags] <model> <x> <y> <z>
  uf23 -points FILE <model>
  uf23 -list

Galactocentric coordinates x/y/z in kpc (Earth at negative x, North at
positive z). Prints the field components in microgauss.

Flags:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  uf23 base 1 3 2
  uf23 -json twistX -8.178 0 0
  uf23 -points positions.txt base
  uf23 -list`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
