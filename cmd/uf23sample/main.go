// Command uf23sample propagates UF23 parameter uncertainties to
// line-of-sight integrals of the Galactic magnetic field.
//
// Usage:
//
//	uf23sample [flags] <model> <l> <b>
//	uf23sample -config campaign.yaml
//
// l and b are the galactic longitude and latitude of the line of sight in
// degrees. For every direction the command integrates B_parallel and
// B_perp^2 from the Sun outwards, first with the nominal best-fit
// parameters and then over N random parameter draws from the fit
// covariance, and prints the resulting standard deviations.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	uf23 "github.com/MichaelUnger/GalacticMagneticFieldUF23"
)

// result holds the integrals for one direction.
type result struct {
	Direction       Direction `json:"direction_deg"`
	Parallel        float64   `json:"int_b_parallel"`
	Perp2           float64   `json:"int_b_perp2"`
	ParallelStdDev  float64   `json:"int_b_parallel_stddev"`
	Perp2StdDev     float64   `json:"int_b_perp2_stddev"`
	Samples         int       `json:"samples"`
	parallelSamples []float64
	perp2Samples    []float64
}

func main() {
	samples := flag.Int("n", 1000, "Number of random parameter draws")
	seed := flag.Int64("seed", 123, "Random seed")
	step := flag.Float64("dl", 0.1, "Integration step in kpc")
	configFile := flag.String("config", "", "YAML campaign config (overrides positional arguments)")
	asJSON := flag.Bool("json", false, "Output results as JSON")
	flag.Usage = usage
	flag.Parse()

	var cfg *Config
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			fatalf("%v", err)
		}
	} else {
		if flag.NArg() != 3 {
			usage()
			os.Exit(2)
		}
		lon, err1 := strconv.ParseFloat(flag.Arg(1), 64)
		lat, err2 := strconv.ParseFloat(flag.Arg(2), 64)
		if err1 != nil || err2 != nil {
			usage()
			os.Exit(2)
		}
		cfg = defaultConfig()
		cfg.Model = flag.Arg(0)
		cfg.Samples = *samples
		cfg.Seed = *seed
		cfg.StepKpc = *step
		cfg.Directions = []Direction{{L: lon, B: lat}}
	}

	field, err := uf23.NewFromName(cfg.Model, uf23.MaxRadius(cfg.MaxRadiusKpc))
	if err != nil {
		fatalf("%v", err)
	}
	sampler, err := uf23.NewSampler(field, cfg.Seed)
	if err != nil {
		fatalf("%v", err)
	}

	sunPos := uf23.SunPosition
	if len(cfg.SunPosition) == 3 {
		sunPos = uf23.Vec3{X: cfg.SunPosition[0], Y: cfg.SunPosition[1], Z: cfg.SunPosition[2]}
	}

	results := make([]result, len(cfg.Directions))
	for i, d := range cfg.Directions {
		results[i] = result{Direction: d, Samples: cfg.Samples}
		dir := uf23.GalacticDirection(d.L, d.B)

		// nominal parameters first
		if err := sampler.Reset(); err != nil {
			fatalf("%v", err)
		}
		results[i].Parallel, results[i].Perp2 = uf23.LOSIntegral(field, sunPos, dir, cfg.StepKpc)
	}

	// one pass of random draws, integrating every direction per draw
	for n := 0; n < cfg.Samples; n++ {
		if err := sampler.Draw(); err != nil {
			fatalf("drawing parameters: %v", err)
		}
		for i, d := range cfg.Directions {
			dir := uf23.GalacticDirection(d.L, d.B)
			par, perp2 := uf23.LOSIntegral(field, sunPos, dir, cfg.StepKpc)
			results[i].parallelSamples = append(results[i].parallelSamples, par)
			results[i].perp2Samples = append(results[i].perp2Samples, perp2)
		}
		if (n+1)%100 == 0 {
			fmt.Fprintf(os.Stderr, "%d/%d draws\n", n+1, cfg.Samples)
		}
	}
	if err := sampler.Reset(); err != nil {
		fatalf("%v", err)
	}

	for i := range results {
		results[i].ParallelStdDev = stddev(results[i].parallelSamples)
		results[i].Perp2StdDev = stddev(results[i].perp2Samples)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Model   string   `json:"model"`
			Results []result `json:"results"`
		}{Model: field.Model().String(), Results: results}); err != nil {
			fatalf("json encode: %v", err)
		}
		return
	}

	printTable(field.Model().String(), results)
}

// stddev is the population standard deviation of xs.
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum, sum2 float64
	for _, x := range xs {
		sum += x
		sum2 += x * x
	}
	n := float64(len(xs))
	mu := sum / n
	v := sum2/n - mu*mu
	if v < 0 {
		v = 0 // rounding
	}
	return math.Sqrt(v)
}

func printTable(model string, results []result) {
	const firstColWidth = 24
	const colWidth = 22
	hrule := strings.Repeat("-", firstColWidth) + "+" +
		strings.Repeat("-", colWidth) + "+" + strings.Repeat("-", colWidth) + "+"

	fmt.Printf("model: %s\n", model)
	for _, r := range results {
		fmt.Printf("line of sight: (l, b) = (%g, %g) degree\n", r.Direction.L, r.Direction.B)
		fmt.Printf("%*s%*s%*s\n", firstColWidth, "",
			colWidth, "int B_parallel dl", colWidth, "int B_perp^2 dl")
		fmt.Printf("%*s%*s%*s\n", firstColWidth, "",
			colWidth, "(microgauss kpc)", colWidth, "(microgauss^2 kpc)")
		fmt.Println(hrule)
		fmt.Printf("%-*s|%*.4e|%*.4e|\n", firstColWidth, " nominal parameters",
			colWidth, r.Parallel, colWidth, r.Perp2)
		fmt.Printf("%-*s|%*.4e|%*.4e|\n", firstColWidth, " standard deviation",
			colWidth, r.ParallelStdDev, colWidth, r.Perp2StdDev)
		fmt.Println(hrule)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `uf23sample: propagate UF23 parameter uncertainties to line-of-sight integrals

Usage:
  uf23sample [flags] <model> <l> <b>
  uf23sample -config campaign.yaml

Line-of-sight direction: galactic longitude l and latitude b in degrees.
Note: only the base model ships with a parameter covariance table.

Flags:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  uf23sample base 0 90
  uf23sample -n 500 -seed 42 base 120 30
  uf23sample -config campaign.yaml -json`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
