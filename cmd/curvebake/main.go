// Command curvebake builds a curve from control points, bakes it and prints
// exact and baked samples side by side.
//
// Usage:
//
//	curvebake -point 0,0 -point 0.5,0.8 -point 1,1
//	curvebake -config curve.yaml -samples 21 -linear -point 0,0 -point 1,1
//	curvebake -point 0,0,0,2 -point 1,1,0.5,0     # x,y,left tangent,right tangent
//
// The -linear flag switches all tangents to linear mode.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/npillmayer/curvature/curve"
	"github.com/npillmayer/curvature/curveconf"
)

const (
	defaultSamples = 11
	bakeTimeout    = 10 * time.Second
)

func main() {
	var points pointList
	flag.Var(&points, "point", "control point x,y[,left,right]; may be repeated")
	configPath := flag.String("config", "", "YAML curve configuration")
	samples := flag.Int("samples", defaultSamples, "number of evenly spaced offsets to print")
	linear := flag.Bool("linear", false, "use linear tangents everywhere")
	flag.Parse()

	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "curvebake: no control points given")
		flag.Usage()
		os.Exit(2)
	}
	if *samples < 2 {
		log.Fatalf("samples must be at least 2, is %d", *samples)
	}
	conf := curveconf.Default()
	if *configPath != "" {
		var err error
		if conf, err = curveconf.Load(*configPath); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	conf.ApplyTracing()

	c := curve.New(conf.Options()...)
	defer c.Close()
	if err := build(c, points, *linear); err != nil {
		log.Fatalf("Failed to build curve: %v", err)
	}
	if removed := c.CleanDuplicates(); removed > 0 {
		log.Printf("removed %d duplicate points", removed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bakeTimeout)
	defer cancel()
	start := time.Now()
	if err := c.Wait(ctx); err != nil {
		log.Fatalf("Bake did not finish: %v", err)
	}
	fmt.Printf("%s\n\n", curve.AsString(c))
	fmt.Printf("baked %d samples in %v (debounce %v)\n\n", c.BakeResolution(),
		time.Since(start).Round(time.Microsecond), conf.Debounce)
	if err := printTable(os.Stdout, c, *samples); err != nil {
		log.Fatalf("Failed to write table: %v", err)
	}
}

func build(c *curve.Curve, points pointList, linear bool) error {
	mode := curve.TangentFree
	if linear {
		mode = curve.TangentLinear
	}
	for _, p := range points {
		p.LeftMode, p.RightMode = mode, mode
		if _, err := c.InsertPoint(p); err != nil {
			return err
		}
	}
	return nil
}

func printTable(w io.Writer, c *curve.Curve, samples int) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "offset\texact\tbaked\tdiff\t")
	for i := 0; i < samples; i++ {
		x := float64(i) / float64(samples-1)
		exact, baked := c.Sample(x), c.SampleBaked(x)
		fmt.Fprintf(tw, "%.4f\t%.6f\t%.6f\t%+.2e\t\n", x, exact, baked, baked-exact)
	}
	return tw.Flush()
}
