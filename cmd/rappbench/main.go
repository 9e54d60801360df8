// Command rappbench measures per-operation throughput of the rapp
// library and emits a JSON benchmark data file, the Go-native
// counterpart of rapp_benchmark.c's RAPP_BMARK_OUTFILE.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/natefinch/lumberjack.v2"

	rapp "github.com/rapp-go/rapp"
)

type opResult struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	PixelsPerSecond float64 `json:"pixels_per_second"`
}

type bmarkFile struct {
	Build   string     `json:"build"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Results []opResult `json:"results"`
}

func main() {
	width := flag.Int("w", 256, "image width in pixels")
	height := flag.Int("h", 256, "image height in pixels")
	millis := flag.Int("m", 200, "milliseconds of repeated calls to time per operation")
	build := flag.String("build", "", "build identifier; defaults to a generated run id")
	logPath := flag.String("log", "", "path to a rotating log file; progress goes to stderr if unset")
	outPath := flag.String("o", "rappbench.json", "output JSON path")
	flag.Parse()

	if *build == "" {
		*build = uuid.NewString()
	}

	if *logPath != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	}

	if err := run(*width, *height, *millis, *build, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width, height, millis int, build, outPath string) error {
	if width <= 0 || height <= 0 || millis <= 0 {
		return errors.New("width, height and milliseconds must be positive")
	}
	if err := rapp.Initialize(); err != nil {
		return errors.Wrap(err, "initialize")
	}
	defer rapp.Terminate()

	log.Printf("rappbench: build=%s %dx%d, %dms per operation", build, width, height, millis)

	a := rapp.U8Image{Data: make([]byte, width*height), Dim: width, Width: width, Height: height}
	b := rapp.U8Image{Data: make([]byte, width*height), Dim: width, Width: width, Height: height}
	dst := rapp.U8Image{Data: make([]byte, width*height), Dim: width, Width: width, Height: height}
	for i := range a.Data {
		a.Data[i] = byte(i)
		b.Data[i] = byte(i * 3)
	}

	ops := []struct {
		name, desc string
		call       func() error
	}{
		{"add_u8", "saturating pixelwise add", func() error { return rapp.AddU8(dst, a, b, width, height) }},
		{"sub_u8", "saturating pixelwise subtract", func() error { return rapp.SubU8(dst, a, b, width, height) }},
		{"avg_u8", "truncating pixelwise average", func() error { return rapp.AvgU8(dst, a, b, width, height) }},
		{"min_u8", "pixelwise minimum", func() error { return rapp.MinU8(dst, a, b, width, height) }},
		{"max_u8", "pixelwise maximum", func() error { return rapp.MaxU8(dst, a, b, width, height) }},
	}

	budget := time.Duration(millis) * time.Millisecond
	results := make([]opResult, 0, len(ops))
	for _, op := range ops {
		samples := timeOp(op.call, budget)
		meanSeconds := stat.Mean(samples, nil)
		pps := float64(width*height) / meanSeconds
		results = append(results, opResult{Name: op.name, Description: op.desc, PixelsPerSecond: pps})
		log.Printf("  %-12s %12.0f px/s", op.name, pps)
	}

	out := bmarkFile{Build: build, Width: width, Height: height, Results: results}
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encode benchmark data")
}

// timeOp repeatedly calls fn until budget has elapsed, returning the
// per-call wall-clock duration (in seconds) of every call made.
func timeOp(fn func() error, budget time.Duration) []float64 {
	var samples []float64
	deadline := time.Now().Add(budget)
	for time.Now().Before(deadline) {
		start := time.Now()
		if err := fn(); err != nil {
			log.Printf("operation failed: %v", err)
			break
		}
		samples = append(samples, time.Since(start).Seconds())
	}
	if len(samples) == 0 {
		samples = []float64{0}
	}
	return samples
}
