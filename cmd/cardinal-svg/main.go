// Command cardinal-svg renders closed cardinal splines through control points
// read from files.
//
// Usage:
//
//	cardinal-svg [flags] file...
//
// Every input file holds one control point per line (see package pointfile).
// For an input named shape.txt the spline is written to shape.svg and, with
// -png, to shape.png, next to the input or in the directory given by -o.
// Files are processed concurrently.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/curvekit/cardinal"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/remeh/sizedwaitgroup"
)

func main() {
	cfg := config{opts: cardinal.DefaultOptions}
	flag.IntVar(&cfg.opts.Samples, "segments", cardinal.DefaultSamples, "points generated between two consecutive control points")
	flag.Float64Var(&cfg.opts.Tension, "tension", cardinal.DefaultTension, "tangent scale; 0.5 is a Catmull-Rom spline")
	flag.IntVar(&cfg.precision, "precision", 3, "maximum number of decimals in SVG coordinates (0 for exact)")
	flag.BoolVar(&cfg.exact, "exact", false, "write the exact Bézier outline instead of the sampled polyline")
	flag.BoolVar(&cfg.png, "png", false, "also render a PNG image")
	flag.IntVar(&cfg.size, "size", 800, "width and height of PNG images in pixels")
	flag.StringVar(&cfg.outDir, "o", "", "output directory (default: next to each input)")
	jobs := flag.Int("j", runtime.GOMAXPROCS(0), "number of files processed concurrently")
	debug := flag.Bool("debug", false, "verbose/debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cardinal.SetLogger(logger)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if cfg.opts.Samples < 0 {
		logger.Error("invalid flag", "segments", cfg.opts.Samples)
		os.Exit(2)
	}
	if cfg.png && cfg.size <= 0 {
		logger.Error("invalid flag", "size", cfg.size)
		os.Exit(2)
	}

	if !run(logger, cfg, flag.Args(), max(*jobs, 1)) {
		os.Exit(1)
	}
}

// run renders every file with at most jobs files in flight. It reports
// whether all files succeeded.
func run(logger *slog.Logger, cfg config, files []string, jobs int) bool {
	start := time.Now()
	var failed atomic.Int32
	var written atomic.Int64
	swg := sizedwaitgroup.New(jobs)
	for _, path := range files {
		swg.Add()
		go func() {
			defer swg.Done()
			res, err := renderFile(path, cfg)
			if err != nil {
				logger.Error("rendering failed", "file", path, "err", err)
				failed.Add(1)
				return
			}
			written.Add(res.bytes)
			for _, out := range res.outputs {
				logger.Debug("wrote", "file", out)
			}
			logger.Debug("rendered", "file", path, "controlPoints", res.controlPoints, "curvePoints", res.curvePoints)
		}()
	}
	swg.Wait()

	logger.Info("done",
		"files", len(files),
		"failed", failed.Load(),
		"written", humanize.Bytes(uint64(written.Load())),
		"elapsed", durafmt.Parse(time.Since(start)).LimitFirstN(2).String())
	return failed.Load() == 0
}
