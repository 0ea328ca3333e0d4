package main

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/curvekit/cardinal"
	"github.com/curvekit/cardinal/internal/pointfile"
	"github.com/curvekit/cardinal/internal/raster"
)

const (
	markerSize  = 10
	strokeWidth = 5
	pngMargin   = 2 * markerSize
)

var (
	background   = color.RGBA{0, 0, 0, 255}
	curveColor   = color.RGBA{255, 255, 255, 255}
	controlColor = color.RGBA{255, 0, 0, 255}
)

type config struct {
	opts      cardinal.Options
	precision int
	exact     bool
	png       bool
	size      int
	outDir    string
}

type result struct {
	outputs       []string
	bytes         int64
	controlPoints int
	curvePoints   int
}

// renderFile reads the control points in path and writes the outputs
// selected by cfg.
func renderFile(path string, cfg config) (result, error) {
	f, err := os.Open(path)
	if err != nil {
		return result{}, err
	}
	ctrl, err := pointfile.Read(f)
	f.Close()
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", path, err)
	}
	curve := cfg.opts.Build(ctrl)
	res := result{controlPoints: len(ctrl), curvePoints: len(curve)}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if cfg.outDir != "" {
		base = filepath.Join(cfg.outDir, filepath.Base(base))
	}

	outputs := []struct {
		ext   string
		write func(io.Writer) error
		on    bool
	}{
		{".svg", func(w io.Writer) error { return writeSVG(w, ctrl, curve, cfg) }, true},
		{".png", func(w io.Writer) error { return writePNG(w, ctrl, curve, cfg) }, cfg.png},
	}
	for _, out := range outputs {
		if !out.on {
			continue
		}
		var buf bytes.Buffer
		if err := out.write(&buf); err != nil {
			return res, fmt.Errorf("encoding %s: %w", out.ext, err)
		}
		name := base + out.ext
		if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return res, err
		}
		res.outputs = append(res.outputs, name)
		res.bytes += int64(buf.Len())
	}
	return res, nil
}

// outline returns the path drawn for the curve.
func outline(ctrl, curve []cardinal.Point, cfg config) cardinal.BezPath {
	if cfg.exact {
		return cardinal.Path(ctrl, cfg.opts.Tension)
	}
	return cardinal.LineStrip(curve, len(ctrl) >= cardinal.MinControlPoints)
}

// flatten evaluates every cubic of p at n evenly spaced parameters and returns
// the resulting polyline. The end point of a closed path is not repeated.
func flatten(p cardinal.BezPath, n int) []cardinal.Point {
	var pts []cardinal.Point
	var cur cardinal.Point
	for el := range p.Elements() {
		switch el.Kind {
		case cardinal.MoveToKind, cardinal.LineToKind:
			cur = el.P0
			pts = append(pts, cur)
		case cardinal.CubicToKind:
			c := cardinal.CubicBez{P0: cur, P1: el.P0, P2: el.P1, P3: el.P2}
			for i := 1; i <= n; i++ {
				pts = append(pts, c.Eval(float64(i)/float64(n)))
			}
			cur = el.P2
		case cardinal.ClosePathKind:
			if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
				pts = pts[:len(pts)-1]
			}
		}
	}
	return pts
}

// writeSVG writes a standalone SVG document showing the curve and a square
// marker on every control point.
func writeSVG(w io.Writer, ctrl, curve []cardinal.Point, cfg config) error {
	p := outline(ctrl, curve, cfg)
	box, ok := p.ControlBox()
	if cbox, cok := cardinal.Bounds(ctrl); cok {
		if ok {
			box = box.Union(cbox)
		} else {
			box, ok = cbox, true
		}
	}
	if !ok {
		box = cardinal.Rect{X1: 1, Y1: 1}
	}
	unit := max(box.Width(), box.Height()) / 100
	if unit == 0 {
		unit = 1
	}
	box = box.Inflate(2*unit, 2*unit)

	num := func(f float64) string {
		return strconv.FormatFloat(f, 'g', 6, 64)
	}
	origin := box.Origin()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(origin.X), num(origin.Y), num(box.Width()), num(box.Height()))
	fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="black" />`+"\n",
		num(origin.X), num(origin.Y), num(box.Width()), num(box.Height()))
	if len(p) > 0 {
		bw.WriteString(`<path d="`)
		p.WriteSVG(bw, cardinal.SVGOptions{MaxPrecision: cfg.precision})
		fmt.Fprintf(bw, `" fill="none" stroke="white" stroke-width="%s" stroke-linejoin="round" />`+"\n", num(unit/2))
	}
	for _, pt := range ctrl {
		fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="red" />`+"\n",
			num(pt.X-unit/2), num(pt.Y-unit/2), num(unit), num(unit))
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// writePNG renders the curve fitted into a cfg.size square image, white on
// black with red control point markers. With cfg.exact the strip is
// flattened from the Bézier path instead of the sampled curve.
func writePNG(w io.Writer, ctrl, curve []cardinal.Point, cfg config) error {
	closed := len(ctrl) >= cardinal.MinControlPoints
	strip := curve
	if cfg.exact && closed {
		strip = flatten(cardinal.Path(ctrl, cfg.opts.Tension), max(cfg.opts.Samples, 1))
	}
	c := raster.New(cfg.size, cfg.size, background)
	if box, ok := cardinal.Bounds(append(strip[:len(strip):len(strip)], ctrl...)); ok {
		aff := raster.Fit(box, cfg.size, cfg.size, pngMargin)
		c.StrokeStrip(cardinal.TransformPoints(strip, aff), closed, strokeWidth, curveColor)
		for _, pt := range cardinal.TransformPoints(ctrl, aff) {
			c.FillMarker(pt, markerSize, controlColor)
		}
	}
	return c.EncodePNG(w)
}
