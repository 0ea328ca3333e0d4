// Package raster draws sampled curves and control point markers into RGBA
// images. Every shape is filled as polygons by a [vector.Rasterizer]; strokes
// are built from one quad per polyline edge plus a small octagon at every
// joint.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/curvekit/cardinal"
	"golang.org/x/image/vector"
)

// Canvas is an RGBA image with a rasterizer sized to it.
type Canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

// New returns a w×h canvas filled with bg.
func New(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img, r: vector.NewRasterizer(w, h)}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Fit returns the transform that scales bounds uniformly to fill a w×h area
// minus margin on every side, centered. Degenerate bounds (a single point or
// an axis-parallel line) are centered without scaling along the empty axis.
func Fit(bounds cardinal.Rect, w, h int, margin float64) cardinal.Affine {
	availW := float64(w) - 2*margin
	availH := float64(h) - 2*margin
	bw, bh := bounds.Width(), bounds.Height()
	var s float64
	switch {
	case bw > 0 && bh > 0:
		s = min(availW/bw, availH/bh)
	case bw > 0:
		s = availW / bw
	case bh > 0:
		s = availH / bh
	default:
		s = 1
	}
	center := bounds.Center()
	return cardinal.Translate(cardinal.Vec(-center.X, -center.Y)).
		ThenScale(s, s).
		ThenTranslate(cardinal.Vec(float64(w)/2, float64(h)/2))
}

// StrokeStrip draws the polyline through pts with the given width. If closed
// is set the last point is connected to the first.
func (c *Canvas) StrokeStrip(pts []cardinal.Point, closed bool, width float64, col color.Color) {
	if len(pts) == 0 {
		return
	}
	c.reset()
	half := width / 2
	edge := func(a, b cardinal.Point) {
		d := b.Sub(a)
		if d.Hypot2() == 0 {
			return
		}
		n := d.Perp().Normalize().Mul(half)
		c.polygon(a.Translate(n), b.Translate(n), b.Translate(n.Negate()), a.Translate(n.Negate()))
	}
	for i := 1; i < len(pts); i++ {
		edge(pts[i-1], pts[i])
	}
	if closed && len(pts) > 2 {
		edge(pts[len(pts)-1], pts[0])
	}
	for _, pt := range pts {
		c.octagon(pt, half)
	}
	c.fill(col)
}

// FillMarker draws a square of the given size centered on pt.
func (c *Canvas) FillMarker(pt cardinal.Point, size float64, col color.Color) {
	c.reset()
	h := size / 2
	c.polygon(
		cardinal.Pt(pt.X-h, pt.Y-h),
		cardinal.Pt(pt.X+h, pt.Y-h),
		cardinal.Pt(pt.X+h, pt.Y+h),
		cardinal.Pt(pt.X-h, pt.Y+h),
	)
	c.fill(col)
}

// EncodePNG writes the canvas to w as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) fill(col color.Color) {
	c.r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) octagon(center cardinal.Point, r float64) {
	var pts [8]cardinal.Point
	for i := range pts {
		th := float64(i) * math.Pi / 4
		pts[i] = center.Translate(cardinal.Vec(math.Cos(th), math.Sin(th)).Mul(r))
	}
	c.polygon(pts[:]...)
}

// polygon adds a closed polygon to the rasterizer. The rasterizer accumulates
// signed coverage, so overlapping polygons must share a winding direction or
// they cancel out. polygon always emits them with non-negative signed area.
func (c *Canvas) polygon(pts ...cardinal.Point) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += cardinal.Vec2(p).Cross(cardinal.Vec2(q))
	}
	at := func(i int) cardinal.Point { return pts[i] }
	if area < 0 {
		at = func(i int) cardinal.Point { return pts[len(pts)-1-i] }
	}
	p := at(0)
	c.r.MoveTo(float32(p.X), float32(p.Y))
	for i := 1; i < len(pts); i++ {
		p = at(i)
		c.r.LineTo(float32(p.X), float32(p.Y))
	}
	c.r.ClosePath()
}
