package cardinal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPathSquare(t *testing.T) {
	p := Path(square(), 0.5)
	if len(p) != 6 {
		t.Fatalf("got %d elements, want 6", len(p))
	}
	diff(t, MoveTo(Pt(0, 0)), p[0])
	diff(t, ClosePath(), p[5])

	segs := make([]HermiteSegment, 0, 4)
	for seg := range Segments(square(), 0.5) {
		segs = append(segs, seg)
	}
	for i, el := range p[1:5] {
		if el.Kind != CubicToKind {
			t.Fatalf("element %d is %v, want a CubicTo", i+1, el)
		}
		c := segs[i].Cubic()
		diff(t, CubicTo(c.P1, c.P2, c.P3), el)
	}

	want := "M0,0 C1.667,-1.667 8.333,-1.667 10,0 C11.667,1.667 11.667,8.333 10,10 " +
		"C8.333,11.667 1.667,11.667 0,10 C-1.667,8.333 -1.667,1.667 0,0 Z"
	if got := p.SVG(SVGOptions{MaxPrecision: 3}); got != want {
		t.Errorf("got SVG\n%s\nwant\n%s", got, want)
	}
}

func TestPathFewPoints(t *testing.T) {
	diff(t, BezPath(nil), Path(nil, 0.5), cmpopts.EquateEmpty())
	diff(t, BezPath{MoveTo(Pt(1, 2))}, Path([]Point{Pt(1, 2)}, 0.5))
	diff(t, BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1))}, Path([]Point{Pt(0, 0), Pt(1, 1)}, 0.5))
}

func TestLineStrip(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	diff(t, BezPath{MoveTo(pts[0]), LineTo(pts[1]), LineTo(pts[2])}, LineStrip(pts, false))
	diff(t, BezPath{MoveTo(pts[0]), LineTo(pts[1]), LineTo(pts[2]), ClosePath()}, LineStrip(pts, true))
	diff(t, BezPath{MoveTo(pts[0])}, LineStrip(pts[:1], true))
	if p := LineStrip(nil, true); p != nil {
		t.Errorf("got %v for no points", p)
	}
}

func TestSVG(t *testing.T) {
	p := BezPath{MoveTo(Pt(0.5, -0.25)), LineTo(Pt(1e-7, 3)), CubicTo(Pt(1, 2), Pt(3, 4), Pt(5, 6)), ClosePath()}
	diff(t, "M0.5,-0.25 L0.0000001,3 C1,2 3,4 5,6 Z", p.SVG(SVGOptions{}))
	diff(t, "M0.5,-0.25 L0,3 C1,2 3,4 5,6 Z", p.SVG(SVGOptions{MaxPrecision: 2}))
	diff(t, "", BezPath(nil).SVG(SVGOptions{}))
}

type failWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	p := LineStrip([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, true)
	if err := p.WriteSVG(&failWriter{n: 2}, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestPathTransform(t *testing.T) {
	p := LineStrip([]Point{Pt(1, 2), Pt(3, 4)}, true)
	got := p.Transform(FlipY)
	diff(t, BezPath{MoveTo(Pt(1, -2)), LineTo(Pt(3, -4)), ClosePath()}, got)
	diff(t, Pt(1, 2), p[0].P0)
}

func TestControlBox(t *testing.T) {
	p := Path(square(), 0.5)
	box, ok := p.ControlBox()
	if !ok {
		t.Fatal("no control box")
	}
	want := Rect{-5.0 / 3, -5.0 / 3, 10 + 5.0/3, 10 + 5.0/3}
	diff(t, want, box, approx(1e-12))

	if _, ok := BezPath(nil).ControlBox(); ok {
		t.Error("got a control box for an empty path")
	}
}
