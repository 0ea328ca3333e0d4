package cardinal

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBuildPassthrough(t *testing.T) {
	tests := [][]Point{
		nil,
		{},
		{Pt(3, 4)},
		{Pt(0, 0), Pt(1, 1)},
	}
	for _, pts := range tests {
		for _, n := range []int{0, 1, 100} {
			got := Build(pts, n, 0.5)
			diff(t, pts, got, cmpopts.EquateEmpty())
		}
	}
}

func TestBuildPassthroughDoesNotAlias(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1)}
	got := Build(pts, 10, 0.5)
	got[0] = Pt(42, 42)
	diff(t, Pt(0, 0), pts[0])
}

func TestBuildLength(t *testing.T) {
	for n := 3; n <= 9; n++ {
		pts := make([]Point, n)
		for i := range pts {
			th := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = Pt(math.Cos(th), math.Sin(th))
		}
		for _, samples := range []int{0, 1, 4, 100} {
			t.Run(fmt.Sprintf("%d×%d", n, samples), func(t *testing.T) {
				if got := Build(pts, samples, 0.5); len(got) != n*samples {
					t.Errorf("got %d points, want %d", len(got), n*samples)
				}
			})
		}
	}
}

func TestBuildNegativeSamples(t *testing.T) {
	got := Build(square(), -4, 0.5)
	if len(got) != 0 {
		t.Errorf("got %d points, want none", len(got))
	}
}

func TestBuildSquare(t *testing.T) {
	ctrl := square()
	const n = 4
	got := Build(ctrl, n, 0.5)
	if len(got) != 16 {
		t.Fatalf("got %d points, want 16", len(got))
	}
	if got[0] != Pt(0, 0) {
		t.Errorf("first point is %v, want (0, 0)", got[0])
	}
	for k, pt := range ctrl {
		if got[k*n] != pt {
			t.Errorf("segment %d starts at %v, want %v", k, got[k*n], pt)
		}
	}

	// Midpoints of each side bulge outwards by an eighth of the tangent
	// difference.
	want := []Point{Pt(5, -1.25), Pt(11.25, 5), Pt(5, 11.25), Pt(-1.25, 5)}
	for k := range ctrl {
		diff(t, want[k], got[k*n+2])
	}
}

func TestBuildOrderAndWrapAround(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(4, 1), Pt(6, 5), Pt(2, 7), Pt(-1, 3)}
	const n = 3
	const tension = 0.3
	got := Build(ctrl, n, tension)

	var want []Point
	m := len(ctrl)
	for k := range m {
		prev, start, end, next := ctrl[(k+m-1)%m], ctrl[k], ctrl[(k+1)%m], ctrl[(k+2)%m]
		tan := EstimateTangent(prev, start, end, next, tension)
		want = append(want, Interpolate(start, end, n, tan.Start, tan.End)...)
	}
	diff(t, want, got)

	// The closing segment runs from the last control point back to the first.
	segs := slices.Collect(Segments(ctrl, tension))
	if len(segs) != m {
		t.Fatalf("got %d segments, want %d", len(segs), m)
	}
	diff(t, ctrl[m-1], segs[m-1].P0)
	diff(t, ctrl[0], segs[m-1].P1)
}

func TestBuildZeroTension(t *testing.T) {
	ctrl := square()
	const n = 8
	got := Build(ctrl, n, 0)
	for k := range ctrl {
		start, end := ctrl[k], ctrl[(k+1)%len(ctrl)]
		for i := range n {
			h0, h1, _, _ := HermiteBasis(float64(i) / n)
			want := Pt(h0*start.X+h1*end.X, h0*start.Y+h1*end.Y)
			diff(t, want, got[k*n+i])
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	ctrl := []Point{Pt(0.1, 0.2), Pt(1.7, -3.3), Pt(5.5, 2.25), Pt(math.Pi, math.E)}
	a := Build(ctrl, 37, 0.73)
	b := Build(slices.Clone(ctrl), 37, 0.73)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i].X) != math.Float64bits(b[i].X) ||
			math.Float64bits(a[i].Y) != math.Float64bits(b[i].Y) {
			t.Errorf("point %d differs: %v != %v", i, a[i], b[i])
		}
	}
}

func TestBuildDoesNotModifyInput(t *testing.T) {
	ctrl := square()
	orig := slices.Clone(ctrl)
	out := Build(ctrl, 5, 0.5)
	out[0] = Pt(-1, -1)
	diff(t, orig, ctrl)
}

func TestAppendBuild(t *testing.T) {
	ctrl := square()
	prefix := []Point{Pt(-7, -7)}
	got := AppendBuild(slices.Clone(prefix), ctrl, 6, 0.5)
	diff(t, append(prefix, Build(ctrl, 6, 0.5)...), got)

	// Reusing a buffer yields the same spline.
	buf := make([]Point, 0, 4)
	buf = AppendBuild(buf[:0], ctrl, 6, 0.5)
	buf = AppendBuild(buf[:0], ctrl, 6, 0.5)
	diff(t, Build(ctrl, 6, 0.5), buf)

	diff(t, []Point{Pt(1, 2)}, AppendBuild(nil, []Point{Pt(1, 2)}, 6, 0.5))
}

func TestSegments(t *testing.T) {
	ctrl := square()
	var got []Point
	for seg := range Segments(ctrl, 0.5) {
		got = seg.AppendSample(got, 9)
	}
	diff(t, Build(ctrl, 9, 0.5), got)

	for range Segments(ctrl[:2], 0.5) {
		t.Error("got a segment for two control points")
	}

	// Breaking out of the loop stops the iterator.
	n := 0
	for range Segments(ctrl, 0.5) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("got %d iterations, want 1", n)
	}
}

func TestOptions(t *testing.T) {
	if DefaultOptions.Samples != 100 || DefaultOptions.Tension != 0.5 {
		t.Errorf("unexpected defaults %+v", DefaultOptions)
	}
	got := DefaultOptions.Build(square())
	if len(got) != 400 {
		t.Errorf("got %d points, want 400", len(got))
	}
	diff(t, Build(square(), 100, 0.5), got)
}

func BenchmarkBuild(b *testing.B) {
	ctrl := make([]Point, 64)
	for i := range ctrl {
		th := 2 * math.Pi * float64(i) / float64(len(ctrl))
		ctrl[i] = Pt(100*math.Cos(th), 100*math.Sin(th))
	}
	var buf []Point
	b.ReportAllocs()
	for b.Loop() {
		buf = AppendBuild(buf[:0], ctrl, DefaultSamples, DefaultTension)
	}
}
