package cardinal

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestControlPointsZeroValue(t *testing.T) {
	var c ControlPoints
	if n := c.Len(); n != 0 {
		t.Errorf("got %d points, want 0", n)
	}
	diff(t, []Point(nil), c.Spline(DefaultOptions), cmpopts.EquateEmpty())
}

func TestControlPointsSnapshot(t *testing.T) {
	c := NewControlPoints(Pt(0, 0), Pt(10, 0))
	snap := c.Snapshot()
	c.Append(Pt(10, 10), Pt(0, 10))
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, snap)

	snap[0] = Pt(-1, -1)
	diff(t, square(), c.Snapshot())
	if c.Len() != 4 {
		t.Errorf("got %d points, want 4", c.Len())
	}
}

func TestControlPointsSpline(t *testing.T) {
	c := NewControlPoints(square()...)
	opts := Options{Samples: 4, Tension: 0.5}
	diff(t, Build(square(), 4, 0.5), c.Spline(opts))

	buf, n := c.AppendSpline(nil, opts)
	if n != 4 {
		t.Errorf("spline built from %d points, want 4", n)
	}
	diff(t, Build(square(), 4, 0.5), buf)
}

func TestControlPointsConcurrent(t *testing.T) {
	var c ControlPoints
	opts := Options{Samples: 3, Tension: 0.5}

	const writers = 4
	const perWriter = 50
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				c.Append(Pt(float64(w), float64(i)))
			}
		}()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for c.Len() < writers*perWriter {
			pts, n := c.AppendSpline(nil, opts)
			if n >= MinControlPoints && len(pts) != n*opts.Samples {
				t.Errorf("got %d curve points for %d control points", len(pts), n)
				return
			}
		}
	}()
	wg.Wait()
	<-done

	if n := c.Len(); n != writers*perWriter {
		t.Errorf("got %d points, want %d", n, writers*perWriter)
	}
}
