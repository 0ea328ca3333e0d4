package cardinal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and thus points and vectors, with an absolute
// tolerance.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

// square is the unit-ish square used by many tests, in traversal order.
func square() []Point {
	return []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
}
