package cardinal

import (
	"slices"
	"testing"
)

func TestAffine(t *testing.T) {
	aff := Scale(2, 3).ThenTranslate(Vec(1, -1))
	diff(t, Pt(3, 5), Pt(1, 2).Transform(aff))
	diff(t, Pt(1, -2), Pt(1, 2).Transform(FlipY))
	diff(t, Pt(4, 6), Pt(1, 2).Transform(Translate(Vec(1, 1)).ThenScale(2, 2)))
	diff(t, aff, Identity.Mul(aff))
	diff(t, aff, aff.Mul(Identity))
}

func TestTransformPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1)}
	got := TransformPoints(pts, Translate(Vec(5, 0)))
	diff(t, []Point{Pt(5, 0), Pt(6, 1)}, got)
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, pts)

	els := slices.Collect(Transform(LineStrip(pts, false).Elements(), Scale(2, 2)))
	diff(t, []PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(2, 2))}, els)
}
