package cardinal

// Tangent holds the tangent vectors at the start and end of one spline
// segment.
type Tangent struct {
	Start Vec2
	End   Vec2
}

// EstimateTangent computes the tangents at start and end of the segment from
// start to end, using the neighbouring control points prev and next.
//
// The tangent at start is tension × (end − prev) and the tangent at end is
// tension × (next − start). This is the Catmull-Rom finite difference scaled by
// tension; a tension of 0.5 yields the classic Catmull-Rom spline. Tension is
// not clamped. Values above 1 make the curve overshoot further, 0 collapses
// both tangents to zero and negative values flip their direction.
func EstimateTangent(prev, start, end, next Point, tension float64) Tangent {
	return Tangent{
		Start: end.Sub(prev).Mul(tension),
		End:   next.Sub(start).Mul(tension),
	}
}
