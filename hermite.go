package cardinal

// HermiteBasis returns the four cubic Hermite basis functions evaluated at u.
//
//	h0(u) =  2u³ − 3u² + 1
//	h1(u) = −2u³ + 3u²
//	h2(u) =   u³ − 2u² + u
//	h3(u) =   u³ −  u²
//
// h0 and h1 weight the start and end positions, h2 and h3 the start and end
// tangents. At u = 0 the weights are exactly (1, 0, 0, 0).
func HermiteBasis(u float64) (h0, h1, h2, h3 float64) {
	u2 := u * u
	u3 := u2 * u
	h0 = 2*u3 - 3*u2 + 1
	h1 = -2*u3 + 3*u2
	h2 = u3 - 2*u2 + u
	h3 = u3 - u2
	return h0, h1, h2, h3
}

// HermiteSegment is a cubic Hermite curve from P0 to P1 with tangent M0 at P0
// and tangent M1 at P1. One segment of a cardinal spline is a HermiteSegment
// whose tangents were computed by [EstimateTangent].
type HermiteSegment struct {
	P0 Point
	P1 Point
	M0 Vec2
	M1 Vec2
}

// Eval evaluates the segment at u. Generally, u is in the range [0, 1].
func (h HermiteSegment) Eval(u float64) Point {
	h0, h1, h2, h3 := HermiteBasis(u)
	return Point{
		X: h0*h.P0.X + h1*h.P1.X + h2*h.M0.X + h3*h.M1.X,
		Y: h0*h.P0.Y + h1*h.P1.Y + h2*h.M0.Y + h3*h.M1.Y,
	}
}

func (h HermiteSegment) Start() Point { return h.P0 }
func (h HermiteSegment) End() Point   { return h.P1 }

// Tangents returns the tangents at the start and end of the segment.
func (h HermiteSegment) Tangents() (Vec2, Vec2) {
	return h.M0, h.M1
}

// Reverse returns the segment traversing the same path in the opposite
// direction: h.Reverse().Eval(1-u) equals h.Eval(u).
func (h HermiteSegment) Reverse() HermiteSegment {
	return HermiteSegment{
		P0: h.P1,
		P1: h.P0,
		M0: h.M1.Negate(),
		M1: h.M0.Negate(),
	}
}

// Cubic returns the cubic Bézier that traces exactly the same curve.
func (h HermiteSegment) Cubic() CubicBez {
	return CubicBez{
		P0: h.P0,
		P1: h.P0.Translate(h.M0.Div(3)),
		P2: h.P1.Translate(h.M1.Div(-3)),
		P3: h.P1,
	}
}

// Sample returns n points along the segment, at u = i/n for i in [0, n). See
// [Interpolate].
func (h HermiteSegment) Sample(n int) []Point {
	return h.AppendSample(nil, n)
}

// AppendSample is like [HermiteSegment.Sample] but appends to dst and returns
// the extended slice.
func (h HermiteSegment) AppendSample(dst []Point, n int) []Point {
	return AppendInterpolate(dst, h.P0, h.P1, n, h.M0, h.M1)
}

// Interpolate returns n points along the Hermite segment from start to end
// with tangents t0 and t1.
//
// Samples are taken at u = i/n for i in [0, n). The parameter never reaches 1,
// so the end point is not part of the result; in a spline it is supplied as
// the first sample of the following segment. The first sample is exactly
// start. If n <= 0 the result is empty.
func Interpolate(start, end Point, n int, t0, t1 Vec2) []Point {
	return AppendInterpolate(nil, start, end, n, t0, t1)
}

// AppendInterpolate is like [Interpolate] but appends the samples to dst and
// returns the extended slice.
func AppendInterpolate(dst []Point, start, end Point, n int, t0, t1 Vec2) []Point {
	if n <= 0 {
		return dst
	}
	h := HermiteSegment{P0: start, P1: end, M0: t0, M1: t1}
	fn := float64(n)
	for i := range n {
		dst = append(dst, h.Eval(float64(i)/fn))
	}
	return dst
}
