package cardinal

import (
	"iter"
	"slices"
)

const (
	// DefaultSamples is the default number of points generated per segment.
	DefaultSamples = 100
	// DefaultTension is the default tension. It produces a Catmull-Rom spline.
	DefaultTension = 0.5
)

// MinControlPoints is the smallest number of control points that defines a
// closed spline. Fewer points are passed through unchanged.
const MinControlPoints = 3

// Options configures spline construction.
type Options struct {
	// Samples is the number of points generated for each segment. Values
	// less than or equal to zero produce no points.
	Samples int
	// Tension scales the tangents. See [EstimateTangent].
	Tension float64
}

// DefaultOptions are the options used by interactive drawing: 100 samples per
// segment and a tension of 0.5.
var DefaultOptions = Options{
	Samples: DefaultSamples,
	Tension: DefaultTension,
}

// Build is like [Build] but takes the sample count and tension from opts.
func (opts Options) Build(points []Point) []Point {
	return Build(points, opts.Samples, opts.Tension)
}

// Build computes the closed cardinal spline through points.
//
// The points are treated as a loop: the last point connects back to the
// first. For each of the N segments, from points[k] to points[(k+1) mod N],
// tangents are estimated from points[(k-1) mod N] and points[(k+2) mod N] and
// the segment is sampled n times (see [Interpolate]). Segments are emitted in
// control point order, the closing segment last, so the result holds exactly
// N × n points and its first point is points[0].
//
// A spline is not defined by fewer than [MinControlPoints] points. In that
// case Build returns a copy of points.
//
// The result never aliases points, and points is not modified.
func Build(points []Point, n int, tension float64) []Point {
	if len(points) < MinControlPoints {
		Logger().Debug("too few control points for a spline, passing them through", "points", len(points))
		return slices.Clone(points)
	}
	return AppendBuild(make([]Point, 0, len(points)*max(n, 0)), points, n, tension)
}

// AppendBuild is like [Build] but appends the spline to dst and returns the
// extended slice. Reusing dst[:0] across calls avoids allocating a new curve
// for every frame.
func AppendBuild(dst []Point, points []Point, n int, tension float64) []Point {
	if len(points) < MinControlPoints {
		return append(dst, points...)
	}
	if n <= 0 {
		return dst
	}
	dst = slices.Grow(dst, len(points)*n)
	for k := range points {
		dst = segment(points, k, tension).AppendSample(dst, n)
	}
	return dst
}

// Segments returns an iterator over the segments of the closed spline through
// points, in the same order as [Build]. It yields nothing for fewer than
// [MinControlPoints] points.
func Segments(points []Point, tension float64) iter.Seq[HermiteSegment] {
	return func(yield func(HermiteSegment) bool) {
		if len(points) < MinControlPoints {
			return
		}
		for k := range points {
			if !yield(segment(points, k, tension)) {
				return
			}
		}
	}
}

// segment returns the k-th segment of the closed spline through points.
func segment(points []Point, k int, tension float64) HermiteSegment {
	n := len(points)
	prev := points[(k-1+n)%n]
	start := points[k]
	end := points[(k+1)%n]
	next := points[(k+2)%n]
	t := EstimateTangent(prev, start, end, next, tension)
	return HermiteSegment{P0: start, P1: end, M0: t.Start, M1: t.End}
}
