// Package cardinal computes closed cardinal splines through 2D control points.
//
// Given an ordered sequence of control points, [Build] produces a dense
// sequence of points on a smooth closed curve that passes through every
// control point. The curve is a chain of cubic Hermite segments, one between
// each pair of consecutive control points, with the last point connected back
// to the first.
//
// # Segments and tangents
//
// The segment from control point k to control point k+1 is a
// [HermiteSegment]. Its tangents are estimated by [EstimateTangent] from the
// control points before and after the segment, scaled by the tension:
//
//	M₀ = tension × (P[k+1] − P[k−1])
//	M₁ = tension × (P[k+2] − P[k])
//
// Indices wrap around, which is why at least three control points are needed;
// for fewer, [Build] returns the points unchanged. A tension of 0.5 yields a
// Catmull-Rom spline, smaller values pull the curve towards the polygon
// through the control points and larger values make it bulge further.
//
// # Sampling
//
// Each segment is sampled by [Interpolate] at u = i/n for i in [0, n). The
// end of a segment is not sampled, as it is the first sample of the next
// segment, so a spline through N control points consists of exactly N × n
// points, and the first sample of each segment is exactly its start control
// point. To draw a sampled spline, connect the points and close the loop, for
// example with [LineStrip].
//
// # Exact curves
//
// Every Hermite segment is also a cubic Bézier ([HermiteSegment.Cubic]).
// [Path] returns the exact closed outline of a spline as a [BezPath], which
// can be written as SVG path data with [BezPath.SVG].
//
// # Concurrency
//
// All functions are pure and may be called concurrently. [ControlPoints] is
// an append-only collection for applications that add control points from one
// goroutine while building splines in another.
//
// # Literature
//
//   - [Cubic Hermite spline]
//   - [Cardinal spline]
//
// [Cubic Hermite spline]: https://en.wikipedia.org/wiki/Cubic_Hermite_spline
// [Cardinal spline]: https://en.wikipedia.org/wiki/Cubic_Hermite_spline#Cardinal_spline
package cardinal
