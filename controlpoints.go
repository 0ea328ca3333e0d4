package cardinal

import (
	"slices"
	"sync"
)

// ControlPoints is an append-only collection of control points that is safe
// for concurrent use. Input handling appends to it while rendering builds
// splines from snapshots of it.
//
// The zero value is an empty collection ready for use.
type ControlPoints struct {
	mu  sync.RWMutex
	pts []Point
}

// NewControlPoints returns a collection holding a copy of pts.
func NewControlPoints(pts ...Point) *ControlPoints {
	return &ControlPoints{pts: slices.Clone(pts)}
}

// Append adds points to the end of the collection.
func (c *ControlPoints) Append(pts ...Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pts = append(c.pts, pts...)
}

// Len returns the number of control points.
func (c *ControlPoints) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pts)
}

// Snapshot returns a copy of the current control points. Later appends do not
// affect the returned slice.
func (c *ControlPoints) Snapshot() []Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.pts)
}

// Spline builds the spline of a snapshot of the control points. The lock is
// not held while the spline is computed.
func (c *ControlPoints) Spline(opts Options) []Point {
	return opts.Build(c.Snapshot())
}

// AppendSpline is like [ControlPoints.Spline] but appends to dst. It also
// returns the number of control points the spline was built from.
func (c *ControlPoints) AppendSpline(dst []Point, opts Options) ([]Point, int) {
	snap := c.Snapshot()
	return AppendBuild(dst, snap, opts.Samples, opts.Tension), len(snap)
}
