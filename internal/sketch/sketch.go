// Package sketch holds the state of an interactive spline drawing: the
// control points entered so far and the spline through them.
package sketch

import (
	"io"
	"log/slog"

	"github.com/curvekit/cardinal"
	"github.com/curvekit/cardinal/internal/pointfile"
)

// Sketch collects control points and keeps the sampled spline through them up
// to date. The spline is rebuilt lazily, only after points were added, and
// reuses its buffer.
type Sketch struct {
	points cardinal.ControlPoints
	opts   cardinal.Options
	logger *slog.Logger

	curve []cardinal.Point
	built int
}

func New(opts cardinal.Options, logger *slog.Logger) *Sketch {
	if logger == nil {
		logger = cardinal.Logger()
	}
	return &Sketch{opts: opts, logger: logger, built: -1}
}

// Add appends a control point.
func (s *Sketch) Add(pt cardinal.Point) {
	s.points.Append(pt)
	s.logger.Debug("control point added", "x", pt.X, "y", pt.Y, "count", s.points.Len())
}

// Len returns the number of control points.
func (s *Sketch) Len() int { return s.points.Len() }

// Controls returns a snapshot of the control points.
func (s *Sketch) Controls() []cardinal.Point { return s.points.Snapshot() }

// Curve returns the sampled spline through the control points. The returned
// slice is only valid until the next call to Curve.
func (s *Sketch) Curve() []cardinal.Point {
	if n := s.points.Len(); n != s.built {
		s.curve, s.built = s.points.AppendSpline(s.curve[:0], s.opts)
		s.logger.Debug("spline rebuilt", "controlPoints", s.built, "curvePoints", len(s.curve))
	}
	return s.curve
}

// Outline returns the curve as a line strip ready to be drawn. It is closed
// once there are enough control points for a spline.
func (s *Sketch) Outline() cardinal.BezPath {
	curve := s.Curve()
	return cardinal.LineStrip(curve, s.built >= cardinal.MinControlPoints)
}

// Load appends the control points read from r.
func (s *Sketch) Load(r io.Reader) error {
	pts, err := pointfile.Read(r)
	if err != nil {
		return err
	}
	s.points.Append(pts...)
	s.logger.Debug("control points loaded", "count", len(pts))
	return nil
}

// Save writes the control points to w in a form Load accepts.
func (s *Sketch) Save(w io.Writer) error {
	return pointfile.Write(w, s.points.Snapshot())
}
