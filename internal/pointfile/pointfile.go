// Package pointfile reads and writes control points as text.
//
// Each line holds one point: two numbers separated by whitespace or by a
// single comma, which may be surrounded by whitespace. Blank lines and lines whose first non-blank character is '#' are
// ignored.
//
//	# a square
//	0 0
//	10, 0
//	10,10
//	0	10
package pointfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/curvekit/cardinal"
)

// SyntaxError describes a malformed line.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

var (
	errFieldCount = errors.New("expected two coordinates")
	errNotFinite  = errors.New("coordinate is not finite")
)

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// fields splits a line into its coordinates. An empty field between commas
// leaves the wrong number of fields.
func fields(s string) []string {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return strings.Fields(s)
	}
	x, y = strings.TrimSpace(x), strings.TrimSpace(y)
	if x == "" || y == "" || strings.ContainsFunc(x, isSeparator) || strings.ContainsFunc(y, isSeparator) {
		return nil
	}
	return []string{x, y}
}

// Read reads control points from r until EOF. Malformed lines are reported as
// a *SyntaxError.
func Read(r io.Reader) ([]cardinal.Point, error) {
	var pts []cardinal.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pt, err := parsePoint(text)
		if err != nil {
			return nil, &SyntaxError{Line: line, Err: err}
		}
		pts = append(pts, pt)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return pts, nil
}

func parsePoint(s string) (cardinal.Point, error) {
	f := fields(s)
	if len(f) != 2 {
		return cardinal.Point{}, errFieldCount
	}
	var xy [2]float64
	for i := range f {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return cardinal.Point{}, err
		}
		xy[i] = v
	}
	pt := cardinal.Pt(xy[0], xy[1])
	if pt.IsNaN() || pt.IsInf() {
		return cardinal.Point{}, errNotFinite
	}
	return pt, nil
}

// Write writes pts to w, one "x y" pair per line, in a form Read accepts.
func Write(w io.Writer, pts []cardinal.Point) error {
	bw := bufio.NewWriter(w)
	for _, pt := range pts {
		bw.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
