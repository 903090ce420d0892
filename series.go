// Package timechart computes the numeric structures behind segmented
// bar and line time charts: axis bounds and tick labels, windowed
// segment subsets, and navigation state. It performs no drawing; a
// host toolkit consumes the computed data.
package timechart

import "slices"

// Point is a single chart coordinate. X is either a raw numeric
// coordinate or a 0-based bucket index when the point was produced by
// the timeseries bucketizer.
type Point struct {
	X, Y float64
}

// Style carries presentation metadata for a series. The engine never
// interprets it; it travels with the series so that hosts can match
// computed subsets back to their visual treatment.
type Style struct {
	ColorIndex int
	LineWidth  float64
	PointSize  float64
}

// Series is an immutable, named sequence of points sorted ascending by
// X. Extrema are computed once at construction.
type Series struct {
	Name  string
	Style Style

	points                 []Point
	minX, maxX, minY, maxY float64
}

// NewSeries copies and sorts the provided points ascending by X and
// caches the series extrema. The input slice is not retained.
func NewSeries(name string, style Style, points []Point) Series {
	s := Series{
		Name:   name,
		Style:  style,
		points: slices.Clone(points),
	}
	slices.SortStableFunc(s.points, func(a, b Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	for i, p := range s.points {
		if i == 0 {
			s.minX, s.maxX = p.X, p.X
			s.minY, s.maxY = p.Y, p.Y
			continue
		}
		s.minX = min(s.minX, p.X)
		s.maxX = max(s.maxX, p.X)
		s.minY = min(s.minY, p.Y)
		s.maxY = max(s.maxY, p.Y)
	}
	return s
}

func (s Series) Len() int { return len(s.points) }

func (s Series) Empty() bool { return len(s.points) == 0 }

// At returns the point at index i.
func (s Series) At(i int) Point { return s.points[i] }

// Points returns the sorted points. Callers must not modify the
// returned slice.
func (s Series) Points() []Point { return s.points }

// Bounds returns the cached extrema. The return values are undefined
// when the series is empty; check Empty first.
func (s Series) Bounds() (minX, maxX, minY, maxY float64) {
	return s.minX, s.maxX, s.minY, s.maxY
}

// withPoints builds a series sharing name and style with s but holding
// pre-sorted points. Used by the segment engine, which slices already
// sorted data.
func (s Series) withPoints(points []Point) Series {
	return NewSeries(s.Name, s.Style, points)
}
