package timechart

import "math"

// PointRef identifies one point within a slice of series.
type PointRef struct {
	SeriesIndex int
	PointIndex  int
	Point       Point
}

// Nearest resolves a tap at (x, y), already mapped into data space by
// the host, to the closest point across all series: the point with the
// strictly smallest x distance wins, ties broken by smallest y
// distance. Returns false when every series is empty.
func Nearest(series []Series, x, y float64) (PointRef, bool) {
	var (
		best   PointRef
		bestDX = math.Inf(1)
		bestDY = math.Inf(1)
		found  bool
	)
	for si, s := range series {
		for pi, p := range s.Points() {
			dx := math.Abs(p.X - x)
			dy := math.Abs(p.Y - y)
			if dx > bestDX || (dx == bestDX && dy >= bestDY) {
				continue
			}
			best = PointRef{SeriesIndex: si, PointIndex: pi, Point: p}
			bestDX, bestDY = dx, dy
			found = true
		}
	}
	return best, found
}
