package timeseries

import (
	"errors"
	"time"

	"git.sr.ht/~cgenuity/timechart"
)

// ResampleMethod selects how values combine when resampling merges
// source points together.
type ResampleMethod uint8

const (
	// ResampleMean combines merged points by arithmetic mean.
	ResampleMean ResampleMethod = iota
	// ResampleRange is declared but has no implementation; using it
	// fails with ErrUnsupportedResample. Preserved as an explicit gap
	// rather than given invented semantics.
	ResampleRange
)

// ErrUnsupportedResample reports a resample method with no defined
// semantics.
var ErrUnsupportedResample = errors.New("timeseries: unsupported resample method")

// Resample re-expresses a bucketed series recorded at the calendar
// resolution of `from` at the resolution of `to`. Both resolutions are
// anchored at start: point i of the input covers the i-th `from` step
// after start.
//
// When `to` spans more calendar time, source points are merged in
// groups bounded by `to` step boundaries (calendar boundaries, not
// fixed counts) and combined per method. When `to` spans less, each
// source value repeats across every `to` step it overlaps. When the
// two resolutions coincide for the given start, the input is returned
// unchanged.
func Resample(series timechart.Series, start time.Time, from, to Scope, method ResampleMethod) (timechart.Series, error) {
	fromUnit := from.step()
	toUnit := to.step()

	fromEnd := fromUnit.advance(start)
	toEnd := toUnit.advance(start)
	switch {
	case fromEnd.Equal(toEnd):
		return series, nil
	case toEnd.After(fromEnd):
		return mergeDown(series, start, fromUnit, toUnit, method)
	default:
		return expand(series, start, fromUnit, toUnit), nil
	}
}

// mergeDown walks source points in calendar groups bounded by the
// target unit and combines each group.
func mergeDown(series timechart.Series, start time.Time, fromUnit, toUnit stepUnit, method ResampleMethod) (timechart.Series, error) {
	if method != ResampleMean {
		return timechart.Series{}, ErrUnsupportedResample
	}
	points := series.Points()
	out := make([]timechart.Point, 0, len(points))
	srcTime := start
	groupEnd := toUnit.advance(start)
	i := 0
	for i < len(points) {
		sum := 0.0
		n := 0
		for i < len(points) && srcTime.Before(groupEnd) {
			sum += points[i].Y
			n++
			i++
			srcTime = fromUnit.advance(srcTime)
		}
		if n > 0 {
			out = append(out, timechart.Point{X: float64(len(out)), Y: sum / float64(n)})
		}
		groupEnd = toUnit.advance(groupEnd)
	}
	return timechart.NewSeries(series.Name, series.Style, out), nil
}

// expand repeats each source value across every target step its
// calendar span overlaps.
func expand(series timechart.Series, start time.Time, fromUnit, toUnit stepUnit) timechart.Series {
	var out []timechart.Point
	srcTime := start
	for _, p := range series.Points() {
		next := fromUnit.advance(srcTime)
		for t := srcTime; t.Before(next); t = toUnit.advance(t) {
			out = append(out, timechart.Point{X: float64(len(out)), Y: p.Y})
		}
		srcTime = next
	}
	return timechart.NewSeries(series.Name, series.Style, out)
}
