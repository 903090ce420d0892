package timeseries

import (
	"time"

	"git.sr.ht/~cgenuity/timechart"
)

// BuildSeries aggregates src onto the bucket grid for scope over
// [start, end]. Each resulting point carries its 0-based bucket index
// as x; buckets where the source reports no value produce no point.
// Nil (padding) slots are skipped, with each bucket's combine interval
// running forward to the next non-nil boundary.
func BuildSeries(name string, style timechart.Style, src Source, scope Scope, start, end time.Time) timechart.Series {
	starts, _, normEnd := Bucketize(scope, start, end)
	var points []timechart.Point
	for i, bucketStart := range starts {
		if bucketStart == nil {
			continue
		}
		bucketEnd := normEnd
		for j := i + 1; j < len(starts); j++ {
			if starts[j] != nil {
				bucketEnd = *starts[j]
				break
			}
		}
		if v, ok := src.CombinedValue(*bucketStart, bucketEnd); ok {
			points = append(points, timechart.Point{X: float64(i), Y: v})
		}
	}
	return timechart.NewSeries(name, style, points)
}

// Build aggregates several named sources onto a shared bucket grid and
// wraps them in a chart snapshot ready for axis computation and
// segmentation.
func Build(cfg timechart.Config, scope Scope, start, end time.Time, sources []SourceSpec) timechart.Data {
	series := make([]timechart.Series, len(sources))
	for i, spec := range sources {
		series[i] = BuildSeries(spec.Name, spec.Style, spec.Source, scope, start, end)
	}
	return timechart.NewData(cfg, series)
}

// SourceSpec names one source within a Build call.
type SourceSpec struct {
	Name   string
	Style  timechart.Style
	Source Source
}
