// Package timeseries adapts sparse time-keyed samples into the point
// series consumed by the chart engine: point and interval queries over
// raw samples, calendar-aligned bucket grids per display scope, and
// resampling between calendar resolutions.
package timeseries

import (
	"slices"
	"time"
)

// Sample is one raw measurement.
type Sample struct {
	Time  time.Time
	Value float64
}

// sampleSet stores samples sorted ascending by time. All data source
// variants share it; they differ only in query semantics.
type sampleSet struct {
	times  []time.Time
	values []float64
}

func newSampleSet(samples []Sample) sampleSet {
	sorted := slices.Clone(samples)
	slices.SortStableFunc(sorted, func(a, b Sample) int {
		return a.Time.Compare(b.Time)
	})
	s := sampleSet{
		times:  make([]time.Time, len(sorted)),
		values: make([]float64, len(sorted)),
	}
	for i, sample := range sorted {
		s.times[i] = sample.Time
		s.values[i] = sample.Value
	}
	return s
}

func (s sampleSet) empty() bool { return len(s.times) == 0 }

// interval returns the span from the first to the last sample, or zero
// times when the set is empty.
func (s sampleSet) interval() (start, end time.Time) {
	if s.empty() {
		return time.Time{}, time.Time{}
	}
	return s.times[0], s.times[len(s.times)-1]
}

// searchTime returns the index of the first sample at or after t.
func (s sampleSet) searchTime(t time.Time) int {
	lo, hi := 0, len(s.times)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.times[mid].Before(t) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
