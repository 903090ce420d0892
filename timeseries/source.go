package timeseries

import "time"

// Source exposes point and interval queries over a set of samples.
// Absence of data is reported through the boolean return, never an
// error: callers check it and fall back to their configured "no data"
// treatment.
//
// The interval convention of CombinedValue differs between variants:
// SummingSource combines over the half-open [start, end) while
// InterpolatingSource and AveragingSource combine over the closed
// [start, end]. The two contracts are deliberately distinct per
// source kind and must not be unified.
type Source interface {
	// ValueAt resolves the value at one instant.
	ValueAt(t time.Time) (float64, bool)
	// CombinedValue folds the samples within an interval into one
	// value.
	CombinedValue(start, end time.Time) (float64, bool)
	// Range reports the value extent over an interval. For summing
	// sources the pair is (min, max); for interpolating sources it is
	// (value at start, value at end) and may be descending.
	Range(start, end time.Time) (float64, float64, bool)
	// Interval returns the span from the first to the last sample.
	Interval() (start, end time.Time)
}

// InterpolatingSource answers point queries by linear interpolation
// between the nearest enclosing samples. Queries outside the sample
// span return no value; there is no extrapolation.
type InterpolatingSource struct {
	set sampleSet
}

var _ Source = (*InterpolatingSource)(nil)

// NewInterpolatingSource sorts samples ascending by time. The input
// slice is not retained.
func NewInterpolatingSource(samples []Sample) *InterpolatingSource {
	return &InterpolatingSource{set: newSampleSet(samples)}
}

func (s *InterpolatingSource) Interval() (start, end time.Time) {
	return s.set.interval()
}

// ValueAt returns the sample value when t matches a sample exactly
// (including the final sample boundary), the linearly interpolated
// value when t falls strictly between two samples, and no value when t
// lies outside the sample span.
func (s *InterpolatingSource) ValueAt(t time.Time) (float64, bool) {
	if s.set.empty() {
		return 0, false
	}
	first, last := s.set.interval()
	if t.Before(first) || t.After(last) {
		return 0, false
	}
	i := s.set.searchTime(t)
	if s.set.times[i].Equal(t) {
		return s.set.values[i], true
	}
	t0, t1 := s.set.times[i-1], s.set.times[i]
	v0, v1 := s.set.values[i-1], s.set.values[i]
	elapsed := float64(t.Sub(t0)) / float64(t1.Sub(t0))
	return v0 + elapsed*(v1-v0), true
}

// CombinedValue returns the arithmetic mean of the sample values in
// the closed interval [start, end]. When the interval contains no
// samples but both endpoints interpolate, it returns the mean of the
// two endpoint values; otherwise no value.
func (s *InterpolatingSource) CombinedValue(start, end time.Time) (float64, bool) {
	lo := s.set.searchTime(start)
	sum := 0.0
	n := 0
	for i := lo; i < len(s.set.times) && !s.set.times[i].After(end); i++ {
		sum += s.set.values[i]
		n++
	}
	if n > 0 {
		return sum / float64(n), true
	}
	v0, ok0 := s.ValueAt(start)
	v1, ok1 := s.ValueAt(end)
	if !ok0 || !ok1 {
		return 0, false
	}
	return (v0 + v1) / 2, true
}

// Range returns the interpolated values at the interval endpoints, in
// interval order. The pair is not sorted: a falling series yields a
// descending pair.
func (s *InterpolatingSource) Range(start, end time.Time) (float64, float64, bool) {
	v0, ok0 := s.ValueAt(start)
	v1, ok1 := s.ValueAt(end)
	if !ok0 || !ok1 {
		return 0, 0, false
	}
	return v0, v1, true
}

// AveragingSource shares the interpolating query semantics; the
// distinct name records that its CombinedValue is the intended
// aggregate for mean-style series (temperatures, rates) as opposed to
// countable quantities.
type AveragingSource struct {
	InterpolatingSource
}

var _ Source = (*AveragingSource)(nil)

// NewAveragingSource sorts samples ascending by time. The input slice
// is not retained.
func NewAveragingSource(samples []Sample) *AveragingSource {
	return &AveragingSource{InterpolatingSource{set: newSampleSet(samples)}}
}

// SummingSource treats samples as countable quantities: point queries
// resolve only on exact timestamp matches and interval queries sum.
type SummingSource struct {
	set sampleSet
}

var _ Source = (*SummingSource)(nil)

// NewSummingSource sorts samples ascending by time. The input slice is
// not retained.
func NewSummingSource(samples []Sample) *SummingSource {
	return &SummingSource{set: newSampleSet(samples)}
}

func (s *SummingSource) Interval() (start, end time.Time) {
	return s.set.interval()
}

// ValueAt resolves only exact timestamp matches; sums are never
// interpolated.
func (s *SummingSource) ValueAt(t time.Time) (float64, bool) {
	if s.set.empty() {
		return 0, false
	}
	i := s.set.searchTime(t)
	if i < len(s.set.times) && s.set.times[i].Equal(t) {
		return s.set.values[i], true
	}
	return 0, false
}

// overlaps reports whether the half-open [start, end) touches the
// sample span.
func (s *SummingSource) overlaps(start, end time.Time) bool {
	if s.set.empty() {
		return false
	}
	first, last := s.set.interval()
	return end.After(first) && !start.After(last)
}

// CombinedValue sums the sample values in the half-open interval
// [start, end). An interval that overlaps the sample span but holds no
// samples sums to zero; an interval entirely outside the span has no
// value.
func (s *SummingSource) CombinedValue(start, end time.Time) (float64, bool) {
	if !s.overlaps(start, end) {
		return 0, false
	}
	sum := 0.0
	for i := s.set.searchTime(start); i < len(s.set.times) && s.set.times[i].Before(end); i++ {
		sum += s.set.values[i]
	}
	return sum, true
}

// Range returns the minimum and maximum raw sample value in the
// half-open interval [start, end), defaulting to (0, 0) when the
// interval overlaps the span but holds no samples.
func (s *SummingSource) Range(start, end time.Time) (float64, float64, bool) {
	if !s.overlaps(start, end) {
		return 0, 0, false
	}
	var (
		lo, hi float64
		seen   bool
	)
	for i := s.set.searchTime(start); i < len(s.set.times) && s.set.times[i].Before(end); i++ {
		v := s.set.values[i]
		if !seen {
			lo, hi = v, v
			seen = true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, true
}
