package timechart

import (
	"fmt"
	"sort"
)

// Segments windows a full Data snapshot into fixed-width pages for
// segmented scrolling. Computed subsets are cached per segment index;
// the cache is keyed by an explicit generation counter and discarded
// wholesale whenever the full dataset is replaced.
type Segments struct {
	full         Data
	visibleRange float64
	generation   uint64

	cache map[int]Data

	// firstXStep is the x step size computed for the first segment
	// ever materialized. Every later subset inherits it so that tick
	// spacing stays uniform across pages.
	firstXStep    float64
	hasFirstXStep bool
}

// NewSegments wraps full, which must be configured for segmented
// scrolling with a positive visible range. Anything else is a caller
// contract violation and panics.
func NewSegments(full Data) *Segments {
	scroll := full.Config.XAxis.Scrolling
	if !scroll.Segmented() || scroll.VisibleRange() <= 0 {
		panic("timechart: Segments requires segmented scrolling with a positive visible range")
	}
	return &Segments{
		full:         full,
		visibleRange: scroll.VisibleRange(),
		cache:        make(map[int]Data),
	}
}

// SetData replaces the full dataset, bumps the cache generation, and
// drops every cached subset.
func (s *Segments) SetData(full Data) {
	scroll := full.Config.XAxis.Scrolling
	if !scroll.Segmented() || scroll.VisibleRange() <= 0 {
		panic("timechart: Segments requires segmented scrolling with a positive visible range")
	}
	s.full = full
	s.visibleRange = scroll.VisibleRange()
	s.generation++
	s.cache = make(map[int]Data)
	s.hasFirstXStep = false
}

// Full returns the wrapped dataset.
func (s *Segments) Full() Data { return s.full }

// VisibleRange returns the x width of one segment window.
func (s *Segments) VisibleRange() float64 { return s.visibleRange }

// Generation identifies the current dataset epoch. Cached subsets from
// earlier generations are never served.
func (s *Segments) Generation() uint64 { return s.generation }

// SegmentFor returns the index of the segment containing x.
func (s *Segments) SegmentFor(x float64) int {
	return int(floor(x / s.visibleRange))
}

// LastSegment returns the highest segment index holding data.
func (s *Segments) LastSegment() int {
	if s.full.Empty() {
		return 0
	}
	return s.SegmentFor(s.full.Computed.MaxX)
}

// Subset returns the windowed snapshot for segment index. Segment i
// covers [i*range, (i+1)*range). When ref is non-nil its y axis is
// inherited verbatim so that consecutive segments share a y scale
// during transitions; otherwise the y axis is computed from the
// subset itself. Transient requests bypass the cache, for previews
// that may be discarded.
func (s *Segments) Subset(index int, ref *Computed, transient bool) Data {
	if index < 0 {
		panic(fmt.Sprintf("timechart: negative segment index %d", index))
	}
	if cached, ok := s.cache[index]; ok {
		return cached
	}

	lo := float64(index) * s.visibleRange
	hi := lo + s.visibleRange

	subsetSeries := make([]Series, len(s.full.Series))
	var adjacent map[string]Adjacent
	if considerAdjacentForBounds(s.full.Config.Kind) {
		adjacent = make(map[string]Adjacent, len(s.full.Series))
	}
	for i, series := range s.full.Series {
		points := series.Points()
		// points are sorted by x, so the window is one contiguous run.
		start := sort.Search(len(points), func(j int) bool { return points[j].X >= lo })
		end := sort.Search(len(points), func(j int) bool { return points[j].X >= hi })
		subsetSeries[i] = series.withPoints(points[start:end])

		if adjacent != nil {
			var adj Adjacent
			if start > 0 {
				before := points[start-1]
				adj.Before = &before
			}
			if end < len(points) {
				after := points[end]
				adj.After = &after
			}
			adjacent[series.Name] = adj
		}
	}

	var xStep *float64
	if s.hasFirstXStep {
		xStep = &s.firstXStep
	}
	var yAxis *AxisData
	if ref != nil {
		y := ref.Y
		yAxis = &y
	}
	subset := newDerivedData(s.full.Config, subsetSeries, adjacent, yAxis, xStep)
	if !s.hasFirstXStep {
		s.firstXStep = subset.Computed.X.StepSize
		s.hasFirstXStep = true
	}
	if !transient {
		s.cache[index] = subset
	}
	return subset
}
