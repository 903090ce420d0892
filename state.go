package timechart

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// State owns the navigation position of one segmented chart: the
// current segment plus prefetched previous/next neighbors, the visible
// offset, and the y-axis labels currently on screen.
//
// Transitions run as an ordered sequence of discrete mutations
// (offset shift, axis swap, index commit), each followed by a call to
// the notify hook so that the host can animate between them. A new
// navigation request issued before the host settles simply overwrites
// the target state; there is no cancellation token.
//
// All methods must be called from the single goroutine that owns the
// chart; State does no locking.
type State struct {
	segments *Segments
	logger   log.Logger
	notify   func()

	index    int
	current  Data
	previous Data
	next     Data

	offset   float64
	displayY AxisData
}

// NewState builds navigation state over segments, positioned at
// segment 0. logger may be nil for silence; notify may be nil when the
// host polls instead of reacting to changes.
func NewState(segments *Segments, logger log.Logger, notify func()) *State {
	if segments == nil {
		panic("timechart: NewState requires a non-nil segment engine")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if notify == nil {
		notify = func() {}
	}
	s := &State{
		segments: segments,
		logger:   logger,
		notify:   notify,
	}
	s.jumpTo(0)
	return s
}

// Index returns the current segment index.
func (s *State) Index() int { return s.index }

// Current returns the snapshot for the current segment.
func (s *State) Current() Data { return s.current }

// Previous returns the prefetched snapshot preceding the current
// segment. It is empty at segment 0.
func (s *State) Previous() Data { return s.previous }

// Next returns the prefetched snapshot following the current segment.
func (s *State) Next() Data { return s.next }

// Offset returns the visible x offset the host should apply, in data
// units. Negative values reveal the next segment, positive the
// previous.
func (s *State) Offset() float64 { return s.offset }

// YAxisDisplay returns the y-axis parameters currently shown. During a
// transition it swaps to the incoming segment's parameters one phase
// before the index commits.
func (s *State) YAxisDisplay() AxisData { return s.displayY }

// Reload recomputes every held subset from the segment engine.
// Call after Segments.SetData.
func (s *State) Reload() {
	s.jumpTo(min(s.index, s.segments.LastSegment()))
	s.notify()
}

// Advance transitions to the next segment. Returns false without
// changing position when the next segment holds no data; the offset is
// still reset so that a partially dragged view snaps back.
func (s *State) Advance() bool {
	return s.transition(s.index + 1)
}

// Retreat transitions to the previous segment, with the same
// empty-target behavior as Advance.
func (s *State) Retreat() bool {
	if s.index == 0 {
		s.resetOffset()
		return false
	}
	return s.transition(s.index - 1)
}

// EnsureVisible jumps directly to the segment containing x, with no
// phased transition, refreshing the neighboring subsets and y-axis
// parameters synchronously.
func (s *State) EnsureVisible(x float64) {
	index := s.segments.SegmentFor(x)
	if index < 0 {
		index = 0
	}
	level.Debug(s.logger).Log("msg", "jumping to segment", "segment", index, "x", x)
	s.jumpTo(index)
	s.notify()
}

func (s *State) transition(target int) bool {
	incoming := s.neighbor(target)
	if incoming.Empty() {
		level.Debug(s.logger).Log("msg", "target segment empty", "segment", target)
		s.resetOffset()
		return false
	}
	level.Debug(s.logger).Log("msg", "transitioning", "from", s.index, "to", target)

	// Phase 1: shift the window to reveal the incoming segment.
	if target > s.index {
		s.offset = -s.segments.VisibleRange()
	} else {
		s.offset = s.segments.VisibleRange()
	}
	s.notify()

	// Phase 2: swap the axis labels to the incoming scale.
	s.displayY = incoming.Computed.Y
	s.notify()

	// Phase 3: commit the index, reset the offset, prefetch neighbors.
	if target > s.index {
		s.previous = s.current
		s.current = incoming
		s.next = s.segments.Subset(target+1, &s.current.Computed, false)
	} else {
		s.next = s.current
		s.current = incoming
		s.previous = s.prefetchPrevious(target)
	}
	s.index = target
	s.offset = 0
	s.notify()
	return true
}

// neighbor returns the already prefetched subset for target when it is
// directly adjacent, computing it fresh otherwise. Fresh computations
// inherit the current segment's y axis.
func (s *State) neighbor(target int) Data {
	switch target {
	case s.index + 1:
		return s.next
	case s.index - 1:
		return s.previous
	default:
		return s.segments.Subset(target, &s.current.Computed, false)
	}
}

func (s *State) prefetchPrevious(index int) Data {
	if index == 0 {
		return Data{Config: s.current.Config}
	}
	return s.segments.Subset(index-1, &s.current.Computed, false)
}

func (s *State) jumpTo(index int) {
	s.current = s.segments.Subset(index, nil, false)
	s.displayY = s.current.Computed.Y
	s.previous = s.prefetchPrevious(index)
	s.next = s.segments.Subset(index+1, &s.current.Computed, false)
	s.index = index
	s.offset = 0
}

func (s *State) resetOffset() {
	s.offset = 0
	s.notify()
}
