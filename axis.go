package timechart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// axisEpsilon bounds the floating point slack tolerated when deciding
// whether a value sits exactly on a step multiple.
const axisEpsilon = 1e-9

type baselineKind uint8

const (
	baselineZero baselineKind = iota
	baselineMinimum
	baselineClamped
)

// Baseline selects how an axis derives its lower bound from the data
// minimum.
type Baseline struct {
	kind  baselineKind
	clamp float64
}

// BaselineZero anchors the axis at zero unless the data dips below it.
func BaselineZero() Baseline { return Baseline{kind: baselineZero} }

// BaselineMinimum uses the data minimum as-is.
func BaselineMinimum() Baseline { return Baseline{kind: baselineMinimum} }

// BaselineClamped caps the lower bound at the given value: the bound
// is the data minimum or upper, whichever is smaller.
func BaselineClamped(upper float64) Baseline {
	return Baseline{kind: baselineClamped, clamp: upper}
}

type toplineKind uint8

const (
	toplineMaximum toplineKind = iota
	toplineClamped
)

// Topline selects how an axis derives its upper bound from the data
// maximum.
type Topline struct {
	kind  toplineKind
	clamp float64
}

// ToplineMaximum uses the data maximum as-is.
func ToplineMaximum() Topline { return Topline{kind: toplineMaximum} }

// ToplineClamped floors the upper bound at the given value: the bound
// is the data maximum or lower, whichever is larger.
func ToplineClamped(lower float64) Topline {
	return Topline{kind: toplineClamped, clamp: lower}
}

type stepKind uint8

const (
	stepAutomatic stepKind = iota
	stepFixed
)

// Step selects the axis step size policy.
type Step struct {
	kind      stepKind
	fixed     float64
	preferred int
}

// StepFixed uses the given step size verbatim.
func StepFixed(size float64) Step { return Step{kind: stepFixed, fixed: size} }

// StepAutomatic picks a step size whose resulting tick count is as
// close as possible to preferred. preferred must be at least 1.
func StepAutomatic(preferred int) Step {
	return Step{kind: stepAutomatic, preferred: max(preferred, 1)}
}

type scrollingKind uint8

const (
	scrollNone scrollingKind = iota
	scrollSegmented
	scrollContinuous
)

// Scrolling selects how a chart pages through data wider than one
// visible window.
type Scrolling struct {
	kind         scrollingKind
	visibleRange float64
}

// ScrollNone shows the whole dataset at once.
func ScrollNone() Scrolling { return Scrolling{kind: scrollNone} }

// ScrollSegmented pages through the data in discrete windows of the
// given x width.
func ScrollSegmented(visibleRange float64) Scrolling {
	return Scrolling{kind: scrollSegmented, visibleRange: visibleRange}
}

// ScrollContinuous pans freely with the given visible x width.
func ScrollContinuous(visibleRange float64) Scrolling {
	return Scrolling{kind: scrollContinuous, visibleRange: visibleRange}
}

// VisibleRange returns the window width for segmented or continuous
// scrolling, or 0 when scrolling is disabled.
func (s Scrolling) VisibleRange() float64 { return s.visibleRange }

// Segmented reports whether the policy pages in discrete windows.
func (s Scrolling) Segmented() bool { return s.kind == scrollSegmented }

// AxisConfig bundles the policies governing one axis.
type AxisConfig struct {
	Baseline  Baseline
	Topline   Topline
	Step      Step
	Scrolling Scrolling
	Formatter Formatter
}

// AxisData is the computed form of one axis: the step-aligned bounds,
// the step size, and one label per tick from LowerBound to UpperBound
// inclusive.
type AxisData struct {
	LowerBound float64
	UpperBound float64
	StepSize   float64
	Labels     []string
}

// Ticks returns the number of labeled ticks on the axis.
func (a AxisData) Ticks() int { return len(a.Labels) }

func ceil[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Ceil(float64(a)))
}

func floor[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Floor(float64(a)))
}

func aboutEqual(a, b float64) bool {
	scale := max(1, math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= axisEpsilon*scale
}

// stepFloor rounds v down to a multiple of step, snapping to the
// nearest multiple when v already sits on one within epsilon.
func stepFloor(v, step float64) float64 {
	q := v / step
	if aboutEqual(q, math.Round(q)) {
		return math.Round(q) * step
	}
	return floor(q) * step
}

// stepCeil rounds v up to a multiple of step, snapping like stepFloor.
func stepCeil(v, step float64) float64 {
	q := v / step
	if aboutEqual(q, math.Round(q)) {
		return math.Round(q) * step
	}
	return ceil(q) * step
}

// automaticStepCandidates are the mantissas tried by automatic step
// selection, scaled by the magnitude of the axis distance.
var automaticStepCandidates = []float64{0.1, 0.5, 1, 2, 2.5, 5, 10}

// ComputeAxisParameters derives the bounds, step size, and tick labels
// for an axis spanning [minimumValue, maximumValue] under cfg. It is
// pure: identical inputs always produce identical results.
func ComputeAxisParameters(minimumValue, maximumValue float64, cfg AxisConfig) AxisData {
	var lower float64
	switch cfg.Baseline.kind {
	case baselineZero:
		lower = min(0, minimumValue)
	case baselineMinimum:
		lower = minimumValue
	case baselineClamped:
		lower = min(minimumValue, cfg.Baseline.clamp)
	}

	var upper float64
	switch cfg.Topline.kind {
	case toplineMaximum:
		upper = maximumValue
	case toplineClamped:
		upper = max(maximumValue, cfg.Topline.clamp)
	}

	var step float64
	switch cfg.Step.kind {
	case stepFixed:
		step = cfg.Step.fixed
		if step <= 0 {
			// A non-positive step cannot produce ticks; normalize to 1
			// the way automatic selection clamps its preferred count.
			step = 1
		}
	case stepAutomatic:
		step = automaticStep(lower, upper, cfg.Step.preferred)
	}

	// Walk tick multiples from the outward-rounded lower bound to the
	// outward-rounded upper bound, inclusive of both ends.
	alignedLower := stepFloor(lower, step)
	alignedUpper := stepCeil(upper, step)
	tickCount := int(math.Round((alignedUpper - alignedLower) / step))
	labels := make([]string, 0, tickCount+1)
	current := alignedLower
	for i := 0; i < tickCount; i++ {
		labels = append(labels, cfg.Formatter.Format(current))
		current += step
	}
	// The final tick lands on the rounded upper bound; emitting it
	// outside the loop keeps it present even when the true upper bound
	// sits exactly on a step multiple.
	labels = append(labels, cfg.Formatter.Format(alignedUpper))

	return AxisData{
		LowerBound: alignedLower,
		UpperBound: alignedUpper,
		StepSize:   step,
		Labels:     labels,
	}
}

// automaticStep picks the candidate step whose tick count over
// [lower, upper] is closest to preferred, breaking ties toward the
// smaller step.
func automaticStep(lower, upper float64, preferred int) float64 {
	distance := upper - lower
	if distance == 0 {
		// Degenerate range; avoid log10(0) and division by zero.
		distance = 1
	}
	magnitude := floor(math.Log10(distance))
	scale := math.Pow(10, magnitude)

	best := automaticStepCandidates[0] * scale
	bestDiff := math.Inf(1)
	for _, c := range automaticStepCandidates {
		candidate := c * scale
		ticks := math.Round((stepCeil(upper, candidate) - stepFloor(lower, candidate)) / candidate)
		diff := math.Abs(ticks - float64(preferred))
		// Candidates ascend, so a strict comparison keeps the smaller
		// step on ties.
		if diff < bestDiff {
			bestDiff = diff
			best = candidate
		}
	}
	return best
}
