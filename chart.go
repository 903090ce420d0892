package timechart

import "slices"

// Kind identifies the chart variant a Data snapshot feeds. Behavior
// differences between variants are expressed as free functions
// dispatching on the kind rather than overridable configuration.
type Kind uint8

const (
	KindBar Kind = iota
	KindLine
)

// considerAdjacentForBounds reports whether boundary points just
// outside a segment window participate in y-bound computation. Line
// charts need them so that connecting lines entering a window do not
// clip; bars never draw across window edges.
func considerAdjacentForBounds(k Kind) bool {
	return k == KindLine
}

// Config is the shared chart configuration record.
type Config struct {
	Kind        Kind
	XAxis       AxisConfig
	YAxis       AxisConfig
	NoDataLabel string
}

// Adjacent holds the boundary points immediately outside a segment
// window for one series: the last point before the window start and
// the first point past the window end. Either may be nil.
type Adjacent struct {
	Before *Point
	After  *Point
}

// Computed is the derived, render-ready form of a Data snapshot.
type Computed struct {
	MinX, MaxX float64
	MinY, MaxY float64
	X, Y       AxisData
	// XValues lists every distinct x coordinate across all series,
	// ascending.
	XValues []float64
	// AdjacentPoints maps series name to the window-boundary points
	// captured for cross-segment line continuity. Empty for full
	// (unwindowed) data.
	AdjacentPoints map[string]Adjacent
}

// Data is an immutable chart snapshot: configuration, series, and the
// structures computed from them. Reconstructed, never mutated, when
// the underlying series or window changes.
type Data struct {
	Config   Config
	Series   []Series
	Computed Computed
}

// NewData builds a snapshot over the full dataset and computes its
// axis parameters from the combined series extrema.
func NewData(cfg Config, series []Series) Data {
	return newDerivedData(cfg, series, nil, nil, nil)
}

// newDerivedData builds a snapshot with optional inherited axis data.
// adjacent carries window-boundary points for subsets. When yAxis is
// non-nil it is adopted verbatim instead of being recomputed, and when
// xStep is non-nil it overrides the x axis step policy; the segment
// engine uses both to keep consecutive segments on a shared scale.
func newDerivedData(cfg Config, series []Series, adjacent map[string]Adjacent, yAxis *AxisData, xStep *float64) Data {
	d := Data{
		Config: cfg,
		Series: series,
	}
	d.Computed = computeChartData(cfg, series, adjacent, yAxis, xStep)
	return d
}

// NoDataText returns the configured placeholder label and true when
// the snapshot holds no points; hosts draw it in place of the plot.
func (d Data) NoDataText() (string, bool) {
	if d.Empty() {
		return d.Config.NoDataLabel, true
	}
	return "", false
}

// Empty reports whether the snapshot holds no points at all.
func (d Data) Empty() bool {
	for _, s := range d.Series {
		if !s.Empty() {
			return false
		}
	}
	return true
}

func computeChartData(cfg Config, series []Series, adjacent map[string]Adjacent, yAxis *AxisData, xStep *float64) Computed {
	c := Computed{AdjacentPoints: adjacent}

	seen := false
	for _, s := range series {
		if s.Empty() {
			continue
		}
		minX, maxX, minY, maxY := s.Bounds()
		if !seen {
			c.MinX, c.MaxX, c.MinY, c.MaxY = minX, maxX, minY, maxY
			seen = true
			continue
		}
		c.MinX = min(c.MinX, minX)
		c.MaxX = max(c.MaxX, maxX)
		c.MinY = min(c.MinY, minY)
		c.MaxY = max(c.MaxY, maxY)
	}
	if considerAdjacentForBounds(cfg.Kind) {
		for _, adj := range adjacent {
			for _, p := range []*Point{adj.Before, adj.After} {
				if p == nil {
					continue
				}
				if !seen {
					c.MinY, c.MaxY = p.Y, p.Y
					seen = true
					continue
				}
				c.MinY = min(c.MinY, p.Y)
				c.MaxY = max(c.MaxY, p.Y)
			}
		}
	}

	c.XValues = sortedUniqueXValues(series)

	xCfg := cfg.XAxis
	if xStep != nil {
		xCfg.Step = StepFixed(*xStep)
	}
	c.X = ComputeAxisParameters(c.MinX, c.MaxX, xCfg)
	if yAxis != nil {
		c.Y = *yAxis
	} else {
		c.Y = ComputeAxisParameters(c.MinY, c.MaxY, cfg.YAxis)
	}
	return c
}

func sortedUniqueXValues(series []Series) []float64 {
	var xs []float64
	for _, s := range series {
		for _, p := range s.Points() {
			xs = append(xs, p.X)
		}
	}
	slices.Sort(xs)
	return slices.Compact(xs)
}
