package timechart

import (
	"reflect"
	"testing"
)

func TestComputeAxisParametersFixedStep(t *testing.T) {
	type testcase struct {
		name     string
		min, max float64
		cfg      AxisConfig
		lower    float64
		upper    float64
		step     float64
		labels   []string
	}
	for _, tc := range []testcase{
		{
			name: "aligned bounds",
			min:  0, max: 10,
			cfg:    AxisConfig{Step: StepFixed(2)},
			lower:  0, upper: 10, step: 2,
			labels: []string{"0", "2", "4", "6", "8", "10"},
		},
		{
			name: "upper rounds outward",
			min:  0, max: 9,
			cfg:    AxisConfig{Step: StepFixed(2)},
			lower:  0, upper: 10, step: 2,
			labels: []string{"0", "2", "4", "6", "8", "10"},
		},
		{
			name: "minimum baseline keeps negative lower",
			min:  -3, max: 3,
			cfg:    AxisConfig{Baseline: BaselineMinimum(), Step: StepFixed(3)},
			lower:  -3, upper: 3, step: 3,
			labels: []string{"-3", "0", "3"},
		},
		{
			name: "zero baseline pulls positive data to zero",
			min:  4, max: 10,
			cfg:    AxisConfig{Baseline: BaselineZero(), Step: StepFixed(5)},
			lower:  0, upper: 10, step: 5,
			labels: []string{"0", "5", "10"},
		},
		{
			name: "clamped baseline caps the lower bound",
			min:  7, max: 10,
			cfg:    AxisConfig{Baseline: BaselineClamped(5), Step: StepFixed(5)},
			lower:  5, upper: 10, step: 5,
			labels: []string{"5", "10"},
		},
		{
			name: "clamped topline floors the upper bound",
			min:  0, max: 3,
			cfg:    AxisConfig{Topline: ToplineClamped(10), Step: StepFixed(5)},
			lower:  0, upper: 10, step: 5,
			labels: []string{"0", "5", "10"},
		},
		{
			name: "zero range yields a single label",
			min:  3, max: 3,
			cfg:    AxisConfig{Baseline: BaselineMinimum(), Step: StepFixed(1)},
			lower:  3, upper: 3, step: 1,
			labels: []string{"3"},
		},
		{
			name: "non-positive fixed step normalizes to one",
			min:  0, max: 3,
			cfg:    AxisConfig{Step: StepFixed(0)},
			lower:  0, upper: 3, step: 1,
			labels: []string{"0", "1", "2", "3"},
		},
	} {
		got := ComputeAxisParameters(tc.min, tc.max, tc.cfg)
		if got.LowerBound != tc.lower {
			t.Errorf("%s: lower bound %f, expected %f", tc.name, got.LowerBound, tc.lower)
		}
		if got.UpperBound != tc.upper {
			t.Errorf("%s: upper bound %f, expected %f", tc.name, got.UpperBound, tc.upper)
		}
		if got.StepSize != tc.step {
			t.Errorf("%s: step %f, expected %f", tc.name, got.StepSize, tc.step)
		}
		if !reflect.DeepEqual(got.Labels, tc.labels) {
			t.Errorf("%s: labels %v, expected %v", tc.name, got.Labels, tc.labels)
		}
	}
}

func TestFixedStepLabelCountProperty(t *testing.T) {
	// For a fixed-step axis with an aligned lower bound, the label
	// count is ceil((upper-lower)/step)+1.
	type testcase struct {
		min, max, step float64
	}
	for _, tc := range []testcase{
		{min: 0, max: 10, step: 2},
		{min: 0, max: 9, step: 2},
		{min: 0, max: 1, step: 0.25},
		{min: -10, max: 10, step: 5},
		{min: 100, max: 250, step: 50},
	} {
		got := ComputeAxisParameters(tc.min, tc.max, AxisConfig{
			Baseline: BaselineMinimum(),
			Step:     StepFixed(tc.step),
		})
		want := int(ceil((tc.max-tc.min)/tc.step)) + 1
		if got.Ticks() != want {
			t.Errorf("[%f, %f] step %f: %d labels, expected %d", tc.min, tc.max, tc.step, got.Ticks(), want)
		}
	}
}

func TestAutomaticStepSelection(t *testing.T) {
	type testcase struct {
		name      string
		min, max  float64
		preferred int
		step      float64
	}
	for _, tc := range []testcase{
		{name: "exact fit", min: 0, max: 100, preferred: 10, step: 10},
		{name: "coarse preference", min: 0, max: 100, preferred: 2, step: 50},
		{name: "tie prefers the smaller step", min: 0, max: 10, preferred: 6, step: 1},
		{name: "fractional steps below one", min: 0, max: 1, preferred: 10, step: 0.1},
	} {
		got := ComputeAxisParameters(tc.min, tc.max, AxisConfig{Step: StepAutomatic(tc.preferred)})
		if got.StepSize != tc.step {
			t.Errorf("%s: step %f, expected %f", tc.name, got.StepSize, tc.step)
		}
	}
}

func TestAutomaticStepIdempotent(t *testing.T) {
	cfg := AxisConfig{
		Baseline: BaselineZero(),
		Step:     StepAutomatic(7),
	}
	first := ComputeAxisParameters(3.7, 92.4, cfg)
	for i := 0; i < 5; i++ {
		again := ComputeAxisParameters(3.7, 92.4, cfg)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("recomputation %d differed: %+v != %+v", i, again, first)
		}
	}
}

func TestFormatter(t *testing.T) {
	if got := NumberFormatter(2).Format(3.14159); got != "3.14" {
		t.Errorf("number formatter produced %q", got)
	}
	if got := PercentFormatter(0).Format(0.5); got != "50%" {
		t.Errorf("percent formatter produced %q", got)
	}
	if got := CustomFormatter(func(v float64) string { return "x" }).Format(1); got != "x" {
		t.Errorf("custom formatter produced %q", got)
	}

	if !NumberFormatter(2).Equal(NumberFormatter(2)) {
		t.Errorf("identical number formatters should be equal")
	}
	if NumberFormatter(2).Equal(PercentFormatter(2)) {
		t.Errorf("different formatter kinds should not be equal")
	}
	// Callback formatters have no comparable identity, even against
	// themselves.
	custom := CustomFormatter(func(v float64) string { return "x" })
	if custom.Equal(custom) {
		t.Errorf("custom formatters are excluded from equality")
	}
}
