package timechart

import "testing"

func TestNearest(t *testing.T) {
	series := []Series{
		NewSeries("a", Style{}, []Point{{X: 0, Y: 0}, {X: 2, Y: 5}, {X: 4, Y: 1}}),
		NewSeries("b", Style{}, []Point{{X: 2, Y: 2}, {X: 3, Y: 9}}),
	}
	type testcase struct {
		name        string
		x, y        float64
		seriesIndex int
		pointIndex  int
	}
	for _, tc := range []testcase{
		{name: "exact hit", x: 4, y: 1, seriesIndex: 0, pointIndex: 2},
		{name: "smallest x distance wins", x: 3.1, y: 0, seriesIndex: 1, pointIndex: 1},
		{name: "x tie broken by y distance", x: 2, y: 3, seriesIndex: 1, pointIndex: 0},
		{name: "x tie broken by y toward other series", x: 2, y: 6, seriesIndex: 0, pointIndex: 1},
	} {
		ref, ok := Nearest(series, tc.x, tc.y)
		if !ok {
			t.Errorf("%s: expected a point", tc.name)
			continue
		}
		if ref.SeriesIndex != tc.seriesIndex || ref.PointIndex != tc.pointIndex {
			t.Errorf("%s: resolved series %d point %d, expected series %d point %d",
				tc.name, ref.SeriesIndex, ref.PointIndex, tc.seriesIndex, tc.pointIndex)
		}
	}

	if _, ok := Nearest(nil, 0, 0); ok {
		t.Errorf("no series should resolve no point")
	}
	if _, ok := Nearest([]Series{NewSeries("empty", Style{}, nil)}, 0, 0); ok {
		t.Errorf("empty series should resolve no point")
	}
}
