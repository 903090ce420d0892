package timeseries

import (
	"testing"
	"time"
)

func TestBucketizeDay(t *testing.T) {
	start := time.Date(2023, time.March, 10, 9, 30, 0, 0, time.UTC)
	end := time.Date(2023, time.March, 10, 15, 0, 0, 0, time.UTC)
	starts, normStart, normEnd := Bucketize(ScopeDay, start, end)

	wantStart := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := wantStart.AddDate(0, 0, 1)
	if !normStart.Equal(wantStart) || !normEnd.Equal(wantEnd) {
		t.Errorf("expected normalized interval [%v, %v], got [%v, %v]", wantStart, wantEnd, normStart, normEnd)
	}
	if len(starts) != 24 {
		t.Fatalf("expected 24 hourly buckets, got %d", len(starts))
	}
	for i, b := range starts {
		if b == nil {
			t.Fatalf("day scope should not emit nil slots, slot %d is nil", i)
		}
		want := wantStart.Add(time.Duration(i) * time.Hour)
		if !b.Equal(want) {
			t.Errorf("bucket %d = %v, expected %v", i, *b, want)
		}
	}
}

func TestBucketizeWeekMondayAligned(t *testing.T) {
	// 2023-01-04 is a Wednesday; its week starts Monday 2023-01-02.
	at := time.Date(2023, time.January, 4, 10, 0, 0, 0, time.UTC)
	starts, normStart, normEnd := Bucketize(ScopeWeek, at, at)

	monday := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !normStart.Equal(monday) {
		t.Errorf("expected week start %v, got %v", monday, normStart)
	}
	if !normEnd.Equal(monday.AddDate(0, 0, 7)) {
		t.Errorf("expected week end %v, got %v", monday.AddDate(0, 0, 7), normEnd)
	}
	if len(starts) != 7 {
		t.Errorf("expected 7 daily buckets, got %d", len(starts))
	}

	// A Sunday belongs to the week starting the previous Monday.
	sunday := time.Date(2023, time.January, 8, 0, 0, 0, 0, time.UTC)
	_, normStart, _ = Bucketize(ScopeWeek, sunday, sunday)
	if !normStart.Equal(monday) {
		t.Errorf("expected sunday to align to %v, got %v", monday, normStart)
	}
}

func TestBucketizeMonthPadding(t *testing.T) {
	start := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC)
	starts, normStart, normEnd := Bucketize(ScopeMonth, start, end)

	if !normStart.Equal(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected january start, got %v", normStart)
	}
	if !normEnd.Equal(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected march start as end, got %v", normEnd)
	}
	// January (31 days) and February (28 days) each pad to 32 slots.
	if len(starts) != 64 {
		t.Fatalf("expected 64 slots, got %d", len(starts))
	}
	if len(starts)%monthSlotWidth != 0 {
		t.Errorf("slot count %d is not a multiple of %d", len(starts), monthSlotWidth)
	}
	if starts[30] == nil || !starts[30].Equal(time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected slot 30 to be january 31")
	}
	if starts[31] != nil {
		t.Errorf("expected slot 31 to be a nil pad after january")
	}
	if starts[32] == nil || !starts[32].Equal(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected slot 32 to be february 1")
	}
	for i := 60; i < 64; i++ {
		if starts[i] != nil {
			t.Errorf("expected slot %d to be a nil pad after february", i)
		}
	}
}

func TestBucketizeMonthlyScopes(t *testing.T) {
	at := time.Date(2023, time.May, 20, 0, 0, 0, 0, time.UTC)
	type scopecase struct {
		scope   Scope
		start   time.Time
		buckets int
	}
	for _, sc := range []scopecase{
		{scope: ScopeThreeMonths, start: time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), buckets: 3},
		{scope: ScopeSixMonths, start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), buckets: 6},
		{scope: ScopeYear, start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), buckets: 12},
	} {
		starts, normStart, _ := Bucketize(sc.scope, at, at)
		if !normStart.Equal(sc.start) {
			t.Errorf("%v: expected aligned start %v, got %v", sc.scope, sc.start, normStart)
		}
		if len(starts) != sc.buckets {
			t.Errorf("%v: expected %d monthly buckets, got %d", sc.scope, sc.buckets, len(starts))
		}
	}
}

func TestBucketizeDegenerateInterval(t *testing.T) {
	a := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)
	b := a.AddDate(0, 0, -3)
	// End before start normalizes by swapping rather than failing.
	starts, normStart, normEnd := Bucketize(ScopeWeek, a, b)
	if normEnd.Before(normStart) {
		t.Errorf("normalized interval is inverted: [%v, %v]", normStart, normEnd)
	}
	if len(starts) == 0 {
		t.Errorf("expected buckets for the swapped interval")
	}
}
