package timeseries

import "time"

// monthSlotWidth is the fixed number of day slots every calendar month
// occupies under the month scope. Padding each month to this width
// keeps x positions aligned across month-to-month transitions
// regardless of the actual day count.
const monthSlotWidth = 32

// Bucketize expands [start, end] into the calendar-aligned bucket
// start instants for the scope, together with the normalized interval
// spanning whole calendar units. A nil entry is a placeholder slot
// holding no instant; under the month scope every month's day run is
// right-padded with nils to a multiple of 32. Consumers must treat nil
// entries as gaps.
//
// A degenerate interval with end before start is normalized by
// swapping the endpoints rather than rejected.
func Bucketize(scope Scope, start, end time.Time) (starts []*time.Time, normStart, normEnd time.Time) {
	if end.Before(start) {
		start, end = end, start
	}
	normStart = scope.alignStart(start)
	normEnd = scope.alignEnd(end)

	unit := scope.step()
	if scope == ScopeMonth {
		starts = monthPaddedBuckets(normStart, normEnd)
		return starts, normStart, normEnd
	}
	for t := normStart; t.Before(normEnd); t = unit.advance(t) {
		instant := t
		starts = append(starts, &instant)
	}
	return starts, normStart, normEnd
}

// monthPaddedBuckets emits one slot per day and pads each month to
// monthSlotWidth slots.
func monthPaddedBuckets(normStart, normEnd time.Time) []*time.Time {
	var starts []*time.Time
	daysInMonth := 0
	month := normStart.Month()
	pad := func() {
		for daysInMonth%monthSlotWidth != 0 {
			starts = append(starts, nil)
			daysInMonth++
		}
	}
	for t := normStart; t.Before(normEnd); t = t.AddDate(0, 0, 1) {
		if t.Month() != month {
			pad()
			month = t.Month()
			daysInMonth = 0
		}
		instant := t
		starts = append(starts, &instant)
		daysInMonth++
	}
	pad()
	return starts
}
