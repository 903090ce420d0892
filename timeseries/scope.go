package timeseries

import (
	"fmt"
	"time"
)

// Scope is a named calendar granularity controlling bucket width and
// tick formatting. It is a closed enumeration: passing a value outside
// the declared constants to any function in this package is a
// programming error and panics.
type Scope uint8

const (
	ScopeDay Scope = iota
	ScopeWeek
	ScopeMonth
	ScopeThreeMonths
	ScopeSixMonths
	ScopeYear
)

func (s Scope) String() string {
	switch s {
	case ScopeDay:
		return "day"
	case ScopeWeek:
		return "week"
	case ScopeMonth:
		return "month"
	case ScopeThreeMonths:
		return "threeMonths"
	case ScopeSixMonths:
		return "sixMonths"
	case ScopeYear:
		return "year"
	}
	return fmt.Sprintf("Scope(%d)", uint8(s))
}

// stepUnit is the calendar width of one bucket under a scope.
type stepUnit uint8

const (
	stepHour stepUnit = iota
	stepDay
	stepMonth
)

// step returns the bucket width for the scope: hours within a day,
// days within a week or month, months within longer scopes.
func (s Scope) step() stepUnit {
	switch s {
	case ScopeDay:
		return stepHour
	case ScopeWeek, ScopeMonth:
		return stepDay
	case ScopeThreeMonths, ScopeSixMonths, ScopeYear:
		return stepMonth
	}
	panic("timeseries: unsupported scope " + s.String())
}

// TickCount returns the number of axis ticks a chart shows for the
// scope. Fixed lookup, not configurable per instance.
func (s Scope) TickCount() int {
	switch s {
	case ScopeDay:
		return 24
	case ScopeWeek:
		return 7
	case ScopeMonth:
		return 32
	case ScopeThreeMonths:
		return 3
	case ScopeSixMonths:
		return 6
	case ScopeYear:
		return 12
	}
	panic("timeseries: unsupported scope " + s.String())
}

// advance moves t forward by one bucket step of the unit.
func (u stepUnit) advance(t time.Time) time.Time {
	switch u {
	case stepHour:
		return t.Add(time.Hour)
	case stepDay:
		return t.AddDate(0, 0, 1)
	case stepMonth:
		return t.AddDate(0, 1, 0)
	}
	panic("timeseries: unsupported step unit")
}

// alignStart returns the start of the calendar unit containing t for
// the scope: start of day, Monday-based week, month, quarter,
// half-year, or year.
func (s Scope) alignStart(t time.Time) time.Time {
	y, m, d := t.Date()
	switch s {
	case ScopeDay:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	case ScopeWeek:
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		// Monday-based: Sunday counts as six days into the week.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case ScopeMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case ScopeThreeMonths:
		quarterStart := m - (m-1)%3
		return time.Date(y, quarterStart, 1, 0, 0, 0, 0, t.Location())
	case ScopeSixMonths:
		halfStart := m - (m-1)%6
		return time.Date(y, halfStart, 1, 0, 0, 0, 0, t.Location())
	case ScopeYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	panic("timeseries: unsupported scope " + s.String())
}

// alignEnd returns the end of the calendar unit containing t, i.e. the
// start of the following unit.
func (s Scope) alignEnd(t time.Time) time.Time {
	start := s.alignStart(t)
	switch s {
	case ScopeDay:
		return start.AddDate(0, 0, 1)
	case ScopeWeek:
		return start.AddDate(0, 0, 7)
	case ScopeMonth:
		return start.AddDate(0, 1, 0)
	case ScopeThreeMonths:
		return start.AddDate(0, 3, 0)
	case ScopeSixMonths:
		return start.AddDate(0, 6, 0)
	case ScopeYear:
		return start.AddDate(1, 0, 0)
	}
	panic("timeseries: unsupported scope " + s.String())
}
