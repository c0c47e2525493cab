package model

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component.
type Date = time.Time

// Pivot is the two-digit year cutoff BAI2 inherits from its source format:
// a wire year of 70 or less is 20xx, anything greater is 19xx.
const Pivot = 70

// PivotYear expands a raw two-digit wire year (0-99) into a four-digit
// year using the BAI2 pivot rule.
func PivotYear(rawYear int) int {
	if rawYear <= Pivot {
		return 2000 + rawYear
	}
	return 1900 + rawYear
}

// ClockTime is an hour/minute time-of-day, independent of any date.
type ClockTime struct {
	Hour   int
	Minute int
}

// EndOfDaySentinel is the wire value (99, 99) denoting "end of day"; it
// must be resolved to a caller-supplied ClockTime before use.
var EndOfDaySentinel = ClockTime{Hour: 99, Minute: 99}

// IsEndOfDay reports whether c is the (99, 99) end-of-day sentinel.
func (c ClockTime) IsEndOfDay() bool {
	return c == EndOfDaySentinel
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DateOrTime is a date that may or may not carry a time-of-day component.
// It resolves to a DateTime (HasTime reports true) whenever a time field
// was present and valid; otherwise it is a Date.
type DateOrTime struct {
	date  Date
	clock *ClockTime
}

// NewDate builds a date-only DateOrTime.
func NewDate(d Date) DateOrTime {
	return DateOrTime{date: d}
}

// NewDateTime builds a DateOrTime carrying both a date and a time-of-day.
func NewDateTime(d Date, c ClockTime) DateOrTime {
	return DateOrTime{date: d, clock: &c}
}

// Date returns the date component.
func (dt DateOrTime) Date() Date {
	return dt.date
}

// Clock returns the time-of-day component, if any.
func (dt DateOrTime) Clock() (ClockTime, bool) {
	if dt.clock == nil {
		return ClockTime{}, false
	}
	return *dt.clock, true
}

// HasTime reports whether dt carries a time-of-day component.
func (dt DateOrTime) HasTime() bool {
	return dt.clock != nil
}

// AsTime combines the date and time-of-day (if any) into a single
// time.Time in the given location. A nil location defaults to UTC.
func (dt DateOrTime) AsTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	hour, minute := 0, 0
	if dt.clock != nil {
		hour, minute = dt.clock.Hour, dt.clock.Minute
	}
	d := dt.date
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
}

func (dt DateOrTime) String() string {
	if dt.clock != nil {
		return fmt.Sprintf("%s %s", dt.date.Format("2006-01-02"), dt.clock)
	}
	return dt.date.Format("2006-01-02")
}

// Calendar resolves wire-level (year, month, day) and (hour, minute)
// components into validated calendar values. It is the abstract date/time
// collaborator the core depends on; bai2calendar.Standard is the default
// implementation.
type Calendar interface {
	// Date builds a calendar date from a four-digit year plus a 1-12
	// month and a 1-31 day, returning an error if the combination is
	// not a valid calendar date.
	Date(year, month, day int) (Date, error)
	// Time validates an hour (0-23) and minute (0-59) pair. The (99, 99)
	// end-of-day sentinel is resolved by the caller before Time is
	// invoked; Time itself rejects it like any other out-of-range value.
	Time(hour, minute int) (ClockTime, error)
}
