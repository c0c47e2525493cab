// Package bai2calendar provides the default bai2.Calendar implementation,
// built on the standard library's time package.
package bai2calendar

import (
	"fmt"
	"time"

	"github.com/greenline-fi/bai2/internal/model"
)

// Standard validates dates and times using time.Date's own calendar
// arithmetic, but — unlike time.Date itself — rejects out-of-range
// components instead of silently normalizing them into the following
// month/day/hour.
type Standard struct {
	// Location is used to construct Date's return value. A nil Location
	// defaults to UTC.
	Location *time.Location
}

// InvalidDateError is returned when year/month/day do not name an actual
// calendar date.
type InvalidDateError struct {
	Year, Month, Day int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("bai2calendar: %04d-%02d-%02d is not a valid calendar date", e.Year, e.Month, e.Day)
}

// InvalidTimeError is returned when hour/minute is out of the 0-23/0-59
// range.
type InvalidTimeError struct {
	Hour, Minute int
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("bai2calendar: %02d:%02d is not a valid time of day", e.Hour, e.Minute)
}

func (s Standard) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// Date builds a calendar date, rejecting month/day combinations that
// time.Date would otherwise silently roll over into a neighboring month.
func (s Standard) Date(year, month, day int) (model.Date, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return model.Date{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, s.loc())
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return model.Date{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return d, nil
}

// Time validates an hour/minute pair.
func (s Standard) Time(hour, minute int) (model.ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return model.ClockTime{}, &InvalidTimeError{Hour: hour, Minute: minute}
	}
	return model.ClockTime{Hour: hour, Minute: minute}, nil
}
