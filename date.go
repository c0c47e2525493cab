package bai2

import (
	"time"

	"github.com/greenline-fi/bai2/internal/model"
)

// Date is a calendar date with no time-of-day component.
type Date = time.Time

// Pivot is the two-digit year cutoff BAI2 inherits from its source format:
// a wire year of 70 or less is 20xx, anything greater is 19xx.
const Pivot = model.Pivot

// PivotYear expands a raw two-digit wire year (0-99) into a four-digit
// year using the BAI2 pivot rule.
var PivotYear = model.PivotYear

// ClockTime is an hour/minute time-of-day, independent of any date.
type ClockTime = model.ClockTime

// EndOfDaySentinel is the wire value (99, 99) denoting "end of day"; it
// must be resolved to a caller-supplied ClockTime before use.
var EndOfDaySentinel = model.EndOfDaySentinel

// DateOrTime is a date that may or may not carry a time-of-day component.
type DateOrTime = model.DateOrTime

// NewDate builds a date-only DateOrTime.
var NewDate = model.NewDate

// NewDateTime builds a DateOrTime carrying both a date and a time-of-day.
var NewDateTime = model.NewDateTime

// Calendar resolves wire-level (year, month, day) and (hour, minute)
// components into validated calendar values. It is the abstract date/time
// collaborator the core depends on; bai2calendar.Standard is the default
// implementation.
type Calendar = model.Calendar
