// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daydate provides an immutable calendar date type with a
// precision of one day and no time of day or timezone component. Each
// date is represented as a serial day number counted from a fixed
// epoch, with 1-Jan-1900 assigned serial 2 to preserve the numbering
// convention used by legacy spreadsheets. The supported calendar range
// is 1-Jan-1900 through 31-Dec-9999 and conversion between the serial
// and (year, month, day) forms is an exact bijection over that range.
package daydate

import (
	"errors"
	"fmt"
	"time"
)

// Date represents a single day in the proleptic Gregorian calendar as
// a serial day number. Date values are immutable; all arithmetic
// returns a new Date. The zero value is not a valid Date, use New,
// FromSerial or FromTime to create one.
type Date int32

const (
	// EpochYear is the first supported calendar year.
	EpochYear = 1900
	// MaxYear is the last supported calendar year.
	MaxYear = 9999

	// epochSerial is the serial number of 1-Jan-1900. The value 2
	// preserves the day numbering used by Lotus 1-2-3 and Excel
	// (which treat 1-Jan-1900 as day 1 but also invent a nonexistent
	// 29-Feb-1900; numbering from 2 keeps later serials aligned
	// without reproducing that defect).
	epochSerial = 2

	// MinDate is 1-Jan-1900, the earliest supported date.
	MinDate Date = epochSerial
	// MaxDate is 31-Dec-9999, the latest supported date.
	MaxDate Date = 2958465
)

// epochSerial falls on a Monday: 1-Jan-1900 was a Monday. All weekday
// derivations are phase aligned to this anchor.
const epochWeekday = Monday

var (
	// ErrInvalidDate is returned when a year, month, day combination
	// does not name a day in the supported calendar range.
	ErrInvalidDate = errors.New("invalid date")
	// ErrOutOfRange is returned when a serial day number falls outside
	// the supported range of 1-Jan-1900 to 31-Dec-9999.
	ErrOutOfRange = errors.New("date out of range")
)

// yearStart returns the serial number of 1-Jan of the given year.
func yearStart(year int) int {
	return epochSerial + 365*(year-EpochYear) + leapsSinceEpoch(year)
}

// leapsSinceEpoch returns the number of leap years in [EpochYear, year),
// using the same divisibility rule as IsLeap.
func leapsSinceEpoch(year int) int {
	leapsTo := func(y int) int { return y/4 - y/100 + y/400 }
	return leapsTo(year-1) - leapsTo(EpochYear-1)
}

// New returns the Date for the given year, month and day. It returns
// an error wrapping ErrInvalidDate if the combination does not name a
// day in the supported range, eg. a day exceeding the length of the
// month in that year.
func New(year int, month Month, day int) (Date, error) {
	if year < EpochYear || year > MaxYear {
		return 0, fmt.Errorf("year %d is not in the range %d..%d: %w", year, EpochYear, MaxYear, ErrInvalidDate)
	}
	if !month.Valid() {
		return 0, fmt.Errorf("month %d is not in the range 1..12: %w", int(month), ErrInvalidDate)
	}
	if last := DaysInMonth(year, month); day < 1 || day > last {
		return 0, fmt.Errorf("day %d is not in the range 1..%d for %s %d: %w", day, last, month, year, ErrInvalidDate)
	}
	return newDate(year, month, day), nil
}

// newDate converts a calendar form known to be valid.
func newDate(year int, month Month, day int) Date {
	return Date(yearStart(year) + daysBeforeMonth(year, month) + day - 1)
}

// FromSerial returns the Date for the given serial day number. It
// returns an error wrapping ErrOutOfRange if the serial falls outside
// [MinDate, MaxDate].
func FromSerial(serial int) (Date, error) {
	if serial < int(MinDate) || serial > int(MaxDate) {
		return 0, fmt.Errorf("serial %d is not in the range %d..%d: %w", serial, MinDate, MaxDate, ErrOutOfRange)
	}
	return Date(serial), nil
}

// FromTime returns the Date on which the given time falls, in that
// time's location.
func FromTime(when time.Time) (Date, error) {
	return New(when.Year(), Month(when.Month()), when.Day())
}

// Today returns the current date in the local timezone. It panics if
// the current year is outside the supported range, which cannot occur
// with a correctly set clock.
func Today() Date {
	d, err := FromTime(time.Now())
	if err != nil {
		panic(err)
	}
	return d
}

// Serial returns the serial day number for the date.
func (d Date) Serial() int {
	return int(d)
}

// Date decomposes the date into its calendar form.
func (d Date) Date() (year int, month Month, day int) {
	serial := int(d)
	// First estimate, low by at most the accumulated leap days, then
	// advance to the year containing the serial.
	year = EpochYear + (serial-epochSerial)/366
	for year < MaxYear && yearStart(year+1) <= serial {
		year++
	}
	doy := serial - yearStart(year) // zero based day of year
	month = Month(doy/31 + 1)       // low by at most one month
	if month < December && daysBeforeMonth(year, month+1) <= doy {
		month++
	}
	day = doy - daysBeforeMonth(year, month) + 1
	return
}

// Year returns the year of the date.
func (d Date) Year() int {
	year, _, _ := d.Date()
	return year
}

// Month returns the month of the date.
func (d Date) Month() Month {
	_, month, _ := d.Date()
	return month
}

// Day returns the day of the month of the date.
func (d Date) Day() int {
	_, _, day := d.Date()
	return day
}

// Weekday returns the day of the week on which the date falls.
func (d Date) Weekday() Weekday {
	return Weekday(mod7(int(d)-epochSerial)) + epochWeekday
}

// Time returns the time at midnight on the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	year, month, day := d.Date()
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// String returns the date as <day>-<month name>-<year>, eg.
// "21-January-2015". The names package renders dates in other locales.
func (d Date) String() string {
	year, month, day := d.Date()
	return fmt.Sprintf("%d-%s-%d", day, month, year)
}
