// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daydate

import "fmt"

// PlusDays returns the date days after d, or before it for negative
// days. It returns an error wrapping ErrOutOfRange if the result falls
// outside the supported range.
func (d Date) PlusDays(days int) (Date, error) {
	serial := int(d) + days
	if serial < int(MinDate) || serial > int(MaxDate) {
		return 0, fmt.Errorf("%v %+d days: %w", d, days, ErrOutOfRange)
	}
	return Date(serial), nil
}

// PlusMonths returns the date months after d, or before it for
// negative months. The day of the month is clamped to the length of
// the target month, so 31-May-2021 plus one month is 30-Jun-2021.
func (d Date) PlusMonths(months int) (Date, error) {
	year, month, day := d.Date()
	ordinal := 12*year + int(month) - 1 + months
	targetYear := ordinal / 12
	rem := ordinal % 12
	if rem < 0 {
		rem += 12
		targetYear--
	}
	targetMonth := Month(rem + 1)
	if targetYear < EpochYear || targetYear > MaxYear {
		return 0, fmt.Errorf("%v %+d months: %w", d, months, ErrOutOfRange)
	}
	day = min(day, DaysInMonth(targetYear, targetMonth))
	return newDate(targetYear, targetMonth, day), nil
}

// PlusYears returns the date years after d, or before it for negative
// years. The day of the month is clamped to the length of the month in
// the target year, so 29-Feb-2020 plus one year is 28-Feb-2021.
func (d Date) PlusYears(years int) (Date, error) {
	year, month, day := d.Date()
	targetYear := year + years
	if targetYear < EpochYear || targetYear > MaxYear {
		return 0, fmt.Errorf("%v %+d years: %w", d, years, ErrOutOfRange)
	}
	day = min(day, DaysInMonth(targetYear, month))
	return newDate(targetYear, month, day), nil
}

// Sub returns the number of days from o to d, positive if d is after o.
func (d Date) Sub(o Date) int {
	return int(d) - int(o)
}

// PreviousWeekday returns the latest date strictly before d that falls
// on the given weekday. If d already falls on it the result is exactly
// seven days earlier.
func (d Date) PreviousWeekday(target Weekday) (Date, error) {
	offset := int(target) - int(d.Weekday())
	if offset >= 0 {
		offset -= 7
	}
	return d.PlusDays(offset)
}

// FollowingWeekday returns the earliest date strictly after d that
// falls on the given weekday. If d already falls on it the result is
// exactly seven days later.
func (d Date) FollowingWeekday(target Weekday) (Date, error) {
	offset := int(target) - int(d.Weekday())
	if offset <= 0 {
		offset += 7
	}
	return d.PlusDays(offset)
}

// NearestWeekday returns the date closest to d that falls on the given
// weekday, which may be d itself. Ties are broken toward the future:
// an upcoming occurrence three days ahead is preferred over one four
// days back.
func (d Date) NearestWeekday(target Weekday) (Date, error) {
	future := mod7(int(target) - int(d.Weekday()))
	if future > 3 {
		return d.PlusDays(future - 7)
	}
	return d.PlusDays(future)
}

// Relative names a direction for weekday adjustment.
type Relative int

const (
	Previous Relative = iota
	Nearest
	Following
)

func (r Relative) String() string {
	switch r {
	case Previous:
		return "previous"
	case Nearest:
		return "nearest"
	case Following:
		return "following"
	}
	return "invalid relative"
}

// RelativeWeekday returns the date falling on the given weekday in the
// given direction from d, as per PreviousWeekday, NearestWeekday and
// FollowingWeekday.
func (d Date) RelativeWeekday(target Weekday, rel Relative) (Date, error) {
	switch rel {
	case Previous:
		return d.PreviousWeekday(target)
	case Nearest:
		return d.NearestWeekday(target)
	case Following:
		return d.FollowingWeekday(target)
	}
	return 0, fmt.Errorf("invalid relative direction %d", int(rel))
}

// EndOfMonth returns the last day of the month in which d falls.
func (d Date) EndOfMonth() Date {
	year, month, _ := d.Date()
	return newDate(year, month, DaysInMonth(year, month))
}

// WeekInMonth names an occurrence of a weekday within a month.
type WeekInMonth int

const (
	First WeekInMonth = iota + 1
	Second
	Third
	Fourth
	Last
)

func (w WeekInMonth) String() string {
	switch w {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	case Fourth:
		return "fourth"
	case Last:
		return "last"
	}
	return "invalid week in month"
}

// WeekdayInMonth returns the date of the given occurrence of a weekday
// within a month, eg. the second Tuesday or the last Friday of
// March 2024.
func WeekdayInMonth(year int, month Month, target Weekday, week WeekInMonth) (Date, error) {
	first, err := New(year, month, 1)
	if err != nil {
		return 0, err
	}
	if !target.Valid() {
		return 0, fmt.Errorf("weekday %d is not in the range 1..7: %w", int(target), ErrInvalidDate)
	}
	last := DaysInMonth(year, month)
	switch week {
	case First, Second, Third, Fourth:
		day := 1 + mod7(int(target)-int(first.Weekday())) + 7*(int(week)-1)
		if day > last {
			return 0, fmt.Errorf("no %s %s in %s %d: %w", week, target, month, year, ErrInvalidDate)
		}
		return newDate(year, month, day), nil
	case Last:
		end := newDate(year, month, last)
		return newDate(year, month, last-mod7(int(end.Weekday())-int(target))), nil
	}
	return 0, fmt.Errorf("invalid week in month %d", int(week))
}
