// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daydate

// Month represents a month of the year, numbered 1 through 12 as
// January through December.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if !m.Valid() {
		return "invalid month"
	}
	return monthNames[m-1]
}

// Valid returns true if m is January through December.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// Weekday represents a day of the week, numbered 1 through 7 as
// Monday through Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "invalid weekday"
	}
	return weekdayNames[w-1]
}

// Valid returns true if w is Monday through Sunday.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

var (
	daysInMonth     []int // days in each month of a non-leap year
	daysInMonthLeap []int // days in each month of a leap year
	daysToMonth     []int // per month cumulative days preceding it, non-leap year
	daysToMonthLeap []int // per month cumulative days preceding it, leap year
)

func daysInMonthInit(year, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	daysToMonth = make([]int, 12)
	daysToMonthLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		daysToMonth[i+1] = daysToMonth[i] + daysInMonth[i]
		daysToMonthLeap[i+1] = daysToMonthLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year: divisible by
// 4 and either not divisible by 100 or divisible by 400.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the
// given year, ie. the number of its last day.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// daysBeforeMonth returns the number of days from the start of the
// year to the start of the given month.
func daysBeforeMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysToMonthLeap[month-1]
	}
	return daysToMonth[month-1]
}

// mod7 returns a % 7 normalized to [0,7) for negative a.
func mod7(a int) int {
	r := a % 7
	if r < 0 {
		r += 7
	}
	return r
}
