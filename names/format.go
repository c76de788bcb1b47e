// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package names

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/daydate"
)

// FormatDate returns the date as <day>-<month name>-<year> in this
// locale, eg. "21-janvier-2015" for French.
func (n *Names) FormatDate(d daydate.Date) string {
	year, month, day := d.Date()
	return fmt.Sprintf("%d-%s-%d", day, n.Month(month), year)
}

const expectedDateFormats = "2006-01-02, 2-Jan-2006 or 2-January-2006"

// ParseDate parses a date in the form <day>-<month>-<year> where the
// month is a name, abbreviation or unambiguous prefix in this locale,
// or a 1 or 2 digit month number. The numeric form <year>-<month>-<day>
// is also accepted when the leading component has four digits.
func (n *Names) ParseDate(val string) (daydate.Date, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	if len(parts[0]) == 4 {
		// Numeric year first.
		parts[0], parts[2] = parts[2], parts[0]
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid day %q in %q: %v", parts[0], val, err)
	}
	month, err := parseMonthAny(n, parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid month %q in %q: %v", parts[1], val, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q in %q: %v", parts[2], val, err)
	}
	return daydate.New(year, month, day)
}

// parseMonthAny accepts a numeric month in the range 1-12 or a month
// name in the given locale.
func parseMonthAny(n *Names, val string) (daydate.Month, error) {
	if num, err := strconv.Atoi(val); err == nil {
		m := daydate.Month(num)
		if !m.Valid() {
			return 0, fmt.Errorf("month %d is not in the range 1..12", num)
		}
		return m, nil
	}
	return n.ParseMonth(val)
}
