// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daydate_test

import (
	"cloudeng.io/daydate"
)

// nd returns the date for a calendar form known to be valid, panicking
// otherwise.
func nd(year int, month daydate.Month, day int) daydate.Date {
	d, err := daydate.New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// plusDays applies PlusDays to a result known to be in range.
func plusDays(d daydate.Date, n int) daydate.Date {
	r, err := d.PlusDays(n)
	if err != nil {
		panic(err)
	}
	return r
}

func newDateList(d ...daydate.Date) daydate.DateList {
	r := make(daydate.DateList, len(d))
	copy(r, d)
	return r
}
