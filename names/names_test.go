// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package names_test

import (
	"testing"

	"cloudeng.io/daydate"
	"cloudeng.io/daydate/names"
	"golang.org/x/text/language"
)

func TestFor(t *testing.T) {
	for _, tc := range []struct {
		tag  string
		want *names.Names
	}{
		{"en", names.English},
		{"en-US", names.English},
		{"de", names.German},
		{"de-AT", names.German},
		{"fr-CA", names.French},
		{"es-419", names.Spanish},
		// No better match falls back to the first registered locale.
		{"zh", names.English},
	} {
		nm, err := names.ForString(tc.tag)
		if err != nil {
			t.Errorf("%v: %v", tc.tag, err)
			continue
		}
		if nm != tc.want {
			t.Errorf("%v: got %v, want %v", tc.tag, nm.Tag(), tc.want.Tag())
		}
	}

	if _, err := names.ForString("no-such-tag-至"); err == nil {
		t.Errorf("expected error")
	}

	if got, want := names.For(language.MustParse("de-CH")), names.German; got != want {
		t.Errorf("got %v, want %v", got.Tag(), want.Tag())
	}
}

func TestNames(t *testing.T) {
	for _, tc := range []struct {
		nm      *names.Names
		month   string
		weekday string
	}{
		{names.English, "January", "Monday"},
		{names.German, "Januar", "Montag"},
		{names.French, "janvier", "lundi"},
		{names.Spanish, "enero", "lunes"},
	} {
		if got := tc.nm.Month(daydate.January); got != tc.month {
			t.Errorf("got %v, want %v", got, tc.month)
		}
		if got := tc.nm.Weekday(daydate.Monday); got != tc.weekday {
			t.Errorf("got %v, want %v", got, tc.weekday)
		}
	}
	if got, want := names.English.MonthAbbrev(daydate.September), "Sep"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := names.German.WeekdayAbbrev(daydate.Wednesday), "Mi"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := names.English.Month(daydate.Month(0)); got != "" {
		t.Errorf("got %v, want empty", got)
	}
	if got := names.English.Weekday(daydate.Weekday(8)); got != "" {
		t.Errorf("got %v, want empty", got)
	}
}

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		nm   *names.Names
		val  string
		want daydate.Month
	}{
		{names.English, "January", daydate.January},
		{names.English, "january", daydate.January},
		{names.English, "JAN", daydate.January},
		{names.English, "ja", daydate.January},
		{names.English, "dec", daydate.December},
		{names.English, "jun", daydate.June},
		{names.English, "jul", daydate.July},
		{names.English, "may", daydate.May},
		// Exact abbreviation wins over any prefix ambiguity.
		{names.English, "mar", daydate.March},
		{names.German, "märz", daydate.March},
		{names.German, "MÄRZ", daydate.March},
		{names.German, "dez", daydate.December},
		{names.French, "août", daydate.August},
		{names.French, "f", daydate.February},
		{names.Spanish, "eNeRo", daydate.January},
	} {
		got, err := tc.nm.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.val, got, tc.want)
		}
	}

	for _, tc := range []struct {
		nm  *names.Names
		val string
	}{
		{names.English, ""},
		{names.English, "ju"}, // june or july
		{names.English, "janx"},
		{names.English, "montag"},
		{names.German, "january"},
	} {
		if _, err := tc.nm.ParseMonth(tc.val); err == nil {
			t.Errorf("%v: expected error", tc.val)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	for _, tc := range []struct {
		nm   *names.Names
		val  string
		want daydate.Weekday
	}{
		{names.English, "Monday", daydate.Monday},
		{names.English, "mon", daydate.Monday},
		{names.English, "tu", daydate.Tuesday},
		{names.English, "th", daydate.Thursday},
		{names.English, "sat", daydate.Saturday},
		{names.English, "su", daydate.Sunday},
		{names.German, "mittwoch", daydate.Wednesday},
		{names.German, "so", daydate.Sunday},
		{names.French, "dimanche", daydate.Sunday},
		{names.Spanish, "sáb", daydate.Saturday},
	} {
		got, err := tc.nm.ParseWeekday(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.val, got, tc.want)
		}
	}

	for _, val := range []string{"", "s", "t", "xyz"} {
		if _, err := names.English.ParseWeekday(val); err == nil {
			t.Errorf("%v: expected error", val)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d, err := daydate.New(2015, daydate.January, 21)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		nm   *names.Names
		want string
	}{
		{names.English, "21-January-2015"},
		{names.German, "21-Januar-2015"},
		{names.French, "21-janvier-2015"},
		{names.Spanish, "21-enero-2015"},
	} {
		if got := tc.nm.FormatDate(d); got != tc.want {
			t.Errorf("got %v, want %v", got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	want, err := daydate.New(2015, daydate.January, 21)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		nm  *names.Names
		val string
	}{
		{names.English, "21-January-2015"},
		{names.English, "21-jan-2015"},
		{names.English, "21-1-2015"},
		{names.English, "21-01-2015"},
		{names.English, "2015-01-21"},
		{names.English, "2015-jan-21"},
		{names.German, "21-Januar-2015"},
		{names.French, "21-janv-2015"},
	} {
		got, err := tc.nm.ParseDate(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	// Format and parse round trip in every registered locale.
	leap, err := daydate.New(2024, daydate.February, 29)
	if err != nil {
		t.Fatal(err)
	}
	for _, nm := range []*names.Names{names.English, names.German, names.French, names.Spanish} {
		got, err := nm.ParseDate(nm.FormatDate(leap))
		if err != nil {
			t.Errorf("%v: %v", nm.Tag(), err)
			continue
		}
		if got != leap {
			t.Errorf("%v: got %v, want %v", nm.Tag(), got, leap)
		}
	}

	for _, val := range []string{
		"",
		"21-January",
		"21/01/2015",
		"x-January-2015",
		"21-lundi-2015", // a weekday name, not a month
		"21-January-x",
		"29-February-2023",
		"21-13-2015",
		"31-April-2015",
	} {
		if _, err := names.English.ParseDate(val); err == nil {
			t.Errorf("%v: expected error", val)
		}
	}
}
