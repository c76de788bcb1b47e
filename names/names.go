// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package names maps daydate Month and Weekday values to and from
// their names in a registry of locales. The daydate core is purely
// numeric; all name rendering and name parsing lives here.
package names

import (
	"fmt"
	"strings"

	"cloudeng.io/daydate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Names holds the month and weekday names for a single locale.
// Instances are immutable once registered and safe for concurrent use.
type Names struct {
	tag            language.Tag
	months         [12]string
	monthAbbrevs   [12]string
	weekdays       [7]string
	weekdayAbbrevs [7]string
}

// New returns a Names for the given locale. Month names run January
// through December, weekday names Monday through Sunday. Abbreviations
// may be empty, in which case parsing accepts full names and their
// prefixes only.
func New(tag language.Tag, months, monthAbbrevs [12]string, weekdays, weekdayAbbrevs [7]string) *Names {
	return &Names{
		tag:            tag,
		months:         months,
		monthAbbrevs:   monthAbbrevs,
		weekdays:       weekdays,
		weekdayAbbrevs: weekdayAbbrevs,
	}
}

// Tag returns the locale's language tag.
func (n *Names) Tag() language.Tag {
	return n.tag
}

// Month returns the name of the given month, or the empty string for
// an invalid month.
func (n *Names) Month(m daydate.Month) string {
	if !m.Valid() {
		return ""
	}
	return n.months[m-1]
}

// MonthAbbrev returns the abbreviated name of the given month.
func (n *Names) MonthAbbrev(m daydate.Month) string {
	if !m.Valid() {
		return ""
	}
	return n.monthAbbrevs[m-1]
}

// Weekday returns the name of the given weekday, or the empty string
// for an invalid weekday.
func (n *Names) Weekday(w daydate.Weekday) string {
	if !w.Valid() {
		return ""
	}
	return n.weekdays[w-1]
}

// WeekdayAbbrev returns the abbreviated name of the given weekday.
func (n *Names) WeekdayAbbrev(w daydate.Weekday) string {
	if !w.Valid() {
		return ""
	}
	return n.weekdayAbbrevs[w-1]
}

// fold normalizes a name for comparison: NFC composed form, lower
// cased. Accented names compare equal regardless of the input's
// decomposition.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// match reports how key relates to the candidate names: an exact match
// of a name or abbreviation, or a strict prefix of a name.
func match(key string, name, abbrev string) (exact, prefix bool) {
	name, abbrev = fold(name), fold(abbrev)
	if key == name || (abbrev != "" && key == abbrev) {
		return true, false
	}
	return false, strings.HasPrefix(name, key)
}

// ParseMonth parses a month name, abbreviation or unambiguous prefix
// in this locale, ignoring case.
func (n *Names) ParseMonth(val string) (daydate.Month, error) {
	key := fold(val)
	if key == "" {
		return 0, fmt.Errorf("empty month name")
	}
	found, ambiguous := daydate.Month(0), false
	for i := range n.months {
		exact, prefix := match(key, n.months[i], n.monthAbbrevs[i])
		if exact {
			return daydate.Month(i + 1), nil
		}
		if prefix {
			ambiguous = found != 0
			found = daydate.Month(i + 1)
		}
	}
	switch {
	case ambiguous:
		return 0, fmt.Errorf("ambiguous month name: %q", val)
	case found == 0:
		return 0, fmt.Errorf("invalid month name: %q", val)
	}
	return found, nil
}

// ParseWeekday parses a weekday name, abbreviation or unambiguous
// prefix in this locale, ignoring case.
func (n *Names) ParseWeekday(val string) (daydate.Weekday, error) {
	key := fold(val)
	if key == "" {
		return 0, fmt.Errorf("empty weekday name")
	}
	found, ambiguous := daydate.Weekday(0), false
	for i := range n.weekdays {
		exact, prefix := match(key, n.weekdays[i], n.weekdayAbbrevs[i])
		if exact {
			return daydate.Weekday(i + 1), nil
		}
		if prefix {
			ambiguous = found != 0
			found = daydate.Weekday(i + 1)
		}
	}
	switch {
	case ambiguous:
		return 0, fmt.Errorf("ambiguous weekday name: %q", val)
	case found == 0:
		return 0, fmt.Errorf("invalid weekday name: %q", val)
	}
	return found, nil
}

var (
	registered []*Names
	matcher    language.Matcher
)

// Register adds a locale to the registry. It is intended to be called
// from init functions; registration is not safe for concurrent use
// with For.
func Register(n *Names) {
	registered = append(registered, n)
	tags := make([]language.Tag, len(registered))
	for i, r := range registered {
		tags[i] = r.tag
	}
	matcher = language.NewMatcher(tags)
}

// For returns the registered Names best matching the given tag, eg.
// "de-AT" matches a registered "de". The first registered locale is
// the fallback for tags with no better match.
func For(tag language.Tag) *Names {
	_, index, _ := matcher.Match(tag)
	return registered[index]
}

// ForString is like For but parses the tag from a string, returning an
// error if it is not a well formed BCP 47 tag.
func ForString(val string) (*Names, error) {
	tag, err := language.Parse(val)
	if err != nil {
		return nil, fmt.Errorf("invalid language tag %q: %w", val, err)
	}
	return For(tag), nil
}
