// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daydate

// Compare returns -1 if d is before o, 0 if they are the same day and
// +1 if d is after o. It is a strict total order over Date values.
func (d Date) Compare(o Date) int {
	switch {
	case d < o:
		return -1
	case d > o:
		return 1
	}
	return 0
}

// IsOn returns true if d and o are the same day.
func (d Date) IsOn(o Date) bool {
	return d == o
}

// IsBefore returns true if d is earlier than o.
func (d Date) IsBefore(o Date) bool {
	return d < o
}

// IsOnOrBefore returns true if d is the same day as or earlier than o.
func (d Date) IsOnOrBefore(o Date) bool {
	return d <= o
}

// IsAfter returns true if d is later than o.
func (d Date) IsAfter(o Date) bool {
	return d > o
}

// IsOnOrAfter returns true if d is the same day as or later than o.
func (d Date) IsOnOrAfter(o Date) bool {
	return d >= o
}

// Interval controls whether the endpoints of a range are included in
// a membership test.
type Interval int

const (
	// Closed includes both endpoints.
	Closed Interval = iota
	// ClosedLeft includes the earlier endpoint only.
	ClosedLeft
	// ClosedRight includes the later endpoint only.
	ClosedRight
	// Open excludes both endpoints.
	Open
)

func (iv Interval) String() string {
	switch iv {
	case Closed:
		return "closed"
	case ClosedLeft:
		return "closed-left"
	case ClosedRight:
		return "closed-right"
	case Open:
		return "open"
	}
	return "invalid interval"
}

// InRange returns true if d falls between the two boundary dates,
// inclusive of both. The boundaries need not be ordered: InRange(a, b)
// and InRange(b, a) are equivalent.
func (d Date) InRange(a, b Date) bool {
	return d.InRangeInterval(a, b, Closed)
}

// InRangeInterval returns true if d falls between the two boundary
// dates with endpoint inclusion controlled by the given Interval. The
// boundaries need not be ordered.
func (d Date) InRangeInterval(a, b Date, iv Interval) bool {
	if b < a {
		a, b = b, a
	}
	switch iv {
	case Closed:
		return d >= a && d <= b
	case ClosedLeft:
		return d >= a && d < b
	case ClosedRight:
		return d > a && d <= b
	case Open:
		return d > a && d < b
	}
	return false
}
