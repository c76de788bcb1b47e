// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daydate

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
)

// DateRange represents a contiguous range of dates, inclusive of both
// endpoints.
type DateRange struct {
	from, to Date
}

// NewDateRange returns a DateRange spanning the two dates. If from is
// after to they are swapped, so the boundary order is immaterial.
func NewDateRange(from, to Date) DateRange {
	if to < from {
		from, to = to, from
	}
	return DateRange{from: from, to: to}
}

// From returns the first date in the range.
func (dr DateRange) From() Date {
	return dr.from
}

// To returns the last date in the range.
func (dr DateRange) To() Date {
	return dr.to
}

// Days returns the number of days spanned by the range.
func (dr DateRange) Days() int {
	return dr.to.Sub(dr.from) + 1
}

// Contains returns true if d falls within the range.
func (dr DateRange) Contains(d Date) bool {
	return d >= dr.from && d <= dr.to
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s - %s", dr.from, dr.to)
}

// Dates returns an iterator that yields each date in the range in
// ascending order.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := dr.from; d <= dr.to; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// DateRangeList represents a list of DateRange values.
type DateRangeList []DateRange

func (drl DateRangeList) String() string {
	var out strings.Builder
	for i, dr := range drl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(dr.String())
	}
	return out.String()
}

func (drl DateRangeList) Equal(o DateRangeList) bool {
	return slices.Equal(drl, o)
}

// DateList represents a list of dates.
type DateList []Date

// Sort sorts the list in ascending order.
func (dl DateList) Sort() {
	slices.Sort(dl)
}

// Contains returns true if the list contains d.
func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Merge returns the dates in the list coalesced into ranges, with
// adjacent and duplicate dates folded into a single range. The list
// is sorted in place.
func (dl DateList) Merge() DateRangeList {
	if len(dl) == 0 {
		return nil
	}
	dl.Sort()
	return mergeSorted(slices.Values(dl))
}

// MergeDateLists merges the given lists, each of which must be sorted
// in ascending order, into a coalesced DateRangeList. The lists are
// combined with a k-way merge using a min heap keyed by serial day
// number.
func MergeDateLists(lists ...DateList) DateRangeList {
	lists = slices.DeleteFunc(slices.Clone(lists), func(dl DateList) bool { return len(dl) == 0 })
	if len(lists) == 0 {
		return nil
	}
	type cursor struct {
		list DateList
		pos  int
	}
	h := heap.NewMin(heap.WithSliceCap[int64, cursor](len(lists)))
	for _, dl := range lists {
		h.Push(int64(dl[0]), cursor{list: dl})
	}
	return mergeSorted(func(yield func(Date) bool) {
		for h.Len() > 0 {
			serial, cur := h.Pop()
			if !yield(Date(serial)) {
				return
			}
			if cur.pos++; cur.pos < len(cur.list) {
				h.Push(int64(cur.list[cur.pos]), cur)
			}
		}
	})
}

// mergeSorted coalesces an ascending sequence of dates into ranges.
func mergeSorted(dates iter.Seq[Date]) DateRangeList {
	var drl DateRangeList
	var from, to Date
	first := true
	for d := range dates {
		switch {
		case first:
			from, to = d, d
			first = false
		case d <= to+1:
			to = d
		default:
			drl = append(drl, DateRange{from: from, to: to})
			from, to = d, d
		}
	}
	if first {
		return nil
	}
	return append(drl, DateRange{from: from, to: to})
}
