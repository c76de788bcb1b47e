// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/daydate"
	"cloudeng.io/errors"
)

type rangeFlags struct {
	CommonFlags
	Interval flags.OneOf `subcmd:"interval,closed,endpoint inclusion; closed or closed-left or closed-right or open"`
}

var intervals = map[string]daydate.Interval{
	"closed":       daydate.Closed,
	"closed-left":  daydate.ClosedLeft,
	"closed-right": daydate.ClosedRight,
	"open":         daydate.Open,
}

func inRange(ctx context.Context, values interface{}, args []string) error {
	cf := values.(*rangeFlags)
	if err := cf.Interval.Validate("closed", "closed-left", "closed-right", "open"); err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("need a from date, a to date and at least one date to test")
	}
	_, nm, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	from, err := nm.ParseDate(args[0])
	if err != nil {
		return err
	}
	to, err := nm.ParseDate(args[1])
	if err != nil {
		return err
	}
	iv := intervals[string(cf.Interval)]
	errs := errors.M{}
	for _, arg := range args[2:] {
		d, err := nm.ParseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%s: %v\n", nm.FormatDate(d), d.InRangeInterval(from, to, iv))
	}
	return errs.Err()
}
