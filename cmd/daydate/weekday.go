// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/daydate"
)

type weekdayFlags struct {
	CommonFlags
	Rel flags.OneOf `subcmd:"rel,nearest,direction of the adjustment; previous or nearest or following"`
}

func weekday(ctx context.Context, values interface{}, args []string) error {
	cf := values.(*weekdayFlags)
	if err := cf.Rel.Validate("previous", "nearest", "following"); err != nil {
		return err
	}
	_, nm, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	d, err := nm.ParseDate(args[0])
	if err != nil {
		return err
	}
	target, err := nm.ParseWeekday(args[1])
	if err != nil {
		return err
	}
	rel := map[string]daydate.Relative{
		"previous":  daydate.Previous,
		"nearest":   daydate.Nearest,
		"following": daydate.Following,
	}[string(cf.Rel)]
	result, err := d.RelativeWeekday(target, rel)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", nm.FormatDate(result))
	return nil
}
