// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/daydate"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type mergeFlags struct {
	CommonFlags
}

func merge(ctx context.Context, values interface{}, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("need at least one date to merge")
	}
	ctx, nm, err := values.(*mergeFlags).setup(ctx)
	if err != nil {
		return err
	}
	dates := make(daydate.DateList, 0, len(args))
	errs := errors.M{}
	for _, arg := range args {
		d, err := nm.ParseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, d)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("merge", "dates", len(dates))
	for _, dr := range dates.Merge() {
		fmt.Printf("%s - %s (%d days)\n", nm.FormatDate(dr.From()), nm.FormatDate(dr.To()), dr.Days())
	}
	return nil
}
