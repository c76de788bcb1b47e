// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/daydate"
	"cloudeng.io/logging/ctxlog"
)

type infoFlags struct {
	CommonFlags
}

func info(ctx context.Context, values interface{}, args []string) error {
	ctx, nm, err := values.(*infoFlags).setup(ctx)
	if err != nil {
		return err
	}
	d, err := nm.ParseDate(args[0])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("parsed", "arg", args[0], "serial", d.Serial())
	year, month, _ := d.Date()
	fmt.Printf("date:         %s\n", nm.FormatDate(d))
	fmt.Printf("serial:       %d\n", d.Serial())
	fmt.Printf("weekday:      %s\n", nm.Weekday(d.Weekday()))
	fmt.Printf("month:        %s (%d days)\n", nm.Month(month), daydate.DaysInMonth(year, month))
	fmt.Printf("end of month: %s\n", nm.FormatDate(d.EndOfMonth()))
	fmt.Printf("leap year:    %s\n", strconv.FormatBool(daydate.IsLeap(year)))
	return nil
}
