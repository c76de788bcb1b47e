// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/daydate"
	"cloudeng.io/logging/ctxlog"
)

type addFlags struct {
	CommonFlags
	Units flags.OneOf `subcmd:"units,days,units for the amount being added; days or months or years"`
}

func add(ctx context.Context, values interface{}, args []string) error {
	cf := values.(*addFlags)
	if err := cf.Units.Validate("days", "months", "years"); err != nil {
		return err
	}
	ctx, nm, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	d, err := nm.ParseDate(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %v", args[1], err)
	}
	var result daydate.Date
	switch string(cf.Units) {
	case "days":
		result, err = d.PlusDays(n)
	case "months":
		result, err = d.PlusMonths(n)
	case "years":
		result, err = d.PlusYears(n)
	}
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("add", "from", d.Serial(), "to", result.Serial())
	fmt.Printf("%s\n", nm.FormatDate(result))
	return nil
}
