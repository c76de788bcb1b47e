// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command daydate answers calendar questions from the command line:
// serial day numbers, date arithmetic with month clamping, relative
// weekday queries and range membership.
package main

import (
	"context"
	"log/slog"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/daydate/names"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by all sub-commands.
type CommonFlags struct {
	Lang    string `subcmd:"lang,en,locale used to parse and print month and weekday names"`
	Verbose bool   `subcmd:"v,false,enable debug logging to stderr"`
}

// setup resolves the locale and installs a debug logger in the context
// when verbose output is requested.
func (cf CommonFlags) setup(ctx context.Context) (context.Context, *names.Names, error) {
	nm, err := names.ForString(cf.Lang)
	if err != nil {
		return ctx, nil, err
	}
	if cf.Verbose {
		ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return ctx, nm, nil
}

func init() {
	infoFlagSet := subcmd.NewFlagSet()
	infoFlagSet.MustRegisterFlagStruct(&infoFlags{}, nil, nil)
	addFlagSet := subcmd.NewFlagSet()
	addFlagSet.MustRegisterFlagStruct(&addFlags{}, nil, nil)
	weekdayFlagSet := subcmd.NewFlagSet()
	weekdayFlagSet.MustRegisterFlagStruct(&weekdayFlags{}, nil, nil)
	rangeFlagSet := subcmd.NewFlagSet()
	rangeFlagSet.MustRegisterFlagStruct(&rangeFlags{}, nil, nil)
	mergeFlagSet := subcmd.NewFlagSet()
	mergeFlagSet.MustRegisterFlagStruct(&mergeFlags{}, nil, nil)

	infoCmd := subcmd.NewCommand("info", infoFlagSet, info, subcmd.ExactlyNumArguments(1))
	infoCmd.Document("print the serial number, weekday and month of a date", "<date>")

	addCmd := subcmd.NewCommand("add", addFlagSet, add, subcmd.ExactlyNumArguments(2))
	addCmd.Document("add a signed number of days or months or years to a date", "<date> <n>")

	weekdayCmd := subcmd.NewCommand("weekday", weekdayFlagSet, weekday, subcmd.ExactlyNumArguments(2))
	weekdayCmd.Document("find the previous or nearest or following date falling on a weekday", "<date> <weekday>")

	rangeCmd := subcmd.NewCommand("range", rangeFlagSet, inRange)
	rangeCmd.Document("test dates for membership of a range", "<from> <to> <date>...")

	mergeCmd := subcmd.NewCommand("merge", mergeFlagSet, merge)
	mergeCmd.Document("coalesce dates into contiguous ranges", "<date>...")

	cmdSet = subcmd.NewCommandSet(addCmd, infoCmd, mergeCmd, rangeCmd, weekdayCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
