// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/pflag"

	"github.com/webtune/webtune/cmd"
)

func main() {
	ctx := context.Background()

	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !isDebugEnabled() {
		log.SetOutput(io.Discard)
	}

	if err := cmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		restoreColorMode()
		os.Exit(1)
	}
}

// isDebugEnabled scans the full command line for --debug before cobra runs,
// so debug logging also covers command construction and flag parsing.
func isDebugEnabled() bool {
	debug := false
	help := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	// The full command line contains flags that belong to whichever command
	// ends up running; instruct Parse to skip the ones this flag set does
	// not define instead of failing on them.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.BoolVar(&debug, "debug", false, "")

	// pflag treats "help" as special and returns ErrHelp from Parse when
	// --help is on the command line and no help flag is defined. Define one
	// (and ignore it) so the scan stays quiet; cobra renders help later.
	flags.BoolVarP(&help, "help", "h", false, "")

	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Printf("could not parse flags: %v", err)
	}

	return debug
}
