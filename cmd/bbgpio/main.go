// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// bbgpio runs the cyclic GPIO engine of a BeagleBone board.
//
// It binds the pins listed in an instance file, then reads the inputs and
// writes the outputs once per period until interrupted. The pin values can
// be inspected and the outputs set over HTTP.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:           "bbgpio",
	Short:         "Memory-mapped GPIO multiplexer for BeagleBone boards",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// glog registers its flags on the standard flag set. cobra adds
	// pflag.CommandLine to the root command.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	rootCmd.AddCommand(pinsCmd, runCmd, benchCmd)
}

func mainImpl() error {
	// glog checks flag.Parsed.
	if err := flag.CommandLine.Parse(nil); err != nil {
		return err
	}
	return rootCmd.Execute()
}

func main() {
	err := mainImpl()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bbgpio: %s.\n", err)
		os.Exit(1)
	}
}
