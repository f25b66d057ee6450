// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"periph.io/x/bbgpio/beagle"
	"periph.io/x/bbgpio/pinmap"
)

var pinsOpts = struct {
	board  string
	header bool
}{}

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Print the pin map of a board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := pinmap.ByName(pinsOpts.board)
		if b == nil {
			return errors.Errorf("unknown board %q", pinsOpts.board)
		}
		if pinsOpts.header {
			return printHeaders(os.Stdout, b)
		}
		return printPins(os.Stdout, b)
	},
}

func init() {
	pinsCmd.Flags().StringVarP(&pinsOpts.board, "board", "b", "bbai", "board, \"bbai\" or \"bbb\"")
	pinsCmd.Flags().BoolVar(&pinsOpts.header, "header", false, "print the P8 and P9 header layouts instead")
}

// printPins prints one line per entry of the pin map table.
func printPins(w io.Writer, b *pinmap.Board) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "%s\n", b)
	fmt.Fprintf(tw, "Code\tPin\tGPIO\tPort\tLine\tAddress\n")
	for _, h := range b.Pins {
		a, _ := b.Address(h.Port)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%#x\n", h.Code, h, h.GPIOName(), h.Port, h.Line, a)
	}
	return tw.Flush()
}

// printHeaders prints the two columns of the P8 and P9 headers.
func printHeaders(w io.Writer, b *pinmap.Board) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.AlignRight)
	for _, n := range []int{8, 9} {
		rows, err := beagle.Header(b, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s: %s\t\n", beagle.HeaderName(n), b)
		for i, row := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t\n", row[0], 2*i+1, 2*i+2, row[1])
		}
	}
	return tw.Flush()
}
