// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmgpio

import (
	"fmt"
	"strconv"
)

// UnresolvedPinError is returned by Bind when neither the header pin code nor
// the explicit location designate a line of the board.
type UnresolvedPinError struct {
	Name     string
	Board    string
	Header   int
	Location *Location
}

func (e *UnresolvedPinError) Error() string {
	s := "mmgpio: " + e.Name + ": "
	if e.Header != 0 {
		s += "unknown pin " + strconv.Itoa(e.Header) + " on " + e.Board
	} else {
		s += "no pin specified"
	}
	if e.Location != nil {
		s += " and invalid port " + strconv.Itoa(e.Location.Port) + " line " + strconv.Itoa(e.Location.Line)
	}
	return s
}

// InvalidDirectionError is returned when a direction is neither "input" nor
// "output".
type InvalidDirectionError struct {
	Name      string
	Direction string
}

func (e *InvalidDirectionError) Error() string {
	return "mmgpio: " + e.Name + ": invalid direction " + strconv.Quote(e.Direction) + ", must be \"input\" or \"output\""
}

// PinAlreadyBoundError is returned by Bind when the line is already bound,
// in either direction.
type PinAlreadyBoundError struct {
	Name      string
	Port      int
	Line      int
	Owner     string    // Name of the pin already bound to the line
	Direction Direction // Direction the line is bound as
}

func (e *PinAlreadyBoundError) Error() string {
	return fmt.Sprintf("mmgpio: %s: port %d line %d is already bound as %s by %s", e.Name, e.Port, e.Line, e.Direction, e.Owner)
}

// HardwareMapError is returned when the register window of a port cannot be
// mapped.
type HardwareMapError struct {
	Port    int
	Address uint64
	Err     error
}

func (e *HardwareMapError) Error() string {
	return fmt.Sprintf("mmgpio: port %d at %#x: %v", e.Port, e.Address, e.Err)
}

// Unwrap returns the mapping failure.
func (e *HardwareMapError) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *HardwareMapError) Cause() error {
	return e.Err
}
