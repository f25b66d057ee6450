// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bbgpio multiplexes the memory-mapped GPIO banks of BeagleBone boards
// into named pins that are sampled and driven once per control period.
//
// The engine lives in package mmgpio, the header pin tables in package pinmap
// and the register access in package omap.
package bbgpio

import (
	"periph.io/x/bbgpio/beagle"
	"periph.io/x/bbgpio/pinmap"
	"periph.io/x/conn/v3/driver/driverreg"
)

// Init registers the header driver for board, then calls driverreg.Init() and
// returns it as-is.
//
// It can only be called once per process.
func Init(board *pinmap.Board) (*driverreg.State, error) {
	if err := beagle.Register(board); err != nil {
		return nil, err
	}
	return driverreg.Init()
}
