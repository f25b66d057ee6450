// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package beagle contains the BeagleBone header pin out.
//
// The P8 and P9 expansion headers are registered in pinreg by a driver
// registered with Register. The board is chosen by the caller; it is not
// auto detected.
//
// # Physical
//
// https://docs.beagleboard.org/latest/boards/beaglebone/ai/
//
// https://docs.beagleboard.org/latest/boards/beaglebone/black/
package beagle
