// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pinmap contains the expansion header pin tables of the supported
// BeagleBone boards.
//
// A header pin is identified by a numeric code: 827 is P8.27 and 911 is
// P9.11. Some header positions are wired to two SoC balls on the BeagleBone
// AI; a trailing 1 or 2 selects the first (a) or second (b) ball, so 8271 is
// P8.27a and 8272 is P8.27b. The code without suffix is the default line of
// the position.
//
// # Physical
//
// https://github.com/beagleboard/beaglebone-ai/wiki/System-Reference-Manual#expansion-connectors
//
// https://github.com/beagleboard/beaglebone-black/wiki/System-Reference-Manual#expansion-connectors
package pinmap
