// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mmgpio multiplexes logical pins onto memory mapped GPIO ports and
// synchronizes them with the hardware once per control period.
//
// An Engine is used in two phases. While configuring, Bind resolves each
// requested header pin to a port and line, maps the port register window the
// first time the port is used and rejects lines that are already bound.
// Afterward the host calls ReadInputs and WriteOutputs once per period: each
// port's data register is read at most once and its set and clear registers
// are written once, regardless of how many pins share the port.
//
// The cyclic steps neither allocate, block nor return errors. They are not
// reentrant and must not run concurrently with Bind. Pin values are accessed
// atomically so external logic may call Pin.Out and Pin.Read from another
// goroutine.
package mmgpio
