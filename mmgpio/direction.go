// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmgpio

// Direction is the direction a line is bound as.
type Direction uint8

const (
	Input  Direction = 1
	Output Direction = 2
)

// String returns the direction as accepted by ParseDirection.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// ParseDirection converts "input" or "output" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	default:
		return 0, &InvalidDirectionError{Direction: s}
	}
}
