// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pinmap

import (
	"strconv"
	"strings"
)

// HeaderPin maps a header pin code to the GPIO port and line that drives it.
type HeaderPin struct {
	Code int // 8XX or 9XX for P8.XX or P9.XX, with an optional 1/2 suffix
	Port int // Zero based index into Board.Ports
	Line int // Bit controlling the pin in the port registers, 0-31
}

// Unknown is returned by Lookup when a code is not in the table.
var Unknown = HeaderPin{Code: -1, Port: -1, Line: -1}

// IsValid returns false for Unknown.
func (h HeaderPin) IsValid() bool {
	return h.Code >= 0 && h.Port >= 0 && h.Line >= 0
}

// Header returns the header number, 8 or 9.
func (h HeaderPin) Header() int {
	return h.base() / 100
}

// Position returns the position on the header, 1 based.
func (h HeaderPin) Position() int {
	return h.base() % 100
}

// Variant returns 0 for a plain code, 1 for an "a" suffix and 2 for a "b"
// suffix.
func (h HeaderPin) Variant() int {
	if h.Code >= 1000 {
		return h.Code % 10
	}
	return 0
}

// String returns the header position as printed on the board, e.g. "P8_27"
// or "P8_27b".
func (h HeaderPin) String() string {
	if !h.IsValid() {
		return "UNKNOWN"
	}
	s := "P" + strconv.Itoa(h.Header()) + "_" + strconv.Itoa(h.Position())
	switch h.Variant() {
	case 1:
		s += "a"
	case 2:
		s += "b"
	}
	return s
}

// GPIOName returns the SoC name of the line, e.g. "GPIO3_23".
//
// The name uses the zero based port index, which matches the datasheet
// numbering on the AM335x but is one less than the AM572x module number.
func (h HeaderPin) GPIOName() string {
	if !h.IsValid() {
		return "UNKNOWN"
	}
	return "GPIO" + strconv.Itoa(h.Port) + "_" + strconv.Itoa(h.Line)
}

func (h HeaderPin) base() int {
	if h.Code >= 1000 {
		return h.Code / 10
	}
	return h.Code
}

// Lookup returns the entry of table whose code is exactly code.
//
// It returns Unknown if there is no such entry. Suffixed codes are not
// matched against their plain form and vice versa.
func Lookup(code int, table []HeaderPin) HeaderPin {
	for i := range table {
		if table[i].Code == code {
			return table[i]
		}
	}
	return Unknown
}

// Board describes one supported board variant.
//
// The tables are immutable; do not modify them.
type Board struct {
	Name  string      // Human readable name
	ID    string      // Short identifier, as accepted by ByName
	Pins  []HeaderPin // Header pin table, in header order
	Ports []uint64    // Physical base address of each GPIO port
}

// String implements fmt.Stringer.
func (b *Board) String() string {
	return b.Name
}

// Lookup returns the table entry for code or Unknown.
func (b *Board) Lookup(code int) HeaderPin {
	return Lookup(code, b.Pins)
}

// Address returns the physical base address of the register bank of port.
func (b *Board) Address(port int) (uint64, bool) {
	if port < 0 || port >= len(b.Ports) {
		return 0, false
	}
	return b.Ports[port], true
}

// All returns every supported board.
func All() []*Board {
	return []*Board{BeagleBoneAI, BeagleBoneBlack}
}

// ByName returns the board with the given identifier.
//
// The comparison is case insensitive, so both "bbai" and "BBAI" are
// accepted. It returns nil if no board matches.
func ByName(name string) *Board {
	for _, b := range All() {
		if strings.EqualFold(b.ID, name) {
			return b
		}
	}
	return nil
}
