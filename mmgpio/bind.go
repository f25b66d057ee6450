// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmgpio

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"periph.io/x/bbgpio/pinmap"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Location designates a line by port number and bit index.
type Location struct {
	Port int
	Line int
}

func (l *Location) isValid(b *pinmap.Board) bool {
	if l == nil || l.Line < 0 || l.Line >= 32 {
		return false
	}
	_, ok := b.Address(l.Port)
	return ok
}

// Request describes one pin to bind.
type Request struct {
	// Name is the instance name of the pin. It must be unique in gpioreg.
	Name string
	// Header is the header pin code, e.g. 827 for P8.27 or 8271 for P8.27a.
	// Zero means none.
	Header int
	// Location is used when Header is zero or doesn't resolve on the board.
	Location *Location
	// Direction is "input" or "output".
	Direction string
	// Invert inverts the electrical level of the pin.
	Invert bool
}

// Bind resolves the request to a line, acquires its port and attaches a new
// Pin to it.
//
// An output line is driven to its initial level before its output enable
// bit is cleared.
func (e *Engine) Bind(req Request) (*Pin, error) {
	if e.closed {
		return nil, errors.New("mmgpio: engine is closed")
	}
	if req.Name == "" {
		return nil, errors.New("mmgpio: a pin name is required")
	}
	dir, err := ParseDirection(req.Direction)
	if err != nil {
		return nil, &InvalidDirectionError{Name: req.Name, Direction: req.Direction}
	}
	h := pinmap.Unknown
	if req.Header != 0 {
		h = e.board.Lookup(req.Header)
	}
	var portNum, line int
	switch {
	case h.IsValid():
		portNum, line = h.Port, h.Line
	case req.Location.isValid(e.board):
		portNum, line = req.Location.Port, req.Location.Line
	default:
		return nil, &UnresolvedPinError{Name: req.Name, Board: e.board.Name, Header: req.Header, Location: req.Location}
	}
	port, err := e.AcquirePort(portNum)
	if err != nil {
		return nil, err
	}
	if owner := port.lines[line]; owner != nil {
		return nil, &PinAlreadyBoundError{Name: req.Name, Port: portNum, Line: line, Owner: owner.name, Direction: owner.dir}
	}
	if _, ok := e.names[req.Name]; ok {
		return nil, errors.Errorf("mmgpio: %s: name already bound", req.Name)
	}
	if gpioreg.ByName(req.Name) != nil {
		return nil, errors.Errorf("mmgpio: %s: name already registered", req.Name)
	}

	p := &Pin{name: req.Name, header: h, port: port, line: uint(line), dir: dir}
	p.invert.Store(req.Invert)
	if err := gpioreg.Register(p); err != nil {
		return nil, errors.Wrapf(err, "mmgpio: %s", req.Name)
	}

	mask := uint32(1) << uint(line)
	if dir == Output {
		// Logical low, applied through the inversion.
		if req.Invert {
			port.bank.SetDataOut(mask)
		} else {
			port.bank.ClearDataOut(mask)
		}
		port.bank.SetOutputEnable(uint(line), true)
		port.outputs = append(port.outputs, p)
	} else {
		port.bank.SetOutputEnable(uint(line), false)
		port.inputs = append(port.inputs, p)
	}
	port.lines[line] = p
	e.names[req.Name] = p
	e.pins = append(e.pins, p)
	glog.V(1).Infof("mmgpio: %s: bound %s %s to port %d line %d (invert=%t)", e.name, dir, req.Name, portNum, line, req.Invert)
	return p, nil
}
