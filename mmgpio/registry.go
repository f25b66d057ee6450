// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmgpio

import (
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"periph.io/x/bbgpio/omap"
	"periph.io/x/bbgpio/pinmap"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Config configures an Engine.
type Config struct {
	// Board selects the pin table and the port addresses. Required.
	Board *pinmap.Board
	// Mapper maps port register windows. Defaults to &omap.DevMem{}.
	Mapper omap.Mapper
	// Name prefixes the name of the cyclic functions. Defaults to "bb_gpio".
	Name string
	// SkipIdleWrites skips the set and clear register writes of ports without
	// output pins. By default both registers are written with a zero mask.
	SkipIdleWrites bool
}

// Engine owns the ports and pins of one component instance.
type Engine struct {
	name           string
	board          *pinmap.Board
	mapper         omap.Mapper
	skipIdleWrites bool

	ports  []*Port // Indexed by port number
	active []*Port // In acquisition order
	pins   []*Pin  // In bind order
	names  map[string]*Pin
	closed bool
}

// New returns an Engine for cfg.Board. No hardware is touched until the
// first Bind.
func New(cfg Config) (*Engine, error) {
	if cfg.Board == nil {
		return nil, errors.New("mmgpio: a board is required")
	}
	e := &Engine{
		name:           cfg.Name,
		board:          cfg.Board,
		mapper:         cfg.Mapper,
		skipIdleWrites: cfg.SkipIdleWrites,
		ports:          make([]*Port, len(cfg.Board.Ports)),
		names:          map[string]*Pin{},
	}
	if e.name == "" {
		e.name = "bb_gpio"
	}
	if e.mapper == nil {
		e.mapper = &omap.DevMem{}
	}
	return e, nil
}

// String implements fmt.Stringer.
func (e *Engine) String() string {
	return e.name
}

// Board returns the active board.
func (e *Engine) Board() *pinmap.Board {
	return e.board
}

// AcquirePort returns the Port for port number n, mapping its register
// window the first time.
//
// It returns a *HardwareMapError if the board has no such port or the window
// cannot be mapped; in that case nothing is registered.
func (e *Engine) AcquirePort(n int) (*Port, error) {
	if e.closed {
		return nil, errors.New("mmgpio: engine is closed")
	}
	if n >= 0 && n < len(e.ports) && e.ports[n] != nil {
		return e.ports[n], nil
	}
	base, ok := e.board.Address(n)
	if !ok {
		return nil, &HardwareMapError{Port: n, Err: errors.Errorf("%s has no GPIO port %d", e.board, n)}
	}
	bank, err := e.mapper.Map(base)
	if err != nil {
		return nil, &HardwareMapError{Port: n, Address: base, Err: err}
	}
	p := &Port{number: n, base: base, bank: bank}
	e.ports[n] = p
	e.active = append(e.active, p)
	glog.V(1).Infof("mmgpio: %s: mapped port %d at %#x", e.name, n, base)
	return p, nil
}

// Ports returns the ports acquired so far, in acquisition order.
func (e *Engine) Ports() []*Port {
	out := make([]*Port, len(e.active))
	copy(out, e.active)
	return out
}

// Pins returns the bound pins, in bind order.
func (e *Engine) Pins() []*Pin {
	out := make([]*Pin, len(e.pins))
	copy(out, e.pins)
	return out
}

// ByName returns the pin bound under name, or nil.
func (e *Engine) ByName(name string) *Pin {
	return e.names[name]
}

// Close unregisters the pins and releases every port mapping.
//
// The cyclic steps become no-ops. It returns the first error encountered.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	var err error
	for _, p := range e.pins {
		if err1 := gpioreg.Unregister(p.name); err1 != nil && err == nil {
			err = err1
		}
	}
	for _, p := range e.active {
		if err1 := p.bank.Close(); err1 != nil && err == nil {
			err = err1
		}
	}
	e.active = nil
	for i := range e.ports {
		e.ports[i] = nil
	}
	return err
}

// Port is one GPIO register bank shared by the pins bound to its lines.
type Port struct {
	number  int
	base    uint64
	bank    omap.Bank
	lines   [32]*Pin
	inputs  []*Pin
	outputs []*Pin
}

// String implements fmt.Stringer.
func (p *Port) String() string {
	return "GPIO" + strconv.Itoa(p.number)
}

// Number returns the port number, the index into the board port table.
func (p *Port) Number() int {
	return p.number
}

// Base returns the physical address of the register window.
func (p *Port) Base() uint64 {
	return p.base
}

// Line returns the pin bound to line, or nil.
func (p *Port) Line(line int) *Pin {
	if line < 0 || line >= len(p.lines) {
		return nil
	}
	return p.lines[line]
}

// Inputs returns the number of input pins.
func (p *Port) Inputs() int {
	return len(p.inputs)
}

// Outputs returns the number of output pins.
func (p *Port) Outputs() int {
	return len(p.outputs)
}
