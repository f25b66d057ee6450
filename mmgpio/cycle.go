// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmgpio

import "time"

// ReadInputs samples every port with at least one input pin.
//
// Each such port's data register is read exactly once. Ports without input
// pins are not touched. It must not be called concurrently with itself,
// WriteOutputs or the configuration methods.
//
// period is the nominal period of the caller's loop. It is unused.
func (e *Engine) ReadInputs(period time.Duration) {
	for _, port := range e.active {
		if len(port.inputs) == 0 {
			continue
		}
		data := port.bank.DataIn()
		for _, p := range port.inputs {
			bit := data&(1<<p.line) != 0
			p.value.Store(bit != p.invert.Load())
		}
	}
}

// WriteOutputs pushes the value of every output pin to the hardware.
//
// Each port gets exactly one write to its set register and one to its clear
// register, with a zero mask for ports without output pins unless
// Config.SkipIdleWrites is set. Lines not bound as outputs are left
// untouched.
//
// period is the nominal period of the caller's loop. It is unused.
func (e *Engine) WriteOutputs(period time.Duration) {
	for _, port := range e.active {
		if e.skipIdleWrites && len(port.outputs) == 0 {
			continue
		}
		var set, clr uint32
		for _, p := range port.outputs {
			if p.value.Load() != p.invert.Load() {
				set |= 1 << p.line
			} else {
				clr |= 1 << p.line
			}
		}
		port.bank.SetDataOut(set)
		port.bank.ClearDataOut(clr)
	}
}

// Funct is a named cyclic function.
type Funct struct {
	Name string
	Fn   func(period time.Duration)
}

// Functs returns the cyclic functions of the engine, named "<name>.read" and
// "<name>.write", in the order they are meant to run within a period.
func (e *Engine) Functs() []Funct {
	return []Funct{
		{Name: e.name + ".read", Fn: e.ReadInputs},
		{Name: e.name + ".write", Fn: e.WriteOutputs},
	}
}
