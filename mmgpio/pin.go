// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmgpio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"periph.io/x/bbgpio/pinmap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin is a bound line.
//
// The value of an input pin is refreshed by Engine.ReadInputs. The value of
// an output pin is set with Out and pushed to the hardware by
// Engine.WriteOutputs. Read, Out and SetInvert are safe to call concurrently
// with the cyclic steps.
//
// The direction is fixed at bind time.
type Pin struct {
	name   string
	header pinmap.HeaderPin
	port   *Port
	line   uint
	dir    Direction
	value  atomic.Bool
	invert atomic.Bool
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.name
}

// Halt implements conn.Resource.
//
// It is a noop.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin.
//
// It is the kernel style GPIO number: port*32+line.
func (p *Pin) Number() int {
	return p.port.number*32 + int(p.line)
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func implements pin.PinFunc.
func (p *Pin) Func() pin.Func {
	if p.dir == Input {
		if p.value.Load() {
			return gpio.IN_HIGH
		}
		return gpio.IN_LOW
	}
	if p.value.Load() {
		return gpio.OUT_HIGH
	}
	return gpio.OUT_LOW
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	if p.dir == Input {
		return []pin.Func{gpio.IN}
	}
	return []pin.Func{gpio.OUT}
}

// SetFunc implements pin.PinFunc.
//
// Only the function matching the bound direction is accepted.
func (p *Pin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN:
		return p.In(gpio.PullNoChange, gpio.NoEdge)
	case gpio.OUT_HIGH:
		return p.Out(gpio.High)
	case gpio.OUT, gpio.OUT_LOW:
		return p.Out(gpio.Low)
	default:
		return p.wrap(errors.New("unsupported function"))
	}
}

// In implements gpio.PinIn.
//
// It only succeeds on an input pin, without pull resistor nor edge
// detection.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	if p.dir != Input {
		return p.wrap(errors.New("bound as output"))
	}
	if pull != gpio.PullNoChange && pull != gpio.Float {
		return p.wrap(errors.New("doesn't support pull-up/pull-down"))
	}
	if edge != gpio.NoEdge {
		return p.wrap(errors.New("doesn't support edge detection"))
	}
	return nil
}

// Read implements gpio.PinIn.
//
// For an input it returns the value sampled by the last read step, with the
// invert flag applied. For an output it returns the last value set.
func (p *Pin) Read() gpio.Level {
	return gpio.Level(p.value.Load())
}

// WaitForEdge implements gpio.PinIn.
//
// Edge detection is not supported; it always returns false.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	return false
}

// Pull implements gpio.PinIn.
func (p *Pin) Pull() gpio.Pull {
	return gpio.PullNoChange
}

// DefaultPull implements gpio.PinIn.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.PullNoChange
}

// Out implements gpio.PinOut.
//
// The level is written to the hardware by the next write step.
func (p *Pin) Out(l gpio.Level) error {
	if p.dir != Output {
		return p.wrap(errors.New("bound as input"))
	}
	p.value.Store(bool(l))
	return nil
}

// PWM implements gpio.PinOut.
func (p *Pin) PWM(gpio.Duty, physic.Frequency) error {
	return p.wrap(errors.New("pwm is not supported"))
}

// Direction returns the direction the pin is bound as.
func (p *Pin) Direction() Direction {
	return p.dir
}

// Port returns the port the pin belongs to.
func (p *Pin) Port() *Port {
	return p.port
}

// Line returns the bit index of the pin within its port.
func (p *Pin) Line() int {
	return int(p.line)
}

// Header returns the header pin the pin was resolved from, or pinmap.Unknown
// when it was bound by explicit location.
func (p *Pin) Header() pinmap.HeaderPin {
	return p.header
}

// Invert reports whether the electrical level is inverted.
func (p *Pin) Invert() bool {
	return p.invert.Load()
}

// SetInvert changes the inversion of the pin. It takes effect on the next
// cyclic step.
func (p *Pin) SetInvert(b bool) {
	p.invert.Store(b)
}

func (p *Pin) wrap(err error) error {
	return fmt.Errorf("mmgpio (%s): %v", p, err)
}

var _ gpio.PinIO = &Pin{}
var _ pin.PinFunc = &Pin{}
