// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package omap

import (
	"strconv"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
)

// WindowSize is the size of the register window mapped for each GPIO module.
const WindowSize = 0x2000

// Register offsets within the window.
const (
	offsetOE           = 0x134
	offsetDataIn       = 0x138
	offsetDataOut      = 0x13C
	offsetClearDataOut = 0x190
	offsetSetDataOut   = 0x194
)

// registers is the subset of a GPIO module register map used by this
// package, laid over the mapped window.
//
// Page 4994 of the AM335x TRM.
type registers struct {
	_            [offsetOE / 4]uint32
	oe           uint32 // 1 = input, 0 = output
	dataIn       uint32 // Sampled line levels
	dataOut      uint32 // Output latch
	_            [(offsetClearDataOut - offsetDataOut - 4) / 4]uint32
	clearDataOut uint32 // Writing 1 drives the line low
	setDataOut   uint32 // Writing 1 drives the line high
}

// Bank is the register set of one GPIO module.
type Bank interface {
	// DataIn returns the level of all 32 lines.
	DataIn() uint32
	// SetDataOut drives high every line whose bit is set in mask.
	SetDataOut(mask uint32)
	// ClearDataOut drives low every line whose bit is set in mask.
	ClearDataOut(mask uint32)
	// SetOutputEnable configures line as an output if output is true and as an
	// input otherwise.
	SetOutputEnable(line uint, output bool)
	// Close releases the mapping.
	Close() error
}

// Mapper maps the register window of the GPIO module at a physical address.
type Mapper interface {
	Map(base uint64) (Bank, error)
}

// Window is a mapped GPIO module register window.
//
// Every access is a single aligned 32 bits load or store, as required by the
// L4 interconnect.
type Window struct {
	base uint64
	mem  []byte
	r    *registers
	// unmap releases mem; nil when mem was not obtained through mmap.
	unmap func([]byte) error
}

// NewWindow lays the register map over mem, which must be at least
// WindowSize bytes and 4 bytes aligned.
func NewWindow(base uint64, mem []byte) (*Window, error) {
	if len(mem) < WindowSize {
		return nil, errors.Errorf("omap: window at %#x is %d bytes, need %d", base, len(mem), WindowSize)
	}
	if uintptr(unsafe.Pointer(&mem[0]))&3 != 0 {
		return nil, errors.Errorf("omap: window at %#x is not aligned", base)
	}
	return &Window{base: base, mem: mem, r: (*registers)(unsafe.Pointer(&mem[0]))}, nil
}

// String implements fmt.Stringer.
func (w *Window) String() string {
	return "omap-gpio@0x" + strconv.FormatUint(w.base, 16)
}

// Base returns the physical address of the window.
func (w *Window) Base() uint64 {
	return w.base
}

// DataIn implements Bank.
func (w *Window) DataIn() uint32 {
	return atomic.LoadUint32(&w.r.dataIn)
}

// SetDataOut implements Bank.
func (w *Window) SetDataOut(mask uint32) {
	atomic.StoreUint32(&w.r.setDataOut, mask)
}

// ClearDataOut implements Bank.
func (w *Window) ClearDataOut(mask uint32) {
	atomic.StoreUint32(&w.r.clearDataOut, mask)
}

// SetOutputEnable implements Bank.
//
// The output enable register has no set/clear counterpart so this is a
// read-modify-write. It is only meant to be used while configuring lines.
func (w *Window) SetOutputEnable(line uint, output bool) {
	bit := uint32(1) << (line & 31)
	v := atomic.LoadUint32(&w.r.oe)
	if output {
		v &^= bit
	} else {
		v |= bit
	}
	atomic.StoreUint32(&w.r.oe, v)
}

// Close implements Bank.
func (w *Window) Close() error {
	if w.mem == nil {
		return nil
	}
	var err error
	if w.unmap != nil {
		err = w.unmap(w.mem)
	}
	w.mem = nil
	w.r = nil
	if err != nil {
		return errors.Wrapf(err, "omap: unmapping %#x", w.base)
	}
	return nil
}

// DevMem maps register windows through a physical memory device.
//
// It is only supported on linux.
type DevMem struct {
	// Path defaults to /dev/mem.
	Path string
}

func (d *DevMem) path() string {
	if d.Path == "" {
		return "/dev/mem"
	}
	return d.Path
}

// Simulated maps every window to zeroed process memory.
//
// It lets the cyclic steps run on a machine without the hardware, e.g. to
// measure their cost.
type Simulated struct{}

// Map implements Mapper.
func (Simulated) Map(base uint64) (Bank, error) {
	buf := make([]uint32, WindowSize/4)
	w, err := NewWindow(base, unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), WindowSize))
	if err != nil {
		return nil, err
	}
	return w, nil
}

var _ Bank = &Window{}
var _ Mapper = &DevMem{}
var _ Mapper = Simulated{}
