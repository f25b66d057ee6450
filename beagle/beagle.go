// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package beagle

import (
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"periph.io/x/bbgpio/omap"
	"periph.io/x/bbgpio/pinmap"
	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
	"periph.io/x/conn/v3/pin/pinreg"
)

// Rows is the number of rows of pins of each expansion header.
const Rows = 23

// Power and non GPIO positions of P9. P8 only has ground at 1 and 2.
var p9 = map[int]pin.Pin{
	1:  pin.GROUND,
	2:  pin.GROUND,
	3:  pin.V3_3,     // VDD_3V3
	4:  pin.V3_3,     // VDD_3V3
	5:  pin.V5,       // VDD_5V
	6:  pin.V5,       // VDD_5V
	7:  pin.V5,       // SYS_5V
	8:  pin.V5,       // SYS_5V
	9:  gpio.INVALID, // PWR_BUT
	10: gpio.INVALID, // SYS_RESETN
	32: pin.V1_8,     // VDD_ADC
	33: gpio.INVALID, // AIN4
	34: pin.GROUND,   // GNDA_ADC
	35: gpio.INVALID, // AIN6
	36: gpio.INVALID, // AIN5
	37: gpio.INVALID, // AIN2
	38: gpio.INVALID, // AIN3
	39: gpio.INVALID, // AIN0
	40: gpio.INVALID, // AIN1
	43: pin.GROUND,
	44: pin.GROUND,
	45: pin.GROUND,
	46: pin.GROUND,
}

// Header returns the pins of expansion header 8 or 9 of board, as rows of
// two pins.
//
// A GPIO position is a pin named after its port and line, e.g. "GPIO3_23".
func Header(b *pinmap.Board, header int) ([][]pin.Pin, error) {
	if header != 8 && header != 9 {
		return nil, errors.Errorf("beagle: no header P%d", header)
	}
	rows := make([][]pin.Pin, Rows)
	for i := range rows {
		rows[i] = []pin.Pin{position(b, header, 2*i+1), position(b, header, 2*i+2)}
	}
	return rows, nil
}

func position(b *pinmap.Board, header, pos int) pin.Pin {
	if header == 8 && pos <= 2 {
		return pin.GROUND
	}
	if header == 9 {
		if p, ok := p9[pos]; ok {
			return p
		}
	}
	if h := b.Lookup(header*100 + pos); h.IsValid() {
		return &pin.BasicPin{N: h.GPIOName()}
	}
	return gpio.INVALID
}

// HeaderName returns the pinreg name of expansion header 8 or 9.
func HeaderName(header int) string {
	return "P" + strconv.Itoa(header)
}

// Register registers the driver for board.
//
// It must be called before driverreg.Init. Only one board can be registered.
func Register(b *pinmap.Board) error {
	if b == nil {
		return errors.New("beagle: a board is required")
	}
	return driverreg.Register(&driver{board: b})
}

// driver implements driverreg.Driver.
type driver struct {
	board *pinmap.Board
	// baseAddresses lists the GPIO modules exposed by the kernel.
	baseAddresses func() ([]uint64, error)
}

func (d *driver) String() string {
	return "beagle"
}

func (d *driver) Prerequisites() []string {
	return nil
}

func (d *driver) After() []string {
	return nil
}

// Init registers the P8 and P9 headers and warns about GPIO modules of the
// board that the kernel doesn't know about.
func (d *driver) Init() (bool, error) {
	for _, n := range []int{8, 9} {
		rows, err := Header(d.board, n)
		if err != nil {
			return true, err
		}
		if err := pinreg.Register(HeaderName(n), rows); err != nil {
			return true, errors.Wrap(err, "beagle")
		}
	}
	d.checkAddresses()
	return true, nil
}

func (d *driver) checkAddresses() {
	get := d.baseAddresses
	if get == nil {
		get = omap.BaseAddresses
	}
	found, err := get()
	if err != nil {
		glog.V(1).Infof("beagle: can't list GPIO modules: %v", err)
		return
	}
	for _, a := range omap.Missing(d.board.Ports, found) {
		glog.Warningf("beagle: %s: GPIO module at %#x is not listed in %s", d.board, a, omap.DriverDir)
	}
}
