// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmgpio

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
)

func TestReadInputs(t *testing.T) {
	data := []struct {
		in     uint32
		invert bool
		want   gpio.Level
	}{
		{0, false, gpio.Low},
		{1 << 23, false, gpio.High},
		{0, true, gpio.High},
		{1 << 23, true, gpio.Low},
		{^uint32(1 << 23), false, gpio.Low},
	}
	for i, line := range data {
		e, m := newTestEngine(t, Config{})
		p, err := e.Bind(Request{Name: "read_in", Header: 827, Direction: "input", Invert: line.invert})
		if err != nil {
			t.Fatal(err)
		}
		m.bank(3).in = line.in
		e.ReadInputs(time.Millisecond)
		if l := p.Read(); l != line.want {
			t.Fatalf("#%d: %s", i, l)
		}
		if m.bank(3).reads != 1 {
			t.Fatalf("#%d: %d reads", i, m.bank(3).reads)
		}
		if err := e.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestReadInputs_invertChange(t *testing.T) {
	e, m := newTestEngine(t, Config{})
	p, err := e.Bind(Request{Name: "read_inv", Header: 827, Direction: "input"})
	if err != nil {
		t.Fatal(err)
	}
	m.bank(3).in = 1 << 23
	e.ReadInputs(0)
	if p.Read() != gpio.High {
		t.Fatal("expected high")
	}
	p.SetInvert(true)
	if p.Read() != gpio.High {
		t.Fatal("value only changes on the next read step")
	}
	e.ReadInputs(0)
	if p.Read() != gpio.Low || !p.Invert() {
		t.Fatal("expected low")
	}
}

func TestReadInputs_noInputs(t *testing.T) {
	e, m := newTestEngine(t, Config{})
	if _, err := e.Bind(Request{Name: "noin_out", Header: 827, Direction: "output"}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Bind(Request{Name: "noin_in", Header: 803, Direction: "input"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		e.ReadInputs(0)
	}
	if r := m.bank(3).reads; r != 0 {
		t.Fatalf("port without inputs was read %d times", r)
	}
	if r := m.bank(0).reads; r != 3 {
		t.Fatalf("%d", r)
	}
}

func TestWriteOutputs(t *testing.T) {
	data := []struct {
		value   gpio.Level
		invert  bool
		set     uint32
		clr     uint32
		outputs uint32
	}{
		{gpio.High, false, 1 << 23, 0, 1 << 23},
		{gpio.Low, false, 0, 1 << 23, 0},
		{gpio.High, true, 0, 1 << 23, 0},
		{gpio.Low, true, 1 << 23, 0, 1 << 23},
	}
	for i, line := range data {
		e, m := newTestEngine(t, Config{})
		p, err := e.Bind(Request{Name: "write_out", Header: 827, Direction: "output", Invert: line.invert})
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Out(line.value); err != nil {
			t.Fatal(err)
		}
		b := m.bank(3)
		b.resetCounts()
		e.WriteOutputs(time.Millisecond)
		if b.sets != 1 || b.clears != 1 {
			t.Fatalf("#%d: %d sets %d clears", i, b.sets, b.clears)
		}
		if b.lastSet != line.set || b.lastClr != line.clr {
			t.Fatalf("#%d: set %#x clear %#x", i, b.lastSet, b.lastClr)
		}
		if b.out != line.outputs {
			t.Fatalf("#%d: %#x", i, b.out)
		}
		if p.Read() != line.value {
			t.Fatalf("#%d: %s", i, p.Read())
		}
		if err := e.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWriteOutputs_noOutputs(t *testing.T) {
	e, m := newTestEngine(t, Config{})
	if _, err := e.Bind(Request{Name: "noout_in", Header: 827, Direction: "input"}); err != nil {
		t.Fatal(err)
	}
	b := m.bank(3)
	b.resetCounts()
	e.WriteOutputs(0)
	if b.sets != 1 || b.clears != 1 || b.lastSet != 0 || b.lastClr != 0 {
		t.Fatalf("%d %d %#x %#x", b.sets, b.clears, b.lastSet, b.lastClr)
	}
}

func TestWriteOutputs_skipIdleWrites(t *testing.T) {
	e, m := newTestEngine(t, Config{SkipIdleWrites: true})
	if _, err := e.Bind(Request{Name: "skip_in", Header: 827, Direction: "input"}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Bind(Request{Name: "skip_out", Header: 803, Direction: "output"}); err != nil {
		t.Fatal(err)
	}
	b3, b0 := m.bank(3), m.bank(0)
	b3.resetCounts()
	b0.resetCounts()
	e.WriteOutputs(0)
	if b3.sets != 0 || b3.clears != 0 {
		t.Fatal("idle port must not be written")
	}
	if b0.sets != 1 || b0.clears != 1 {
		t.Fatalf("%d %d", b0.sets, b0.clears)
	}
}

func TestCycle_sharedPort(t *testing.T) {
	e, m := newTestEngine(t, Config{})
	// 827, 828, 829 and 830 are lines 23, 19, 22 and 20 of port 3.
	in1, err := e.Bind(Request{Name: "shared_in1", Header: 827, Direction: "input"})
	if err != nil {
		t.Fatal(err)
	}
	in2, err := e.Bind(Request{Name: "shared_in2", Header: 828, Direction: "input", Invert: true})
	if err != nil {
		t.Fatal(err)
	}
	out1, err := e.Bind(Request{Name: "shared_out1", Header: 829, Direction: "output"})
	if err != nil {
		t.Fatal(err)
	}
	out2, err := e.Bind(Request{Name: "shared_out2", Header: 830, Direction: "output"})
	if err != nil {
		t.Fatal(err)
	}
	if len(e.Ports()) != 1 || m.maps != 1 {
		t.Fatal("expected a single port")
	}
	port := in1.Port()
	if port.Inputs() != 2 || port.Outputs() != 2 {
		t.Fatal(port.Inputs(), port.Outputs())
	}

	b := m.bank(3)
	b.resetCounts()
	b.in = 1<<23 | 1<<19
	e.ReadInputs(0)
	if in1.Read() != gpio.High || in2.Read() != gpio.Low {
		t.Fatal(in1.Read(), in2.Read())
	}
	if b.reads != 1 {
		t.Fatalf("%d reads", b.reads)
	}

	if err := out1.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if err := out2.Out(gpio.Low); err != nil {
		t.Fatal(err)
	}
	e.WriteOutputs(0)
	if b.sets != 1 || b.clears != 1 {
		t.Fatalf("%d sets %d clears", b.sets, b.clears)
	}
	if b.lastSet != 1<<22 || b.lastClr != 1<<20 {
		t.Fatalf("set %#x clear %#x", b.lastSet, b.lastClr)
	}
	if b.lastSet&b.lastClr != 0 {
		t.Fatal("a bit must be in a single mask")
	}
	// Input lines are never driven.
	if (b.lastSet|b.lastClr)&(1<<23|1<<19) != 0 {
		t.Fatal("input lines must not be written")
	}
}

func TestFuncts(t *testing.T) {
	e, m := newTestEngine(t, Config{Name: "bb_gpio.0"})
	if _, err := e.Bind(Request{Name: "functs_in", Header: 827, Direction: "input"}); err != nil {
		t.Fatal(err)
	}
	f := e.Functs()
	if len(f) != 2 || f[0].Name != "bb_gpio.0.read" || f[1].Name != "bb_gpio.0.write" {
		t.Fatalf("%v", f)
	}
	b := m.bank(3)
	b.resetCounts()
	for _, fn := range f {
		fn.Fn(time.Millisecond)
	}
	if b.reads != 1 || b.sets != 1 || b.clears != 1 {
		t.Fatalf("%d %d %d", b.reads, b.sets, b.clears)
	}
}
