// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"periph.io/x/bbgpio/mmgpio"
	"periph.io/x/bbgpio/omap"
	"periph.io/x/bbgpio/pinmap"
)

// config is an instance file.
type config struct {
	Board          string        `yaml:"board"`
	Name           string        `yaml:"name"`
	Period         time.Duration `yaml:"period"`
	Mapper         string        `yaml:"mapper"`
	DevMem         string        `yaml:"devmem"`
	Listen         string        `yaml:"listen"`
	SkipIdleWrites bool          `yaml:"skip_idle_writes"`
	Pins           []pinConfig   `yaml:"pins"`
}

// pinConfig is one pin of an instance file. Either Header or both Port and
// Line must be set.
type pinConfig struct {
	Name      string `yaml:"name"`
	Header    int    `yaml:"header"`
	Port      *int   `yaml:"port"`
	Line      *int   `yaml:"line"`
	Direction string `yaml:"direction"`
	Invert    bool   `yaml:"invert"`
}

const defaultPeriod = time.Millisecond

func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

func parseConfig(r io.Reader) (*config, error) {
	c := &config{}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		return nil, err
	}
	if c.Period == 0 {
		c.Period = defaultPeriod
	}
	if c.Period < 0 {
		return nil, errors.Errorf("invalid period %s", c.Period)
	}
	if _, err := c.board(); err != nil {
		return nil, err
	}
	if _, err := c.mapper(); err != nil {
		return nil, err
	}
	if len(c.Pins) == 0 {
		return nil, errors.New("no pin")
	}
	return c, nil
}

func (c *config) board() (*pinmap.Board, error) {
	if c.Board == "" {
		return nil, errors.New("board is required")
	}
	b := pinmap.ByName(c.Board)
	if b == nil {
		return nil, errors.Errorf("unknown board %q", c.Board)
	}
	return b, nil
}

func (c *config) mapper() (omap.Mapper, error) {
	switch c.Mapper {
	case "", "devmem":
		return &omap.DevMem{Path: c.DevMem}, nil
	case "simulated":
		return omap.Simulated{}, nil
	default:
		return nil, errors.Errorf("unknown mapper %q, must be \"devmem\" or \"simulated\"", c.Mapper)
	}
}

// request converts the pin to a binding request.
func (p *pinConfig) request() mmgpio.Request {
	r := mmgpio.Request{Name: p.Name, Header: p.Header, Direction: p.Direction, Invert: p.Invert}
	if p.Port != nil && p.Line != nil {
		r.Location = &mmgpio.Location{Port: *p.Port, Line: *p.Line}
	}
	return r
}

// engine returns an engine with every pin bound.
func (c *config) engine() (*mmgpio.Engine, error) {
	b, err := c.board()
	if err != nil {
		return nil, err
	}
	m, err := c.mapper()
	if err != nil {
		return nil, err
	}
	e, err := mmgpio.New(mmgpio.Config{Board: b, Mapper: m, Name: c.Name, SkipIdleWrites: c.SkipIdleWrites})
	if err != nil {
		return nil, err
	}
	for i := range c.Pins {
		if _, err := e.Bind(c.Pins[i].request()); err != nil {
			e.Close()
			return nil, err
		}
	}
	return e, nil
}
