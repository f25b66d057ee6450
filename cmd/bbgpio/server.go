// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"
	"periph.io/x/bbgpio/mmgpio"
	"periph.io/x/conn/v3/gpio"
)

const httpTimeout = 3 * time.Second

// pinState is the JSON representation of a bound pin.
type pinState struct {
	Name      string `json:"name"`
	Header    string `json:"header,omitempty"`
	Port      int    `json:"port"`
	Line      int    `json:"line"`
	Direction string `json:"direction"`
	Invert    bool   `json:"invert"`
	Level     bool   `json:"level"`
}

func newPinState(p *mmgpio.Pin) pinState {
	s := pinState{
		Name:      p.Name(),
		Port:      p.Port().Number(),
		Line:      p.Line(),
		Direction: p.Direction().String(),
		Invert:    p.Invert(),
		Level:     bool(p.Read()),
	}
	if h := p.Header(); h.IsValid() {
		s.Header = h.String()
	}
	return s
}

// server exposes the pins of an engine.
//
// The pin handles are safe to use concurrently with the cyclic steps, so the
// handlers don't synchronize with the loop.
type server struct {
	e *mmgpio.Engine
}

func newServer(addr string, e *mmgpio.Engine) *http.Server {
	s := &server{e: e}
	r := httprouter.New()
	r.GET("/pins", s.handleList)
	r.GET("/pins/:name", s.handleGet)
	r.PUT("/pins/:name/:level", s.handleSet)
	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       httpTimeout,
		ReadHeaderTimeout: httpTimeout,
		WriteTimeout:      httpTimeout,
		IdleTimeout:       2 * httpTimeout,
	}
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	pins := s.e.Pins()
	out := make([]pinState, 0, len(pins))
	for _, p := range pins {
		out = append(out, newPinState(p))
	}
	writeJSON(w, out)
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p := s.e.ByName(ps.ByName("name"))
	if p == nil {
		http.Error(w, "pin not found", http.StatusNotFound)
		return
	}
	writeJSON(w, newPinState(p))
}

func (s *server) handleSet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p := s.e.ByName(ps.ByName("name"))
	if p == nil {
		http.Error(w, "pin not found", http.StatusNotFound)
		return
	}
	l, ok := parseLevel(ps.ByName("level"))
	if !ok {
		http.Error(w, "level must be high, low, 1 or 0", http.StatusBadRequest)
		return
	}
	if err := p.Out(l); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	glog.V(1).Infof("bbgpio: %s set to %s", p, l)
	writeJSON(w, newPinState(p))
}

func parseLevel(s string) (gpio.Level, bool) {
	switch strings.ToLower(s) {
	case "high", "1", "true":
		return gpio.High, true
	case "low", "0", "false":
		return gpio.Low, true
	default:
		return gpio.Low, false
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("bbgpio: %v", err)
	}
}
