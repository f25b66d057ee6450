// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestBench(t *testing.T) {
	c, err := parseConfig(strings.NewReader(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	e, err := c.engine()
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()
	s := bench(e, c.Period, 100)
	if len(s) != 2 || s[0].name != "bb_gpio.0.read" || s[1].name != "bb_gpio.0.write" {
		t.Fatalf("%v", s)
	}
	for _, x := range s {
		if len(x.d) != 100 {
			t.Fatal(len(x.d))
		}
	}
}

func TestReport(t *testing.T) {
	b := bytes.Buffer{}
	s := []samples{
		{name: "x.read", d: []float64{4000, 1000, 3000, 2000}},
		{name: "x.write"},
	}
	if err := report(&b, s); err != nil {
		t.Fatal(err)
	}
	want := "x.read: n=4 mean=2.5µs stddev=1.29µs p50=2µs p99=4µs max=4µs\n"
	if s := b.String(); s != want {
		t.Fatalf("%q != %q", s, want)
	}
}

func TestLoop(t *testing.T) {
	c, err := parseConfig(strings.NewReader(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	e, err := c.engine()
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := loop(ctx, e, time.Millisecond, nil); err != nil {
		t.Fatal(err)
	}

	errc := make(chan error, 1)
	errc <- errors.New("listen failed")
	if err := loop(context.Background(), e, time.Hour, errc); err == nil {
		t.Fatal("expected error")
	}
}

func TestShutdown(t *testing.T) {
	if err := shutdown(&http.Server{}, time.Second); err != nil {
		t.Fatal(err)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}))
	defer ts.Close()
	// Unblock the handler before the server is closed.
	defer close(release)
	go http.Get(ts.URL)
	<-started
	if err := shutdown(ts.Config, 10*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal(err)
	}
}
