// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"periph.io/x/bbgpio"
	"periph.io/x/bbgpio/mmgpio"
)

var runOpts = struct {
	config string
	listen string
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bind the pins of an instance file and run the cyclic functions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(runOpts.config)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("listen") {
			c.Listen = runOpts.listen
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, c)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOpts.config, "config", "c", "bbgpio.yaml", "instance file")
	runCmd.Flags().StringVarP(&runOpts.listen, "listen", "l", "", "HTTP address to serve the pins on, overrides the instance file")
}

func run(ctx context.Context, c *config) error {
	b, err := c.board()
	if err != nil {
		return err
	}
	state, err := bbgpio.Init(b)
	if err != nil {
		return err
	}
	for _, f := range state.Failed {
		glog.Warningf("bbgpio: %s", f)
	}
	e, err := c.engine()
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Close(); err != nil {
			glog.Errorf("bbgpio: %v", err)
		}
	}()

	errc := make(chan error, 1)
	if c.Listen != "" {
		srv := newServer(c.Listen, e)
		go func() {
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				errc <- err
			}
		}()
		defer func() {
			if err := shutdown(srv, httpTimeout); err != nil {
				glog.Errorf("bbgpio: %v", err)
			}
		}()
		glog.Infof("bbgpio: serving %d pins on %s", len(e.Pins()), c.Listen)
	}
	return loop(ctx, e, c.Period, errc)
}

// shutdown stops srv, waiting at most timeout for the active requests.
func shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// loop runs the cyclic functions of e every period until ctx is canceled or
// errc yields an error.
func loop(ctx context.Context, e *mmgpio.Engine, period time.Duration, errc <-chan error) error {
	functs := e.Functs()
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			return err
		case <-t.C:
			for i := range functs {
				functs[i].Fn(period)
			}
		}
	}
}
