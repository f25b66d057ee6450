// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"periph.io/x/bbgpio/mmgpio"
)

var benchOpts = struct {
	config    string
	n         int
	simulated bool
}{}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the latency of the cyclic functions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchOpts.n <= 0 {
			return errors.Errorf("-n must be positive, got %d", benchOpts.n)
		}
		c, err := loadConfig(benchOpts.config)
		if err != nil {
			return err
		}
		if benchOpts.simulated {
			c.Mapper = "simulated"
		}
		e, err := c.engine()
		if err != nil {
			return err
		}
		defer e.Close()
		return report(os.Stdout, bench(e, c.Period, benchOpts.n))
	},
}

func init() {
	benchCmd.Flags().StringVarP(&benchOpts.config, "config", "c", "bbgpio.yaml", "instance file")
	benchCmd.Flags().IntVarP(&benchOpts.n, "n", "n", 10000, "number of periods")
	benchCmd.Flags().BoolVar(&benchOpts.simulated, "simulated", false, "use process memory instead of the GPIO modules")
}

// samples are the durations of each cyclic function, in nanoseconds.
type samples struct {
	name string
	d    []float64
}

// bench runs the cyclic functions of e back to back n times.
func bench(e *mmgpio.Engine, period time.Duration, n int) []samples {
	functs := e.Functs()
	out := make([]samples, len(functs))
	for i := range functs {
		out[i] = samples{name: functs[i].Name, d: make([]float64, n)}
	}
	for j := 0; j < n; j++ {
		for i := range functs {
			start := time.Now()
			functs[i].Fn(period)
			out[i].d[j] = float64(time.Since(start))
		}
	}
	return out
}

func report(w io.Writer, all []samples) error {
	for _, s := range all {
		if len(s.d) == 0 {
			continue
		}
		sort.Float64s(s.d)
		mean, std := stat.MeanStdDev(s.d, nil)
		p50 := stat.Quantile(0.5, stat.Empirical, s.d, nil)
		p99 := stat.Quantile(0.99, stat.Empirical, s.d, nil)
		if _, err := fmt.Fprintf(w, "%s: n=%d mean=%s stddev=%s p50=%s p99=%s max=%s\n",
			s.name, len(s.d), ns(mean), ns(std), ns(p50), ns(p99), ns(s.d[len(s.d)-1])); err != nil {
			return err
		}
	}
	return nil
}

func ns(f float64) time.Duration {
	return time.Duration(f)
}
