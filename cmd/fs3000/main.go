// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// fs3000 reads an FS3000 air velocity sensor, logs the readings and
// optionally exports them to Prometheus and draws them as a terminal gauge.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/airflow/fs3000"
	"github.com/GermanBionicSystems/airflow/screen1d"
)

// CLI args
var (
	busName    = flag.String("bus", "", "I²C bus to use, empty for the first one")
	variant    = flag.String("variant", "1005", "sensor variant: 1005 or 1015")
	interval   = flag.Duration("interval", time.Second, "time interval between sensor reads")
	validate   = flag.Bool("validate", false, "fail reads whose checksum does not match")
	listenAddr = flag.String("listen", "", "address to serve Prometheus metrics on, empty to disable")
	gauge      = flag.Bool("gauge", false, "draw a bar gauge instead of logging every reading")
	samples    = flag.Int("n", 0, "stop after this many reads, 0 to run forever")
	verbose    = flag.Bool("v", false, "log raw frames")
)

func init() {
	formatter := &log.TextFormatter{
		FullTimestamp: true,
	}
	log.SetFormatter(formatter)
}

func parseVariant(s string) (fs3000.Variant, error) {
	switch s {
	case "1005", "FS3000-1005":
		return fs3000.Type1005, nil
	case "1015", "FS3000-1015":
		return fs3000.Type1015, nil
	default:
		return 0, fmt.Errorf("unknown variant %q, want 1005 or 1015", s)
	}
}

func checkFlags(interval time.Duration, samples int) error {
	if interval <= 0 {
		return errors.New("-interval must be positive")
	}
	if samples < 0 {
		return errors.New("-n must not be negative")
	}
	return nil
}

func mainImpl() error {
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := checkFlags(*interval, *samples); err != nil {
		return err
	}
	v, err := parseVariant(*variant)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize periph")
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return errors.Wrap(err, "failed to open I²C")
	}
	defer b.Close()

	dev, err := fs3000.New(b, fs3000.DefaultAddress, v, &fs3000.Opts{ValidateChecksum: *validate})
	if err != nil {
		return errors.Wrap(err, "failed to create device")
	}
	log.Infof("Using %s on %s", dev, b)

	reg := prometheus.NewRegistry()
	m := newMetrics(reg, v)
	if *listenAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.Panic(http.ListenAndServe(*listenAddr, nil))
		}()
		log.Infof("Serving metrics on %s/metrics", *listenAddr)
	}

	p := &poller{dev: dev, metrics: m, limit: *samples}
	if *gauge {
		g, err := screen1d.New(&screen1d.Opts{X: 40})
		if err != nil {
			return err
		}
		defer g.Halt()
		p.gauge = g
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	done := make(chan struct{})
	go func() {
		<-stop
		close(done)
	}()
	p.run(*interval, done)
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "fs3000: %s.\n", err)
		os.Exit(1)
	}
}
