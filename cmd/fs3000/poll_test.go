// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/GermanBionicSystems/airflow/fs3000"
	"github.com/GermanBionicSystems/airflow/screen1d"
)

const addr = uint16(fs3000.DefaultAddress)

func init() {
	log.SetOutput(io.Discard)
}

func getPoller(t *testing.T, opts *fs3000.Opts, ops ...i2ctest.IO) (*poller, *i2ctest.Playback) {
	bus := &i2ctest.Playback{Ops: ops, DontPanic: true}
	dev, err := fs3000.New(bus, fs3000.DefaultAddress, fs3000.Type1005, opts)
	if err != nil {
		t.Fatal(err)
	}
	return &poller{dev: dev, metrics: newMetrics(prometheus.NewRegistry(), fs3000.Type1005)}, bus
}

func TestSample(t *testing.T) {
	p, bus := getPoller(t, nil, i2ctest.IO{Addr: addr, R: []byte{0x70, 0x03, 0x8d, 0x00, 0x00}})
	p.sample()
	if c := testutil.ToFloat64(p.metrics.count); c != 909 {
		t.Errorf("count=%f expected 909", c)
	}
	if v := testutil.ToFloat64(p.metrics.velocity); v < 1.057 || v > 1.058 {
		t.Errorf("velocity=%f expected 1.057", v)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSampleErrors(t *testing.T) {
	p, _ := getPoller(t, &fs3000.Opts{ValidateChecksum: true},
		i2ctest.IO{Addr: addr, R: []byte{0x00, 0x03, 0x8d, 0x00, 0x00}})
	p.sample()
	// Playback is exhausted, so this one fails on the bus.
	p.sample()
	if n := testutil.ToFloat64(p.metrics.errors.WithLabelValues(errChecksum)); n != 1 {
		t.Errorf("checksum errors=%f expected 1", n)
	}
	if n := testutil.ToFloat64(p.metrics.errors.WithLabelValues(errTransport)); n != 1 {
		t.Errorf("transport errors=%f expected 1", n)
	}
	if v := testutil.ToFloat64(p.metrics.velocity); v != 0 {
		t.Errorf("velocity=%f expected untouched", v)
	}
}

func TestSampleGauge(t *testing.T) {
	p, _ := getPoller(t, nil, i2ctest.IO{Addr: addr, R: []byte{0x70, 0x03, 0x8d, 0x00, 0x00}})
	var buf bytes.Buffer
	g, err := screen1d.New(&screen1d.Opts{X: 10, W: &buf})
	if err != nil {
		t.Fatal(err)
	}
	p.gauge = g
	p.sample()
	if !strings.Contains(buf.String(), "m/s") {
		t.Errorf("gauge output %q is missing the velocity", buf.String())
	}
}

func TestRunLimit(t *testing.T) {
	frame := i2ctest.IO{Addr: addr, R: []byte{0x70, 0x03, 0x8d, 0x00, 0x00}}
	p, bus := getPoller(t, nil, frame, frame, frame)
	p.limit = 3
	p.run(time.Millisecond, make(chan struct{}))
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRunDone(t *testing.T) {
	p, _ := getPoller(t, nil)
	done := make(chan struct{})
	close(done)
	finished := make(chan struct{})
	go func() {
		p.run(time.Hour, done)
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("run() did not return after done was closed")
	}
}

func TestParseVariant(t *testing.T) {
	for s, want := range map[string]fs3000.Variant{"1005": fs3000.Type1005, "FS3000-1015": fs3000.Type1015} {
		v, err := parseVariant(s)
		if err != nil || v != want {
			t.Errorf("parseVariant(%q)=%s, %v", s, v, err)
		}
	}
	if _, err := parseVariant("2000"); err == nil {
		t.Error("parseVariant accepted 2000")
	}
}

func TestCheckFlags(t *testing.T) {
	var tests = []struct {
		interval time.Duration
		samples  int
		ok       bool
	}{
		{time.Second, 0, true},
		{time.Millisecond, 10, true},
		{0, 0, false},
		{-time.Second, 1, false},
		{time.Second, -1, false},
	}
	for _, test := range tests {
		if err := checkFlags(test.interval, test.samples); (err == nil) != test.ok {
			t.Errorf("checkFlags(%s, %d)=%v", test.interval, test.samples, err)
		}
	}
}

func TestSampleMatchesSense(t *testing.T) {
	frame := i2ctest.IO{Addr: addr, R: []byte{0x70, 0x07, 0xd0, 0x00, 0x00}}
	p, _ := getPoller(t, nil, frame, frame)
	p.sample()
	want, err := p.dev.ReadVelocity()
	if err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(p.metrics.velocity); got != float64(want) {
		t.Errorf("exported velocity %f, ReadVelocity()=%f", got, want)
	}
}
