// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/GermanBionicSystems/airflow/fs3000"
	"github.com/GermanBionicSystems/airflow/screen1d"
)

type poller struct {
	dev     *fs3000.Dev
	metrics *metrics
	gauge   *screen1d.Dev
	// limit is the number of reads before run returns, 0 for no limit.
	limit int
}

// sample does one read and records it. Errors are logged and counted, never
// fatal.
func (p *poller) sample() {
	f, err := p.dev.ReadFrame()
	if err != nil {
		kind := errTransport
		var ce *fs3000.ChecksumError
		if errors.As(err, &ce) {
			kind = errChecksum
		}
		p.metrics.errors.WithLabelValues(kind).Inc()
		log.WithField("kind", kind).Errorf("failed to read from %s: %s", p.dev, err)
		return
	}
	c := f.Count()
	mps := p.dev.Velocity(f)
	speed := p.dev.Speed(f)

	p.metrics.count.Set(float64(c))
	p.metrics.velocity.Set(float64(mps))
	log.WithFields(log.Fields{
		"frame": f.String(),
		"valid": f.Valid(),
	}).Debug("raw frame")

	if p.gauge != nil {
		_, hi := p.dev.Variant().Range()
		if err := p.gauge.Set(float64(speed)/float64(hi), speed.String()); err != nil {
			log.Errorf("failed to draw gauge: %s", err)
		}
		return
	}
	log.WithFields(log.Fields{
		"count":    c,
		"velocity": speed.String(),
	}).Infof("%s", p.dev)
}

// run samples every interval until done is closed or limit reads were made.
func (p *poller) run(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for n := 0; p.limit == 0 || n < p.limit; n++ {
		p.sample()
		if p.limit != 0 && n+1 == p.limit {
			return
		}
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}
