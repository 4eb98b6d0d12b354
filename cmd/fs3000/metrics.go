// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/GermanBionicSystems/airflow/fs3000"
)

const (
	errTransport = "transport"
	errChecksum  = "checksum"
)

type metrics struct {
	velocity prometheus.Gauge
	count    prometheus.Gauge
	errors   *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer, v fs3000.Variant) *metrics {
	labels := prometheus.Labels{"variant": v.String()}
	m := &metrics{
		velocity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "air_velocity_metres_per_second",
			Help:        "Air velocity (units: m/s)",
			ConstLabels: labels,
		}),
		count: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "fs3000_raw_count",
			Help:        "Raw sensor count of the last good read",
			ConstLabels: labels,
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "fs3000_read_errors_total",
			Help:        "Failed sensor reads by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
	}
	reg.MustRegister(m.velocity, m.count, m.errors)
	// Export both kinds from the start.
	m.errors.WithLabelValues(errTransport)
	m.errors.WithLabelValues(errChecksum)
	return m
}
