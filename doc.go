// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package airflow is a container for the FS3000 air velocity sensor driver
// and the tools built around it.
//
// See package fs3000 for the driver and cmd/fs3000 for a command line tool
// that logs readings and exports them to Prometheus.
package airflow
