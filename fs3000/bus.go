// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fs3000

import (
	"periph.io/x/conn/v3/i2c"
)

// ReadableBus is the smallest bus capability the driver needs.
type ReadableBus interface {
	// Read fills r with len(r) bytes read from the device at the 7 bit
	// address addr. It blocks until the transaction completes.
	Read(addr uint16, r []byte) error
}

// WriteReadableBus is a bus that can also write bytes then read in a single
// transaction.
type WriteReadableBus interface {
	ReadableBus
	WriteRead(addr uint16, w, r []byte) error
}

// FromI2C adapts a periph.io I²C bus to WriteReadableBus.
func FromI2C(b i2c.Bus) WriteReadableBus {
	return &i2cBus{b: b}
}

type i2cBus struct {
	b i2c.Bus
}

func (a *i2cBus) Read(addr uint16, r []byte) error {
	return a.b.Tx(addr, nil, r)
}

func (a *i2cBus) WriteRead(addr uint16, w, r []byte) error {
	return a.b.Tx(addr, w, r)
}

func (a *i2cBus) String() string {
	return a.b.String()
}
