// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fs3000

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DeviceAddress is the I²C address of an FS3000.
type DeviceAddress uint16

// DefaultAddress is the hard-wired address of every FS3000. There is no
// alternate address.
const DefaultAddress DeviceAddress = 0x28

// Opts holds the configuration options for the device.
type Opts struct {
	// ValidateChecksum makes every read verify the frame checksum and fail
	// with a ChecksumError on mismatch. Default is false: the checksum is
	// available through Frame.Valid but reads do not act on it.
	ValidateChecksum bool
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	ValidateChecksum: false,
}

// Dev is a handle to an FS3000 air velocity sensor.
//
// Every method issues at most one bus transaction and keeps no state between
// calls.
type Dev struct {
	bus     ReadableBus
	addr    DeviceAddress
	variant Variant
	opts    Opts
}

// New returns an object that communicates over I²C to an FS3000 air velocity
// sensor. It does not talk to the device. The Opts can be nil.
func New(b i2c.Bus, addr DeviceAddress, v Variant, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("fs3000: nil bus")
	}
	return NewBus(FromI2C(b), addr, v, opts)
}

// NewBus is like New for any bus implementing ReadableBus.
func NewBus(b ReadableBus, addr DeviceAddress, v Variant, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("fs3000: nil bus")
	}
	if addr != DefaultAddress {
		return nil, &AddressError{Addr: addr}
	}
	if !v.valid() {
		return nil, fmt.Errorf("fs3000: unknown variant %s", v)
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	return &Dev{bus: b, addr: addr, variant: v, opts: *opts}, nil
}

// ReadFrame reads one raw frame from the device.
//
// Bus errors are returned wrapped and are not retried. The checksum is only
// checked when Opts.ValidateChecksum is set.
func (d *Dev) ReadFrame() (Frame, error) {
	var b [FrameSize]byte
	if err := d.bus.Read(uint16(d.addr), b[:]); err != nil {
		return Frame{}, fmt.Errorf("fs3000: reading frame: %w", err)
	}
	f := DecodeFrame(b)
	if d.opts.ValidateChecksum && !f.Valid() {
		return f, &ChecksumError{Frame: f}
	}
	return f, nil
}

// ReadCount reads the raw sensor count.
func (d *Dev) ReadCount() (uint16, error) {
	f, err := d.ReadFrame()
	if err != nil {
		return 0, err
	}
	return f.Count(), nil
}

// ReadVelocity reads the air velocity in metres per second.
func (d *Dev) ReadVelocity() (float32, error) {
	f, err := d.ReadFrame()
	if err != nil {
		return 0, err
	}
	return d.Velocity(f), nil
}

// Sense reads the air velocity.
func (d *Dev) Sense() (physic.Speed, error) {
	f, err := d.ReadFrame()
	if err != nil {
		return 0, err
	}
	return d.Speed(f), nil
}

// Velocity converts a frame already read from the device into metres per
// second, using the calibration table of the device variant.
func (d *Dev) Velocity(f Frame) float32 {
	return d.variant.Interpolate(f.Count())
}

// Speed is like Velocity but returns periph units.
func (d *Dev) Speed(f Frame) physic.Speed {
	return toSpeed(float64(d.Velocity(f)))
}

// DebugFrameBytes returns the bytes of one raw frame, in wire order.
//
// On a ChecksumError the bytes of the rejected frame are returned along with
// the error.
func (d *Dev) DebugFrameBytes() ([FrameSize]byte, error) {
	f, err := d.ReadFrame()
	return f.Bytes(), err
}

// Precision returns the largest velocity step between two adjacent counts.
func (d *Dev) Precision() physic.Speed {
	return d.variant.resolution()
}

// Variant returns the part variant the device was created with.
func (d *Dev) Variant() Variant {
	return d.variant
}

func (d *Dev) String() string {
	return d.variant.String()
}

// Halt implements conn.Resource. The device has nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

var _ conn.Resource = &Dev{}
