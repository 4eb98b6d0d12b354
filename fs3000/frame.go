// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fs3000

import (
	"fmt"

	"github.com/GermanBionicSystems/airflow/common"
)

// FrameSize is the number of bytes returned by one read.
const FrameSize = 5

// Frame is the raw content of one read, in wire order.
type Frame struct {
	Checksum byte
	DataHigh byte
	DataLow  byte
	Generic1 byte
	Generic2 byte
}

// DecodeFrame maps the bytes of one read onto a Frame. It does not validate
// anything.
func DecodeFrame(b [FrameSize]byte) Frame {
	return Frame{
		Checksum: b[0],
		DataHigh: b[1],
		DataLow:  b[2],
		Generic1: b[3],
		Generic2: b[4],
	}
}

// Bytes returns the frame in wire order.
func (f Frame) Bytes() [FrameSize]byte {
	return [FrameSize]byte{f.Checksum, f.DataHigh, f.DataLow, f.Generic1, f.Generic2}
}

// Count returns the raw sensor count. The device only uses the low 12 bits;
// the upper bits are zero on the wire and are not masked.
func (f Frame) Count() uint16 {
	return uint16(f.DataHigh)<<8 | uint16(f.DataLow)
}

// Valid reports whether the checksum byte matches: the modulo 256 sum of all
// five bytes must be zero.
func (f Frame) Valid() bool {
	return common.Sum8(f.DataHigh, f.DataLow, f.Generic1, f.Generic2, f.Checksum) == 0
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame{% x count=%d}", f.Bytes(), f.Count())
}
