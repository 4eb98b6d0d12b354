// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fs3000

import "fmt"

// AddressError is returned by New when given an address the FS3000 does not
// answer on.
type AddressError struct {
	Addr DeviceAddress
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("fs3000: invalid address 0x%02x, the device only answers on 0x%02x", uint16(e.Addr), uint16(DefaultAddress))
}

// ChecksumError is returned by reads when Opts.ValidateChecksum is set and the
// frame checksum does not match.
type ChecksumError struct {
	Frame Frame
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("fs3000: checksum mismatch in %s", e.Frame)
}
