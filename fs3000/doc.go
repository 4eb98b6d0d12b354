// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package fs3000 controls a Renesas FS3000 air velocity sensor over I²C.
//
// The FS3000 is a thermopile-based MEMS flow sensor. Each I²C read returns a
// 5 byte frame holding a 12 bit raw count, which this package converts into
// an air velocity using the calibration table of the part:
//
//	FS3000-1005   0 - 7.23 m/s   9 point table
//	FS3000-1015   0 - 15 m/s    13 point table
//
// The device has a single, fixed address (0x28) and needs no command byte:
// any read returns the latest measurement.
//
// # Checksum
//
// Each frame carries an additive checksum. Reads do not verify it unless
// Opts.ValidateChecksum is set; callers that leave it off and still want
// integrity should call Frame.Valid on the result of Dev.ReadFrame.
//
// # Concurrency
//
// Dev does no locking. If the bus is shared, serialize access externally.
//
// # Datasheet
//
// https://www.renesas.com/us/en/document/dst/fs3000-datasheet
package fs3000
