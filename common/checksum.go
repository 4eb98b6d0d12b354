// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the additive checksum used by Renesas flow sensors.
package common

// Sum8 returns the sum of bytes, wrapping modulo 256.
//
// A block protected by an additive checksum is intact when Sum8 over the
// data bytes and the checksum byte together is zero.
func Sum8(bytes ...byte) byte {
	var sum byte
	for _, val := range bytes {
		sum += val
	}
	return sum
}

// Checksum8 returns the byte that makes Sum8 over bytes and itself zero.
func Checksum8(bytes ...byte) byte {
	return -Sum8(bytes...)
}
