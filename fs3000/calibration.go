// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fs3000

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
	"periph.io/x/conn/v3/physic"
)

// Variant is the FS3000 part variant. The two parts differ only in their
// sensing range and calibration table.
type Variant int

const (
	// Type1005 is the FS3000-1005, 0 to 7.23 m/s.
	Type1005 Variant = iota
	// Type1015 is the FS3000-1015, 0 to 15 m/s.
	Type1015
)

// Manufacturer characterization data. Counts are strictly increasing.
var (
	counts1005 = []float64{409, 915, 1522, 2066, 2523, 2908, 3256, 3572, 3686}
	mps1005    = []float64{0, 1.07, 2.01, 3.00, 3.97, 4.96, 5.98, 6.99, 7.23}

	counts1015 = []float64{409, 1203, 1597, 1908, 2187, 2400, 2629, 2801, 3006, 3178, 3309, 3563, 3686}
	mps1015    = []float64{0, 2.00, 3.00, 4.00, 5.00, 6.00, 7.00, 8.00, 9.00, 10.00, 11.00, 13.00, 15.00}
)

type table struct {
	counts []float64
	mps    []float64
	pl     interp.PiecewiseLinear
}

var tables = map[Variant]*table{
	Type1005: newTable(counts1005, mps1005),
	Type1015: newTable(counts1015, mps1015),
}

func newTable(counts, mps []float64) *table {
	t := &table{counts: counts, mps: mps}
	if err := t.pl.Fit(counts, mps); err != nil {
		panic(fmt.Sprintf("fs3000: invalid calibration table: %v", err))
	}
	return t
}

// CalibrationPoint is one node of a calibration table.
type CalibrationPoint struct {
	Count    uint16
	Velocity float32 // m/s
}

func (v Variant) String() string {
	switch v {
	case Type1005:
		return "FS3000-1005"
	case Type1015:
		return "FS3000-1015"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

func (v Variant) valid() bool {
	_, ok := tables[v]
	return ok
}

// Interpolate converts a raw count into a velocity in m/s by linear
// interpolation between the two bracketing calibration points.
//
// Counts outside the table are clamped: below the first point the result is
// the first velocity (0), above the last point it is the full scale velocity.
// An unknown variant returns 0.
func (v Variant) Interpolate(count uint16) float32 {
	t, ok := tables[v]
	if !ok {
		return 0
	}
	return float32(t.pl.Predict(float64(count)))
}

// Table returns a copy of the calibration points of the variant, in
// increasing count order.
func (v Variant) Table() []CalibrationPoint {
	t, ok := tables[v]
	if !ok {
		return nil
	}
	pts := make([]CalibrationPoint, len(t.counts))
	for i := range t.counts {
		pts[i] = CalibrationPoint{Count: uint16(t.counts[i]), Velocity: float32(t.mps[i])}
	}
	return pts
}

// Range returns the lowest and highest velocities the variant reports.
func (v Variant) Range() (lo, hi physic.Speed) {
	t, ok := tables[v]
	if !ok {
		return 0, 0
	}
	return toSpeed(t.mps[0]), toSpeed(t.mps[len(t.mps)-1])
}

// resolution returns the velocity change of one count on the steepest
// segment of the table.
func (v Variant) resolution() physic.Speed {
	t, ok := tables[v]
	if !ok {
		return 0
	}
	var step float64
	for i := 1; i < len(t.counts); i++ {
		if s := (t.mps[i] - t.mps[i-1]) / (t.counts[i] - t.counts[i-1]); s > step {
			step = s
		}
	}
	return toSpeed(step)
}

func toSpeed(mps float64) physic.Speed {
	return physic.Speed(math.Round(mps * float64(physic.MetrePerSecond)))
}
