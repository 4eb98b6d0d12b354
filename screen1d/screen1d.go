// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1d draws a one line bar gauge to a terminal using ANSI color
// codes.
//
// Useful to watch a sensor reading live without a display attached.
package screen1d

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this gauge.
type Opts struct {
	// X is the width of the bar in cells.
	X       int
	Palette *ansi256.Palette
	// W is where the gauge is drawn. Defaults to stdout.
	W io.Writer

	_ struct{}
}

// Dev is a bar gauge that outputs to the console.
type Dev struct {
	w       io.Writer
	l       int
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that draws at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.X <= 0 {
		return nil, errors.New("screen1d: width must be positive")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{w: w, l: opts.X, palette: *p}, nil
}

func (d *Dev) String() string {
	return "Screen1D"
}

// Halt implements conn.Resource.
//
// It ends the line and resets the colors so the terminal is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Set redraws the gauge filled to level, a fraction in [0, 1], followed by
// label. Out of range levels are clamped.
func (d *Dev) Set(level float64, label string) error {
	if level < 0 || math.IsNaN(level) {
		level = 0
	} else if level > 1 {
		level = 1
	}
	filled := int(level*float64(d.l) + 0.5)

	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < d.l; i++ {
		c := color.NRGBA{A: 255}
		if i < filled {
			c = cellColor(i, d.l)
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[0m %s\033[K", label)
	_, err := d.buf.WriteTo(d.w)
	return err
}

// cellColor fades from green at the left end to red at the right end.
func cellColor(i, n int) color.NRGBA {
	if n <= 1 {
		return color.NRGBA{G: 255, A: 255}
	}
	r := byte(255 * i / (n - 1))
	return color.NRGBA{R: r, G: 255 - r, A: 255}
}

var _ fmt.Stringer = &Dev{}
