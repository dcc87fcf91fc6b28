// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/GermanBionicSystems/expanders/pca9698"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	highColor = color.NRGBA{0, 255, 0, 255}
	lowColor  = color.NRGBA{48, 48, 48, 255}
)

// pinView renders the 16 pin levels on a single terminal line.
type pinView struct {
	w       io.Writer
	color   bool
	palette ansi256.Palette
	buf     bytes.Buffer
}

// newPinView returns a view writing to w. ANSI colors are only used when w is
// the process stdout and it is a terminal.
func newPinView(w io.Writer) *pinView {
	v := &pinView{w: w, palette: *ansi256.Default}
	if w == os.Stdout && isatty.IsTerminal(os.Stdout.Fd()) {
		v.w = colorable.NewColorableStdout()
		v.color = true
	}
	return v
}

// render draws pins 0 to 15 from left to right.
func (v *pinView) render(port0, port1 byte) error {
	v.buf.Reset()
	if v.color {
		_, _ = v.buf.WriteString("\r\033[0m")
	}
	for i, p := range [pca9698.NumPorts]byte{port0, port1} {
		if i != 0 {
			_ = v.buf.WriteByte(' ')
		}
		for bit := 0; bit < 8; bit++ {
			high := p&(1<<uint(bit)) != 0
			switch {
			case v.color && high:
				_, _ = io.WriteString(&v.buf, v.palette.Block(highColor))
			case v.color:
				_, _ = io.WriteString(&v.buf, v.palette.Block(lowColor))
			case high:
				_ = v.buf.WriteByte('1')
			default:
				_ = v.buf.WriteByte('0')
			}
		}
	}
	if v.color {
		_, _ = v.buf.WriteString("\033[0m ")
	} else {
		_ = v.buf.WriteByte('\n')
	}
	_, err := v.buf.WriteTo(v.w)
	return err
}

// halt restores the terminal attributes.
func (v *pinView) halt() error {
	if !v.color {
		return nil
	}
	_, err := v.w.Write([]byte("\n\033[0m"))
	return err
}

// watch samples both input ports n times, or forever when n is 0.
func watch(dev *pca9698.Dev, v *pinView, n int, interval time.Duration) error {
	defer v.halt()
	t := time.NewTicker(interval)
	defer t.Stop()
	for i := 0; n == 0 || i < n; i++ {
		if i != 0 {
			<-t.C
		}
		p0, err := dev.ReadPort(0)
		if err != nil {
			return err
		}
		p1, err := dev.ReadPort(1)
		if err != nil {
			return err
		}
		if err := v.render(p0, p1); err != nil {
			return err
		}
	}
	return nil
}
