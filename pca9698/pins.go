// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9698

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin is a single expander pin usable through the gpio.PinIO interface. Its
// function reports whether the pin is currently an input or an output.
type Pin interface {
	gpio.PinIO
	pin.PinFunc
}

type portpin struct {
	dev    *Dev
	number int
}

func (p *portpin) String() string {
	return p.Name()
}

// Halt sets the pin as input so it no longer drives the line.
func (p *portpin) Halt() error {
	return p.dev.SetPinDirection(p.number, Input)
}

func (p *portpin) Name() string {
	return p.dev.name + "_P" + strconv.Itoa(p.number/8) + "_" + strconv.Itoa(p.number%8)
}

func (p *portpin) Number() int {
	return p.number
}

func (p *portpin) Function() string {
	return string(p.Func())
}

func (p *portpin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown:
		return errors.New("pca9698: PullDown is not supported")
	case gpio.PullUp:
		return errors.New("pca9698: PullUp is not supported")
	}
	// The INT line is shared by all pins and is not wired through the bus.
	if edge != gpio.NoEdge {
		return errors.New("pca9698: edge detection not supported")
	}
	return p.dev.SetPinDirection(p.number, Input)
}

func (p *portpin) Read() gpio.Level {
	l, err := p.dev.ReadPin(p.number)
	if err != nil {
		log.Println(err)
	}
	return l
}

func (p *portpin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *portpin) Pull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) DefaultPull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) Out(l gpio.Level) error {
	if p.dev.direction(p.number) != Output {
		if err := p.dev.SetPinDirection(p.number, Output); err != nil {
			return err
		}
	}
	return p.dev.WritePin(p.number, l)
}

func (p *portpin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("pca9698: PWM is not supported")
}

func (p *portpin) Func() pin.Func {
	if p.dev.direction(p.number) == Input {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *portpin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

func (p *portpin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN:
		return p.dev.SetPinDirection(p.number, Input)
	case gpio.OUT:
		return p.dev.SetPinDirection(p.number, Output)
	default:
		return errors.New("pca9698: Function not supported: " + string(f))
	}
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

// port is one 8 bit port seen as a connection. Each byte written is a full
// WritePort, each byte read a full ReadPort.
type port struct {
	dev    *Dev
	number int
}

// Tx takes bytes to either read or write. Only half duplex is supported so
// it is an error to pass 2 buffers at once.
func (p *port) Tx(w, r []byte) error {
	switch {
	case len(w) > 0 && len(r) > 0:
		return errors.New("pca9698: only conn.Half duplex is supported")
	case len(w) > 0:
		for _, b := range w {
			if err := p.dev.WritePort(p.number, b); err != nil {
				return err
			}
		}
	case len(r) > 0:
		for i := range r {
			b, err := p.dev.ReadPort(p.number)
			if err != nil {
				return err
			}
			r[i] = b
		}
	}
	return nil
}

func (p *port) Duplex() conn.Duplex {
	return conn.Half
}

func (p *port) String() string {
	return fmt.Sprintf("%s_P%d", p.dev.name, p.number)
}

var _ gpio.PinIO = &portpin{}
var _ conn.Conn = &port{}
