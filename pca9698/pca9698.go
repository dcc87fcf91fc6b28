// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9698

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
)

const (
	// NumPins is the number of pins handled by the driver, banks 0 and 1.
	NumPins = 16
	// NumPorts is the number of 8 bit ports.
	NumPorts = 2

	// DefaultAddress is the address with A0, A1 and A2 tied to ground.
	DefaultAddress uint16 = 0x20
)

// Direction is the signal direction of a pin or a whole port.
type Direction byte

const (
	// Output drives the pin from the output register.
	Output Direction = iota
	// Input leaves the pin in high impedance.
	Input
)

func (dir Direction) String() string {
	switch dir {
	case Output:
		return "Output"
	case Input:
		return "Input"
	default:
		return fmt.Sprintf("Direction(%d)", byte(dir))
	}
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Addr is the 7 bit I²C address of the chip.
	Addr uint16
	// Register adds every pin to gpioreg so it can be looked up by name.
	Register bool
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{Addr: DefaultAddress, Register: true}

// Dev is a handle to a PCA9698 I/O expander.
//
// Output registers are never read back. The last value written to each
// output port is kept in a shadow byte and every pin write resends the whole
// port byte. Inputs are always read from the chip.
type Dev struct {
	// Pins holds the 16 pins, indexed by pin number.
	Pins [NumPins]Pin
	// Ports exposes each 8 bit port as a half duplex connection.
	Ports [NumPorts]conn.Conn

	name string

	mu         sync.Mutex
	d          *i2c.Dev
	output     [NumPorts]byte
	config     [NumPorts]byte
	registered []string
}

// New returns a handle to a PCA9698 on the bus.
//
// No transaction is issued. The output shadow starts at zero (all pins Low)
// and the direction shadow at the power-on state of the chip (all inputs).
// Call Configure to switch every pin to output.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Addr > 0x7F {
		return nil, fmt.Errorf("%w: address 0x%X is not a 7 bit address", ErrInvalidArgument, opts.Addr)
	}
	d := &Dev{
		name:   fmt.Sprintf("PCA9698_%x", opts.Addr),
		d:      &i2c.Dev{Bus: bus, Addr: opts.Addr},
		config: [NumPorts]byte{0xFF, 0xFF},
	}
	for i := range d.Ports {
		d.Ports[i] = &port{dev: d, number: i}
	}
	for i := range d.Pins {
		p := &portpin{dev: d, number: i}
		d.Pins[i] = p
		if opts.Register {
			// Ignore registration failure, the pin stays usable through Pins.
			if err := gpioreg.Register(p); err == nil {
				d.registered = append(d.registered, p.Name())
			}
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return d.name
}

// Configure sets every pin of both ports as output.
//
// Both configuration registers are written in a single auto-increment
// transaction.
func (d *Dev) Configure() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeRegister(_CONFIG_PORT0|_AUTO_INCREMENT, 0x00, 0x00); err != nil {
		return err
	}
	d.config = [NumPorts]byte{}
	return nil
}

// SetPortDirection sets all 8 pins of a port as inputs or outputs.
func (d *Dev) SetPortDirection(port int, dir Direction) error {
	if err := checkPort(port); err != nil {
		return err
	}
	var v byte
	switch dir {
	case Output:
		v = 0x00
	case Input:
		v = 0xFF
	default:
		return fmt.Errorf("%w: unknown direction %s", ErrInvalidArgument, dir)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeConfig(port, v)
}

// SetPinDirection sets a single pin as input or output, leaving the other
// pins of its port unchanged.
func (d *Dev) SetPinDirection(pin int, dir Direction) error {
	if err := checkPin(pin); err != nil {
		return err
	}
	if dir != Output && dir != Input {
		return fmt.Errorf("%w: unknown direction %s", ErrInvalidArgument, dir)
	}
	port, mask := split(pin)
	d.mu.Lock()
	defer d.mu.Unlock()
	v := d.config[port] &^ mask
	if dir == Input {
		v |= mask
	}
	return d.writeConfig(port, v)
}

// WritePin drives one pin High or Low.
//
// The whole port byte, taken from the shadow with the pin's bit updated, is
// sent to the output register.
func (d *Dev) WritePin(pin int, l gpio.Level) error {
	if err := checkPin(pin); err != nil {
		return err
	}
	port, mask := split(pin)
	d.mu.Lock()
	defer d.mu.Unlock()
	v := d.output[port] &^ mask
	if l == gpio.High {
		v |= mask
	}
	return d.writeOutput(port, v)
}

// WritePort sets the 8 pins of a port at once. value overwrites the shadow
// for that port.
func (d *Dev) WritePort(port int, value byte) error {
	if err := checkPort(port); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeOutput(port, value)
}

// ClearAllOutputs drives all 16 pins Low, one transaction per port.
func (d *Dev) ClearAllOutputs() error {
	for port := 0; port < NumPorts; port++ {
		if err := d.WritePort(port, 0); err != nil {
			return err
		}
	}
	return nil
}

// ReadPin returns the level currently present on a pin, as read from the
// input register. The output shadow is not consulted.
func (d *Dev) ReadPin(pin int) (gpio.Level, error) {
	if err := checkPin(pin); err != nil {
		return gpio.Low, err
	}
	port, mask := split(pin)
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readRegister(inputRegs[port])
	if err != nil {
		return gpio.Low, err
	}
	return v&mask != 0, nil
}

// ReadPort returns the levels of the 8 pins of a port.
func (d *Dev) ReadPort(port int) (byte, error) {
	if err := checkPort(port); err != nil {
		return 0, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRegister(inputRegs[port])
}

// Output returns the last value successfully written to a port's output
// register.
func (d *Dev) Output(port int) (byte, error) {
	if err := checkPort(port); err != nil {
		return 0, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.output[port], nil
}

// Halt implements conn.Resource.
//
// It sets every pin as input, which releases all outputs to high impedance.
func (d *Dev) Halt() error {
	for port := 0; port < NumPorts; port++ {
		if err := d.SetPortDirection(port, Input); err != nil {
			return err
		}
	}
	return nil
}

// Close removes the pins registered by New from gpioreg.
func (d *Dev) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for len(d.registered) != 0 {
		if err := gpioreg.Unregister(d.registered[0]); err != nil {
			return err
		}
		d.registered = d.registered[1:]
	}
	return nil
}

// writeOutput must be called with mu held.
func (d *Dev) writeOutput(port int, v byte) error {
	if err := d.writeRegister(outputRegs[port], v); err != nil {
		return err
	}
	d.output[port] = v
	return nil
}

// writeConfig must be called with mu held.
func (d *Dev) writeConfig(port int, v byte) error {
	if err := d.writeRegister(configRegs[port], v); err != nil {
		return err
	}
	d.config[port] = v
	return nil
}

func (d *Dev) direction(pin int) Direction {
	port, mask := split(pin)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.config[port]&mask != 0 {
		return Input
	}
	return Output
}

// split returns the port of a pin and its bit mask within the port byte.
func split(pin int) (int, byte) {
	return pin / 8, 1 << uint(pin%8)
}

func checkPin(pin int) error {
	if pin < 0 || pin >= NumPins {
		return invalidPin(pin)
	}
	return nil
}

func checkPort(port int) error {
	if port < 0 || port >= NumPorts {
		return invalidPort(port)
	}
	return nil
}

var _ conn.Resource = &Dev{}
