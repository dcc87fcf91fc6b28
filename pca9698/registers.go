// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9698

// Register offsets from the datasheet, banks 0 and 1 only.
const (
	_INPUT_PORT0  byte = 0x00
	_INPUT_PORT1  byte = 0x01
	_OUTPUT_PORT0 byte = 0x08
	_OUTPUT_PORT1 byte = 0x09
	_CONFIG_PORT0 byte = 0x18
	_CONFIG_PORT1 byte = 0x19

	// Set in the command byte to advance the register pointer after each
	// data byte.
	_AUTO_INCREMENT byte = 0x80
)

var (
	inputRegs  = [NumPorts]byte{_INPUT_PORT0, _INPUT_PORT1}
	outputRegs = [NumPorts]byte{_OUTPUT_PORT0, _OUTPUT_PORT1}
	configRegs = [NumPorts]byte{_CONFIG_PORT0, _CONFIG_PORT1}
)

// writeRegister sends a single write transaction starting at reg.
func (d *Dev) writeRegister(reg byte, values ...byte) error {
	w := make([]byte, 0, 1+len(values))
	w = append(w, reg)
	w = append(w, values...)
	if err := d.d.Tx(w, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// readRegister reads one byte from reg.
func (d *Dev) readRegister(reg byte) (byte, error) {
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return r[0], nil
}
