// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9698

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned, wrapped, when a pin, port or direction is
// out of range. Nothing is sent on the bus in that case.
var ErrInvalidArgument = errors.New("pca9698: invalid argument")

// BusError is returned when the underlying I²C transaction failed, be it a
// NACK, a timeout or a lost arbitration. The shadow registers are left
// untouched.
type BusError struct {
	Op  string // "read" or "write"
	Reg byte   // command byte that was sent
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("pca9698: %s of register 0x%02X failed: %v", e.Op, e.Reg&^_AUTO_INCREMENT, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

func invalidPin(pin int) error {
	return fmt.Errorf("%w: pin %d not in [0, %d]", ErrInvalidArgument, pin, NumPins-1)
}

func invalidPort(port int) error {
	return fmt.Errorf("%w: port %d not in [0, %d]", ErrInvalidArgument, port, NumPorts-1)
}
