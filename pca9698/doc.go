// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pca9698 provides a driver for the NXP PCA9698 I²C GPIO expander,
// as found on the FaBo GPIO40 brick.
//
// Only banks 0 and 1 are handled, giving 16 pins: pins 0 to 7 are port 0 and
// pins 8 to 15 are port 1.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/PCA9698.pdf
//
// # Notes
//
// The driver never reads the output registers back. The value last written
// to each output port is kept in a shadow byte, so changing a single pin
// resends the whole port byte with that bit updated. Reads always go to the
// input registers and reflect the level actually present on the pins.
//
// Pins can be used through the gpio.PinIO interface via Dev.Pins, and ports
// through the conn.Conn interface via Dev.Ports.
package pca9698
