// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package expanders is a container for I²C GPIO expander drivers.
//
// See pca9698 for the driver and cmd/pca9698 for a command line tool.
package expanders
