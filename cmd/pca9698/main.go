// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// pca9698 drives a PCA9698 GPIO expander from the command line.
//
// Usage:
//
//	pca9698 [-b bus] [-a addr] <command> [args]
//
// Commands:
//
//	configure              set all pins as output
//	dir <port> in|out      set the direction of a port
//	write <pin> high|low   drive one pin
//	port <port> <value>    drive a whole port
//	read <pin>             print the level of one pin
//	readport <port>        print the levels of a port
//	clear                  drive every pin low
//	view [-n N] [-i dur]   poll both ports and render the pins
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GermanBionicSystems/expanders/pca9698"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	addr := flag.Uint("a", uint(pca9698.DefaultAddress), "I²C address of the PCA9698")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() == 0 {
		return errors.New("specify a command, see -help")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer bus.Close()
	log.Printf("using bus %s", bus)

	a, err := checkAddr(*addr)
	if err != nil {
		return err
	}
	dev, err := pca9698.New(bus, &pca9698.Opts{Addr: a})
	if err != nil {
		return err
	}
	defer dev.Close()
	return run(dev, os.Stdout, flag.Args())
}

// run executes a single command against dev.
func run(dev *pca9698.Dev, w io.Writer, args []string) error {
	cmd, args := args[0], args[1:]
	log.Printf("%s: %s %s", dev, cmd, strings.Join(args, " "))
	switch cmd {
	case "configure":
		if err := want(args, 0); err != nil {
			return err
		}
		return dev.Configure()
	case "dir":
		if err := want(args, 2); err != nil {
			return err
		}
		port, err := parseInt(args[0])
		if err != nil {
			return err
		}
		dir, err := parseDirection(args[1])
		if err != nil {
			return err
		}
		return dev.SetPortDirection(port, dir)
	case "write":
		if err := want(args, 2); err != nil {
			return err
		}
		pin, err := parseInt(args[0])
		if err != nil {
			return err
		}
		l, err := parseLevel(args[1])
		if err != nil {
			return err
		}
		return dev.WritePin(pin, l)
	case "port":
		if err := want(args, 2); err != nil {
			return err
		}
		port, err := parseInt(args[0])
		if err != nil {
			return err
		}
		v, err := strconv.ParseUint(args[1], 0, 8)
		if err != nil {
			return err
		}
		return dev.WritePort(port, byte(v))
	case "read":
		if err := want(args, 1); err != nil {
			return err
		}
		pin, err := parseInt(args[0])
		if err != nil {
			return err
		}
		l, err := dev.ReadPin(pin)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", l)
		return err
	case "readport":
		if err := want(args, 1); err != nil {
			return err
		}
		port, err := parseInt(args[0])
		if err != nil {
			return err
		}
		v, err := dev.ReadPort(port)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "0x%02X\n", v)
		return err
	case "clear":
		if err := want(args, 0); err != nil {
			return err
		}
		return dev.ClearAllOutputs()
	case "view":
		f := flag.NewFlagSet("view", flag.ContinueOnError)
		n := f.Int("n", 0, "number of samples, 0 to run forever")
		interval := f.Duration("i", 100*time.Millisecond, "polling interval")
		if err := f.Parse(args); err != nil {
			return err
		}
		return watch(dev, newPinView(w), *n, *interval)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// checkAddr rejects values that do not fit in 7 bits before they get
// truncated to uint16.
func checkAddr(addr uint) (uint16, error) {
	if addr > 0x7F {
		return 0, fmt.Errorf("address 0x%X is not a 7 bit address", addr)
	}
	return uint16(addr), nil
}

func want(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 0)
	return int(v), err
}

func parseDirection(s string) (pca9698.Direction, error) {
	switch strings.ToLower(s) {
	case "in", "input":
		return pca9698.Input, nil
	case "out", "output":
		return pca9698.Output, nil
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

func parseLevel(s string) (gpio.Level, error) {
	switch strings.ToLower(s) {
	case "1", "h", "high":
		return gpio.High, nil
	case "0", "l", "low":
		return gpio.Low, nil
	}
	return gpio.Low, fmt.Errorf("invalid level %q", s)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "pca9698: %s.\n", err)
		os.Exit(1)
	}
}
