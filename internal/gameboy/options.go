package gameboy

import (
	"encoding/binary"

	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug logs every instruction the CPU executes.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		if l != nil {
			gb.Logger = l
		}
	}
}

// WithLogLevel replaces the default logger with one logging at level,
// e.g. "debug" or "warn".
func WithLogLevel(level string) Opt {
	return func(gb *GameBoy) {
		l, err := log.NewWithLevel(level)
		if err != nil {
			if gb.err == nil {
				gb.err = err
			}
			return
		}
		gb.Logger = l
	}
}

// WithImmediateOrder sets the byte order the CPU composes 16-bit
// immediates with.
func WithImmediateOrder(order binary.ByteOrder) Opt {
	return func(gb *GameBoy) {
		gb.order = order
	}
}
