package cpu

import (
	"encoding/binary"

	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug logs every executed instruction at debug level.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		if l != nil {
			c.log = l
		}
	}
}

// WithImmediateOrder sets the byte order 16-bit immediates are composed
// with. Defaults to binary.LittleEndian.
func WithImmediateOrder(order binary.ByteOrder) Opt {
	return func(c *CPU) {
		if order != nil {
			c.order = order
		}
	}
}
