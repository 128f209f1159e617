// Package fault defines the recoverable error conditions raised by the
// cartridge loader, the memory map and the CPU. Every fault carries a
// Code, so callers can tell an unmapped address from an unimplemented
// opcode without matching on message text.
package fault

import (
	"errors"
	"fmt"
)

// Code identifies the kind of fault.
type Code uint8

const (
	// Unknown is returned by CodeOf for errors that are not faults.
	Unknown Code = iota
	// FileNotFound means the cartridge file does not exist.
	FileNotFound
	// FileReadError means the cartridge file could not be read in full,
	// including stat, seek and decompression failures.
	FileReadError
	// UnsupportedCartridgeRamType means header byte 0x0149 holds a code
	// outside the known RAM size table.
	UnsupportedCartridgeRamType
	// InvalidAddress means an access outside every mapped region, or to
	// external RAM on a cartridge without any.
	InvalidAddress
	// UnrecognizedRegisterSelector means the decoder produced a register
	// field outside the range of the selector table.
	UnrecognizedRegisterSelector
	// UnimplementedInstruction means the opcode has no handler.
	UnimplementedInstruction
)

var codeNames = map[Code]string{
	Unknown:                      "unknown",
	FileNotFound:                 "file not found",
	FileReadError:                "file read error",
	UnsupportedCartridgeRamType:  "unsupported cartridge RAM type",
	InvalidAddress:               "invalid address",
	UnrecognizedRegisterSelector: "unrecognized register selector",
	UnimplementedInstruction:     "unimplemented instruction",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Sentinels for use with errors.Is.
var (
	ErrFileNotFound                 = &Fault{Code: FileNotFound}
	ErrFileRead                     = &Fault{Code: FileReadError}
	ErrUnsupportedCartridgeRamType  = &Fault{Code: UnsupportedCartridgeRamType}
	ErrInvalidAddress               = &Fault{Code: InvalidAddress}
	ErrUnrecognizedRegisterSelector = &Fault{Code: UnrecognizedRegisterSelector}
	ErrUnimplementedInstruction     = &Fault{Code: UnimplementedInstruction}
)

// Fault is an error with a Code. Err, if set, is the underlying cause.
type Fault struct {
	Code Code
	Err  error

	msg string
}

// New returns a fault with the given code and formatted detail message.
func New(code Code, format string, args ...interface{}) *Fault {
	return &Fault{Code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns a fault with the given code caused by err.
func Wrap(code Code, err error, format string, args ...interface{}) *Fault {
	return &Fault{Code: code, Err: err, msg: fmt.Sprintf(format, args...)}
}

func (f *Fault) Error() string {
	s := f.Code.String()
	if f.msg != "" {
		s += ": " + f.msg
	}
	if f.Err != nil {
		s += ": " + f.Err.Error()
	}
	return s
}

// Unwrap returns the underlying cause.
func (f *Fault) Unwrap() error {
	return f.Err
}

// Is reports whether target is a fault with the same code.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	return ok && t.Code == f.Code
}

// CodeOf returns the code of the first fault in err's chain, or Unknown.
func CodeOf(err error) Code {
	var f *Fault
	if errors.As(err, &f) {
		return f.Code
	}
	return Unknown
}

// Is reports whether err is a fault with the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
