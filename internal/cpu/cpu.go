package cpu

import (
	"encoding/binary"

	"github.com/thelolagemann/sm83/internal/fault"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Mode is the execution mode of the CPU.
type Mode uint8

const (
	// ModeRunning is the normal CPU mode.
	ModeRunning Mode = iota
	// ModeHalted is entered by HALT and STOP.
	ModeHalted
	// ModeFaulted is entered when an instruction fails. The CPU stays
	// faulted until it is Reset.
	ModeFaulted
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeHalted:
		return "halted"
	case ModeFaulted:
		return "faulted"
	}
	return "unknown"
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the 16-bit register pairs,
	// SP and PC.
	Registers

	// Debug logs every executed instruction.
	Debug bool

	mmu   *mmu.MMU
	log   log.Logger
	order binary.ByteOrder

	mode   Mode
	fault  error
	cycles uint64

	// haltEntered is set by the instruction currently executing.
	haltEntered bool
}

// Outcome describes a single executed step.
type Outcome struct {
	// PC is the address the opcode was fetched from.
	PC     uint16
	Opcode uint8
	Name   string
	Length uint8
	// Cycles is the number of T-cycles consumed.
	Cycles uint8
	// Halted is set if the instruction entered the halted mode.
	Halted bool
}

// NewCPU creates a new CPU instance with the given MMU.
// The MMU is used to read and write to the memory.
func NewCPU(m *mmu.MMU, opts ...Opt) *CPU {
	c := &CPU{
		mmu:   m,
		log:   log.NewNullLogger(),
		order: binary.LittleEndian,
	}
	c.Reset()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset restores the power-on state. PC points at the cartridge entry
// point and every other register is cleared.
func (c *CPU) Reset() {
	c.Registers = Registers{PC: types.EntryPoint}
	c.mode = ModeRunning
	c.fault = nil
	c.cycles = 0
	c.haltEntered = false
}

// Mode returns the current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Fault returns the fault that moved the CPU into ModeFaulted, if any.
func (c *CPU) Fault() error {
	return c.fault
}

// Cycles returns the number of T-cycles executed since the last Reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

func (c *CPU) enterHalt() {
	c.mode = ModeHalted
	c.haltEntered = true
}

// Step executes the instruction at PC. PC and the cycle counter are
// advanced once the instruction has executed.
//
// An unimplemented instruction is skipped, and its fault returned along
// with the outcome, leaving the mode untouched. Any other fault moves
// the CPU into ModeFaulted without advancing, and is returned by every
// subsequent call to Step.
func (c *CPU) Step() (Outcome, error) {
	if c.mode == ModeFaulted {
		return Outcome{PC: c.PC}, c.fault
	}

	out := Outcome{PC: c.PC}
	opcode, err := c.mmu.Read(c.PC)
	if err != nil {
		return out, c.fail(err)
	}
	out.Opcode = opcode

	length, cycles, err := c.timing(opcode)
	if err != nil {
		return out, c.fail(err)
	}
	out.Length, out.Cycles = length, cycles

	instruction := InstructionSet[opcode]
	out.Name = instruction.name
	if c.Debug {
		c.log.Debugf("%04X: %02X %-16s AF:%04X BC:%04X DE:%04X HL:%04X SP:%04X",
			c.PC, opcode, instruction.name, c.AF(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP)
	}

	var stepErr error
	if instruction.Implemented() {
		c.haltEntered = false
		if err := instruction.fn(c, opcode); err != nil {
			return out, c.fail(err)
		}
		out.Halted = c.haltEntered
	} else {
		stepErr = fault.New(fault.UnimplementedInstruction, "opcode 0x%02X (%s) at 0x%04X", opcode, instruction.name, c.PC)
	}

	c.PC += uint16(length)
	c.cycles += uint64(cycles)
	return out, stepErr
}

// fail moves the CPU into ModeFaulted.
func (c *CPU) fail(err error) error {
	c.mode = ModeFaulted
	c.fault = err
	c.log.Debugf("cpu faulted at 0x%04X: %v", c.PC, err)
	return err
}
