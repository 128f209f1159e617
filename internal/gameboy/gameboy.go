// Package gameboy assembles a cartridge, its memory map and the CPU
// into a steppable Game Boy.
package gameboy

import (
	"encoding/binary"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/fault"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	debug bool
	order binary.ByteOrder

	// err holds the first error raised by an Opt.
	err error
}

// New loads the cartridge at path and returns a GameBoy ready to
// execute from the cartridge entry point.
func New(path string, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}

	m, err := mmu.LoadCartridge(path, g.Logger)
	if err != nil {
		return nil, err
	}

	cpuOpts := []cpu.Opt{cpu.WithLogger(g.Logger)}
	if g.debug {
		cpuOpts = append(cpuOpts, cpu.Debug())
	}
	if g.order != nil {
		cpuOpts = append(cpuOpts, cpu.WithImmediateOrder(g.order))
	}

	g.MMU = m
	g.CPU = cpu.NewCPU(m, cpuOpts...)
	return g, nil
}

// Step executes a single instruction. Unimplemented instructions are
// skipped and reported, leaving it to the caller to carry on or stop.
func (g *GameBoy) Step() (cpu.Outcome, error) {
	out, err := g.CPU.Step()
	if fault.Is(err, fault.UnimplementedInstruction) {
		g.Debugf("skipped %s at 0x%04X", out.Name, out.PC)
	}
	return out, err
}

// Close releases the cartridge and every memory buffer. The GameBoy must
// not be stepped afterwards.
func (g *GameBoy) Close() error {
	if g.MMU != nil {
		g.MMU.Release()
		g.MMU = nil
	}
	return nil
}
