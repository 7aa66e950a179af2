// Package console ties the CPU, PPU, bus, mapper and controllers
// together into a running machine: one CPU instruction per step,
// followed by three PPU dots per CPU cycle spent, with NMI and OAM
// DMA wired between them.
// https://www.nesdev.org/wiki/Cycle_reference_chart
package console

import (
	"fmt"

	"github.com/jfrost-dev/nescore/internal/bus"
	"github.com/jfrost-dev/nescore/internal/cartridge"
	"github.com/jfrost-dev/nescore/internal/controller"
	"github.com/jfrost-dev/nescore/internal/cpu"
	"github.com/jfrost-dev/nescore/internal/ppu"
)

// Console is a complete, runnable NES: one cartridge, one CPU, one
// PPU, two controller ports.
type Console struct {
	Bus *bus.Bus
	CPU *cpu.CPU

	debug bool
}

// New loads rom and wires a fresh machine around it.
func New(rom *cartridge.ROM) (*Console, error) {
	b, err := bus.New(rom)
	if err != nil {
		return nil, fmt.Errorf("building console: %w", err)
	}
	c := &Console{Bus: b}
	c.CPU = cpu.New(b)
	return c, nil
}

// SetDebug enables per-instruction trace output on Step.
func (c *Console) SetDebug(on bool) {
	c.debug = on
}

// Controller1 and Controller2 expose the two gamepad ports for the
// host to feed input into.
func (c *Console) Controller1() *controller.Controller { return &c.Bus.Pad1 }
func (c *Console) Controller2() *controller.Controller { return &c.Bus.Pad2 }

// Reset reproduces pressing the console's reset button.
func (c *Console) Reset() {
	c.CPU.Reset()
}

// Step executes exactly one CPU instruction, ticks the PPU three
// dots for every CPU cycle spent (the fixed 1:3 clock ratio between
// the 2A03 and 2C02), and services any pending OAM DMA transfer
// between instructions. It returns true once a full video frame has
// been completed by this step.
func (c *Console) Step() (frameComplete bool) {
	if c.debug {
		fmt.Printf("%s | PPU: L:%d CYC:%d\n", c.CPU.Disassemble(), c.Bus.PPU.Scanline(), c.Bus.PPU.Dot())
	}

	cycles := c.CPU.Step()

	if page, pending := c.Bus.TakePendingOAMDMA(); pending {
		c.Bus.RunOAMDMA(page)
		// OAM DMA stalls the CPU for 513 cycles, or 514 if it starts on
		// an odd CPU cycle (one extra alignment cycle before the
		// read/write pairs begin); the PPU keeps running throughout.
		stall := 513
		if c.CPU.Cycles()%2 != 0 {
			stall = 514
		}
		cycles += stall
	}

	for i := 0; i < cycles*3; i++ {
		c.Bus.PPU.Step()
		c.CPU.SetNMILine(c.Bus.PPU.NMI())
		if c.Bus.PPU.FrameReady() {
			frameComplete = true
		}
	}

	return frameComplete
}

// RunFrame steps the console until exactly one frame has been
// produced and returns its pixel buffer.
func (c *Console) RunFrame() *[ppu.Width * ppu.Height]ppu.RGB {
	for !c.Step() {
	}
	return c.Bus.PPU.Frame()
}
