// Package bus implements the NES's shared CPU address space: RAM
// mirroring, PPU register mirroring, OAM DMA, controller ports, and
// the cartridge window, all behind the single cpu.Bus interface.
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

import (
	"github.com/jfrost-dev/nescore/internal/cartridge"
	"github.com/jfrost-dev/nescore/internal/controller"
	"github.com/jfrost-dev/nescore/internal/mapper"
	"github.com/jfrost-dev/nescore/internal/ppu"
)

const (
	ramSize    = 0x0800 // 2 KiB internal RAM
	ramMirrorTop = 0x1FFF
	ppuRegTop    = 0x3FFF
	oamDMAReg    = 0x4014
	controller1Reg = 0x4016
	controller2Reg = 0x4017
	apuIOTop     = 0x4017
	cartridgeBase = 0x4020
)

// Bus wires the CPU's flat 64 KiB address space to RAM, the PPU,
// controllers and the cartridge mapper.
type Bus struct {
	ram [ramSize]byte

	PPU  *ppu.PPU
	Pad1 controller.Controller
	Pad2 controller.Controller

	mapper mapper.Mapper

	oamDMAPending bool
	oamDMAPage    uint8
}

// New constructs a Bus for rom, creating its mapper and PPU.
func New(rom *cartridge.ROM) (*Bus, error) {
	m, err := mapper.New(rom)
	if err != nil {
		return nil, err
	}
	b := &Bus{mapper: m}
	b.PPU = ppu.New(&mapperPPUBus{m: m})
	return b, nil
}

// mapperPPUBus adapts mapper.Mapper's PPURead/PPUWrite naming to the
// ppu.Bus interface's ReadCHR/WriteCHR naming.
type mapperPPUBus struct {
	m mapper.Mapper
}

func (a *mapperPPUBus) ReadCHR(addr uint16) uint8       { return a.m.PPURead(addr) }
func (a *mapperPPUBus) WriteCHR(addr uint16, val uint8) { a.m.PPUWrite(addr, val) }
func (a *mapperPPUBus) Mirroring() cartridge.Mirroring  { return a.m.Mirroring() }

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorTop:
		return b.ram[addr&0x07FF]
	case addr <= ppuRegTop:
		return b.PPU.ReadRegister(addr)
	case addr == controller1Reg:
		return b.Pad1.Read()
	case addr == controller2Reg:
		return b.Pad2.Read()
	case addr <= apuIOTop:
		return 0 // APU registers: unimplemented, reads as open bus 0
	case addr < cartridgeBase:
		return 0
	default:
		return b.mapper.CPURead(addr)
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramMirrorTop:
		b.ram[addr&0x07FF] = val
	case addr <= ppuRegTop:
		b.PPU.WriteRegister(addr, val)
	case addr == oamDMAReg:
		b.oamDMAPending = true
		b.oamDMAPage = val
	case addr == controller1Reg:
		// Strobe is wired to both ports simultaneously.
		b.Pad1.Write(val)
		b.Pad2.Write(val)
	case addr == controller2Reg:
		// $4017 is APU frame counter on write; unimplemented.
	case addr <= apuIOTop:
		// APU registers: unimplemented, writes are discarded.
	case addr < cartridgeBase:
		// unmapped expansion area
	default:
		b.mapper.CPUWrite(addr, val)
	}
}

// TakePendingOAMDMA reports whether a write to $4014 is waiting to be
// serviced, along with the source page. The orchestrator calls this
// right after executing an instruction so it can charge the 513/514
// stall cycles before resuming.
func (b *Bus) TakePendingOAMDMA() (page uint8, pending bool) {
	if !b.oamDMAPending {
		return 0, false
	}
	b.oamDMAPending = false
	return b.oamDMAPage, true
}

// RunOAMDMA copies the 256 bytes starting at page<<8 into OAM, as
// triggered by a $4014 write.
func (b *Bus) RunOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.PPU.WriteOAMByte(b.Read(base + uint16(i)))
	}
}
