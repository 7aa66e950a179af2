package mapper

import "github.com/jfrost-dev/nescore/internal/cartridge"

// mmc1 registers, selected by CPU address bits 14-13 on the fifth
// serial write ($8000-$9FFF=control, $A000-$BFFF=chr0, $C000-$DFFF=chr1,
// $E000-$FFFF=prg).
const (
	mmc1CtrlReset = 0x0C // forced into control on any bit-7-set write
)

// control register bit layout (spec 4.1):
//
//	bits 0-1: mirroring (0=SingleLo, 1=SingleHi, 2=Vertical, 3=Horizontal)
//	bits 2-3: PRG bank mode (0/1=32KiB switch, 2=fix first/switch last, 3=switch first/fix last)
//	bit 4:    CHR mode (0=8KiB switch, 1=two independent 4KiB switches)
const (
	mmc1CtrlMirrorMask = 0x03
	mmc1CtrlPRGModeShift = 2
	mmc1CtrlPRGModeMask  = 0x03
	mmc1CtrlCHRMode      = 1 << 4
)

// mmc1 implements mapper 1: a 5-bit serial shift register feeding four
// internal registers (control, chr0, chr1, prg), per spec 4.1.
type mmc1 struct {
	rom *cartridge.ROM

	shift      uint8
	shiftCount uint8

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8

	prgRAM [0x2000]byte

	prgBankSize int // never set or read; prgAddr derives bank sizes from the PRG mode
}

func newMMC1(rom *cartridge.ROM) *mmc1 {
	return &mmc1{
		rom:     rom,
		control: mmc1CtrlReset,
	}
}

func init() {
	RegisterMapper(1, func(rom *cartridge.ROM) Mapper { return newMMC1(rom) })
}

func (m *mmc1) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.rom.PRG[m.prgAddr(addr)]
	case addr >= 0x6000:
		return m.prgRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *mmc1) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		m.serialWrite(addr, val)
	case addr >= 0x6000:
		m.prgRAM[addr-0x6000] = val
	}
}

// serialWrite drives the MMC1 shift-register protocol. Any write with
// bit 7 set immediately resets the shift register and write counter
// and forces PRG mode 3; otherwise bit 0 of val is shifted into the
// low end of the 5-bit register, and on the fifth such write the
// accumulated value is committed to the register addr selects.
func (m *mmc1) serialWrite(addr uint16, val uint8) {
	if val&0x80 != 0 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= mmc1CtrlReset
		return
	}

	m.shift = (m.shift >> 1) | ((val & 1) << 4)
	m.shiftCount++

	if m.shiftCount < 5 {
		return
	}

	switch {
	case addr <= 0x9FFF:
		m.control = m.shift
	case addr <= 0xBFFF:
		m.chr0 = m.shift
	case addr <= 0xDFFF:
		m.chr1 = m.shift
	default:
		m.prg = m.shift
	}

	m.shift = 0
	m.shiftCount = 0
}

func (m *mmc1) prgMode() uint8 {
	return (m.control >> mmc1CtrlPRGModeShift) & mmc1CtrlPRGModeMask
}

func (m *mmc1) chrMode4K() bool {
	return m.control&mmc1CtrlCHRMode != 0
}

// prgAddr resolves a CPU address in $8000-$FFFF to an offset into
// rom.PRG according to the current PRG bank mode.
func (m *mmc1) prgAddr(addr uint16) uint32 {
	banks16 := uint32(len(m.rom.PRG) / 0x4000)
	off := uint32(addr - 0x8000)

	switch m.prgMode() {
	case 0, 1: // 32 KiB switch, ignoring the low bit of prg
		bank := uint32(m.prg>>1) % (banks16 / 2)
		return bank*0x8000 + off
	case 2: // fix first bank at $8000, switch $C000
		if addr < 0xC000 {
			return off
		}
		bank := uint32(m.prg&0x0F) % banks16
		return bank*0x4000 + (off - 0x4000)
	default: // 3: switch $8000, fix last bank at $C000
		if addr < 0xC000 {
			bank := uint32(m.prg&0x0F) % banks16
			return bank * 0x4000 + off
		}
		last := banks16 - 1
		return last*0x4000 + (off - 0x4000)
	}
}

func (m *mmc1) PPURead(addr uint16) uint8 {
	return m.rom.CHR[m.chrAddr(addr)]
}

func (m *mmc1) PPUWrite(addr uint16, val uint8) {
	if m.rom.HasCHRRAM {
		m.rom.CHR[m.chrAddr(addr)] = val
	}
}

// chrAddr resolves a PPU address in $0000-$1FFF to an offset into
// rom.CHR according to the current CHR bank mode. CHR-RAM cartridges
// are always a single unbanked 8 KiB and just pass through.
func (m *mmc1) chrAddr(addr uint16) uint32 {
	if m.rom.HasCHRRAM {
		return uint32(addr) % uint32(len(m.rom.CHR))
	}

	banks4K := uint32(len(m.rom.CHR) / 0x1000)

	if !m.chrMode4K() {
		bank := uint32(m.chr0>>1) % (banks4K / 2)
		return bank*0x2000 + uint32(addr)
	}

	if addr < 0x1000 {
		bank := uint32(m.chr0) % banks4K
		return bank*0x1000 + uint32(addr)
	}
	bank := uint32(m.chr1) % banks4K
	return bank*0x1000 + uint32(addr-0x1000)
}

func (m *mmc1) Mirroring() cartridge.Mirroring {
	switch m.control & mmc1CtrlMirrorMask {
	case 0:
		return cartridge.MirrorSingleLo
	case 1:
		return cartridge.MirrorSingleHi
	case 2:
		return cartridge.MirrorVertical
	default:
		return cartridge.MirrorHorizontal
	}
}
