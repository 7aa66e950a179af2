package mapper

import "github.com/jfrost-dev/nescore/internal/cartridge"

// nrom implements mapper 0: no bank-switching state at all. The PRG
// window is 16 or 32 KiB mirrored into $8000-$FFFF; CHR is a fixed
// 8 KiB, read-only unless the cartridge supplies CHR-RAM. PRG-RAM at
// $6000-$7FFF is present but unbanked.
type nrom struct {
	rom     *cartridge.ROM
	prgMask uint32
	prgRAM  [0x2000]byte
}

func newNROM(rom *cartridge.ROM) *nrom {
	return &nrom{rom: rom, prgMask: uint32(len(rom.PRG) - 1)}
}

func init() {
	RegisterMapper(0, func(rom *cartridge.ROM) Mapper { return newNROM(rom) })
}

func (m *nrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		// 16 KiB images mirror into both halves of $8000-$FFFF;
		// masking against len(PRG)-1 does this for both the
		// 16 KiB and 32 KiB cases uniformly.
		return m.rom.PRG[uint32(addr-0x8000)&m.prgMask]
	case addr >= 0x6000:
		return m.prgRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *nrom) CPUWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = val
	}
	// Writes into $8000-$FFFF target ROM; NROM has no registers there.
}

func (m *nrom) PPURead(addr uint16) uint8 {
	return m.rom.CHR[addr]
}

func (m *nrom) PPUWrite(addr uint16, val uint8) {
	if m.rom.HasCHRRAM {
		m.rom.CHR[addr] = val
	}
	// CHR-ROM writes are ignored.
}

func (m *nrom) Mirroring() cartridge.Mirroring {
	return m.rom.Mirroring
}
