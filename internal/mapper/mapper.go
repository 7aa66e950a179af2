// Package mapper implements cartridge bank-switching circuitry: the
// address decoding that extends the CPU and PPU address spaces onto
// cartridge PRG/CHR memory. The set of supported mappers is closed and
// small (NROM, MMC1), modeled as a shared capability set rather than
// unbounded extensibility.
package mapper

import (
	"fmt"

	"github.com/jfrost-dev/nescore/internal/cartridge"
)

// Mapper is the public contract every cartridge circuit implements.
// CPURead/CPUWrite are defined for $6000-$FFFF; PPURead/PPUWrite are
// defined for $0000-$1FFF (pattern tables). Mirroring may change at
// runtime (MMC1 can switch nametable mode via its control register).
type Mapper interface {
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, val uint8)
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, val uint8)
	Mirroring() cartridge.Mirroring
}

// constructor builds a Mapper from a parsed ROM image.
type constructor func(rom *cartridge.ROM) Mapper

// registry maps an iNES mapper number to its constructor. Each mapper
// implementation registers itself via RegisterMapper in an init(),
// keeping New free of a per-mapper switch as the supported set grows.
var registry = map[uint8]constructor{}

// RegisterMapper associates an iNES mapper number with the constructor
// that builds it. Called from each mapper file's init().
func RegisterMapper(id uint8, ctor constructor) {
	registry[id] = ctor
}

// New constructs the Mapper for rom, as selected by rom.Mapper. Only
// mapper numbers 0 (NROM) and 1 (MMC1) are registered; cartridge.Load
// already rejects anything else at parse time, so this only ever sees
// 0 or 1 in practice, but returns an error rather than panicking to
// keep the contract honest for direct callers.
func New(rom *cartridge.ROM) (Mapper, error) {
	ctor, ok := registry[rom.Mapper]
	if !ok {
		return nil, fmt.Errorf("mapper %d: %w", rom.Mapper, cartridge.ErrUnsupportedMapper)
	}
	return ctor(rom), nil
}
