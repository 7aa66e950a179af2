package bus

import "github.com/jfrost-dev/nescore/internal/cartridge"

func testROM(prg []byte) *cartridge.ROM {
	return &cartridge.ROM{
		Mapper:    0,
		Mirroring: cartridge.MirrorVertical,
		PRG:       prg,
		CHR:       make([]byte, 0x2000),
		HasCHRRAM: true,
	}
}
