package ppu

import (
	"testing"

	"github.com/jfrost-dev/nescore/internal/cartridge"
)

// fakeBus is a minimal PPU bus backed by flat CHR RAM, for testing
// independent of any real mapper.
type fakeBus struct {
	chr       [0x2000]byte
	mirroring cartridge.Mirroring
}

func (b *fakeBus) ReadCHR(addr uint16) uint8       { return b.chr[addr%uint16(len(b.chr))] }
func (b *fakeBus) WriteCHR(addr uint16, val uint8) { b.chr[addr%uint16(len(b.chr))] = val }
func (b *fakeBus) Mirroring() cartridge.Mirroring  { return b.mirroring }

func newTestPPU(mirroring cartridge.Mirroring) (*PPU, *fakeBus) {
	b := &fakeBus{mirroring: mirroring}
	return New(b), b
}

func runDots(p *PPU, n int) {
	for i := 0; i < n; i++ {
		p.Step()
	}
}

func framesToFirstVBlank(p *PPU) {
	for !(p.scanline == firstVBlankScanline && p.dot == 1) {
		p.Step()
	}
}

func TestBlankFrameIsUniversalBackdropColor(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	p.paletteRAM[0] = 0x21 // arbitrary backdrop index

	runDots(p, dotsPerScanline*scanlinesPerFrame)

	frame := p.Frame()
	want := systemPalette[0x21]
	for i, c := range frame {
		if c != want {
			t.Fatalf("pixel %d = %+v, want %+v (rendering disabled draws the backdrop color)", i, c, want)
		}
	}
}

func TestVBlankSetsStatusAndNMI(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	p.WriteRegister(0x2000, ctrlGenerateNMI)

	framesToFirstVBlank(p)
	p.Step()

	if p.status&statusVBlank == 0 {
		t.Error("status VBlank bit not set after entering vblank")
	}
	if !p.NMI() {
		t.Error("NMI line not asserted when PPUCTRL bit 7 is set")
	}
}

func TestEnablingNMIDuringVBlankTriggersItImmediately(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)

	framesToFirstVBlank(p)
	p.Step()
	if p.status&statusVBlank == 0 {
		t.Fatal("status VBlank bit not set after entering vblank")
	}
	if p.NMI() {
		t.Fatal("NMI asserted before PPUCTRL bit 7 was ever set")
	}

	p.WriteRegister(0x2000, ctrlGenerateNMI)

	if !p.NMI() {
		t.Error("NMI not asserted immediately after enabling NMI generation while vblank is already set")
	}
}

func TestReadingStatusClearsVBlankAndLatch(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	framesToFirstVBlank(p)
	p.Step()
	p.writeLatch = true

	_ = p.ReadRegister(0x2002)

	if p.status&statusVBlank != 0 {
		t.Error("reading PPUSTATUS should clear the vblank flag")
	}
	if p.writeLatch {
		t.Error("reading PPUSTATUS should reset the address write latch")
	}
}

func TestPPUScrollAndAddrLatchSequencing(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)

	p.WriteRegister(0x2005, 0x7D) // coarse X=15, fine X=5
	if !p.writeLatch {
		t.Fatal("first scroll write should set the latch")
	}
	p.WriteRegister(0x2005, 0x5E) // coarse Y=11, fine Y=6
	if p.writeLatch {
		t.Fatal("second scroll write should clear the latch")
	}
	if p.t.coarseX() != 15 || p.fineX != 5 {
		t.Errorf("coarseX=%d fineX=%d, want 15 5", p.t.coarseX(), p.fineX)
	}
	if p.t.coarseY() != 11 || p.t.fineY() != 6 {
		t.Errorf("coarseY=%d fineY=%d, want 11 6", p.t.coarseY(), p.t.fineY())
	}
}

func TestPPUAddrWriteLoadsVOnSecondWrite(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x08)
	if p.v.data != 0x2108 {
		t.Errorf("v = %#04x, want 0x2108", p.v.data)
	}
}

func TestPPUDataReadIsBufferedExceptPalette(t *testing.T) {
	p, b := newTestPPU(cartridge.MirrorVertical)
	b.chr[0x0005] = 0x99

	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2006, 0x05)
	first := p.ReadRegister(0x2007)
	second := p.ReadRegister(0x2007)

	if first == 0x99 {
		t.Error("first PPUDATA read from non-palette space should return the stale buffer, not the fresh byte")
	}
	if second != 0x99 {
		t.Errorf("second PPUDATA read = %#x, want 0x99", second)
	}
}

func TestPPUDataWriteIncrementsByAddressMode(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	p.WriteRegister(0x2000, ctrlIncrement32)
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x11)
	if p.v.data != 0x2020 {
		t.Errorf("v after write = %#04x, want 0x2020 (increment by 32)", p.v.data)
	}
}

func TestPaletteMirroring(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	p.writePaletteRAM(0x00, 0x0F)
	if got := p.readPaletteRAM(0x10); got != 0x0F {
		t.Errorf("palette[0x10] = %#x, want mirror of [0x00] = 0x0F", got)
	}
}

func TestVerticalMirroringMapsQuadrants(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	p.setNameTableByte(0x2000, 0xAA)
	if got := p.nameTableByte(0x2800); got != 0xAA {
		t.Errorf("vertical mirroring: $2800 should alias $2000, got %#x", got)
	}
	if got := p.nameTableByte(0x2400); got == 0xAA {
		t.Error("vertical mirroring: $2400 should be the other physical table")
	}
}

func TestHorizontalMirroringMapsQuadrants(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.setNameTableByte(0x2000, 0xBB)
	if got := p.nameTableByte(0x2400); got != 0xBB {
		t.Errorf("horizontal mirroring: $2400 should alias $2000, got %#x", got)
	}
	if got := p.nameTableByte(0x2800); got == 0xBB {
		t.Error("horizontal mirroring: $2800 should be the other physical table")
	}
}

func TestSpriteEvaluationCapsAtEightAndFlagsOverflow(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	for i := 0; i < 10; i++ {
		base := i * 4
		p.oam[base] = 50 // all visible on scanline 50
		p.oam[base+1] = 0
		p.oam[base+2] = 0
		p.oam[base+3] = uint8(i * 8)
	}
	p.mask = maskShowSprites
	p.scanline = 49
	p.evaluateSprites()

	if p.spriteCount != 8 {
		t.Errorf("spriteCount = %d, want 8", p.spriteCount)
	}
	if p.status&statusSpriteOverflow == 0 {
		t.Error("expected sprite overflow flag to be set with 10 sprites on one line")
	}
}

