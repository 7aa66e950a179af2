package ppu

// loopy is the PPU's internal 15-bit scroll/address register, named
// after the nesdev contributor who documented it. v is the current
// VRAM address, t is the temporary address latched by writes to
// PPUSCROLL/PPUADDR and copied into v at well-defined points in the
// frame.
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy struct {
	data uint16 // only 15 bits used
}

func (l *loopy) coarseX() uint16 { return l.data & 0x001F }

func (l *loopy) setCoarseX(n uint16) { l.data = (l.data & 0xFFE0) | (n & 0x1F) }

func (l *loopy) incrementCoarseX() {
	if l.coarseX() == 31 {
		l.data &^= 0x001F
		l.data ^= 0x0400 // wrap into the adjacent horizontal nametable
		return
	}
	l.data++
}

func (l *loopy) coarseY() uint16 { return (l.data & 0x03E0) >> 5 }

func (l *loopy) setCoarseY(n uint16) { l.data = (l.data & 0xFC1F) | ((n & 0x1F) << 5) }

// incrementFineY implements the well-known Y-increment sequence: fine
// Y rolls over into coarse Y, coarse Y 29 wraps to 0 and flips the
// vertical nametable bit, but coarse Y 31 (used by some games to
// address attribute-table-only rows) wraps to 0 without flipping it.
func (l *loopy) incrementFineY() {
	if l.fineY() < 7 {
		l.data += 0x1000
		return
	}
	l.data &^= 0x7000
	y := l.coarseY()
	switch y {
	case 29:
		l.setCoarseY(0)
		l.data ^= 0x0800
	case 31:
		l.setCoarseY(0)
	default:
		l.setCoarseY(y + 1)
	}
}

func (l *loopy) fineY() uint16 { return (l.data & 0x7000) >> 12 }

func (l *loopy) setFineY(n uint16) { l.data = (l.data &^ 0x7000) | ((n & 0x7) << 12) }

func (l *loopy) nametable() uint16 { return (l.data & 0x0C00) >> 10 }

// copyHorizontal copies the horizontal scroll bits (coarse X and the
// horizontal nametable bit) from other into l, performed at dot 257.
func (l *loopy) copyHorizontal(other loopy) {
	l.data = (l.data & 0xFBE0) | (other.data & 0x041F)
}

// copyVertical copies the vertical scroll bits from other into l,
// performed once per dot across dots 280-304 of the pre-render line.
func (l *loopy) copyVertical(other loopy) {
	l.data = (l.data & 0x841F) | (other.data & 0x7BE0)
}
