package cpu

// mode identifies a 6502 addressing mode.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type mode uint8

const (
	modeImplicit mode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

// resolve computes the effective address for m and whether computing
// it crossed a page boundary (relevant to the indexed/indirect-Y modes
// that carry a conditional +1 cycle penalty on reads, and to relative
// branches, which pay an extra cycle for a taken cross-page jump). It
// assumes PC currently points at the first operand byte, and consumes
// (advances PC past) however many operand bytes m uses — callers must
// resolve an instruction's address exactly once.
func (c *CPU) resolve(m mode) (addr uint16, crossed bool) {
	switch m {
	case modeImmediate:
		addr = c.PC
		c.PC++
		return addr, false
	case modeZeroPage:
		addr = uint16(c.read(c.PC))
		c.PC++
		return addr, false
	case modeZeroPageX:
		addr = uint16(c.read(c.PC) + c.X)
		c.PC++
		return addr, false
	case modeZeroPageY:
		addr = uint16(c.read(c.PC) + c.Y)
		c.PC++
		return addr, false
	case modeAbsolute:
		addr = c.read16(c.PC)
		c.PC += 2
		return addr, false
	case modeAbsoluteX:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		return addr, pagesDiffer(base, addr)
	case modeAbsoluteY:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		return addr, pagesDiffer(base, addr)
	case modeIndirect:
		ptr := c.read16(c.PC)
		c.PC += 2
		return c.read16Wrapped(ptr), false
	case modeIndirectX:
		zp := c.read(c.PC) + c.X
		c.PC++
		return c.read16ZeroPage(zp), false
	case modeIndirectY:
		zp := c.read(c.PC)
		c.PC++
		base := c.read16ZeroPage(zp)
		addr = base + uint16(c.Y)
		return addr, pagesDiffer(base, addr)
	case modeRelative:
		offset := int8(c.read(c.PC))
		c.PC++
		addr = c.PC + uint16(offset)
		return addr, pagesDiffer(c.PC, addr)
	default:
		panic("resolve: mode has no effective address")
	}
}

// read16Wrapped reproduces the 6502's JMP ($xxFF) page-wrap bug: the
// indirect vector's high byte is fetched from the start of the same
// page rather than the next page.
func (c *CPU) read16Wrapped(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}

// operand reads the value addressed by m. When penalized is true, a
// page-crossing indexed/indirect-Y access adds one cycle (the
// convention for read instructions). RMW and store instructions call
// resolve directly and take no penalty, since their table-listed cycle
// count already assumes the worst case.
func (c *CPU) operand(m mode, penalized bool) uint8 {
	if m == modeAccumulator {
		return c.A
	}
	addr, crossed := c.resolve(m)
	if penalized && crossed {
		c.cycles++
	}
	return c.read(addr)
}
