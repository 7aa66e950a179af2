package cpu

// instruction is one row of the opcode decode table: the addressing
// mode to use, how many bytes (including the opcode byte) the
// instruction occupies, the base cycle cost, and the handler that
// performs the operation.
type instruction struct {
	name       string
	mode       mode
	bytes      uint8
	baseCycles uint8
	exec       func(c *CPU, m mode)
}

// opcodeTable maps each of the 151 official 6502 opcodes to its
// decode row. https://www.nesdev.org/obelisk-6502-guide/reference.html
var opcodeTable = map[uint8]instruction{
	0x69: {"ADC", modeImmediate, 2, 2, (*CPU).adc},
	0x65: {"ADC", modeZeroPage, 2, 3, (*CPU).adc},
	0x75: {"ADC", modeZeroPageX, 2, 4, (*CPU).adc},
	0x6D: {"ADC", modeAbsolute, 3, 4, (*CPU).adc},
	0x7D: {"ADC", modeAbsoluteX, 3, 4, (*CPU).adc},
	0x79: {"ADC", modeAbsoluteY, 3, 4, (*CPU).adc},
	0x61: {"ADC", modeIndirectX, 2, 6, (*CPU).adc},
	0x71: {"ADC", modeIndirectY, 2, 5, (*CPU).adc},

	0x29: {"AND", modeImmediate, 2, 2, (*CPU).and},
	0x25: {"AND", modeZeroPage, 2, 3, (*CPU).and},
	0x35: {"AND", modeZeroPageX, 2, 4, (*CPU).and},
	0x2D: {"AND", modeAbsolute, 3, 4, (*CPU).and},
	0x3D: {"AND", modeAbsoluteX, 3, 4, (*CPU).and},
	0x39: {"AND", modeAbsoluteY, 3, 4, (*CPU).and},
	0x21: {"AND", modeIndirectX, 2, 6, (*CPU).and},
	0x31: {"AND", modeIndirectY, 2, 5, (*CPU).and},

	0x0A: {"ASL", modeAccumulator, 1, 2, (*CPU).asl},
	0x06: {"ASL", modeZeroPage, 2, 5, (*CPU).asl},
	0x16: {"ASL", modeZeroPageX, 2, 6, (*CPU).asl},
	0x0E: {"ASL", modeAbsolute, 3, 6, (*CPU).asl},
	0x1E: {"ASL", modeAbsoluteX, 3, 7, (*CPU).asl},

	0x90: {"BCC", modeRelative, 2, 2, (*CPU).bcc},
	0xB0: {"BCS", modeRelative, 2, 2, (*CPU).bcs},
	0xF0: {"BEQ", modeRelative, 2, 2, (*CPU).beq},
	0x30: {"BMI", modeRelative, 2, 2, (*CPU).bmi},
	0xD0: {"BNE", modeRelative, 2, 2, (*CPU).bne},
	0x10: {"BPL", modeRelative, 2, 2, (*CPU).bpl},
	0x50: {"BVC", modeRelative, 2, 2, (*CPU).bvc},
	0x70: {"BVS", modeRelative, 2, 2, (*CPU).bvs},

	0x24: {"BIT", modeZeroPage, 2, 3, (*CPU).bit},
	0x2C: {"BIT", modeAbsolute, 3, 4, (*CPU).bit},

	0x00: {"BRK", modeImplicit, 2, 7, (*CPU).brk},

	0x18: {"CLC", modeImplicit, 1, 2, (*CPU).clc},
	0xD8: {"CLD", modeImplicit, 1, 2, (*CPU).cld},
	0x58: {"CLI", modeImplicit, 1, 2, (*CPU).cli},
	0xB8: {"CLV", modeImplicit, 1, 2, (*CPU).clv},

	0xC9: {"CMP", modeImmediate, 2, 2, (*CPU).cmp},
	0xC5: {"CMP", modeZeroPage, 2, 3, (*CPU).cmp},
	0xD5: {"CMP", modeZeroPageX, 2, 4, (*CPU).cmp},
	0xCD: {"CMP", modeAbsolute, 3, 4, (*CPU).cmp},
	0xDD: {"CMP", modeAbsoluteX, 3, 4, (*CPU).cmp},
	0xD9: {"CMP", modeAbsoluteY, 3, 4, (*CPU).cmp},
	0xC1: {"CMP", modeIndirectX, 2, 6, (*CPU).cmp},
	0xD1: {"CMP", modeIndirectY, 2, 5, (*CPU).cmp},

	0xE0: {"CPX", modeImmediate, 2, 2, (*CPU).cpx},
	0xE4: {"CPX", modeZeroPage, 2, 3, (*CPU).cpx},
	0xEC: {"CPX", modeAbsolute, 3, 4, (*CPU).cpx},

	0xC0: {"CPY", modeImmediate, 2, 2, (*CPU).cpy},
	0xC4: {"CPY", modeZeroPage, 2, 3, (*CPU).cpy},
	0xCC: {"CPY", modeAbsolute, 3, 4, (*CPU).cpy},

	0xC6: {"DEC", modeZeroPage, 2, 5, (*CPU).dec},
	0xD6: {"DEC", modeZeroPageX, 2, 6, (*CPU).dec},
	0xCE: {"DEC", modeAbsolute, 3, 6, (*CPU).dec},
	0xDE: {"DEC", modeAbsoluteX, 3, 7, (*CPU).dec},

	0xCA: {"DEX", modeImplicit, 1, 2, (*CPU).dex},
	0x88: {"DEY", modeImplicit, 1, 2, (*CPU).dey},

	0x49: {"EOR", modeImmediate, 2, 2, (*CPU).eor},
	0x45: {"EOR", modeZeroPage, 2, 3, (*CPU).eor},
	0x55: {"EOR", modeZeroPageX, 2, 4, (*CPU).eor},
	0x4D: {"EOR", modeAbsolute, 3, 4, (*CPU).eor},
	0x5D: {"EOR", modeAbsoluteX, 3, 4, (*CPU).eor},
	0x59: {"EOR", modeAbsoluteY, 3, 4, (*CPU).eor},
	0x41: {"EOR", modeIndirectX, 2, 6, (*CPU).eor},
	0x51: {"EOR", modeIndirectY, 2, 5, (*CPU).eor},

	0xE6: {"INC", modeZeroPage, 2, 5, (*CPU).inc},
	0xF6: {"INC", modeZeroPageX, 2, 6, (*CPU).inc},
	0xEE: {"INC", modeAbsolute, 3, 6, (*CPU).inc},
	0xFE: {"INC", modeAbsoluteX, 3, 7, (*CPU).inc},

	0xE8: {"INX", modeImplicit, 1, 2, (*CPU).inx},
	0xC8: {"INY", modeImplicit, 1, 2, (*CPU).iny},

	0x4C: {"JMP", modeAbsolute, 3, 3, (*CPU).jmp},
	0x6C: {"JMP", modeIndirect, 3, 5, (*CPU).jmp},

	0x20: {"JSR", modeAbsolute, 3, 6, (*CPU).jsr},

	0xA9: {"LDA", modeImmediate, 2, 2, (*CPU).lda},
	0xA5: {"LDA", modeZeroPage, 2, 3, (*CPU).lda},
	0xB5: {"LDA", modeZeroPageX, 2, 4, (*CPU).lda},
	0xAD: {"LDA", modeAbsolute, 3, 4, (*CPU).lda},
	0xBD: {"LDA", modeAbsoluteX, 3, 4, (*CPU).lda},
	0xB9: {"LDA", modeAbsoluteY, 3, 4, (*CPU).lda},
	0xA1: {"LDA", modeIndirectX, 2, 6, (*CPU).lda},
	0xB1: {"LDA", modeIndirectY, 2, 5, (*CPU).lda},

	0xA2: {"LDX", modeImmediate, 2, 2, (*CPU).ldx},
	0xA6: {"LDX", modeZeroPage, 2, 3, (*CPU).ldx},
	0xB6: {"LDX", modeZeroPageY, 2, 4, (*CPU).ldx},
	0xAE: {"LDX", modeAbsolute, 3, 4, (*CPU).ldx},
	0xBE: {"LDX", modeAbsoluteY, 3, 4, (*CPU).ldx},

	0xA0: {"LDY", modeImmediate, 2, 2, (*CPU).ldy},
	0xA4: {"LDY", modeZeroPage, 2, 3, (*CPU).ldy},
	0xB4: {"LDY", modeZeroPageX, 2, 4, (*CPU).ldy},
	0xAC: {"LDY", modeAbsolute, 3, 4, (*CPU).ldy},
	0xBC: {"LDY", modeAbsoluteX, 3, 4, (*CPU).ldy},

	0x4A: {"LSR", modeAccumulator, 1, 2, (*CPU).lsr},
	0x46: {"LSR", modeZeroPage, 2, 5, (*CPU).lsr},
	0x56: {"LSR", modeZeroPageX, 2, 6, (*CPU).lsr},
	0x4E: {"LSR", modeAbsolute, 3, 6, (*CPU).lsr},
	0x5E: {"LSR", modeAbsoluteX, 3, 7, (*CPU).lsr},

	0xEA: {"NOP", modeImplicit, 1, 2, (*CPU).nop},

	0x09: {"ORA", modeImmediate, 2, 2, (*CPU).ora},
	0x05: {"ORA", modeZeroPage, 2, 3, (*CPU).ora},
	0x15: {"ORA", modeZeroPageX, 2, 4, (*CPU).ora},
	0x0D: {"ORA", modeAbsolute, 3, 4, (*CPU).ora},
	0x1D: {"ORA", modeAbsoluteX, 3, 4, (*CPU).ora},
	0x19: {"ORA", modeAbsoluteY, 3, 4, (*CPU).ora},
	0x01: {"ORA", modeIndirectX, 2, 6, (*CPU).ora},
	0x11: {"ORA", modeIndirectY, 2, 5, (*CPU).ora},

	0x48: {"PHA", modeImplicit, 1, 3, (*CPU).pha},
	0x08: {"PHP", modeImplicit, 1, 3, (*CPU).php},
	0x68: {"PLA", modeImplicit, 1, 4, (*CPU).pla},
	0x28: {"PLP", modeImplicit, 1, 4, (*CPU).plp},

	0x2A: {"ROL", modeAccumulator, 1, 2, (*CPU).rol},
	0x26: {"ROL", modeZeroPage, 2, 5, (*CPU).rol},
	0x36: {"ROL", modeZeroPageX, 2, 6, (*CPU).rol},
	0x2E: {"ROL", modeAbsolute, 3, 6, (*CPU).rol},
	0x3E: {"ROL", modeAbsoluteX, 3, 7, (*CPU).rol},

	0x6A: {"ROR", modeAccumulator, 1, 2, (*CPU).ror},
	0x66: {"ROR", modeZeroPage, 2, 5, (*CPU).ror},
	0x76: {"ROR", modeZeroPageX, 2, 6, (*CPU).ror},
	0x6E: {"ROR", modeAbsolute, 3, 6, (*CPU).ror},
	0x7E: {"ROR", modeAbsoluteX, 3, 7, (*CPU).ror},

	0x40: {"RTI", modeImplicit, 1, 6, (*CPU).rti},
	0x60: {"RTS", modeImplicit, 1, 6, (*CPU).rts},

	0xE9: {"SBC", modeImmediate, 2, 2, (*CPU).sbc},
	0xE5: {"SBC", modeZeroPage, 2, 3, (*CPU).sbc},
	0xF5: {"SBC", modeZeroPageX, 2, 4, (*CPU).sbc},
	0xED: {"SBC", modeAbsolute, 3, 4, (*CPU).sbc},
	0xFD: {"SBC", modeAbsoluteX, 3, 4, (*CPU).sbc},
	0xF9: {"SBC", modeAbsoluteY, 3, 4, (*CPU).sbc},
	0xE1: {"SBC", modeIndirectX, 2, 6, (*CPU).sbc},
	0xF1: {"SBC", modeIndirectY, 2, 5, (*CPU).sbc},

	0x38: {"SEC", modeImplicit, 1, 2, (*CPU).sec},
	0xF8: {"SED", modeImplicit, 1, 2, (*CPU).sed},
	0x78: {"SEI", modeImplicit, 1, 2, (*CPU).sei},

	0x85: {"STA", modeZeroPage, 2, 3, (*CPU).sta},
	0x95: {"STA", modeZeroPageX, 2, 4, (*CPU).sta},
	0x8D: {"STA", modeAbsolute, 3, 4, (*CPU).sta},
	0x9D: {"STA", modeAbsoluteX, 3, 5, (*CPU).sta},
	0x99: {"STA", modeAbsoluteY, 3, 5, (*CPU).sta},
	0x81: {"STA", modeIndirectX, 2, 6, (*CPU).sta},
	0x91: {"STA", modeIndirectY, 2, 6, (*CPU).sta},

	0x86: {"STX", modeZeroPage, 2, 3, (*CPU).stx},
	0x96: {"STX", modeZeroPageY, 2, 4, (*CPU).stx},
	0x8E: {"STX", modeAbsolute, 3, 4, (*CPU).stx},

	0x84: {"STY", modeZeroPage, 2, 3, (*CPU).sty},
	0x94: {"STY", modeZeroPageX, 2, 4, (*CPU).sty},
	0x8C: {"STY", modeAbsolute, 3, 4, (*CPU).sty},

	0xAA: {"TAX", modeImplicit, 1, 2, (*CPU).tax},
	0xA8: {"TAY", modeImplicit, 1, 2, (*CPU).tay},
	0xBA: {"TSX", modeImplicit, 1, 2, (*CPU).tsx},
	0x8A: {"TXA", modeImplicit, 1, 2, (*CPU).txa},
	0x9A: {"TXS", modeImplicit, 1, 2, (*CPU).txs},
	0x98: {"TYA", modeImplicit, 1, 2, (*CPU).tya},
}

// --- arithmetic / logic ---

// addWithCarry adds b plus the current carry flag into A, setting
// C/V/N/Z. Decimal mode is never applied: the 2A03 ignores the D flag
// in ADC/SBC even though software may still set and read it.
func (c *CPU) addWithCarry(b uint8) {
	sum := uint16(c.A) + uint16(b) + uint16(c.P&flagCarry)
	result := uint8(sum)

	c.setFlag(flagCarry, sum > 0xFF)
	c.setFlag(flagOverflow, (c.A^b)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) adc(m mode) {
	c.addWithCarry(c.operand(m, true))
}

func (c *CPU) sbc(m mode) {
	c.addWithCarry(^c.operand(m, true))
}

func (c *CPU) and(m mode) {
	c.A &= c.operand(m, true)
	c.setZN(c.A)
}

func (c *CPU) ora(m mode) {
	c.A |= c.operand(m, true)
	c.setZN(c.A)
}

func (c *CPU) eor(m mode) {
	c.A ^= c.operand(m, true)
	c.setZN(c.A)
}

func (c *CPU) shift(m mode, fn func(old uint8) (new uint8, carryOut bool)) {
	var old uint8
	var addr uint16
	if m == modeAccumulator {
		old = c.A
	} else {
		addr, _ = c.resolve(m)
		old = c.read(addr)
	}

	result, carry := fn(old)
	if m == modeAccumulator {
		c.A = result
	} else {
		c.write(addr, result)
	}
	c.setFlag(flagCarry, carry)
	c.setZN(result)
}

func (c *CPU) asl(m mode) {
	c.shift(m, func(old uint8) (uint8, bool) { return old << 1, old&0x80 != 0 })
}

func (c *CPU) lsr(m mode) {
	c.shift(m, func(old uint8) (uint8, bool) { return old >> 1, old&0x01 != 0 })
}

func (c *CPU) rol(m mode) {
	carryIn := c.P & flagCarry
	c.shift(m, func(old uint8) (uint8, bool) { return (old << 1) | carryIn, old&0x80 != 0 })
}

func (c *CPU) ror(m mode) {
	carryIn := (c.P & flagCarry) << 7
	c.shift(m, func(old uint8) (uint8, bool) { return (old >> 1) | carryIn, old&0x01 != 0 })
}

func (c *CPU) bit(m mode) {
	v := c.operand(m, false)
	c.setFlag(flagZero, v&c.A == 0)
	c.setFlag(flagOverflow, v&flagOverflow != 0)
	c.setFlag(flagNegative, v&flagNegative != 0)
}

func (c *CPU) compare(a, b uint8) {
	c.setFlag(flagCarry, a >= b)
	c.setZN(a - b)
}

func (c *CPU) cmp(m mode) { c.compare(c.A, c.operand(m, true)) }
func (c *CPU) cpx(m mode) { c.compare(c.X, c.operand(m, false)) }
func (c *CPU) cpy(m mode) { c.compare(c.Y, c.operand(m, false)) }

// --- memory / register moves ---

func (c *CPU) lda(m mode) { c.A = c.operand(m, true); c.setZN(c.A) }
func (c *CPU) ldx(m mode) { c.X = c.operand(m, true); c.setZN(c.X) }
func (c *CPU) ldy(m mode) { c.Y = c.operand(m, true); c.setZN(c.Y) }

func (c *CPU) sta(m mode) { addr, _ := c.resolve(m); c.write(addr, c.A) }
func (c *CPU) stx(m mode) { addr, _ := c.resolve(m); c.write(addr, c.X) }
func (c *CPU) sty(m mode) { addr, _ := c.resolve(m); c.write(addr, c.Y) }

func (c *CPU) inc(m mode) {
	addr, _ := c.resolve(m)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) dec(m mode) {
	addr, _ := c.resolve(m)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) inx(mode) { c.X++; c.setZN(c.X) }
func (c *CPU) iny(mode) { c.Y++; c.setZN(c.Y) }
func (c *CPU) dex(mode) { c.X--; c.setZN(c.X) }
func (c *CPU) dey(mode) { c.Y--; c.setZN(c.Y) }

func (c *CPU) tax(mode) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) tay(mode) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) tsx(mode) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) txa(mode) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) txs(mode) { c.SP = c.X } // does not affect flags
func (c *CPU) tya(mode) { c.A = c.Y; c.setZN(c.A) }

func (c *CPU) nop(mode) {}

// --- stack ---

func (c *CPU) pha(mode) { c.push(c.A) }
func (c *CPU) php(mode) { c.push(c.P | flagBreak | flagUnused) }
func (c *CPU) pla(mode) { c.A = c.pop(); c.setZN(c.A) }
func (c *CPU) plp(mode) { c.P = (c.pop() &^ flagBreak) | flagUnused }

// --- control flow ---

func (c *CPU) jmp(m mode) {
	addr, _ := c.resolve(m)
	c.PC = addr
}

func (c *CPU) jsr(mode) {
	addr, _ := c.resolve(modeAbsolute) // consumes the 2-byte operand, advancing PC past it
	c.push16(c.PC - 1)                 // return address is the last byte of JSR's operand
	c.PC = addr
}

func (c *CPU) rts(mode) {
	c.PC = c.pop16() + 1
}

func (c *CPU) rti(mode) {
	c.P = (c.pop() &^ flagBreak) | flagUnused
	c.PC = c.pop16()
}

func (c *CPU) brk(mode) {
	c.PC++ // BRK's second byte is a padding byte, skipped on return
	c.interrupt(vectorIRQ, true)
}

// branch implements the shared shape of all eight conditional
// branches: if cond holds, add one cycle (plus one more if the target
// is on a different page) and jump; otherwise fall through.
func (c *CPU) branch(cond bool) {
	addr, crossed := c.resolve(modeRelative)
	if !cond {
		return
	}
	c.cycles++
	if crossed {
		c.cycles++
	}
	c.PC = addr
}

func (c *CPU) bcc(mode) { c.branch(!c.flag(flagCarry)) }
func (c *CPU) bcs(mode) { c.branch(c.flag(flagCarry)) }
func (c *CPU) beq(mode) { c.branch(c.flag(flagZero)) }
func (c *CPU) bne(mode) { c.branch(!c.flag(flagZero)) }
func (c *CPU) bmi(mode) { c.branch(c.flag(flagNegative)) }
func (c *CPU) bpl(mode) { c.branch(!c.flag(flagNegative)) }
func (c *CPU) bvc(mode) { c.branch(!c.flag(flagOverflow)) }
func (c *CPU) bvs(mode) { c.branch(c.flag(flagOverflow)) }

// --- flags ---

func (c *CPU) clc(mode) { c.setFlag(flagCarry, false) }
func (c *CPU) cld(mode) { c.setFlag(flagDecimal, false) }
func (c *CPU) cli(mode) { c.setFlag(flagIRQDisable, false) }
func (c *CPU) clv(mode) { c.setFlag(flagOverflow, false) }
func (c *CPU) sec(mode) { c.setFlag(flagCarry, true) }
func (c *CPU) sed(mode) { c.setFlag(flagDecimal, true) }
func (c *CPU) sei(mode) { c.setFlag(flagIRQDisable, true) }
