package cpu

import "fmt"

// Disassemble decodes the instruction at PC into a nestest-style trace
// line without mutating CPU state:
//
//	PC OP OPERANDS  DISASM  A:.. X:.. Y:.. P:.. SP:..
//
// The orchestrator appends a "| PPU: L:scanline CYC:dot" suffix (the
// CPU has no view of PPU state) to produce the full -debug trace line.
func (c *CPU) Disassemble() string {
	pc := c.PC
	opcode := c.bus.Read(pc)
	inst, ok := opcodeTable[opcode]
	if !ok {
		return fmt.Sprintf("%04X  %02X        ???", pc, opcode)
	}

	raw := fmt.Sprintf("%02X", opcode)
	for i := uint8(1); i < inst.bytes; i++ {
		raw += fmt.Sprintf(" %02X", c.bus.Read(pc+uint16(i)))
	}

	return fmt.Sprintf("%04X  %-9s %s %-28s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, raw, inst.name, c.disasmOperand(pc, inst), c.A, c.X, c.Y, c.P, c.SP)
}

// disasmOperand renders the operand text for inst without performing
// any bus writes or advancing PC; reads of operand bytes are safe
// since ROM/RAM reads have no side effects worth worrying about here.
func (c *CPU) disasmOperand(pc uint16, inst instruction) string {
	b1 := func() uint8 { return c.bus.Read(pc + 1) }
	b2 := func() uint16 { return uint16(c.bus.Read(pc+1)) | uint16(c.bus.Read(pc+2))<<8 }

	switch inst.mode {
	case modeImplicit:
		return ""
	case modeAccumulator:
		return "A"
	case modeImmediate:
		return fmt.Sprintf("#$%02X", b1())
	case modeZeroPage:
		return fmt.Sprintf("$%02X", b1())
	case modeZeroPageX:
		return fmt.Sprintf("$%02X,X", b1())
	case modeZeroPageY:
		return fmt.Sprintf("$%02X,Y", b1())
	case modeRelative:
		offset := int8(b1())
		return fmt.Sprintf("$%04X", (pc+2)+uint16(offset))
	case modeAbsolute:
		return fmt.Sprintf("$%04X", b2())
	case modeAbsoluteX:
		return fmt.Sprintf("$%04X,X", b2())
	case modeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", b2())
	case modeIndirect:
		return fmt.Sprintf("($%04X)", b2())
	case modeIndirectX:
		return fmt.Sprintf("($%02X,X)", b1())
	case modeIndirectY:
		return fmt.Sprintf("($%02X),Y", b1())
	default:
		return ""
	}
}
