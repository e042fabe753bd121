package cpu

// Instruction is a single opcode-table entry: what operation it performs,
// how its operand addresses memory, and the base cycle count before any
// page-cross or branch-taken bonus.
type Instruction struct {
	Op     Operation
	Mode   AddressingMode
	Cycles byte
}

// opcodeTable is a fixed 256-entry array, not a map: looking up the
// instruction for a fetched byte is a direct index, and an unset (nil)
// slot unambiguously means "no legal opcode", which Step reports as
// UnknownOpcode. Illegal/undocumented opcodes are intentionally absent.
var opcodeTable [256]*Instruction

func op(code byte, o Operation, m AddressingMode, cycles byte) {
	opcodeTable[code] = &Instruction{Op: o, Mode: m, Cycles: cycles}
}

func init() {
	// 0x0_
	op(0x00, BRK, Implicit, 7)
	op(0x01, ORA, IndexedIndirectX, 6)
	op(0x05, ORA, ZeroPage, 3)
	op(0x06, ASL, ZeroPage, 5)
	op(0x08, PHP, Implicit, 3)
	op(0x09, ORA, Immediate, 2)
	op(0x0A, ASL, Accumulator, 2)
	op(0x0D, ORA, Absolute, 4)
	op(0x0E, ASL, Absolute, 6)

	// 0x1_
	op(0x10, BPL, Relative, 2)
	op(0x11, ORA, IndexedIndirectY, 5)
	op(0x15, ORA, ZeroPageIndexedX, 4)
	op(0x16, ASL, ZeroPageIndexedX, 6)
	op(0x18, CLC, Implicit, 2)
	op(0x19, ORA, AbsoluteIndexedY, 4)
	op(0x1D, ORA, AbsoluteIndexedX, 4)
	op(0x1E, ASL, AbsoluteIndexedX, 7)

	// 0x2_
	op(0x20, JSR, Absolute, 6)
	op(0x21, AND, IndexedIndirectX, 6)
	op(0x24, BIT, ZeroPage, 3)
	op(0x25, AND, ZeroPage, 3)
	op(0x26, ROL, ZeroPage, 5)
	op(0x28, PLP, Implicit, 4)
	op(0x29, AND, Immediate, 2)
	op(0x2A, ROL, Accumulator, 2)
	op(0x2C, BIT, Absolute, 4)
	op(0x2D, AND, Absolute, 4)
	op(0x2E, ROL, Absolute, 6)

	// 0x3_
	op(0x30, BMI, Relative, 2)
	op(0x31, AND, IndexedIndirectY, 5)
	op(0x35, AND, ZeroPageIndexedX, 4)
	op(0x36, ROL, ZeroPageIndexedX, 6)
	op(0x38, SEC, Implicit, 2)
	op(0x39, AND, AbsoluteIndexedY, 4)
	op(0x3D, AND, AbsoluteIndexedX, 4)
	op(0x3E, ROL, AbsoluteIndexedX, 7)

	// 0x4_
	op(0x40, RTI, Implicit, 6)
	op(0x41, EOR, IndexedIndirectX, 6)
	op(0x45, EOR, ZeroPage, 3)
	op(0x46, LSR, ZeroPage, 5)
	op(0x48, PHA, Implicit, 3)
	op(0x49, EOR, Immediate, 2)
	op(0x4A, LSR, Accumulator, 2)
	op(0x4C, JMP, Absolute, 3)
	op(0x4D, EOR, Absolute, 4)
	op(0x4E, LSR, Absolute, 6)

	// 0x5_
	op(0x50, BVC, Relative, 2)
	op(0x51, EOR, IndexedIndirectY, 5)
	op(0x55, EOR, ZeroPageIndexedX, 4)
	op(0x56, LSR, ZeroPageIndexedX, 6)
	op(0x58, CLI, Implicit, 2)
	op(0x59, EOR, AbsoluteIndexedY, 4)
	op(0x5D, EOR, AbsoluteIndexedX, 4)
	op(0x5E, LSR, AbsoluteIndexedX, 7)

	// 0x6_
	op(0x60, RTS, Implicit, 6)
	op(0x61, ADC, IndexedIndirectX, 6)
	op(0x65, ADC, ZeroPage, 3)
	op(0x66, ROR, ZeroPage, 5)
	op(0x68, PLA, Implicit, 4)
	op(0x69, ADC, Immediate, 2)
	op(0x6A, ROR, Accumulator, 2)
	op(0x6C, JMP, Indirect, 5)
	op(0x6D, ADC, Absolute, 4)
	op(0x6E, ROR, Absolute, 6)

	// 0x7_
	op(0x70, BVS, Relative, 2)
	op(0x71, ADC, IndexedIndirectY, 5)
	op(0x75, ADC, ZeroPageIndexedX, 4)
	op(0x76, ROR, ZeroPageIndexedX, 6)
	op(0x78, SEI, Implicit, 2)
	op(0x79, ADC, AbsoluteIndexedY, 4)
	op(0x7D, ADC, AbsoluteIndexedX, 4)
	op(0x7E, ROR, AbsoluteIndexedX, 7)

	// 0x8_
	op(0x81, STA, IndexedIndirectX, 6)
	op(0x84, STY, ZeroPage, 3)
	op(0x85, STA, ZeroPage, 3)
	op(0x86, STX, ZeroPage, 3)
	op(0x88, DEY, Implicit, 2)
	op(0x8A, TXA, Implicit, 2)
	op(0x8C, STY, Absolute, 4)
	op(0x8D, STA, Absolute, 4)
	op(0x8E, STX, Absolute, 4)

	// 0x9_
	op(0x90, BCC, Relative, 2)
	op(0x91, STA, IndexedIndirectY, 6)
	op(0x94, STY, ZeroPageIndexedX, 4)
	op(0x95, STA, ZeroPageIndexedX, 4)
	op(0x96, STX, ZeroPageIndexedY, 4)
	op(0x98, TYA, Implicit, 2)
	op(0x99, STA, AbsoluteIndexedY, 5)
	op(0x9A, TXS, Implicit, 2)
	op(0x9D, STA, AbsoluteIndexedX, 5)

	// 0xA_
	op(0xA0, LDY, Immediate, 2)
	op(0xA1, LDA, IndexedIndirectX, 6)
	op(0xA2, LDX, Immediate, 2)
	op(0xA4, LDY, ZeroPage, 3)
	op(0xA5, LDA, ZeroPage, 3)
	op(0xA6, LDX, ZeroPage, 3)
	op(0xA8, TAY, Implicit, 2)
	op(0xA9, LDA, Immediate, 2)
	op(0xAA, TAX, Implicit, 2)
	op(0xAC, LDY, Absolute, 4)
	op(0xAD, LDA, Absolute, 4)
	op(0xAE, LDX, Absolute, 4)

	// 0xB_
	op(0xB0, BCS, Relative, 2)
	op(0xB1, LDA, IndexedIndirectY, 5)
	op(0xB4, LDY, ZeroPageIndexedX, 4)
	op(0xB5, LDA, ZeroPageIndexedX, 4)
	op(0xB6, LDX, ZeroPageIndexedY, 4)
	op(0xB8, CLV, Implicit, 2)
	op(0xB9, LDA, AbsoluteIndexedY, 4)
	op(0xBA, TSX, Implicit, 2)
	op(0xBC, LDY, AbsoluteIndexedX, 4)
	op(0xBD, LDA, AbsoluteIndexedX, 4)
	op(0xBE, LDX, AbsoluteIndexedY, 4)

	// 0xC_
	op(0xC0, CPY, Immediate, 2)
	op(0xC1, CMP, IndexedIndirectX, 6)
	op(0xC4, CPY, ZeroPage, 3)
	op(0xC5, CMP, ZeroPage, 3)
	op(0xC6, DEC, ZeroPage, 5)
	op(0xC8, INY, Implicit, 2)
	op(0xC9, CMP, Immediate, 2)
	op(0xCA, DEX, Implicit, 2)
	op(0xCC, CPY, Absolute, 4)
	op(0xCD, CMP, Absolute, 4)
	op(0xCE, DEC, Absolute, 6)

	// 0xD_
	op(0xD0, BNE, Relative, 2)
	op(0xD1, CMP, IndexedIndirectY, 5)
	op(0xD5, CMP, ZeroPageIndexedX, 4)
	op(0xD6, DEC, ZeroPageIndexedX, 6)
	op(0xD8, CLD, Implicit, 2)
	op(0xD9, CMP, AbsoluteIndexedY, 4)
	op(0xDD, CMP, AbsoluteIndexedX, 4)
	op(0xDE, DEC, AbsoluteIndexedX, 7)

	// 0xE_
	op(0xE0, CPX, Immediate, 2)
	op(0xE1, SBC, IndexedIndirectX, 6)
	op(0xE4, CPX, ZeroPage, 3)
	op(0xE5, SBC, ZeroPage, 3)
	op(0xE6, INC, ZeroPage, 5)
	op(0xE8, INX, Implicit, 2)
	op(0xE9, SBC, Immediate, 2)
	op(0xEA, NOP, Implicit, 2)
	op(0xEC, CPX, Absolute, 4)
	op(0xED, SBC, Absolute, 4)
	op(0xEE, INC, Absolute, 6)

	// 0xF_
	op(0xF0, BEQ, Relative, 2)
	op(0xF1, SBC, IndexedIndirectY, 5)
	op(0xF5, SBC, ZeroPageIndexedX, 4)
	op(0xF6, INC, ZeroPageIndexedX, 6)
	op(0xF8, SED, Implicit, 2)
	op(0xF9, SBC, AbsoluteIndexedY, 4)
	op(0xFD, SBC, AbsoluteIndexedX, 4)
	op(0xFE, INC, AbsoluteIndexedX, 7)
}
