package cpu

// This file groups opcode execution by operation family rather than one
// method per mnemonic: every LDA/LDX/LDY byte ends up in execLoad, every
// branch byte in execBranch, and so on. Each handler returns the number
// of bonus cycles (page-cross or branch-taken) on top of the opcode
// table's base cost, and an error if the resolved AddrResult shape is
// one the handler can't act on.

func (c *CPU) readOperand(r AddrResult) (byte, error) {
	switch r.Kind {
	case KindImmediate:
		return r.Value, nil
	case KindZeroPage:
		return c.Bus.Read(uint16(r.ZP)), nil
	case KindAddress:
		return c.Bus.Read(r.Addr), nil
	case KindAccumulator:
		return c.A, nil
	default:
		return 0, InvalidAddressMode{Reason: "operand has no readable value"}
	}
}

func (c *CPU) writeOperand(r AddrResult, v byte) error {
	switch r.Kind {
	case KindZeroPage:
		c.Bus.Write(uint16(r.ZP), v)
	case KindAddress:
		c.Bus.Write(r.Addr, v)
	case KindAccumulator:
		c.A = v
	default:
		return InvalidAddressMode{Reason: "operand has no writable location"}
	}
	return nil
}

// execLoad implements LDA/LDX/LDY: read a byte, stash it in the named
// register, and set Z/N from the loaded value.
func (c *CPU) execLoad(op Operation, r AddrResult) (byte, error) {
	v, err := c.readOperand(r)
	if err != nil {
		return 0, err
	}
	switch op {
	case LDA:
		c.A = v
	case LDX:
		c.X = v
	case LDY:
		c.Y = v
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	c.SetFlag(FlagZ, v == 0)
	c.SetFlag(FlagN, v&0x80 != 0)
	if r.PageCrossed {
		return 1, nil
	}
	return 0, nil
}

// execStore implements STA/STX/STY: write the named register's value to
// the resolved location. Stores never take a page-cross penalty.
func (c *CPU) execStore(op Operation, r AddrResult) (byte, error) {
	var v byte
	switch op {
	case STA:
		v = c.A
	case STX:
		v = c.X
	case STY:
		v = c.Y
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	if err := c.writeOperand(r, v); err != nil {
		return 0, err
	}
	return 0, nil
}

// execArith implements ADC and SBC. SBC is ADC with the operand
// one's-complemented, so carry-in/carry-out and the overflow formula
// stay identical for both.
func (c *CPU) execArith(op Operation, r AddrResult) (byte, error) {
	m, err := c.readOperand(r)
	if err != nil {
		return 0, err
	}

	operand := m
	switch op {
	case SBC:
		operand = ^m
	case ADC:
		// operand unchanged
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}

	aBefore := c.A
	carryIn := uint16(0)
	if c.GetFlag(FlagC) {
		carryIn = 1
	}
	sum := uint16(aBefore) + uint16(operand) + carryIn
	result := byte(sum)

	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagV, (operand^result)&(aBefore^result)&0x80 != 0)
	c.SetFlag(FlagN, result&0x80 != 0)
	c.A = result

	if r.PageCrossed {
		return 1, nil
	}
	return 0, nil
}

// execBitwise implements AND/EOR/ORA: combine the operand into A and set
// Z/N from the result.
func (c *CPU) execBitwise(op Operation, r AddrResult) (byte, error) {
	m, err := c.readOperand(r)
	if err != nil {
		return 0, err
	}
	switch op {
	case AND:
		c.A &= m
	case EOR:
		c.A ^= m
	case ORA:
		c.A |= m
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN, c.A&0x80 != 0)
	if r.PageCrossed {
		return 1, nil
	}
	return 0, nil
}

// execBit implements BIT: Z comes from A&M, but N and V are copied
// straight from bits 7 and 6 of the memory operand, not from A&M.
func (c *CPU) execBit(r AddrResult) (byte, error) {
	m, err := c.readOperand(r)
	if err != nil {
		return 0, err
	}
	c.SetFlag(FlagZ, c.A&m == 0)
	c.SetFlag(FlagV, m&0x40 != 0)
	c.SetFlag(FlagN, m&0x80 != 0)
	return 0, nil
}

// execShift implements ASL/LSR/ROL/ROR on either A (Accumulator mode)
// or a memory location.
func (c *CPU) execShift(op Operation, r AddrResult) (byte, error) {
	v, err := c.readOperand(r)
	if err != nil {
		return 0, err
	}

	var result byte
	switch op {
	case ASL:
		c.SetFlag(FlagC, v&0x80 != 0)
		result = v << 1
	case LSR:
		c.SetFlag(FlagC, v&0x01 != 0)
		result = v >> 1
	case ROL:
		oldCarry := byte(0)
		if c.GetFlag(FlagC) {
			oldCarry = 1
		}
		c.SetFlag(FlagC, v&0x80 != 0)
		result = (v << 1) | oldCarry
	case ROR:
		oldCarry := byte(0)
		if c.GetFlag(FlagC) {
			oldCarry = 1
		}
		c.SetFlag(FlagC, v&0x01 != 0)
		result = (v >> 1) | (oldCarry << 7)
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}

	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, result&0x80 != 0)

	if err := c.writeOperand(r, result); err != nil {
		return 0, err
	}
	return 0, nil
}

// execCompare implements CMP/CPX/CPY: subtract without storing, setting
// flags as if by SBC with carry forced in.
func (c *CPU) execCompare(op Operation, r AddrResult) (byte, error) {
	m, err := c.readOperand(r)
	if err != nil {
		return 0, err
	}
	var reg byte
	switch op {
	case CMP:
		reg = c.A
	case CPX:
		reg = c.X
	case CPY:
		reg = c.Y
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	diff := reg - m
	c.SetFlag(FlagC, reg >= m)
	c.SetFlag(FlagZ, reg == m)
	c.SetFlag(FlagN, diff&0x80 != 0)
	if r.PageCrossed {
		return 1, nil
	}
	return 0, nil
}

// execIncDec implements INC/DEC (memory) and INX/INY/DEX/DEY (register).
func (c *CPU) execIncDec(op Operation, r AddrResult) (byte, error) {
	setZN := func(v byte) {
		c.SetFlag(FlagZ, v == 0)
		c.SetFlag(FlagN, v&0x80 != 0)
	}

	switch op {
	case INX:
		c.X++
		setZN(c.X)
	case INY:
		c.Y++
		setZN(c.Y)
	case DEX:
		c.X--
		setZN(c.X)
	case DEY:
		c.Y--
		setZN(c.Y)
	case INC, DEC:
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		if op == INC {
			v++
		} else {
			v--
		}
		setZN(v)
		if err := c.writeOperand(r, v); err != nil {
			return 0, err
		}
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	return 0, nil
}

// execBranch implements the 8 conditional branches. It returns 1 extra
// cycle when the branch is taken, plus 1 more if taking it crosses a
// page boundary; an untaken branch costs only the opcode's base cycles.
func (c *CPU) execBranch(op Operation, r AddrResult) (byte, error) {
	if r.Kind != KindRelative {
		return 0, InvalidAddressMode{Reason: "branch requires a relative operand"}
	}

	var taken bool
	switch op {
	case BCC:
		taken = !c.GetFlag(FlagC)
	case BCS:
		taken = c.GetFlag(FlagC)
	case BEQ:
		taken = c.GetFlag(FlagZ)
	case BNE:
		taken = !c.GetFlag(FlagZ)
	case BMI:
		taken = c.GetFlag(FlagN)
	case BPL:
		taken = !c.GetFlag(FlagN)
	case BVC:
		taken = !c.GetFlag(FlagV)
	case BVS:
		taken = c.GetFlag(FlagV)
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}

	if !taken {
		return 0, nil
	}

	oldPC := c.PC
	newPC := uint16(int32(oldPC) + int32(r.Offset))
	c.PC = newPC

	if pageCrossed(oldPC, newPC) {
		return 2, nil
	}
	return 1, nil
}

// execFlagOp implements CLC/CLD/CLI/CLV/SEC/SED/SEI.
func (c *CPU) execFlagOp(op Operation) (byte, error) {
	switch op {
	case CLC:
		c.SetFlag(FlagC, false)
	case CLD:
		c.SetFlag(FlagD, false)
	case CLI:
		c.SetFlag(FlagI, false)
	case CLV:
		c.SetFlag(FlagV, false)
	case SEC:
		c.SetFlag(FlagC, true)
	case SED:
		c.SetFlag(FlagD, true)
	case SEI:
		c.SetFlag(FlagI, true)
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	return 0, nil
}

// execTransfer implements TAX/TAY/TSX/TXA/TXS/TYA. TXS alone sets no
// flags, since the stack pointer isn't an accumulator.
func (c *CPU) execTransfer(op Operation) (byte, error) {
	setZN := func(v byte) {
		c.SetFlag(FlagZ, v == 0)
		c.SetFlag(FlagN, v&0x80 != 0)
	}

	switch op {
	case TAX:
		c.X = c.A
		setZN(c.X)
	case TAY:
		c.Y = c.A
		setZN(c.Y)
	case TSX:
		c.X = c.SP
		setZN(c.X)
	case TXA:
		c.A = c.X
		setZN(c.A)
	case TXS:
		c.SP = c.X
	case TYA:
		c.A = c.Y
		setZN(c.A)
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	return 0, nil
}

// execJump implements JMP (Absolute or Indirect, the latter reproducing
// the page-wrap hardware bug), JSR and RTS.
func (c *CPU) execJump(op Operation, r AddrResult) (byte, error) {
	switch op {
	case JMP:
		switch r.Kind {
		case KindAddress:
			c.PC = r.Addr
		case KindIndirect:
			c.PC = c.read16Bug(r.Addr)
		default:
			return 0, InvalidAddressMode{Reason: "JMP requires an address or indirect pointer"}
		}
	case JSR:
		if r.Kind != KindAddress {
			return 0, InvalidAddressMode{Reason: "JSR requires an absolute address"}
		}
		ret := c.PC - 1
		c.push(byte(ret >> 8))
		c.push(byte(ret))
		c.PC = r.Addr
	case RTS:
		lo := c.pull()
		hi := c.pull()
		c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	return 0, nil
}

// execBRK pushes PC (already past the one-byte opcode fetch) and
// P|B|U, sets I, and loads PC from the IRQ/BRK vector. Unlike real
// 6502 hardware, which reads and discards a padding byte after BRK
// before pushing PC+2, this pushes PC as fetched, per spec.
func (c *CPU) execBRK() (byte, error) {
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push(c.P | FlagB | FlagU)
	c.SetFlag(FlagI, true)
	c.PC = c.read16(0xFFFE)
	return 0, nil
}

// execRTI pulls P (forcing U on, dropping B) then PC, the reverse of
// what BRK pushed.
func (c *CPU) execRTI() (byte, error) {
	p := c.pull()
	c.P = (p | FlagU) &^ FlagB
	lo := c.pull()
	hi := c.pull()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0, nil
}

// execStack implements PHA/PHP/PLA/PLP.
func (c *CPU) execStack(op Operation) (byte, error) {
	switch op {
	case PHA:
		c.push(c.A)
	case PHP:
		c.push(c.P | FlagB | FlagU)
	case PLA:
		c.A = c.pull()
		c.SetFlag(FlagZ, c.A == 0)
		c.SetFlag(FlagN, c.A&0x80 != 0)
	case PLP:
		p := c.pull()
		c.P = (p | FlagU) &^ FlagB
	default:
		return 0, InvalidOperation{Reason: op.String()}
	}
	return 0, nil
}
