package cpu

import (
	"github.com/jacobpaton/NESEmu/hardware/cpu/instructions"
	"github.com/jacobpaton/NESEmu/hardware/cpu/registers"
	"github.com/jacobpaton/NESEmu/hardware/memory/cpubus"
)

// dispatch executes defn's operator against the resolved operand. It is
// the only place that mutates CPU state as a result of an instruction
// (aside from the PC advances already performed while resolving the
// addressing mode).
func (c *CPU) dispatch(defn instructions.Definition, op operand) {
	switch defn.Operator {
	case instructions.ADC:
		c.adc(c.fetch8(op))
	case instructions.SBC:
		c.sbc(c.fetch8(op))
	case instructions.AND:
		c.A.AND(c.fetch8(op))
		c.setZN(c.A.Value())
	case instructions.ORA:
		c.A.ORA(c.fetch8(op))
		c.setZN(c.A.Value())
	case instructions.EOR:
		c.A.EOR(c.fetch8(op))
		c.setZN(c.A.Value())
	case instructions.BIT:
		c.bit(c.fetch8(op))

	case instructions.ASL:
		c.shiftRotate(op, func(r *registers.Register) bool { return r.ASL() })
	case instructions.LSR:
		c.shiftRotate(op, func(r *registers.Register) bool { return r.LSR() })
	case instructions.ROL:
		carry := c.Status.Carry
		c.shiftRotate(op, func(r *registers.Register) bool { return r.ROL(carry) })
	case instructions.ROR:
		carry := c.Status.Carry
		c.shiftRotate(op, func(r *registers.Register) bool { return r.ROR(carry) })

	case instructions.INC:
		c.incDec(op, 1)
	case instructions.DEC:
		c.incDec(op, 0xff)
	case instructions.INX:
		c.X.Add(1, false)
		c.setZN(c.X.Value())
	case instructions.INY:
		c.Y.Add(1, false)
		c.setZN(c.Y.Value())
	case instructions.DEX:
		c.X.Add(0xff, false)
		c.setZN(c.X.Value())
	case instructions.DEY:
		c.Y.Add(0xff, false)
		c.setZN(c.Y.Value())

	case instructions.CMP:
		c.compare(c.A.Value(), c.fetch8(op))
	case instructions.CPX:
		c.compare(c.X.Value(), c.fetch8(op))
	case instructions.CPY:
		c.compare(c.Y.Value(), c.fetch8(op))

	case instructions.LDA:
		c.A.Load(c.fetch8(op))
		c.setZN(c.A.Value())
	case instructions.LDX:
		c.X.Load(c.fetch8(op))
		c.setZN(c.X.Value())
	case instructions.LDY:
		c.Y.Load(c.fetch8(op))
		c.setZN(c.Y.Value())
	case instructions.STA:
		c.mem.Write(op.address, c.A.Value())
	case instructions.STX:
		c.mem.Write(op.address, c.X.Value())
	case instructions.STY:
		c.mem.Write(op.address, c.Y.Value())

	case instructions.TAX:
		c.X.Load(c.A.Value())
		c.setZN(c.X.Value())
	case instructions.TAY:
		c.Y.Load(c.A.Value())
		c.setZN(c.Y.Value())
	case instructions.TXA:
		c.A.Load(c.X.Value())
		c.setZN(c.A.Value())
	case instructions.TYA:
		c.A.Load(c.Y.Value())
		c.setZN(c.A.Value())
	case instructions.TSX:
		c.X.Load(c.SP.Value())
		c.setZN(c.X.Value())
	case instructions.TXS:
		c.SP.Load(c.X.Value())

	case instructions.PHA:
		c.push(c.A.Value())
	case instructions.PHP:
		status := c.Status
		status.Break = true
		c.push(status.Value())
		c.Status.Break = false
	case instructions.PLA:
		c.A.Load(c.pull())
		c.setZN(c.A.Value())
	case instructions.PLP:
		c.Status.FromValue(c.pull())

	case instructions.CLC:
		c.Status.Carry = false
	case instructions.SEC:
		c.Status.Carry = true
	case instructions.CLI:
		c.Status.InterruptDisable = false
	case instructions.SEI:
		c.Status.InterruptDisable = true
	case instructions.CLD:
		c.Status.DecimalMode = false
	case instructions.SED:
		c.Status.DecimalMode = true
	case instructions.CLV:
		c.Status.Overflow = false

	case instructions.JMP:
		c.PC.Load(op.address)
	case instructions.JSR:
		c.pushAddress(c.PC.Address() - 1)
		c.PC.Load(op.address)
	case instructions.RTS:
		c.PC.Load(c.pullAddress())
		c.PC.Inc()
	case instructions.BRK:
		c.brk()
	case instructions.RTI:
		c.rti()

	case instructions.BCC:
		c.branch(op, !c.Status.Carry)
	case instructions.BCS:
		c.branch(op, c.Status.Carry)
	case instructions.BEQ:
		c.branch(op, c.Status.Zero)
	case instructions.BNE:
		c.branch(op, !c.Status.Zero)
	case instructions.BMI:
		c.branch(op, c.Status.Negative)
	case instructions.BPL:
		c.branch(op, !c.Status.Negative)
	case instructions.BVC:
		c.branch(op, !c.Status.Overflow)
	case instructions.BVS:
		c.branch(op, c.Status.Overflow)

	case instructions.NOP:
		// no operation, whether legal (0xEA) or an undocumented opcode
		// treated as a correctly-timed no-op.
	}
}

// fetch8 resolves op to the 8 bit value an instruction operates on: the
// accumulator for IMP/accumulator addressing, or the byte at op's
// effective address otherwise.
func (c *CPU) fetch8(op operand) uint8 {
	if op.accumulator {
		return c.A.Value()
	}
	return c.mem.Read(op.address)
}

func (c *CPU) setZN(v uint8) {
	c.Status.Zero = v == 0
	c.Status.Negative = v&0x80 == 0x80
}

// adc implements ADC using the same adder the register type exposes for
// plain addition: A = A + value + C, with the carry-out and signed
// overflow both coming from Register.Add.
func (c *CPU) adc(value uint8) {
	carry, overflow := c.A.Add(value, c.Status.Carry)
	c.Status.Carry = carry
	c.Status.Overflow = overflow
	c.setZN(c.A.Value())
}

// sbc implements SBC as A = A + ^value + C, the standard 6502 identity
// for subtract-with-borrow built on the same adder ADC uses.
func (c *CPU) sbc(value uint8) {
	carry, overflow := c.A.Subtract(value, c.Status.Carry)
	c.Status.Carry = carry
	c.Status.Overflow = overflow
	c.setZN(c.A.Value())
}

// bit implements BIT: Z comes from A AND value, N and V are taken
// directly from bits 7 and 6 of the fetched value, not from A.
func (c *CPU) bit(value uint8) {
	r := registers.NewRegister(value, "")
	c.Status.Zero = c.A.Value()&value == 0
	c.Status.Negative = r.IsNegative()
	c.Status.Overflow = r.IsBitV()
}

// compare implements CMP/CPX/CPY: a subtraction whose result is discarded
// except for the flags it sets.
func (c *CPU) compare(reg, value uint8) {
	tmp := registers.NewRegister(reg, "")
	carry, _ := tmp.Subtract(value, true)
	c.Status.Carry = carry
	c.Status.Zero = tmp.IsZero()
	c.Status.Negative = tmp.IsNegative()
}

// shiftRotate applies fn (one of Register.ASL/LSR/ROL/ROR) to the
// accumulator or to the byte at op's effective address, writing the
// result back and updating C/Z/N from it.
func (c *CPU) shiftRotate(op operand, fn func(*registers.Register) bool) {
	if op.accumulator {
		carry := fn(&c.A)
		c.Status.Carry = carry
		c.setZN(c.A.Value())
		return
	}

	tmp := registers.NewRegister(c.mem.Read(op.address), "")
	carry := fn(&tmp)
	c.Status.Carry = carry
	c.mem.Write(op.address, tmp.Value())
	c.setZN(tmp.Value())
}

// incDec implements INC/DEC, which on the 6502 only ever address memory,
// never the accumulator: flags come from the stored byte, not A.
func (c *CPU) incDec(op operand, delta uint8) {
	v := c.mem.Read(op.address) + delta
	c.mem.Write(op.address, v)
	c.setZN(v)
}

// branch implements the eight conditional branches. Cycle penalties for a
// taken branch (and a taken branch that crosses a page) are applied by
// the caller from LastResult.BranchSuccess and op.pageCrossed.
func (c *CPU) branch(op operand, condition bool) {
	c.LastResult.BranchSuccess = condition
	if condition {
		c.PC.Load(op.branchAddress)
	}
}

// brk implements the software interrupt. The opcode is one byte but real
// hardware reads and discards a second, padding byte before pushing the
// return address, which is why the decode table lists BRK as 2 bytes.
func (c *CPU) brk() {
	c.advancePC(1)

	c.pushAddress(c.PC.Address())

	status := c.Status
	status.Break = true
	c.push(status.Value())

	c.Status.Break = false
	c.Status.InterruptDisable = true
	c.PC.Load(c.readVector(cpubus.IRQVector))
}

// rti returns from an interrupt or BRK: pull status, then pull PC. Unlike
// RTS, PC is not incremented afterwards: the pushed value already points
// at the correct next instruction. B has no meaning once execution resumes
// normally, so it is cleared in the restored status regardless of what was
// pushed; PLP, by contrast, restores it as-is for software that inspects it.
func (c *CPU) rti() {
	c.Status.FromValue(c.pull())
	c.Status.Break = false
	c.PC.Load(c.pullAddress())
}
