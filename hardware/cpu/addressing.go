package cpu

import (
	"github.com/jacobpaton/NESEmu/hardware/cpu/execution"
	"github.com/jacobpaton/NESEmu/hardware/cpu/instructions"
)

// operand is the result of resolving an instruction's addressing mode:
// either an effective memory address an operation reads/writes through,
// or (for IMP/accumulator addressing) a signal that the operation should
// act on the A register directly.
type operand struct {
	address       uint16
	accumulator   bool
	pageCrossed   bool
	branchAddress uint16 // only meaningful for REL
	bug           execution.Bug
}

// resolve consumes the operand bytes for defn's addressing mode,
// advancing PC and LastResult.InstructionData/ByteCount as it goes, and
// returns the effective address (or accumulator flag) the operation
// should act on.
func (c *CPU) resolve(mode instructions.AddressingMode) operand {
	switch mode {
	case instructions.IMP:
		return operand{accumulator: true}
	case instructions.IMM:
		addr := c.PC.Address()
		c.fetchByte()
		return operand{address: addr}
	case instructions.ZP0:
		return operand{address: uint16(c.fetchByte())}
	case instructions.ZPX:
		return c.resolveZeroPageIndexed(c.X.Value())
	case instructions.ZPY:
		return c.resolveZeroPageIndexed(c.Y.Value())
	case instructions.REL:
		return c.resolveRelative()
	case instructions.ABS:
		return operand{address: c.fetchWord()}
	case instructions.ABX:
		return c.resolveAbsoluteIndexed(c.X.Value())
	case instructions.ABY:
		return c.resolveAbsoluteIndexed(c.Y.Value())
	case instructions.IND:
		return c.resolveIndirect()
	case instructions.IZX:
		return c.resolveIndexedIndirect()
	case instructions.IZY:
		return c.resolveIndirectIndexed()
	}
	return operand{}
}

// resolveZeroPageIndexed implements zp,X and zp,Y. The effective address
// always wraps within the zero page: it never carries into page one, even
// when base+index overflows a byte.
func (c *CPU) resolveZeroPageIndexed(index uint8) operand {
	base := c.fetchByte()
	sum := base + index
	var bug execution.Bug
	if uint16(base)+uint16(index) != uint16(sum) {
		bug = execution.ZeroPageIndexBug
	}
	return operand{address: uint16(sum), bug: bug}
}

func (c *CPU) resolveRelative() operand {
	offset := uint16(c.fetchByte())
	if offset&0x80 != 0 {
		offset |= 0xff00
	}
	target := c.PC.Address() + offset
	return operand{
		branchAddress: target,
		pageCrossed:   target&0xff00 != c.PC.Address()&0xff00,
	}
}

func (c *CPU) resolveAbsoluteIndexed(index uint8) operand {
	base := c.fetchWord()
	addr := base + uint16(index)
	return operand{address: addr, pageCrossed: addr&0xff00 != base&0xff00}
}

// resolveIndirect implements JMP (ind), including the documented hardware
// bug: if the low byte of the pointer is 0xFF, the high byte of the
// target is fetched from the start of the same page instead of crossing
// into the next one.
func (c *CPU) resolveIndirect() operand {
	ptr := c.fetchWord()

	lo := uint16(c.mem.Read(ptr))
	var hiAddr uint16
	var bug execution.Bug
	if ptr&0x00ff == 0x00ff {
		hiAddr = ptr & 0xff00
		bug = execution.JmpIndirectAddressingBug
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.mem.Read(hiAddr))

	return operand{address: (hi << 8) | lo, bug: bug}
}

// resolveIndexedIndirect implements (zp,X): X is added to the zero page
// pointer before the 16 bit address is read, wrapping within the zero
// page.
func (c *CPU) resolveIndexedIndirect() operand {
	zp := c.fetchByte() + c.X.Value()
	lo := uint16(c.mem.Read(uint16(zp)))
	hi := uint16(c.mem.Read(uint16(zp + 1)))
	return operand{address: (hi << 8) | lo}
}

// resolveIndirectIndexed implements (zp),Y: the 16 bit address is read
// from the zero page pointer first, then Y is added to it.
func (c *CPU) resolveIndirectIndexed() operand {
	zp := c.fetchByte()
	lo := uint16(c.mem.Read(uint16(zp)))
	hi := uint16(c.mem.Read(uint16(zp + 1)))
	base := (hi << 8) | lo
	addr := base + uint16(c.Y.Value())
	return operand{address: addr, pageCrossed: addr&0xff00 != base&0xff00}
}

// fetchByte reads the next program byte, advances PC, and folds the byte
// into LastResult.InstructionData, most-significant-byte-read first.
func (c *CPU) fetchByte() uint8 {
	v := c.mem.Read(c.PC.Address())
	c.advancePC(1)
	c.LastResult.InstructionData = c.LastResult.InstructionData<<8 | uint16(v)
	return v
}

// fetchWord reads the next two program bytes, little-endian, and
// advances PC.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetchByte())
	hi := uint16(c.fetchByte())
	return (hi << 8) | lo
}

func (c *CPU) advancePC(n int) {
	for i := 0; i < n; i++ {
		c.PC.Inc()
	}
	c.LastResult.ByteCount += n
}
