// Package cpu implements the NES's 6502-derived CPU core: the register
// file, the 256-entry opcode decode table lookup, the 12 addressing mode
// resolvers (implied and accumulator share one), the 56 documented
// operation semantics, and reset/IRQ/NMI
// interrupt handling. It knows nothing about the PPU, APU, input devices,
// cartridges or ROM loading; it only needs something implementing
// cpubus.Memory to read and write through.
package cpu

import (
	"fmt"

	"github.com/jacobpaton/NESEmu/hardware/cpu/execution"
	"github.com/jacobpaton/NESEmu/hardware/cpu/instructions"
	"github.com/jacobpaton/NESEmu/hardware/cpu/registers"
	"github.com/jacobpaton/NESEmu/hardware/instance"
	"github.com/jacobpaton/NESEmu/hardware/memory/cpubus"
	"github.com/jacobpaton/NESEmu/internal/logger"
)

// CPU implements the NES's 6502-derived processor. Register logic is
// implemented by the types in the registers sub-package; opcode decode
// lives in the instructions sub-package.
type CPU struct {
	instance *instance.Instance
	mem      cpubus.Memory

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// cyclesRemaining counts down the cycles left in the instruction or
	// interrupt sequence currently in progress. Step does all of an
	// instruction's bus work on the tick that finds this at zero, then
	// just counts down on every following tick, matching how the NES's
	// CPU core is meant to be driven one clock tick at a time without
	// modelling every individual bus cycle.
	cyclesRemaining int

	// irqEdge and nmiEdge are one-shot interrupt requests latched by IRQ
	// and NMI: each is serviced at most once at the next instruction
	// boundary and self-clears the moment it is, regardless of whether
	// the condition that raised it is still present. A harness device
	// that wants to keep interrupting calls IRQ again.
	irqEdge bool
	nmiEdge bool

	// LastResult records the outcome of the most recently completed
	// instruction. Step reads only its Cycles field, to set
	// cyclesRemaining; the rest is there so callers (and tests) can
	// inspect cycle counts, page faults and documented CPU quirks.
	LastResult execution.Result
}

// New is the preferred method of initialisation for the CPU. The CPU
// starts with every register zeroed; call Reset to bring it to a valid
// starting state before stepping it.
func New(ins *instance.Instance, mem cpubus.Memory) *CPU {
	return &CPU{
		instance: ins,
		mem:      mem,
		PC:       registers.NewProgramCounter(0),
		A:        registers.NewRegister(0, "A"),
		X:        registers.NewRegister(0, "X"),
		Y:        registers.NewRegister(0, "Y"),
		SP:       registers.NewStackPointer(0),
		Status:   registers.NewStatusRegister(),
	}
}

func (c *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		c.PC.Label(), c.PC, c.A.Label(), c.A,
		c.X.Label(), c.X, c.Y.Label(), c.Y,
		c.SP.Label(), c.SP, c.Status.Label(), c.Status)
}

// Reset reinitialises the CPU and loads PC from the reset vector. Unless
// preferences.RandomPowerOnState is enabled, registers come up zeroed (SP
// at 0xFD, matching real hardware's three phantom stack pushes during
// reset) and the I flag set; enabling that preference instead randomizes
// A, X, Y, SP and P, mirroring the chip's undefined power-on state.
func (c *CPU) Reset() {
	c.LastResult.Reset()
	c.irqEdge = false
	c.nmiEdge = false

	if c.instance != nil && c.instance.Prefs.RandomPowerOnState.Get() {
		c.A.Load(c.instance.Random.Uint8())
		c.X.Load(c.instance.Random.Uint8())
		c.Y.Load(c.instance.Random.Uint8())
		c.SP.Load(c.instance.Random.Uint8())
		c.Status.FromValue(c.instance.Random.Uint8())
	} else {
		c.A.Load(0)
		c.X.Load(0)
		c.Y.Load(0)
		c.SP.Load(0xfd)
		c.Status.Reset()
	}

	c.PC.Load(c.readVector(cpubus.ResetVector))
	c.cyclesRemaining = 8
}

// IRQ latches a one-shot request for the maskable interrupt. It is an
// edge-triggered request from the harness, not a held line: it is
// serviced at most once, at the next instruction boundary, and only if
// the I flag is clear at that point; if I is set the request is dropped
// rather than deferred. A harness device wanting to interrupt again
// calls IRQ again.
func (c *CPU) IRQ() {
	c.irqEdge = true
}

// NMI latches a one-shot request for the non-maskable interrupt. Like IRQ
// it is serviced at most once, at the next instruction boundary, but
// regardless of the I flag.
func (c *CPU) NMI() {
	c.nmiEdge = true
}

// Step advances the CPU by a single clock tick. It returns true on the
// tick that begins a new instruction or interrupt sequence (the one that
// performs all of that sequence's bus activity) and false on every tick
// that is just counting down the remaining cycles.
func (c *CPU) Step() bool {
	if c.cyclesRemaining > 0 {
		c.cyclesRemaining--
		return false
	}

	switch {
	case c.nmiEdge:
		c.nmiEdge = false
		c.serviceInterrupt(cpubus.NMIVector, false)
	case c.irqEdge && !c.Status.InterruptDisable:
		c.irqEdge = false
		c.serviceInterrupt(cpubus.IRQVector, false)
	default:
		// a latched IRQ request that arrives while I is set is dropped,
		// not deferred: it will not be serviced at a later boundary
		// unless IRQ is called again.
		c.irqEdge = false
		c.executeInstruction()
	}

	// this tick is itself the first of LastResult.Cycles.
	c.cyclesRemaining = c.LastResult.Cycles - 1
	return true
}

func (c *CPU) readVector(vector uint16) uint16 {
	lo := uint16(c.mem.Read(vector))
	hi := uint16(c.mem.Read(vector + 1))
	return (hi << 8) | lo
}

func (c *CPU) push(v uint8) {
	c.mem.Write(c.SP.Address(), v)
	c.SP.Push()
}

func (c *CPU) pull() uint8 {
	c.SP.Pull()
	return c.mem.Read(c.SP.Address())
}

func (c *CPU) pushAddress(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr & 0x00ff))
}

func (c *CPU) pullAddress() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return (hi << 8) | lo
}

// serviceInterrupt runs the shared IRQ/NMI sequence: push PC, push status
// (with B set only when brk is true), set I, and load PC from the given
// vector. It costs 7 cycles, same as BRK. Reset does not use it.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	c.LastResult.Reset()
	c.LastResult.Address = c.PC.Address()

	c.pushAddress(c.PC.Address())

	status := c.Status
	status.Break = brk
	c.push(status.Value())

	c.Status.InterruptDisable = true
	c.PC.Load(c.readVector(vector))

	c.LastResult.Cycles = 7
	c.LastResult.Final = true
}

// executeInstruction decodes and fully executes the instruction at PC,
// filling in LastResult.
func (c *CPU) executeInstruction() {
	c.LastResult.Reset()
	c.LastResult.Address = c.PC.Address()

	opcode := c.fetchByte()
	defn := instructions.Lookup(opcode)
	c.LastResult.Defn = &defn
	c.LastResult.InstructionData = 0

	if defn.Illegal {
		if c.instance == nil || c.instance.Prefs.LogIllegalOpcodes.Get() {
			logger.Logf(logger.Allow, "cpu", "illegal opcode %#02x at %#04x", opcode, c.LastResult.Address)
		}
	}

	op := c.resolve(defn.AddressingMode)

	pageFaultCosts := defn.PageSensitive && defn.Effect != instructions.Flow
	c.LastResult.PageFault = op.pageCrossed && defn.PageSensitive
	c.LastResult.CPUBug = op.bug

	c.dispatch(defn, op)

	cycles := defn.Cycles
	if pageFaultCosts && op.pageCrossed {
		cycles++
	}
	if defn.IsBranch() && c.LastResult.BranchSuccess {
		cycles++
		if op.pageCrossed {
			cycles++
		}
	}

	c.LastResult.Cycles = cycles
	c.LastResult.Final = true
}
