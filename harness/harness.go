// Package harness wires a CPU core to a flat RAM-backed bus and drives it
// one clock tick at a time, fanning out PPU ticks at the NES's fixed 1:3
// CPU:PPU ratio. It has no picture or audio processing of its own: PPUTicks
// is a bare counter standing in for the chip that, in a complete console,
// would be stepped alongside the CPU here.
package harness

import (
	"github.com/jacobpaton/NESEmu/hardware/clocks"
	"github.com/jacobpaton/NESEmu/hardware/cpu"
	"github.com/jacobpaton/NESEmu/hardware/instance"
	"github.com/jacobpaton/NESEmu/hardware/memory/cpubus"
)

// RAM is the simplest possible implementation of cpubus.Memory: the full
// 64 kilobyte address space backed by a single array, with no memory
// mapping, mirroring or cartridge logic of any kind.
type RAM struct {
	mem [65536]uint8
}

// NewRAM returns a zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read(address uint16) uint8 {
	return r.mem[address]
}

func (r *RAM) Write(address uint16, data uint8) {
	r.mem[address] = data
}

// Load copies program into RAM starting at address, for setting up a
// small test program without going through a cartridge/mapper layer.
func (r *RAM) Load(address uint16, program []uint8) {
	copy(r.mem[address:], program)
}

// Machine bundles a CPU with the RAM bus it reads and writes through, and
// counts the CPU and PPU ticks it has driven.
type Machine struct {
	CPU *cpu.CPU
	RAM *RAM

	CPUTicks uint64
	PPUTicks uint64
}

// NewMachine constructs a Machine with a fresh RAM bus and a CPU bound to
// it. A nil ins is passed to the CPU as is; the CPU then behaves as with
// default preferences (no randomized power-on state, illegal opcodes
// logged).
func NewMachine(ins *instance.Instance) *Machine {
	ram := NewRAM()
	return &Machine{
		CPU: cpu.New(ins, ram),
		RAM: ram,
	}
}

// Tick drives the machine forward by a single CPU clock cycle, ticking the
// PPU clocks.CPUPPURatio times for every CPU tick, matching the fixed 1:3
// ratio the NES's master clock is divided into.
func (m *Machine) Tick() {
	m.CPU.Step()
	m.CPUTicks++
	m.PPUTicks += clocks.CPUPPURatio
}

// StepInstruction drives the machine until Tick reports the start of a new
// instruction or interrupt sequence, then keeps driving until that
// sequence's remaining cycles have been spent. It always executes exactly
// one instruction or interrupt, even if the machine is mid-sequence when
// called.
func (m *Machine) StepInstruction() {
	for {
		boundary := m.CPU.Step()
		m.CPUTicks++
		m.PPUTicks += clocks.CPUPPURatio
		if boundary {
			break
		}
	}
	for i := 1; i < m.CPU.LastResult.Cycles; i++ {
		m.CPU.Step()
		m.CPUTicks++
		m.PPUTicks += clocks.CPUPPURatio
	}
}

// ContinueFunc is consulted after every instruction Run drives; returning
// false stops the run.
type ContinueFunc func(m *Machine) bool

// Run drives the machine instruction by instruction until continueCheck
// returns false. A nil continueCheck runs forever.
func (m *Machine) Run(continueCheck ContinueFunc) {
	if continueCheck == nil {
		continueCheck = func(*Machine) bool { return true }
	}
	for {
		m.StepInstruction()
		if !continueCheck(m) {
			return
		}
	}
}

var _ cpubus.Memory = (*RAM)(nil)
