package harness_test

import (
	"testing"

	"github.com/jacobpaton/NESEmu/harness"
	"github.com/jacobpaton/NESEmu/hardware/memory/cpubus"
)

func newTestMachine(t *testing.T) *harness.Machine {
	t.Helper()
	m := harness.NewMachine(nil)
	m.RAM.Write(cpubus.ResetVector, 0x00)
	m.RAM.Write(cpubus.ResetVector+1, 0x80)
	m.CPU.Reset()
	for i := 0; i < 8; i++ {
		m.CPU.Step()
	}
	m.CPUTicks = 0
	m.PPUTicks = 0
	return m
}

func TestTickCountsCPUAndPPU(t *testing.T) {
	m := newTestMachine(t)
	m.RAM.Load(0x8000, []uint8{0xEA}) // NOP

	for i := 0; i < 2; i++ {
		m.Tick()
	}
	if m.CPUTicks != 2 {
		t.Fatalf("got %d CPU ticks, wanted 2", m.CPUTicks)
	}
	if m.PPUTicks != 6 {
		t.Fatalf("got %d PPU ticks, wanted 6 (1:3 ratio)", m.PPUTicks)
	}
}

func TestStepInstructionAdvancesPastNOP(t *testing.T) {
	m := newTestMachine(t)
	m.RAM.Load(0x8000, []uint8{0xEA, 0xEA})

	m.StepInstruction()
	if m.CPU.PC.Address() != 0x8001 {
		t.Fatalf("got PC %#04x, wanted 0x8001", m.CPU.PC.Address())
	}
	if m.CPUTicks != 2 {
		t.Fatalf("got %d CPU ticks for a 2 cycle NOP, wanted 2", m.CPUTicks)
	}

	m.StepInstruction()
	if m.CPU.PC.Address() != 0x8002 {
		t.Fatalf("got PC %#04x, wanted 0x8002", m.CPU.PC.Address())
	}
}

func TestRunStopsWhenContinueCheckReturnsFalse(t *testing.T) {
	m := newTestMachine(t)
	m.RAM.Load(0x8000, []uint8{0xEA, 0xEA, 0xEA, 0xEA})

	count := 0
	m.Run(func(m *harness.Machine) bool {
		count++
		return count < 3
	})

	if count != 3 {
		t.Fatalf("got %d instructions, wanted 3", count)
	}
	if m.CPU.PC.Address() != 0x8003 {
		t.Fatalf("got PC %#04x, wanted 0x8003", m.CPU.PC.Address())
	}
}
