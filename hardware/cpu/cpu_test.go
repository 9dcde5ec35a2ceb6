package cpu_test

import (
	"testing"

	"github.com/jacobpaton/NESEmu/hardware/cpu"
	"github.com/jacobpaton/NESEmu/hardware/cpu/execution"
	"github.com/jacobpaton/NESEmu/hardware/instance"
	"github.com/jacobpaton/NESEmu/hardware/memory/cpubus"
)

// testBus is a flat 64KB array implementing cpubus.Memory, enough to
// exercise every addressing mode without any mapping logic.
type testBus struct {
	ram [0x10000]uint8
}

func (b *testBus) Read(addr uint16) uint8     { return b.ram[addr] }
func (b *testBus) Write(addr uint16, v uint8) { b.ram[addr] = v }

func newTestCPU() (*cpu.CPU, *testBus) {
	bus := &testBus{}
	bus.Write(cpubus.ResetVector, 0x00)
	bus.Write(cpubus.ResetVector+1, 0x80)

	c := cpu.New(instance.NewInstance(nil), bus)
	c.Reset()
	// Reset itself costs 8 cycles; drain them before a test starts driving
	// Step for an actual instruction.
	for i := 0; i < 8; i++ {
		c.Step()
	}
	return c, bus
}

// runInstruction steps the CPU through exactly one instruction (or
// interrupt sequence): one tick to decode and execute it, then enough
// further ticks to burn through the cycles it reported taking.
func runInstruction(c *cpu.CPU) execution.Result {
	c.Step()
	for i := 1; i < c.LastResult.Cycles; i++ {
		c.Step()
	}
	return c.LastResult
}

func TestResetUsesEightCycles(t *testing.T) {
	bus := &testBus{}
	bus.Write(cpubus.ResetVector, 0x00)
	bus.Write(cpubus.ResetVector+1, 0x80)
	bus.Write(0x8000, 0xEA) // NOP

	c := cpu.New(instance.NewInstance(nil), bus)
	c.Reset()

	for i := 0; i < 8; i++ {
		if c.Step() {
			t.Fatalf("reset tick %d: Step reported an instruction boundary, wanted it still draining the 8 cycle reset sequence", i+1)
		}
	}
	if !c.Step() {
		t.Fatalf("the 9th Step after Reset should begin fetching the first instruction")
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x8000, 0xA9)
	bus.Write(0x8001, 0x00)

	res := runInstruction(c)
	if c.A.Value() != 0 {
		t.Fatalf("A = %#02x, wanted 0", c.A.Value())
	}
	if !c.Status.Zero || c.Status.Negative {
		t.Fatalf("Z=%v N=%v, wanted Z=true N=false", c.Status.Zero, c.Status.Negative)
	}
	if res.Cycles != 2 {
		t.Fatalf("cycles = %d, wanted 2", res.Cycles)
	}

	bus.Write(0x8002, 0xA9)
	bus.Write(0x8003, 0x80)
	runInstruction(c)
	if !c.Status.Negative || c.Status.Zero {
		t.Fatalf("Z=%v N=%v, wanted Z=false N=true", c.Status.Zero, c.Status.Negative)
	}
}

func TestADCOverflowMatrix(t *testing.T) {
	cases := []struct {
		a, m       uint8
		carryIn    bool
		wantA      uint8
		wantCarry  bool
		wantOv     bool
	}{
		{0x50, 0x10, false, 0x60, false, false}, // no overflow
		{0x50, 0x50, false, 0xa0, false, true},  // pos+pos=neg -> overflow
		{0xd0, 0x90, false, 0x60, true, true},   // neg+neg=pos -> overflow
		{0xd0, 0x10, false, 0xe0, false, false}, // neg+pos, no overflow
		{0x7f, 0x00, true, 0x80, false, true},   // carry-in tips into overflow
	}

	for _, tc := range cases {
		c, bus := newTestCPU()
		c.A.Load(tc.a)
		c.Status.Carry = tc.carryIn

		bus.Write(0x8000, 0x69) // ADC #imm
		bus.Write(0x8001, tc.m)
		runInstruction(c)

		if c.A.Value() != tc.wantA {
			t.Fatalf("A=%#02x, wanted %#02x (case %+v)", c.A.Value(), tc.wantA, tc)
		}
		if c.Status.Carry != tc.wantCarry {
			t.Fatalf("carry=%v, wanted %v (case %+v)", c.Status.Carry, tc.wantCarry, tc)
		}
		if c.Status.Overflow != tc.wantOv {
			t.Fatalf("overflow=%v, wanted %v (case %+v)", c.Status.Overflow, tc.wantOv, tc)
		}
	}
}

func TestSBCBorrow(t *testing.T) {
	c, bus := newTestCPU()
	c.A.Load(0x00)
	c.Status.Carry = true // no borrow going in

	bus.Write(0x8000, 0xE9) // SBC #imm
	bus.Write(0x8001, 0x01)
	runInstruction(c)

	if c.A.Value() != 0xff {
		t.Fatalf("A=%#02x, wanted 0xff", c.A.Value())
	}
	if c.Status.Carry {
		t.Fatalf("carry should be clear (borrow occurred)")
	}
}

func TestDecimalModeDoesNotAffectArithmetic(t *testing.T) {
	c, bus := newTestCPU()
	c.Status.DecimalMode = true
	c.A.Load(0x09)

	bus.Write(0x8000, 0x69) // ADC #imm
	bus.Write(0x8001, 0x01)
	runInstruction(c)

	if c.A.Value() != 0x0a {
		t.Fatalf("A=%#02x, wanted 0x0a (binary add regardless of D flag)", c.A.Value())
	}
}

func TestASLAccumulatorVsMemory(t *testing.T) {
	c, bus := newTestCPU()
	c.A.Load(0x81)
	bus.Write(0x8000, 0x0A) // ASL A
	runInstruction(c)
	if c.A.Value() != 0x02 || !c.Status.Carry {
		t.Fatalf("A=%#02x carry=%v, wanted 0x02 true", c.A.Value(), c.Status.Carry)
	}

	bus.Write(0x0010, 0x81)
	bus.Write(0x8001, 0x06) // ASL zp
	bus.Write(0x8002, 0x10)
	runInstruction(c)
	if bus.Read(0x0010) != 0x02 || !c.Status.Carry {
		t.Fatalf("mem[0x10]=%#02x carry=%v, wanted 0x02 true", bus.Read(0x0010), c.Status.Carry)
	}
	if c.A.Value() != 0x02 {
		t.Fatalf("accumulator should be untouched by memory ASL")
	}
}

func TestZeroPageIndexedWraps(t *testing.T) {
	c, bus := newTestCPU()
	c.X.Load(0x01)
	bus.Write(0x0000, 0x42)

	bus.Write(0x8000, 0xB5) // LDA zp,X
	bus.Write(0x8001, 0xff)
	res := runInstruction(c)

	if c.A.Value() != 0x42 {
		t.Fatalf("A=%#02x, wanted 0x42 (0xff+1 should wrap to 0x00 within the zero page)", c.A.Value())
	}
	if res.CPUBug != execution.ZeroPageIndexBug {
		t.Fatalf("expected ZeroPageIndexBug to be flagged, got %q", res.CPUBug)
	}
}

func TestInstructionDataRecordsOperandBytesOnly(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x8000, 0xAD) // LDA abs
	bus.Write(0x8001, 0x34)
	bus.Write(0x8002, 0x12)
	bus.Write(0x1234, 0x99)

	res := runInstruction(c)

	if res.InstructionData != 0x3412 {
		t.Fatalf("InstructionData=%#04x, wanted 0x3412 (operand bytes only, opcode excluded)", res.InstructionData)
	}
}

func TestIndirectJMPPageBoundaryBug(t *testing.T) {
	c, bus := newTestCPU()

	bus.Write(0x02ff, 0x00)
	bus.Write(0x0200, 0x80) // the bug: high byte is read from 0x0200, not 0x0300
	bus.Write(0x0300, 0xff)

	bus.Write(0x8000, 0x6C) // JMP (ind)
	bus.Write(0x8001, 0xff)
	bus.Write(0x8002, 0x02)
	res := runInstruction(c)

	if c.PC.Address() != 0x8000 {
		t.Fatalf("PC=%#04x, wanted 0x8000 (hi byte should come from 0x0200, not 0x0300)", c.PC.Address())
	}
	if res.CPUBug != execution.JmpIndirectAddressingBug {
		t.Fatalf("expected JmpIndirectAddressingBug to be flagged, got %q", res.CPUBug)
	}
}

func TestBranchCyclePenalties(t *testing.T) {
	c, bus := newTestCPU()

	// not taken: 2 cycles
	bus.Write(0x8000, 0xD0) // BNE
	bus.Write(0x8001, 0x10)
	c.Status.Zero = true
	res := runInstruction(c)
	if res.Cycles != 2 {
		t.Fatalf("not-taken branch: cycles=%d, wanted 2", res.Cycles)
	}

	// taken, same page: 3 cycles
	bus.Write(0x8002, 0xD0)
	bus.Write(0x8003, 0x10)
	c.Status.Zero = false
	res = runInstruction(c)
	if res.Cycles != 3 {
		t.Fatalf("taken branch same page: cycles=%d, wanted 3", res.Cycles)
	}

	// taken, crossing a page boundary: 4 cycles
	c.PC.Load(0x80f0)
	bus.Write(0x80f0, 0xD0)
	bus.Write(0x80f1, 0x20) // 0x80f2+0x20 = 0x8112, crosses into the next page
	c.Status.Zero = false
	res = runInstruction(c)
	if res.Cycles != 4 {
		t.Fatalf("taken branch crossing page: cycles=%d, wanted 4", res.Cycles)
	}
}

func TestJSRandRTSRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	startSP := c.SP.Value()

	bus.Write(0x8000, 0x20) // JSR
	bus.Write(0x8001, 0x00)
	bus.Write(0x8002, 0x90)
	runInstruction(c)
	if c.PC.Address() != 0x9000 {
		t.Fatalf("PC=%#04x, wanted 0x9000", c.PC.Address())
	}

	bus.Write(0x9000, 0x60) // RTS
	runInstruction(c)
	if c.PC.Address() != 0x8003 {
		t.Fatalf("PC=%#04x, wanted 0x8003 (return address after the 3 byte JSR)", c.PC.Address())
	}
	if c.SP.Value() != startSP {
		t.Fatalf("SP=%#02x, wanted %#02x (stack balanced)", c.SP.Value(), startSP)
	}
}

func TestStackDisciplineLIFO(t *testing.T) {
	c, bus := newTestCPU()
	startSP := c.SP.Value()

	values := []uint8{0x11, 0x22, 0x33}
	addr := uint16(0x8000)
	for _, v := range values {
		c.A.Load(v)
		bus.Write(addr, 0x48) // PHA
		runInstruction(c)
		addr++
	}

	for i := len(values) - 1; i >= 0; i-- {
		bus.Write(addr, 0x68) // PLA
		runInstruction(c)
		addr++
		if c.A.Value() != values[i] {
			t.Fatalf("pull %d: A=%#02x, wanted %#02x (PLA must return pushes in reverse order)", len(values)-i, c.A.Value(), values[i])
		}
	}

	if c.SP.Value() != startSP {
		t.Fatalf("SP=%#02x, wanted %#02x (stack pointer should be back where it started)", c.SP.Value(), startSP)
	}
}

func TestUnnamedFlagsPreserved(t *testing.T) {
	setup := func() (*cpu.CPU, *testBus) {
		c, bus := newTestCPU()
		c.Status.FromValue(0xA5) // an arbitrary, fully mixed flag pattern
		return c, bus
	}

	t.Run("STA", func(t *testing.T) {
		c, bus := setup()
		before := c.Status.Value()
		bus.Write(0x8000, 0x85) // STA zp
		bus.Write(0x8001, 0x10)
		runInstruction(c)
		if c.Status.Value() != before {
			t.Fatalf("STA changed flags: %#02x -> %#02x", before, c.Status.Value())
		}
	})

	t.Run("STX", func(t *testing.T) {
		c, bus := setup()
		before := c.Status.Value()
		bus.Write(0x8000, 0x86) // STX zp
		bus.Write(0x8001, 0x10)
		runInstruction(c)
		if c.Status.Value() != before {
			t.Fatalf("STX changed flags: %#02x -> %#02x", before, c.Status.Value())
		}
	})

	t.Run("STY", func(t *testing.T) {
		c, bus := setup()
		before := c.Status.Value()
		bus.Write(0x8000, 0x84) // STY zp
		bus.Write(0x8001, 0x10)
		runInstruction(c)
		if c.Status.Value() != before {
			t.Fatalf("STY changed flags: %#02x -> %#02x", before, c.Status.Value())
		}
	})

	t.Run("TXS", func(t *testing.T) {
		c, bus := setup()
		before := c.Status.Value()
		bus.Write(0x8000, 0x9A) // TXS
		runInstruction(c)
		if c.Status.Value() != before {
			t.Fatalf("TXS changed flags: %#02x -> %#02x", before, c.Status.Value())
		}
	})

	t.Run("JMP", func(t *testing.T) {
		c, bus := setup()
		before := c.Status.Value()
		bus.Write(0x8000, 0x4C) // JMP abs
		bus.Write(0x8001, 0x00)
		bus.Write(0x8002, 0x90)
		runInstruction(c)
		if c.Status.Value() != before {
			t.Fatalf("JMP changed flags: %#02x -> %#02x", before, c.Status.Value())
		}
	})

	t.Run("untaken branch", func(t *testing.T) {
		c, bus := setup()
		c.Status.Carry = true // BCC only branches when carry is clear
		before := c.Status.Value()
		bus.Write(0x8000, 0x90) // BCC
		bus.Write(0x8001, 0x10)
		runInstruction(c)
		if c.Status.Value() != before {
			t.Fatalf("untaken BCC changed flags: %#02x -> %#02x", before, c.Status.Value())
		}
		if c.PC.Address() != 0x8002 {
			t.Fatalf("PC=%#04x, wanted 0x8002 (branch should not have been taken)", c.PC.Address())
		}
	})
}

func TestBRKAndRTIPreserveFlagsAcrossTheBoundary(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(cpubus.IRQVector, 0x00)
	bus.Write(cpubus.IRQVector+1, 0x90)

	c.Status.Carry = true
	c.Status.Overflow = true
	startSP := c.SP.Value()

	bus.Write(0x8000, 0x00) // BRK
	runInstruction(c)

	if c.PC.Address() != 0x9000 {
		t.Fatalf("PC=%#04x, wanted 0x9000", c.PC.Address())
	}
	if !c.Status.InterruptDisable {
		t.Fatalf("I flag should be set after BRK")
	}

	bus.Write(0x9000, 0x40) // RTI
	runInstruction(c)

	if c.PC.Address() != 0x8002 {
		t.Fatalf("PC=%#04x, wanted 0x8002 (after the 2 byte BRK)", c.PC.Address())
	}
	if !c.Status.Carry || !c.Status.Overflow {
		t.Fatalf("C and V should be restored by RTI: C=%v V=%v", c.Status.Carry, c.Status.Overflow)
	}
	if c.SP.Value() != startSP {
		t.Fatalf("SP=%#02x, wanted %#02x (stack balanced across BRK/RTI)", c.SP.Value(), startSP)
	}
}

func TestIRQRespectsInterruptDisable(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(cpubus.IRQVector, 0x00)
	bus.Write(cpubus.IRQVector+1, 0x90)

	c.Status.InterruptDisable = true
	bus.Write(0x8000, 0xEA) // NOP
	bus.Write(0x8001, 0xEA) // NOP
	c.IRQ()
	runInstruction(c)

	if c.PC.Address() == 0x9000 {
		t.Fatalf("IRQ should have been masked by the I flag")
	}

	// IRQ is an edge-triggered request, not a held line: a request that
	// arrives while I is set is dropped at that boundary, not deferred.
	// Clearing I afterwards, without calling IRQ again, must not
	// resurrect it.
	c.Status.InterruptDisable = false
	runInstruction(c)
	if c.PC.Address() == 0x9000 {
		t.Fatalf("a masked IRQ request should be dropped, not deferred until I is cleared")
	}

	c.IRQ()
	runInstruction(c)
	if c.PC.Address() != 0x9000 {
		t.Fatalf("PC=%#04x, wanted 0x9000 once IRQ is called again with I clear", c.PC.Address())
	}
}

func TestIRQIsNotReservicedWithoutAnotherRequest(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(cpubus.IRQVector, 0x00)
	bus.Write(cpubus.IRQVector+1, 0x90)

	bus.Write(0x8000, 0xEA) // NOP
	// Reset leaves I set; clear it so the request is serviced.
	c.Status.InterruptDisable = false
	c.IRQ()
	runInstruction(c)
	if c.PC.Address() != 0x9000 {
		t.Fatalf("PC=%#04x, wanted 0x9000 (IRQ should have been serviced)", c.PC.Address())
	}

	// the IRQ handler clears I with CLI; without another call to IRQ the
	// single latched request must not be serviced a second time at the
	// boundary that follows.
	bus.Write(0x9000, 0x58) // CLI
	bus.Write(0x9001, 0xEA) // NOP
	runInstruction(c)
	runInstruction(c)
	if c.PC.Address() == 0x9000 {
		t.Fatalf("a single IRQ request should not be serviced twice")
	}
}

func TestNMIIgnoresInterruptDisable(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(cpubus.NMIVector, 0x00)
	bus.Write(cpubus.NMIVector+1, 0x90)

	c.Status.InterruptDisable = true
	bus.Write(0x8000, 0xEA) // NOP
	c.NMI()
	runInstruction(c)

	if c.PC.Address() != 0x9000 {
		t.Fatalf("PC=%#04x, wanted 0x9000 (NMI should not be masked by I)", c.PC.Address())
	}
}

func TestExecutionResultIsValid(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write(0x8000, 0xA9)
	bus.Write(0x8001, 0x42)
	runInstruction(c)

	if err := c.LastResult.IsValid(); err != nil {
		t.Fatalf("IsValid: %v", err)
	}
}
