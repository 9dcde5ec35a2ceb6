package instructions_test

import (
	"testing"

	"github.com/jacobpaton/NESEmu/hardware/cpu/instructions"
)

func TestTableHas256Entries(t *testing.T) {
	table := instructions.All()
	if len(table) != 256 {
		t.Fatalf("got %d entries, wanted 256", len(table))
	}
	for i, d := range table {
		if int(d.OpCode) != i {
			t.Fatalf("entry %d has OpCode %#02x", i, d.OpCode)
		}
	}
}

func TestIllegalOpcodesDecodeAsNOP(t *testing.T) {
	// 0x02 is not a documented opcode.
	d := instructions.Lookup(0x02)
	if !d.Illegal {
		t.Fatalf("0x02 should be marked illegal")
	}
	if d.Operator != instructions.NOP {
		t.Fatalf("illegal opcode should decode as NOP, got %s", d.Operator)
	}
	if d.Bytes != 1 || d.Cycles != 2 {
		t.Fatalf("illegal opcode should be a 1 byte, 2 cycle NOP, got bytes=%d cycles=%d", d.Bytes, d.Cycles)
	}
}

func TestKnownLegalOpcodes(t *testing.T) {
	cases := []struct {
		opcode uint8
		op     instructions.Operator
		mode   instructions.AddressingMode
		bytes  int
		cycles int
	}{
		{0x00, instructions.BRK, instructions.IMP, 2, 7},
		{0xA9, instructions.LDA, instructions.IMM, 2, 2},
		{0x85, instructions.STA, instructions.ZP0, 2, 3},
		{0x6C, instructions.JMP, instructions.IND, 3, 5},
		{0x20, instructions.JSR, instructions.ABS, 3, 6},
		{0x60, instructions.RTS, instructions.IMP, 1, 6},
		{0x40, instructions.RTI, instructions.IMP, 1, 6},
		{0xEA, instructions.NOP, instructions.IMP, 1, 2},
	}

	for _, c := range cases {
		d := instructions.Lookup(c.opcode)
		if d.Illegal {
			t.Fatalf("opcode %#02x should be legal", c.opcode)
		}
		if d.Operator != c.op || d.AddressingMode != c.mode || d.Bytes != c.bytes || d.Cycles != c.cycles {
			t.Fatalf("opcode %#02x: got %+v", c.opcode, d)
		}
	}
}

func TestBranchesAreFlowAndPageSensitive(t *testing.T) {
	branches := []uint8{0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0}
	for _, op := range branches {
		d := instructions.Lookup(op)
		if !d.IsBranch() {
			t.Fatalf("opcode %#02x should be a branch", op)
		}
		if !d.PageSensitive {
			t.Fatalf("opcode %#02x should be page sensitive", op)
		}
	}
}
