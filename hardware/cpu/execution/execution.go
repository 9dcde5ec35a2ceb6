// Package execution records the outcome of a single CPU.Step call: the
// decoded instruction, the bytes and cycles it consumed, and any
// documented CPU quirk it triggered. It exists purely for test
// observability; nothing in hardware/cpu requires a caller to read it.
package execution

import (
	"github.com/jacobpaton/NESEmu/hardware/cpu/instructions"
	"github.com/jacobpaton/NESEmu/internal/curated"
)

// Bug names a documented 6502 hardware quirk that a Step may trigger.
// These are not bugs in this emulator: they are faithfully reproduced
// behaviours of the real chip.
type Bug string

const (
	NoBug Bug = ""

	// JmpIndirectAddressingBug is triggered when JMP (ind) is given an
	// indirect address whose low byte is 0xFF: the real 6502 fetches the
	// high byte of the target from the start of the same page rather than
	// the next page.
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// ZeroPageIndexBug is triggered by zero-page indexed addressing
	// (zp,X and zp,Y) when the index wraps the effective address back into
	// the zero page instead of crossing into page one.
	ZeroPageIndexBug Bug = "zero page index bug"
)

// Result describes the outcome of the most recently executed instruction.
// A CPU keeps exactly one Result, overwriting it at the start of every
// instruction or interrupt sequence; Steps that only count down remaining
// cycles leave it untouched.
type Result struct {
	// Address is the address of the opcode byte the instruction was
	// decoded from.
	Address uint16

	// Defn is the decode table entry for the executed opcode. Nil until
	// the opcode byte has been read.
	Defn *instructions.Definition

	// InstructionData holds the operand bytes read during decode, in the
	// order the addressing mode resolver expects them.
	InstructionData uint16

	// ByteCount is the number of bytes read during decode, including the
	// opcode byte itself.
	ByteCount int

	// Cycles is the number of clock cycles the instruction consumed,
	// including any page-fault or branch-taken penalty.
	Cycles int

	// PageFault reports whether a page boundary was crossed while
	// resolving the effective address, for addressing modes where that
	// costs an extra cycle.
	PageFault bool

	// BranchSuccess reports whether a branch instruction's condition was
	// true and the branch was taken.
	BranchSuccess bool

	// CPUBug names a documented hardware quirk triggered while resolving
	// the effective address, if any.
	CPUBug Bug

	// Final reports whether the instruction completed decode and
	// execution. It is false only while a Step is in progress.
	Final bool
}

// Reset clears the result ready for the next Step.
func (r *Result) Reset() {
	*r = Result{}
}

// IsValid checks that the result is internally consistent with its
// decode table entry. It exists for test suites to assert the cycle-count
// and byte-count invariants of the decode table; it is never called by
// CPU.Step itself.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("execution: no definition recorded")
	}

	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf("execution: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("execution: wrong byte count for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.ByteCount, r.Defn.Bytes)
	}

	if r.CPUBug != NoBug {
		return nil
	}

	switch {
	case r.Defn.IsBranch():
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 && r.Cycles != r.Defn.Cycles+2 {
			return curated.Errorf("execution: wrong cycle count for opcode %#02x [%s] (%d instead of %d, %d or %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles, r.Defn.Cycles+1, r.Defn.Cycles+2)
		}
	case r.Defn.PageSensitive:
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 {
			return curated.Errorf("execution: wrong cycle count for opcode %#02x [%s] (%d instead of %d or %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles, r.Defn.Cycles+1)
		}
	default:
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("execution: wrong cycle count for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles)
		}
	}

	return nil
}
