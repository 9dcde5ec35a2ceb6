// Package cpubus defines the bus interface the CPU reads and writes
// through. All memory areas visible to the CPU (RAM, mapped cartridge
// space, memory-mapped PPU/APU registers) implement this interface so the
// CPU need not care which part of the address space it is touching.
//
// Read and Write never return an error: the bus is total over the full
// 16-bit address space, and it is the caller's responsibility (the
// harness wiring RAM/ROM/mapped registers together) to make every
// address resolve to something.
package cpubus

// Memory is the bus a CPU is bound to.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Vector addresses the CPU loads PC from when servicing reset and the two
// interrupt lines. All three are little-endian pointers stored in the top
// of the address space.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)
