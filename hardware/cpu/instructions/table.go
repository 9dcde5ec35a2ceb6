package instructions

// decodeTable is the 256-entry opcode decode table. Every legal opcode is
// given an explicit entry below, indexed by its opcode byte; an init()
// pass then fills every remaining (zero-value) cell with a correctly
// positioned illegal-opcode NOP, so the table always has exactly 256
// entries and every entry's OpCode field matches its index.
var decodeTable [256]Definition

func def(op uint8, mnemonic string, operator Operator, mode AddressingMode, bytes, cycles int, pageSensitive bool, effect EffectCategory) Definition {
	return Definition{
		OpCode:         op,
		Mnemonic:       mnemonic,
		Operator:       operator,
		AddressingMode: mode,
		Bytes:          bytes,
		Cycles:         cycles,
		PageSensitive:  pageSensitive,
		Effect:         effect,
	}
}

func init() {
	for _, d := range []Definition{
		def(0x00, "BRK", BRK, IMP, 2, 7, false, Interrupt),
		def(0x01, "ORA", ORA, IZX, 2, 6, false, Read),
		def(0x05, "ORA", ORA, ZP0, 2, 3, false, Read),
		def(0x06, "ASL", ASL, ZP0, 2, 5, false, RMW),
		def(0x08, "PHP", PHP, IMP, 1, 3, false, Other),
		def(0x09, "ORA", ORA, IMM, 2, 2, false, Read),
		def(0x0A, "ASL", ASL, IMP, 1, 2, false, Other),
		def(0x0D, "ORA", ORA, ABS, 3, 4, false, Read),
		def(0x0E, "ASL", ASL, ABS, 3, 6, false, RMW),

		def(0x10, "BPL", BPL, REL, 2, 2, true, Flow),
		def(0x11, "ORA", ORA, IZY, 2, 5, true, Read),
		def(0x15, "ORA", ORA, ZPX, 2, 4, false, Read),
		def(0x16, "ASL", ASL, ZPX, 2, 6, false, RMW),
		def(0x18, "CLC", CLC, IMP, 1, 2, false, Other),
		def(0x19, "ORA", ORA, ABY, 3, 4, true, Read),
		def(0x1D, "ORA", ORA, ABX, 3, 4, true, Read),
		def(0x1E, "ASL", ASL, ABX, 3, 7, false, RMW),

		def(0x20, "JSR", JSR, ABS, 3, 6, false, Subroutine),
		def(0x21, "AND", AND, IZX, 2, 6, false, Read),
		def(0x24, "BIT", BIT, ZP0, 2, 3, false, Read),
		def(0x25, "AND", AND, ZP0, 2, 3, false, Read),
		def(0x26, "ROL", ROL, ZP0, 2, 5, false, RMW),
		def(0x28, "PLP", PLP, IMP, 1, 4, false, Other),
		def(0x29, "AND", AND, IMM, 2, 2, false, Read),
		def(0x2A, "ROL", ROL, IMP, 1, 2, false, Other),
		def(0x2C, "BIT", BIT, ABS, 3, 4, false, Read),
		def(0x2D, "AND", AND, ABS, 3, 4, false, Read),
		def(0x2E, "ROL", ROL, ABS, 3, 6, false, RMW),

		def(0x30, "BMI", BMI, REL, 2, 2, true, Flow),
		def(0x31, "AND", AND, IZY, 2, 5, true, Read),
		def(0x35, "AND", AND, ZPX, 2, 4, false, Read),
		def(0x36, "ROL", ROL, ZPX, 2, 6, false, RMW),
		def(0x38, "SEC", SEC, IMP, 1, 2, false, Other),
		def(0x39, "AND", AND, ABY, 3, 4, true, Read),
		def(0x3D, "AND", AND, ABX, 3, 4, true, Read),
		def(0x3E, "ROL", ROL, ABX, 3, 7, false, RMW),

		def(0x40, "RTI", RTI, IMP, 1, 6, false, Interrupt),
		def(0x41, "EOR", EOR, IZX, 2, 6, false, Read),
		def(0x45, "EOR", EOR, ZP0, 2, 3, false, Read),
		def(0x46, "LSR", LSR, ZP0, 2, 5, false, RMW),
		def(0x48, "PHA", PHA, IMP, 1, 3, false, Other),
		def(0x49, "EOR", EOR, IMM, 2, 2, false, Read),
		def(0x4A, "LSR", LSR, IMP, 1, 2, false, Other),
		def(0x4C, "JMP", JMP, ABS, 3, 3, false, Flow),
		def(0x4D, "EOR", EOR, ABS, 3, 4, false, Read),
		def(0x4E, "LSR", LSR, ABS, 3, 6, false, RMW),

		def(0x50, "BVC", BVC, REL, 2, 2, true, Flow),
		def(0x51, "EOR", EOR, IZY, 2, 5, true, Read),
		def(0x55, "EOR", EOR, ZPX, 2, 4, false, Read),
		def(0x56, "LSR", LSR, ZPX, 2, 6, false, RMW),
		def(0x58, "CLI", CLI, IMP, 1, 2, false, Other),
		def(0x59, "EOR", EOR, ABY, 3, 4, true, Read),
		def(0x5D, "EOR", EOR, ABX, 3, 4, true, Read),
		def(0x5E, "LSR", LSR, ABX, 3, 7, false, RMW),

		def(0x60, "RTS", RTS, IMP, 1, 6, false, Subroutine),
		def(0x61, "ADC", ADC, IZX, 2, 6, false, Read),
		def(0x65, "ADC", ADC, ZP0, 2, 3, false, Read),
		def(0x66, "ROR", ROR, ZP0, 2, 5, false, RMW),
		def(0x68, "PLA", PLA, IMP, 1, 4, false, Other),
		def(0x69, "ADC", ADC, IMM, 2, 2, false, Read),
		def(0x6A, "ROR", ROR, IMP, 1, 2, false, Other),
		def(0x6C, "JMP", JMP, IND, 3, 5, false, Flow),
		def(0x6D, "ADC", ADC, ABS, 3, 4, false, Read),
		def(0x6E, "ROR", ROR, ABS, 3, 6, false, RMW),

		def(0x70, "BVS", BVS, REL, 2, 2, true, Flow),
		def(0x71, "ADC", ADC, IZY, 2, 5, true, Read),
		def(0x75, "ADC", ADC, ZPX, 2, 4, false, Read),
		def(0x76, "ROR", ROR, ZPX, 2, 6, false, RMW),
		def(0x78, "SEI", SEI, IMP, 1, 2, false, Other),
		def(0x79, "ADC", ADC, ABY, 3, 4, true, Read),
		def(0x7D, "ADC", ADC, ABX, 3, 4, true, Read),
		def(0x7E, "ROR", ROR, ABX, 3, 7, false, RMW),

		def(0x81, "STA", STA, IZX, 2, 6, false, Write),
		def(0x84, "STY", STY, ZP0, 2, 3, false, Write),
		def(0x85, "STA", STA, ZP0, 2, 3, false, Write),
		def(0x86, "STX", STX, ZP0, 2, 3, false, Write),
		def(0x88, "DEY", DEY, IMP, 1, 2, false, Other),
		def(0x8A, "TXA", TXA, IMP, 1, 2, false, Other),
		def(0x8C, "STY", STY, ABS, 3, 4, false, Write),
		def(0x8D, "STA", STA, ABS, 3, 4, false, Write),
		def(0x8E, "STX", STX, ABS, 3, 4, false, Write),

		def(0x90, "BCC", BCC, REL, 2, 2, true, Flow),
		def(0x91, "STA", STA, IZY, 2, 6, false, Write),
		def(0x94, "STY", STY, ZPX, 2, 4, false, Write),
		def(0x95, "STA", STA, ZPX, 2, 4, false, Write),
		def(0x96, "STX", STX, ZPY, 2, 4, false, Write),
		def(0x98, "TYA", TYA, IMP, 1, 2, false, Other),
		def(0x99, "STA", STA, ABY, 3, 5, false, Write),
		def(0x9A, "TXS", TXS, IMP, 1, 2, false, Other),
		def(0x9D, "STA", STA, ABX, 3, 5, false, Write),

		def(0xA0, "LDY", LDY, IMM, 2, 2, false, Read),
		def(0xA1, "LDA", LDA, IZX, 2, 6, false, Read),
		def(0xA2, "LDX", LDX, IMM, 2, 2, false, Read),
		def(0xA4, "LDY", LDY, ZP0, 2, 3, false, Read),
		def(0xA5, "LDA", LDA, ZP0, 2, 3, false, Read),
		def(0xA6, "LDX", LDX, ZP0, 2, 3, false, Read),
		def(0xA8, "TAY", TAY, IMP, 1, 2, false, Other),
		def(0xA9, "LDA", LDA, IMM, 2, 2, false, Read),
		def(0xAA, "TAX", TAX, IMP, 1, 2, false, Other),
		def(0xAC, "LDY", LDY, ABS, 3, 4, false, Read),
		def(0xAD, "LDA", LDA, ABS, 3, 4, false, Read),
		def(0xAE, "LDX", LDX, ABS, 3, 4, false, Read),

		def(0xB0, "BCS", BCS, REL, 2, 2, true, Flow),
		def(0xB1, "LDA", LDA, IZY, 2, 5, true, Read),
		def(0xB4, "LDY", LDY, ZPX, 2, 4, false, Read),
		def(0xB5, "LDA", LDA, ZPX, 2, 4, false, Read),
		def(0xB6, "LDX", LDX, ZPY, 2, 4, false, Read),
		def(0xB8, "CLV", CLV, IMP, 1, 2, false, Other),
		def(0xB9, "LDA", LDA, ABY, 3, 4, true, Read),
		def(0xBA, "TSX", TSX, IMP, 1, 2, false, Other),
		def(0xBC, "LDY", LDY, ABX, 3, 4, true, Read),
		def(0xBD, "LDA", LDA, ABX, 3, 4, true, Read),
		def(0xBE, "LDX", LDX, ABY, 3, 4, true, Read),

		def(0xC0, "CPY", CPY, IMM, 2, 2, false, Read),
		def(0xC1, "CMP", CMP, IZX, 2, 6, false, Read),
		def(0xC4, "CPY", CPY, ZP0, 2, 3, false, Read),
		def(0xC5, "CMP", CMP, ZP0, 2, 3, false, Read),
		def(0xC6, "DEC", DEC, ZP0, 2, 5, false, RMW),
		def(0xC8, "INY", INY, IMP, 1, 2, false, Other),
		def(0xC9, "CMP", CMP, IMM, 2, 2, false, Read),
		def(0xCA, "DEX", DEX, IMP, 1, 2, false, Other),
		def(0xCC, "CPY", CPY, ABS, 3, 4, false, Read),
		def(0xCD, "CMP", CMP, ABS, 3, 4, false, Read),
		def(0xCE, "DEC", DEC, ABS, 3, 6, false, RMW),

		def(0xD0, "BNE", BNE, REL, 2, 2, true, Flow),
		def(0xD1, "CMP", CMP, IZY, 2, 5, true, Read),
		def(0xD5, "CMP", CMP, ZPX, 2, 4, false, Read),
		def(0xD6, "DEC", DEC, ZPX, 2, 6, false, RMW),
		def(0xD8, "CLD", CLD, IMP, 1, 2, false, Other),
		def(0xD9, "CMP", CMP, ABY, 3, 4, true, Read),
		def(0xDD, "CMP", CMP, ABX, 3, 4, true, Read),
		def(0xDE, "DEC", DEC, ABX, 3, 7, false, RMW),

		def(0xE0, "CPX", CPX, IMM, 2, 2, false, Read),
		def(0xE1, "SBC", SBC, IZX, 2, 6, false, Read),
		def(0xE4, "CPX", CPX, ZP0, 2, 3, false, Read),
		def(0xE5, "SBC", SBC, ZP0, 2, 3, false, Read),
		def(0xE6, "INC", INC, ZP0, 2, 5, false, RMW),
		def(0xE8, "INX", INX, IMP, 1, 2, false, Other),
		def(0xE9, "SBC", SBC, IMM, 2, 2, false, Read),
		def(0xEA, "NOP", NOP, IMP, 1, 2, false, Other),
		def(0xEC, "CPX", CPX, ABS, 3, 4, false, Read),
		def(0xED, "SBC", SBC, ABS, 3, 4, false, Read),
		def(0xEE, "INC", INC, ABS, 3, 6, false, RMW),

		def(0xF0, "BEQ", BEQ, REL, 2, 2, true, Flow),
		def(0xF1, "SBC", SBC, IZY, 2, 5, true, Read),
		def(0xF5, "SBC", SBC, ZPX, 2, 4, false, Read),
		def(0xF6, "INC", INC, ZPX, 2, 6, false, RMW),
		def(0xF8, "SED", SED, IMP, 1, 2, false, Other),
		def(0xF9, "SBC", SBC, ABY, 3, 4, true, Read),
		def(0xFD, "SBC", SBC, ABX, 3, 4, true, Read),
		def(0xFE, "INC", INC, ABX, 3, 7, false, RMW),
	} {
		decodeTable[d.OpCode] = d
	}

	for i := range decodeTable {
		if decodeTable[i].Mnemonic == "" {
			decodeTable[i] = def(uint8(i), "NOP", NOP, IMP, 1, 2, false, Other)
			decodeTable[i].Illegal = true
		}
	}
}

// Lookup returns the decode table entry for opcode.
func Lookup(opcode uint8) Definition {
	return decodeTable[opcode]
}

// All returns every entry of the decode table, ordered by opcode.
func All() [256]Definition {
	return decodeTable
}
