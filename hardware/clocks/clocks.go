// Package clocks defines the constant values that describe the speed of
// the NES master clock and the fixed ratio it's divided down to drive the
// CPU and the PPU.
package clocks

// NTSC and PAL are the master clock rates, in MHz, the two regional NES
// variants run from. The CPU clock for each is MasterClock/12; the PPU
// clock is MasterClock/4, giving a fixed CPU:PPU tick ratio of 1:3 on
// both variants.
const (
	NTSC = 21.477272
	PAL  = 26.601712
)

// CPUPPURatio is the number of PPU ticks driven per CPU cycle.
const CPUPPURatio = 3

const (
	NTSCCPU = NTSC / 12
	PALCPU  = PAL / 12
	NTSCPPU = NTSC / 4
	PALPPU  = PAL / 4
)
