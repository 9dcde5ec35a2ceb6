// This file is part of NESEmu.

//go:build !statsview
// +build !statsview

package livestats

import "io"

// CountInstruction is a no-op in builds without the statsview tag.
func CountInstruction() {}

// CountCycles is a no-op in builds without the statsview tag.
func CountCycles(n int) {}

// Launch is a no-op in builds without the statsview tag.
func Launch(output io.Writer) {}

// Available returns false in builds without the statsview tag.
func Available() bool {
	return false
}
