// Command stepper is a small demonstration harness for the CPU core: it
// loads a flat binary into RAM at a chosen address and either runs it to
// completion or single-steps it interactively one instruction at a time,
// printing register and flag state after every step.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/jacobpaton/NESEmu/harness"
	"github.com/jacobpaton/NESEmu/harness/livestats"
	"github.com/jacobpaton/NESEmu/harness/rawterm"
	"github.com/jacobpaton/NESEmu/hardware/cpu/instructions"
	"github.com/jacobpaton/NESEmu/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		origin      uint
		interactive bool
		stats       bool
		dumpTable   bool
	)

	flag.UintVar(&origin, "origin", 0x8000, "address to load the program and set the reset vector to")
	flag.BoolVar(&interactive, "step", false, "single-step interactively instead of running to completion")
	flag.BoolVar(&stats, "stats", false, "launch the live stats dashboard (requires the statsview build tag)")
	flag.BoolVar(&dumpTable, "dump-table", false, "write the opcode decode table as a Graphviz .dot graph to stdout and exit")
	flag.Parse()

	if dumpTable {
		instructions.Dump(os.Stdout)
		return nil
	}

	path := flag.Arg(0)
	if path == "" {
		return fmt.Errorf("stepper: usage: stepper [flags] <program.bin>")
	}

	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("stepper: reading %s: %w", path, err)
	}

	m := harness.NewMachine(nil)
	m.RAM.Load(uint16(origin), program)
	m.RAM.Write(0xFFFC, uint8(origin))
	m.RAM.Write(0xFFFD, uint8(origin>>8))
	m.CPU.Reset()
	for i := 0; i < 8; i++ {
		m.CPU.Step()
	}

	if stats && livestats.Available() {
		livestats.Launch(os.Stdout)
	}

	logger.SetEcho(os.Stdout)

	if interactive {
		return runInteractive(m)
	}
	return runToCompletion(m)
}

func runToCompletion(m *harness.Machine) error {
	m.Run(func(m *harness.Machine) bool {
		livestats.CountInstruction()
		livestats.CountCycles(m.CPU.LastResult.Cycles)
		return m.CPU.LastResult.Defn.Operator.String() != "BRK"
	})
	fmt.Println(m.CPU)
	return nil
}

func runInteractive(m *harness.Machine) error {
	term, err := rawterm.Open()
	if err != nil {
		return err
	}
	defer term.Close()

	if err := term.CBreakMode(); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		term.CanonicalMode()
		os.Exit(0)
	}()

	fmt.Println("press any key to step, ctrl-c to quit")
	for {
		if _, err := term.ReadKey(); err != nil {
			return err
		}

		m.StepInstruction()
		livestats.CountInstruction()
		livestats.CountCycles(m.CPU.LastResult.Cycles)

		fmt.Println(m.CPU)
	}
}
