// This file is part of NESEmu.

//go:build statsview
// +build statsview

// Package livestats is an optional package that is built only when the
// statsview build constraint is present. It provides an HTTP server
// running locally offering runtime statistics, underlying functionality
// provided by "github.com/go-echarts/statsview".
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12601/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12601/debug/pprof/
package livestats

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the host:port the stats server listens on, a non-default
// port chosen so a second instance of this kind of dashboard can run
// alongside one already using the conventional port.
const Address = "localhost:12601"
const url = "/debug/statsview"

var instructionCount uint64
var cycleCount uint64

// CountInstruction records that a single CPU instruction or interrupt
// sequence has completed, adding one to a running total. The dashboard
// shows only statsview's built-in runtime charts; this total is not
// charted.
func CountInstruction() {
	atomic.AddUint64(&instructionCount, 1)
}

// CountCycles records that n CPU clock cycles have elapsed, adding n to a
// running total. Like the instruction total, it is not charted.
func CountCycles(n int) {
	atomic.AddUint64(&cycleCount, uint64(n))
}

// Launch starts a new goroutine running the stats server.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, url)))
}

// Available returns true if a stats server is available to launch.
func Available() bool {
	return true
}
