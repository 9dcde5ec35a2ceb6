package instructions

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump renders the decode table as a Graphviz .dot graph, useful for
// visually auditing opcode coverage while working on the table by hand.
// It is not called anywhere in the normal CPU path.
func Dump(w io.Writer) {
	table := All()
	memviz.Map(w, &table)
}
