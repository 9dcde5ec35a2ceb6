// Package logger implements a single central logger: a ring buffer of
// timestamped tag/detail entries that collapses immediately-repeated
// entries into a single counted line. The CPU core uses it to report
// harness-visible conditions (decoding an undocumented opcode) without
// ever returning an error for them.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const maxEntries = 256

// Permission implementations indicate whether the caller is allowed to
// create new log entries. This lets call sites be silenced independently
// of the central buffer itself.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool { return true }

// Allow is a Permission that always allows logging.
var Allow Permission = allow{}

// Entry is a single line in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

var entries []Entry
var echo io.Writer

// Log adds an entry to the central logger, collapsing it into the
// previous entry if tag and detail are identical.
func Log(perm Permission, tag, detail string) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	e := &Entry{}
	if len(entries) > 0 {
		e = &entries[len(entries)-1]
	}

	if detail != e.detail || tag != e.tag {
		entries = append(entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})
		e = &entries[len(entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	if echo != nil {
		io.WriteString(echo, e.String())
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	Log(perm, tag, fmt.Sprintf(detail, args...))
}

// Clear removes all entries from the central logger.
func Clear() {
	entries = entries[:0]
}

// Write writes every entry in the central logger to output.
func Write(output io.Writer) {
	for _, e := range entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	if number > len(entries) {
		number = len(entries)
	}
	for _, e := range entries[len(entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho causes every future log entry to also be written to output
// immediately. Passing nil echoes to os.Stdout; once set, echoing cannot
// be turned off.
func SetEcho(output io.Writer) {
	if output == nil {
		output = os.Stdout
	}
	echo = output
}
