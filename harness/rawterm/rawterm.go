// Package rawterm is a trimmed wrapper around "github.com/pkg/term/termios"
// that puts the controlling terminal into cbreak mode: keypresses are
// delivered to the program one at a time, without waiting for Enter, which
// is what an interactive single-step CPU stepper needs from stdin.
package rawterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal holds the attributes needed to restore stdin to its original
// mode once stepping is finished.
type Terminal struct {
	input *os.File

	canonAttr  unix.Termios
	cbreakAttr unix.Termios
}

// Open prepares stdin for cbreak mode without yet switching to it; call
// CBreakMode to actually enter it, and CanonicalMode (or Close) to leave.
func Open() (*Terminal, error) {
	t := &Terminal{input: os.Stdin}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canonAttr); err != nil {
		return nil, fmt.Errorf("rawterm: reading terminal attributes: %w", err)
	}

	t.cbreakAttr = t.canonAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	return t, nil
}

// CBreakMode switches stdin into cbreak mode: input is available a
// keystroke at a time and is not echoed back by the line discipline.
func (t *Terminal) CBreakMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr)
}

// CanonicalMode restores stdin to normal line-buffered behaviour.
func (t *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canonAttr)
}

// Close restores canonical mode. Safe to call even if CBreakMode was never
// entered.
func (t *Terminal) Close() error {
	return t.CanonicalMode()
}

// ReadKey blocks for a single keystroke from stdin and returns it.
func (t *Terminal) ReadKey() (byte, error) {
	buf := make([]byte, 1)
	if _, err := t.input.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
