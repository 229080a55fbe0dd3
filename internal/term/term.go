// Package term drives the real raw-mode terminal: it enables/restores raw
// mode, decodes escape sequences into editor key codes, polls a resize flag
// set from a SIGWINCH handler, and implements the editor package's
// KeySource, ByteSink, and WindowSizer interfaces.
package term

import (
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lennon-vance/kilo/internal/editor"
)

// Terminal is a raw-mode handle on the controlling terminal. One is
// expected to live for the whole process; Close restores the terminal's
// original attributes.
type Terminal struct {
	in, out *os.File

	oldState *term.State
	resized  atomic.Bool
	sigCh    chan os.Signal
}

// Open puts the controlling terminal into raw mode and starts watching for
// SIGWINCH. The caller must call Close on every exit path, including fatal
// ones, to leave the user's shell in a sane state.
func Open() (*Terminal, error) {
	in, out := os.Stdin, os.Stdout
	fd := int(in.Fd())

	if !term.IsTerminal(fd) {
		return nil, errors.New("not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.New("enabling raw mode")
	}

	t := &Terminal{in: in, out: out, oldState: oldState}
	if err := t.tunePolling(); err != nil {
		term.Restore(fd, oldState)
		return nil, err
	}

	t.sigCh = make(chan os.Signal, 1)
	signal.Notify(t.sigCh, syscall.SIGWINCH)
	go t.watchResize()

	return t, nil
}

// tunePolling shortens the blocking read x/term.MakeRaw leaves behind
// (VMIN=1, VTIME=0) to a ~100ms-timeout poll (VMIN=0, VTIME=1), so ReadKey
// can periodically observe the resize flag between keystrokes.
func (t *Terminal) tunePolling() error {
	fd := int(t.in.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return errors.New("reading terminal attributes")
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return errors.New("tuning terminal attributes")
	}
	return nil
}

func (t *Terminal) watchResize() {
	for range t.sigCh {
		t.resized.Store(true)
	}
}

// Close restores the terminal's original attributes and stops the resize
// watcher. Safe to call once; a nil receiver or already-closed Terminal is
// a no-op.
func (t *Terminal) Close() error {
	if t == nil || t.oldState == nil {
		return nil
	}
	signal.Stop(t.sigCh)
	close(t.sigCh)
	err := term.Restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	return err
}

// Size implements editor.WindowSizer, falling back to a direct ioctl when
// term.GetSize fails (e.g. stdout redirected away from the tty stdin was
// opened on).
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err == nil {
		return rows, cols, nil
	}

	ws, wsErr := unix.IoctlGetWinsize(int(t.in.Fd()), unix.TIOCGWINSZ)
	if wsErr != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

// Write implements editor.ByteSink.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ReadKey implements editor.KeySource: it blocks (with ~100ms polling
// ticks) for one keystroke, decodes escape sequences into the editor's
// special key codes, and surfaces a synthetic resize key when a SIGWINCH
// was observed between ticks.
func (t *Terminal) ReadKey() (editor.Key, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if err != nil {
			return 0, errors.New("reading keyboard input")
		}
		if n == 0 {
			if t.resized.Swap(false) {
				return editor.KeyResize, nil
			}
			continue
		}

		c := buf[0]
		if c != 0x1b {
			return editor.Key(c), nil
		}
		return t.decodeEscape()
	}
}

func (t *Terminal) decodeEscape() (editor.Key, error) {
	const esc = editor.Key(0x1b)

	seq := make([]byte, 2)
	if n, err := t.in.Read(seq[0:1]); n != 1 || err != nil {
		return esc, nil
	}
	if n, err := t.in.Read(seq[1:2]); n != 1 || err != nil {
		return esc, nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			third := make([]byte, 1)
			if n, err := t.in.Read(third); n != 1 || err != nil {
				return esc, nil
			}
			if third[0] != '~' {
				return esc, nil
			}
			switch seq[1] {
			case '1', '7':
				return editor.KeyHome, nil
			case '3':
				return editor.KeyDelete, nil
			case '4', '8':
				return editor.KeyEnd, nil
			case '5':
				return editor.KeyPageUp, nil
			case '6':
				return editor.KeyPageDown, nil
			default:
				return esc, nil
			}
		}
		switch seq[1] {
		case 'A':
			return editor.KeyArrowUp, nil
		case 'B':
			return editor.KeyArrowDown, nil
		case 'C':
			return editor.KeyArrowRight, nil
		case 'D':
			return editor.KeyArrowLeft, nil
		case 'H':
			return editor.KeyHome, nil
		case 'F':
			return editor.KeyEnd, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return editor.KeyHome, nil
		case 'F':
			return editor.KeyEnd, nil
		}
	}
	return esc, nil
}
