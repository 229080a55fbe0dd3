// Command kilo is a minimal terminal text editor: a single buffer, a
// raw-mode VT100 display, incremental syntax highlighting, and incremental
// search.
package main

import (
	"fmt"
	"os"

	"github.com/lennon-vance/kilo/internal/editor"
	"github.com/lennon-vance/kilo/internal/fileio"
	"github.com/lennon-vance/kilo/internal/term"
)

func main() {
	tty, err := term.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
	defer tty.Close()
	defer recoverFatal(tty)

	e := editor.New(tty, tty, tty, fileio.Loader{}, fileio.Saver{}, nil)

	if len(os.Args) > 1 {
		if err := e.Open(os.Args[1]); err != nil {
			die(tty, err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.RefreshScreen()
		quit, err := e.ProcessKeypress()
		if err != nil {
			die(tty, err)
		}
		if quit {
			break
		}
	}
}

// die clears the screen, restores the terminal, reports err, and exits
// non-zero (§7 category 1).
func die(tty *term.Terminal, err error) {
	tty.Write([]byte("\x1b[2J\x1b[H"))
	tty.Close()
	fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
	os.Exit(1)
}

// recoverFatal catches an editor.FatalError panic (append-buffer overflow,
// a window too small to draw, or a byte-sink write failure). Anything else
// re-panics: those are true programming errors, not the category of
// failure this editor is designed to survive.
func recoverFatal(tty *term.Terminal) {
	r := recover()
	if r == nil {
		return
	}
	fatal, ok := r.(editor.FatalError)
	if !ok {
		tty.Close()
		panic(r)
	}
	die(tty, fatal)
}
