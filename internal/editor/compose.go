package editor

import "fmt"

// FatalError marks one of the unrecoverable failures in §7 category 1:
// append-buffer overflow, a byte-sink write failure, or a window that has
// become zero or too small to draw into. The dispatch loop does not catch
// these; cmd/kilo recovers them at the top level, restores the terminal,
// prints the message, and exits non-zero.
type FatalError struct {
	Msg string
}

func (f FatalError) Error() string { return f.Msg }

func fatalf(format string, args ...any) {
	panic(FatalError{Msg: fmt.Sprintf(format, args...)})
}

// appendBuffer stages one full screen refresh before it is written to the
// byte sink in a single call, so the terminal never shows a partially
// composed frame.
type appendBuffer struct {
	buf []byte
}

func (a *appendBuffer) append(p []byte) {
	if len(a.buf)+len(p) < len(a.buf) {
		fatalf("append buffer overflow")
	}
	a.buf = append(a.buf, p...)
}

func (a *appendBuffer) appendString(s string) {
	a.append([]byte(s))
}

const (
	escClear       = "\x1b[2J"
	escHome        = "\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
	escEraseLine   = "\x1b[K"
	escNormalVideo = "\x1b[m"
	escReverseVid  = "\x1b[7m"
	escDefaultFG   = "\x1b[39m"
)

func escCursorGoto(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

func escFG(color int) string {
	return fmt.Sprintf("\x1b[%dm", color)
}

func isPrintable(b byte) bool {
	return b >= 32 && b <= 126
}

// updateWindowSize re-queries the collaborator-reported terminal size,
// reserving two rows for the status and message bars (§3). A window that
// comes back with no room to draw rows or columns is fatal.
func (e *Editor) updateWindowSize() {
	rows, cols, err := e.sizer.Size()
	if err != nil {
		fatalf("get window size: %v", err)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	if e.screenRows <= 0 || e.screenCols <= 0 {
		fatalf("window size zero or too small")
	}
}

// drawRows renders screen_rows content lines into ab, one per on-screen
// row, clamped to the horizontal scroll window.
func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := e.rowOff + y
		if fileRow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				e.drawWelcome(ab)
			} else {
				ab.appendString("~")
			}
		} else {
			e.drawRowContent(ab, &e.rows[fileRow])
		}

		ab.appendString(escDefaultFG)
		ab.appendString(escEraseLine)
		ab.appendString("\r\n")
	}
}

func (e *Editor) drawWelcome(ab *appendBuffer) {
	welcome := "kilo editor"
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.appendString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		ab.appendString(" ")
	}
	ab.appendString(welcome)
}

func (e *Editor) drawRowContent(ab *appendBuffer, row *Row) {
	start := e.colOff
	if start > len(row.render) {
		start = len(row.render)
	}
	end := start + e.screenCols
	if end > len(row.render) {
		end = len(row.render)
	}

	trackedColor := -1
	for j := start; j < end; j++ {
		b := row.render[j]
		hl := row.hl[j]

		if !isPrintable(b) {
			ab.appendString(escReverseVid)
			if b < 26 {
				ab.append([]byte{'@' + b})
			} else {
				ab.appendString("?")
			}
			ab.appendString(escNormalVideo)
			if trackedColor != -1 {
				ab.appendString(escFG(trackedColor))
			}
			continue
		}

		if hl == HLNormal {
			if trackedColor != -1 {
				ab.appendString(escDefaultFG)
				trackedColor = -1
			}
			ab.append([]byte{b})
			continue
		}

		color := hl.color()
		if color != trackedColor {
			trackedColor = color
			ab.appendString(escFG(color))
		}
		ab.append([]byte{b})
	}
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.appendString(escReverseVid)

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.dirty {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines%s", name, len(e.rows), modified)
	if len(left) > e.screenCols {
		left = left[:e.screenCols]
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.Name
	}
	right := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.rows))

	ab.appendString(left)
	for col := len(left); col < e.screenCols; col++ {
		if e.screenCols-col == len(right) {
			ab.appendString(right)
			break
		}
		ab.appendString(" ")
	}

	ab.appendString(escNormalVideo)
	ab.appendString("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.appendString(escEraseLine)
	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && e.clock.Now().Sub(e.statusMsgTime) < MsgTimeout {
		ab.appendString(msg)
	}
}

// RefreshScreen re-queries the window size, rescrolls, composes a complete
// frame (rows, status bar, message bar) into one append buffer, and writes
// it to the byte sink in a single call.
func (e *Editor) RefreshScreen() {
	e.updateWindowSize()
	e.Scroll()

	var ab appendBuffer
	ab.appendString(escHideCursor)
	ab.appendString(escHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	cursorRow := (e.cy - e.rowOff) + 1
	cursorCol := (e.rx - e.colOff) + 1
	ab.appendString(escCursorGoto(cursorRow, cursorCol))

	ab.appendString(escShowCursor)

	if _, err := e.out.Write(ab.buf); err != nil {
		fatalf("write: %v", err)
	}
}
