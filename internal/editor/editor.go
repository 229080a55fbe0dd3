package editor

import (
	"bytes"
	"fmt"
	"time"
)

// MsgTimeout is how long a status message stays on screen before the
// message bar goes blank again.
const MsgTimeout = 5 * time.Second

// Editor is the whole state machine: buffer, cursor, viewport, active
// syntax, and the collaborators it drives I/O through. The process keeps
// exactly one live instance; tests construct fresh ones against fake
// collaborators.
type Editor struct {
	cx, cy    int
	rx        int
	desiredRx int
	rowOff    int
	colOff    int

	screenRows int
	screenCols int

	rows  []Row
	dirty bool

	filename string
	syntax   *Syntax

	statusMsg     string
	statusMsgTime time.Time

	quitTimes int

	keys   KeySource
	out    ByteSink
	sizer  WindowSizer
	clock  Clock
	reader FileReader
	writer FileWriter
}

// QuitTimesInit is how many extra Ctrl-Q presses a dirty buffer demands
// before the editor actually exits.
const QuitTimesInit = 3

// New builds an Editor wired to the given collaborators. clock may be nil,
// defaulting to the real wall clock.
func New(keys KeySource, out ByteSink, sizer WindowSizer, reader FileReader, writer FileWriter, clock Clock) *Editor {
	if clock == nil {
		clock = realClock{}
	}
	return &Editor{
		quitTimes: QuitTimesInit,
		keys:      keys,
		out:       out,
		sizer:     sizer,
		clock:     clock,
		reader:    reader,
		writer:    writer,
	}
}

// SetStatusMessage formats a new message bar message and timestamps it for
// MsgTimeout-based expiry.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = e.clock.Now()
}

// Open loads filename's lines into a fresh buffer, selects syntax by name,
// and clears dirty. An empty filename leaves the buffer empty and unnamed
// (equivalent to running with zero CLI arguments).
func (e *Editor) Open(filename string) error {
	e.filename = filename
	e.SelectSyntax(filename)

	if filename == "" {
		e.rows = nil
		e.dirty = false
		return nil
	}

	lines, err := e.reader.ReadLines(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}

	e.rows = nil
	for _, line := range lines {
		e.InsertRow(len(e.rows), line)
	}
	e.dirty = false
	return nil
}

// rowsToBytes concatenates every row's chars, one '\n'-terminated line per
// row, for Save.
func (e *Editor) rowsToBytes() []byte {
	var buf bytes.Buffer
	for i := range e.rows {
		buf.Write(e.rows[i].chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save writes the buffer to its filename, prompting for one if unset.
// Failures are reported via the status message and never terminate the
// editor; dirty is only cleared once the write genuinely succeeds (§7
// category 2).
func (e *Editor) Save() {
	if e.filename == "" {
		name, ok := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if !ok || name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.SelectSyntax(name)
	}

	data := e.rowsToBytes()
	if err := e.writer.WriteFile(e.filename, data); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	e.dirty = false
	e.SetStatusMessage("%d bytes written to disk", len(data))
}
