package editor

// InsertChar inserts c at the cursor and advances it. If the cursor is on
// the virtual row past end-of-file, a new empty row is appended first.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.rows) {
		e.InsertRow(len(e.rows), nil)
	}
	e.RowInsertChar(&e.rows[e.cy], e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at the cursor. At column 0 it just
// inserts an empty row above; otherwise the new row below gets the tail of
// the line plus replicated leading-blank indentation from the original
// line (auto-indent), clamped to the part of the line before the cursor.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, nil)
		e.cy++
		e.cx = 0
		return
	}

	row := &e.rows[e.cy]
	nBlank := 0
	for nBlank < e.cx && nBlank < len(row.chars) && isBlank(row.chars[nBlank]) {
		nBlank++
	}

	e.InsertRow(e.cy+1, row.chars[:nBlank])
	row = &e.rows[e.cy] // InsertRow may have reallocated the backing array.
	tail := append([]byte(nil), row.chars[e.cx:]...)
	e.RowAppendString(&e.rows[e.cy+1], tail)

	if e.cx == nBlank {
		row.chars = row.chars[:0]
	} else {
		row.chars = row.chars[:e.cx]
	}
	e.updateRow(row)

	e.cy++
	e.cx = nBlank
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }

// DeleteChar deletes the byte to the left of the cursor, joining with the
// previous row if the cursor sits at column zero of a non-first row. A
// no-op at the very start of the buffer or past end-of-file.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.rows[e.cy]
	if e.cx > 0 {
		e.RowDeleteChar(row, e.cx-1)
		e.cx--
		return
	}

	prev := &e.rows[e.cy-1]
	e.cx = prev.Len()
	e.RowAppendString(prev, row.chars)
	e.DeleteRow(e.cy)
	e.cy--
}
